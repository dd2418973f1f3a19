// Copyright 2018 Andrew Fort

/*
Package dump reads Discogs XML data dumps.

A dump file holds records of one kind (artists, labels, masters or
releases) inside a container element named for the kind. Open or
NewReader detects the kind from the container element and returns a
Reader with an iterator for that kind:

	r, err := dump.Open("discogs_20240101_releases.xml.gz")
	if err != nil {
		return err
	}
	defer r.Close()
	it := r.Releases()
	for {
		rel, err := it.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		fmt.Println(rel)
	}

Records are read lazily, one per call to Next, with memory use bounded
by the nesting depth of a record rather than the size of the file.
Elements and attributes not described by the record types are
ignored, so newer dumps with additional data still read.
*/
package dump
