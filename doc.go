/*
Package discogs is a set of libraries for reading the monthly Discogs
XML data dumps.

The dumps are single XML documents holding millions of artist, label,
master or release records, usually gzip compressed. These libraries
read them as a stream, one record at a time, in memory bounded by the
size of the largest record rather than the size of the file.

The dump sub-directory holds the Reader, which opens a dump, detects
its record kind from the outer element and returns typed iterators.
The record types live in model. Parsing is driven by schema, a small
state machine walking element trees declared per record kind, fed
tokens by encoding/xml from the byte source in source.

The discogs command counts records and prints them as JSON.
*/
package discogs
