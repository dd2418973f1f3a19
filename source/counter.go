package source

import "io"

// countFilter is an io.Reader wrapper counting the bytes read from
// the underlying source, before decompression.
type countFilter struct {
	src io.Reader
	n   int64
}

func (cf *countFilter) Read(p []byte) (n int, err error) {
	n, err = cf.src.Read(p)
	cf.n += int64(n)
	return n, err
}
