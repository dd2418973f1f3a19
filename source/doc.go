// Copyright 2018 Andrew Fort

/*
Package source opens dump files for reading.

Dumps are published gzip compressed and are often read after being
decompressed; a Reader accepts either, detecting gzip input by its
magic bytes, and offers a buffered io.ByteReader to the tokenizer.
*/
package source
