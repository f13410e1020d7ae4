package encoding

import "io"

// Reader is what framed decoders read from. *bufio.Reader satisfies it.
type Reader interface {
	io.Reader
	io.ByteReader
}

// Codec writes and reads self-delimited values of T on a byte stream.
type Codec[T any] interface {
	Name() string
	Encode(w io.Writer, v T) error
	Decode(r Reader, v *T) error
}
