// Package swf parses just enough of the published client executable's
// outer container, the "movie", to recover the tag stream and locate
// the embedded AVM2 bytecode (DoABC) tag. No maintained SWF parsing
// library exists in the Go ecosystem for this long-obsolete format, so
// this is a direct, minimal implementation over the standard library.
package swf

import "fmt"

// UnsupportedCompressionError reports a movie signature this parser
// does not decompress (only the uncompressed "FWS" and zlib-compressed
// "CWS" signatures are supported; LZMA-compressed "ZWS" is not).
type UnsupportedCompressionError struct {
	Signature string
}

func (e *UnsupportedCompressionError) Error() string {
	return fmt.Sprintf("swf: unsupported movie signature %q", e.Signature)
}

// TruncatedError reports a movie that ended before a well-formed
// header or tag could be read.
type TruncatedError struct {
	Context string
}

func (e *TruncatedError) Error() string {
	return "swf: truncated movie: " + e.Context
}
