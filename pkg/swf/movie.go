package swf

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"io"
)

// tagCodeDoABC is the SWF tag code carrying embedded AVM2 bytecode: a
// 4-byte flags word, a null-terminated name, then the raw bytecode
// container fed to avm2.ParseAbcFile.
const tagCodeDoABC = 82

// tagCodeEnd is the sentinel tag terminating the tag stream.
const tagCodeEnd = 0

// Tag is one record of the movie's tag stream.
type Tag struct {
	Code uint16
	Body []byte
}

// ParseTags parses data's SWF header and tag stream, returning every
// tag in order. Only the uncompressed ("FWS") and zlib-compressed
// ("CWS") movie signatures are supported.
func ParseTags(data []byte) ([]Tag, error) {
	if len(data) < 8 {
		return nil, &TruncatedError{Context: "header"}
	}
	signature := string(data[0:3])

	var body []byte
	switch signature {
	case "FWS":
		body = data[8:]
	case "CWS":
		zr, err := zlib.NewReader(bytes.NewReader(data[8:]))
		if err != nil {
			return nil, err
		}
		decompressed, err := io.ReadAll(zr)
		if err != nil {
			return nil, err
		}
		body = decompressed
	default:
		return nil, &UnsupportedCompressionError{Signature: signature}
	}

	body, err := skipFrameHeader(body)
	if err != nil {
		return nil, err
	}

	return parseTagStream(body)
}

// skipFrameHeader consumes the frame-size RECT, frame rate, and frame
// count fields that precede the tag stream, returning what remains.
func skipFrameHeader(body []byte) ([]byte, error) {
	if len(body) < 1 {
		return nil, &TruncatedError{Context: "frame size"}
	}
	nBits := int(body[0] >> 3)
	totalBits := 5 + 4*nBits
	totalBytes := (totalBits + 7) / 8
	if len(body) < totalBytes+4 {
		return nil, &TruncatedError{Context: "frame header"}
	}
	return body[totalBytes+4:], nil
}

func parseTagStream(body []byte) ([]Tag, error) {
	var tags []Tag
	pos := 0
	for {
		if pos+2 > len(body) {
			break
		}
		header := binary.LittleEndian.Uint16(body[pos : pos+2])
		pos += 2
		code := header >> 6
		length := int(header & 0x3f)

		if length == 0x3f {
			if pos+4 > len(body) {
				return nil, &TruncatedError{Context: "long tag length"}
			}
			length = int(binary.LittleEndian.Uint32(body[pos : pos+4]))
			pos += 4
		}

		if pos+length > len(body) {
			return nil, &TruncatedError{Context: "tag body"}
		}
		tagBody := body[pos : pos+length]
		pos += length

		tags = append(tags, Tag{Code: code, Body: tagBody})

		if code == tagCodeEnd {
			break
		}
	}
	return tags, nil
}

// FindDoABC returns the bytecode payload of the first DoABC tag in
// tags, stripped of its 4-byte flags word and null-terminated name,
// ready for avm2.ParseAbcFile. The second return value is false if no
// DoABC tag is present.
func FindDoABC(tags []Tag) ([]byte, bool) {
	for _, t := range tags {
		if t.Code != tagCodeDoABC {
			continue
		}
		body := t.Body
		if len(body) < 4 {
			continue
		}
		body = body[4:] // flags
		nul := bytes.IndexByte(body, 0)
		if nul < 0 {
			continue
		}
		return body[nul+1:], true
	}
	return nil, false
}
