package compactwire

import (
	"errors"

	"github.com/klauspost/compress/zstd"
)

// Frame layout, all integers little-endian:
//
//	[0:2]   magic
//	[2]     version
//	[3]     flags
//	[4:8]   total frame length, CRC included
//	[8:n-4] body
//	[n-4:n] CRC32 (IEEE) over bytes [2:n-4]
//
// Body: varint count, then per entry varint length + UTF-8 bytes.
// With FlagZstd the body is varint raw length + zstd(body).
const (
	Magic      = 0x4653 // "SF"
	VersionV1  = 1
	HeaderSize = 8
	CRCSize    = 4

	FlagZstd byte = 0x01

	// MaxBodySize bounds the decompressed body of a frame.
	MaxBodySize = 64 << 20

	initialBodyCap = 4 << 10
	zstdMaxBlock   = 128 << 10
)

var (
	ErrShortFrame     = errors.New("compactwire: frame too short")
	ErrBadMagic       = errors.New("compactwire: bad magic")
	ErrBadVersion     = errors.New("compactwire: unsupported version")
	ErrLengthMismatch = errors.New("compactwire: length mismatch")
	ErrCRCMismatch    = errors.New("compactwire: crc mismatch")
	ErrTruncated      = errors.New("compactwire: truncated body")
	ErrTooLarge       = errors.New("compactwire: body too large")
)

type Options struct {
	Compress bool // zstd-compress the body
}

// zstd.Encoder and zstd.Decoder are safe for concurrent use, so one of
// each serves every frame.
var (
	zstdEncoder *zstd.Encoder
	zstdDecoder *zstd.Decoder
)

func init() {
	var err error
	zstdEncoder, err = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		panic("compactwire: zstd encoder initialization failed: " + err.Error())
	}
	zstdDecoder, err = zstd.NewReader(nil, zstd.WithDecoderMaxMemory(MaxBodySize))
	if err != nil {
		panic("compactwire: zstd decoder initialization failed: " + err.Error())
	}
}
