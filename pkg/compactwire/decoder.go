package compactwire

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"

	"github.com/klauspost/compress/zstd"
	"github.com/rawbytedev/fixedstr"
	"github.com/rawbytedev/fixedstr/internal/common"
)

type Decoder struct{}

// DecodeFrame parses a frame built by Encoder.EncodeFrame. Every entry is
// copied into its own Str after UTF-8 validation.
func (d *Decoder) DecodeFrame(data []byte) ([]*fixedstr.Str, error) {
	if len(data) < HeaderSize+CRCSize {
		return nil, ErrShortFrame
	}
	if binary.LittleEndian.Uint16(data[0:]) != Magic {
		return nil, ErrBadMagic
	}
	if data[2] != VersionV1 {
		return nil, fmt.Errorf("%w: %d", ErrBadVersion, data[2])
	}
	flags := data[3]
	if total := binary.LittleEndian.Uint32(data[4:]); int(total) != len(data) {
		return nil, fmt.Errorf("%w: header says %d, got %d", ErrLengthMismatch, total, len(data))
	}
	end := len(data) - CRCSize
	if crc32.ChecksumIEEE(data[2:end]) != binary.LittleEndian.Uint32(data[end:]) {
		return nil, ErrCRCMismatch
	}

	body := data[HeaderSize:end]
	if flags&FlagZstd != 0 {
		var err error
		if body, err = decompress(body); err != nil {
			return nil, err
		}
	}
	return parseBody(body)
}

func decompress(body []byte) ([]byte, error) {
	rawLen, n := common.ReadVarUint(body)
	if n == 0 {
		return nil, ErrTruncated
	}
	comp := body[n:]
	if rawLen > MaxBodySize || rawLen > maxExpansion(len(comp)) {
		return nil, fmt.Errorf("%w: %d bytes from %d compressed", ErrTooLarge, rawLen, len(comp))
	}
	// the decoder sizes its output from the frame content size, so it must agree
	var h zstd.Header
	if err := h.Decode(comp); err != nil {
		return nil, fmt.Errorf("compactwire: zstd header: %w", err)
	}
	if h.HasFCS && h.FrameContentSize != rawLen {
		return nil, fmt.Errorf("%w: zstd frame holds %d bytes, expected %d", ErrLengthMismatch, h.FrameContentSize, rawLen)
	}
	// rawLen is unverified until decoding succeeds; grow from a small buffer
	raw, err := zstdDecoder.DecodeAll(comp, make([]byte, 0, min(rawLen, initialBodyCap)))
	if err != nil {
		return nil, fmt.Errorf("compactwire: zstd decompress: %w", err)
	}
	if uint64(len(raw)) != rawLen {
		return nil, fmt.Errorf("%w: decompressed %d bytes, expected %d", ErrLengthMismatch, len(raw), rawLen)
	}
	return raw, nil
}

// maxExpansion bounds what compLen bytes of zstd can decode to: every
// block costs at least a 3-byte header plus one byte and yields at most
// zstdMaxBlock bytes.
func maxExpansion(compLen int) uint64 {
	return uint64(compLen/4+1) * zstdMaxBlock
}

func parseBody(body []byte) ([]*fixedstr.Str, error) {
	count, n := common.ReadVarUint(body)
	if n == 0 {
		return nil, ErrTruncated
	}
	pos := n
	// every entry takes at least one length byte
	if count > uint64(len(body)-pos) {
		return nil, fmt.Errorf("%w: %d entries in %d bytes", ErrTruncated, count, len(body)-pos)
	}
	out := make([]*fixedstr.Str, 0, count)
	for i := uint64(0); i < count; i++ {
		l, n := common.ReadVarUint(body[pos:])
		if n == 0 {
			return nil, fmt.Errorf("%w: entry %d length", ErrTruncated, i)
		}
		pos += n
		if l > uint64(len(body)-pos) {
			return nil, fmt.Errorf("%w: entry %d needs %d bytes", ErrTruncated, i, l)
		}
		s, err := fixedstr.FromBytes(body[pos : pos+int(l)])
		if err != nil {
			return nil, fmt.Errorf("compactwire: entry %d: %w", i, err)
		}
		out = append(out, s)
		pos += int(l)
	}
	if pos != len(body) {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrLengthMismatch, len(body)-pos)
	}
	return out, nil
}
