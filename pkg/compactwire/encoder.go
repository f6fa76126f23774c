package compactwire

import (
	"encoding/binary"
	"hash/crc32"

	"github.com/rawbytedev/fixedstr"
	"github.com/rawbytedev/fixedstr/internal/common"
)

// Encoder builds frames. Its scratch buffer is reused between calls, so
// an Encoder must not be shared between goroutines.
type Encoder struct {
	Opts Options
	body []byte
}

func NewEncoder(opts Options) *Encoder {
	return &Encoder{Opts: opts}
}

// EncodeFrame serializes strs into a new frame.
func (e *Encoder) EncodeFrame(strs []*fixedstr.Str) ([]byte, error) {
	e.body = common.WriteVarUintTo(e.body[:0], uint64(len(strs)))
	for _, s := range strs {
		v := s.AsBytes()
		e.body = common.WriteVarUintTo(e.body, uint64(v.Len()))
		n := len(e.body)
		e.body = append(e.body, make([]byte, v.Len())...)
		v.CopyTo(e.body[n:])
	}
	if len(e.body) > MaxBodySize {
		return nil, ErrTooLarge
	}

	var flags byte
	body := e.body
	if e.Opts.Compress {
		flags |= FlagZstd
		comp := common.WriteVarUintTo(nil, uint64(len(e.body)))
		body = zstdEncoder.EncodeAll(e.body, comp)
	}

	total := HeaderSize + len(body) + CRCSize
	out := make([]byte, HeaderSize, total)
	binary.LittleEndian.PutUint16(out[0:], Magic)
	out[2] = VersionV1
	out[3] = flags
	binary.LittleEndian.PutUint32(out[4:], uint32(total))
	out = append(out, body...)

	// CRC over everything but the magic
	crc := crc32.ChecksumIEEE(out[2:])
	out = binary.LittleEndian.AppendUint32(out, crc)
	return out, nil
}
