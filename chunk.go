package chunkwire

import (
	"encoding/binary"
	"errors"
	"hash/crc32"
	"unicode/utf8"
)

var (
	ErrChunkTooSmall = errors.New("chunk too small")
	ErrDataLength    = errors.New("invalid data length")
	ErrChecksum      = errors.New("crc check failed")
)

// Wire layout, big-endian throughout:
//
//	Length:  u32, counts payload bytes only
//	Type:    4 bytes (ChunkType)
//	Payload: Length bytes, opaque
//	CRC:     u32, CRC-32 ISO-HDLC over Type‖Payload

const (
	headerSize  = 8 // length + type
	trailerSize = 4 // crc

	// MinChunkSize is the on-wire size of a chunk with an empty payload.
	MinChunkSize = headerSize + trailerSize
)

// Chunk is a single framed record. The checksum is computed at
// construction and verified at parse time, so every Chunk in memory
// satisfies crc == CRC-32(type‖payload).
type Chunk struct {
	typ  ChunkType
	data []byte
	crc  uint32
}

// NewChunk builds a chunk from a type and payload. The payload is copied;
// any bytes and any length are accepted.
func NewChunk(typ ChunkType, data []byte) *Chunk {
	d := make([]byte, len(data))
	copy(d, data)
	return &Chunk{typ: typ, data: d, crc: calcCRC(typ, d)}
}

// ParseChunk reads one framed record from the front of buf. Bytes past the
// framed record are ignored, so buf may be a window into a larger stream.
func ParseChunk(buf []byte) (*Chunk, error) {
	if len(buf) < MinChunkSize {
		return nil, ErrChunkTooSmall
	}
	length := binary.BigEndian.Uint32(buf)

	var tb [4]byte
	copy(tb[:], buf[4:headerSize])
	typ, err := NewChunkType(tb)
	if err != nil {
		return nil, err
	}

	// compare in uint64 so a hostile length cannot overflow
	rest := buf[headerSize:]
	if uint64(len(rest)) < uint64(length)+trailerSize {
		return nil, ErrDataLength
	}
	data := rest[:length]
	stored := binary.BigEndian.Uint32(rest[length:])
	if calcCRC(typ, data) != stored {
		return nil, ErrChecksum
	}

	d := make([]byte, len(data))
	copy(d, data)
	return &Chunk{typ: typ, data: d, crc: stored}, nil
}

// Bytes serializes the chunk to its canonical on-wire form, the exact
// inverse of ParseChunk.
func (c *Chunk) Bytes() []byte {
	out := make([]byte, headerSize, c.Size())
	binary.BigEndian.PutUint32(out, c.Length())
	copy(out[4:], c.typ.b[:])
	out = append(out, c.data...)
	return binary.BigEndian.AppendUint32(out, c.crc)
}

// Length returns the payload size in bytes.
func (c *Chunk) Length() uint32 {
	return uint32(len(c.data))
}

func (c *Chunk) Type() ChunkType {
	return c.typ
}

func (c *Chunk) Data() []byte {
	return c.data
}

func (c *Chunk) CRC() uint32 {
	return c.crc
}

// Size returns the total on-wire size: payload length plus framing.
func (c *Chunk) Size() int {
	return len(c.data) + MinChunkSize
}

// DataString renders the payload as text. ok is false when the payload is
// not valid UTF-8; that is not a chunk error, just an absent rendering.
func (c *Chunk) DataString() (string, bool) {
	if !utf8.Valid(c.data) {
		return "", false
	}
	return string(c.data), true
}

func (c *Chunk) String() string {
	s, _ := c.DataString()
	return s
}

func calcCRC(typ ChunkType, data []byte) uint32 {
	h := crc32.NewIEEE()
	h.Write(typ.b[:])
	h.Write(data)
	return h.Sum32()
}
