package chunkwire

import (
	"encoding/binary"
	"io"
)

// ReadChunk reads exactly one framed record from r and verifies it the same
// way ParseChunk does. A stream ending inside the 8-byte header surfaces as
// ErrChunkTooSmall; one ending inside the payload or trailer as
// ErrDataLength. Other reader failures pass through untouched.
func ReadChunk(r io.Reader) (*Chunk, error) {
	var head [headerSize]byte
	if _, err := io.ReadFull(r, head[:]); err != nil {
		return nil, framingErr(err, ErrChunkTooSmall)
	}
	length := binary.BigEndian.Uint32(head[:])

	var tb [4]byte
	copy(tb[:], head[4:])
	typ, err := NewChunkType(tb)
	if err != nil {
		return nil, err
	}

	data := make([]byte, length)
	if _, err := io.ReadFull(r, data); err != nil {
		return nil, framingErr(err, ErrDataLength)
	}
	var trailer [trailerSize]byte
	if _, err := io.ReadFull(r, trailer[:]); err != nil {
		return nil, framingErr(err, ErrDataLength)
	}
	stored := binary.BigEndian.Uint32(trailer[:])
	if calcCRC(typ, data) != stored {
		return nil, ErrChecksum
	}
	return &Chunk{typ: typ, data: data, crc: stored}, nil
}

// WriteTo writes the canonical on-wire form to w. Implements io.WriterTo.
func (c *Chunk) WriteTo(w io.Writer) (int64, error) {
	var head [headerSize]byte
	binary.BigEndian.PutUint32(head[:], c.Length())
	copy(head[4:], c.typ.b[:])

	var n int64
	m, err := w.Write(head[:])
	n += int64(m)
	if err != nil {
		return n, err
	}
	m, err = w.Write(c.data)
	n += int64(m)
	if err != nil {
		return n, err
	}
	var trailer [trailerSize]byte
	binary.BigEndian.PutUint32(trailer[:], c.crc)
	m, err = w.Write(trailer[:])
	n += int64(m)
	return n, err
}

func framingErr(err, truncated error) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return truncated
	}
	return err
}
