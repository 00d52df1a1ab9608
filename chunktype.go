package chunkwire

import "errors"

var (
	ErrInvalidChunkType = errors.New("invalid chunk type")
	ErrTypeLength       = errors.New("chunk type must be 4 bytes")
)

// ChunkType is a 4-byte tag made of ASCII letters. The case of each byte
// carries one property flag:
//
//	byte 0 upper → critical
//	byte 1 upper → public
//	byte 2 upper → reserved bit valid
//	byte 3 upper → unsafe to copy
//
// ChunkType is a comparable value; == is byte equality.
type ChunkType struct {
	b [4]byte
}

// NewChunkType validates that every byte is an ASCII letter.
func NewChunkType(b [4]byte) (ChunkType, error) {
	for _, c := range b {
		if !isASCIILetter(c) {
			return ChunkType{}, ErrInvalidChunkType
		}
	}
	return ChunkType{b: b}, nil
}

// ChunkTypeFromString converts s to a 4-byte array and validates it.
func ChunkTypeFromString(s string) (ChunkType, error) {
	if len(s) != 4 {
		return ChunkType{}, ErrTypeLength
	}
	var b [4]byte
	copy(b[:], s)
	return NewChunkType(b)
}

// Bytes returns a copy of the raw tag bytes.
func (t ChunkType) Bytes() [4]byte {
	return t.b
}

func (t ChunkType) IsCritical() bool {
	return t.isUpper(0)
}

func (t ChunkType) IsPublic() bool {
	return t.isUpper(1)
}

func (t ChunkType) IsReservedBitValid() bool {
	return t.isUpper(2)
}

// IsValid reports the reserved-bit rule. The format defines no wider
// notion of tag validity beyond what the constructor already enforces.
func (t ChunkType) IsValid() bool {
	return t.IsReservedBitValid()
}

// IsSafeToCopy is true when byte 3 is lowercase.
func (t ChunkType) IsSafeToCopy() bool {
	return !t.isUpper(3)
}

func (t ChunkType) String() string {
	return string(t.b[:])
}

func (t ChunkType) isUpper(pos int) bool {
	return t.b[pos] <= 'Z'
}

func isASCIILetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}
