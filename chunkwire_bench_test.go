package chunkwire

import (
	"bytes"
	"testing"

	"gopkg.in/yaml.v3"
)

func benchChunk(b *testing.B) *Chunk {
	typ, err := ChunkTypeFromString("teSt")
	if err != nil {
		b.Fatal(err)
	}
	payload := bytes.Repeat([]byte("chunkwire"), 64)
	return NewChunk(typ, payload)
}

func BenchmarkChunkBytes(b *testing.B) {
	c := benchChunk(b)
	b.ReportAllocs()
	b.SetBytes(int64(c.Size()))
	for i := 0; i < b.N; i++ {
		_ = c.Bytes()
	}
}

func BenchmarkParseChunk(b *testing.B) {
	wire := benchChunk(b).Bytes()
	b.ReportAllocs()
	b.SetBytes(int64(len(wire)))
	for i := 0; i < b.N; i++ {
		_, _ = ParseChunk(wire)
	}
}

func BenchmarkWriteTo(b *testing.B) {
	c := benchChunk(b)
	var buf bytes.Buffer
	buf.Grow(c.Size())
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		buf.Reset()
		_, _ = c.WriteTo(&buf)
	}
}

// Baseline: the same record shape through a generic text marshaller.
func BenchmarkYamlBaseline(b *testing.B) {
	type record struct {
		Type    string
		Payload []byte
		CRC     uint32
	}
	c := benchChunk(b)
	z := record{Type: c.Type().String(), Payload: c.Data(), CRC: c.CRC()}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = yaml.Marshal(z)
	}
}
