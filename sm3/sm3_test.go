//
// sm3_test.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sm3

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"hash"
	"strings"
	"testing"
)

var vectors = []struct {
	in  string
	out string
}{
	{
		in:  "",
		out: "1ab21d8355cfa17f8e61194831e81a8f22bec8c728fefb747ed035eb5082aa2b",
	},
	{
		in:  "abc",
		out: "66c7f0f462eeedd9d1f2d46bdc10e4e24167c4875cf2f7a2297da02b8f4ba8e0",
	},
	{
		in:  strings.Repeat("abcd", 16),
		out: "debe9ff92275b8a138604889c18e5a4d6fdb70e5387e5765293dcba39c0c5732",
	},
}

func TestVectors(t *testing.T) {
	for _, v := range vectors {
		if got := SumHex([]byte(v.in)); got != v.out {
			t.Errorf("SumHex(%q)=%s, expected %s", v.in, got, v.out)
		}
		s := New()
		if got := s.DigestHex([]byte(v.in)); got != v.out {
			t.Errorf("DigestHex(%q)=%s, expected %s", v.in, got, v.out)
		}
		raw := s.DigestEncoded([]byte(v.in), Raw)
		if hex.EncodeToString([]byte(raw)) != v.out {
			t.Errorf("DigestEncoded(%q, Raw)=%x, expected %s", v.in, raw, v.out)
		}
	}
}

func TestHashInterface(t *testing.T) {
	var h hash.Hash = New()
	if h.Size() != Size || h.BlockSize() != BlockSize {
		t.Fatalf("invalid sizes: %d/%d", h.Size(), h.BlockSize())
	}
	h.Write([]byte("ab"))
	partial := h.Sum(nil)
	h.Write([]byte("c"))

	// Sum must not change the state.
	sum := h.Sum([]byte{0xff})
	if sum[0] != 0xff {
		t.Fatalf("Sum did not append")
	}
	if hex.EncodeToString(sum[1:]) != vectors[1].out {
		t.Errorf("Sum=%x, expected %s", sum[1:], vectors[1].out)
	}
	ab := Sum([]byte("ab"))
	if !bytes.Equal(partial, ab[:]) {
		t.Errorf("partial Sum=%x, expected %x", partial, ab)
	}
}

// refSum computes the checksum by building the padded message
// explicitly.
func refSum(msg []byte) [Size]byte {
	padded := append([]byte{}, msg...)
	padded = append(padded, 0x80)
	for len(padded)%BlockSize != 56 {
		padded = append(padded, 0)
	}
	var l [8]byte
	binary.BigEndian.PutUint64(l[:], uint64(len(msg))*8)
	padded = append(padded, l[:]...)

	h := [8]uint32{init0, init1, init2, init3, init4, init5, init6, init7}
	block(&h, padded)

	var out [Size]byte
	for i, v := range h {
		binary.BigEndian.PutUint32(out[i*4:], v)
	}
	return out
}

func testMessage(n int) []byte {
	msg := make([]byte, n)
	for i := range msg {
		msg[i] = byte(i*7 + 3)
	}
	return msg
}

func TestPaddingBoundaries(t *testing.T) {
	for l := 0; l <= 200; l++ {
		msg := testMessage(l)
		if got, want := Sum(msg), refSum(msg); got != want {
			t.Errorf("len %d: got %x, expected %x", l, got, want)
		}
	}
}

func TestStreaming(t *testing.T) {
	msg := testMessage(300)
	expected := Sum(msg)

	for split := 0; split <= len(msg); split++ {
		s := New()
		s.Write(msg[:split])
		s.Write(msg[split:])
		if got := s.Finalize(); got != expected {
			t.Fatalf("split %d: got %x, expected %x", split, got, expected)
		}
	}

	s := New()
	for i := range msg {
		s.Write(msg[i : i+1])
		if s.Len() != uint64(i+1)*8 {
			t.Fatalf("Len=%d after %d bytes", s.Len(), i+1)
		}
		if s.nx >= BlockSize {
			t.Fatalf("pending buffer %d bytes", s.nx)
		}
	}
	if got := s.Digest(nil); got != expected {
		t.Errorf("byte stream: got %x, expected %x", got, expected)
	}
}

func TestDigestResets(t *testing.T) {
	s := New()
	first := s.DigestHex([]byte("abc"))
	second := s.DigestHex([]byte(strings.Repeat("abcd", 16)))

	if first != vectors[1].out {
		t.Errorf("first digest %s, expected %s", first, vectors[1].out)
	}
	if second != vectors[2].out {
		t.Errorf("second digest %s, expected %s", second, vectors[2].out)
	}

	// Pending data is discarded when a message is given.
	s.Write([]byte("garbage"))
	if got := s.DigestHex([]byte("abc")); got != vectors[1].out {
		t.Errorf("digest after write %s, expected %s", got, vectors[1].out)
	}
	// An empty, non-nil message resets too.
	s.Write([]byte("garbage"))
	if got := s.DigestHex([]byte{}); got != vectors[0].out {
		t.Errorf("empty digest %s, expected %s", got, vectors[0].out)
	}
	if s.Len() != 0 || s.nx != 0 {
		t.Errorf("state not reset: len=%d, nx=%d", s.Len(), s.nx)
	}
}

func TestParseEncoding(t *testing.T) {
	for name, expected := range map[string]Encoding{
		"":    Hex,
		"hex": Hex,
		"raw": Raw,
	} {
		enc, err := ParseEncoding(name)
		if err != nil {
			t.Fatalf("ParseEncoding(%q): %s", name, err)
		}
		if enc != expected {
			t.Errorf("ParseEncoding(%q)=%v, expected %v", name, enc, expected)
		}
	}
	if _, err := ParseEncoding("base64"); err == nil {
		t.Errorf("ParseEncoding accepted base64")
	}
}

func TestBlockPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("block accepted a partial block")
		}
	}()
	h := [8]uint32{}
	block(&h, make([]byte, 63))
}

func BenchmarkSum1K(b *testing.B) {
	benchmarkSum(b, 1024)
}

func BenchmarkSum64K(b *testing.B) {
	benchmarkSum(b, 64*1024)
}

func benchmarkSum(b *testing.B, n int) {
	data := testMessage(n)
	b.SetBytes(int64(n))
	for i := 0; i < b.N; i++ {
		Sum(data)
	}
}
