package codec_test

import (
	"bytes"
	"math/rand/v2"
	"regexp"
	"testing"

	"github.com/valentin-kaiser/go-deviceid/codec"
)

const (
	salt    = "uqZyZAhof3Kp"
	plain   = "d1234567-89ab-cdef-0123-456789abcde3"
	encoded = "10426b4e6b7259504201791d1a52360d2e35564b42176f45585e77527f66162d24750d67"
)

var lowerHex = regexp.MustCompile(`^[0-9a-f]*$`)

func TestKnownVector(t *testing.T) {
	got := codec.ToHex(codec.Obfuscate([]byte(plain), []byte(salt)))
	if got != encoded {
		t.Fatalf("ToHex(Obfuscate()) = %s, expected %s", got, encoded)
	}

	raw, err := codec.FromHex(encoded)
	if err != nil {
		t.Fatalf("FromHex() error = %v", err)
	}

	if string(codec.Deobfuscate(raw, []byte(salt))) != plain {
		t.Errorf("Deobfuscate() = %q, expected %q", codec.Deobfuscate(raw, []byte(salt)), plain)
	}
}

func TestObfuscateSelfInverse(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	salts := [][]byte{[]byte(salt), {0}, {0xff, 0x01}, nil, bytes.Repeat([]byte{0xaa}, 300)}

	for _, s := range salts {
		for n := 0; n < 600; n += 37 {
			data := make([]byte, n)
			for i := range data {
				data[i] = byte(r.Uint32())
			}

			out := codec.Obfuscate(data, s)
			if len(out) != len(data) {
				t.Fatalf("length changed from %d to %d", len(data), len(out))
			}

			if !bytes.Equal(codec.Deobfuscate(out, s), data) {
				t.Fatalf("round trip failed for salt %x and length %d", s, n)
			}
		}
	}
}

func TestObfuscateDoesNotModifyInput(t *testing.T) {
	data := []byte(plain)
	codec.Obfuscate(data, []byte(salt))
	if string(data) != plain {
		t.Error("Obfuscate() modified its input")
	}
}

func TestHexRoundTrip(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	for n := 0; n < 200; n++ {
		data := make([]byte, n)
		for i := range data {
			data[i] = byte(r.Uint32())
		}

		text := codec.ToHex(data)
		if len(text)%2 != 0 || !lowerHex.MatchString(text) {
			t.Fatalf("ToHex() produced %q", text)
		}

		back, err := codec.FromHex(text)
		if err != nil {
			t.Fatalf("FromHex() error = %v", err)
		}

		if !bytes.Equal(back, data) {
			t.Fatalf("hex round trip failed for %x", data)
		}
	}
}

func TestFromHexTolerance(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []byte
		err      bool
	}{
		{name: "empty", text: "", expected: []byte{}},
		{name: "odd length drops last nibble", text: "0aff3", expected: []byte{0x0a, 0xff}},
		{name: "uppercase accepted", text: "0AFF", expected: []byte{0x0a, 0xff}},
		{name: "invalid character", text: "zz", err: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := codec.FromHex(tc.text)
			if tc.err {
				if err == nil {
					t.Errorf("FromHex(%q) should fail", tc.text)
				}
				return
			}

			if err != nil {
				t.Fatalf("FromHex(%q) error = %v", tc.text, err)
			}

			if !bytes.Equal(got, tc.expected) {
				t.Errorf("FromHex(%q) = %x, expected %x", tc.text, got, tc.expected)
			}
		})
	}
}

func TestMask(t *testing.T) {
	key := []byte("gDjXkAP0Aw")
	masked := codec.Mask([]byte("cache unwritable"), key)

	if codec.ToHex(masked) != "042509300e61255e36050e300b3a0724" {
		t.Errorf("Mask() = %x", masked)
	}

	if string(codec.Mask(masked, key)) != "cache unwritable" {
		t.Error("Mask() is not self-inverse")
	}
}
