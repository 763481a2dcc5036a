package rfcomm

import (
	"testing"
)

func TestParseAddr(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Addr
	}{
		{
			name:  "uppercase",
			input: "00:12:6F:AB:CD:EF",
			want:  Addr{0x00, 0x12, 0x6F, 0xAB, 0xCD, 0xEF},
		},
		{
			name:  "lowercase",
			input: "a1:b2:c3:d4:e5:f6",
			want:  Addr{0xA1, 0xB2, 0xC3, 0xD4, 0xE5, 0xF6},
		},
		{
			name:  "all zeros",
			input: "00:00:00:00:00:00",
			want:  Addr{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAddr(tt.input)
			if err != nil {
				t.Fatalf("ParseAddr(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseAddr(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseAddrRejectsMalformed(t *testing.T) {
	inputs := []string{
		"",
		"00:12:6F:AB:CD",
		"00:12:6F:AB:CD:EF:01",
		"00-12-6F-AB-CD-EF",
		"0:12:6F:AB:CD:EF",
		"001:2:6F:AB:CD:EF",
		"GG:12:6F:AB:CD:EF",
		"00:12:6F:AB:CD:E",
	}

	for _, input := range inputs {
		if _, err := ParseAddr(input); err == nil {
			t.Errorf("ParseAddr(%q) accepted malformed address", input)
		}
	}
}

func TestAddrString(t *testing.T) {
	addr := Addr{0x00, 0x12, 0x6F, 0xAB, 0xCD, 0xEF}
	if got := addr.String(); got != "00:12:6F:AB:CD:EF" {
		t.Errorf("String() = %q, want %q", got, "00:12:6F:AB:CD:EF")
	}
}

func TestParseAddrRoundTrip(t *testing.T) {
	const input = "12:34:56:78:9A:BC"

	addr, err := ParseAddr(input)
	if err != nil {
		t.Fatalf("ParseAddr(%q) error: %v", input, err)
	}
	if got := addr.String(); got != input {
		t.Errorf("round trip = %q, want %q", got, input)
	}
}

func TestAddrRawReversesByteOrder(t *testing.T) {
	addr := Addr{0x01, 0x02, 0x03, 0x04, 0x05, 0x06}

	raw := addr.raw()
	want := [6]byte{0x06, 0x05, 0x04, 0x03, 0x02, 0x01}
	if raw != want {
		t.Errorf("raw() = %v, want %v", raw, want)
	}

	if got := addrFromRaw(raw[:]); got != addr {
		t.Errorf("addrFromRaw(raw) = %v, want %v", got, addr)
	}
}
