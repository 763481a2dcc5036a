package rfcomm

import (
	"encoding/binary"
	"testing"
)

func TestNewInquiryRequest(t *testing.T) {
	buf := newInquiryRequest(2, 8)

	if want := inquiryReqSize + maxInquiryRsp*inquiryInfoSize; len(buf) != want {
		t.Errorf("buffer length = %d, want %d", len(buf), want)
	}
	if got := binary.LittleEndian.Uint16(buf[0:2]); got != 2 {
		t.Errorf("dev_id = %d, want 2", got)
	}
	if got := binary.LittleEndian.Uint16(buf[2:4]); got != ireqCacheFlush {
		t.Errorf("flags = %#04x, want %#04x", got, ireqCacheFlush)
	}
	if buf[4] != 0x33 || buf[5] != 0x8B || buf[6] != 0x9E {
		t.Errorf("lap = % X, want 33 8B 9E", buf[4:7])
	}
	if buf[7] != 8 {
		t.Errorf("length = %d, want 8", buf[7])
	}
	if buf[8] != maxInquiryRsp {
		t.Errorf("num_rsp = %d, want %d", buf[8], maxInquiryRsp)
	}
}

// TestParseInquiryResults lays records out the way the kernel does: after
// the full ten-byte header, not after the nine bytes of header fields.
// Parsing one byte early would pull the header's padding byte into the
// first address and drop its low byte.
func TestParseInquiryResults(t *testing.T) {
	want := []struct {
		addr        string
		pscan       byte
		clockOffset uint16
	}{
		{"00:12:6F:AB:CD:EF", 0x01, 0x1234},
		{"11:22:33:44:55:66", 0x02, 0x4321},
	}

	buf := newInquiryRequest(0, 4)
	for i, w := range want {
		addr, err := ParseAddr(w.addr)
		if err != nil {
			t.Fatalf("ParseAddr(%q) returned error: %v", w.addr, err)
		}
		raw := addr.raw()
		rec := buf[inquiryReqSize+i*inquiryInfoSize:]
		copy(rec[0:6], raw[:])
		rec[6] = w.pscan
		binary.LittleEndian.PutUint16(rec[12:14], w.clockOffset)
	}
	buf[8] = byte(len(want))

	infos := parseInquiryResults(buf)
	if len(infos) != len(want) {
		t.Fatalf("parsed %d records, want %d", len(infos), len(want))
	}
	for i, w := range want {
		if got := infos[i].addr.String(); got != w.addr {
			t.Errorf("record %d: addr = %s, want %s", i, got, w.addr)
		}
		if infos[i].pscanRepMode != w.pscan {
			t.Errorf("record %d: page-scan mode = %#02x, want %#02x", i, infos[i].pscanRepMode, w.pscan)
		}
		if infos[i].clockOffset != w.clockOffset {
			t.Errorf("record %d: clock offset = %#04x, want %#04x", i, infos[i].clockOffset, w.clockOffset)
		}
	}
}

func TestParseInquiryResultsEmpty(t *testing.T) {
	buf := newInquiryRequest(0, 4)
	buf[8] = 0

	if infos := parseInquiryResults(buf); len(infos) != 0 {
		t.Errorf("parsed %d records from an empty inquiry, want 0", len(infos))
	}
}
