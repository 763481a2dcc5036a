package rfcomm

import (
	"encoding/binary"
	"time"
)

// Layout of the HCIINQUIRY ioctl buffer (bluetooth/hci.h): a request
// header followed by one inquiry_info record per responding device. The
// header carries nine bytes of fields (u16 dev_id, u16 flags, u8 lap[3],
// u8 length, u8 num_rsp) but its u16 members pad the struct out to ten,
// and the kernel writes the records after the padded size.
const (
	inquiryReqSize  = 10
	inquiryInfoSize = 14
	maxInquiryRsp   = 255

	ireqCacheFlush = 0x0001

	// The inquiry clock ticks in 1.28 s units.
	inquiryUnit = 1280 * time.Millisecond
)

// giacLAP is the General Inquiry Access Code; every discoverable device
// answers it.
var giacLAP = [3]byte{0x33, 0x8B, 0x9E}

// inquiryInfo is one inquiry response record. The page-scan mode and clock
// offset are carried along because the follow-up name request completes
// much faster when they are handed back to the controller.
type inquiryInfo struct {
	addr         Addr
	pscanRepMode byte
	clockOffset  uint16
}

// newInquiryRequest builds the HCIINQUIRY buffer: the request header up
// front, sized so the kernel can write back maxInquiryRsp records.
func newInquiryRequest(adapter, units int) []byte {
	buf := make([]byte, inquiryReqSize+maxInquiryRsp*inquiryInfoSize)
	binary.LittleEndian.PutUint16(buf[0:2], uint16(adapter))
	binary.LittleEndian.PutUint16(buf[2:4], ireqCacheFlush)
	copy(buf[4:7], giacLAP[:])
	buf[7] = byte(units)
	buf[8] = maxInquiryRsp
	return buf
}

// parseInquiryResults decodes the records the kernel wrote back into an
// inquiry buffer. The kernel rewrites num_rsp with the record count.
func parseInquiryResults(buf []byte) []inquiryInfo {
	n := int(buf[8])
	infos := make([]inquiryInfo, 0, n)
	for i := 0; i < n; i++ {
		rec := buf[inquiryReqSize+i*inquiryInfoSize:]
		infos = append(infos, inquiryInfo{
			addr:         addrFromRaw(rec[0:6]),
			pscanRepMode: rec[6],
			clockOffset:  binary.LittleEndian.Uint16(rec[12:14]),
		})
	}
	return infos
}
