package rfcomm

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"time"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Constants from the kernel HCI interface (bluetooth/hci.h).
const (
	hciCommandPkt = 0x01
	hciEventPkt   = 0x04

	evtRemoteNameReqComplete = 0x07
	evtCommandStatus         = 0x0F

	// Link-control OGF 0x01, remote-name-request OCF 0x0019.
	opRemoteNameReq = 0x01<<10 | 0x0019

	solHCI    = 0
	hciFilter = 2

	// _IOR('H', 240, int)
	hciInquiryIoctl = 0x800448F0

	nameTimeout = 5 * time.Second

	maxEventSize = 260
)

// Discover runs a Bluetooth inquiry on the given adapter and resolves the
// name of every device that answers. Devices whose name request fails are
// still returned, with an empty name.
//
// The duration is rounded up to the inquiry clock's 1.28 s units. Raw HCI
// access normally requires CAP_NET_RAW.
func Discover(adapter int, duration time.Duration) ([]Device, error) {
	fd, err := unix.Socket(unix.AF_BLUETOOTH, unix.SOCK_RAW|unix.SOCK_CLOEXEC, unix.BTPROTO_HCI)
	if err != nil {
		return nil, fmt.Errorf("open hci socket: %w", err)
	}
	defer unix.Close(fd)

	infos, err := inquire(fd, adapter, duration)
	if err != nil {
		return nil, err
	}

	devices := make([]Device, 0, len(infos))
	for _, info := range infos {
		dev := Device{Addr: info.addr}
		dev.Name, _ = lookupName(adapter, info)
		devices = append(devices, dev)
	}
	return devices, nil
}

// inquire issues the HCIINQUIRY ioctl and parses the response records the
// kernel writes back after the request header.
func inquire(fd, adapter int, duration time.Duration) ([]inquiryInfo, error) {
	units := int((duration + inquiryUnit - 1) / inquiryUnit)
	if units < 1 {
		units = 1
	}
	if units > 0xFF {
		units = 0xFF
	}

	buf := newInquiryRequest(adapter, units)
	if _, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), hciInquiryIoctl, uintptr(unsafe.Pointer(&buf[0]))); errno != 0 {
		return nil, fmt.Errorf("hci inquiry: %w", errno)
	}
	return parseInquiryResults(buf), nil
}

// lookupName asks the remote device for its human-readable name. It opens
// its own HCI socket bound to the adapter, narrows the event filter to the
// two events the request can produce, and waits for the completion event
// carrying the name.
func lookupName(adapter int, info inquiryInfo) (string, error) {
	fd, err := unix.Socket(unix.AF_BLUETOOTH, unix.SOCK_RAW|unix.SOCK_CLOEXEC, unix.BTPROTO_HCI)
	if err != nil {
		return "", fmt.Errorf("open hci socket: %w", err)
	}
	defer unix.Close(fd)

	if err := unix.Bind(fd, &unix.SockaddrHCI{Dev: uint16(adapter), Channel: unix.HCI_CHANNEL_RAW}); err != nil {
		return "", fmt.Errorf("bind hci socket: %w", err)
	}

	// struct hci_filter: type_mask u32, event_mask u32[2], opcode u16.
	var flt [14]byte
	binary.LittleEndian.PutUint32(flt[0:4], 1<<hciEventPkt)
	binary.LittleEndian.PutUint64(flt[4:12], 1<<evtRemoteNameReqComplete|1<<evtCommandStatus)
	binary.LittleEndian.PutUint16(flt[12:14], opRemoteNameReq)
	if err := unix.SetsockoptString(fd, solHCI, hciFilter, string(flt[:])); err != nil {
		return "", fmt.Errorf("set hci filter: %w", err)
	}

	// Command packet: type, opcode, parameter length, then the bdaddr,
	// page-scan mode and clock offset learned during the inquiry. Setting
	// the offset's valid bit saves the controller a fresh clock estimate.
	raw := info.addr.raw()
	cmd := make([]byte, 0, 14)
	cmd = append(cmd, hciCommandPkt)
	cmd = binary.LittleEndian.AppendUint16(cmd, opRemoteNameReq)
	cmd = append(cmd, 10)
	cmd = append(cmd, raw[:]...)
	cmd = append(cmd, info.pscanRepMode, 0x00)
	cmd = binary.LittleEndian.AppendUint16(cmd, info.clockOffset|0x8000)
	if _, err := unix.Write(fd, cmd); err != nil {
		return "", fmt.Errorf("send name request: %w", err)
	}

	deadline := time.Now().Add(nameTimeout)
	buf := make([]byte, maxEventSize)
	for {
		left := time.Until(deadline)
		if left <= 0 {
			return "", fmt.Errorf("await name: %w", unix.ETIMEDOUT)
		}
		if err := pollWait(fd, unix.POLLIN, left); err != nil {
			return "", fmt.Errorf("await name: %w", err)
		}
		n, err := unix.Read(fd, buf)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("read hci event: %w", err)
		}
		if n < 3 || buf[0] != hciEventPkt {
			continue
		}

		switch buf[1] {
		case evtCommandStatus:
			// status, pending command count, opcode
			if n >= 7 && binary.LittleEndian.Uint16(buf[5:7]) == opRemoteNameReq && buf[3] != 0 {
				return "", fmt.Errorf("name request refused: status 0x%02X", buf[3])
			}
		case evtRemoteNameReqComplete:
			// status, bdaddr, then up to 248 name bytes
			if n < 10 || addrFromRaw(buf[4:10]) != info.addr {
				continue
			}
			if buf[3] != 0 {
				return "", fmt.Errorf("name request failed: status 0x%02X", buf[3])
			}
			name := buf[10:n]
			if i := bytes.IndexByte(name, 0); i >= 0 {
				name = name[:i]
			}
			return string(name), nil
		}
	}
}
