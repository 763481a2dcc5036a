package rfcomm

import (
	"fmt"
	"strconv"
	"strings"
)

// Addr is a Bluetooth device address (BD_ADDR), in display order: the form
// printed on device labels, most significant byte first.
type Addr [6]byte

// ParseAddr parses the colon-separated hex form AA:BB:CC:DD:EE:FF.
func ParseAddr(s string) (Addr, error) {
	var a Addr

	parts := strings.Split(s, ":")
	if len(parts) != len(a) {
		return Addr{}, fmt.Errorf("invalid bluetooth address %q", s)
	}

	for i, p := range parts {
		if len(p) != 2 {
			return Addr{}, fmt.Errorf("invalid bluetooth address %q", s)
		}
		b, err := strconv.ParseUint(p, 16, 8)
		if err != nil {
			return Addr{}, fmt.Errorf("invalid bluetooth address %q", s)
		}
		a[i] = byte(b)
	}

	return a, nil
}

// String returns the colon-separated hex form.
func (a Addr) String() string {
	return fmt.Sprintf("%02X:%02X:%02X:%02X:%02X:%02X", a[0], a[1], a[2], a[3], a[4], a[5])
}

// raw returns the address in socket order: the kernel carries BD_ADDR
// least significant byte first.
func (a Addr) raw() [6]byte {
	var r [6]byte
	for i := range a {
		r[i] = a[len(a)-1-i]
	}
	return r
}

// addrFromRaw converts a socket-order BD_ADDR back to display order.
func addrFromRaw(r []byte) Addr {
	var a Addr
	for i := range a {
		a[i] = r[len(a)-1-i]
	}
	return a
}

// Device is a Bluetooth device seen during discovery.
type Device struct {
	// Addr is the device address
	Addr Addr

	// Name is the human-readable device name; empty when the name
	// request failed or the device stayed silent
	Name string
}
