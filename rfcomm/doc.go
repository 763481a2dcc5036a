// Package rfcomm provides Bluetooth RFCOMM connections and classic
// inquiry-based device discovery on Linux.
//
// RFCOMM emulates a serial line over Bluetooth, which makes it a natural
// carrier for byte-oriented device protocols. Connections are plain stream
// sockets:
//
//	addr, err := rfcomm.ParseAddr("00:12:6F:AB:CD:EF")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	conn, err := rfcomm.Dial(addr, 1, 10*time.Second)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer conn.Close()
//
// The returned Conn supports read deadlines, so upper layers can bound how
// long they wait for a device response.
//
// # Discovery
//
// Discover runs a classic inquiry and resolves device names:
//
//	devices, err := rfcomm.Discover(0, 10*time.Second)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, dev := range devices {
//		fmt.Println(dev.Addr, dev.Name)
//	}
//
// Both Dial and Discover talk to the kernel's Bluetooth stack directly and
// are only implemented on Linux; on other platforms they return an error.
// Raw HCI access for discovery normally requires CAP_NET_RAW.
package rfcomm
