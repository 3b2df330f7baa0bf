package netdiscover

// The code below was taken from github.com/mdlayher/ethernet and adapted for embedded use.
// All credit to mdlayher and the ethernet Authors.

import "encoding/binary"

const (
	// minPayload is the minimum payload size for an Ethernet frame, assuming
	// that no 802.1Q VLAN tags are present.
	minPayload = 46
)

var (
	// Broadcast is a special hardware address which indicates a Frame should
	// be sent to every device on a given LAN segment.
	Broadcast = HardwareAddr{0xff, 0xff, 0xff, 0xff, 0xff, 0xff}
)

// An EtherType is a value used to identify an upper layer protocol
// encapsulated in a Frame.
type EtherType uint16

// Common EtherType values frequently used in a Frame.
const (
	EtherTypeIPv4 EtherType = 0x0800
	EtherTypeARP  EtherType = 0x0806
	EtherTypeIPv6 EtherType = 0x86DD
)

// EtherFrame is an IEEE 802.3 Ethernet II frame, used here to carry ARP
// requests and replies when resolving a camera's hardware address.
type EtherFrame struct {
	Destination HardwareAddr
	Source      HardwareAddr
	EtherType   EtherType
	Payload     []byte
}

func (f *EtherFrame) length() int {
	pl := len(f.Payload)
	if pl < minPayload {
		pl = minPayload
	}
	return 6 + 6 + 2 + pl
}

func (f *EtherFrame) read(b []byte) (int, error) {
	if len(b) < f.length() {
		return 0, ErrBufferTooSmall
	}
	copy(b[0:6], f.Destination)
	copy(b[6:12], f.Source)
	n := 12
	binary.BigEndian.PutUint16(b[n:n+2], uint16(f.EtherType))
	copy(b[n+2:], f.Payload)
	return len(b), nil
}
