package netdiscover

import "fmt"

// HardwareAddr is a physical (MAC) address, kept minimal the way the
// teacher fragment's imported net package represented it — no parsing
// helpers beyond what ARP marshaling and String() need.
type HardwareAddr []byte

func (a HardwareAddr) String() string {
	if len(a) == 0 {
		return ""
	}
	s := make([]byte, 0, len(a)*3-1)
	const hex = "0123456789abcdef"
	for i, b := range a {
		if i > 0 {
			s = append(s, ':')
		}
		s = append(s, hex[b>>4], hex[b&0x0F])
	}
	return string(s)
}

// IP holds an IPv4 address in 4-byte form.
type IP []byte

func (ip IP) String() string {
	if len(ip) != 4 {
		return fmt.Sprintf("%v", []byte(ip))
	}
	return fmt.Sprintf("%d.%d.%d.%d", ip[0], ip[1], ip[2], ip[3])
}

// IPMask is a 4-byte IPv4 subnet mask.
type IPMask []byte
