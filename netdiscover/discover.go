package netdiscover

import (
	"errors"
	"fmt"
	"net"
	"time"
)

// debug gates the package's internal trace logging. It is an unexported
// package variable, false by default; code outside this package cannot
// set it.
var debug = false

func debugf(format string, args ...any) {
	if debug {
		fmt.Printf(format+"\n", args...)
	}
}

// ErrNoReply is returned by FindMAC when no ARP reply for ip arrives
// within the given timeout.
var ErrNoReply = errors.New("netdiscover: no ARP reply received")

// FindMAC resolves the hardware address of the host at ip by sending a
// broadcast ARP request over conn and waiting for a matching reply. conn
// is expected to be bound to a raw or packet-oriented socket already
// filtering for EtherTypeARP; FindMAC builds the Ethernet II frame
// around the ARP request, skips the 14-byte Ethernet header of each
// reply, and leaves the link-layer socket itself to the caller, since the
// available socket types vary wildly across the embedded targets this
// module supports. broadcastAddr is whatever net.Addr conn's WriteTo
// expects to mean "send on this link's broadcast address" — its shape
// depends entirely on the underlying socket implementation.
func FindMAC(conn net.PacketConn, broadcastAddr net.Addr, localMAC HardwareAddr, localIP, targetIP IP, timeout time.Duration) (HardwareAddr, error) {
	req := ARP{
		HWType:       1, // Ethernet
		ProtoType:    protoAddrTypeIP,
		HWSize:       6,
		ProtoSize:    4,
		OpCode:       1, // request
		HWSenderAddr: localMAC,
		IPSenderAddr: localIP,
		HWTargetAddr: make(HardwareAddr, 6),
		IPTargetAddr: targetIP,
	}

	buf := make([]byte, req.FrameLength())
	n, err := req.MarshalFrame(buf)
	if err != nil {
		return nil, err
	}

	frame := EtherFrame{
		Destination: Broadcast,
		Source:      localMAC,
		EtherType:   EtherTypeARP,
		Payload:     buf[:n],
	}
	out := make([]byte, frame.length())
	if _, err := frame.read(out); err != nil {
		return nil, err
	}

	if err := conn.SetDeadline(time.Now().Add(timeout)); err != nil {
		return nil, err
	}

	if _, err := conn.WriteTo(out, broadcastAddr); err != nil {
		return nil, fmt.Errorf("netdiscover: broadcast ARP request: %w", err)
	}
	debugf("netdiscover: sent ARP request for %s", targetIP)

	reply := make([]byte, 128)
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		rn, _, err := conn.ReadFrom(reply)
		if err != nil {
			return nil, ErrNoReply
		}
		var resp ARP
		// Skip the 14-byte Ethernet header the caller's socket delivers
		// alongside the ARP payload.
		if rn < 14 {
			continue
		}
		if err := resp.UnmarshalFrame(reply[14:rn]); err != nil {
			continue
		}
		if resp.OpCode != 2 { // not a reply
			continue
		}
		if !ipEqual(resp.IPSenderAddr, targetIP) {
			continue
		}
		debugf("netdiscover: resolved %s -> %s", targetIP, resp.HWSenderAddr)
		return resp.HWSenderAddr, nil
	}
	return nil, ErrNoReply
}

func ipEqual(a, b IP) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
