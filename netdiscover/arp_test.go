package netdiscover

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestARPMarshalUnmarshalRoundTrip(t *testing.T) {
	c := qt.New(t)

	req := ARP{
		HWType:       1,
		ProtoType:    protoAddrTypeIP,
		HWSize:       6,
		ProtoSize:    4,
		OpCode:       1,
		HWSenderAddr: HardwareAddr{0x00, 0x11, 0x22, 0x33, 0x44, 0x55},
		IPSenderAddr: IP{192, 168, 1, 10},
		HWTargetAddr: make(HardwareAddr, 6),
		IPTargetAddr: IP{192, 168, 1, 1},
	}

	buf := make([]byte, req.FrameLength())
	n, err := req.MarshalFrame(buf)
	c.Assert(err, qt.IsNil)

	var got ARP
	err = got.UnmarshalFrame(buf[:n])
	c.Assert(err, qt.IsNil)
	c.Assert(got.HWType, qt.Equals, req.HWType)
	c.Assert(got.OpCode, qt.Equals, req.OpCode)
	c.Assert([]byte(got.HWSenderAddr), qt.DeepEquals, []byte(req.HWSenderAddr))
	c.Assert([]byte(got.IPSenderAddr), qt.DeepEquals, []byte(req.IPSenderAddr))
	c.Assert([]byte(got.IPTargetAddr), qt.DeepEquals, []byte(req.IPTargetAddr))
}

func TestARPMarshalBufferTooSmall(t *testing.T) {
	c := qt.New(t)

	req := ARP{HWSize: 6, ProtoSize: 4}
	_, err := req.MarshalFrame(make([]byte, 4))
	c.Assert(err, qt.Equals, ErrBufferTooSmall)
}

func TestHardwareAddrString(t *testing.T) {
	c := qt.New(t)

	a := HardwareAddr{0xde, 0xad, 0xbe, 0xef, 0x00, 0x01}
	c.Assert(a.String(), qt.Equals, "de:ad:be:ef:00:01")
}
