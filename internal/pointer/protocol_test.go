package pointer

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type ProtocolSuite struct {
	suite.Suite
}

func TestProtocolSuite(t *testing.T) {
	suite.Run(t, new(ProtocolSuite))
}

func (s *ProtocolSuite) TestEncodeEmpty() {
	got := Empty(OpNormalize).Encode()

	s.Equal([]byte{
		4,          // opcode
		0, 0, 0, 0, // x
		0, 0, 0, 0, // y
		0, // group count
	}, got)
}

func (s *ProtocolSuite) TestEncodeDelta() {
	got := Delta(-2, 259).Encode()

	s.Equal([]byte{
		3,
		0xfe, 0xff, 0xff, 0xff, // -2 little-endian
		0x03, 0x01, 0x00, 0x00, // 259 little-endian
		0,
	}, got)
}

func (s *ProtocolSuite) TestEncodeAbsolute() {
	got := Absolute(70, 245).Encode()

	s.Equal([]byte{
		6,
		70, 0, 0, 0,
		245, 0, 0, 0,
		0,
	}, got)
}

func (s *ProtocolSuite) TestEncodeGroup() {
	got := Group([]Point{{X: 30, Y: 0}, {X: -30, Y: 33}}).Encode()

	s.Equal([]byte{
		5,
		0, 0, 0, 0, // unused position
		0, 0, 0, 0,
		2, // group count
		30, 0, 0, 0,
		0, 0, 0, 0,
		0xe2, 0xff, 0xff, 0xff, // -30
		33, 0, 0, 0,
	}, got)
}

func (s *ProtocolSuite) TestFrameLength() {
	// opcode + x + y + count = 10 bytes, plus 8 per group point
	s.Len(Empty(OpLeftDown).Encode(), 10)
	s.Len(Group(make([]Point, 16)).Encode(), 10+16*8)
}
