package pointer

import (
	"encoding/binary"
	"io"
	"log/slog"
	"net"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/gridhunt/gridhunt/internal/model"
)

type ClientSuite struct {
	suite.Suite
	client *Client
	server *fakeServer
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientSuite))
}

func (s *ClientSuite) SetupTest() {
	clientConn, serverConn := net.Pipe()
	s.server = newFakeServer(serverConn)
	s.client = NewClient(clientConn, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func (s *ClientSuite) TearDownTest() {
	_ = s.client.Close()
	s.server.stop()
}

// fakeServer reads protocol frames and acknowledges each with 4 bytes
type fakeServer struct {
	conn   net.Conn
	frames chan Instruction
	done   chan struct{}
}

func newFakeServer(conn net.Conn) *fakeServer {
	f := &fakeServer{
		conn:   conn,
		frames: make(chan Instruction, 16),
		done:   make(chan struct{}),
	}
	go f.loop()
	return f
}

func (f *fakeServer) loop() {
	defer close(f.done)
	for {
		var head [10]byte
		if _, err := io.ReadFull(f.conn, head[:]); err != nil {
			return
		}

		inst := Instruction{
			Opcode: Opcode(head[0]),
			X:      int32(binary.LittleEndian.Uint32(head[1:5])),
			Y:      int32(binary.LittleEndian.Uint32(head[5:9])),
		}

		count := int(head[9])
		if count > 0 {
			body := make([]byte, count*8)
			if _, err := io.ReadFull(f.conn, body); err != nil {
				return
			}
			for i := 0; i < count; i++ {
				inst.Group = append(inst.Group, Point{
					X: int32(binary.LittleEndian.Uint32(body[i*8 : i*8+4])),
					Y: int32(binary.LittleEndian.Uint32(body[i*8+4 : i*8+8])),
				})
			}
		}

		f.frames <- inst
		if _, err := f.conn.Write([]byte{0, 0, 0, 0}); err != nil {
			return
		}
	}
}

func (f *fakeServer) stop() {
	_ = f.conn.Close()
	<-f.done
}

func (f *fakeServer) next() Instruction {
	return <-f.frames
}

func (s *ClientSuite) TestNormalize() {
	s.Require().NoError(s.client.Normalize())

	inst := s.server.next()
	s.Equal(OpNormalize, inst.Opcode)
	s.Equal(Point{}, s.client.Position())
}

func (s *ClientSuite) TestMoveRelativeTracksPosition() {
	s.Require().NoError(s.client.MoveRelative(10, -5))
	s.Require().NoError(s.client.MoveRelative(3, 4))

	first := s.server.next()
	s.Equal(OpMove, first.Opcode)
	s.Equal(int32(10), first.X)
	s.Equal(int32(-5), first.Y)

	_ = s.server.next()
	s.Equal(Point{X: 13, Y: -1}, s.client.Position())
}

func (s *ClientSuite) TestMoveGroup() {
	points := []Point{{X: 30, Y: 0}, {X: 0, Y: 33}}
	s.Require().NoError(s.client.MoveGroup(points))

	inst := s.server.next()
	s.Equal(OpMoveGroup, inst.Opcode)
	s.Equal(points, inst.Group)
	s.Equal(Point{X: 30, Y: 33}, s.client.Position())
}

func (s *ClientSuite) TestMoveGroupEmptySendsNothing() {
	s.Require().NoError(s.client.MoveGroup(nil))
	s.Empty(s.server.frames)
}

func (s *ClientSuite) TestMoveAbsoluteRequiresNormalize() {
	err := s.client.MoveAbsolute(Point{X: 10, Y: 10}, false)
	s.ErrorIs(err, model.ErrPointerNotNormalized)
}

func (s *ClientSuite) TestMoveAbsoluteRelativeAfterNormalize() {
	s.Require().NoError(s.client.Normalize())
	_ = s.server.next()

	s.Require().NoError(s.client.MoveAbsolute(Point{X: 70, Y: 245}, false))

	inst := s.server.next()
	s.Equal(OpMove, inst.Opcode)
	s.Equal(int32(70), inst.X)
	s.Equal(int32(245), inst.Y)
	s.Equal(Point{X: 70, Y: 245}, s.client.Position())
}

func (s *ClientSuite) TestMoveAbsoluteRenormalizing() {
	s.Require().NoError(s.client.MoveAbsolute(Point{X: 35, Y: 165}, true))

	inst := s.server.next()
	s.Equal(OpNormalMove, inst.Opcode)
	s.Equal(int32(35), inst.X)
	s.Equal(int32(165), inst.Y)

	// Client is now normalized; relative absolute moves work
	s.Require().NoError(s.client.MoveAbsolute(Point{X: 35, Y: 198}, false))
	second := s.server.next()
	s.Equal(int32(0), second.X)
	s.Equal(int32(33), second.Y)
}

func (s *ClientSuite) TestButton() {
	s.Require().NoError(s.client.Button(true))
	s.Equal(OpLeftDown, s.server.next().Opcode)

	s.Require().NoError(s.client.Button(false))
	s.Equal(OpLeftUp, s.server.next().Opcode)
}
