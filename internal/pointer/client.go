package pointer

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"time"

	"github.com/gridhunt/gridhunt/internal/model"
)

// clickHold is how long the button stays down during a Click
const clickHold = 50 * time.Millisecond

// Client drives a networked pointer server over TCP. Every instruction
// is acknowledged with a 4-byte reply before the next is sent.
//
// The client shadows the server-side pointer position so relative moves
// can implement absolute ones; the shadow is only trustworthy after a
// Normalize, which parks the pointer at a known origin.
type Client struct {
	conn   net.Conn
	logger *slog.Logger

	left       bool
	normalized bool
	current    Point
}

// Dial connects to a pointer server
func Dial(ctx context.Context, addr string, logger *slog.Logger) (*Client, error) {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("pointer server: %w", err)
	}
	if tcp, ok := conn.(*net.TCPConn); ok {
		_ = tcp.SetNoDelay(true)
	}
	return NewClient(conn, logger), nil
}

// NewClient wraps an existing connection (useful for testing)
func NewClient(conn net.Conn, logger *slog.Logger) *Client {
	return &Client{
		conn:   conn,
		logger: logger,
	}
}

// Close closes the connection
func (c *Client) Close() error {
	return c.conn.Close()
}

// send writes one instruction and waits for the server's 4-byte reply
func (c *Client) send(inst Instruction) error {
	if _, err := c.conn.Write(inst.Encode()); err != nil {
		return fmt.Errorf("send instruction: %w", err)
	}

	var reply [4]byte
	if _, err := io.ReadFull(c.conn, reply[:]); err != nil {
		return fmt.Errorf("read reply: %w", err)
	}
	return nil
}

// Normalize parks the pointer at the server's origin, enabling
// absolute movement
func (c *Client) Normalize() error {
	if err := c.send(Empty(OpNormalize)); err != nil {
		return err
	}
	c.normalized = true
	c.current = Point{}
	return nil
}

// Click performs a single left click
func (c *Client) Click() error {
	if err := c.Button(true); err != nil {
		return err
	}
	time.Sleep(clickHold)
	return c.Button(false)
}

// Button presses or releases the left button
func (c *Client) Button(down bool) error {
	op := OpLeftUp
	if down {
		op = OpLeftDown
	}
	if err := c.send(Empty(op)); err != nil {
		return err
	}
	c.left = down
	return nil
}

// MoveRelative moves the pointer by (dx, dy)
func (c *Client) MoveRelative(dx, dy int32) error {
	if err := c.send(Delta(dx, dy)); err != nil {
		return err
	}
	c.current.X += dx
	c.current.Y += dy
	return nil
}

// MoveGroup replays a list of relative moves in one instruction; the
// server holds the left button down for the duration.
func (c *Client) MoveGroup(points []Point) error {
	if len(points) == 0 {
		return nil
	}
	if err := c.send(Group(points)); err != nil {
		return err
	}
	for _, p := range points {
		c.current.X += p.X
		c.current.Y += p.Y
	}
	return nil
}

// MoveAbsolute moves the pointer to an absolute position. With
// renormalize set the server handles the move natively and the client
// is left normalized; otherwise the move is computed relative to the
// shadow position and requires a prior Normalize.
func (c *Client) MoveAbsolute(target Point, renormalize bool) error {
	if renormalize {
		if err := c.send(Absolute(target.X, target.Y)); err != nil {
			return err
		}
		c.normalized = true
		c.current = target
		return nil
	}

	if !c.normalized {
		return model.ErrPointerNotNormalized
	}
	return c.MoveRelative(target.X-c.current.X, target.Y-c.current.Y)
}

// Position returns the client's shadow of the pointer position
func (c *Client) Position() Point {
	return c.current
}
