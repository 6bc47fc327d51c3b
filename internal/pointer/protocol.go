package pointer

import "encoding/binary"

// Opcode identifies a pointer-server instruction
type Opcode byte

const (
	OpLeftDown   Opcode = 1
	OpLeftUp     Opcode = 2
	OpMove       Opcode = 3
	OpNormalize  Opcode = 4
	OpMoveGroup  Opcode = 5
	OpNormalMove Opcode = 6
)

// Point is an (x, y) coordinate pair on the wire
type Point struct {
	X int32
	Y int32
}

// Instruction is one frame of the pointer-server protocol: an opcode
// byte, two little-endian int32 coordinates, then a count byte followed
// by count little-endian int32 pairs (count is 0 when there is no
// group). Groups are capped at 255 points by the count byte.
type Instruction struct {
	Opcode Opcode
	X      int32
	Y      int32
	Group  []Point
}

// Empty creates an instruction with no coordinates
func Empty(op Opcode) Instruction {
	return Instruction{Opcode: op}
}

// Delta creates a relative move instruction
func Delta(dx, dy int32) Instruction {
	return Instruction{Opcode: OpMove, X: dx, Y: dy}
}

// Absolute creates an absolute move instruction
func Absolute(x, y int32) Instruction {
	return Instruction{Opcode: OpNormalMove, X: x, Y: y}
}

// Group creates a grouped relative move instruction
func Group(points []Point) Instruction {
	return Instruction{Opcode: OpMoveGroup, Group: points}
}

// Encode serializes the instruction into its wire form
func (i Instruction) Encode() []byte {
	buf := make([]byte, 0, 10+8*len(i.Group))
	buf = append(buf, byte(i.Opcode))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(i.X))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(i.Y))
	buf = append(buf, byte(len(i.Group)))
	for _, p := range i.Group {
		buf = binary.LittleEndian.AppendUint32(buf, uint32(p.X))
		buf = binary.LittleEndian.AppendUint32(buf, uint32(p.Y))
	}
	return buf
}
