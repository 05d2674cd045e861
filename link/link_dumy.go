//go:build dummy

package link

import (
	"encoding/binary"
	"errors"

	"tinygo.org/x/drivers/mcp2515"
)

const (
	CommandID = 0x21
	ReportID  = 0x22
)

const (
	statusFault = 1 << 0
	flagDrive   = 1 << 0
)

var ErrUnexpectedFrame = errors.New("link: unexpected CAN frame")

func ReadFrame(can *mcp2515.Device) (*mcp2515.CANMsg, error) {
	return &mcp2515.CANMsg{}, nil
}

type VectorCommand struct {
	Alpha float32
	Beta  float32
	Seq   byte
	Drive bool
}

func (vc *VectorCommand) UnmarshalBinary(b []byte) error {
	if len(b) < 6 {
		return ErrUnexpectedFrame
	}
	vc.Alpha = float32(int16(binary.BigEndian.Uint16(b[0:2]))) / 32767.0
	vc.Beta = float32(int16(binary.BigEndian.Uint16(b[2:4]))) / 32767.0
	vc.Seq = b[4]
	vc.Drive = b[5]&flagDrive != 0
	return nil
}

type DutyReport struct {
	TimA  uint16
	TimB  uint16
	TimC  uint16
	Seq   byte
	Fault bool
}

var cmd = VectorCommand{}

func TryReceive(can *mcp2515.Device) (*VectorCommand, bool, error) {
	cmd.UnmarshalBinary([]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00})
	return &cmd, true, nil
}

func Send(can *mcp2515.Device, r *DutyReport) error {
	println("Send:", r.TimA, r.TimB, r.TimC, r.Fault)
	return nil
}
