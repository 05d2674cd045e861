//go:build !dummy

package link

import (
	"encoding/binary"
	"errors"
	"runtime"

	"tinygo.org/x/drivers/mcp2515"
)

// CAN frame IDs for the modulation service.
const (
	CommandID = 0x21 // host -> bridge: alpha-beta vector request
	ReportID  = 0x22 // bridge -> host: duty timings + status
)

const (
	statusFault = 1 << 0
	flagDrive   = 1 << 0
)

var ErrUnexpectedFrame = errors.New("link: unexpected CAN frame")

func ReadFrame(can *mcp2515.Device) (*mcp2515.CANMsg, error) {
	for !can.Received() {
		runtime.Gosched()
	}
	return can.Rx()
}

// VectorCommand is one alpha-beta voltage request from the host controller.
// Components arrive as Q15 big-endian, 32767 = 1.0.
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

// DutyReport carries the three phase timings as PWM compare counts, plus the
// fault flag for requests outside the modulation range.
type DutyReport struct {
	TimA  uint16
	TimB  uint16
	TimC  uint16
	Seq   byte
	Fault bool
}

var cmd = VectorCommand{}

// TryReceive drains pending CAN frames and returns the newest vector
// command, or ok == false if none arrived since the last call.
func TryReceive(can *mcp2515.Device) (*VectorCommand, bool, error) {
	got := false
	for can.Received() {
		msg, err := can.Rx()
		if err != nil {
			return nil, got, err
		}
		if msg.ID != CommandID {
			continue
		}
		if err := cmd.UnmarshalBinary(msg.Data); err != nil {
			return nil, got, err
		}
		got = true
	}
	if !got {
		return nil, false, nil
	}
	return &cmd, true, nil
}

var buf = make([]byte, 8)

func Send(can *mcp2515.Device, r *DutyReport) error {
	binary.BigEndian.PutUint16(buf[0:2], r.TimA)
	binary.BigEndian.PutUint16(buf[2:4], r.TimB)
	binary.BigEndian.PutUint16(buf[4:6], r.TimC)
	buf[6] = r.Seq
	buf[7] = 0
	if r.Fault {
		buf[7] |= statusFault
	}
	return can.Tx(ReportID, uint8(len(buf)), buf)
}
