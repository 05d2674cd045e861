package main

import (
	"context"
	"log"
	"machine"

	"tinygo.org/x/drivers/mcp2515"

	"foc-modulator/control"
)

var (
	spi   = machine.SPI0
	csPin = machine.GP28
)

func main() {
	log.SetFlags(log.Lmicroseconds)

	// spi initialize
	if err := spi.Configure(
		machine.SPIConfig{
			Frequency: 500000,
			SCK:       machine.GP2,
			SDO:       machine.GP3,
			SDI:       machine.GP4,
			Mode:      0,
		},
	); err != nil {
		log.Print(err)
	}

	// can initialize
	can := mcp2515.New(spi, csPin)
	can.Configure()
	if err := can.Begin(mcp2515.CAN500kBps, mcp2515.Clock8MHz); err != nil {
		log.Fatal(err)
	}

	m := control.NewModulator(can)
	if err := m.Loop(context.Background()); err != nil {
		log.Fatal(err)
	}
}
