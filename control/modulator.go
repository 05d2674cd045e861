package control

import (
	"context"
	"time"

	"tinygo.org/x/drivers/mcp2515"

	"foc-modulator/clock"
	"foc-modulator/foc"
	"foc-modulator/link"
	"foc-modulator/logger"
	"foc-modulator/settings"
	"foc-modulator/utils"
)

// Modulator runs the fixed-rate modulation service: latest vector command in
// over CAN, space-vector duty timings out.
type Modulator struct {
	can *mcp2515.Device
}

func NewModulator(can *mcp2515.Device) *Modulator {
	return &Modulator{can: can}
}

func (m *Modulator) Loop(ctx context.Context) error {
	ModulationLimit := float32(0)
	ReportDivider := int32(1)
	RampCycles := int32(0)
	LoopIntervalMs := int32(1)
	interval := time.Millisecond
	var fit = func(x float32) uint16 { return 0 }
	settings.SubscribeClear()
	settings.SubscribeAdd(func(s settings.Settings) error {
		ModulationLimit = s.ModulationLimit
		ReportDivider = s.ReportDivider
		RampCycles = s.RampCycles
		LoopIntervalMs = s.LoopIntervalMs
		interval = time.Duration(s.LoopIntervalMs) * time.Millisecond
		fit = utils.Fit(s.DutyScale)
		return nil
	})
	if err := settings.Restore(); err != nil {
		return err
	}
	limit1 := utils.Limit(-1, 1)
	ck := clock.New(clock.Hardware())
	var cmd link.VectorCommand
	cnt := int32(0)
	tick := time.NewTicker(interval)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-tick.C:
			cycleDeadline := ck.TimeoutToDeadline(uint32(LoopIntervalMs))
			next, ok, err := link.TryReceive(m.can)
			if err != nil {
				return err
			}
			if ok {
				cmd = *next
			}
			alpha := limit1(cmd.Alpha) * ModulationLimit
			beta := limit1(cmd.Beta) * ModulationLimit
			cnt++
			if RampCycles > 0 && cnt < RampCycles {
				ramp := float32(cnt) / float32(RampCycles)
				alpha *= ramp
				beta *= ramp
			}
			tA, tB, tC, valid := foc.SVM(alpha, beta)
			report := link.DutyReport{Seq: cmd.Seq}
			switch {
			case !cmd.Drive:
				// bridge idle, timings stay zeroed
			case valid:
				report.TimA = fit(tA)
				report.TimB = fit(tB)
				report.TimC = fit(tC)
			default:
				// overmodulation is a fault, never a clamp: the host
				// decides whether to attenuate or disable
				report.Fault = true
				logger.Log("overmodulation fault seq:", cmd.Seq)
			}
			if report.Fault || cnt%ReportDivider == 0 {
				if err := link.Send(m.can, &report); err != nil {
					return err
				}
			}
			if !ck.IsInTheFuture(cycleDeadline) {
				logger.Log("cycle overrun at cnt:", cnt)
			}
		}
	}
}
