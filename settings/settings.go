package settings

import "fmt"

type Settings struct {
	ModulationLimit float32 // unit:fraction of bus voltage, <= sqrt(3)/2
	LoopIntervalMs  int32   // unit:ms
	ReportDivider   int32   // send a duty report every n cycles
	DutyScale       int32   // PWM compare counts for a full period
	RampCycles      int32   // cycles to fade commands in after start
}

var (
	defaultSettings = Settings{
		ModulationLimit: 0.8,  // unit:fraction of bus voltage
		LoopIntervalMs:  1,    // unit:ms
		ReportDivider:   10,   // every 10 cycles
		DutyScale:       4095, // 12-bit compare
		RampCycles:      300,
	}
	currentSettings = defaultSettings
	subscribe       []func(s Settings) error
)

func Validate(s Settings) error {
	if s.ModulationLimit <= 0 || s.ModulationLimit > 0.8660254 {
		return fmt.Errorf("invalid modulation limit: %f", s.ModulationLimit)
	}
	if s.LoopIntervalMs < 1 || s.LoopIntervalMs > 100 {
		return fmt.Errorf("invalid loop interval: %d", s.LoopIntervalMs)
	}
	if s.ReportDivider < 1 || s.ReportDivider > 1000 {
		return fmt.Errorf("invalid report divider: %d", s.ReportDivider)
	}
	if s.DutyScale < 255 || s.DutyScale > 65535 {
		return fmt.Errorf("invalid duty scale: %d", s.DutyScale)
	}
	if s.RampCycles < 0 || s.RampCycles > 10000 {
		return fmt.Errorf("invalid ramp cycles: %d", s.RampCycles)
	}
	return nil
}

func SubscribeClear() {
	subscribe = nil
}

func SubscribeAdd(f func(s Settings) error) {
	subscribe = append(subscribe, f)
}

func Restore() error {
	s := defaultSettings
	// TODO: implement to read from flash memory
	if err := Update(s); err != nil {
		currentSettings = defaultSettings
		Update(currentSettings)
		return err
	}
	return nil
}

func Save(s Settings) error {
	if err := Validate(s); err != nil {
		return err
	}
	// TODO: implement to write to flash memory
	return nil
}

func Update(s Settings) error {
	if err := Validate(s); err != nil {
		return err
	}
	// notify all subscribers
	for _, l := range subscribe {
		if err := l(s); err != nil {
			return err
		}
	}
	currentSettings = s
	return nil
}

func Get() Settings {
	return currentSettings
}
