package logger

import "encoding/hex"

var logChan = make(chan []any, 16)

func emit(args ...any) {
	for i, v := range args {
		switch vv := v.(type) {
		case []byte:
			print(hex.EncodeToString(vv))
		default:
			print(v)
		}
		if i == len(args)-1 {
			println()
		} else {
			print(" ")
		}
	}
}

// Log queues a line without blocking; lines are dropped when the writer
// falls behind, so the control loop never stalls on the console.
func Log(args ...any) {
	select {
	case logChan <- args:
	default:
	}
}

func init() {
	go func() {
		for v := range logChan {
			emit(v...)
		}
	}()
}
