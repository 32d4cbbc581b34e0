// sdnum provides constants used across the sdlog ecosystem
package sdnum

import "fmt"

type Level int32

const (
	// The numeric values correspond to OTEL's severity numbers.
	// https://github.com/open-telemetry/opentelemetry-proto/blob/main/opentelemetry/proto/logs/v1/logs.proto
	// TraceLevel is OTEL's "Trace2"
	// AlertLevel is OTEL's "Error4"
	TraceLevel Level = 2  // trace
	DebugLevel Level = 5  // debug
	InfoLevel  Level = 9  // info
	WarnLevel  Level = 13 // warn
	ErrorLevel Level = 17 // error
	AlertLevel Level = 20 // alert
)

const MaxLevel = AlertLevel

func (level Level) String() string {
	switch level {
	case TraceLevel:
		return "trace"
	case DebugLevel:
		return "debug"
	case InfoLevel:
		return "info"
	case WarnLevel:
		return "warn"
	case ErrorLevel:
		return "error"
	case AlertLevel:
		return "alert"
	default:
		return fmt.Sprintf("Level(%d)", int32(level))
	}
}

// LevelString returns the level that corresponds to a
// lowercase level name.
func LevelString(s string) (Level, error) {
	switch s {
	case "trace":
		return TraceLevel, nil
	case "debug":
		return DebugLevel, nil
	case "info":
		return InfoLevel, nil
	case "warn":
		return WarnLevel, nil
	case "error":
		return ErrorLevel, nil
	case "alert":
		return AlertLevel, nil
	default:
		return 0, fmt.Errorf("%s does not belong to Level values", s)
	}
}
