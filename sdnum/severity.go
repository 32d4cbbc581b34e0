package sdnum

// Severity maps a level onto the Google Cloud Logging severity
// vocabulary.
// https://cloud.google.com/logging/docs/reference/v2/rest/v2/LogEntry#logseverity
//
// The mapping is total: every possible Level value, including values
// between the named constants, maps to exactly one severity string.
// Cloud Logging has no TRACE severity so TraceLevel and DebugLevel
// both map to DEBUG.  AlertLevel is the fatal-equivalent and maps
// to CRITICAL.
func (level Level) Severity() string {
	switch {
	case level <= DebugLevel:
		return "DEBUG"
	case level <= InfoLevel:
		return "INFO"
	case level <= WarnLevel:
		return "WARNING"
	case level <= ErrorLevel:
		return "ERROR"
	default:
		return "CRITICAL"
	}
}
