package ulog

// Severity is the ordered level of a call-site. Lower values are more
// severe; a build-time threshold elides call-sites below it entirely.
type Severity uint8

const (
	Error Severity = iota
	Warn
	Mile
	Info
	Trace
	Debug0
	Debug1
	Debug2
	Debug3
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "ERROR"
	case Warn:
		return "WARN"
	case Mile:
		return "MILE"
	case Info:
		return "INFO"
	case Trace:
		return "TRACE"
	case Debug0:
		return "DEBUG0"
	case Debug1:
		return "DEBUG1"
	case Debug2:
		return "DEBUG2"
	case Debug3:
		return "DEBUG3"
	default:
		return "UNKNOWN"
	}
}

// Threshold is the build-time minimum severity. Call-sites registered
// below Threshold are skipped at Register time: no metadata record is
// kept and Log* on them is a silent no-op, the closest a library can come
// to the original's "no metadata, no code" compile-time elision.
var Threshold = Debug3

// enabled reports whether sev should be registered/emitted given Threshold.
func enabled(sev Severity) bool {
	return sev <= Threshold
}
