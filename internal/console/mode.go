package console

import "strings"

// Mode selects which synthetic quantities the dashboard shows.
type Mode int

const (
	AiObservability Mode = iota
	Robotics
	Cloud
	DataForensics
	Sandbox
)

// Modes lists every mode in hotkey order (1-5).
var Modes = [...]Mode{AiObservability, Robotics, Cloud, DataForensics, Sandbox}

// Name returns the display name.
func (m Mode) Name() string {
	switch m {
	case AiObservability:
		return "AI observability"
	case Robotics:
		return "Robotics"
	case Cloud:
		return "Cloud"
	case DataForensics:
		return "Data forensics"
	case Sandbox:
		return "Sandbox"
	default:
		return "unknown"
	}
}

// Tag returns the short label used in log titles and synthetic lines.
func (m Mode) Tag() string {
	switch m {
	case AiObservability:
		return "AI"
	case Robotics:
		return "ROB"
	case Cloud:
		return "CLD"
	case DataForensics:
		return "DFX"
	case Sandbox:
		return "SBX"
	default:
		return "???"
	}
}

// String implements fmt.Stringer with the display name.
func (m Mode) String() string { return m.Name() }

// ModeFromDigit maps the hotkeys '1'..'5' to a mode.
func ModeFromDigit(r rune) (Mode, bool) {
	if r < '1' || r > '5' {
		return 0, false
	}
	return Modes[r-'1'], true
}

var modeAliases = map[string]Mode{
	"ai":               AiObservability,
	"ai-observability": AiObservability,
	"robotics":         Robotics,
	"rob":              Robotics,
	"cloud":            Cloud,
	"cld":              Cloud,
	"forensics":        DataForensics,
	"dfx":              DataForensics,
	"data":             DataForensics,
	"sandbox":          Sandbox,
	"sbx":              Sandbox,
}

// ParseModeAlias resolves a case-insensitive alias such as "cld" or "Forensics".
func ParseModeAlias(s string) (Mode, bool) {
	m, ok := modeAliases[strings.ToLower(strings.TrimSpace(s))]
	return m, ok
}
