package console

import "strings"

const (
	helpLine        = "commands: set mode <ai|robotics|cloud|forensics|sandbox>, help / ?, clear"
	unknownModeLine = "unknown mode. try: ai, robotics, cloud, forensics, sandbox"
	unknownCmdLine  = "unrecognized command. type `help` or `?`"
	clearedLine     = "logs cleared"
)

// Execute interprets one command line against s. Blank input is ignored;
// anything else is echoed and answered with at least one log line. Unknown
// input is answered with a hint, never an error.
func Execute(s *State, raw string) {
	cmd := strings.TrimSpace(raw)
	if cmd == "" {
		return
	}
	s.PushLog(":> " + cmd)

	lower := strings.ToLower(cmd)
	switch {
	case lower == "help" || lower == "?" || lower == ":help":
		s.PushLog(helpLine)
	case lower == "mode" || lower == ":mode":
		s.PushLog("current mode → " + s.Mode().Name())
	case strings.HasPrefix(lower, "set mode ") || strings.HasPrefix(lower, ":set mode "):
		rest := strings.TrimPrefix(strings.TrimLeft(lower, ":"), "set mode ")
		if m, ok := ParseModeAlias(rest); ok {
			s.SetMode(m)
		} else {
			s.PushLog(unknownModeLine)
		}
	case lower == "clear" || lower == ":clear":
		s.clearLogs()
		s.PushLog(clearedLine)
	default:
		s.PushLog(unknownCmdLine)
	}
}
