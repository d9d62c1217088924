package sanitizer

import "regexp"

type EscapePattern struct {
	Name    string
	Pattern *regexp.Regexp
}

var (
	csiPattern = &EscapePattern{
		Name:    "CSI",
		Pattern: regexp.MustCompile(`\x1b\[[<>?=]?[0-9;]*[A-Za-z@^` + "`" + `~{|}!]`),
	}
	oscPattern = &EscapePattern{
		Name:    "OSC",
		Pattern: regexp.MustCompile(`\x1b\][^\x07\x1b]*(?:\x07|\x1b\\)`),
	}
	charsetPattern = &EscapePattern{
		Name:    "Charset",
		Pattern: regexp.MustCompile(`\x1b[()][AB012]`),
	}
	// c1 CSI (0x9b) can reach terminals that honour 8-bit controls.
	c1Pattern = &EscapePattern{
		Name:    "C1",
		Pattern: regexp.MustCompile(`\x{9b}[0-9;?]*[A-Za-z]`),
	}
)

// TerminalEscapes lists what server-supplied text must never carry into
// the terminal.
var TerminalEscapes = []*EscapePattern{csiPattern, oscPattern, charsetPattern, c1Pattern}

func StripEscapes(input string) string {
	for _, p := range TerminalEscapes {
		input = p.Pattern.ReplaceAllString(input, "")
	}
	return input
}
