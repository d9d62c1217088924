// Package sanitizer cleans note text received from the notes service
// before it is drawn in the terminal or written to an export.
package sanitizer

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

type Sanitizer interface {
	Sanitize(input string) string
}

type Config struct {
	AllowNewlines      bool
	AllowTabs          bool
	ReplaceNewlineWith string
	// MaxRunes truncates the result; zero disables the limit.
	MaxRunes int
}

type TerminalSanitizer struct {
	config Config
}

func NewTerminalSanitizer(config Config) *TerminalSanitizer {
	return &TerminalSanitizer{config: config}
}

// ForTitle collapses a title onto one line.
func ForTitle() *TerminalSanitizer {
	return NewTerminalSanitizer(Config{ReplaceNewlineWith: " ", MaxRunes: 200})
}

// ForContent keeps line structure and expands tabs.
func ForContent() *TerminalSanitizer {
	return NewTerminalSanitizer(Config{AllowNewlines: true, AllowTabs: true})
}

func (s *TerminalSanitizer) Sanitize(input string) string {
	if input == "" {
		return input
	}
	input = StripEscapes(input)
	input = strings.ReplaceAll(input, "\r\n", "\n")

	var b strings.Builder
	b.Grow(len(input))
	count := 0
	for _, r := range input {
		if s.config.MaxRunes > 0 && count >= s.config.MaxRunes {
			break
		}
		switch {
		case r == '\n':
			if s.config.AllowNewlines {
				b.WriteRune(r)
				count++
			} else if s.config.ReplaceNewlineWith != "" {
				b.WriteString(s.config.ReplaceNewlineWith)
				count++
			}
		case r == '\t':
			if s.config.AllowTabs {
				b.WriteString("    ")
				count++
			}
		case r < 32 || r == 127 || (r >= 0x80 && r < 0xa0):
		default:
			b.WriteRune(r)
			count++
		}
	}
	return b.String()
}

// HTMLSanitizer strips markup using bluemonday. A nil policy means strict:
// every tag removed, text kept.
type HTMLSanitizer struct {
	policy *bluemonday.Policy
}

func NewHTMLSanitizer(policy *bluemonday.Policy) *HTMLSanitizer {
	if policy == nil {
		policy = bluemonday.StrictPolicy()
	}
	return &HTMLSanitizer{policy: policy}
}

// UGC allows the formatting tags produced by markdown rendering.
func UGC() *HTMLSanitizer {
	return NewHTMLSanitizer(bluemonday.UGCPolicy())
}

func (h *HTMLSanitizer) Sanitize(input string) string {
	if input == "" {
		return input
	}
	return h.policy.Sanitize(input)
}
