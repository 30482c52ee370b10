package config

import (
	"os"
	"strings"

	koanftoml "github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// OverlayFileNames defines the overlay file names to search for, in priority
// order.
var OverlayFileNames = []string{".jstyle.toml", "jstyle.toml"}

// RuleMode controls how violations of a rule are handled.
type RuleMode int

const (
	// ModeFix applies the rule's fixes automatically (the default).
	ModeFix RuleMode = iota
	// ModeCheck reports violations without fixing.
	ModeCheck
	// ModeSuggest shows the fix but does not apply it.
	ModeSuggest
	// ModeDisabled skips the rule entirely.
	ModeDisabled
)

// String returns the mode name.
func (m RuleMode) String() string {
	switch m {
	case ModeFix:
		return "fix"
	case ModeCheck:
		return "check"
	case ModeSuggest:
		return "suggest"
	case ModeDisabled:
		return "disabled"
	default:
		return "unknown"
	}
}

// ParseRuleMode parses a mode string case-insensitively. "disable" and "off"
// are accepted aliases for "disabled".
func ParseRuleMode(s string) (RuleMode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fix":
		return ModeFix, true
	case "check":
		return ModeCheck, true
	case "suggest":
		return ModeSuggest, true
	case "disabled", "disable", "off":
		return ModeDisabled, true
	default:
		return ModeFix, false
	}
}

// Overlay is the optional jstyle.toml document. It controls how violations
// are handled, never which rules run:
//
//	[fix]
//	unsafe_fixes = false
//
//	[fix.rules]
//	WhitespaceAround = "fix"
//	NeedBraces = "check"
//	MethodLength = "disabled"
//
//	[checkstyle]
//	config = "config/checkstyle/checkstyle.xml"
//
// All keys are optional; unknown keys are ignored.
type Overlay struct {
	// UnsafeFixes applies unsafe fixes without per-run opt-in.
	UnsafeFixes bool

	// RuleModes maps rule module names to their violation-handling mode.
	RuleModes map[string]RuleMode

	// CheckstylePath optionally points at the checkstyle.xml to use.
	CheckstylePath string
}

// overlayDoc is the raw koanf unmarshal target; modes are validated
// separately so a typo in one entry does not lose the rest.
type overlayDoc struct {
	Fix struct {
		UnsafeFixes bool              `koanf:"unsafe_fixes"`
		Rules       map[string]string `koanf:"rules"`
	} `koanf:"fix"`
	Checkstyle struct {
		Config string `koanf:"config"`
	} `koanf:"checkstyle"`
}

// ParseOverlay parses overlay TOML content.
func ParseOverlay(content []byte) (*Overlay, error) {
	raw, err := koanftoml.Parser().Unmarshal(content)
	if err != nil {
		return nil, newError(KindOverlay, err)
	}
	k := koanf.New(".")
	if err := k.Load(confmap.Provider(raw, "."), nil); err != nil {
		return nil, newError(KindOverlay, err)
	}
	return overlayFromKoanf(k)
}

// LoadOverlay reads and parses an overlay file.
func LoadOverlay(path string) (*Overlay, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), koanftoml.Parser()); err != nil {
		if _, statErr := os.Stat(path); statErr != nil {
			return nil, newError(KindIO, statErr)
		}
		return nil, newError(KindOverlay, err)
	}
	return overlayFromKoanf(k)
}

func overlayFromKoanf(k *koanf.Koanf) (*Overlay, error) {
	var doc overlayDoc
	if err := k.Unmarshal("", &doc); err != nil {
		return nil, newError(KindOverlay, err)
	}

	overlay := &Overlay{
		UnsafeFixes:    doc.Fix.UnsafeFixes,
		RuleModes:      make(map[string]RuleMode, len(doc.Fix.Rules)),
		CheckstylePath: doc.Checkstyle.Config,
	}
	for name, mode := range doc.Fix.Rules {
		parsed, ok := ParseRuleMode(mode)
		if !ok {
			// Unknown mode strings keep the default rather than failing
			// the run; the rule still runs in fix mode.
			continue
		}
		overlay.RuleModes[name] = parsed
	}
	return overlay, nil
}

// Mode returns the configured mode for a rule, defaulting to fix.
func (o *Overlay) Mode(rule string) RuleMode {
	if o == nil {
		return ModeFix
	}
	if mode, ok := o.RuleModes[rule]; ok {
		return mode
	}
	return ModeFix
}
