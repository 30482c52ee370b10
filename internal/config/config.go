// Package config loads and merges jstyle's two configuration inputs.
//
// checkstyle.xml is authoritative for *which* rules run and with what
// parameters. The optional jstyle.toml overlay is authoritative for *how*
// violations are handled (fix / check / suggest / disabled, plus the
// unsafe-fixes toggle). The overlay never enables a rule the XML does not
// list; it may reference the XML path for discovery convenience.
//
// Configuration is constructed once per run and shared immutably across all
// files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/wharflab/jstyle/internal/rules"
)

// checkstyleCandidates are the conventional checkstyle.xml locations tried
// during discovery, in priority order.
var checkstyleCandidates = []string{
	"checkstyle.xml",
	"config/checkstyle/checkstyle.xml",
	"config/checkstyle.xml",
	".checkstyle.xml",
}

// ConfiguredRule is one rule module bound to its parameters and mode.
type ConfiguredRule struct {
	// Name is the checkstyle module name.
	Name string

	// Properties are the module's property children, verbatim.
	Properties rules.Properties

	// Mode is how violations are handled, from the overlay.
	Mode RuleMode
}

// Enabled reports whether the rule takes part in the run.
func (r ConfiguredRule) Enabled() bool {
	return r.Mode != ModeDisabled
}

// ShouldFix reports whether the rule's fixes are applied.
func (r ConfiguredRule) ShouldFix() bool {
	return r.Mode == ModeFix
}

// Merged is the run configuration: the XML-ordered rule list overlaid with
// per-rule modes, plus the unsafe-fixes flag.
type Merged struct {
	// Rules preserves XML declaration order. Disabled rules are present so
	// consumers can introspect them, but EnabledRules filters them out
	// before run time.
	Rules []ConfiguredRule

	// UnsafeFixes enables applying unsafe fixes.
	UnsafeFixes bool
}

// Merge combines a checkstyle document with an optional overlay.
func Merge(checkstyle *Checkstyle, overlay *Overlay) *Merged {
	modules := checkstyle.Rules()
	merged := &Merged{
		Rules:       make([]ConfiguredRule, 0, len(modules)),
		UnsafeFixes: overlay != nil && overlay.UnsafeFixes,
	}
	for _, m := range modules {
		merged.Rules = append(merged.Rules, ConfiguredRule{
			Name:       m.Name,
			Properties: m.PropertyMap(),
			Mode:       overlay.Mode(m.Name),
		})
	}
	return merged
}

// EnabledRules returns the rules taking part in the run, in XML order.
func (m *Merged) EnabledRules() []ConfiguredRule {
	enabled := make([]ConfiguredRule, 0, len(m.Rules))
	for _, r := range m.Rules {
		if r.Enabled() {
			enabled = append(enabled, r)
		}
	}
	return enabled
}

// Rule returns the configured rule with the given module name.
func (m *Merged) Rule(name string) (ConfiguredRule, bool) {
	for _, r := range m.Rules {
		if r.Name == name {
			return r, true
		}
	}
	return ConfiguredRule{}, false
}

// Loader locates and loads the merged configuration.
type Loader struct {
	// CheckstylePath forces a specific checkstyle.xml. Empty means discover:
	// first the overlay's [checkstyle] config, then conventional locations.
	CheckstylePath string

	// OverlayPath forces a specific overlay file. Empty means look for
	// .jstyle.toml, then jstyle.toml, in the current directory only; a
	// missing overlay is not an error.
	OverlayPath string
}

// Load resolves both documents and merges them.
func (l Loader) Load() (*Merged, error) {
	overlay, err := l.loadOverlay()
	if err != nil {
		return nil, err
	}

	checkstylePath := l.CheckstylePath
	if checkstylePath == "" && overlay != nil && overlay.CheckstylePath != "" {
		checkstylePath = overlay.CheckstylePath
	}
	if checkstylePath == "" {
		checkstylePath = discoverFile(checkstyleCandidates)
	}
	if checkstylePath == "" {
		return nil, newError(KindNoConfig, errors.New("no checkstyle.xml found"))
	}

	checkstyle, err := LoadCheckstyle(checkstylePath)
	if err != nil {
		var cfgErr *Error
		if errors.As(err, &cfgErr) && cfgErr.Kind == KindIO {
			return nil, newError(KindIO, fmt.Errorf("checkstyle config %s: %w", checkstylePath, cfgErr.Err))
		}
		return nil, err
	}

	return Merge(checkstyle, overlay), nil
}

func (l Loader) loadOverlay() (*Overlay, error) {
	path := l.OverlayPath
	if path == "" {
		path = discoverFile(OverlayFileNames)
		if path == "" {
			return nil, nil
		}
	}
	return LoadOverlay(path)
}

// discoverFile returns the first existing candidate, searched in the current
// directory only; candidates may themselves be relative paths.
func discoverFile(candidates []string) string {
	for _, name := range candidates {
		if info, err := os.Stat(name); err == nil && !info.IsDir() {
			return filepath.Clean(name)
		}
	}
	return ""
}
