package rules

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// Properties is the string property map of one configured checkstyle module.
// Factories read what they understand and ignore the rest; malformed values
// fall back to the rule's documented default rather than failing the run.
type Properties map[string]string

// Bool parses a boolean property ("true"/"false"), falling back to def.
func (p Properties) Bool(name string, def bool) bool {
	v, ok := p[name]
	if !ok {
		return def
	}
	parsed, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return def
	}
	return parsed
}

// Int parses an integer property, falling back to def.
func (p Properties) Int(name string, def int) int {
	v, ok := p[name]
	if !ok {
		return def
	}
	parsed, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return def
	}
	return parsed
}

// String returns a string property, falling back to def.
func (p Properties) String(name, def string) string {
	if v, ok := p[name]; ok {
		return v
	}
	return def
}

// Regexp compiles a regex property. Malformed patterns are logged and the
// compiled default is returned; def must be a valid pattern.
func (p Properties) Regexp(name, def string) *regexp.Regexp {
	pattern := p.String(name, def)
	re, err := regexp.Compile(pattern)
	if err != nil {
		logrus.WithField("property", name).
			WithError(err).
			Warn("invalid regex property, using default")
		return regexp.MustCompile(def)
	}
	return re
}

// Tokens parses a comma-separated token list property (checkstyle's `tokens`
// convention), trimming whitespace around entries. Empty entries are dropped.
func (p Properties) Tokens(name string, def []string) []string {
	v, ok := p[name]
	if !ok {
		return def
	}
	var tokens []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			tokens = append(tokens, part)
		}
	}
	if len(tokens) == 0 {
		return def
	}
	return tokens
}
