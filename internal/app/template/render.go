// Package template expands {{name}} placeholders in configured file names.
package template

import (
	"fmt"
	"strings"
	"time"

	"github.com/Guilherme-Sai/Assistente-de-controladoria-embarque-transportadora/internal/domain"
)

// FileNameVars are the placeholders accepted in export and chart file names.
// date uses YYYY-MM-DD and time HHMMSS so the result sorts and stays a valid
// file name.
func FileNameVars(now time.Time) map[string]string {
	return map[string]string{
		"date": now.Format("2006-01-02"),
		"time": now.Format("150405"),
	}
}

// RenderString replaces {{VAR}} placeholders with vars values.
// It returns an error if a variable is missing or a placeholder is malformed.
func RenderString(input string, vars map[string]string) (string, error) {
	if input == "" {
		return "", nil
	}

	var out strings.Builder
	rest := input
	for {
		start := strings.Index(rest, "{{")
		if start == -1 {
			out.WriteString(rest)
			return out.String(), nil
		}

		out.WriteString(rest[:start])
		rest = rest[start+2:]

		end := strings.Index(rest, "}}")
		if end == -1 {
			return "", invalid(input, "unclosed placeholder")
		}

		key := strings.TrimSpace(rest[:end])
		if key == "" {
			return "", invalid(input, "empty placeholder")
		}

		value, ok := vars[key]
		if !ok {
			return "", invalid(input, fmt.Sprintf("unknown placeholder %q", key))
		}

		out.WriteString(value)
		rest = rest[end+2:]
	}
}

func invalid(input, msg string) error {
	return &domain.OpError{
		Op:   "template.render",
		Kind: domain.KindInvalidConfig,
		Err:  fmt.Errorf("%q: %s: %w", input, msg, domain.ErrInvalidConfig),
	}
}
