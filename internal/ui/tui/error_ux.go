package tui

import (
	"errors"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/Guilherme-Sai/Assistente-de-controladoria-embarque-transportadora/internal/domain"
)

var reLine = regexp.MustCompile(`(?i)\bline\s+(\d+)\b`)

func userMessage(err error) string {
	if err == nil {
		return ""
	}

	var oe *domain.OpError
	if !errors.As(err, &oe) {
		return "Unexpected error (see logs)"
	}

	switch oe.Kind {
	case domain.KindInvalidDateFormat:
		return "Invalid date. Use DD/MM/YYYY."

	case domain.KindInvalidDateOrder:
		return "Shipment date cannot be before the issue date."

	case domain.KindNoSelection:
		return "Select a record first."

	case domain.KindNoData:
		return "No matching records."

	case domain.KindEmptyDataset:
		return "There is nothing to export."

	case domain.KindWriteFailure:
		if strings.TrimSpace(oe.Path) != "" {
			return "Could not write " + oe.Path
		}
		return "Could not write the file"

	case domain.KindNotFound:
		return "Record no longer exists"

	case domain.KindInvalidConfig:
		base := "config"
		if strings.TrimSpace(oe.Path) != "" {
			base = filepath.Base(oe.Path)
		}
		if line := extractLine(err.Error()); line != "" {
			return "Invalid YAML at " + base + " line " + line
		}
		return "Invalid config in " + base

	default:
		return "Unexpected error (see logs)"
	}
}

func extractLine(s string) string {
	m := reLine.FindStringSubmatch(s)
	if len(m) == 2 {
		return m[1]
	}
	return ""
}
