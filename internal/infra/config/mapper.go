package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Guilherme-Sai/Assistente-de-controladoria-embarque-transportadora/internal/app/template"
	"github.com/Guilherme-Sai/Assistente-de-controladoria-embarque-transportadora/internal/domain"
)

const (
	maxChartWidth = 200
	maxPrecision  = 6
	maxSheetName  = 31
)

// MapConfig applies the parsed file on top of domain defaults and validates
// the result.
func MapConfig(path string, y YAMLConfig) (domain.Config, error) {
	cfg := domain.DefaultConfig()
	s := y.Shiplog

	if v := strings.TrimSpace(s.Export.Dir); v != "" {
		cfg.Export.Dir = v
	}
	if v := strings.TrimSpace(s.Export.Filename); v != "" {
		if err := validFileName(v); err != nil {
			return domain.Config{}, invalidField(path, "shiplog.export.filename", err.Error())
		}
		cfg.Export.Filename = v
	}
	if v := strings.TrimSpace(s.Export.Sheet); v != "" {
		if err := validSheetName(v); err != nil {
			return domain.Config{}, invalidField(path, "shiplog.export.sheet", err.Error())
		}
		cfg.Export.Sheet = v
	}

	if s.Chart.Width != nil {
		w := *s.Chart.Width
		if w < 1 || w > maxChartWidth {
			return domain.Config{}, invalidField(path, "shiplog.chart.width",
				fmt.Sprintf("must be between 1 and %d", maxChartWidth))
		}
		cfg.Chart.Width = w
	}
	if v := strings.TrimSpace(s.Chart.Filename); v != "" {
		if err := validFileName(v); err != nil {
			return domain.Config{}, invalidField(path, "shiplog.chart.filename", err.Error())
		}
		cfg.Chart.Filename = v
	}

	if s.Display.Precision != nil {
		p := *s.Display.Precision
		if p < 0 || p > maxPrecision {
			return domain.Config{}, invalidField(path, "shiplog.display.precision",
				fmt.Sprintf("must be between 0 and %d", maxPrecision))
		}
		cfg.Display.Precision = p
	}

	return cfg, nil
}

// validFileName checks that every placeholder in name is known.
func validFileName(name string) error {
	if _, err := template.RenderString(name, template.FileNameVars(time.Time{})); err != nil {
		var oe *domain.OpError
		if errors.As(err, &oe) && oe.Err != nil {
			return oe.Err
		}
		return err
	}
	return nil
}

// validSheetName applies the workbook limits on sheet names.
func validSheetName(name string) error {
	if utf8.RuneCountInString(name) > maxSheetName {
		return fmt.Errorf("at most %d characters", maxSheetName)
	}
	if strings.ContainsAny(name, `[]:*?/\`) {
		return errors.New(`must not contain any of []:*?/\`)
	}
	return nil
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "config.map",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("%s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
