package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Guilherme-Sai/Assistente-de-controladoria-embarque-transportadora/internal/domain"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, FileName), []byte(body), 0o644))
	return root
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	root := writeConfig(t, "shiplog:\n  export:\n    sheet: Embarques\n")

	cfg, err := NewLoader().LoadConfig(root)
	require.NoError(t, err)

	want := domain.DefaultConfig()
	want.Export.Sheet = "Embarques"
	assert.Equal(t, want, cfg)
}

func TestLoadConfig_AllKeys(t *testing.T) {
	root := writeConfig(t, `shiplog:
  export:
    dir: exports
    filename: out.xlsx
    sheet: Data
  chart:
    width: 60
    filename: chart.xlsx
  display:
    precision: 0
`)

	cfg, err := NewLoader().LoadConfig(root)
	require.NoError(t, err)

	assert.Equal(t, "exports", cfg.Export.Dir)
	assert.Equal(t, "out.xlsx", cfg.Export.Filename)
	assert.Equal(t, "Data", cfg.Export.Sheet)
	assert.Equal(t, 60, cfg.Chart.Width)
	assert.Equal(t, "chart.xlsx", cfg.Chart.Filename)
	assert.Equal(t, 0, cfg.Display.Precision)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	cfg, err := NewLoader().LoadConfig(t.TempDir())
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindNotFound))
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestLoadConfig_BrokenYAML(t *testing.T) {
	root := writeConfig(t, "shiplog: [unclosed\n")

	_, err := NewLoader().LoadConfig(root)
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindInvalidConfig))
}

func TestMapConfig_RejectsOutOfRangeValues(t *testing.T) {
	cases := []struct {
		name  string
		body  string
		field string
	}{
		{"zero width", "shiplog:\n  chart:\n    width: 0\n", "shiplog.chart.width"},
		{"negative precision", "shiplog:\n  display:\n    precision: -1\n", "shiplog.display.precision"},
		{"bad sheet", "shiplog:\n  export:\n    sheet: \"a/b\"\n", "shiplog.export.sheet"},
		{"unknown placeholder", "shiplog:\n  export:\n    filename: \"out-{{user}}.xlsx\"\n", "shiplog.export.filename"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			root := writeConfig(t, tc.body)
			_, err := NewLoader().LoadConfig(root)
			require.Error(t, err)
			assert.True(t, domain.IsKind(err, domain.KindInvalidConfig))
			assert.ErrorIs(t, err, domain.ErrInvalidConfig)
			assert.Contains(t, err.Error(), tc.field)
			assert.Contains(t, err.Error(), root)
		})
	}
}

func TestLoadConfig_YmlSpellingAndPrecedence(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "shiplog.yml"), []byte("shiplog:\n  export:\n    sheet: FromYml\n"), 0o644))

	cfg, err := NewLoader().LoadConfig(root)
	require.NoError(t, err)
	assert.Equal(t, "FromYml", cfg.Export.Sheet)

	require.NoError(t, os.WriteFile(filepath.Join(root, FileName), []byte("shiplog:\n  export:\n    sheet: FromYaml\n"), 0o644))
	cfg, err = NewLoader().LoadConfig(root)
	require.NoError(t, err)
	assert.Equal(t, "FromYaml", cfg.Export.Sheet)
}
