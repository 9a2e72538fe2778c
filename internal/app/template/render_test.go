package template

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Guilherme-Sai/Assistente-de-controladoria-embarque-transportadora/internal/domain"
)

func TestRenderString_FileNameVars(t *testing.T) {
	now := time.Date(2024, 3, 5, 14, 7, 9, 0, time.UTC)

	out, err := RenderString("shipments-{{date}}_{{ time }}.xlsx", FileNameVars(now))
	require.NoError(t, err)
	assert.Equal(t, "shipments-2024-03-05_140709.xlsx", out)
}

func TestRenderString_NoPlaceholders(t *testing.T) {
	out, err := RenderString("plain.xlsx", nil)
	require.NoError(t, err)
	assert.Equal(t, "plain.xlsx", out)
}

func TestRenderString_Errors(t *testing.T) {
	for _, in := range []string{"a-{{date.xlsx", "a-{{ }}.xlsx", "a-{{user}}.xlsx"} {
		_, err := RenderString(in, FileNameVars(time.Now()))
		require.Error(t, err, in)
		assert.True(t, domain.IsKind(err, domain.KindInvalidConfig), in)
	}
}
