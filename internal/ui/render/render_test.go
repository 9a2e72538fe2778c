package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Guilherme-Sai/Assistente-de-controladoria-embarque-transportadora/internal/domain"
)

func TestRecords_ListsEveryRecord(t *testing.T) {
	rec, err := domain.BuildRecord(domain.RecordInput{
		Issuer:       "ACME",
		Carrier:      "FastShip",
		IssueDate:    "01/03/2024",
		ShipmentDate: "05/03/2024",
	})
	require.NoError(t, err)

	out := Records([]domain.ShipmentRecord{rec})
	for _, want := range append(RecordHeaders, "ACME", "FastShip", "01/03/2024", "05/03/2024", "4") {
		assert.Contains(t, out, want)
	}
}

func TestAverages_UsesPrecision(t *testing.T) {
	out := Averages([]domain.IssuerAverage{{Issuer: "ACME", AverageDays: 3.5, Records: 2}}, 2)
	assert.Contains(t, out, "ACME")
	assert.Contains(t, out, "3.50")

	out = Averages([]domain.IssuerAverage{{Issuer: "ACME", AverageDays: 3.5, Records: 2}}, 0)
	assert.NotContains(t, out, "3.50")
}
