package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRecord_ComputesTransitDays(t *testing.T) {
	rec, err := BuildRecord(RecordInput{
		Issuer:       "Acme",
		Carrier:      "CarrierX",
		IssueDate:    "01/01/2024",
		ShipmentDate: "05/01/2024",
	})
	require.NoError(t, err)

	assert.Equal(t, 4, rec.TransitDays)
	assert.Equal(t, "Acme", rec.Issuer)
	assert.Equal(t, "CarrierX", rec.Carrier)
	assert.Zero(t, rec.ID)
}

func TestBuildRecord_SameDayIsZero(t *testing.T) {
	rec, err := BuildRecord(RecordInput{IssueDate: "10/10/2024", ShipmentDate: "10/10/2024"})
	require.NoError(t, err)
	assert.Equal(t, 0, rec.TransitDays)
}

func TestBuildRecord_CenturiesApart(t *testing.T) {
	rec, err := BuildRecord(RecordInput{IssueDate: "01/01/1700", ShipmentDate: "01/01/2024"})
	require.NoError(t, err)
	assert.Equal(t, 118338, rec.TransitDays)
}

func TestBuildRecord_RejectsReversedDates(t *testing.T) {
	_, err := BuildRecord(RecordInput{IssueDate: "05/01/2024", ShipmentDate: "01/01/2024"})
	require.Error(t, err)
	assert.True(t, IsKind(err, KindInvalidDateOrder))
	assert.ErrorIs(t, err, ErrInvalidDateOrder)

	_, err = BuildRecord(RecordInput{IssueDate: "01/01/2024", ShipmentDate: "01/01/1700"})
	assert.True(t, IsKind(err, KindInvalidDateOrder))
}

func TestBuildRecord_RejectsBadIssueOrShipmentDate(t *testing.T) {
	_, err := BuildRecord(RecordInput{IssueDate: "2024-01-01", ShipmentDate: "05/01/2024"})
	assert.True(t, IsKind(err, KindInvalidDateFormat))

	_, err = BuildRecord(RecordInput{IssueDate: "01/01/2024", ShipmentDate: "5/1/2024"})
	assert.True(t, IsKind(err, KindInvalidDateFormat))
}

func TestRecordInput_RoundTrip(t *testing.T) {
	in := RecordInput{Issuer: "Acme", Carrier: "Y", IssueDate: "01/02/2024", ShipmentDate: "06/02/2024"}
	rec, err := BuildRecord(in)
	require.NoError(t, err)
	assert.Equal(t, in, rec.Input())
}

func TestIssuedWithin_Inclusive(t *testing.T) {
	rec, err := BuildRecord(RecordInput{IssueDate: "15/03/2024", ShipmentDate: "20/03/2024"})
	require.NoError(t, err)

	start, _ := ParseDate("15/03/2024")
	end, _ := ParseDate("31/03/2024")
	assert.True(t, rec.IssuedWithin(start, end))
	assert.True(t, rec.IssuedWithin(start, start))

	after, _ := ParseDate("16/03/2024")
	assert.False(t, rec.IssuedWithin(after, end))
}
