package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Guilherme-Sai/Assistente-de-controladoria-embarque-transportadora/internal/domain"
	"github.com/Guilherme-Sai/Assistente-de-controladoria-embarque-transportadora/internal/infra/memstore"
)

func TestRecords_CreateComputesTransitDays(t *testing.T) {
	store := memstore.New()
	uc := NewRecords(store)

	rec, err := uc.Create(input("ACME", "FastShip", "01/03/2024", "05/03/2024"))
	require.NoError(t, err)

	assert.Equal(t, 4, rec.TransitDays)
	assert.Equal(t, domain.RecordID(1), rec.ID)
	require.Equal(t, 1, store.Len())
	assert.Equal(t, rec, store.List()[0])
}

func TestRecords_CreateSameDayIsZero(t *testing.T) {
	uc := NewRecords(memstore.New())

	rec, err := uc.Create(input("ACME", "FastShip", "10/01/2024", "10/01/2024"))
	require.NoError(t, err)
	assert.Equal(t, 0, rec.TransitDays)
}

func TestRecords_CreateCrossesLeapDay(t *testing.T) {
	uc := NewRecords(memstore.New())

	rec, err := uc.Create(input("ACME", "FastShip", "28/02/2024", "01/03/2024"))
	require.NoError(t, err)
	assert.Equal(t, 2, rec.TransitDays)
}

func TestRecords_CreateRejectsBadInput(t *testing.T) {
	cases := []struct {
		name string
		in   domain.RecordInput
		kind domain.ErrorKind
	}{
		{"iso date", input("ACME", "X", "2024-03-01", "05/03/2024"), domain.KindInvalidDateFormat},
		{"empty shipment", input("ACME", "X", "01/03/2024", ""), domain.KindInvalidDateFormat},
		{"impossible day", input("ACME", "X", "31/02/2024", "05/03/2024"), domain.KindInvalidDateFormat},
		{"shipment first", input("ACME", "X", "05/03/2024", "01/03/2024"), domain.KindInvalidDateOrder},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := memstore.New()
			uc := NewRecords(store)

			_, err := uc.Create(tc.in)
			require.Error(t, err)
			assert.True(t, domain.IsKind(err, tc.kind), "got %v", err)
			assert.Equal(t, 0, store.Len())
		})
	}
}

func TestRecords_UpdateReplacesFieldsInPlace(t *testing.T) {
	store := seeded(
		input("A", "X", "01/01/2024", "02/01/2024"),
		input("B", "Y", "01/01/2024", "03/01/2024"),
	)
	uc := NewRecords(store)
	target := store.List()[0].ID

	rec, err := uc.Update(target, input("A2", "Z", "01/01/2024", "11/01/2024"))
	require.NoError(t, err)

	assert.Equal(t, target, rec.ID)
	assert.Equal(t, 10, rec.TransitDays)

	list := store.List()
	require.Len(t, list, 2)
	assert.Equal(t, "A2", list[0].Issuer)
	assert.Equal(t, "Z", list[0].Carrier)
	assert.Equal(t, "B", list[1].Issuer)
}

func TestRecords_UpdateWithoutSelection(t *testing.T) {
	uc := NewRecords(seeded(input("A", "X", "01/01/2024", "02/01/2024")))

	_, err := uc.Update(0, input("A", "X", "01/01/2024", "02/01/2024"))
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindNoSelection))
}

func TestRecords_UpdateInvalidLeavesRecordUntouched(t *testing.T) {
	store := seeded(input("A", "X", "01/01/2024", "02/01/2024"))
	uc := NewRecords(store)
	before := store.List()

	_, err := uc.Update(before[0].ID, input("A", "X", "05/01/2024", "01/01/2024"))
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindInvalidDateOrder))
	assert.Equal(t, before, store.List())
}

func TestRecords_UpdateUnknownID(t *testing.T) {
	uc := NewRecords(seeded(input("A", "X", "01/01/2024", "02/01/2024")))

	_, err := uc.Update(99, input("A", "X", "01/01/2024", "02/01/2024"))
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindNotFound))
}

func TestRecords_DeleteRemovesOnlyTheSelectedRecord(t *testing.T) {
	store := seeded(
		input("A", "X", "01/01/2024", "02/01/2024"),
		input("B", "X", "01/01/2024", "02/01/2024"),
		input("C", "X", "01/01/2024", "02/01/2024"),
	)
	uc := NewRecords(store)

	require.NoError(t, uc.Delete(store.List()[1].ID))

	list := store.List()
	require.Len(t, list, 2)
	assert.Equal(t, "A", list[0].Issuer)
	assert.Equal(t, "C", list[1].Issuer)
}

func TestRecords_DeleteWithoutSelection(t *testing.T) {
	store := seeded(input("A", "X", "01/01/2024", "02/01/2024"))
	uc := NewRecords(store)

	err := uc.Delete(0)
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindNoSelection))
	assert.Equal(t, 1, store.Len())
}

func TestRecords_GetFillsEditForm(t *testing.T) {
	store := seeded(input("ACME", "FastShip", "01/03/2024", "05/03/2024"))
	uc := NewRecords(store)

	rec, err := uc.Get(store.List()[0].ID)
	require.NoError(t, err)
	assert.Equal(t, input("ACME", "FastShip", "01/03/2024", "05/03/2024"), rec.Input())

	_, err = uc.Get(0)
	assert.True(t, domain.IsKind(err, domain.KindNoSelection))
}
