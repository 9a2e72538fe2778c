package usecase

import (
	"log/slog"

	"github.com/Guilherme-Sai/Assistente-de-controladoria-embarque-transportadora/internal/domain"
	"github.com/Guilherme-Sai/Assistente-de-controladoria-embarque-transportadora/internal/ports"
)

// Records creates, edits, deletes and looks up shipment records. Every
// operation validates before touching the store, so a failed call leaves the
// store unchanged.
type Records struct {
	store ports.RecordStore
	log   *slog.Logger
}

func NewRecords(store ports.RecordStore, opts ...Option) *Records {
	o := buildOptions(opts)
	return &Records{store: store, log: o.log}
}

func (uc *Records) Create(in domain.RecordInput) (domain.ShipmentRecord, error) {
	rec, err := domain.BuildRecord(in)
	if err != nil {
		uc.log.Info("record.create.rejected", "kind", string(domain.KindOf(err)), "err", err)
		return domain.ShipmentRecord{}, err
	}

	rec = uc.store.Append(rec)
	uc.log.Info("record.created",
		"id", uint64(rec.ID),
		"issuer", rec.Issuer,
		"transit_days", rec.TransitDays,
	)
	return rec, nil
}

// Update replaces all fields of the selected record and recomputes its transit
// days. The record keeps its ID and position.
func (uc *Records) Update(id domain.RecordID, in domain.RecordInput) (domain.ShipmentRecord, error) {
	if id == 0 {
		return domain.ShipmentRecord{}, noSelection("record.update")
	}

	rec, err := domain.BuildRecord(in)
	if err != nil {
		uc.log.Info("record.update.rejected", "id", uint64(id), "kind", string(domain.KindOf(err)), "err", err)
		return domain.ShipmentRecord{}, err
	}

	rec, err = uc.store.Replace(id, rec)
	if err != nil {
		uc.log.Warn("record.update.failed", "id", uint64(id), "err", err)
		return domain.ShipmentRecord{}, err
	}

	uc.log.Info("record.updated", "id", uint64(id), "transit_days", rec.TransitDays)
	return rec, nil
}

func (uc *Records) Delete(id domain.RecordID) error {
	if id == 0 {
		return noSelection("record.delete")
	}
	if err := uc.store.Remove(id); err != nil {
		uc.log.Warn("record.delete.failed", "id", uint64(id), "err", err)
		return err
	}
	uc.log.Info("record.deleted", "id", uint64(id))
	return nil
}

// Get returns the selected record, e.g. to fill the edit form.
func (uc *Records) Get(id domain.RecordID) (domain.ShipmentRecord, error) {
	if id == 0 {
		return domain.ShipmentRecord{}, noSelection("record.get")
	}
	return uc.store.Get(id)
}

// List returns every record in insertion order.
func (uc *Records) List() []domain.ShipmentRecord {
	return uc.store.List()
}

func noSelection(op string) error {
	return &domain.OpError{
		Op:   op,
		Kind: domain.KindNoSelection,
		Err:  domain.ErrNoSelection,
	}
}
