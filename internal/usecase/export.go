package usecase

import (
	"log/slog"

	"github.com/Guilherme-Sai/Assistente-de-controladoria-embarque-transportadora/internal/domain"
	"github.com/Guilherme-Sai/Assistente-de-controladoria-embarque-transportadora/internal/ports"
)

// ExportRecords writes record snapshots through an Exporter.
type ExportRecords struct {
	store    ports.RecordStore
	exporter ports.Exporter
	log      *slog.Logger
}

func NewExportRecords(store ports.RecordStore, exporter ports.Exporter, opts ...Option) *ExportRecords {
	o := buildOptions(opts)
	return &ExportRecords{store: store, exporter: exporter, log: o.log}
}

// CheckExportable fails with KindEmptyDataset when there is nothing to export,
// so callers can stop before asking for a destination.
func (uc *ExportRecords) CheckExportable() error {
	if uc.store.Len() == 0 {
		return emptyDataset()
	}
	return nil
}

// ExportAll writes the entire store, regardless of any filter the caller is
// currently displaying.
func (uc *ExportRecords) ExportAll(path string) (string, error) {
	return uc.ExportView(uc.store.List(), path)
}

// ExportView writes exactly the given records, in order.
func (uc *ExportRecords) ExportView(records []domain.ShipmentRecord, path string) (string, error) {
	if len(records) == 0 {
		return "", emptyDataset()
	}

	written, err := uc.exporter.Export(records, path)
	if err != nil {
		uc.log.Error("export.failed", "path", path, "records", len(records), "err", err)
		return "", err
	}

	uc.log.Info("export.written", "path", written, "records", len(records))
	return written, nil
}

func emptyDataset() error {
	return &domain.OpError{
		Op:   "records.export",
		Kind: domain.KindEmptyDataset,
		Err:  domain.ErrEmptyDataset,
	}
}
