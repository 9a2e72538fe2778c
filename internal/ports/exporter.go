package ports

import "github.com/Guilherme-Sai/Assistente-de-controladoria-embarque-transportadora/internal/domain"

// Exporter writes a snapshot of records to a destination file and returns the
// path actually written.
type Exporter interface {
	Export(records []domain.ShipmentRecord, path string) (string, error)
}
