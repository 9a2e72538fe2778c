package ports

import "github.com/Guilherme-Sai/Assistente-de-controladoria-embarque-transportadora/internal/domain"

// RecordStore holds shipment records in insertion order.
// Implementations assign IDs on Append and never reuse them.
type RecordStore interface {
	Append(rec domain.ShipmentRecord) domain.ShipmentRecord
	Replace(id domain.RecordID, rec domain.ShipmentRecord) (domain.ShipmentRecord, error)
	Remove(id domain.RecordID) error
	Get(id domain.RecordID) (domain.ShipmentRecord, error)

	// List returns a copy of every record in insertion order.
	List() []domain.ShipmentRecord
	Len() int
}
