// Package memstore keeps shipment records in process memory. Nothing is
// persisted; the store lives as long as the process.
package memstore

import (
	"fmt"
	"sync"

	"github.com/Guilherme-Sai/Assistente-de-controladoria-embarque-transportadora/internal/domain"
	"github.com/Guilherme-Sai/Assistente-de-controladoria-embarque-transportadora/internal/ports"
)

type Store struct {
	mu      sync.RWMutex
	records []domain.ShipmentRecord
	lastID  domain.RecordID
}

func New() *Store {
	return &Store{}
}

var _ ports.RecordStore = (*Store)(nil)

// Append assigns the next ID and adds rec at the end.
func (s *Store) Append(rec domain.ShipmentRecord) domain.ShipmentRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastID++
	rec.ID = s.lastID
	s.records = append(s.records, rec)
	return rec
}

// Replace overwrites every field of the record with the given id, keeping its
// id and position.
func (s *Store) Replace(id domain.RecordID, rec domain.ShipmentRecord) (domain.ShipmentRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return domain.ShipmentRecord{}, notFound("memstore.replace", id)
	}
	rec.ID = id
	s.records[i] = rec
	return rec, nil
}

func (s *Store) Remove(id domain.RecordID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return notFound("memstore.remove", id)
	}
	s.records = append(s.records[:i], s.records[i+1:]...)
	return nil
}

func (s *Store) Get(id domain.RecordID) (domain.ShipmentRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return domain.ShipmentRecord{}, notFound("memstore.get", id)
	}
	return s.records[i], nil
}

func (s *Store) List() []domain.ShipmentRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.ShipmentRecord, len(s.records))
	copy(out, s.records)
	return out
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// indexOf is a linear scan; record counts are small. Caller holds the lock.
func (s *Store) indexOf(id domain.RecordID) int {
	if id == 0 {
		return -1
	}
	for i := range s.records {
		if s.records[i].ID == id {
			return i
		}
	}
	return -1
}

func notFound(op string, id domain.RecordID) error {
	return &domain.OpError{
		Op:   op,
		Kind: domain.KindNotFound,
		Err:  fmt.Errorf("record %d: %w", id, domain.ErrNotFound),
	}
}
