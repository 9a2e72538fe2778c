package domain

import (
	"fmt"
	"time"
)

// RecordID is the stable surrogate key of a shipment record. It is assigned by
// the record store on insertion and never reused. The zero value means
// "no record".
type RecordID uint64

// ShipmentRecord is a single issue/shipment event pair.
type ShipmentRecord struct {
	ID           RecordID
	Issuer       string
	Carrier      string
	IssueDate    time.Time
	ShipmentDate time.Time

	// TransitDays is ShipmentDate - IssueDate in whole days. Always >= 0.
	TransitDays int
}

// RecordInput is the raw text captured by the form.
type RecordInput struct {
	Issuer       string
	Carrier      string
	IssueDate    string
	ShipmentDate string
}

// BuildRecord validates input and returns a fully computed record without an
// ID. Records are never stored partially constructed: callers insert only what
// BuildRecord returned without error.
func BuildRecord(in RecordInput) (ShipmentRecord, error) {
	issue, err := ParseDate(in.IssueDate)
	if err != nil {
		return ShipmentRecord{}, err
	}
	shipment, err := ParseDate(in.ShipmentDate)
	if err != nil {
		return ShipmentRecord{}, err
	}

	days := DaysBetween(issue, shipment)
	if days < 0 {
		return ShipmentRecord{}, &OpError{
			Op:   "record.build",
			Kind: KindInvalidDateOrder,
			Err: fmt.Errorf("shipment %s before issue %s: %w",
				FormatDate(shipment), FormatDate(issue), ErrInvalidDateOrder),
		}
	}

	return ShipmentRecord{
		Issuer:       in.Issuer,
		Carrier:      in.Carrier,
		IssueDate:    issue,
		ShipmentDate: shipment,
		TransitDays:  days,
	}, nil
}

// Input converts a stored record back into form text, e.g. to fill the edit
// form after a selection.
func (r ShipmentRecord) Input() RecordInput {
	return RecordInput{
		Issuer:       r.Issuer,
		Carrier:      r.Carrier,
		IssueDate:    FormatDate(r.IssueDate),
		ShipmentDate: FormatDate(r.ShipmentDate),
	}
}

// IssuedWithin reports whether the issue date falls in [start, end].
func (r ShipmentRecord) IssuedWithin(start, end time.Time) bool {
	return !r.IssueDate.Before(start) && !r.IssueDate.After(end)
}
