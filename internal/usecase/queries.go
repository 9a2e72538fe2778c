package usecase

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/Guilherme-Sai/Assistente-de-controladoria-embarque-transportadora/internal/domain"
	"github.com/Guilherme-Sai/Assistente-de-controladoria-embarque-transportadora/internal/ports"
)

// Queries are read-only views over the record store.
type Queries struct {
	store ports.RecordStore
	log   *slog.Logger
}

func NewQueries(store ports.RecordStore, opts ...Option) *Queries {
	o := buildOptions(opts)
	return &Queries{store: store, log: o.log}
}

// FilterByIssueDateRange returns, in store order, every record whose issue
// date lies in [start, end]. A start after end yields an empty result.
func (q *Queries) FilterByIssueDateRange(startText, endText string) ([]domain.ShipmentRecord, error) {
	start, err := domain.ParseDate(startText)
	if err != nil {
		return nil, err
	}
	end, err := domain.ParseDate(endText)
	if err != nil {
		return nil, err
	}

	all := q.store.List()
	out := make([]domain.ShipmentRecord, 0, len(all))
	for _, r := range all {
		if r.IssuedWithin(start, end) {
			out = append(out, r)
		}
	}

	q.log.Debug("records.filtered", "start", startText, "end", endText, "matched", len(out), "total", len(all))
	return out, nil
}

// AverageTransitDays returns the mean transit days of the records issued by
// issuerFilter, or of every record when the filter is blank. The value is not
// rounded.
func (q *Queries) AverageTransitDays(issuerFilter string) (float64, error) {
	key := domain.IssuerKey(issuerFilter)

	var sum, n int
	for _, r := range q.store.List() {
		if key != "" && domain.IssuerKey(r.Issuer) != key {
			continue
		}
		sum += r.TransitDays
		n++
	}

	if n == 0 {
		msg := "store is empty"
		if key != "" {
			msg = fmt.Sprintf("issuer %q", strings.TrimSpace(issuerFilter))
		}
		return 0, &domain.OpError{
			Op:   "records.average",
			Kind: domain.KindNoData,
			Err:  fmt.Errorf("%s: %w", msg, domain.ErrNoData),
		}
	}

	return float64(sum) / float64(n), nil
}

// AverageTransitDaysByIssuer groups every record by issuer identity and
// returns the mean per group, ordered by each issuer's first appearance.
func (q *Queries) AverageTransitDaysByIssuer() []domain.IssuerAverage {
	return averagesByIssuer(q.store.List())
}

func averagesByIssuer(records []domain.ShipmentRecord) []domain.IssuerAverage {
	type acc struct {
		label string
		sum   int
		n     int
	}

	order := make([]string, 0)
	groups := map[string]*acc{}
	for _, r := range records {
		key := domain.IssuerKey(r.Issuer)
		g, ok := groups[key]
		if !ok {
			g = &acc{label: strings.TrimSpace(r.Issuer)}
			groups[key] = g
			order = append(order, key)
		}
		g.sum += r.TransitDays
		g.n++
	}

	out := make([]domain.IssuerAverage, 0, len(order))
	for _, key := range order {
		g := groups[key]
		out = append(out, domain.IssuerAverage{
			Issuer:      g.label,
			AverageDays: float64(g.sum) / float64(g.n),
			Records:     g.n,
		})
	}
	return out
}
