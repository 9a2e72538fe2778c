package usecase

import (
	"errors"

	"github.com/Guilherme-Sai/Assistente-de-controladoria-embarque-transportadora/internal/domain"
	"github.com/Guilherme-Sai/Assistente-de-controladoria-embarque-transportadora/internal/infra/memstore"
	"github.com/Guilherme-Sai/Assistente-de-controladoria-embarque-transportadora/internal/ports"
)

var (
	_ ports.Exporter             = (*fakeExporter)(nil)
	_ ports.ChartRenderer        = (*fakeRenderer)(nil)
	_ ports.WorkspaceInitializer = (*fakeInitializer)(nil)
)

type fakeExporter struct {
	calls   int
	got     []domain.ShipmentRecord
	gotPath string
	err     error
}

func (f *fakeExporter) Export(records []domain.ShipmentRecord, path string) (string, error) {
	f.calls++
	f.got = records
	f.gotPath = path
	if f.err != nil {
		return "", f.err
	}
	return path, nil
}

type fakeRenderer struct {
	calls int
	got   []domain.IssuerAverage
	err   error
}

func (f *fakeRenderer) RenderChart(series []domain.IssuerAverage) error {
	f.calls++
	f.got = series
	return f.err
}

type fakeInitializer struct {
	spec  domain.WorkspaceSpec
	force bool
	err   error
}

func (f *fakeInitializer) Init(spec domain.WorkspaceSpec, force bool) error {
	f.spec = spec
	f.force = force
	return f.err
}

var errDiskFull = errors.New("disk full")

func input(issuer, carrier, issue, shipment string) domain.RecordInput {
	return domain.RecordInput{
		Issuer:       issuer,
		Carrier:      carrier,
		IssueDate:    issue,
		ShipmentDate: shipment,
	}
}

// seeded returns a store holding the given inputs, in order.
func seeded(inputs ...domain.RecordInput) *memstore.Store {
	s := memstore.New()
	for _, in := range inputs {
		rec, err := domain.BuildRecord(in)
		if err != nil {
			panic(err)
		}
		s.Append(rec)
	}
	return s
}
