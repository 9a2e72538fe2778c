package ports

import "github.com/Guilherme-Sai/Assistente-de-controladoria-embarque-transportadora/internal/domain"

// ChartRenderer draws average transit days per issuer. Callers never pass an
// empty slice.
type ChartRenderer interface {
	RenderChart(series []domain.IssuerAverage) error
}
