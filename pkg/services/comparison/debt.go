package comparison

import (
	"context"
	"fmt"

	"github.com/de-tools/treasury-atlas/pkg/models/domain"
	"gopkg.in/ini.v1"
)

// DebtProvider supplies the total federal debt outstanding for a period.
// The statement text does not carry the cumulative debt figure, so it is an
// injected external input; a period with no registered figure yields an
// absent Amount, never zero.
type DebtProvider interface {
	Debt(ctx context.Context, period domain.Period) (domain.Amount, error)
}

// DebtRegistry reads the debt series from an operator-maintained ini file
// with one section per period key:
//
//	[2024-02]
//	total_debt = 34799000
//
// Figures are in report units (millions). Loaded once at startup; read-only
// afterwards.
type DebtRegistry struct {
	cfg *ini.File
}

func NewDebtRegistry(path string) (*DebtRegistry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load debt series: %w", err)
	}
	return &DebtRegistry{cfg: cfg}, nil
}

func (r *DebtRegistry) Debt(_ context.Context, period domain.Period) (domain.Amount, error) {
	section, err := r.cfg.GetSection(period.Key())
	if err != nil {
		return domain.Amount{}, nil
	}
	key, err := section.GetKey("total_debt")
	if err != nil {
		return domain.Amount{}, nil
	}
	v, err := key.Int64()
	if err != nil {
		return domain.Amount{}, fmt.Errorf("debt series %s: %w", period.Key(), err)
	}
	return domain.AmountOf(v), nil
}

// StaticDebtSeries is a map-backed provider keyed by Period.Key, convenient
// for tests and embedders that already hold the series in memory.
type StaticDebtSeries map[string]int64

func (s StaticDebtSeries) Debt(_ context.Context, period domain.Period) (domain.Amount, error) {
	v, ok := s[period.Key()]
	if !ok {
		return domain.Amount{}, nil
	}
	return domain.AmountOf(v), nil
}
