package comparison

import (
	"context"

	"github.com/de-tools/treasury-atlas/pkg/models/domain"
	"github.com/de-tools/treasury-atlas/pkg/services/statement"
	"golang.org/x/sync/errgroup"
)

// Service is the period-level entry point the presentation layer calls: it
// resolves period identifiers to statements and runs the engine. The two
// statements share no mutable state, so they are fetched and built in
// parallel.
type Service struct {
	statements statement.Provider
	engine     *Engine
}

func NewService(statements statement.Provider, engine *Engine) *Service {
	return &Service{statements: statements, engine: engine}
}

// ComparePeriods compares the primary period against an optional comparison
// period. Diagnostics from both statements are returned beside the result so
// callers can render best-effort output with visible caveats.
func (s *Service) ComparePeriods(
	ctx context.Context,
	primary domain.Period,
	comparison *domain.Period,
) (domain.ComparisonResult, []domain.Diagnostic, error) {
	primaryStmt, comparisonStmt, diagnostics, err := s.fetch(ctx, primary, comparison)
	if err != nil {
		return domain.ComparisonResult{}, diagnostics, err
	}
	result, err := s.engine.Compare(ctx, primaryStmt, comparisonStmt)
	return result, diagnostics, err
}

// CompareDepartmentPeriods is the department-ranking counterpart of
// ComparePeriods.
func (s *Service) CompareDepartmentPeriods(
	ctx context.Context,
	primary domain.Period,
	comparison *domain.Period,
) (domain.DepartmentComparisonResult, []domain.Diagnostic, error) {
	primaryStmt, comparisonStmt, diagnostics, err := s.fetch(ctx, primary, comparison)
	if err != nil {
		return domain.DepartmentComparisonResult{}, diagnostics, err
	}
	result, err := s.engine.CompareDepartments(ctx, primaryStmt, comparisonStmt)
	return result, diagnostics, err
}

func (s *Service) fetch(
	ctx context.Context,
	primary domain.Period,
	comparison *domain.Period,
) (domain.Statement, *domain.Statement, []domain.Diagnostic, error) {
	var (
		primaryStmt     domain.Statement
		primaryDiags    []domain.Diagnostic
		comparisonStmt  domain.Statement
		comparisonDiags []domain.Diagnostic
		haveComparison  bool
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		primaryStmt, primaryDiags, err = s.statements.Get(gctx, primary)
		return err
	})
	if comparison != nil {
		haveComparison = true
		g.Go(func() error {
			var err error
			comparisonStmt, comparisonDiags, err = s.statements.Get(gctx, *comparison)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return domain.Statement{}, nil, nil, err
	}

	diagnostics := append(primaryDiags, comparisonDiags...)
	if !haveComparison {
		return primaryStmt, nil, diagnostics, nil
	}
	return primaryStmt, &comparisonStmt, diagnostics, nil
}
