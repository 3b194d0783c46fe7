package comparison

import (
	"context"
	"errors"
	"testing"

	"github.com/de-tools/treasury-atlas/pkg/models/domain"
	"github.com/de-tools/treasury-atlas/pkg/services/insight"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockProvider struct {
	mock.Mock
}

func (m *mockProvider) Get(ctx context.Context, period domain.Period) (domain.Statement, []domain.Diagnostic, error) {
	args := m.Called(ctx, period)
	return args.Get(0).(domain.Statement), args.Get(1).([]domain.Diagnostic), args.Error(2)
}

func TestService_ComparePeriods(t *testing.T) {
	provider := &mockProvider{}
	provider.On("Get", mock.Anything, feb24).
		Return(primaryStatement(), []domain.Diagnostic{
			{Kind: domain.DiagUnknownLabel, Line: 3, Label: "Mystery Row"},
		}, nil)
	provider.On("Get", mock.Anything, feb23).
		Return(comparisonStatement(), []domain.Diagnostic(nil), nil)

	svc := NewService(provider, NewEngine(nil, insight.NewGenerator(insight.DefaultSettings()), DefaultSettings()))

	result, diagnostics, err := svc.ComparePeriods(context.Background(), feb24, &feb23)

	require.NoError(t, err)
	assert.Equal(t, feb24, result.PrimaryPeriod)
	require.NotNil(t, result.ComparisonPeriod)
	assert.Equal(t, feb23, *result.ComparisonPeriod)
	require.Len(t, diagnostics, 1)
	assert.Equal(t, "Mystery Row", diagnostics[0].Label)
	provider.AssertExpectations(t)
}

func TestService_ComparePeriods_SinglePeriod(t *testing.T) {
	provider := &mockProvider{}
	provider.On("Get", mock.Anything, feb24).
		Return(primaryStatement(), []domain.Diagnostic(nil), nil)

	svc := NewService(provider, newTestEngine(nil))

	result, diagnostics, err := svc.ComparePeriods(context.Background(), feb24, nil)

	require.NoError(t, err)
	assert.Nil(t, result.ComparisonPeriod)
	assert.Empty(t, diagnostics)
	provider.AssertNumberOfCalls(t, "Get", 1)
}

func TestService_ComparePeriods_FetchFailure(t *testing.T) {
	wantErr := errors.New("statement source unavailable")
	provider := &mockProvider{}
	provider.On("Get", mock.Anything, feb24).
		Return(domain.Statement{}, []domain.Diagnostic(nil), wantErr)
	provider.On("Get", mock.Anything, feb23).
		Return(comparisonStatement(), []domain.Diagnostic(nil), nil).Maybe()

	svc := NewService(provider, newTestEngine(nil))

	_, _, err := svc.ComparePeriods(context.Background(), feb24, &feb23)

	require.Error(t, err)
	assert.ErrorIs(t, err, wantErr)
}

func TestService_CompareDepartmentPeriods(t *testing.T) {
	provider := &mockProvider{}
	provider.On("Get", mock.Anything, feb24).
		Return(primaryStatement(), []domain.Diagnostic(nil), nil)
	provider.On("Get", mock.Anything, feb23).
		Return(comparisonStatement(), []domain.Diagnostic(nil), nil)

	svc := NewService(provider, newTestEngine(nil))

	result, _, err := svc.CompareDepartmentPeriods(context.Background(), feb24, &feb23)

	require.NoError(t, err)
	require.NotEmpty(t, result.Departments)
	for _, d := range result.Departments {
		assert.NotEmpty(t, d.Department)
	}
}
