package calculation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/payrollhq/payroll-backend-go/internal/domain/employee"
	"github.com/payrollhq/payroll-backend-go/internal/domain/ratetable"
	"github.com/payrollhq/payroll-backend-go/internal/fixtures"
)

// stubRateRepo serves in-memory tables; only ResolveCurrent is exercised by
// the rate context resolver.
type stubRateRepo struct {
	tables []ratetable.RateTable
}

func (s *stubRateRepo) ResolveCurrent(_ context.Context, category ratetable.Category, asOf time.Time) (ratetable.RateTable, error) {
	var matches []ratetable.RateTable
	for _, table := range s.tables {
		if table.Category == category && table.IsActive && table.CoversDate(asOf) {
			matches = append(matches, table)
		}
	}
	switch len(matches) {
	case 0:
		return ratetable.RateTable{}, ratetable.ErrRateTableNotFound
	case 1:
		return matches[0], nil
	default:
		return ratetable.RateTable{}, ratetable.ErrRateTableConflict
	}
}

func (s *stubRateRepo) Create(context.Context, ratetable.RateTable) (ratetable.RateTable, error) {
	panic("not used")
}
func (s *stubRateRepo) GetByID(context.Context, string) (ratetable.RateTable, error) {
	panic("not used")
}
func (s *stubRateRepo) List(context.Context, *ratetable.Category, bool) ([]ratetable.RateTable, error) {
	panic("not used")
}
func (s *stubRateRepo) CountEffectiveOverlap(context.Context, ratetable.Category, time.Time, *time.Time) (int, error) {
	panic("not used")
}
func (s *stubRateRepo) Approve(context.Context, string, string) (ratetable.RateTable, error) {
	panic("not used")
}
func (s *stubRateRepo) Deactivate(context.Context, string) error {
	panic("not used")
}

func seededRepo(t *testing.T) *stubRateRepo {
	t.Helper()
	tables := fixtures.StatutoryDefaults2024()
	for i := range tables {
		tables[i].ID = "tbl-" + string(tables[i].Category)
	}
	return &stubRateRepo{tables: tables}
}

func TestResolveRateContext(t *testing.T) {
	asOf := time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC)

	rc, err := ResolveRateContext(context.Background(), seededRepo(t), asOf)
	require.NoError(t, err)

	assert.Len(t, rc.TaxBands, 5)
	assert.True(t, rc.PersonalRelief.Equal(dec(t, "2400")))
	assert.Len(t, rc.Contribution.Tiers, 2)
	assert.True(t, rc.SHIFRatePercent.Equal(dec(t, "2.75")))
	assert.True(t, rc.AHLRatePercent.Equal(dec(t, "1.5")))
	assert.True(t, rc.InsuranceCap.Equal(dec(t, "5000")))
	assert.True(t, rc.PensionCapAmount.Equal(dec(t, "20000")))
	assert.True(t, rc.PensionCapPercent.Equal(dec(t, "20")))
	assert.True(t, rc.MortgageCap.Equal(dec(t, "25000")))
	assert.Len(t, rc.Sources, len(ratetable.Categories))
	assert.Equal(t, "tbl-PAYE_TAX_BANDS", rc.Sources[ratetable.CategoryPAYETaxBands])
}

func TestResolveRateContextMissingCategory(t *testing.T) {
	repo := seededRepo(t)
	kept := repo.tables[:0]
	for _, table := range repo.tables {
		if table.Category != ratetable.CategorySHIFRates {
			kept = append(kept, table)
		}
	}
	repo.tables = kept

	_, err := ResolveRateContext(context.Background(), repo, time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigurationMissing)

	var cfgErr *ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, ratetable.CategorySHIFRates, cfgErr.Category)
}

func TestResolveRateContextBeforeEffectiveDate(t *testing.T) {
	_, err := ResolveRateContext(context.Background(), seededRepo(t), time.Date(2023, time.June, 30, 0, 0, 0, 0, time.UTC))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigurationMissing)
}

// End to end against the seeded tables: resolve, then price a payslip.
func TestEngineAgainstSeededDefaults(t *testing.T) {
	asOf := time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC)
	rc, err := ResolveRateContext(context.Background(), seededRepo(t), asOf)
	require.NoError(t, err)

	engine := NewPayEngine(rc)
	result, err := engine.CalculateEmployee(Input{
		Employee: employee.Employee{
			ID:             "emp-seed",
			EmployeeNumber: "EMP100",
			BasicSalary:    dec(t, "30000"),
			PayFrequency:   employee.PayFrequencyMonthly,
		},
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
	})
	require.NoError(t, err)

	assert.True(t, result.NSSFEmployee.Equal(dec(t, "1800.00")))
	assert.True(t, result.TaxableIncome.Equal(dec(t, "28200.00")))
	assert.True(t, result.GrossTax.Equal(dec(t, "3450.00")))
	assert.True(t, result.PAYETax.Equal(dec(t, "1050.00")))
	assert.True(t, result.SHIFContribution.Equal(dec(t, "825.00")))
	assert.True(t, result.AHLEmployee.Equal(dec(t, "450.00")))
	assert.True(t, result.NetPay.Equal(dec(t, "25875.00")))
	assert.Empty(t, result.Warnings)
}
