package postgresql

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/payrollhq/payroll-backend-go/internal/domain/ratetable"
	"github.com/payrollhq/payroll-backend-go/internal/pkg/database"
)

type rateTableRepository struct {
	db *database.DB
}

func NewRateTableRepository(db *database.DB) ratetable.RateTableRepository {
	return &rateTableRepository{db: db}
}

// rateTablePayload is the JSONB envelope for the category-specific contents.
type rateTablePayload struct {
	TaxBands     []ratetable.TaxBand             `json:"tax_bands,omitempty"`
	Relief       *ratetable.FlatRelief           `json:"relief,omitempty"`
	Contribution *ratetable.ContributionSchedule `json:"contribution,omitempty"`
	Levy         *ratetable.LevyRate             `json:"levy,omitempty"`
	Cap          *ratetable.ReliefCap            `json:"cap,omitempty"`
}

func marshalPayload(t ratetable.RateTable) ([]byte, error) {
	return json.Marshal(rateTablePayload{
		TaxBands:     t.TaxBands,
		Relief:       t.Relief,
		Contribution: t.Contribution,
		Levy:         t.Levy,
		Cap:          t.Cap,
	})
}

func unmarshalPayload(raw []byte, t *ratetable.RateTable) error {
	var p rateTablePayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return fmt.Errorf("failed to decode rate table payload: %w", err)
	}
	t.TaxBands = p.TaxBands
	t.Relief = p.Relief
	t.Contribution = p.Contribution
	t.Levy = p.Levy
	t.Cap = p.Cap
	return nil
}

const rateTableColumns = `
	id, category, effective_date, end_date, is_active, payload,
	created_by, approved_by, approved_at, notes, created_at, updated_at
`

func scanRateTable(row pgx.Row) (ratetable.RateTable, error) {
	var (
		t   ratetable.RateTable
		raw []byte
	)
	err := row.Scan(
		&t.ID, &t.Category, &t.EffectiveDate, &t.EndDate, &t.IsActive, &raw,
		&t.CreatedBy, &t.ApprovedBy, &t.ApprovedAt, &t.Notes, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return ratetable.RateTable{}, err
	}
	if err := unmarshalPayload(raw, &t); err != nil {
		return ratetable.RateTable{}, err
	}
	return t, nil
}

func (r *rateTableRepository) Create(ctx context.Context, table ratetable.RateTable) (ratetable.RateTable, error) {
	q := GetQuerier(ctx, r.db)

	raw, err := marshalPayload(table)
	if err != nil {
		return ratetable.RateTable{}, fmt.Errorf("failed to encode rate table payload: %w", err)
	}

	query := `
		INSERT INTO rate_tables (id, category, effective_date, end_date, is_active, payload, created_by, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at
	`

	err = q.QueryRow(ctx, query,
		table.ID, table.Category, table.EffectiveDate, table.EndDate, table.IsActive, raw, table.CreatedBy, table.Notes,
	).Scan(&table.CreatedAt, &table.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "uk_rate_table_category_effective") {
			return ratetable.RateTable{}, ratetable.ErrRateTableExists
		}
		return ratetable.RateTable{}, fmt.Errorf("failed to create rate table: %w", err)
	}

	return table, nil
}

func (r *rateTableRepository) GetByID(ctx context.Context, id string) (ratetable.RateTable, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + rateTableColumns + ` FROM rate_tables WHERE id = $1`

	t, err := scanRateTable(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return ratetable.RateTable{}, ratetable.ErrRateTableNotFound
		}
		return ratetable.RateTable{}, fmt.Errorf("failed to get rate table: %w", err)
	}

	return t, nil
}

func (r *rateTableRepository) List(ctx context.Context, category *ratetable.Category, activeOnly bool) ([]ratetable.RateTable, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + rateTableColumns + ` FROM rate_tables WHERE 1=1`
	args := []interface{}{}
	if category != nil {
		args = append(args, *category)
		query += fmt.Sprintf(" AND category = $%d", len(args))
	}
	if activeOnly {
		query += " AND is_active = true"
	}
	query += " ORDER BY category, effective_date DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list rate tables: %w", err)
	}
	defer rows.Close()

	var tables []ratetable.RateTable
	for rows.Next() {
		t, err := scanRateTable(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan rate table: %w", err)
		}
		tables = append(tables, t)
	}

	return tables, rows.Err()
}

func (r *rateTableRepository) ResolveCurrent(ctx context.Context, category ratetable.Category, asOf time.Time) (ratetable.RateTable, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + rateTableColumns + `
		FROM rate_tables
		WHERE category = $1
		  AND is_active = true
		  AND effective_date <= $2
		  AND (end_date IS NULL OR end_date >= $2)
	`

	rows, err := q.Query(ctx, query, category, asOf)
	if err != nil {
		return ratetable.RateTable{}, fmt.Errorf("failed to resolve rate table: %w", err)
	}
	defer rows.Close()

	var matches []ratetable.RateTable
	for rows.Next() {
		t, err := scanRateTable(rows)
		if err != nil {
			return ratetable.RateTable{}, fmt.Errorf("failed to scan rate table: %w", err)
		}
		matches = append(matches, t)
	}
	if err := rows.Err(); err != nil {
		return ratetable.RateTable{}, fmt.Errorf("failed to resolve rate table: %w", err)
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

func (r *rateTableRepository) CountEffectiveOverlap(ctx context.Context, category ratetable.Category, effective time.Time, end *time.Time) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*)
		FROM rate_tables
		WHERE category = $1
		  AND is_active = true
		  AND effective_date <= COALESCE($3, 'infinity'::date)
		  AND (end_date IS NULL OR end_date >= $2)
	`

	var count int
	if err := q.QueryRow(ctx, query, category, effective, end).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count overlapping rate tables: %w", err)
	}

	return count, nil
}

func (r *rateTableRepository) Approve(ctx context.Context, id string, approvedBy string) (ratetable.RateTable, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE rate_tables
		SET approved_by = $2, approved_at = NOW(), updated_at = NOW()
		WHERE id = $1
		RETURNING ` + rateTableColumns

	t, err := scanRateTable(q.QueryRow(ctx, query, id, approvedBy))
	if err != nil {
		if err == pgx.ErrNoRows {
			return ratetable.RateTable{}, ratetable.ErrRateTableNotFound
		}
		return ratetable.RateTable{}, fmt.Errorf("failed to approve rate table: %w", err)
	}

	return t, nil
}

func (r *rateTableRepository) Deactivate(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE rate_tables SET is_active = false, updated_at = NOW() WHERE id = $1`

	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate rate table: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ratetable.ErrRateTableNotFound
	}

	return nil
}
