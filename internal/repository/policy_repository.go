package repository

import (
	"context"

	"youthy-chat/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

var policyColumns = []string{
	"id", "title", "category", "region", "description",
	"support_amount", "eligibility_text", "application_period",
	"application_method", "contact_info", "url",
}

// PolicyRepository loads and persists policy records in Postgres. It is
// only a source for the in-memory store: the request path never touches
// the database.
type PolicyRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewPolicyRepository(db *pgxpool.Pool, logger *zap.Logger) *PolicyRepository {
	return &PolicyRepository{
		db:     db,
		logger: logger,
	}
}

// ListAll returns every policy row in insertion order. Rows that fail
// to scan are logged and skipped so one bad row cannot block a reload.
func (r *PolicyRepository) ListAll(ctx context.Context) ([]models.PolicyRecord, error) {
	query := squirrel.Select(policyColumns...).
		From("policies").
		OrderBy("id ASC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.PolicyRecord
	for rows.Next() {
		var p models.PolicyRecord
		if err := rows.Scan(
			&p.ID, &p.Title, &p.Category, &p.Region, &p.Description,
			&p.SupportAmount, &p.EligibilityText, &p.ApplicationPeriod,
			&p.ApplicationMethod, &p.ContactInfo, &p.URL,
		); err != nil {
			r.logger.Warn("Skipping unreadable policy row", zap.Error(err))
			continue
		}
		records = append(records, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// ListByCategory returns the rows of exactly the given category.
func (r *PolicyRepository) ListByCategory(ctx context.Context, category models.Category) ([]models.PolicyRecord, error) {
	query := squirrel.Select(policyColumns...).
		From("policies").
		Where(squirrel.Eq{"category": category}).
		OrderBy("id ASC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.PolicyRecord
	for rows.Next() {
		var p models.PolicyRecord
		if err := rows.Scan(
			&p.ID, &p.Title, &p.Category, &p.Region, &p.Description,
			&p.SupportAmount, &p.EligibilityText, &p.ApplicationPeriod,
			&p.ApplicationMethod, &p.ContactInfo, &p.URL,
		); err != nil {
			r.logger.Warn("Skipping unreadable policy row", zap.Error(err))
			continue
		}
		records = append(records, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// Upsert writes one policy record, replacing an existing row with the
// same id. Used by the seeding command.
func (r *PolicyRepository) Upsert(ctx context.Context, p models.PolicyRecord) error {
	query := squirrel.Insert("policies").
		Columns(policyColumns...).
		Values(
			p.ID, p.Title, p.Category, p.Region, p.Description,
			p.SupportAmount, p.EligibilityText, p.ApplicationPeriod,
			p.ApplicationMethod, p.ContactInfo, p.URL,
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			category = EXCLUDED.category,
			region = EXCLUDED.region,
			description = EXCLUDED.description,
			support_amount = EXCLUDED.support_amount,
			eligibility_text = EXCLUDED.eligibility_text,
			application_period = EXCLUDED.application_period,
			application_method = EXCLUDED.application_method,
			contact_info = EXCLUDED.contact_info,
			url = EXCLUDED.url`).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

// EnsureSchema creates the policies table when it does not exist yet.
func (r *PolicyRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS policies (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			category TEXT NOT NULL,
			region TEXT NOT NULL DEFAULT 'nationwide',
			description TEXT NOT NULL DEFAULT '',
			support_amount TEXT NOT NULL DEFAULT '',
			eligibility_text TEXT NOT NULL DEFAULT '',
			application_period TEXT NOT NULL DEFAULT '',
			application_method TEXT NOT NULL DEFAULT '',
			contact_info TEXT NOT NULL DEFAULT '',
			url TEXT NOT NULL DEFAULT ''
		)`)
	return err
}
