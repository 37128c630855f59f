package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/hirestream/hirestream/internal/domain/company"
	ierr "github.com/hirestream/hirestream/internal/errors"
	"github.com/hirestream/hirestream/internal/logger"
	"github.com/hirestream/hirestream/internal/postgres"
	"github.com/hirestream/hirestream/internal/types"
)

type companyRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewCompanyRepository(db *postgres.DB, logger *logger.Logger) company.Repository {
	return &companyRepository{db: db, logger: logger}
}

func (r *companyRepository) Create(ctx context.Context, c *company.Company) error {
	query := `
		INSERT INTO companies (
			id, tenant_id, name, logo_key, contact_email, contact_phone, website,
			required_documents, form_variant,
			status, created_at, updated_at, created_by, updated_by
		) VALUES (
			:id, :tenant_id, :name, :logo_key, :contact_email, :contact_phone, :website,
			:required_documents, :form_variant,
			:status, :created_at, :updated_at, :created_by, :updated_by
		)`

	r.logger.Debugw("creating company",
		"company_id", c.ID,
		"tenant_id", c.TenantID,
	)

	if _, err := r.db.NamedExecContext(ctx, query, c); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create company").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *companyRepository) Get(ctx context.Context, id string) (*company.Company, error) {
	var c company.Company
	query := `
		SELECT * FROM companies
		WHERE id = $1 AND tenant_id = $2 AND status != $3`

	err := r.db.GetQuerier(ctx).GetContext(ctx, &c, query,
		id, types.GetTenantID(ctx), types.StatusDeleted)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ierr.NewError("company not found").
				WithHintf("Company with ID %s was not found", id).
				WithReportableDetails(map[string]any{"company_id": id}).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to get company").
			Mark(ierr.ErrDatabase)
	}
	return &c, nil
}

func (r *companyRepository) GetPublic(ctx context.Context, id string) (*company.Company, error) {
	var c company.Company
	query := `
		SELECT * FROM companies
		WHERE id = $1 AND status != $2`

	err := r.db.GetQuerier(ctx).GetContext(ctx, &c, query, id, types.StatusDeleted)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ierr.NewError("company not found").
				WithHintf("Company with ID %s was not found", id).
				WithReportableDetails(map[string]any{"company_id": id}).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to get company").
			Mark(ierr.ErrDatabase)
	}
	return &c, nil
}

func (r *companyRepository) List(ctx context.Context, filter *types.CompanyFilter) ([]*company.Company, error) {
	if filter == nil {
		filter = types.NewCompanyFilter()
	}

	query := `
		SELECT * FROM companies
		WHERE tenant_id = $1 AND status != $2
		ORDER BY created_at DESC`
	args := []interface{}{types.GetTenantID(ctx), types.StatusDeleted}

	if !filter.IsUnlimited() {
		query += ` LIMIT $3 OFFSET $4`
		args = append(args, filter.GetLimit(), filter.GetOffset())
	}

	rows := []*company.Company{}
	if err := r.db.GetQuerier(ctx).SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list companies").
			Mark(ierr.ErrDatabase)
	}
	return rows, nil
}

func (r *companyRepository) Count(ctx context.Context, filter *types.CompanyFilter) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM companies WHERE tenant_id = $1 AND status != $2`
	err := r.db.GetQuerier(ctx).GetContext(ctx, &count, query,
		types.GetTenantID(ctx), types.StatusDeleted)
	if err != nil {
		return 0, ierr.WithError(err).
			WithHint("Failed to count companies").
			Mark(ierr.ErrDatabase)
	}
	return count, nil
}

func (r *companyRepository) Update(ctx context.Context, c *company.Company) error {
	c.UpdatedAt = time.Now().UTC()
	c.UpdatedBy = types.GetUserID(ctx)

	query := `
		UPDATE companies SET
			name = :name,
			logo_key = :logo_key,
			contact_email = :contact_email,
			contact_phone = :contact_phone,
			website = :website,
			required_documents = :required_documents,
			form_variant = :form_variant,
			updated_at = :updated_at,
			updated_by = :updated_by
		WHERE id = :id AND tenant_id = :tenant_id`

	result, err := r.db.NamedExecContext(ctx, query, c)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update company").
			Mark(ierr.ErrDatabase)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return ierr.NewError("company not found").
			WithHintf("Company with ID %s was not found", c.ID).
			Mark(ierr.ErrNotFound)
	}
	return nil
}

func (r *companyRepository) Delete(ctx context.Context, id string) error {
	query := `
		UPDATE companies SET
			status = :status,
			updated_at = :updated_at,
			updated_by = :updated_by
		WHERE id = :id AND tenant_id = :tenant_id`

	_, err := r.db.NamedExecContext(ctx, query, map[string]interface{}{
		"id":         id,
		"tenant_id":  types.GetTenantID(ctx),
		"status":     types.StatusDeleted,
		"updated_by": types.GetUserID(ctx),
		"updated_at": time.Now().UTC(),
	})
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to delete company").
			Mark(ierr.ErrDatabase)
	}
	return nil
}
