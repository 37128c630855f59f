package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/hirestream/hirestream/internal/domain/person"
	ierr "github.com/hirestream/hirestream/internal/errors"
	"github.com/hirestream/hirestream/internal/logger"
	"github.com/hirestream/hirestream/internal/postgres"
	"github.com/hirestream/hirestream/internal/types"
	"github.com/jmoiron/sqlx"
	"github.com/samber/lo"
)

type personRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewPersonRepository(db *postgres.DB, logger *logger.Logger) person.Repository {
	return &personRepository{db: db, logger: logger}
}

func (r *personRepository) Create(ctx context.Context, p *person.Person) error {
	query := `
		INSERT INTO persons (
			id, tenant_id, first_name, middle_name, last_name, person_status, company_id,
			email, phone, position, address_line1, address_line2, address_city,
			address_state, address_postal_code, address_country, employment_history,
			education, "references", metadata, license_expires_at, applied_at,
			inactive_at, inactive_reason, inactive_note,
			status, created_at, updated_at, created_by, updated_by
		) VALUES (
			:id, :tenant_id, :first_name, :middle_name, :last_name, :person_status, :company_id,
			:email, :phone, :position, :address_line1, :address_line2, :address_city,
			:address_state, :address_postal_code, :address_country, :employment_history,
			:education, :references, :metadata, :license_expires_at, :applied_at,
			:inactive_at, :inactive_reason, :inactive_note,
			:status, :created_at, :updated_at, :created_by, :updated_by
		)`

	r.logger.Debugw("creating person",
		"person_id", p.ID,
		"tenant_id", p.TenantID,
		"person_status", p.PersonStatus,
	)

	if _, err := r.db.NamedExecContext(ctx, query, p); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create person").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *personRepository) Get(ctx context.Context, id string) (*person.Person, error) {
	var p person.Person
	query := `
		SELECT * FROM persons
		WHERE id = $1 AND tenant_id = $2 AND status != $3`

	err := r.db.GetQuerier(ctx).GetContext(ctx, &p, query,
		id, types.GetTenantID(ctx), types.StatusDeleted)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ierr.NewError("person not found").
				WithHintf("Person with ID %s was not found", id).
				WithReportableDetails(map[string]any{"person_id": id}).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to get person").
			Mark(ierr.ErrDatabase)
	}
	return &p, nil
}

func (r *personRepository) List(ctx context.Context, filter *types.PersonFilter) ([]*person.Person, error) {
	if filter == nil {
		filter = types.NewPersonFilter()
	}

	query, args := r.buildListQuery(ctx, filter, false)
	rows := []*person.Person{}
	if err := r.db.GetQuerier(ctx).SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list persons").
			Mark(ierr.ErrDatabase)
	}
	return rows, nil
}

func (r *personRepository) Count(ctx context.Context, filter *types.PersonFilter) (int, error) {
	if filter == nil {
		filter = types.NewPersonFilter()
	}

	query, args := r.buildListQuery(ctx, filter, true)
	var count int
	if err := r.db.GetQuerier(ctx).GetContext(ctx, &count, query, args...); err != nil {
		return 0, ierr.WithError(err).
			WithHint("Failed to count persons").
			Mark(ierr.ErrDatabase)
	}
	return count, nil
}

func (r *personRepository) ListAll(ctx context.Context, filter *types.PersonFilter) ([]*person.Person, error) {
	f := *filter
	f.QueryFilter = *types.NewNoLimitQueryFilter()
	return r.List(ctx, &f)
}

// buildListQuery assembles the shared WHERE clause for List and Count so
// both stay behaviorally identical. Ordering is always applied_at DESC:
// every status-partitioned dashboard view is this one query with a
// different status filter.
func (r *personRepository) buildListQuery(ctx context.Context, filter *types.PersonFilter, forCount bool) (string, []interface{}) {
	sel := `SELECT * FROM persons`
	if forCount {
		sel = `SELECT COUNT(*) FROM persons`
	}

	query := sel + ` WHERE tenant_id = ? AND status != ?`
	args := []interface{}{types.GetTenantID(ctx), types.StatusDeleted}

	if len(filter.Statuses) > 0 {
		query += ` AND person_status IN (?)`
		args = append(args, lo.Map(filter.Statuses, func(s types.PersonStatus, _ int) string {
			return string(s)
		}))
	}
	if filter.CompanyID != "" {
		query += ` AND company_id = ?`
		args = append(args, filter.CompanyID)
	}
	if len(filter.PersonIDs) > 0 {
		query += ` AND id IN (?)`
		args = append(args, filter.PersonIDs)
	}

	if !forCount {
		query += ` ORDER BY applied_at DESC, id DESC`
		if !filter.IsUnlimited() {
			query += ` LIMIT ? OFFSET ?`
			args = append(args, filter.GetLimit(), filter.GetOffset())
		}
	}

	expanded, expandedArgs, err := sqlx.In(query, args...)
	if err != nil {
		// No slice params present; the query is already positional
		return r.db.Rebind(query), args
	}
	return r.db.Rebind(expanded), expandedArgs
}

func (r *personRepository) Update(ctx context.Context, p *person.Person) error {
	p.UpdatedAt = time.Now().UTC()
	p.UpdatedBy = types.GetUserID(ctx)

	query := `
		UPDATE persons SET
			first_name = :first_name,
			middle_name = :middle_name,
			last_name = :last_name,
			person_status = :person_status,
			company_id = :company_id,
			email = :email,
			phone = :phone,
			position = :position,
			address_line1 = :address_line1,
			address_line2 = :address_line2,
			address_city = :address_city,
			address_state = :address_state,
			address_postal_code = :address_postal_code,
			address_country = :address_country,
			employment_history = :employment_history,
			education = :education,
			"references" = :references,
			metadata = :metadata,
			license_expires_at = :license_expires_at,
			inactive_at = :inactive_at,
			inactive_reason = :inactive_reason,
			inactive_note = :inactive_note,
			updated_at = :updated_at,
			updated_by = :updated_by
		WHERE id = :id AND tenant_id = :tenant_id`

	r.logger.Debugw("updating person",
		"person_id", p.ID,
		"tenant_id", p.TenantID,
	)

	result, err := r.db.NamedExecContext(ctx, query, p)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update person").
			Mark(ierr.ErrDatabase)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return ierr.NewError("person not found").
			WithHintf("Person with ID %s was not found", p.ID).
			Mark(ierr.ErrNotFound)
	}
	return nil
}

func (r *personRepository) Delete(ctx context.Context, id string) error {
	query := `
		UPDATE persons SET
			status = :status,
			updated_at = :updated_at,
			updated_by = :updated_by
		WHERE id = :id AND tenant_id = :tenant_id`

	r.logger.Debugw("deleting person",
		"person_id", id,
		"tenant_id", types.GetTenantID(ctx),
	)

	_, err := r.db.NamedExecContext(ctx, query, map[string]interface{}{
		"id":         id,
		"tenant_id":  types.GetTenantID(ctx),
		"status":     types.StatusDeleted,
		"updated_by": types.GetUserID(ctx),
		"updated_at": time.Now().UTC(),
	})
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to delete person").
			Mark(ierr.ErrDatabase)
	}
	return nil
}
