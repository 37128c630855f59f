package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/hirestream/hirestream/internal/domain/document"
	ierr "github.com/hirestream/hirestream/internal/errors"
	"github.com/hirestream/hirestream/internal/logger"
	"github.com/hirestream/hirestream/internal/postgres"
	"github.com/hirestream/hirestream/internal/types"
)

type documentRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewDocumentRepository(db *postgres.DB, logger *logger.Logger) document.Repository {
	return &documentRepository{db: db, logger: logger}
}

func (r *documentRepository) Create(ctx context.Context, d *document.Document) error {
	query := `
		INSERT INTO documents (
			id, tenant_id, person_id, slot, requirement_id, title, storage_key,
			content_type, size_bytes, uploaded_at,
			status, created_at, updated_at, created_by, updated_by
		) VALUES (
			:id, :tenant_id, :person_id, :slot, :requirement_id, :title, :storage_key,
			:content_type, :size_bytes, :uploaded_at,
			:status, :created_at, :updated_at, :created_by, :updated_by
		)`

	r.logger.Debugw("creating document",
		"document_id", d.ID,
		"person_id", d.PersonID,
		"slot", d.Slot,
	)

	if _, err := r.db.NamedExecContext(ctx, query, d); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create document").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *documentRepository) Get(ctx context.Context, id string) (*document.Document, error) {
	var d document.Document
	query := `
		SELECT * FROM documents
		WHERE id = $1 AND tenant_id = $2 AND status != $3`

	err := r.db.GetQuerier(ctx).GetContext(ctx, &d, query,
		id, types.GetTenantID(ctx), types.StatusDeleted)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ierr.NewError("document not found").
				WithHintf("Document with ID %s was not found", id).
				WithReportableDetails(map[string]any{"document_id": id}).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to get document").
			Mark(ierr.ErrDatabase)
	}
	return &d, nil
}

func (r *documentRepository) GetByStorageKey(ctx context.Context, storageKey string) (*document.Document, error) {
	var d document.Document
	query := `
		SELECT * FROM documents
		WHERE storage_key = $1 AND tenant_id = $2 AND status != $3`

	err := r.db.GetQuerier(ctx).GetContext(ctx, &d, query,
		storageKey, types.GetTenantID(ctx), types.StatusDeleted)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ierr.NewError("document not found").
				WithHint("No document exists for this storage key").
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to get document").
			Mark(ierr.ErrDatabase)
	}
	return &d, nil
}

func (r *documentRepository) List(ctx context.Context, filter *types.DocumentFilter) ([]*document.Document, error) {
	query := `
		SELECT * FROM documents
		WHERE tenant_id = $1 AND status != $2`
	args := []interface{}{types.GetTenantID(ctx), types.StatusDeleted}

	if filter.PersonID != "" {
		args = append(args, filter.PersonID)
		query += ` AND person_id = $3`
	}
	if filter.Slot != nil {
		args = append(args, *filter.Slot)
		if filter.PersonID != "" {
			query += ` AND slot = $4`
		} else {
			query += ` AND slot = $3`
		}
	}
	query += ` ORDER BY uploaded_at DESC`

	rows := []*document.Document{}
	if err := r.db.GetQuerier(ctx).SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list documents").
			Mark(ierr.ErrDatabase)
	}
	return rows, nil
}

func (r *documentRepository) Update(ctx context.Context, d *document.Document) error {
	d.UpdatedAt = time.Now().UTC()
	d.UpdatedBy = types.GetUserID(ctx)

	query := `
		UPDATE documents SET
			slot = :slot,
			requirement_id = :requirement_id,
			title = :title,
			storage_key = :storage_key,
			content_type = :content_type,
			size_bytes = :size_bytes,
			uploaded_at = :uploaded_at,
			updated_at = :updated_at,
			updated_by = :updated_by
		WHERE id = :id AND tenant_id = :tenant_id`

	result, err := r.db.NamedExecContext(ctx, query, d)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update document").
			Mark(ierr.ErrDatabase)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return ierr.NewError("document not found").
			WithHintf("Document with ID %s was not found", d.ID).
			Mark(ierr.ErrNotFound)
	}
	return nil
}

func (r *documentRepository) Delete(ctx context.Context, id string) error {
	query := `
		UPDATE documents SET
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
			WithHint("Failed to delete document").
			Mark(ierr.ErrDatabase)
	}
	return nil
}
