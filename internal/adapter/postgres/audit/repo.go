// Package audit implements the Audit repository using PostgreSQL.
// It provides append-only operations for audit log records.
package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/prodcost-backend/internal/adapter/postgres"
	"github.com/heartmarshall/prodcost-backend/internal/domain"
)

var columns = []string{"id", "actor_id", "entity_type", "entity_id", "action", "changes", "created_at"}

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new audit repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new audit record and returns the persisted domain.AuditRecord.
func (r *Repo) Create(ctx context.Context, record domain.AuditRecord) (domain.AuditRecord, error) {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	changes := record.Changes
	if changes == nil {
		changes = map[string]any{}
	}
	changesJSON, err := json.Marshal(changes)
	if err != nil {
		return domain.AuditRecord{}, fmt.Errorf("audit_record marshal changes: %w", err)
	}

	query, args, err := postgres.Builder().
		Insert("audit_log").
		Columns(columns...).
		Values(record.ID, record.ActorID, string(record.EntityType), record.EntityID, string(record.Action), changesJSON, record.CreatedAt).
		Suffix("RETURNING id, actor_id, entity_type, entity_id, action, changes, created_at").
		ToSql()
	if err != nil {
		return domain.AuditRecord{}, fmt.Errorf("build insert audit_record: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...)
	stored, err := scanRecord(row)
	if err != nil {
		return domain.AuditRecord{}, postgres.MapError(err, "audit_record", record.ID)
	}
	return stored, nil
}

// Log creates an audit record without returning it (fire-and-forget).
// Satisfies production.auditLogger and costcalc.auditLogger.
func (r *Repo) Log(ctx context.Context, record domain.AuditRecord) error {
	_, err := r.Create(ctx, record)
	return err
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByEntity returns the change history for a specific entity, ordered by
// created_at DESC, limited to `limit` records.
func (r *Repo) GetByEntity(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID, limit int) ([]domain.AuditRecord, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From("audit_log").
		Where(squirrel.Eq{"entity_type": string(entityType), "entity_id": entityID}).
		OrderBy("created_at DESC", "id").
		Limit(uint64(max(limit, 1))).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select audit_records: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("get audit_records by entity: %w", err)
	}
	defer rows.Close()

	records := []domain.AuditRecord{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get audit_records by entity: %w", err)
	}

	return records, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func scanRecord(row pgx.Row) (domain.AuditRecord, error) {
	var (
		rec        domain.AuditRecord
		entityType string
		action     string
		changes    []byte
	)
	if err := row.Scan(&rec.ID, &rec.ActorID, &entityType, &rec.EntityID, &action, &changes, &rec.CreatedAt); err != nil {
		return domain.AuditRecord{}, err
	}
	rec.EntityType = domain.EntityType(entityType)
	rec.Action = domain.AuditAction(action)

	// changes: JSONB -> map[string]any
	if len(changes) > 0 {
		m := make(map[string]any)
		if err := json.Unmarshal(changes, &m); err != nil {
			return domain.AuditRecord{}, fmt.Errorf("audit_record %s unmarshal changes: %w", rec.ID, err)
		}
		rec.Changes = m
	}

	return rec, nil
}
