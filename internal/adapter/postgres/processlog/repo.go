// Package processlog implements the append-only process event log using
// PostgreSQL.
package processlog

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/prodcost-backend/internal/adapter/postgres"
	"github.com/heartmarshall/prodcost-backend/internal/domain"
	"github.com/heartmarshall/prodcost-backend/internal/timeacct"
)

var columns = []string{"id", "work_plan_id", "process_number", "status", "logged_at", "note"}

// Repo provides process event persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new process log repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Append stores one event. Returns domain.ErrAlreadyExists when the work plan
// already has an event for the same process at the same instant, and
// domain.ErrNotFound when the work plan does not exist.
func (r *Repo) Append(ctx context.Context, ev domain.ProcessEvent) (domain.ProcessEvent, error) {
	if ev.ID == uuid.Nil {
		ev.ID = uuid.New()
	}

	query, args, err := postgres.Builder().
		Insert("process_logs").
		Columns(columns...).
		Values(ev.ID, ev.WorkPlanID, ev.ProcessNumber, string(ev.Status), ev.LoggedAt, ev.Note).
		Suffix("RETURNING id, work_plan_id, process_number, status, logged_at, note").
		ToSql()
	if err != nil {
		return domain.ProcessEvent{}, fmt.Errorf("build insert process_log: %w", err)
	}

	stored, err := scanEvent(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return domain.ProcessEvent{}, postgres.MapError(err, "process_log", ev.ID)
	}
	return stored, nil
}

// List returns the events of a work plan ordered by logged_at. The date
// filter is a half-open [day, day+1) range so pairing afterwards only ever
// sees events of that day.
func (r *Repo) List(ctx context.Context, workPlanID uuid.UUID, f domain.ProcessEventFilter) ([]domain.ProcessEvent, error) {
	qb := postgres.Builder().
		Select(columns...).
		From("process_logs").
		Where(squirrel.Eq{"work_plan_id": workPlanID}).
		OrderBy("logged_at", "process_number NULLS FIRST", "id")

	if f.ProcessNumber != nil {
		qb = qb.Where(squirrel.Eq{"process_number": *f.ProcessNumber})
	}
	if f.OnDate != nil {
		start, end := timeacct.DayBounds(*f.OnDate, f.Location)
		qb = qb.Where(squirrel.GtOrEq{"logged_at": start}).Where(squirrel.Lt{"logged_at": end})
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list process_logs: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "process_logs of work_plan", workPlanID)
	}
	defer rows.Close()

	events := []domain.ProcessEvent{}
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan process_log: %w", err)
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "process_logs of work_plan", workPlanID)
	}

	return events, nil
}

func scanEvent(row pgx.Row) (domain.ProcessEvent, error) {
	var (
		ev      domain.ProcessEvent
		process *int32
		status  string
	)
	if err := row.Scan(&ev.ID, &ev.WorkPlanID, &process, &status, &ev.LoggedAt, &ev.Note); err != nil {
		return domain.ProcessEvent{}, err
	}
	if process != nil {
		n := int(*process)
		ev.ProcessNumber = &n
	}
	ev.Status = domain.EventStatus(status)
	return ev, nil
}
