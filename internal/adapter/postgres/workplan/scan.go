package workplan

import (
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/prodcost-backend/internal/domain"
)

func joinColumns(cols []string) string {
	return strings.Join(cols, ", ")
}

func scanPlan(row pgx.Row) (domain.WorkPlan, error) {
	var (
		p      domain.WorkPlan
		status string
	)
	if err := row.Scan(&p.ID, &p.JobCode, &p.JobName, &p.ProductionDate, &p.PlannedQty, &status, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return domain.WorkPlan{}, err
	}
	p.Status = domain.WorkPlanStatus(status)
	return p, nil
}

func scanBatch(row pgx.Row) (domain.Batch, error) {
	var (
		b      domain.Batch
		date   *time.Time
		status string
	)
	if err := row.Scan(&b.ID, &b.WorkPlanID, &b.BatchCode, &b.JobCode, &b.JobName, &date, &status, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return domain.Batch{}, err
	}
	b.ProductionDate = date
	b.Status = domain.BatchStatus(status)
	return b, nil
}
