package costing

import (
	"strings"

	"github.com/heartmarshall/prodcost-backend/internal/domain"
)

// ResolveMetadata takes the job metadata stored on the batch and fills the
// missing fields from the parent work plan (plan may be nil). Fields still
// missing afterwards are reported in one ValidationError.
func ResolveMetadata(batch domain.Batch, plan *domain.JobMetadata) (domain.JobMetadata, error) {
	var md domain.JobMetadata

	if batch.JobCode != nil {
		md.JobCode = strings.TrimSpace(*batch.JobCode)
	}
	if batch.JobName != nil {
		md.JobName = strings.TrimSpace(*batch.JobName)
	}
	if batch.ProductionDate != nil {
		md.ProductionDate = *batch.ProductionDate
	}

	if plan != nil {
		if md.JobCode == "" {
			md.JobCode = strings.TrimSpace(plan.JobCode)
		}
		if md.JobName == "" {
			md.JobName = strings.TrimSpace(plan.JobName)
		}
		if md.ProductionDate.IsZero() {
			md.ProductionDate = plan.ProductionDate
		}
	}

	var errs []domain.FieldError
	if md.JobCode == "" {
		errs = append(errs, domain.FieldError{Field: "job_code", Message: "missing on batch and work plan"})
	}
	if md.JobName == "" {
		errs = append(errs, domain.FieldError{Field: "job_name", Message: "missing on batch and work plan"})
	}
	if md.ProductionDate.IsZero() {
		errs = append(errs, domain.FieldError{Field: "production_date", Message: "missing on batch and work plan"})
	}
	if len(errs) > 0 {
		return domain.JobMetadata{}, domain.NewValidationErrors(errs)
	}

	return md, nil
}
