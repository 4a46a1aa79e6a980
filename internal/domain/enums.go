package domain

// EventStatus is the status transition recorded by a process log row.
type EventStatus string

const (
	EventStatusStart EventStatus = "start"
	EventStatusStop  EventStatus = "stop"
)

func (s EventStatus) String() string { return string(s) }

func (s EventStatus) IsValid() bool {
	switch s {
	case EventStatusStart, EventStatusStop:
		return true
	}
	return false
}

// WorkPlanStatus is the lifecycle state of a work plan.
type WorkPlanStatus string

const (
	WorkPlanStatusPlanned    WorkPlanStatus = "planned"
	WorkPlanStatusInProgress WorkPlanStatus = "in_progress"
	WorkPlanStatusCompleted  WorkPlanStatus = "completed"
	WorkPlanStatusCancelled  WorkPlanStatus = "cancelled"
)

func (s WorkPlanStatus) String() string { return string(s) }

func (s WorkPlanStatus) IsValid() bool {
	switch s {
	case WorkPlanStatusPlanned, WorkPlanStatusInProgress, WorkPlanStatusCompleted, WorkPlanStatusCancelled:
		return true
	}
	return false
}

// BatchStatus is the lifecycle state of a production batch.
type BatchStatus string

const (
	BatchStatusOpen   BatchStatus = "open"
	BatchStatusClosed BatchStatus = "closed"
)

func (s BatchStatus) String() string { return string(s) }

func (s BatchStatus) IsValid() bool {
	switch s {
	case BatchStatusOpen, BatchStatusClosed:
		return true
	}
	return false
}

// EntityType identifies the kind of domain entity (used in audit logs).
type EntityType string

const (
	EntityTypeWorkPlan         EntityType = "WORK_PLAN"
	EntityTypeBatch            EntityType = "BATCH"
	EntityTypeMaterialUsage    EntityType = "MATERIAL_USAGE"
	EntityTypeProductionResult EntityType = "PRODUCTION_RESULT"
	EntityTypeCostSummary      EntityType = "COST_SUMMARY"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeWorkPlan, EntityTypeBatch, EntityTypeMaterialUsage,
		EntityTypeProductionResult, EntityTypeCostSummary:
		return true
	}
	return false
}

// AuditAction represents the kind of mutation recorded in the audit log.
type AuditAction string

const (
	AuditActionCreate      AuditAction = "CREATE"
	AuditActionReplace     AuditAction = "REPLACE"
	AuditActionRecalculate AuditAction = "RECALCULATE"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionCreate, AuditActionReplace, AuditActionRecalculate:
		return true
	}
	return false
}

// OperatorRole represents the authorization level of an API caller.
type OperatorRole string

const (
	OperatorRoleOperator   OperatorRole = "operator"
	OperatorRoleSupervisor OperatorRole = "supervisor"
)

func (r OperatorRole) String() string { return string(r) }

func (r OperatorRole) IsValid() bool {
	switch r {
	case OperatorRoleOperator, OperatorRoleSupervisor:
		return true
	}
	return false
}

func (r OperatorRole) IsSupervisor() bool {
	return r == OperatorRoleSupervisor
}
