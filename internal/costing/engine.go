// Package costing computes the cost summary of a production batch from its
// material usage, its production result and the elapsed process time.
package costing

import (
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/prodcost-backend/internal/domain"
)

// UnitCostPlaces is the number of decimal places kept in OutputUnitCost.
const UnitCostPlaces = 4

var hundred = decimal.NewFromInt(100)

// Params are the fixed operational figures copied into every summary.
type Params struct {
	OperatorsCount   int
	LaborRatePerHour decimal.Decimal
	LossPercent      decimal.Decimal
	UtilityPercent   decimal.Decimal
	// AllowMixedUnits accepts material records with different units and
	// reports the lexicographically smallest one. Off by default.
	AllowMixedUnits bool
}

// Validate checks Params ranges.
func (p Params) Validate() error {
	var errs []domain.FieldError

	if p.OperatorsCount < 0 {
		errs = append(errs, domain.FieldError{Field: "operators_count", Message: "must not be negative"})
	}
	if p.LaborRatePerHour.IsNegative() {
		errs = append(errs, domain.FieldError{Field: "labor_rate_per_hour", Message: "must not be negative"})
	}
	if p.LossPercent.IsNegative() || p.LossPercent.GreaterThan(hundred) {
		errs = append(errs, domain.FieldError{Field: "loss_percent", Message: "must be between 0 and 100"})
	}
	if p.UtilityPercent.IsNegative() || p.UtilityPercent.GreaterThan(hundred) {
		errs = append(errs, domain.FieldError{Field: "utility_percent", Message: "must be between 0 and 100"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// Input is a consistent snapshot of everything a summary is derived from.
type Input struct {
	Batch           domain.Batch
	Metadata        domain.JobMetadata
	Materials       []domain.MaterialUsage
	Result          *domain.ProductionResult
	TimeUsedMinutes int64
}

// Aggregate derives the cost summary of one batch. It is pure: the same
// Input and Params always produce the same summary. CalculatedAt is left
// for the store to set.
func Aggregate(in Input, p Params) (domain.CostSummary, error) {
	if err := validateMaterials(in.Materials); err != nil {
		return domain.CostSummary{}, err
	}

	unit, err := materialUnit(in.Materials, p.AllowMixedUnits)
	if err != nil {
		return domain.CostSummary{}, err
	}

	inputQty := decimal.Zero
	materialCost := decimal.Zero
	for _, m := range in.Materials {
		inputQty = inputQty.Add(m.ActualQty)
		materialCost = materialCost.Add(m.Cost())
	}

	outputQty := decimal.Zero
	var outputUnit string
	if in.Result != nil {
		outputQty = in.Result.GoodQty
		outputUnit = in.Result.Unit
	}

	return domain.CostSummary{
		BatchID:           in.Batch.ID,
		WorkPlanID:        in.Batch.WorkPlanID,
		JobCode:           in.Metadata.JobCode,
		JobName:           in.Metadata.JobName,
		ProductionDate:    in.Metadata.ProductionDate,
		InputMaterialQty:  inputQty,
		InputMaterialUnit: unit,
		MaterialCost:      materialCost,
		OutputQty:         outputQty,
		OutputUnitCost:    UnitCost(materialCost, outputQty),
		OutputUnit:        outputUnit,
		TimeUsedMinutes:   in.TimeUsedMinutes,
		OperatorsCount:    p.OperatorsCount,
		LaborRatePerHour:  p.LaborRatePerHour,
		LossPercent:       p.LossPercent,
		UtilityPercent:    p.UtilityPercent,
	}, nil
}

// UnitCost returns cost / qty rounded to UnitCostPlaces, or zero when qty is
// not positive.
func UnitCost(cost, qty decimal.Decimal) decimal.Decimal {
	if !qty.IsPositive() {
		return decimal.Zero
	}
	return cost.DivRound(qty, UnitCostPlaces)
}

// Units returns the distinct non-empty units of the records, sorted.
func Units(materials []domain.MaterialUsage) []string {
	units := lo.Uniq(lo.FilterMap(materials, func(m domain.MaterialUsage, _ int) (string, bool) {
		u := strings.TrimSpace(m.Unit)
		return u, u != ""
	}))
	slices.Sort(units)
	return units
}

func materialUnit(materials []domain.MaterialUsage, allowMixed bool) (string, error) {
	units := Units(materials)
	switch {
	case len(units) == 0:
		return "", nil
	case len(units) > 1 && !allowMixed:
		return "", domain.NewValidationError("unit", "mixed units: "+strings.Join(units, ", "))
	default:
		return units[0], nil
	}
}

func validateMaterials(materials []domain.MaterialUsage) error {
	var errs []domain.FieldError
	for i, m := range materials {
		if m.ActualQty.IsNegative() {
			errs = append(errs, domain.FieldError{
				Field:   fmt.Sprintf("materials[%d].actual_qty", i),
				Message: "must not be negative",
			})
		}
		if m.UnitPrice.IsNegative() {
			errs = append(errs, domain.FieldError{
				Field:   fmt.Sprintf("materials[%d].unit_price", i),
				Message: "must not be negative",
			})
		}
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
