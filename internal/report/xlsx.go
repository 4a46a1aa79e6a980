// Package report renders cost summaries for reporting consumers.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/heartmarshall/prodcost-backend/internal/domain"
	"github.com/heartmarshall/prodcost-backend/internal/timeacct"
)

// SheetName is the worksheet holding the summaries.
const SheetName = "Cost summaries"

// ContentType is the MIME type of the workbook written by WriteCostSummaries.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var header = []any{
	"Batch ID", "Work plan ID", "Job code", "Job name", "Production date",
	"Input qty", "Input unit", "Material cost", "Output qty", "Output unit",
	"Unit cost", "Time used (min)", "Time used", "Operators",
	"Labor rate / h", "Loss %", "Utility %", "Calculated at",
}

// FileName returns the attachment name of the export of day.
func FileName(day time.Time) string {
	return "cost-summaries-" + day.Format(time.DateOnly) + ".xlsx"
}

// WriteCostSummaries writes one XLSX workbook with a row per summary and a
// closing totals row for material cost and time used.
func WriteCostSummaries(w io.Writer, summaries []domain.CostSummary) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	totalCost := decimal.Zero
	var totalMinutes int64
	for i, s := range summaries {
		row := summaryRow(s)
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
		totalCost = totalCost.Add(s.MaterialCost)
		totalMinutes += s.TimeUsedMinutes
	}

	totalRow := len(summaries) + 2
	totals := map[int]any{
		1:  "Total",
		8:  totalCost.InexactFloat64(),
		12: totalMinutes,
		13: timeacct.FormatMinutes(totalMinutes),
	}
	for col, v := range totals {
		cell, err := excelize.CoordinatesToCellName(col, totalRow)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(SheetName, cell, v); err != nil {
			return fmt.Errorf("write totals: %w", err)
		}
	}

	if err := styleSheet(f, totalRow); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func summaryRow(s domain.CostSummary) []any {
	return []any{
		s.BatchID.String(),
		s.WorkPlanID.String(),
		s.JobCode,
		s.JobName,
		s.ProductionDate.Format(time.DateOnly),
		s.InputMaterialQty.InexactFloat64(),
		s.InputMaterialUnit,
		s.MaterialCost.InexactFloat64(),
		s.OutputQty.InexactFloat64(),
		s.OutputUnit,
		s.OutputUnitCost.InexactFloat64(),
		s.TimeUsedMinutes,
		timeacct.FormatMinutes(s.TimeUsedMinutes),
		s.OperatorsCount,
		s.LaborRatePerHour.InexactFloat64(),
		s.LossPercent.InexactFloat64(),
		s.UtilityPercent.InexactFloat64(),
		s.CalculatedAt.UTC().Format(time.RFC3339),
	}
}

func styleSheet(f *excelize.File, lastRow int) error {
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create style: %w", err)
	}
	lastCol, err := excelize.ColumnNumberToName(len(header))
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetName, "A1", lastCol+"1", bold); err != nil {
		return fmt.Errorf("style header: %w", err)
	}
	if err := f.SetCellStyle(SheetName, fmt.Sprintf("A%d", lastRow), fmt.Sprintf("%s%d", lastCol, lastRow), bold); err != nil {
		return fmt.Errorf("style totals: %w", err)
	}
	if err := f.SetColWidth(SheetName, "A", "B", 38); err != nil {
		return fmt.Errorf("set column width: %w", err)
	}
	return f.SetPanes(SheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}
