package render

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/dvloznov/fpa-fixtures/internal/fixture"
)

// WriteXLSX renders the dataset as a workbook with a summary sheet and a
// records sheet, written to w as a single finished file.
func WriteXLSX(w io.Writer, ds *fixture.Dataset) error {
	f := excelize.NewFile()
	summarySheet := "summary"
	recordsSheet := "records"
	f.SetSheetName("Sheet1", summarySheet)
	if _, err := f.NewSheet(recordsSheet); err != nil {
		return fmt.Errorf("WriteXLSX: create records sheet: %w", err)
	}

	s := ds.Summarize()
	_ = f.SetCellValue(summarySheet, "A1", "FP&A Fixture Dataset")
	_ = f.SetCellValue(summarySheet, "A3", "Records")
	_ = f.SetCellValue(summarySheet, "B3", s.TotalRecords)
	_ = f.SetCellValue(summarySheet, "A4", "Budget")
	_ = f.SetCellValue(summarySheet, "B4", s.BudgetRecords)
	_ = f.SetCellValue(summarySheet, "A5", "Actual")
	_ = f.SetCellValue(summarySheet, "B5", s.ActualRecords)
	_ = f.SetCellValue(summarySheet, "A6", "First period")
	_ = f.SetCellValue(summarySheet, "B6", s.FirstPeriod)
	_ = f.SetCellValue(summarySheet, "A7", "Last period")
	_ = f.SetCellValue(summarySheet, "B7", s.LastPeriod)

	for i, name := range csvHeader {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("WriteXLSX: header cell: %w", err)
		}
		_ = f.SetCellValue(recordsSheet, cell, name)
	}
	for i, r := range ds.Records {
		row := i + 2
		_ = f.SetCellValue(recordsSheet, fmt.Sprintf("A%d", row), r.ID)
		_ = f.SetCellValue(recordsSheet, fmt.Sprintf("B%d", row), r.PlanID)
		_ = f.SetCellValue(recordsSheet, fmt.Sprintf("C%d", row), r.Period)
		_ = f.SetCellValue(recordsSheet, fmt.Sprintf("D%d", row), string(r.Type))
		_ = f.SetCellValue(recordsSheet, fmt.Sprintf("E%d", row), r.AccountCode)
		_ = f.SetCellValue(recordsSheet, fmt.Sprintf("F%d", row), r.CostCenterCode)
		_ = f.SetCellValue(recordsSheet, fmt.Sprintf("G%d", row), r.ProductLineCode)
		_ = f.SetCellValue(recordsSheet, fmt.Sprintf("H%d", row), r.Amount)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("WriteXLSX: write workbook: %w", err)
	}
	return nil
}
