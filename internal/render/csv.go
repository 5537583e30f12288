package render

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/dvloznov/fpa-fixtures/internal/fixture"
)

// csvHeader mirrors the JSON field names of the schema contract.
var csvHeader = []string{"id", "planId", "period", "type", "accountCode", "costCenterCode", "productLineCode", "amount"}

// WriteCSV renders the dataset as a flat CSV with one record per row.
// Actual records leave the planId column empty.
func WriteCSV(w io.Writer, ds *fixture.Dataset) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("WriteCSV: header: %w", err)
	}
	for i, r := range ds.Records {
		row := []string{
			r.ID,
			r.PlanID,
			r.Period,
			string(r.Type),
			r.AccountCode,
			r.CostCenterCode,
			r.ProductLineCode,
			strconv.FormatFloat(r.Amount, 'f', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("WriteCSV: record %d: %w", i, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("WriteCSV: flush: %w", err)
	}
	return nil
}
