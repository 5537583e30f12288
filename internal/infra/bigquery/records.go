// Package bigquery maps generated fixture datasets onto the demo BigQuery
// environment backing the FP&A application.
package bigquery

import (
	"fmt"
	"time"

	"cloud.google.com/go/bigquery"
	"cloud.google.com/go/civil"

	"github.com/dvloznov/fpa-fixtures/internal/fixture"
)

// FinancialRecordRow maps one fixture record onto the financial_records table
// schema.
type FinancialRecordRow struct {
	RecordID string `bigquery:"record_id"` // REQUIRED

	PlanID bigquery.NullString `bigquery:"plan_id"` // NULLABLE, Budget rows only

	Period      string     `bigquery:"period"`       // REQUIRED "YYYY-MM"
	PeriodStart civil.Date `bigquery:"period_start"` // REQUIRED, first day of the period

	RecordType string `bigquery:"record_type"` // REQUIRED Budget|Actual

	AccountCode     string              `bigquery:"account_code"`      // REQUIRED
	CostCenterCode  string              `bigquery:"cost_center_code"`  // REQUIRED
	ProductLineCode bigquery.NullString `bigquery:"product_line_code"` // NULLABLE

	Amount float64 `bigquery:"amount"` // REQUIRED

	LoadedTS time.Time `bigquery:"loaded_ts"` // REQUIRED
}

// RowFromRecord converts one fixture record into its table row. The loaded
// timestamp marks the load batch, not record creation.
func RowFromRecord(r fixture.FinancialRecord, loadedTS time.Time) (*FinancialRecordRow, error) {
	p, err := fixture.ParsePeriod(r.Period)
	if err != nil {
		return nil, fmt.Errorf("RowFromRecord: record %s: %w", r.ID, err)
	}

	row := &FinancialRecordRow{
		RecordID:       r.ID,
		Period:         r.Period,
		PeriodStart:    civil.Date{Year: p.Year, Month: time.Month(p.Month), Day: 1},
		RecordType:     string(r.Type),
		AccountCode:    r.AccountCode,
		CostCenterCode: r.CostCenterCode,
		Amount:         r.Amount,
		LoadedTS:       loadedTS,
	}
	if r.PlanID != "" {
		row.PlanID = bigquery.NullString{StringVal: r.PlanID, Valid: true}
	}
	if r.IsProductScoped() {
		row.ProductLineCode = bigquery.NullString{StringVal: r.ProductLineCode, Valid: true}
	}
	return row, nil
}

// RowsFromDataset converts a whole dataset, preserving record order. It fails
// on the first malformed record rather than load a partial batch.
func RowsFromDataset(ds *fixture.Dataset, loadedTS time.Time) ([]*FinancialRecordRow, error) {
	rows := make([]*FinancialRecordRow, 0, len(ds.Records))
	for _, r := range ds.Records {
		row, err := RowFromRecord(r, loadedTS)
		if err != nil {
			return nil, fmt.Errorf("RowsFromDataset: %w", err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}
