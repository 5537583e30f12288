package bigquery

import (
	"context"
	"fmt"

	"cloud.google.com/go/bigquery"
	"google.golang.org/api/iterator"
)

// Default demo environment target. Overridable per call via Target.
const (
	defaultProjectID = "fpa-demo-sandbox"
	defaultDatasetID = "fpa_demo"
	recordsTable     = "financial_records"
)

// Target identifies the table a fixture batch is loaded into. Zero fields
// fall back to the demo environment defaults.
type Target struct {
	ProjectID string
	DatasetID string
	Table     string
}

func (t Target) withDefaults() Target {
	if t.ProjectID == "" {
		t.ProjectID = defaultProjectID
	}
	if t.DatasetID == "" {
		t.DatasetID = defaultDatasetID
	}
	if t.Table == "" {
		t.Table = recordsTable
	}
	return t
}

// insertBatchSize bounds one streaming insert request.
const insertBatchSize = 500

// InsertRecords inserts a batch of rows into the target table.
func InsertRecords(ctx context.Context, target Target, rows []*FinancialRecordRow) error {
	target = target.withDefaults()

	client, err := bigquery.NewClient(ctx, target.ProjectID)
	if err != nil {
		return fmt.Errorf("InsertRecords: bigquery client: %w", err)
	}
	defer client.Close()

	return InsertRecordsWithClient(ctx, client, target, rows)
}

// InsertRecordsWithClient inserts a batch of rows into the target table using
// the provided BigQuery client, splitting large batches into chunks the
// streaming insert API accepts.
func InsertRecordsWithClient(ctx context.Context, client *bigquery.Client, target Target, rows []*FinancialRecordRow) error {
	if len(rows) == 0 {
		return nil
	}
	target = target.withDefaults()

	table := client.DatasetInProject(target.ProjectID, target.DatasetID).Table(target.Table)
	inserter := table.Inserter()

	for start := 0; start < len(rows); start += insertBatchSize {
		end := start + insertBatchSize
		if end > len(rows) {
			end = len(rows)
		}
		if err := inserter.Put(ctx, rows[start:end]); err != nil {
			return fmt.Errorf("InsertRecords: inserting rows %d-%d: %w", start, end, err)
		}
	}

	return nil
}

// CountRecords returns the number of rows in the target table for the given
// period range (inclusive tokens), used to verify a load.
func CountRecords(ctx context.Context, target Target, firstPeriod, lastPeriod string) (int64, error) {
	target = target.withDefaults()

	client, err := bigquery.NewClient(ctx, target.ProjectID)
	if err != nil {
		return 0, fmt.Errorf("CountRecords: bigquery client: %w", err)
	}
	defer client.Close()

	return CountRecordsWithClient(ctx, client, target, firstPeriod, lastPeriod)
}

// CountRecordsWithClient returns the row count for the given period range
// using the provided BigQuery client.
func CountRecordsWithClient(ctx context.Context, client *bigquery.Client, target Target, firstPeriod, lastPeriod string) (int64, error) {
	target = target.withDefaults()

	q := client.Query(fmt.Sprintf(`
		SELECT COUNT(*) AS n
		FROM %s.%s
		WHERE period BETWEEN @first_period AND @last_period
	`, target.DatasetID, target.Table))
	q.DefaultProjectID = target.ProjectID
	q.Parameters = []bigquery.QueryParameter{
		{Name: "first_period", Value: firstPeriod},
		{Name: "last_period", Value: lastPeriod},
	}

	it, err := q.Read(ctx)
	if err != nil {
		return 0, fmt.Errorf("CountRecords: running query: %w", err)
	}

	var row struct {
		N int64 `bigquery:"n"`
	}
	if err := it.Next(&row); err != nil && err != iterator.Done {
		return 0, fmt.Errorf("CountRecords: reading result: %w", err)
	}

	return row.N, nil
}
