package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dvloznov/fpa-fixtures/internal/fixture"
)

func sampleDataset() *fixture.Dataset {
	return &fixture.Dataset{Records: []fixture.FinancialRecord{
		{
			ID:              "a",
			PlanID:          fixture.DefaultPlanID,
			Period:          "2023-01",
			Type:            fixture.RecordTypeBudget,
			AccountCode:     fixture.AccountRevenueSubscription,
			CostCenterCode:  fixture.CostCenterRevenue,
			ProductLineCode: fixture.ProductLineIoT,
			Amount:          120000.5,
		},
		{
			ID:              "b",
			Period:          "2023-01",
			Type:            fixture.RecordTypeActual,
			AccountCode:     fixture.AccountRevenueSubscription,
			CostCenterCode:  fixture.CostCenterRevenue,
			ProductLineCode: fixture.ProductLineIoT,
			Amount:          118000.25,
		},
		{
			ID:             "c",
			PlanID:         fixture.DefaultPlanID,
			Period:         "2023-01",
			Type:           fixture.RecordTypeBudget,
			AccountCode:    fixture.AccountSalaries,
			CostCenterCode: "110",
			Amount:         20000,
		},
	}}
}

func TestWriteJSONRoundTrip(t *testing.T) {
	ds := sampleDataset()

	var buf bytes.Buffer
	if err := WriteJSON(&buf, ds); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, "{\n  \"records\": [") {
		t.Errorf("document does not open with a records container:\n%.60s", out)
	}

	got, err := ReadJSON(strings.NewReader(out))
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if len(got.Records) != len(ds.Records) {
		t.Fatalf("round trip lost records: %d vs %d", len(got.Records), len(ds.Records))
	}
	for i := range ds.Records {
		if got.Records[i] != ds.Records[i] {
			t.Errorf("record %d changed in round trip:\n%+v\n%+v", i, ds.Records[i], got.Records[i])
		}
	}
}

func TestWriteJSONActualHasNoPlanField(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, sampleDataset()); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	if got := strings.Count(buf.String(), "\"planId\""); got != 2 {
		t.Errorf("planId appears %d times, want 2 (budget records only):\n%s", got, buf.String())
	}
}

func TestReadJSONMalformed(t *testing.T) {
	if _, err := ReadJSON(strings.NewReader("{not json")); err == nil {
		t.Error("ReadJSON accepted malformed input")
	}
}
