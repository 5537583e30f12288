package fixture

// RecordType distinguishes planned figures from realized ones.
type RecordType string

const (
	// RecordTypeBudget marks a planned/forecast record tied to a plan.
	RecordTypeBudget RecordType = "Budget"
	// RecordTypeActual marks a realized record; actuals never reference a plan.
	RecordTypeActual RecordType = "Actual"
)

// FinancialRecord is one ledger line of the generated dataset.
// The JSON field names are a schema contract with the downstream FP&A
// application and must be reproduced exactly; planId is omitted (not null)
// on Actual records, while productLineCode stays present even when empty.
type FinancialRecord struct {
	ID              string     `json:"id"`
	PlanID          string     `json:"planId,omitempty"`
	Period          string     `json:"period"`
	Type            RecordType `json:"type"`
	AccountCode     string     `json:"accountCode"`
	CostCenterCode  string     `json:"costCenterCode"`
	ProductLineCode string     `json:"productLineCode"`
	Amount          float64    `json:"amount"`
}

// IsProductScoped reports whether the record carries a product line dimension.
// Only revenue and COGS records are product-scoped.
func (r FinancialRecord) IsProductScoped() bool {
	return r.ProductLineCode != ""
}
