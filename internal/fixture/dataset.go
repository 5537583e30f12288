package fixture

// Dataset is the assembled output of one generation run: a single-field
// container around the ordered record sequence. Records keep their emission
// order end to end; nothing is dropped or deduplicated between generation
// and serialization.
type Dataset struct {
	Records []FinancialRecord `json:"records"`
}

// Summary aggregates a dataset for quick inspection.
type Summary struct {
	TotalRecords  int
	BudgetRecords int
	ActualRecords int

	// FirstPeriod and LastPeriod are period tokens; tokens sort
	// lexicographically in chronological order.
	FirstPeriod string
	LastPeriod  string

	// TotalByAccount sums amounts per account code across both record types.
	TotalByAccount map[string]float64
}

// Summarize walks the dataset once and returns its summary.
func (d *Dataset) Summarize() Summary {
	s := Summary{TotalByAccount: make(map[string]float64)}
	for _, r := range d.Records {
		s.TotalRecords++
		switch r.Type {
		case RecordTypeBudget:
			s.BudgetRecords++
		case RecordTypeActual:
			s.ActualRecords++
		}
		if s.FirstPeriod == "" || r.Period < s.FirstPeriod {
			s.FirstPeriod = r.Period
		}
		if r.Period > s.LastPeriod {
			s.LastPeriod = r.Period
		}
		s.TotalByAccount[r.AccountCode] += r.Amount
	}
	return s
}
