package fixture

import "github.com/google/uuid"

// Per-account multiples of the period base amount.
const (
	revenueMultiple      = 80
	cogsMultiple         = 25
	salariesMultiple     = 20
	depreciationMultiple = 4
)

// Generator expands a configuration into the full fixture dataset.
//
// Budget records are emitted for every period and every dimension combination.
// Actual records are emitted only for periods inside the coverage window, each
// derived from its Budget counterpart through an independent variance draw.
// Depreciation is the one exception: its actuals follow the asset schedule and
// never diverge from plan.
type Generator struct {
	cfg      Config
	variance VarianceSource
	newID    func() string
}

// NewGenerator builds a generator for the given configuration. A nil variance
// source selects the default unseeded one.
func NewGenerator(cfg Config, variance VarianceSource) *Generator {
	if variance == nil {
		variance = NewVariance(0)
	}
	return &Generator{
		cfg:      cfg,
		variance: variance,
		newID:    uuid.NewString,
	}
}

// Generate runs one full pass and returns the assembled dataset.
//
// Record order is deterministic: period-major, then per period the
// revenue/COGS block by product line, the operating-expense block by cost
// center, and the entity-level block. Only the Actual amounts vary between
// runs; everything else is a pure function of the configuration.
func (g *Generator) Generate() (*Dataset, error) {
	if err := g.cfg.Validate(); err != nil {
		return nil, err
	}

	var records []FinancialRecord
	for _, p := range Periods(g.cfg.Years) {
		records = g.appendPeriod(records, p)
	}
	return &Dataset{Records: records}, nil
}

// covered reports whether the period falls inside the actuals coverage window.
func (g *Generator) covered(p Period) bool {
	return !p.After(g.cfg.CoverageThrough)
}

func (g *Generator) appendPeriod(records []FinancialRecord, p Period) []FinancialRecord {
	base := BaseAmount(p)
	covered := g.covered(p)

	// Revenue & COGS, per product line.
	for _, pl := range g.cfg.ProductLines {
		mix := MixFactor(pl)
		records = g.appendLine(records, p, AccountRevenueSubscription,
			CostCenterRevenue, pl, base*revenueMultiple*mix, covered)
		records = g.appendLine(records, p, AccountCOGSHosting,
			CostCenterCOGS, pl, base*cogsMultiple*mix, covered)
	}

	// Operating expense, per cost center. No product line dimension here.
	for _, cc := range g.cfg.CostCenters {
		size := SizeFactor(cc)
		salaries := base * salariesMultiple * size
		depreciation := base * depreciationMultiple * size

		records = append(records,
			g.budget(p, AccountSalaries, cc, "", salaries),
			g.budget(p, AccountDepreciation, cc, "", depreciation))
		if covered {
			records = append(records,
				g.actual(p, AccountSalaries, cc, "", salaries*g.variance.Factor()),
				// Depreciation actuals are an exact copy of plan.
				g.actual(p, AccountDepreciation, cc, "", depreciation))
		}
	}

	// Entity-level items, corporate cost center only.
	for _, item := range EntityItems() {
		records = g.appendLine(records, p, item.AccountCode,
			CostCenterCorporate, "", base*item.Factor, covered)
	}

	return records
}

// appendLine emits the Budget record for one account/dimension combination
// and, inside the coverage window, the variance-adjusted Actual next to it.
func (g *Generator) appendLine(records []FinancialRecord, p Period,
	account, costCenter, productLine string, amount float64, covered bool) []FinancialRecord {

	records = append(records, g.budget(p, account, costCenter, productLine, amount))
	if covered {
		records = append(records, g.actual(p, account, costCenter, productLine,
			amount*g.variance.Factor()))
	}
	return records
}

func (g *Generator) budget(p Period, account, costCenter, productLine string, amount float64) FinancialRecord {
	return FinancialRecord{
		ID:              g.newID(),
		PlanID:          g.cfg.PlanID,
		Period:          p.Token(),
		Type:            RecordTypeBudget,
		AccountCode:     account,
		CostCenterCode:  costCenter,
		ProductLineCode: productLine,
		Amount:          amount,
	}
}

func (g *Generator) actual(p Period, account, costCenter, productLine string, amount float64) FinancialRecord {
	return FinancialRecord{
		ID:              g.newID(),
		Period:          p.Token(),
		Type:            RecordTypeActual,
		AccountCode:     account,
		CostCenterCode:  costCenter,
		ProductLineCode: productLine,
		Amount:          amount,
	}
}

// BudgetRecordsPerPeriod returns the fixed per-period Budget record count
// implied by the configured dimensions.
func (c Config) BudgetRecordsPerPeriod() int {
	return len(c.ProductLines)*2 + len(c.CostCenters)*2 + len(EntityItems())
}
