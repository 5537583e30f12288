package fixture

import "fmt"

// Config drives one generation run.
type Config struct {
	// Years to generate. Each year expands to months 1-12; slice order is
	// emission order.
	Years []int

	// PlanID is stamped on every Budget record.
	PlanID string

	// ProductLines and CostCenters are the dimensions fanned out per period.
	ProductLines []string
	CostCenters  []string

	// CoverageThrough is the last period for which Actual records exist.
	// Later periods get Budget records only.
	CoverageThrough Period
}

// DefaultConfig reproduces the dataset the downstream demo environment
// expects: 2023 through 2025, actuals through April 2025.
func DefaultConfig() Config {
	return Config{
		Years:           []int{2023, 2024, 2025},
		PlanID:          DefaultPlanID,
		ProductLines:    DefaultProductLines(),
		CostCenters:     DefaultCostCenters(),
		CoverageThrough: Period{Year: 2025, Month: 4},
	}
}

// Validate rejects configurations that cannot produce a complete dataset.
// A bad configuration is a programming error, not a runtime condition:
// generation fails before a single record is emitted rather than produce a
// partial dataset.
func (c Config) Validate() error {
	if len(c.Years) == 0 {
		return fmt.Errorf("fixture config: no years configured")
	}
	if c.PlanID == "" {
		return fmt.Errorf("fixture config: empty plan ID")
	}
	if len(c.ProductLines) == 0 {
		return fmt.Errorf("fixture config: no product lines configured")
	}
	if len(c.CostCenters) == 0 {
		return fmt.Errorf("fixture config: no cost centers configured")
	}
	if c.CoverageThrough.Month < 1 || c.CoverageThrough.Month > 12 {
		return fmt.Errorf("fixture config: coverage month %d out of range", c.CoverageThrough.Month)
	}
	return nil
}
