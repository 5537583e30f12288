package fixture

// Dimension enumerations and per-dimension scaling factors. These mirror the
// master data of the downstream planning application; the codes are part of
// the schema contract and cannot be renamed here alone.

// Account codes.
const (
	// AccountRevenueSubscription is subscription revenue, booked per product line.
	AccountRevenueSubscription = "REV_SUB"
	// AccountCOGSHosting is hosting cost of goods sold, booked per product line.
	AccountCOGSHosting = "COGS_HOST"
	// AccountSalaries is general personnel expense, booked per cost center.
	AccountSalaries = "EXP_GEN_PPL"
	// AccountDepreciation is depreciation expense, booked per cost center.
	AccountDepreciation = "EXP_DEP"

	// Entity-level accounts, booked on the corporate cost center only.
	AccountOtherIncome    = "INC_OTHER"
	AccountTaxExpense     = "EXP_TAX"
	AccountCapex          = "CF_CAPEX"
	AccountWorkingCapital = "CF_WC"
)

// Product lines.
const (
	ProductLineIoT       = "PL_IOT"
	ProductLineAnalytics = "PL_ANL"
	ProductLineServices  = "PL_SERV"
	ProductLineHardware  = "PL_HW"
	ProductLineLegacy    = "PL_LEG"
)

// Cost centers with a fixed role in the generation rules.
const (
	// CostCenterCOGS receives all COGS postings.
	CostCenterCOGS = "100"
	// CostCenterRevenue receives all revenue postings.
	CostCenterRevenue = "200"
	// CostCenterCorporate receives entity-level items and runs at half size.
	CostCenterCorporate = "900"
)

// DefaultPlanID is the plan reference stamped on every Budget record.
const DefaultPlanID = "plan-2025-base"

// DefaultProductLines returns the product line dimension in emission order.
func DefaultProductLines() []string {
	return []string{
		ProductLineIoT,
		ProductLineAnalytics,
		ProductLineServices,
		ProductLineHardware,
		ProductLineLegacy,
	}
}

// DefaultCostCenters returns the cost center dimension in emission order.
func DefaultCostCenters() []string {
	return []string{"100", "110", "200", "300", "800", CostCenterCorporate}
}

// EntityItem is an entity-level account with its fixed base-amount factor.
type EntityItem struct {
	AccountCode string
	Factor      float64
}

// EntityItems returns the entity-level block in emission order. Working
// capital carries a negative factor, so its amounts are structurally negative.
func EntityItems() []EntityItem {
	return []EntityItem{
		{AccountCode: AccountOtherIncome, Factor: 2},
		{AccountCode: AccountTaxExpense, Factor: 12},
		{AccountCode: AccountCapex, Factor: 8},
		{AccountCode: AccountWorkingCapital, Factor: -4},
	}
}

// MixFactor scales revenue and COGS by product line: the IoT line sells at a
// premium, the legacy line is in decline, everything else is neutral.
func MixFactor(productLine string) float64 {
	switch productLine {
	case ProductLineIoT:
		return 1.5
	case ProductLineLegacy:
		return 0.6
	default:
		return 1.0
	}
}

// SizeFactor scales operating expense by cost center.
func SizeFactor(costCenter string) float64 {
	if costCenter == CostCenterCorporate {
		return 0.5
	}
	return 1.0
}
