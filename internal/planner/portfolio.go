package planner

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// RiskProfile selects one of the fixed instrument allocation templates.
type RiskProfile string

const (
	RiskConservative RiskProfile = "conservative"
	RiskModerate     RiskProfile = "moderate"
	RiskAggressive   RiskProfile = "aggressive"
)

// ParseRiskProfile resolves a risk profile name. The Spanish names used by
// the first generation of the product are accepted as aliases.
func ParseRiskProfile(s string) (RiskProfile, error) {
	switch s {
	case "conservative", "conservador":
		return RiskConservative, nil
	case "moderate", "moderado":
		return RiskModerate, nil
	case "aggressive", "agresivo":
		return RiskAggressive, nil
	}

	return "", fmt.Errorf("%w: unknown risk profile %q", ErrInvalidInput, s)
}

// AssetClass groups instruments by what they hold.
type AssetClass string

const (
	AssetFixedIncome AssetClass = "fixed_income"
	AssetEquity      AssetClass = "equity"
	AssetMixed       AssetClass = "mixed"
)

// RiskLevel rates an instrument or a whole portfolio.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// Liquidity describes how quickly an instrument converts back to cash.
type Liquidity string

const (
	LiquidityImmediate Liquidity = "immediate"
	LiquidityShortTerm Liquidity = "short_term"
	LiquidityLongTerm  Liquidity = "long_term"
)

// MaxInvestmentTermMonths caps investment plans at 30 years.
const MaxInvestmentTermMonths = 360

// Instrument is one allocation inside a portfolio. Amount is only set once
// the template has been scaled to a concrete investment.
type Instrument struct {
	Name                 string          `json:"name" example:"CETES 28-day"`
	AssetClass           AssetClass      `json:"assetClass" example:"fixed_income"`
	WeightPercent        decimal.Decimal `json:"weightPercent" example:"60"`
	ExpectedAnnualReturn decimal.Decimal `json:"expectedAnnualReturn" example:"7.5"`
	RiskLevel            RiskLevel       `json:"riskLevel" example:"low"`
	Liquidity            Liquidity       `json:"liquidity" example:"immediate"`
	Amount               decimal.Decimal `json:"amount" example:"30000"`
}

// templates holds the fixed allocation per risk profile. Weights always
// sum to exactly 100.
var templates = map[RiskProfile][]Instrument{
	RiskConservative: {
		{Name: "CETES 28-day", AssetClass: AssetFixedIncome, WeightPercent: decimal.NewFromInt(60), ExpectedAnnualReturn: decimal.NewFromFloat(7.5), RiskLevel: RiskLow, Liquidity: LiquidityImmediate},
		{Name: "Government bond fund", AssetClass: AssetFixedIncome, WeightPercent: decimal.NewFromInt(30), ExpectedAnnualReturn: decimal.NewFromFloat(8.0), RiskLevel: RiskLow, Liquidity: LiquidityShortTerm},
		{Name: "S&P 500 index fund", AssetClass: AssetEquity, WeightPercent: decimal.NewFromInt(10), ExpectedAnnualReturn: decimal.NewFromFloat(10.5), RiskLevel: RiskMedium, Liquidity: LiquidityLongTerm},
	},
	RiskModerate: {
		{Name: "CETES 28-day", AssetClass: AssetFixedIncome, WeightPercent: decimal.NewFromInt(30), ExpectedAnnualReturn: decimal.NewFromFloat(7.5), RiskLevel: RiskLow, Liquidity: LiquidityImmediate},
		{Name: "S&P 500 index fund", AssetClass: AssetEquity, WeightPercent: decimal.NewFromInt(40), ExpectedAnnualReturn: decimal.NewFromFloat(10.5), RiskLevel: RiskMedium, Liquidity: LiquidityLongTerm},
		{Name: "FIBRA real estate trust", AssetClass: AssetMixed, WeightPercent: decimal.NewFromInt(30), ExpectedAnnualReturn: decimal.NewFromFloat(9.0), RiskLevel: RiskMedium, Liquidity: LiquidityShortTerm},
	},
	RiskAggressive: {
		{Name: "S&P 500 index fund", AssetClass: AssetEquity, WeightPercent: decimal.NewFromInt(50), ExpectedAnnualReturn: decimal.NewFromFloat(10.5), RiskLevel: RiskMedium, Liquidity: LiquidityLongTerm},
		{Name: "Emerging markets ETF", AssetClass: AssetEquity, WeightPercent: decimal.NewFromInt(30), ExpectedAnnualReturn: decimal.NewFromFloat(12.5), RiskLevel: RiskHigh, Liquidity: LiquidityLongTerm},
		{Name: "FIBRA real estate trust", AssetClass: AssetMixed, WeightPercent: decimal.NewFromInt(20), ExpectedAnnualReturn: decimal.NewFromFloat(9.0), RiskLevel: RiskMedium, Liquidity: LiquidityShortTerm},
	},
}

// overallRisk maps the profile to the risk rating of the whole portfolio.
var overallRisk = map[RiskProfile]RiskLevel{
	RiskConservative: RiskLow,
	RiskModerate:     RiskMedium,
	RiskAggressive:   RiskHigh,
}

// InvestmentPlan is the user's input for building a portfolio.
type InvestmentPlan struct {
	TotalAmount decimal.Decimal `json:"totalAmount" example:"50000"`
	TermMonths  int             `json:"termMonths" example:"60"`
	RiskProfile RiskProfile     `json:"riskProfile" example:"moderate"`
}

// Validate checks the field constraints of the investment plan.
func (p InvestmentPlan) Validate() error {
	if !p.TotalAmount.IsPositive() {
		return fmt.Errorf("%w: the total amount must be positive", ErrInvalidInput)
	}
	if p.TermMonths <= 0 || p.TermMonths > MaxInvestmentTermMonths {
		return fmt.Errorf("%w: the term must be between 1 and %d months", ErrInvalidInput, MaxInvestmentTermMonths)
	}
	if _, ok := templates[p.RiskProfile]; !ok {
		return fmt.Errorf("%w: unknown risk profile %q", ErrInvalidInput, p.RiskProfile)
	}

	return nil
}

// Portfolio is a scaled allocation template plus its growth projection.
type Portfolio struct {
	RiskProfile         RiskProfile     `json:"riskProfile" example:"moderate"`
	Instruments         []Instrument    `json:"instruments"`
	BlendedAnnualReturn decimal.Decimal `json:"blendedAnnualReturn" example:"9.15"` // Weighted average over the template
	Projection          Projection      `json:"projection"`
	OverallRisk         RiskLevel       `json:"overallRisk" example:"medium"`
}

// BlendedReturn is the weighted average expected return of a template.
func BlendedReturn(instruments []Instrument) decimal.Decimal {
	blended := decimal.Zero
	for _, i := range instruments {
		blended = blended.Add(i.ExpectedAnnualReturn.Mul(i.WeightPercent))
	}

	return blended.Div(oneHundred)
}

// BuildPortfolio scales the allocation template of the plan's risk profile
// to the target amount and projects its growth over the term at the
// blended expected return, without further contributions.
func BuildPortfolio(plan InvestmentPlan) (Portfolio, error) {
	if err := plan.Validate(); err != nil {
		return Portfolio{}, err
	}

	template := templates[plan.RiskProfile]

	instruments := make([]Instrument, 0, len(template))
	for _, i := range template {
		i.Amount = plan.TotalAmount.Mul(i.WeightPercent).Div(oneHundred).Round(2)
		instruments = append(instruments, i)
	}

	blended := BlendedReturn(template)

	projection, err := Project(plan.TotalAmount, blended, plan.TermMonths, decimal.Zero)
	if err != nil {
		return Portfolio{}, err
	}

	return Portfolio{
		RiskProfile:         plan.RiskProfile,
		Instruments:         instruments,
		BlendedAnnualReturn: blended.Round(2),
		Projection:          projection,
		OverallRisk:         overallRisk[plan.RiskProfile],
	}, nil
}
