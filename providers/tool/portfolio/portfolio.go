package portfolio

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/leofalp/calcagent/core/cost"
	"github.com/leofalp/calcagent/core/report"
	"github.com/leofalp/calcagent/core/result"
	"github.com/leofalp/calcagent/providers/tool"
)

// Name is the tool name advertised to the agent.
const Name = "analyze_investment_portfolio"

// Accepted band for the allocation total, in percent.
const (
	MinTotal = 99.0
	MaxTotal = 101.0
)

// AssetClass is one of the six supported asset classes.
type AssetClass string

const (
	Stocks         AssetClass = "stocks"
	Bonds          AssetClass = "bonds"
	Cash           AssetClass = "cash"
	RealEstate     AssetClass = "real estate"
	Commodities    AssetClass = "commodities"
	Cryptocurrency AssetClass = "cryptocurrency"
)

// AssetClasses lists the asset classes in report order.
var AssetClasses = []AssetClass{Stocks, Bonds, Cash, RealEstate, Commodities, Cryptocurrency}

// Risk is an investor's risk tolerance.
type Risk string

const (
	Low      Risk = "low"
	Moderate Risk = "moderate"
	High     Risk = "high"
)

// Risks lists the valid risk tolerances.
var Risks = []Risk{Low, Moderate, High}

// Allocation maps asset classes to percentages.
type Allocation map[AssetClass]float64

// Range is a recommended percentage band, inclusive on both ends.
type Range struct {
	Min, Max float64
}

func (r Range) String() string {
	return fmt.Sprintf("%s-%s%%", formatNumber(r.Min), formatNumber(r.Max))
}

var recommended = map[Risk]map[AssetClass]Range{
	Low: {
		Stocks:         {20, 40},
		Bonds:          {40, 60},
		Cash:           {10, 25},
		RealEstate:     {0, 10},
		Commodities:    {0, 5},
		Cryptocurrency: {0, 0},
	},
	Moderate: {
		Stocks:         {40, 60},
		Bonds:          {25, 40},
		Cash:           {5, 15},
		RealEstate:     {5, 15},
		Commodities:    {0, 10},
		Cryptocurrency: {0, 5},
	},
	High: {
		Stocks:         {60, 80},
		Bonds:          {10, 30},
		Cash:           {0, 10},
		RealEstate:     {5, 20},
		Commodities:    {0, 15},
		Cryptocurrency: {0, 10},
	},
}

// Recommended returns the recommended range of class under risk.
func Recommended(risk Risk, class AssetClass) (Range, bool) {
	r, ok := recommended[risk][class]
	return r, ok
}

const (
	defaultObservation = "Your allocation generally aligns with your risk tolerance."
	disclaimer         = "Note: This is a simplified analysis. Consider consulting a financial advisor for personalized advice."
)

// Input holds the allocation passed to [Calc].
type Input struct {
	Allocation    map[string]float64 `json:"allocation" jsonschema:"description=Percentage per asset class: stocks or bonds or cash or real estate or commodities or cryptocurrency"`
	RiskTolerance string             `json:"risk_tolerance" jsonschema:"description=Investor risk tolerance,enum=low,enum=moderate,enum=high"`
}

// NewPortfolioTool returns the analyze_investment_portfolio tool.
func NewPortfolioTool() *tool.Tool[Input, result.Result] {
	return tool.NewTool[Input, result.Result](
		Name,
		Calc,
		tool.WithDescription("Analyze an investment portfolio allocation given as percentages per asset class (e.g. {\"stocks\": 60, \"bonds\": 30, \"cash\": 10}) against recommended ranges for a low, moderate or high risk tolerance."),
		tool.WithMetrics(cost.LocalComputation),
	)
}

// ParseRisk normalizes a risk tolerance name.
func ParseRisk(s string) (Risk, bool) {
	risk := Risk(strings.ToLower(strings.TrimSpace(s)))
	_, ok := recommended[risk]
	return risk, ok
}

// AssetClassError reports an allocation key that cannot be used.
type AssetClassError struct {
	Key       string
	Duplicate bool
}

func (e *AssetClassError) Error() string {
	if e.Duplicate {
		return fmt.Sprintf("asset class %q is listed more than once", e.Key)
	}
	return fmt.Sprintf("invalid asset class %q", e.Key)
}

// ParseAllocation converts raw keys to asset classes, matching them without
// regard to case or surrounding whitespace. Keys are checked in sorted order
// so the reported key is deterministic.
func ParseAllocation(raw map[string]float64) (Allocation, error) {
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	allocation := make(Allocation, len(raw))
	for _, key := range keys {
		class := AssetClass(strings.ToLower(strings.TrimSpace(key)))
		if _, ok := recommended[Low][class]; !ok {
			return nil, &AssetClassError{Key: key}
		}
		if _, dup := allocation[class]; dup {
			return nil, &AssetClassError{Key: string(class), Duplicate: true}
		}
		allocation[class] = raw[key]
	}
	return allocation, nil
}

// Total returns the sum of all percentages.
func (a Allocation) Total() float64 {
	var total float64
	for _, class := range AssetClasses {
		total += a[class]
	}
	return total
}

// Compare describes how the percentage of class sits against its range.
func Compare(class AssetClass, percent float64, rng Range) string {
	current := fmt.Sprintf("%s: %s%%", capitalize(string(class)), formatNumber(percent))
	switch {
	case percent < rng.Min:
		return fmt.Sprintf("%s (Consider increasing to %s)", current, rng)
	case percent > rng.Max:
		return fmt.Sprintf("%s (Consider decreasing to %s)", current, rng)
	default:
		return fmt.Sprintf("%s (Within recommended range of %s)", current, rng)
	}
}

// Observations returns the heuristic remarks triggered by a.
func Observations(a Allocation, risk Risk) []string {
	var notes []string
	switch {
	case risk == Low && a[Stocks] > 40:
		notes = append(notes, "Your stock allocation is high for your risk tolerance.")
	case risk == High && a[Stocks] < 50:
		notes = append(notes, "Your stock allocation is low for your risk tolerance.")
	}
	if a[Cash] > 20 {
		notes = append(notes, "High cash allocation may result in potential missed growth opportunities.")
	}
	if a[Bonds] < 10 && risk != High {
		notes = append(notes, "Consider increasing bond allocation for better stability.")
	}
	return notes
}

// Calc validates risk tolerance, asset classes and total in that order and
// renders the analysis.
func Calc(ctx context.Context, in Input) (result.Result, error) {
	risk, ok := ParseRisk(in.RiskTolerance)
	if !ok {
		names := make([]string, len(Risks))
		for i, r := range Risks {
			names[i] = string(r)
		}
		return result.Invalid("Invalid risk tolerance. Choose from: %s", strings.Join(names, ", ")), nil
	}

	allocation, err := ParseAllocation(in.Allocation)
	var keyErr *AssetClassError
	switch {
	case errors.As(err, &keyErr) && keyErr.Duplicate:
		return result.Invalid("Asset class '%s' is listed more than once.", keyErr.Key), nil
	case errors.As(err, &keyErr):
		return result.Invalid("Invalid asset class '%s'. Valid classes are: %s", keyErr.Key, joinClasses()), nil
	case err != nil:
		return result.Invalid("Invalid allocation: %v", err), nil
	}

	total := allocation.Total()
	if !report.Finite(total) {
		return result.ComputeFailed("portfolio allocation", result.ErrNonFinite), nil
	}
	if total < MinTotal || total > MaxTotal {
		return result.Invalid("Portfolio allocation should sum to 100%%. Current total: %s%%", formatNumber(total)), nil
	}

	lines := make([]string, len(AssetClasses))
	for i, class := range AssetClasses {
		rng, _ := Recommended(risk, class)
		lines[i] = Compare(class, allocation[class], rng)
	}

	observations := Observations(allocation, risk)
	if len(observations) == 0 {
		observations = []string{defaultObservation}
	}

	text, err := report.Render(ctx, report.Document{
		Title: fmt.Sprintf("Portfolio Analysis for %s Risk Tolerance:", capitalize(string(risk))),
		Sections: []report.Section{
			{Heading: "Current Allocation vs. Recommended Range", Items: lines},
			{Heading: "Observations", Items: observations},
		},
		Note: disclaimer,
	})
	if err != nil {
		return result.Result{}, err
	}
	return result.Success(text), nil
}

func joinClasses() string {
	names := make([]string, len(AssetClasses))
	for i, c := range AssetClasses {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
