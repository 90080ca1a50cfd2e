package compound

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/leofalp/calcagent/core/cost"
	"github.com/leofalp/calcagent/core/report"
	"github.com/leofalp/calcagent/core/result"
	"github.com/leofalp/calcagent/providers/tool"
)

// Name is the tool name advertised to the agent.
const Name = "calculate_compound_interest"

// DefaultFrequency is used when no compounding frequency is given.
const DefaultFrequency = "annually"

// Frequency is a named compounding frequency.
type Frequency struct {
	Name           string
	PeriodsPerYear int
}

// Frequencies lists the supported compounding frequencies.
var Frequencies = []Frequency{
	{"annually", 1},
	{"semi-annually", 2},
	{"quarterly", 4},
	{"monthly", 12},
	{"daily", 365},
}

// LookupFrequency finds a frequency by name, ignoring case and surrounding
// whitespace. An empty name selects [DefaultFrequency].
func LookupFrequency(name string) (Frequency, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = DefaultFrequency
	}
	for _, f := range Frequencies {
		if f.Name == name {
			return f, true
		}
	}
	return Frequency{}, false
}

// Input holds the projection parameters passed to [Calc].
type Input struct {
	Principal            float64 `json:"principal" jsonschema:"description=Initial investment amount"`
	AnnualRate           float64 `json:"annual_rate" jsonschema:"description=Annual interest rate as a percentage (7 means 7%)"`
	Years                int     `json:"years" jsonschema:"description=Investment horizon in years"`
	ContributionsPerYear float64 `json:"contributions_per_year,omitempty" jsonschema:"description=Additional contributions per year,default=0"`
	CompoundFrequency    string  `json:"compound_frequency,omitempty" jsonschema:"description=How often interest compounds,enum=annually,enum=semi-annually,enum=quarterly,enum=monthly,enum=daily,default=annually"`
}

// Projection is the outcome of a compound interest projection.
type Projection struct {
	FinalBalance       float64
	TotalContributions float64
	InterestEarned     float64
	GrowthMultiple     float64
}

// Project applies the compound interest formula for n periods per year.
func Project(principal, annualRate float64, years, n int, contributionsPerYear float64) (Projection, error) {
	r := annualRate / 100
	periodicRate := r / float64(n)
	c := contributionsPerYear / float64(n)
	// Periods are counted in float64 so huge horizons overflow to +Inf.
	growth := math.Pow(1+periodicRate, float64(n)*float64(years))

	final := principal * growth
	if c != 0 {
		if periodicRate == 0 {
			return Projection{}, fmt.Errorf("annuity factor at %v%% rate: %w", annualRate, result.ErrDivisionByZero)
		}
		final += c * ((growth - 1) / periodicRate)
	}
	if principal == 0 {
		return Projection{}, fmt.Errorf("growth multiple of zero principal: %w", result.ErrDivisionByZero)
	}

	total := principal + contributionsPerYear*float64(years)
	p := Projection{
		FinalBalance:       final,
		TotalContributions: total,
		InterestEarned:     final - total,
		GrowthMultiple:     final / principal,
	}
	if !report.Finite(p.FinalBalance, p.TotalContributions, p.InterestEarned, p.GrowthMultiple) {
		return Projection{}, result.ErrNonFinite
	}
	return p, nil
}

// NewCompoundTool returns the calculate_compound_interest tool.
func NewCompoundTool() *tool.Tool[Input, result.Result] {
	return tool.NewTool[Input, result.Result](
		Name,
		Calc,
		tool.WithDescription("Project compound interest growth of an investment with optional annual contributions. Compounding can be annually, semi-annually, quarterly, monthly or daily."),
		tool.WithMetrics(cost.LocalComputation),
	)
}

// Calc validates the frequency and renders the projection.
func Calc(ctx context.Context, in Input) (result.Result, error) {
	freq, ok := LookupFrequency(in.CompoundFrequency)
	if !ok {
		names := make([]string, len(Frequencies))
		for i, f := range Frequencies {
			names[i] = f.Name
		}
		return result.Invalid("Invalid compound frequency. Choose from: %s", strings.Join(names, ", ")), nil
	}

	p, err := Project(in.Principal, in.AnnualRate, in.Years, freq.PeriodsPerYear, in.ContributionsPerYear)
	if err != nil {
		return result.ComputeFailed("compound interest", err), nil
	}

	text, err := report.Render(ctx, report.Document{
		Title: "Investment Growth Projection:",
		Sections: []report.Section{
			{Items: []string{
				"Initial investment: " + report.Money(in.Principal),
				fmt.Sprintf("Interest rate: %s (compounded %s)", report.Percent(in.AnnualRate, -1), freq.Name),
				fmt.Sprintf("Time period: %d years", in.Years),
				fmt.Sprintf("Additional contributions: %s per year", report.Money(in.ContributionsPerYear)),
			}},
			{Items: []string{
				"Final balance: " + report.Money(p.FinalBalance),
				"Total contributions: " + report.Money(p.TotalContributions),
				"Interest earned: " + report.Money(p.InterestEarned),
				"Growth multiple: " + strconv.FormatFloat(p.GrowthMultiple, 'f', 2, 64) + "x",
			}},
		},
	})
	if err != nil {
		return result.Result{}, err
	}
	return result.Success(text), nil
}
