package bmi

import (
	"context"
	"fmt"
	"strconv"

	"github.com/leofalp/calcagent/core/cost"
	"github.com/leofalp/calcagent/core/report"
	"github.com/leofalp/calcagent/core/result"
	"github.com/leofalp/calcagent/providers/tool"
)

// Name is the tool name advertised to the agent.
const Name = "calculate_bmi"

// Category thresholds.
const (
	UnderweightBelow = 18.5
	OverweightFrom   = 25.0
	ObeseFrom        = 30.0
)

// Category is a BMI classification.
type Category string

const (
	Underweight  Category = "underweight"
	NormalWeight Category = "normal weight"
	Overweight   Category = "overweight"
	Obese        Category = "obese"
)

// Classify returns the category of a BMI value.
func Classify(bmi float64) Category {
	switch {
	case bmi < UnderweightBelow:
		return Underweight
	case bmi < OverweightFrom:
		return NormalWeight
	case bmi < ObeseFrom:
		return Overweight
	default:
		return Obese
	}
}

// Input holds the body measurements passed to [Calc].
type Input struct {
	WeightKg float64 `json:"weight_kg" jsonschema:"description=Body weight in kilograms"`
	HeightCm float64 `json:"height_cm" jsonschema:"description=Height in centimeters"`
}

// NewBMITool returns the calculate_bmi tool.
func NewBMITool() *tool.Tool[Input, result.Result] {
	return tool.NewTool[Input, result.Result](
		Name,
		Calc,
		tool.WithDescription("Calculate BMI (Body Mass Index) from weight in kilograms and height in centimeters and classify it as underweight, normal weight, overweight or obese."),
		tool.WithMetrics(cost.LocalComputation),
	)
}

// Calc computes BMI = weight_kg / (height_cm/100)². Inputs are not range
// checked; a non-positive height or a non-finite value yields a computation
// error result.
func Calc(ctx context.Context, in Input) (result.Result, error) {
	if in.HeightCm <= 0 {
		return result.ComputeFailed("BMI", fmt.Errorf("height %v cm: %w", in.HeightCm, result.ErrDivisionByZero)), nil
	}

	heightM := in.HeightCm / 100
	bmi := in.WeightKg / (heightM * heightM)
	if !report.Finite(bmi) {
		return result.ComputeFailed("BMI", result.ErrNonFinite), nil
	}

	category := Classify(bmi)
	text, err := report.Render(ctx, report.Document{
		Paragraphs: []string{
			fmt.Sprintf("Your BMI is %s, which is classified as '%s'.", strconv.FormatFloat(bmi, 'f', 1, 64), category),
			fmt.Sprintf("A healthy BMI range is between %.1f and 24.9.", UnderweightBelow),
		},
	})
	if err != nil {
		return result.Result{}, err
	}
	return result.Success(text), nil
}
