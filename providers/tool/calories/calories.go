package calories

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
const Name = "calculate_calories_burned"

// Activity is a supported activity name in its canonical lowercase form.
type Activity string

const (
	Walking       Activity = "walking"
	Jogging       Activity = "jogging"
	Running       Activity = "running"
	Cycling       Activity = "cycling"
	Swimming      Activity = "swimming"
	WeightLifting Activity = "weight lifting"
	Yoga          Activity = "yoga"
	HIIT          Activity = "hiit"
	Dancing       Activity = "dancing"
	Hiking        Activity = "hiking"
)

// Activities lists the supported activities in the order they are reported.
var Activities = []Activity{
	Walking, Jogging, Running, Cycling, Swimming,
	WeightLifting, Yoga, HIIT, Dancing, Hiking,
}

var metValues = map[Activity]float64{
	Walking:       3.5,
	Jogging:       7.0,
	Running:       10.0,
	Cycling:       8.0,
	Swimming:      6.0,
	WeightLifting: 3.5,
	Yoga:          2.5,
	HIIT:          8.0,
	Dancing:       4.5,
	Hiking:        5.3,
}

// LookupMET returns the MET value for an activity name, ignoring case and
// surrounding whitespace.
func LookupMET(activity string) (Activity, float64, bool) {
	key := Activity(strings.ToLower(strings.TrimSpace(activity)))
	met, ok := metValues[key]
	return key, met, ok
}

// Input holds the activity parameters passed to [Calc].
type Input struct {
	Activity    string  `json:"activity" jsonschema:"description=Type of activity such as running or swimming"`
	DurationMin int     `json:"duration_min" jsonschema:"description=Duration of the activity in minutes"`
	WeightKg    float64 `json:"weight_kg" jsonschema:"description=Body weight in kilograms"`
}

// NewCaloriesTool returns the calculate_calories_burned tool.
func NewCaloriesTool() *tool.Tool[Input, result.Result] {
	return tool.NewTool[Input, result.Result](
		Name,
		Calc,
		tool.WithDescription("Estimate calories burned for an activity from its duration in minutes and the body weight in kilograms. Supported activities: "+activityList()+"."),
		tool.WithMetrics(cost.LocalComputation),
	)
}

// Calc estimates the calories burned, rounded to the nearest whole calorie
// with ties to even.
func Calc(ctx context.Context, in Input) (result.Result, error) {
	activity, met, ok := LookupMET(in.Activity)
	if !ok {
		return result.Invalid("Activity '%s' is not supported. Supported activities are: %s",
			activity, activityList()), nil
	}

	calories := met * in.WeightKg * (float64(in.DurationMin) / 60)
	if !report.Finite(calories) {
		return result.ComputeFailed("calories", result.ErrNonFinite), nil
	}

	text, err := report.Render(ctx, report.Document{
		Paragraphs: []string{fmt.Sprintf(
			"For %d minutes of %s, a person weighing %s kg would burn approximately %s calories.",
			in.DurationMin,
			activity,
			strconv.FormatFloat(in.WeightKg, 'f', -1, 64),
			strconv.FormatFloat(math.RoundToEven(calories), 'f', 0, 64),
		)},
	})
	if err != nil {
		return result.Result{}, err
	}
	return result.Success(text), nil
}

func activityList() string {
	names := make([]string, len(Activities))
	for i, a := range Activities {
		names[i] = string(a)
	}
	return strings.Join(names, ", ")
}
