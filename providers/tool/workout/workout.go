package workout

import (
	"context"
	"fmt"
	"strings"

	"github.com/leofalp/calcagent/core/cost"
	"github.com/leofalp/calcagent/core/report"
	"github.com/leofalp/calcagent/core/result"
	"github.com/leofalp/calcagent/providers/tool"
)

// Name is the tool name advertised to the agent.
const Name = "create_workout_plan"

const (
	MinDaysPerWeek = 1
	MaxDaysPerWeek = 7
)

// Level is a fitness level.
type Level string

const (
	Beginner     Level = "beginner"
	Intermediate Level = "intermediate"
	Advanced     Level = "advanced"
)

// Levels lists the valid fitness levels.
var Levels = []Level{Beginner, Intermediate, Advanced}

// Goal is a training goal.
type Goal string

const (
	WeightLoss     Goal = "weight loss"
	MuscleGain     Goal = "muscle gain"
	Endurance      Goal = "endurance"
	GeneralFitness Goal = "general fitness"
)

// Goals lists the valid training goals.
var Goals = []Goal{WeightLoss, MuscleGain, Endurance, GeneralFitness}

// Plan is a table entry.
type Plan struct {
	Focus    string
	Schedule string
}

const (
	shortWeekSchedule = "Focus on full-body workouts and combine cardio with strength when possible."
	midWeekSuffix     = " (Combine some workouts to fit your schedule)"
	closingNote       = "For best results, ensure proper nutrition and recovery between workouts."
)

var plans = map[Level]map[Goal]Plan{
	Beginner: {
		WeightLoss:     {"Full body workouts with cardio emphasis", "2-3 full body workouts, 2-3 cardio sessions"},
		MuscleGain:     {"Full body resistance training", "3 full body strength workouts, 1 active recovery day"},
		Endurance:      {"Cardio progression", "2-3 cardio sessions, 1-2 light strength workouts"},
		GeneralFitness: {"Balanced approach to fitness fundamentals", "2 strength workouts, 2 cardio sessions, 1 flexibility day"},
	},
	Intermediate: {
		WeightLoss:     {"HIIT and circuit training", "2-3 HIIT sessions, 2 strength circuits, 1 steady-state cardio"},
		MuscleGain:     {"Upper/lower or push/pull/legs split", "4-5 strength workouts following a split routine, 1 active recovery"},
		Endurance:      {"Mixed cardio and endurance strength training", "3-4 varied cardio sessions, 2 endurance-focused strength workouts"},
		GeneralFitness: {"Varied training methods", "2-3 strength sessions, 2 cardio workouts, 1 flexibility/mobility day"},
	},
	Advanced: {
		WeightLoss:     {"Periodized training with caloric deficit", "3-4 high-intensity workouts, 2 strength sessions, strategic cardio"},
		MuscleGain:     {"Specialized split routine", "5-6 targeted strength sessions following a specialized split"},
		Endurance:      {"Periodized endurance program", "4-5 structured cardio sessions, 2 complementary strength workouts"},
		GeneralFitness: {"Periodized approach to all fitness components", "3 strength sessions, 2-3 varied cardio/HIIT, 1 recovery/flexibility"},
	},
}

// Lookup returns the base plan for a level and goal.
func Lookup(level Level, goal Goal) (Plan, bool) {
	p, ok := plans[level][goal]
	return p, ok
}

// AdjustSchedule fits a base schedule to the days available per week.
func AdjustSchedule(schedule string, daysPerWeek int) string {
	switch {
	case daysPerWeek < 3:
		return shortWeekSchedule
	case daysPerWeek < 5:
		return schedule + midWeekSuffix
	default:
		return schedule
	}
}

// Input holds the plan request passed to [Calc].
type Input struct {
	FitnessLevel string `json:"fitness_level" jsonschema:"description=Current fitness level,enum=beginner,enum=intermediate,enum=advanced"`
	Goal         string `json:"goal" jsonschema:"description=Training goal,enum=weight loss,enum=muscle gain,enum=endurance,enum=general fitness"`
	DaysPerWeek  int    `json:"days_per_week" jsonschema:"description=Number of workout days per week,minimum=1,maximum=7"`
}

// NewWorkoutTool returns the create_workout_plan tool.
func NewWorkoutTool() *tool.Tool[Input, result.Result] {
	return tool.NewTool[Input, result.Result](
		Name,
		Calc,
		tool.WithDescription("Create a workout plan for a fitness level (beginner, intermediate or advanced) and goal (weight loss, muscle gain, endurance or general fitness) given the number of training days per week."),
		tool.WithMetrics(cost.LocalComputation),
	)
}

// Calc validates level, goal and days in that order and renders the plan.
func Calc(ctx context.Context, in Input) (result.Result, error) {
	level := Level(strings.ToLower(strings.TrimSpace(in.FitnessLevel)))
	if _, ok := plans[level]; !ok {
		return result.Invalid("Fitness level must be %s.", orList(Levels)), nil
	}

	goal := Goal(strings.ToLower(strings.TrimSpace(in.Goal)))
	plan, ok := Lookup(level, goal)
	if !ok {
		return result.Invalid("Goal must be %s.", orList(Goals)), nil
	}

	if in.DaysPerWeek < MinDaysPerWeek || in.DaysPerWeek > MaxDaysPerWeek {
		return result.Invalid("Days per week must be between %d and %d.", MinDaysPerWeek, MaxDaysPerWeek), nil
	}

	text, err := report.Render(ctx, report.Document{
		Title: fmt.Sprintf("Workout Plan for %s Level with %s Goal (%d days/week):",
			capitalize(string(level)), capitalize(string(goal)), in.DaysPerWeek),
		Sections: []report.Section{{
			Items: []string{
				"Focus: " + plan.Focus,
				"Recommended Schedule: " + AdjustSchedule(plan.Schedule, in.DaysPerWeek),
			},
		}},
		Note: closingNote,
	})
	if err != nil {
		return result.Result{}, err
	}
	return result.Success(text), nil
}

// orList joins values as "a, b, or c".
func orList[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	if len(parts) < 2 {
		return strings.Join(parts, "")
	}
	return strings.Join(parts[:len(parts)-1], ", ") + ", or " + parts[len(parts)-1]
}

// capitalize upper-cases the first letter and lower-cases the rest.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
