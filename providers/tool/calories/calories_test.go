package calories

import (
	"context"
	"strings"
	"testing"

	"github.com/leofalp/calcagent/core/result"
)

func TestCalc(t *testing.T) {
	tests := []struct {
		name  string
		input Input
		want  string
	}{
		{
			name:  "running",
			input: Input{Activity: "running", DurationMin: 30, WeightKg: 70},
			want:  "For 30 minutes of running, a person weighing 70 kg would burn approximately 350 calories.",
		},
		{
			name:  "case and whitespace insensitive",
			input: Input{Activity: "  Running ", DurationMin: 30, WeightKg: 70},
			want:  "For 30 minutes of running, a person weighing 70 kg would burn approximately 350 calories.",
		},
		{
			name:  "multi word activity",
			input: Input{Activity: "Weight Lifting", DurationMin: 45, WeightKg: 80.5},
			// 3.5 * 80.5 * 0.75 = 211.3125
			want: "For 45 minutes of weight lifting, a person weighing 80.5 kg would burn approximately 211 calories.",
		},
		{
			name:  "tie rounds down to even",
			input: Input{Activity: "yoga", DurationMin: 60, WeightKg: 1},
			// 2.5 * 1 * 1 = 2.5
			want: "For 60 minutes of yoga, a person weighing 1 kg would burn approximately 2 calories.",
		},
		{
			name:  "tie rounds up to even",
			input: Input{Activity: "walking", DurationMin: 60, WeightKg: 1},
			// 3.5 * 1 * 1 = 3.5
			want: "For 60 minutes of walking, a person weighing 1 kg would burn approximately 4 calories.",
		},
		{
			name:  "tie on even stays",
			input: Input{Activity: "dancing", DurationMin: 60, WeightKg: 1},
			// 4.5 * 1 * 1 = 4.5
			want: "For 60 minutes of dancing, a person weighing 1 kg would burn approximately 4 calories.",
		},
		{
			name:  "zero duration",
			input: Input{Activity: "hiit", DurationMin: 0, WeightKg: 70},
			want:  "For 0 minutes of hiit, a person weighing 70 kg would burn approximately 0 calories.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Calc(context.Background(), tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !r.IsSuccess() {
				t.Fatalf("expected success, got %q", r.ErrorMessage())
			}
			if r.Report() != tt.want {
				t.Errorf("report mismatch\ngot:  %q\nwant: %q", r.Report(), tt.want)
			}
		})
	}
}

func TestCalc_UnsupportedActivity(t *testing.T) {
	r, err := Calc(context.Background(), Input{Activity: "rowing", DurationMin: 30, WeightKg: 70})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Kind() != result.KindValidation {
		t.Fatalf("expected validation error, got %v", r.Kind())
	}

	msg := r.ErrorMessage()
	if !strings.HasPrefix(msg, "Activity 'rowing' is not supported.") {
		t.Errorf("unexpected message %q", msg)
	}
	for _, a := range Activities {
		if !strings.Contains(msg, string(a)) {
			t.Errorf("message should list %q: %q", a, msg)
		}
	}
	if len(Activities) != 10 {
		t.Errorf("expected ten activities, got %d", len(Activities))
	}
}

func TestCalc_UnsupportedActivityIsLowercased(t *testing.T) {
	r, _ := Calc(context.Background(), Input{Activity: " Rowing ", DurationMin: 30, WeightKg: 70})
	if !strings.HasPrefix(r.ErrorMessage(), "Activity 'rowing' is not supported.") {
		t.Errorf("unexpected message %q", r.ErrorMessage())
	}
}

func TestCalc_NonFinite(t *testing.T) {
	r, _ := Calc(context.Background(), Input{Activity: "running", DurationMin: 60, WeightKg: 1e308})
	if r.Kind() != result.KindComputation {
		t.Fatalf("expected computation error, got %v (%q)", r.Kind(), r.String())
	}
	if !strings.HasPrefix(r.ErrorMessage(), "Error computing calories: ") {
		t.Errorf("unexpected message %q", r.ErrorMessage())
	}
}

func TestLookupMET(t *testing.T) {
	for activity, want := range metValues {
		got, met, ok := LookupMET(strings.ToUpper(string(activity)))
		if !ok || got != activity || met != want {
			t.Errorf("LookupMET(%q) = (%q, %v, %v), want (%q, %v, true)", activity, got, met, ok, activity, want)
		}
	}
	if _, _, ok := LookupMET("rowing"); ok {
		t.Error("rowing should not be supported")
	}
}

func TestNewCaloriesTool(t *testing.T) {
	out, err := NewCaloriesTool().Call(context.Background(), `{"activity":"Running","duration_min":30,"weight_kg":70}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "approximately 350 calories") {
		t.Errorf("unexpected output %s", out)
	}
}
