package cache

import (
	"strings"
	"testing"
)

func TestKey_IgnoresArgumentOrderAndWhitespace(t *testing.T) {
	a, err := Key("calculate_bmi", "text", `{"weight_kg": 70, "height_cm": 175}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := Key("calculate_bmi", "text", `{"height_cm":175,"weight_kg":70}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a != b {
		t.Errorf("keys differ:\n%s\n%s", a, b)
	}
	if !strings.HasPrefix(a, "calcagent:calculate_bmi:text:") {
		t.Errorf("unexpected key prefix: %s", a)
	}
}

func TestKey_Discriminates(t *testing.T) {
	base, _ := Key("calculate_bmi", "text", `{"weight_kg":70,"height_cm":175}`)

	tests := []struct {
		name   string
		tool   string
		format string
		args   string
	}{
		{"different tool", "calculate_calories_burned", "text", `{"weight_kg":70,"height_cm":175}`},
		{"different format", "calculate_bmi", "markdown", `{"weight_kg":70,"height_cm":175}`},
		{"different args", "calculate_bmi", "text", `{"weight_kg":71,"height_cm":175}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k, err := Key(tt.tool, tt.format, tt.args)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if k == base {
				t.Errorf("expected key to differ from %s", base)
			}
		})
	}
}

func TestKey_ToolNameCaseInsensitive(t *testing.T) {
	a, _ := Key("Calculate_BMI", "text", `{}`)
	b, _ := Key("calculate_bmi", "text", `{}`)
	if a != b {
		t.Errorf("expected equal keys, got %s and %s", a, b)
	}
}

func TestKey_Unparseable(t *testing.T) {
	if _, err := Key("calculate_bmi", "text", `[1, 2`); err == nil {
		t.Error("expected error for unparseable arguments")
	}
}

func TestKey_KeepsIntegerPrecision(t *testing.T) {
	// Both values collapse to the same float64.
	a, _ := Key("calculate_calories_burned", "text", `{"activity":"running","duration_min":9007199254740993,"weight_kg":70}`)
	b, _ := Key("calculate_calories_burned", "text", `{"activity":"running","duration_min":9007199254740992,"weight_kg":70}`)
	if a == b {
		t.Errorf("expected distinct keys for distinct integers, both were %s", a)
	}
}

func TestKey_NestedObjectsCanonical(t *testing.T) {
	a, _ := Key("analyze_investment_portfolio", "text", `{"allocation":{"stocks":60,"bonds":40},"risk_tolerance":"moderate"}`)
	b, _ := Key("analyze_investment_portfolio", "text", `{"risk_tolerance":"moderate","allocation":{"bonds":40,"stocks":60}}`)
	if a != b {
		t.Errorf("expected nested key order not to matter: %s != %s", a, b)
	}
}
