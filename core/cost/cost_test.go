package cost

import "testing"

func TestToolMetrics_String(t *testing.T) {
	tests := []struct {
		name     string
		metrics  ToolMetrics
		expected string
	}{
		{"default currency", ToolMetrics{Amount: 0.5}, "0.500000 USD"},
		{"with description", ToolMetrics{Amount: 0.001, Currency: "EUR", CostDescription: "per call"}, "0.001000 EUR (per call)"},
		{"local computation", LocalComputation, "0.000000 USD (local computation)"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.metrics.String(); got != tc.expected {
				t.Errorf("expected %q, got %q", tc.expected, got)
			}
		})
	}
}

func TestToolMetrics_MetricsString(t *testing.T) {
	if got := (ToolMetrics{}).MetricsString(); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
	if got := LocalComputation.MetricsString(); got != "Accuracy: 100.0%, Avg: 1ms" {
		t.Errorf("unexpected metrics string %q", got)
	}
}
