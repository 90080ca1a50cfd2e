package cost

import (
	"fmt"
	"strings"
)

// ToolMetrics carries per-call cost and quality metadata for a tool.
//
// Example usage:
//
//	metrics := cost.ToolMetrics{
//	    Amount:                  0,
//	    Currency:                "USD",
//	    CostDescription:         "local computation",
//	    Accuracy:                1.0,
//	    AverageDurationInMillis: 1,
//	}
type ToolMetrics struct {
	// Amount is the cost of a single execution
	Amount float64 `json:"amount"`

	// Currency is the unit of Amount (e.g., "USD", "credits")
	Currency string `json:"currency,omitempty"`

	// CostDescription gives context about the cost (e.g., "per API call")
	CostDescription string `json:"cost_description,omitempty"`

	// Accuracy is a reliability score between 0.0 and 1.0
	Accuracy float64 `json:"accuracy,omitempty"`

	// AverageDurationInMillis is the typical execution time
	AverageDurationInMillis int64 `json:"average_duration_ms,omitempty"`
}

// LocalComputation is the metrics profile of an in-process deterministic calculator.
var LocalComputation = ToolMetrics{
	Amount:                  0.0,
	Currency:                "USD",
	CostDescription:         "local computation",
	Accuracy:                1.0,
	AverageDurationInMillis: 1,
}

// String returns the cost, e.g. "0.000000 USD (local computation)".
func (m ToolMetrics) String() string {
	currency := m.Currency
	if currency == "" {
		currency = "USD"
	}

	result := fmt.Sprintf("%.6f %s", m.Amount, currency)
	if m.CostDescription != "" {
		result = fmt.Sprintf("%s (%s)", result, m.CostDescription)
	}
	return result
}

// MetricsString returns the quality metrics, e.g. "Accuracy: 100.0%, Avg: 1ms".
func (m ToolMetrics) MetricsString() string {
	var parts []string
	if m.Accuracy > 0 {
		parts = append(parts, fmt.Sprintf("Accuracy: %.1f%%", m.Accuracy*100))
	}
	if m.AverageDurationInMillis > 0 {
		parts = append(parts, fmt.Sprintf("Avg: %dms", m.AverageDurationInMillis))
	}
	return strings.Join(parts, ", ")
}
