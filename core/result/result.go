package result

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Status tags which variant of a [Result] is populated.
type Status string

const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// Kind classifies an error result.
type Kind int

const (
	// KindNone is the kind of a successful result.
	KindNone Kind = iota
	// KindValidation marks input that failed a fixed-set membership or range check.
	KindValidation
	// KindComputation marks an arithmetic fault raised while evaluating a formula.
	KindComputation
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindComputation:
		return "computation"
	default:
		return "none"
	}
}

var (
	// ErrDivisionByZero is the detail reported when a formula would divide by zero.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrNonFinite is the detail reported when a formula yields NaN or ±Inf.
	ErrNonFinite = errors.New("result is not a finite number")
)

// Error is the typed form of an error result.
type Error struct {
	Kind    Kind
	Message string
	// Cause is the underlying detail for computation errors; nil for validation errors.
	Cause error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Cause }

// Result is the tagged union returned by every calculator.
// The zero value is not a valid Result; use the constructors.
type Result struct {
	status  Status
	report  string
	message string
	kind    Kind
	cause   error
}

// Success builds a success result carrying report.
func Success(report string) Result {
	return Result{status: StatusSuccess, report: report}
}

// Invalid builds a validation error result with a formatted message.
func Invalid(format string, args ...any) Result {
	return Result{
		status:  StatusError,
		message: fmt.Sprintf(format, args...),
		kind:    KindValidation,
	}
}

// ComputeFailed builds a computation error result of the form
// "Error computing <subject>: <cause>".
func ComputeFailed(subject string, cause error) Result {
	if cause == nil {
		cause = ErrNonFinite
	}
	return Result{
		status:  StatusError,
		message: fmt.Sprintf("Error computing %s: %v", subject, cause),
		kind:    KindComputation,
		cause:   cause,
	}
}

// Status reports which variant is populated.
func (r Result) Status() Status { return r.status }

// IsSuccess reports whether r is the success variant.
func (r Result) IsSuccess() bool { return r.status == StatusSuccess }

// Report returns the success payload, or "" for an error result.
func (r Result) Report() string { return r.report }

// ErrorMessage returns the error payload, or "" for a success result.
func (r Result) ErrorMessage() string { return r.message }

// Kind returns the error classification, KindNone on success.
func (r Result) Kind() Kind { return r.kind }

// Err returns nil for a success result and an [*Error] otherwise.
func (r Result) Err() error {
	if r.status != StatusError {
		return nil
	}
	return &Error{Kind: r.kind, Message: r.message, Cause: r.cause}
}

// String returns whichever payload is populated.
func (r Result) String() string {
	if r.IsSuccess() {
		return r.report
	}
	return r.message
}

// wireResult is the JSON shape exchanged with the agent layer.
type wireResult struct {
	Status       Status `json:"status"`
	Report       string `json:"report,omitempty"`
	ErrorMessage string `json:"error_message,omitempty"`
}

// MarshalJSON encodes r as {"status":"success","report":...} or
// {"status":"error","error_message":...}.
func (r Result) MarshalJSON() ([]byte, error) {
	if r.status != StatusSuccess && r.status != StatusError {
		return nil, errors.New("result: marshal of uninitialized Result")
	}
	return json.Marshal(wireResult{
		Status:       r.status,
		Report:       r.report,
		ErrorMessage: r.message,
	})
}

// UnmarshalJSON decodes the wire form produced by MarshalJSON. Error results
// decoded this way have KindNone since the kind is not transmitted.
func (r *Result) UnmarshalJSON(data []byte) error {
	var w wireResult
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	switch w.Status {
	case StatusSuccess:
		*r = Result{status: StatusSuccess, report: w.Report}
	case StatusError:
		*r = Result{status: StatusError, message: w.ErrorMessage}
	default:
		return fmt.Errorf("result: unknown status %q", w.Status)
	}
	return nil
}
