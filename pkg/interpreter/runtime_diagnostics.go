package interpreter

import (
	"errors"

	"rinha/interpreter-go/pkg/driver"
)

// BuildRuntimeDiagnostic converts an evaluation failure into a locatable
// diagnostic. Errors that are not RuntimeErrors (which should not escape the
// evaluator) fall back to a generic runtime-error report without a location.
func BuildRuntimeDiagnostic(err error) driver.Diagnostic {
	var rtErr *RuntimeError
	if errors.As(err, &rtErr) {
		return driver.Diagnostic{
			Severity: driver.SeverityError,
			Kind:     string(rtErr.Kind),
			Message:  rtErr.Message,
			Location: driver.LocationFromSpan(rtErr.Span),
		}
	}
	return driver.Diagnostic{
		Severity: driver.SeverityError,
		Kind:     "runtime error",
		Message:  err.Error(),
	}
}

// DescribeRuntimeDiagnostic renders the plain one-line diagnostic form,
// `<kind>: <message> (line X, column Y)`.
func DescribeRuntimeDiagnostic(diag driver.Diagnostic) string {
	return diag.String()
}
