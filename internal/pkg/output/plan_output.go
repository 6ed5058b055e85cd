package output

import (
	"io"
	"time"
)

// WriteDryRunResult выводит план dry-run в заданном формате.
// Для текстового формата — человекочитаемый план, для JSON — стандартный
// Result с полями dry_run=true и plan.
func WriteDryRunResult(w io.Writer, format, command, traceID, apiVersion string, start time.Time, plan *DryRunPlan) error {
	if format != FormatJSON {
		return plan.WriteText(w)
	}

	result := &Result{
		Status:  StatusSuccess,
		Command: command,
		DryRun:  true,
		Plan:    plan,
		Metadata: &Metadata{
			DurationMs: time.Since(start).Milliseconds(),
			TraceID:    traceID,
			APIVersion: apiVersion,
		},
	}

	writer := NewWriter(format)
	return writer.Write(w, result)
}
