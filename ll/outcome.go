package ll

import (
	"encoding/csv"
	"io"

	"github.com/cnf/structhash"
	"github.com/npillmayer/llpp"
)

// Outcome is the result of a parse run: the trace of steps, in order of
// execution, and the verdict.
type Outcome struct {
	Steps    []Step
	Accepted bool
}

// Verdict returns "valid" for an accepted input, "invalid" otherwise.
func (o *Outcome) Verdict() string {
	if o.Accepted {
		return "valid"
	}
	return "invalid"
}

// Rows returns the trace as records of (stack, remaining input, action), with
// symbols joined by a single space.
func (o *Outcome) Rows() [][]string {
	rows := make([][]string, len(o.Steps))
	for i, step := range o.Steps {
		rows[i] = []string{
			llpp.Join(step.Stack),
			llpp.Join(step.Input),
			step.Action.String(),
		}
	}
	return rows
}

// Last returns the final step of the trace, if any.
func (o *Outcome) Last() (Step, bool) {
	if len(o.Steps) == 0 {
		return Step{}, false
	}
	return o.Steps[len(o.Steps)-1], true
}

// WriteCSV writes the trace in comma-separated format, starting with a header
// row "Stack,Input Buffer,Action".
func (o *Outcome) WriteCSV(w io.Writer) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"Stack", "Input Buffer", "Action"}); err != nil {
		return err
	}
	if err := writer.WriteAll(o.Rows()); err != nil {
		return err
	}
	return writer.Error()
}

type traceFingerprint struct {
	Rows     [][]string `hash:"name:rows"`
	Accepted bool       `hash:"name:accepted"`
}

// Digest returns a fingerprint of the trace and the verdict. Runs with
// identical traces have identical digests.
func (o *Outcome) Digest() string {
	h, err := structhash.Hash(traceFingerprint{Rows: o.Rows(), Accepted: o.Accepted}, 1)
	if err != nil {
		tracer().Errorf("cannot hash parse trace: %v", err)
		return ""
	}
	return h
}
