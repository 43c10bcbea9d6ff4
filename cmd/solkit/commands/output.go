package commands

import (
	"encoding/json"
	"io"

	"solkit/internal/api"
)

// reportedError marks an error already printed as a failure envelope.
type reportedError struct{ err error }

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// printResult writes data, or err, as an API envelope to w. A non-nil err
// is returned wrapped so Execute does not print it twice.
func printResult(w io.Writer, data any, err error) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err != nil {
		_ = enc.Encode(api.Response{Success: false, Error: err.Error()})
		return &reportedError{err: err}
	}
	return enc.Encode(api.Response{Success: true, Data: data})
}
