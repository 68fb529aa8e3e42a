// Package output renders lifecycle events and errors as NDJSON for machine
// consumers.
package output

import (
	"encoding/json"
	"io"
	"sync"

	"github.com/tpavlinic/cdplaunch/internal/domain"
)

// SchemaVersion of emitted records.
const SchemaVersion = domain.SchemaVersion

// NDJSONWriter writes one JSON record per line. Safe for concurrent use.
type NDJSONWriter struct {
	mu  sync.Mutex
	enc *json.Encoder
}

// NewNDJSONWriter creates a writer targeting w.
func NewNDJSONWriter(w io.Writer) *NDJSONWriter {
	return &NDJSONWriter{enc: json.NewEncoder(w)}
}

// WriteEvent emits a lifecycle event record.
func (w *NDJSONWriter) WriteEvent(e domain.Event) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.enc.Encode(e)
}

// Event implements the session event sink on top of WriteEvent. Encoding
// failures are dropped: the stream is advisory.
func (w *NDJSONWriter) Event(e domain.Event) {
	_ = w.WriteEvent(e)
}

// ErrorRecord is a machine-readable failure.
type ErrorRecord struct {
	Type          string `json:"type"`
	SchemaVersion int    `json:"schemaVersion"`
	Code          string `json:"code"`
	Message       string `json:"message"`
	Hint          string `json:"hint,omitempty"`
}

// WriteError emits an error record with a stable code and optional hint.
func (w *NDJSONWriter) WriteError(code, message string, hint ...string) error {
	rec := ErrorRecord{
		Type:          "error",
		SchemaVersion: SchemaVersion,
		Code:          code,
		Message:       message,
	}
	if len(hint) > 0 {
		rec.Hint = hint[0]
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.enc.Encode(rec)
}
