package journal

// Kind distinguishes plain messages from structured error reports.
type Kind string

const (
	KindMessage Kind = "message"
	KindError   Kind = "error"
)

// Entry is one journal row.
type Entry struct {
	InstanceID string `json:"instance_id"`
	Seq        int64  `json:"seq"`
	Kind       Kind   `json:"kind"`

	// Message fields.
	Stream string `json:"stream,omitempty"`
	Text   string `json:"text,omitempty"`

	// Error report fields.
	ErrorType string `json:"error_type,omitempty"`
	Function  string `json:"function,omitempty"`
	File      string `json:"file,omitempty"`
	Line      int    `json:"line,omitempty"`
	Code      string `json:"code,omitempty"`
	Rationale string `json:"rationale,omitempty"`
}

// Instance summarizes one recorded process run.
type Instance struct {
	InstanceID string `json:"instance_id"`
	Backend    string `json:"backend"`
	StartedAt  string `json:"started_at"`
	Entries    int    `json:"entries"`
	Errors     int    `json:"errors"`
}
