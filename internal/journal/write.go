package journal

import (
	"context"
	"fmt"
)

// Append inserts an entry. (instance_id, seq) is unique: a duplicate is
// silently ignored so a retried write cannot double an entry.
func (j *Journal) Append(ctx context.Context, e Entry) error {
	_, err := j.db.ExecContext(ctx, `
		INSERT INTO entries
		(instance_id, seq, kind, stream, text, error_type, function, file, line, code, rationale)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(instance_id, seq) DO NOTHING
	`,
		e.InstanceID,
		e.Seq,
		string(e.Kind),
		e.Stream,
		e.Text,
		e.ErrorType,
		e.Function,
		e.File,
		e.Line,
		e.Code,
		e.Rationale,
	)
	if err != nil {
		return fmt.Errorf("append entry: %w", err)
	}
	return nil
}
