package journal

import (
	"context"
	"database/sql"
	"fmt"
)

// Entries returns every entry of an instance ordered by seq.
// kind filters by entry kind; "" returns all kinds.
//
// Returns an empty slice (not nil) if nothing was recorded.
func (j *Journal) Entries(ctx context.Context, instanceID string, kind Kind) ([]Entry, error) {
	rows, err := j.db.QueryContext(ctx, `
		SELECT instance_id, seq, kind, stream, text, error_type, function, file, line, code, rationale
		FROM entries
		WHERE instance_id = ? AND (? = '' OR kind = ?)
		ORDER BY seq ASC, id ASC
	`, instanceID, string(kind), string(kind))
	if err != nil {
		return nil, fmt.Errorf("query entries: %w", err)
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate entries: %w", err)
	}
	return entries, nil
}

func scanEntry(rows *sql.Rows) (Entry, error) {
	var e Entry
	var kind string
	err := rows.Scan(
		&e.InstanceID,
		&e.Seq,
		&kind,
		&e.Stream,
		&e.Text,
		&e.ErrorType,
		&e.Function,
		&e.File,
		&e.Line,
		&e.Code,
		&e.Rationale,
	)
	if err != nil {
		return Entry{}, fmt.Errorf("scan entry: %w", err)
	}
	e.Kind = Kind(kind)
	return e, nil
}

// Instances lists recorded runs, oldest first, with entry and error
// counts.
func (j *Journal) Instances(ctx context.Context) ([]Instance, error) {
	rows, err := j.db.QueryContext(ctx, `
		SELECT i.instance_id, i.backend, i.started_at,
		       COUNT(e.id),
		       COALESCE(SUM(CASE WHEN e.kind = 'error' THEN 1 ELSE 0 END), 0)
		FROM instances i
		LEFT JOIN entries e ON e.instance_id = i.instance_id
		GROUP BY i.instance_id
		ORDER BY i.started_at ASC, i.instance_id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query instances: %w", err)
	}
	defer rows.Close()

	instances := []Instance{}
	for rows.Next() {
		var in Instance
		if err := rows.Scan(&in.InstanceID, &in.Backend, &in.StartedAt, &in.Entries, &in.Errors); err != nil {
			return nil, fmt.Errorf("scan instance: %w", err)
		}
		instances = append(instances, in)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate instances: %w", err)
	}
	return instances, nil
}
