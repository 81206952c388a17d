package database

import (
	"context"
)

const getProblemBasicByID = `
SELECT id, title, type, time_limit_ms, memory_limit_kb, created_at
FROM problems
WHERE id = $1
`

func (q *Queries) GetProblemBasicByID(ctx context.Context, id int32) (Problem, error) {
	row := q.db.QueryRow(ctx, getProblemBasicByID, id)
	var p Problem
	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Type,
		&p.TimeLimitMs,
		&p.MemoryLimitKb,
		&p.CreatedAt,
	)
	return p, err
}
