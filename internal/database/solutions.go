package database

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const insertSolution = `
INSERT INTO solutions (user_id, problem_id, contest_id, language, source_code, status)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, user_id, problem_id, contest_id, language, source_code, status,
	runtime_ms, memory_kb, submitted_at, updated_at
`

type InsertSolutionParams struct {
	UserID     uuid.UUID
	ProblemID  int32
	ContestID  *uuid.UUID
	Language   string
	SourceCode string
	Status     string
}

func (q *Queries) InsertSolution(ctx context.Context, arg InsertSolutionParams) (Solution, error) {
	row := q.db.QueryRow(ctx, insertSolution,
		arg.UserID,
		arg.ProblemID,
		arg.ContestID,
		arg.Language,
		arg.SourceCode,
		arg.Status,
	)
	var s Solution
	err := row.Scan(
		&s.ID,
		&s.UserID,
		&s.ProblemID,
		&s.ContestID,
		&s.Language,
		&s.SourceCode,
		&s.Status,
		&s.RuntimeMs,
		&s.MemoryKb,
		&s.SubmittedAt,
		&s.UpdatedAt,
	)
	return s, err
}

const getSolutionScoped = `
SELECT s.id, s.user_id, s.problem_id, s.contest_id, s.language, s.source_code,
	s.status, s.runtime_ms, s.memory_kb, s.submitted_at, s.updated_at, p.title
FROM solutions s
JOIN problems p ON p.id = s.problem_id
WHERE s.id = $1 AND s.user_id = $2
`

type GetSolutionScopedParams struct {
	ID     uuid.UUID
	UserID uuid.UUID
}

type GetSolutionScopedRow struct {
	Solution
	ProblemTitle string
}

func (q *Queries) GetSolutionScoped(ctx context.Context, arg GetSolutionScopedParams) (GetSolutionScopedRow, error) {
	row := q.db.QueryRow(ctx, getSolutionScoped, arg.ID, arg.UserID)
	var r GetSolutionScopedRow
	err := row.Scan(
		&r.ID,
		&r.UserID,
		&r.ProblemID,
		&r.ContestID,
		&r.Language,
		&r.SourceCode,
		&r.Status,
		&r.RuntimeMs,
		&r.MemoryKb,
		&r.SubmittedAt,
		&r.UpdatedAt,
		&r.ProblemTitle,
	)
	return r, err
}

const listSolutionsByUser = `
SELECT s.id, s.problem_id, s.language, s.status, s.runtime_ms, s.memory_kb,
	s.submitted_at, p.title
FROM solutions s
JOIN problems p ON p.id = s.problem_id
WHERE s.user_id = $1
	AND ($2 = '' OR p.title ILIKE '%' || $2 || '%' OR s.language ILIKE '%' || $2 || '%')
ORDER BY s.submitted_at DESC
LIMIT $3 OFFSET $4
`

type ListSolutionsByUserParams struct {
	UserID uuid.UUID
	Search string
	Limit  int32
	Offset int32
}

type ListSolutionsByUserRow struct {
	ID           uuid.UUID
	ProblemID    int32
	Language     string
	Status       string
	RuntimeMs    *int32
	MemoryKb     *int32
	SubmittedAt  time.Time
	ProblemTitle string
}

func (q *Queries) ListSolutionsByUser(ctx context.Context, arg ListSolutionsByUserParams) ([]ListSolutionsByUserRow, error) {
	rows, err := q.db.Query(ctx, listSolutionsByUser,
		arg.UserID,
		arg.Search,
		arg.Limit,
		arg.Offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := make([]ListSolutionsByUserRow, 0)
	for rows.Next() {
		var r ListSolutionsByUserRow
		if err := rows.Scan(
			&r.ID,
			&r.ProblemID,
			&r.Language,
			&r.Status,
			&r.RuntimeMs,
			&r.MemoryKb,
			&r.SubmittedAt,
			&r.ProblemTitle,
		); err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const countSolutionsByUser = `
SELECT COUNT(*)
FROM solutions s
JOIN problems p ON p.id = s.problem_id
WHERE s.user_id = $1
	AND ($2 = '' OR p.title ILIKE '%' || $2 || '%' OR s.language ILIKE '%' || $2 || '%')
`

type CountSolutionsByUserParams struct {
	UserID uuid.UUID
	Search string
}

func (q *Queries) CountSolutionsByUser(ctx context.Context, arg CountSolutionsByUserParams) (int64, error) {
	row := q.db.QueryRow(ctx, countSolutionsByUser, arg.UserID, arg.Search)
	var count int64
	err := row.Scan(&count)
	return count, err
}
