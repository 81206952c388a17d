package database

import (
	"context"

	"github.com/google/uuid"
)

const getContestByID = `
SELECT id, title, start_time, end_time, is_published, created_at
FROM contests
WHERE id = $1
`

func (q *Queries) GetContestByID(ctx context.Context, id uuid.UUID) (Contest, error) {
	row := q.db.QueryRow(ctx, getContestByID, id)
	var c Contest
	err := row.Scan(
		&c.ID,
		&c.Title,
		&c.StartTime,
		&c.EndTime,
		&c.IsPublished,
		&c.CreatedAt,
	)
	return c, err
}

const isProblemInContest = `
SELECT EXISTS (
	SELECT 1
	FROM contest_problems
	WHERE contest_id = $1 AND problem_id = $2
)
`

type IsProblemInContestParams struct {
	ContestID uuid.UUID
	ProblemID int32
}

func (q *Queries) IsProblemInContest(ctx context.Context, arg IsProblemInContestParams) (bool, error) {
	row := q.db.QueryRow(ctx, isProblemInContest, arg.ContestID, arg.ProblemID)
	var exists bool
	err := row.Scan(&exists)
	return exists, err
}

const hasUserVisitedContest = `
SELECT EXISTS (
	SELECT 1
	FROM contest_visits
	WHERE contest_id = $1 AND user_id = $2
)
`

type HasUserVisitedContestParams struct {
	ContestID uuid.UUID
	UserID    uuid.UUID
}

func (q *Queries) HasUserVisitedContest(ctx context.Context, arg HasUserVisitedContestParams) (bool, error) {
	row := q.db.QueryRow(ctx, hasUserVisitedContest, arg.ContestID, arg.UserID)
	var exists bool
	err := row.Scan(&exists)
	return exists, err
}
