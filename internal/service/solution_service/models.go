package solution_service

import (
	"context"
	"time"

	"github.com/aust-acm/austoj/internal/database"
	"github.com/google/uuid"
)

const (
	defaultPageSize = 20
)

// SolutionStore is the slice of the query layer the solution service needs.
// Every read is scoped to a user id inside the query itself, so records of
// other users are invisible rather than forbidden.
type SolutionStore interface {
	GetSolutionScoped(ctx context.Context, arg database.GetSolutionScopedParams) (database.GetSolutionScopedRow, error)
	ListSolutionsByUser(ctx context.Context, arg database.ListSolutionsByUserParams) ([]database.ListSolutionsByUserRow, error)
	CountSolutionsByUser(ctx context.Context, arg database.CountSolutionsByUserParams) (int64, error)
}

type SolutionService struct {
	DB SolutionStore
}

type ListRequest struct {
	Search   string `json:"search"`
	Page     int32  `json:"page" validate:"min=1"`
	PageSize int32  `json:"page_size" validate:"min=1,max=100"`
}

// SolutionRow is the shape of one line of a user's submission table.
type SolutionRow struct {
	ID           uuid.UUID `json:"solution_id"`
	ProblemID    int32     `json:"problem_id"`
	ProblemTitle string    `json:"problem_title"`
	Language     string    `json:"language"`
	Status       string    `json:"status"`
	RuntimeMs    *int32    `json:"runtime_ms"`
	MemoryKb     *int32    `json:"memory_kb"`
	SubmittedAt  time.Time `json:"submitted_at"`
}

type Solution struct {
	SolutionRow
	ContestID  *uuid.UUID `json:"contest_id"`
	SourceCode string     `json:"source_code"`
}

type SolutionPage struct {
	Total    int64         `json:"total"`
	PageSize int32         `json:"page_size"`
	Rows     []SolutionRow `json:"rows"`
}
