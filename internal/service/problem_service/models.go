package problem_service

import (
	"context"

	"github.com/aust-acm/austoj/internal/database"
)

const (
	// problem type discriminators as stored in the problems table
	TypeNormal  = "normal"
	TypeContest = "contest"
)

// ProblemStore is the slice of the query layer the problem service needs.
type ProblemStore interface {
	GetProblemBasicByID(ctx context.Context, id int32) (database.Problem, error)
}

type ProblemService struct {
	DB ProblemStore
}

type Problem struct {
	ID            int32  `json:"problem_id"`
	Title         string `json:"title"`
	Type          string `json:"type"`
	TimeLimitMs   int32  `json:"time_limit_ms"`
	MemoryLimitKb int32  `json:"memory_limit_kb"`
}
