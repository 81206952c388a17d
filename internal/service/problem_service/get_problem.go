package problem_service

import (
	"context"
	"errors"
	"fmt"

	"github.com/aust-acm/austoj/internal/judge_errors"
	"github.com/jackc/pgx/v5"
)

// GetBasicByID fetches the minimal problem record needed by the admission
// gate. It does not load statements or test data.
func (p *ProblemService) GetBasicByID(
	ctx context.Context,
	id int32,
) (Problem, error) {
	dbProblem, err := p.DB.GetProblemBasicByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Problem{}, fmt.Errorf(
				"%w, no problem exist with the given id",
				judge_errors.ErrNotFound,
			)
		}
		return Problem{}, fmt.Errorf(
			"%w, cannot fetch problem with id %v, %w",
			judge_errors.ErrInternal,
			id,
			err,
		)
	}

	return Problem{
		ID:            dbProblem.ID,
		Title:         dbProblem.Title,
		Type:          dbProblem.Type,
		TimeLimitMs:   dbProblem.TimeLimitMs,
		MemoryLimitKb: dbProblem.MemoryLimitKb,
	}, nil
}
