package solution_service

import (
	"context"
	"errors"
	"fmt"

	"github.com/aust-acm/austoj/internal/database"
	"github.com/aust-acm/austoj/internal/judge_errors"
	"github.com/aust-acm/austoj/internal/service"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	log "github.com/sirupsen/logrus"
)

// GetOwned returns a single submission of the current user. The lookup is
// scoped to the user inside the query, so a submission that exists but
// belongs to someone else yields the same outcome as one that does not
// exist at all.
func (s *SolutionService) GetOwned(
	ctx context.Context,
	solutionID uuid.UUID,
) (Solution, error) {
	claims, err := service.GetClaimsFromContext(ctx)
	if err != nil {
		return Solution{}, err
	}

	row, err := s.DB.GetSolutionScoped(ctx, database.GetSolutionScopedParams{
		ID:     solutionID,
		UserID: claims.UserID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Warnf(
				"user %s requested solution %v which is missing or not theirs",
				claims.UserName,
				solutionID,
			)
			return Solution{}, fmt.Errorf(
				"%w, no permission to view this submission",
				judge_errors.ErrUnAuthorized,
			)
		}
		return Solution{}, fmt.Errorf(
			"%w, cannot fetch solution with id %v, %w",
			judge_errors.ErrInternal,
			solutionID,
			err,
		)
	}

	return Solution{
		SolutionRow: SolutionRow{
			ID:           row.ID,
			ProblemID:    row.ProblemID,
			ProblemTitle: row.ProblemTitle,
			Language:     row.Language,
			Status:       row.Status,
			RuntimeMs:    row.RuntimeMs,
			MemoryKb:     row.MemoryKb,
			SubmittedAt:  row.SubmittedAt,
		},
		ContestID:  row.ContestID,
		SourceCode: row.SourceCode,
	}, nil
}

// ListOwned returns one page of the current user's submission history. The
// owner filter is applied server-side on every query, the caller cannot
// widen it.
func (s *SolutionService) ListOwned(
	ctx context.Context,
	req ListRequest,
) (SolutionPage, error) {
	claims, err := service.GetClaimsFromContext(ctx)
	if err != nil {
		return SolutionPage{}, err
	}

	// missing pagination fields fall back to the first page
	if req.Page == 0 {
		req.Page = 1
	}
	if req.PageSize == 0 {
		req.PageSize = defaultPageSize
	}
	if err := service.ValidateInput(req); err != nil {
		return SolutionPage{}, err
	}

	total, err := s.DB.CountSolutionsByUser(ctx, database.CountSolutionsByUserParams{
		UserID: claims.UserID,
		Search: req.Search,
	})
	if err != nil {
		return SolutionPage{}, judge_errors.HandleDBErrors(
			err,
			nil,
			fmt.Sprintf("cannot count solutions of user %s", claims.UserName),
		)
	}

	rows, err := s.DB.ListSolutionsByUser(ctx, database.ListSolutionsByUserParams{
		UserID: claims.UserID,
		Search: req.Search,
		Limit:  req.PageSize,
		Offset: (req.Page - 1) * req.PageSize,
	})
	if err != nil {
		return SolutionPage{}, judge_errors.HandleDBErrors(
			err,
			nil,
			fmt.Sprintf("cannot list solutions of user %s", claims.UserName),
		)
	}

	page := SolutionPage{
		Total:    total,
		PageSize: req.PageSize,
		Rows:     make([]SolutionRow, 0, len(rows)),
	}
	for _, row := range rows {
		page.Rows = append(page.Rows, SolutionRow{
			ID:           row.ID,
			ProblemID:    row.ProblemID,
			ProblemTitle: row.ProblemTitle,
			Language:     row.Language,
			Status:       row.Status,
			RuntimeMs:    row.RuntimeMs,
			MemoryKb:     row.MemoryKb,
			SubmittedAt:  row.SubmittedAt,
		})
	}

	return page, nil
}
