package contest_service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aust-acm/austoj/internal/database"
	"github.com/aust-acm/austoj/internal/judge_errors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	log "github.com/sirupsen/logrus"
)

// CanJudge decides whether the given user may have a contest problem judged
// right now. Two independent rules, both must pass:
//
//  1. visit rule: a problem registered under the contest may only be judged
//     by users who have visited (entered) that contest. A problem that is
//     not registered under the contest passes this rule, it may be judged
//     on its own.
//  2. time rule: the contest must exist, be published and be inside its
//     [start, end] window. A missing or unknown contest fails this rule,
//     it never crashes the request.
func (c *ContestService) CanJudge(
	ctx context.Context,
	contestID *uuid.UUID,
	problemID int32,
	userID uuid.UUID,
) error {
	// visit rule
	if contestID != nil {
		registered, err := c.DB.IsProblemInContest(ctx, database.IsProblemInContestParams{
			ContestID: *contestID,
			ProblemID: problemID,
		})
		if err != nil {
			return judge_errors.HandleDBErrors(
				err,
				nil,
				fmt.Sprintf(
					"cannot check whether problem %v belongs to contest %v",
					problemID,
					contestID,
				),
			)
		}
		if registered {
			visited, err := c.DB.HasUserVisitedContest(ctx, database.HasUserVisitedContestParams{
				ContestID: *contestID,
				UserID:    userID,
			})
			if err != nil {
				return judge_errors.HandleDBErrors(
					err,
					nil,
					fmt.Sprintf(
						"cannot check whether user %v visited contest %v",
						userID,
						contestID,
					),
				)
			}
			if !visited {
				log.Warnf(
					"user %v tried to judge problem %v of contest %v without visiting it",
					userID,
					problemID,
					contestID,
				)
				return judge_errors.ErrNoPrivilege
			}
		}
	}

	// time rule
	if contestID == nil {
		log.Warnf(
			"user %v submitted contest problem %v without a contest id",
			userID,
			problemID,
		)
		return judge_errors.ErrContestClosed
	}
	contest, err := c.GetContestByID(ctx, *contestID)
	if err != nil {
		if errors.Is(err, judge_errors.ErrNotFound) {
			log.Warnf(
				"user %v submitted problem %v under unknown contest %v",
				userID,
				problemID,
				contestID,
			)
			return judge_errors.ErrContestClosed
		}
		return err
	}
	if !c.CanJudgeNow(contest) {
		log.Warnf(
			"user %v tried to judge problem %v outside the window of contest %v",
			userID,
			problemID,
			contestID,
		)
		return judge_errors.ErrContestClosed
	}

	return nil
}

// CanJudgeNow reports whether the contest currently accepts submissions
// for judging.
func (c *ContestService) CanJudgeNow(contest Contest) bool {
	if !contest.IsPublished {
		return false
	}
	now := time.Now()
	return !now.Before(contest.StartTime) && !now.After(contest.EndTime)
}

func (c *ContestService) GetContestByID(
	ctx context.Context,
	id uuid.UUID,
) (Contest, error) {
	if contest, ok := c.cache.Get(id); ok {
		return contest, nil
	}

	dbContest, err := c.DB.GetContestByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Contest{}, fmt.Errorf(
				"%w, no contest exist with the given id",
				judge_errors.ErrNotFound,
			)
		}
		return Contest{}, fmt.Errorf(
			"%w, cannot fetch contest with id %v, %w",
			judge_errors.ErrInternal,
			id,
			err,
		)
	}

	contest := Contest{
		ID:          dbContest.ID,
		Title:       dbContest.Title,
		StartTime:   dbContest.StartTime,
		EndTime:     dbContest.EndTime,
		IsPublished: dbContest.IsPublished,
	}
	c.cache.Add(id, contest)
	return contest, nil
}
