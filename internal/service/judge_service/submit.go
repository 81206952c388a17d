package judge_service

import (
	"context"
	"fmt"
	"net/url"

	"github.com/aust-acm/austoj/internal/judge_errors"
	"github.com/aust-acm/austoj/internal/service"
	"github.com/aust-acm/austoj/internal/service/problem_service"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// Submit runs the full admission chain for a submission and, if every check
// passes, creates a judging job and returns its id. The chain short-circuits
// on the first failure and performs no side effects until all checks pass.
func (j *JudgeService) Submit(
	ctx context.Context,
	req SubmitRequest,
) (uuid.UUID, error) {
	// the caller must be logged in
	claims, err := service.GetClaimsFromContext(ctx)
	if err != nil {
		return uuid.Nil, err
	}

	// parameter checks
	if req.SourceCode == "" {
		return uuid.Nil, fmt.Errorf(
			"%w, source code cannot be empty",
			judge_errors.ErrInvalidRequest,
		)
	}
	if req.Language == "" {
		return uuid.Nil, fmt.Errorf(
			"%w, the selected language cannot be empty",
			judge_errors.ErrInvalidRequest,
		)
	}

	// the problem must exist
	problem, err := j.ProblemServiceConfig.GetBasicByID(ctx, req.ProblemID)
	if err != nil {
		return uuid.Nil, err
	}

	// contest problems must pass the eligibility rules
	if problem.Type == problem_service.TypeContest {
		if err := j.ContestServiceConfig.CanJudge(
			ctx,
			req.ContestID,
			problem.ID,
			claims.UserID,
		); err != nil {
			return uuid.Nil, err
		}
	}

	// the language token must map to a canonical language
	lang, ok := GetLanguage(req.Language)
	if !ok {
		log.Warnf(
			"user %s submitted problem %v with unknown language %q",
			claims.UserName,
			problem.ID,
			req.Language,
		)
		return uuid.Nil, judge_errors.ErrUnknownLanguage
	}

	// the transport url-encodes the source. decode it exactly once, after
	// every check, so rejected requests never pay for it
	sourceCode, err := url.QueryUnescape(req.SourceCode)
	if err != nil {
		return uuid.Nil, fmt.Errorf(
			"%w, source code is not url-encoded properly, %v",
			judge_errors.ErrInvalidRequest,
			err,
		)
	}

	// a submission references a contest only when it was admitted under
	// that contest's rules
	var contestID *uuid.UUID
	if problem.Type == problem_service.TypeContest {
		contestID = req.ContestID
	}

	jobID, err := j.Sink.CreateJob(ctx, Job{
		UserID:     claims.UserID,
		Problem:    problem,
		Language:   lang,
		SourceCode: sourceCode,
		ContestID:  contestID,
	})
	if err != nil {
		return uuid.Nil, err
	}

	log.WithFields(log.Fields{
		"user_name":   claims.UserName,
		"problem_id":  problem.ID,
		"language":    lang.Name,
		"solution_id": jobID,
	}).Info("created judging job")

	return jobID, nil
}
