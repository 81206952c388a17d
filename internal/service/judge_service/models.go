package judge_service

import (
	"context"

	"github.com/aust-acm/austoj/internal/service/contest_service"
	"github.com/aust-acm/austoj/internal/service/problem_service"
	"github.com/google/uuid"
)

const (
	// freshly created jobs always start queued. every later state is
	// owned and advanced by the judger daemon
	StatusQueued = "queued"
)

type JudgeService struct {
	ProblemServiceConfig *problem_service.ProblemService
	ContestServiceConfig *contest_service.ContestService
	Sink                 JobSink
}

type SubmitRequest struct {
	ProblemID  int32      `json:"problem_id"`
	SourceCode string     `json:"code"`
	Language   string     `json:"lang"`
	ContestID  *uuid.UUID `json:"contest_id"`
}

// Job is everything the judging engine needs to evaluate a submission.
type Job struct {
	UserID     uuid.UUID
	Problem    problem_service.Problem
	Language   Language
	SourceCode string
	ContestID  *uuid.UUID
}

// JobSink is the entry point of the external judging engine. CreateJob is
// expected to enqueue the job asynchronously and return its id immediately.
type JobSink interface {
	CreateJob(ctx context.Context, job Job) (uuid.UUID, error)
}
