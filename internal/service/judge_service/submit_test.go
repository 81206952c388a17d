package judge_service_test

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/aust-acm/austoj/internal/database"
	"github.com/aust-acm/austoj/internal/judge_errors"
	"github.com/aust-acm/austoj/internal/service"
	"github.com/aust-acm/austoj/internal/service/contest_service"
	"github.com/aust-acm/austoj/internal/service/judge_service"
	"github.com/aust-acm/austoj/internal/service/problem_service"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type fakeProblemStore struct {
	problems map[int32]database.Problem
}

func (f *fakeProblemStore) GetProblemBasicByID(ctx context.Context, id int32) (database.Problem, error) {
	p, ok := f.problems[id]
	if !ok {
		return database.Problem{}, pgx.ErrNoRows
	}
	return p, nil
}

type fakeContestStore struct {
	contests        map[uuid.UUID]database.Contest
	contestProblems map[uuid.UUID][]int32
	visits          map[uuid.UUID][]uuid.UUID
}

func (f *fakeContestStore) GetContestByID(ctx context.Context, id uuid.UUID) (database.Contest, error) {
	c, ok := f.contests[id]
	if !ok {
		return database.Contest{}, pgx.ErrNoRows
	}
	return c, nil
}

func (f *fakeContestStore) IsProblemInContest(ctx context.Context, arg database.IsProblemInContestParams) (bool, error) {
	return slices.Contains(f.contestProblems[arg.ContestID], arg.ProblemID), nil
}

func (f *fakeContestStore) HasUserVisitedContest(ctx context.Context, arg database.HasUserVisitedContestParams) (bool, error) {
	return slices.Contains(f.visits[arg.ContestID], arg.UserID), nil
}

type fakeJobSink struct {
	jobs []judge_service.Job
	err  error
}

func (f *fakeJobSink) CreateJob(ctx context.Context, job judge_service.Job) (uuid.UUID, error) {
	if f.err != nil {
		return uuid.Nil, f.err
	}
	f.jobs = append(f.jobs, job)
	return uuid.New(), nil
}

var (
	testUserID    = uuid.New()
	testContestID = uuid.New()
)

const (
	normalProblemID  = int32(1)
	contestProblemID = int32(2)
)

// openContest returns a published contest whose window includes now.
func openContest() database.Contest {
	return database.Contest{
		ID:          testContestID,
		Title:       "weekly round",
		StartTime:   time.Now().Add(-time.Hour),
		EndTime:     time.Now().Add(time.Hour),
		IsPublished: true,
	}
}

type fixture struct {
	contests *fakeContestStore
	sink     *fakeJobSink
	judge    *judge_service.JudgeService
}

func newFixture() *fixture {
	problems := &fakeProblemStore{
		problems: map[int32]database.Problem{
			normalProblemID: {
				ID:    normalProblemID,
				Title: "a plus b",
				Type:  problem_service.TypeNormal,
			},
			contestProblemID: {
				ID:    contestProblemID,
				Title: "hard graph",
				Type:  problem_service.TypeContest,
			},
		},
	}
	contests := &fakeContestStore{
		contests:        map[uuid.UUID]database.Contest{testContestID: openContest()},
		contestProblems: map[uuid.UUID][]int32{testContestID: {contestProblemID}},
		visits:          map[uuid.UUID][]uuid.UUID{},
	}

	contestService := contest_service.ContestService{DB: contests}
	contestService.Start()

	sink := &fakeJobSink{}
	return &fixture{
		contests: contests,
		sink:     sink,
		judge: &judge_service.JudgeService{
			ProblemServiceConfig: &problem_service.ProblemService{DB: problems},
			ContestServiceConfig: &contestService,
			Sink:                 sink,
		},
	}
}

func authedCtx() context.Context {
	return context.WithValue(
		context.Background(),
		service.KeyCtxUserCredClaims,
		service.UserCredentialClaims{UserID: testUserID, UserName: "tester"},
	)
}

func validRequest() judge_service.SubmitRequest {
	return judge_service.SubmitRequest{
		ProblemID:  normalProblemID,
		SourceCode: "int%20main%28%29%20%7B%7D",
		Language:   "C++",
	}
}

func assertRejected(t *testing.T, fx *fixture, ctx context.Context, req judge_service.SubmitRequest, want error) {
	t.Helper()
	_, err := fx.judge.Submit(ctx, req)
	if !errors.Is(err, want) {
		t.Errorf("expected %v, got %v", want, err)
	}
	if len(fx.sink.jobs) != 0 {
		t.Errorf("expected no job to be created, got %d", len(fx.sink.jobs))
	}
}

func TestSubmitNotLoggedIn(t *testing.T) {
	fx := newFixture()
	assertRejected(t, fx, context.Background(), validRequest(), judge_errors.ErrNotAuthenticated)
}

func TestSubmitEmptySourceCode(t *testing.T) {
	fx := newFixture()
	req := validRequest()
	req.SourceCode = ""
	assertRejected(t, fx, authedCtx(), req, judge_errors.ErrInvalidRequest)
}

func TestSubmitEmptyLanguage(t *testing.T) {
	fx := newFixture()
	req := validRequest()
	req.Language = ""
	assertRejected(t, fx, authedCtx(), req, judge_errors.ErrInvalidRequest)
}

func TestSubmitUnknownProblem(t *testing.T) {
	fx := newFixture()
	req := validRequest()
	req.ProblemID = 999
	assertRejected(t, fx, authedCtx(), req, judge_errors.ErrNotFound)
}

func TestSubmitUnknownLanguage(t *testing.T) {
	fx := newFixture()
	req := validRequest()
	req.Language = "Brainfuck"
	assertRejected(t, fx, authedCtx(), req, judge_errors.ErrUnknownLanguage)
}

func TestSubmitNormalProblemCreatesJob(t *testing.T) {
	fx := newFixture()
	jobID, err := fx.judge.Submit(authedCtx(), validRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if jobID == uuid.Nil {
		t.Error("expected a non-zero job id")
	}
	if len(fx.sink.jobs) != 1 {
		t.Fatalf("expected exactly one job, got %d", len(fx.sink.jobs))
	}
	job := fx.sink.jobs[0]
	if job.UserID != testUserID {
		t.Errorf("job owner is %v, want %v", job.UserID, testUserID)
	}
	if job.SourceCode != "int main() {}" {
		t.Errorf("source code was not decoded, got %q", job.SourceCode)
	}
	if job.ContestID != nil {
		t.Errorf("normal problem must not carry a contest reference, got %v", job.ContestID)
	}
}

func TestSubmitNormalProblemIgnoresContestID(t *testing.T) {
	fx := newFixture()
	req := validRequest()
	req.ContestID = &testContestID
	if _, err := fx.judge.Submit(authedCtx(), req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fx.sink.jobs[0].ContestID != nil {
		t.Error("contest reference must only be set when eligibility ran in contest mode")
	}
}

func TestSubmitContestProblemNotVisited(t *testing.T) {
	// registered problem, open window, but the user never visited the contest
	fx := newFixture()
	req := validRequest()
	req.ProblemID = contestProblemID
	req.ContestID = &testContestID
	assertRejected(t, fx, authedCtx(), req, judge_errors.ErrNoPrivilege)
}

func TestSubmitContestProblemOutsideWindow(t *testing.T) {
	fx := newFixture()
	fx.contests.visits[testContestID] = []uuid.UUID{testUserID}
	contest := openContest()
	contest.StartTime = time.Now().Add(time.Hour)
	contest.EndTime = time.Now().Add(2 * time.Hour)
	fx.contests.contests[testContestID] = contest

	req := validRequest()
	req.ProblemID = contestProblemID
	req.ContestID = &testContestID
	assertRejected(t, fx, authedCtx(), req, judge_errors.ErrContestClosed)
}

func TestSubmitContestProblemWithoutContestID(t *testing.T) {
	fx := newFixture()
	req := validRequest()
	req.ProblemID = contestProblemID
	assertRejected(t, fx, authedCtx(), req, judge_errors.ErrContestClosed)
}

func TestSubmitContestProblemAdmitted(t *testing.T) {
	fx := newFixture()
	fx.contests.visits[testContestID] = []uuid.UUID{testUserID}

	req := validRequest()
	req.ProblemID = contestProblemID
	req.ContestID = &testContestID
	jobID, err := fx.judge.Submit(authedCtx(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if jobID == uuid.Nil {
		t.Error("expected a non-zero job id")
	}
	job := fx.sink.jobs[0]
	if job.ContestID == nil || *job.ContestID != testContestID {
		t.Errorf("admitted contest submission must reference contest %v, got %v", testContestID, job.ContestID)
	}
}

func TestSubmitUnregisteredContestProblemSkipsVisitRule(t *testing.T) {
	// a contest-type problem that is not registered under the given contest
	// may be judged without a visit, only the window matters
	fx := newFixture()
	fx.contests.contestProblems[testContestID] = nil

	req := validRequest()
	req.ProblemID = contestProblemID
	req.ContestID = &testContestID
	if _, err := fx.judge.Submit(authedCtx(), req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSubmitLanguageAliasMatchesLiteral(t *testing.T) {
	fx := newFixture()
	req := validRequest()
	req.Language = "C2"
	if _, err := fx.judge.Submit(authedCtx(), req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	req.Language = "C++"
	if _, err := fx.judge.Submit(authedCtx(), req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fx.sink.jobs[0].Language != fx.sink.jobs[1].Language {
		t.Errorf(
			"alias and literal submissions yielded different languages: %+v vs %+v",
			fx.sink.jobs[0].Language,
			fx.sink.jobs[1].Language,
		)
	}
}

func TestSubmitSinkErrorPropagates(t *testing.T) {
	fx := newFixture()
	fx.sink.err = judge_errors.ErrInternal
	_, err := fx.judge.Submit(authedCtx(), validRequest())
	if !errors.Is(err, judge_errors.ErrInternal) {
		t.Errorf("expected sink error to propagate, got %v", err)
	}
}
