package judge_service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/aust-acm/austoj/internal/database"
	"github.com/aust-acm/austoj/internal/judge_errors"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	// used for conversion of db error codes to user understandable messages
	errMsgs = map[string]map[string]string{
		judge_errors.CodeForeignKeyConstraint: {
			"fk_solutions_problem_id": "the submitted problem does not exist",
			"fk_solutions_contest_id": "the submitted contest does not exist",
			"fk_solutions_user_id":    "the submitting user does not exist",
		},
	}
)

const notifyQueueBuffer = 256

// SolutionInserter is the slice of the query layer the job sink needs.
type SolutionInserter interface {
	InsertSolution(ctx context.Context, arg database.InsertSolutionParams) (database.Solution, error)
}

// DBJobSink creates judging jobs by inserting a queued solution row and
// nudging the judger daemon afterwards. The nudge is best effort: the
// daemon also polls the queue, so a lost notification only delays the
// verdict, it never loses the job.
type DBJobSink struct {
	DB        SolutionInserter
	JudgerURL string

	notify chan uuid.UUID
	client *http.Client
	logger *logrus.Entry
}

// Start launches the notifier worker. Must be called before CreateJob.
func (s *DBJobSink) Start() {
	if s.DB == nil {
		panic("job sink expects a non-nil solution inserter")
	}
	s.notify = make(chan uuid.UUID, notifyQueueBuffer)
	s.client = &http.Client{Timeout: time.Second * 10}
	s.logger = logrus.WithField("from", "job_sink")
	go s.run()
	s.logger.Info("initialized job sink")
}

func (s *DBJobSink) CreateJob(ctx context.Context, job Job) (uuid.UUID, error) {
	solution, err := s.DB.InsertSolution(ctx, database.InsertSolutionParams{
		UserID:     job.UserID,
		ProblemID:  job.Problem.ID,
		ContestID:  job.ContestID,
		Language:   job.Language.Name,
		SourceCode: job.SourceCode,
		Status:     StatusQueued,
	})
	if err != nil {
		return uuid.Nil, judge_errors.HandleDBErrors(
			err,
			errMsgs,
			fmt.Sprintf(
				"cannot insert solution to problem %v of user %v",
				job.Problem.ID,
				job.UserID,
			),
		)
	}

	select {
	case s.notify <- solution.ID:
	default:
		s.logger.Warnf(
			"notify queue full, judger will pick up solution %v by polling",
			solution.ID,
		)
	}

	return solution.ID, nil
}

func (s *DBJobSink) run() {
	for solutionID := range s.notify {
		if s.JudgerURL == "" {
			continue
		}
		body, err := json.Marshal(map[string]uuid.UUID{"solution_id": solutionID})
		if err != nil {
			s.logger.Errorf("cannot marshal notification for solution %v, %v", solutionID, err)
			continue
		}
		resp, err := s.client.Post(s.JudgerURL, "application/json", bytes.NewReader(body))
		if err != nil {
			s.logger.Warnf("cannot notify judger about solution %v, %v", solutionID, err)
			continue
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			s.logger.Warnf(
				"judger responded with %v for solution %v",
				resp.StatusCode,
				solutionID,
			)
		}
	}
}
