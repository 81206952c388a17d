package contest_service

import (
	"context"
	"time"

	"github.com/aust-acm/austoj/internal/database"
	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	// contest details are immutable while a contest runs, only a handful
	// are live at a time, so a small short-lived cache is enough
	contestCacheSize = 256
	contestCacheTTL  = time.Second * 30
)

// ContestStore is the slice of the query layer the contest service needs.
type ContestStore interface {
	GetContestByID(ctx context.Context, id uuid.UUID) (database.Contest, error)
	IsProblemInContest(ctx context.Context, arg database.IsProblemInContestParams) (bool, error)
	HasUserVisitedContest(ctx context.Context, arg database.HasUserVisitedContestParams) (bool, error)
}

type ContestService struct {
	DB ContestStore

	cache *expirable.LRU[uuid.UUID, Contest]
}

type Contest struct {
	ID          uuid.UUID `json:"contest_id"`
	Title       string    `json:"title"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	IsPublished bool      `json:"is_published"`
}

// Start prepares the contest detail cache. Must be called before the
// service handles requests.
func (c *ContestService) Start() {
	c.cache = expirable.NewLRU[uuid.UUID, Contest](contestCacheSize, nil, contestCacheTTL)
}
