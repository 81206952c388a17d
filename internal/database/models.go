package database

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	UserName     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

type Problem struct {
	ID            int32
	Title         string
	Type          string
	TimeLimitMs   int32
	MemoryLimitKb int32
	CreatedAt     time.Time
}

type Contest struct {
	ID          uuid.UUID
	Title       string
	StartTime   time.Time
	EndTime     time.Time
	IsPublished bool
	CreatedAt   time.Time
}

type Solution struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	ProblemID   int32
	ContestID   *uuid.UUID
	Language    string
	SourceCode  string
	Status      string
	RuntimeMs   *int32
	MemoryKb    *int32
	SubmittedAt time.Time
	UpdatedAt   time.Time
}
