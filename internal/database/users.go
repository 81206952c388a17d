package database

import (
	"context"

	"github.com/google/uuid"
)

const getUserByUserName = `
SELECT id, user_name, email, password_hash, created_at
FROM users
WHERE user_name = $1
`

func (q *Queries) GetUserByUserName(ctx context.Context, userName string) (User, error) {
	row := q.db.QueryRow(ctx, getUserByUserName, userName)
	var u User
	err := row.Scan(
		&u.ID,
		&u.UserName,
		&u.Email,
		&u.PasswordHash,
		&u.CreatedAt,
	)
	return u, err
}

const getUserByID = `
SELECT id, user_name, email, password_hash, created_at
FROM users
WHERE id = $1
`

func (q *Queries) GetUserByID(ctx context.Context, id uuid.UUID) (User, error) {
	row := q.db.QueryRow(ctx, getUserByID, id)
	var u User
	err := row.Scan(
		&u.ID,
		&u.UserName,
		&u.Email,
		&u.PasswordHash,
		&u.CreatedAt,
	)
	return u, err
}
