package user_service

import (
	"context"
	"errors"
	"fmt"

	"github.com/aust-acm/austoj/internal/database"
	"github.com/aust-acm/austoj/internal/judge_errors"
	"github.com/aust-acm/austoj/internal/service"
	"github.com/jackc/pgx/v5"
	log "github.com/sirupsen/logrus"
)

func (u *UserService) FetchUserByUserName(
	ctx context.Context,
	userName string,
) (user database.User, err error) {
	user, dbErr := u.DB.GetUserByUserName(ctx, userName)
	if dbErr != nil {
		if errors.Is(dbErr, pgx.ErrNoRows) {
			err = fmt.Errorf("%w, no user exist with that username", judge_errors.ErrInvalidUserCredentials)
			return
		}
		log.Errorf("failed to get user by username. %v", dbErr)
		err = errors.Join(judge_errors.ErrInternal, dbErr)
		return
	}
	return
}

// GetMe returns the profile of the currently logged in user.
func (u *UserService) GetMe(ctx context.Context) (UserProfile, error) {
	user, err := u.FetchUserFromClaims(ctx)
	if err != nil {
		return UserProfile{}, err
	}
	return UserProfile{
		UserID:   user.ID,
		UserName: user.UserName,
		Email:    user.Email,
	}, nil
}

// FetchUserFromClaims resolves the current user from the session claims
// carried by the request context.
func (u *UserService) FetchUserFromClaims(ctx context.Context) (user database.User, err error) {
	claims, err := service.GetClaimsFromContext(ctx)
	if err != nil {
		return
	}

	user, dbErr := u.DB.GetUserByID(ctx, claims.UserID)
	if dbErr != nil {
		if errors.Is(dbErr, pgx.ErrNoRows) {
			// the session outlived the account
			log.Warnf("claims carry unknown user id %v", claims.UserID)
			err = judge_errors.ErrNotAuthenticated
			return
		}
		log.Errorf("failed to get user by id. %v", dbErr)
		err = errors.Join(judge_errors.ErrInternal, dbErr)
		return
	}
	return
}
