package auth_service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/aust-acm/austoj/internal/judge_errors"
	"github.com/aust-acm/austoj/internal/service"
	"github.com/golang-jwt/jwt/v4"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

const (
	sessionDuration     = time.Hour * 24
	longSessionDuration = time.Hour * 24 * 31
)

// Login verifies the user's credentials and issues a signed session token.
func (a *AuthService) Login(
	ctx context.Context,
	request UserLoginRequest,
) (response UserLoginResponse, token string, expiry time.Time, err error) {
	// validate
	if err = service.ValidateInput(request); err != nil {
		return
	}

	// fetch the user
	user, err := a.UserConfig.FetchUserByUserName(ctx, request.UserName)
	if err != nil {
		return
	}

	// verify the password
	if bcryptErr := bcrypt.CompareHashAndPassword(
		[]byte(user.PasswordHash),
		[]byte(request.Password),
	); bcryptErr != nil {
		if errors.Is(bcryptErr, bcrypt.ErrMismatchedHashAndPassword) {
			log.Warnf("failed login attempt for user %s", request.UserName)
			err = judge_errors.ErrInvalidUserCredentials
			return
		}
		log.Errorf("cannot compare password hash for user %s, %v", request.UserName, bcryptErr)
		err = errors.Join(judge_errors.ErrInternal, bcryptErr)
		return
	}

	// issue the session token
	duration := sessionDuration
	if request.RememberForMonth {
		duration = longSessionDuration
	}
	expiry = time.Now().Add(duration)

	claims := service.UserCredentialClaims{
		UserID:   user.ID,
		UserName: user.UserName,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiry),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	jwtToken := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	token, signErr := jwtToken.SignedString([]byte(os.Getenv(service.KeyJWTSecret)))
	if signErr != nil {
		err = fmt.Errorf(
			"%w, cannot sign session token for user %s, %w",
			judge_errors.ErrInternal,
			request.UserName,
			signErr,
		)
		log.Error(err)
		return
	}

	response = UserLoginResponse{
		UserID:   user.ID,
		UserName: user.UserName,
	}
	return
}
