package service

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/aust-acm/austoj/internal/judge_errors"
	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"
)

type contextKey string

const (
	KeyJWTSecret                    = "JWT_SECRET"
	KeyCtxUserCredClaims contextKey = "UserCredClaims"
)

var (
	validate *validator.Validate
)

func InitializeServices() {
	validate = initValidator() // used for validating struct fields
}

func initValidator() *validator.Validate {
	log.Info("initializing validator")
	validate := validator.New(validator.WithRequiredStructEnabled())

	// This makes error.Field() return "page_size" instead of "PageSize"
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return validate
}

// GetClaimsFromContext resolves the current user's session claims. A request
// that carries no claims is simply not logged in.
func GetClaimsFromContext(
	ctx context.Context,
) (claims UserCredentialClaims, err error) {
	claimsValue := ctx.Value(KeyCtxUserCredClaims)
	if claimsValue == nil {
		err = judge_errors.ErrNotAuthenticated
		return
	}
	claims, ok := claimsValue.(UserCredentialClaims)
	if !ok {
		err = fmt.Errorf(
			"%w, unable to parse claims to service.UserCredentialClaims, type of claims found is %T",
			judge_errors.ErrInternal,
			claimsValue,
		)
		log.Error(err)
	}
	return
}
