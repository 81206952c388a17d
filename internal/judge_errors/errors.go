package judge_errors

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	log "github.com/sirupsen/logrus"
)

const (
	CodeUniqueConstraint     = "23505"
	CodeForeignKeyConstraint = "23503"
)

var (
	ErrInternal               = errors.New("internal service error. please try again later")
	ErrInvalidRequest         = errors.New("invalid request")
	ErrNotAuthenticated       = errors.New("user not logged in")
	ErrInvalidUserCredentials = errors.New("invalid username or password")
	ErrNotFound               = errors.New("entity not found")
	ErrNoPrivilege            = errors.New("no privilege to judge this problem")
	ErrContestClosed          = errors.New("contest is not open for judging")
	ErrUnknownLanguage        = errors.New("the selected language does not exist")
	ErrUnAuthorized           = errors.New("user not allowed to perform this action")
)

func HandleDBErrors(
	err error,
	errMsgs map[string]map[string]string,
	contextMessage string,
) error {
	// assume its an internal error first
	err = fmt.Errorf(
		"%w, %s, %w",
		ErrInternal,
		contextMessage,
		err,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		log.Error(fmt.Sprintf("%s, %v", contextMessage, ErrNotFound))
		return ErrNotFound
	}

	// check if its a pg error
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		log.Error(err)
		return err
	}

	if errMsgs == nil {
		log.Warnf("got null errMsgs")
		log.Error(err)
		return err
	}

	// check if its a foriegn key error
	if pgErr.Code == CodeForeignKeyConstraint {
		msgForeignKey, ok := errMsgs[CodeForeignKeyConstraint]
		if !ok {
			log.Warnf("no msg map found for foreign key constraint.")
			return fmt.Errorf(
				"%w, %s",
				ErrInvalidRequest,
				pgErr.Detail,
			)
		}
		return HandleForeignKeyError(pgErr, msgForeignKey)
	}

	// check if its a unique key error
	if pgErr.Code == CodeUniqueConstraint {
		msgUniqueConstraint, ok := errMsgs[CodeUniqueConstraint]
		if !ok {
			log.Warnf("no msg map found for unique key constraint.")
			return fmt.Errorf(
				"%w, %s",
				ErrInvalidRequest,
				pgErr.Detail,
			)
		}
		return HandleUniqueKeyError(pgErr, msgUniqueConstraint)
	}

	// unknown error
	log.Error(err)
	return err
}

func HandleForeignKeyError(pgErr *pgconn.PgError, msgForeignKey map[string]string) error {
	msg, ok := msgForeignKey[pgErr.ConstraintName]
	if !ok {
		log.Warnf(
			"unknown foreign key violation, %s",
			pgErr.ConstraintName,
		)
		msg = pgErr.Detail
	}
	err := fmt.Errorf(
		"%w, %s",
		ErrInvalidRequest,
		msg,
	)
	log.Error(err)
	return err
}

func HandleUniqueKeyError(pgErr *pgconn.PgError, msgUniqueConstraint map[string]string) error {
	msg, ok := msgUniqueConstraint[pgErr.ConstraintName]
	if !ok {
		log.Warnf(
			"unknown unique key violation, %s",
			pgErr.ConstraintName,
		)
		msg = pgErr.Detail
	}
	err := fmt.Errorf(
		"%w, %s",
		ErrInvalidRequest,
		msg,
	)
	log.Error(err)
	return err
}
