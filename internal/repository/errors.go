package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Sentinels for errors.Is. The typed errors below match them.
var (
	ErrNotFound   = errors.New("not found")
	ErrDuplicate  = errors.New("duplicate")
	ErrUnexpected = errors.New("unexpected error")
)

// NotFoundError reports that no record with ID exists.
type NotFoundError struct {
	ID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("not found, id is %d", e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// DuplicateError reports a uniqueness conflict. ID is the existing record.
type DuplicateError struct {
	ID int
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("duplicate data, id is %d", e.ID)
}

func (e *DuplicateError) Is(target error) bool { return target == ErrDuplicate }

// UnexpectedError carries any other store failure.
type UnexpectedError struct {
	Message string
}

func (e *UnexpectedError) Error() string {
	return fmt.Sprintf("unexpected error: [%s]", e.Message)
}

func (e *UnexpectedError) Is(target error) bool { return target == ErrUnexpected }

func unexpected(err error) error {
	return &UnexpectedError{Message: err.Error()}
}

const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// classify maps a gorm/pgx error for the record id onto the repository taxonomy.
func classify(err error, id int) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return &NotFoundError{ID: id}
	default:
		return unexpected(err)
	}
}
