package dao

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrHuntNotFound         = errors.New("hunt not found")
	ErrParticipantNotFound  = errors.New("participant not found")
	ErrDuplicateParticipant = errors.New("participant already exists for this hunt")
	ErrConflict             = errors.New("transaction lost a concurrent update")
)

// classify turns PostgreSQL failures the callers can act on into package
// errors and passes everything else through.
func classify(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return ErrDuplicateParticipant
	case pgerrcode.SerializationFailure, pgerrcode.DeadlockDetected, pgerrcode.LockNotAvailable:
		return ErrConflict
	}

	return err
}
