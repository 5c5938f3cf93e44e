package db

import (
	"errors"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
)

// Error code references: https://www.mongodb.com/docs/manual/reference/error-codes/
const (
	writeConflictCode      = 112
	transactionAbortedCode = 251
)

// DuplicateKeyError is an error type for duplicate key errors
type DuplicateKeyError struct {
	Key     string
	Message string
}

func (e *DuplicateKeyError) Error() string {
	return e.Message
}

func IsDuplicateKeyError(err error) bool {
	var dupErr *DuplicateKeyError
	return errors.As(err, &dupErr)
}

// Not found Error
type NotFoundError struct {
	Key     string
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func IsNotFoundError(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

func IsWriteConflictError(err error) bool {
	return hasCommandErrorCode(err, writeConflictCode)
}

func IsTransactionAbortedError(err error) bool {
	return hasCommandErrorCode(err, transactionAbortedCode)
}

func hasCommandErrorCode(err error, code int32) bool {
	if err == nil {
		return false
	}

	var cmdErr *mongo.CommandError
	if errors.As(err, &cmdErr) && cmdErr != nil {
		log.Debug().Int32("code", cmdErr.Code).Msg("checking mongo command error code")
		return cmdErr.Code == code
	}

	return false
}

// mapDuplicateKeyError converts a mongo duplicate key write error into a
// DuplicateKeyError and returns any other error unchanged.
func mapDuplicateKeyError(err error, key, message string) error {
	var writeErr mongo.WriteException
	if errors.As(err, &writeErr) {
		for _, e := range writeErr.WriteErrors {
			if mongo.IsDuplicateKeyError(e) {
				return &DuplicateKeyError{
					Key:     key,
					Message: message,
				}
			}
		}
	}
	if mongo.IsDuplicateKeyError(err) {
		return &DuplicateKeyError{Key: key, Message: message}
	}
	return err
}
