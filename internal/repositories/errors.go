package repositories

import (
	"fmt"
	"github.com/maxaizer/dreamjob-store/internal/logger"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var (
	ErrStorage       = errors.New("storage failure")
	ErrInvalidEntity = errors.New("invalid entity")
)

// StorageError reports a failure of the underlying database. It matches
// ErrStorage and unwraps to the driver error.
type StorageError struct {
	Entity    string
	Operation string
	Err       error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s operation on %s failed: %v", e.Operation, e.Entity, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func (e *StorageError) Is(target error) bool {
	return target == ErrStorage
}

func storageFault(entity, operation string, err error) error {
	storageErr := &StorageError{Entity: entity, Operation: operation, Err: err}
	log.WithFields(log.Fields{
		logger.ErrorTypeField: logger.ErrorTypeDb,
		logger.EntityField:    entity,
	}).Error(storageErr)
	return storageErr
}

func invalidEntity(entity string, err error) error {
	return errors.Wrapf(ErrInvalidEntity, "%s: %v", entity, err)
}
