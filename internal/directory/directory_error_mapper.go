package directory

import (
	"errors"

	directoryerrors "go-hrms/internal/directory/errors"
	"go-hrms/internal/shared/dberr"

	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return directoryerrors.ErrUserNotFound
	}
	if dberr.IsUniqueViolationOn(err, "email") {
		return directoryerrors.ErrEmailAlreadyExists
	}

	return err
}
