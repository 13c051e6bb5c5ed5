package service

import (
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	apperrors "github.com/hallkeeper/hall-service/pkg/util/errorutil"
)

const (
	msgUserNotFound      = "User not found."
	msgComplaintNotFound = "Complaint not found."
)

// notFoundOr maps a missing row to a NotFound error with msg.
func notFoundOr(err error, msg string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NewNotFound(msg)
	}
	return err
}

// checkID rejects ids that can never resolve, so they surface as NotFound
// instead of a store-side cast failure.
func checkID(id, msg string) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperrors.NewNotFound(msg)
	}
	return nil
}
