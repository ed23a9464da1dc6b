package service

import (
	"context"
	"errors"

	"connectrpc.com/connect"

	"github.com/r1zemon/patungan/internal/allocation"
	"github.com/r1zemon/patungan/internal/calculator"
	"github.com/r1zemon/patungan/internal/models"
	"github.com/r1zemon/patungan/internal/receipt"
	"github.com/r1zemon/patungan/internal/storage"
)

// toConnectError maps domain errors to Connect codes. Errors that are
// already Connect errors pass through unchanged.
func toConnectError(err error) error {
	if err == nil {
		return nil
	}
	var connectErr *connect.Error
	if errors.As(err, &connectErr) {
		return err
	}
	return connect.NewError(codeFor(err), err)
}

func codeFor(err error) connect.Code {
	var (
		duplicate *allocation.DuplicateNameError
		invalid   *allocation.InvalidItemError
		over      *allocation.OverAssignmentError
	)
	switch {
	case errors.Is(err, context.Canceled):
		return connect.CodeCanceled
	case errors.Is(err, context.DeadlineExceeded):
		return connect.CodeDeadlineExceeded
	case errors.Is(err, storage.ErrNotFound),
		errors.Is(err, allocation.ErrParticipantNotFound),
		errors.Is(err, allocation.ErrItemNotFound):
		return connect.CodeNotFound
	case errors.As(err, &duplicate):
		return connect.CodeAlreadyExists
	case errors.As(err, &invalid),
		errors.As(err, &over),
		errors.Is(err, allocation.ErrBlankName),
		errors.Is(err, allocation.ErrNegativeCount),
		errors.Is(err, models.ErrInvalidPolicy),
		errors.Is(err, receipt.ErrEmptyImage):
		return connect.CodeInvalidArgument
	case errors.Is(err, calculator.ErrPayerRequired),
		errors.Is(err, calculator.ErrNothingToSummarize),
		errors.Is(err, receipt.ErrExtractorUnavailable):
		return connect.CodeFailedPrecondition
	case errors.Is(err, receipt.ErrExtractionFailed):
		return connect.CodeUnavailable
	}
	return connect.CodeInternal
}
