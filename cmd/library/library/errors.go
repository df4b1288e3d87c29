package library

import (
	"errors"
)

// ErrKind separates lookups that found nothing from requests that broke a rule.
type ErrKind int

const (
	KindNotFound ErrKind = iota + 1
	KindInvalidEntry
	KindRuleViolation
	KindRepository
)

type ErrResponse struct {
	Code    int     `json:"error_code"`
	Message string  `json:"error_message"`
	Kind    ErrKind `json:"-"`
}

func (e ErrResponse) Error() string {
	return e.Message
}

var ErrResponseEntryBlankFields = ErrResponse{100, "id and name must be filled.", KindInvalidEntry}
var ErrResponseBookNotFound = ErrResponse{101, "book not found", KindNotFound}
var ErrResponseMemberNotFound = ErrResponse{102, "member not found", KindNotFound}
var ErrResponseBorrowNotFound = ErrResponse{103, "borrow not found", KindNotFound}
var ErrResponseInvalidCopies = ErrResponse{104, "copies must be a positive integer.", KindInvalidEntry}
var ErrResponseInvalidAge = ErrResponse{105, "age must not be negative.", KindInvalidEntry}
var ErrResponseBookAlreadyExists = ErrResponse{106, "there is already a book with this id.", KindRuleViolation}
var ErrResponseMemberAlreadyExists = ErrResponse{107, "there is already a member with this id.", KindRuleViolation}
var ErrResponseCopiesBelowActiveBorrows = ErrResponse{108, "copies can not be lower than the active borrows of the book.", KindRuleViolation}
var ErrResponseBorrowLimitReached = ErrResponse{110, "member already holds the maximum number of active borrows", KindRuleViolation}
var ErrResponseBookUnavailable = ErrResponse{111, "book has no available copies", KindRuleViolation}
var ErrResponseBorrowNotActive = ErrResponse{112, "borrow is not active", KindRuleViolation}
var ErrResponseReserveNotNeeded = ErrResponse{113, "book has available copies, borrow it instead", KindRuleViolation}
var ErrResponseFromRepository = ErrResponse{120, "repository error: ", KindRepository}

func kindOf(err error) ErrKind {
	var e ErrResponse
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

func IsNotFound(err error) bool {
	return kindOf(err) == KindNotFound
}

func IsRuleViolation(err error) bool {
	return kindOf(err) == KindRuleViolation
}

func IsInvalidEntry(err error) bool {
	return kindOf(err) == KindInvalidEntry
}

/* Wraps an unexpected repository error, keeping the cause message like the rest of the catalogue. */
func repositoryError(err error) ErrResponse {
	return ErrResponse{
		Code:    ErrResponseFromRepository.Code,
		Message: ErrResponseFromRepository.Message + err.Error(),
		Kind:    KindRepository,
	}
}
