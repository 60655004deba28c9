package usecase

import "errors"

const (
	CodeValidation    = "VALIDATION_ERROR"
	CodePersistFailed = "PERSIST_FAILED"
	CodeNotifyFailed  = "NOTIFY_FAILED"
)

// DomainError is recoverable by the visitor: nothing was sent anywhere.
type DomainError struct {
	Code        string
	Message     string
	FieldErrors map[string]string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	var de *DomainError
	return errors.As(err, &de)
}

// TechnicalError reports a failed collaborator call. The draft is still valid
// and may be resubmitted as is.
type TechnicalError struct {
	Code    string
	Message string
	Err     error
}

func (e *TechnicalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *TechnicalError) Unwrap() error {
	return e.Err
}

func IsTechnicalError(err error) bool {
	var te *TechnicalError
	return errors.As(err, &te)
}
