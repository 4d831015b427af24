package errorvalues

import "errors"

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong name or password")
	ErrInvalidToken     = errors.New("invalid token")
	ErrValidation       = errors.New("request validation failed")

	ErrTrainingNotFound   = errors.New("training doesn't exist")
	ErrWrongOwner         = errors.New("record has different owner")
	ErrLogNotFound        = errors.New("no daily log for given date")
	ErrFutureDate         = errors.New("date in the future is not allowed")
	ErrExtractUnavailable = errors.New("extractor service unavailable")
)
