package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found for the
// calling account. Foreign-owned records surface the same error so that
// existence of other accounts' data is never leaked.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates a missing or invalid authentication.
var ErrUnauthorized = errors.New("unauthorized")
