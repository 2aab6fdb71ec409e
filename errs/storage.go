package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Object Storage & Auth Specific Errors
var (
	ErrUploadFailed       = errors.New("upload failed")
	ErrBucketUnavailable  = errors.New("storage bucket unavailable")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("token invalid")
)

// NewUploadError wraps an object-storage upload failure. Upload failures are
// always hard errors: a transient placeholder URL must never reach a persisted
// record.
func NewUploadError(objectName string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadGateway,
		err:        ErrUploadFailed,
		Details:    fmt.Sprintf("Failed to store object %s", objectName),
		Cause:      cause,
		Field:      "file",
	}
}

func NewBucketUnavailableError(bucket string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusServiceUnavailable,
		err:        ErrBucketUnavailable,
		Details:    fmt.Sprintf("Bucket %s is not reachable", bucket),
		Cause:      cause,
	}
}

func NewInvalidCredentialsError() *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusUnauthorized,
		err:        ErrInvalidCredentials,
		Details:    "Email or password is incorrect",
	}
}

func NewTokenError(cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusUnauthorized,
		err:        ErrTokenInvalid,
		Cause:      cause,
	}
}

func IsUploadError(err error) bool {
	return errors.Is(err, ErrUploadFailed)
}

func IsInvalidCredentialsError(err error) bool {
	return errors.Is(err, ErrInvalidCredentials)
}
