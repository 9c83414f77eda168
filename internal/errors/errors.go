// Package errors provides custom error types for the Gemini chat client.
package errors

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// Sentinel errors for common cases
var (
	ErrMissingAPIKey   = errors.New("GOOGLE_API_KEY not found")
	ErrEmptyPrompt     = errors.New("prompt cannot be empty")
	ErrNoContent       = errors.New("no content in response")
	ErrUnsupportedFile = errors.New("unsupported file type")
	ErrFileTooLarge    = errors.New("file too large")
	ErrAuthFailed      = errors.New("authentication failed")
)

// ErrorCode classifies upstream failures for display
type ErrorCode int

const (
	ErrCodeUnknown ErrorCode = iota
	ErrCodeAuth
	ErrCodeUsageLimitExceeded
	ErrCodeTimeout
	ErrCodeBlocked
	ErrCodeNetwork
	ErrCodeUnsupportedFile
	ErrCodeExtract
)

// String returns a short name for the code
func (c ErrorCode) String() string {
	switch c {
	case ErrCodeAuth:
		return "auth"
	case ErrCodeUsageLimitExceeded:
		return "usage_limit_exceeded"
	case ErrCodeTimeout:
		return "timeout"
	case ErrCodeBlocked:
		return "blocked"
	case ErrCodeNetwork:
		return "network"
	case ErrCodeUnsupportedFile:
		return "unsupported_file"
	case ErrCodeExtract:
		return "extract"
	default:
		return "unknown"
	}
}

// UnsupportedFileError is returned when an upload has an extension no parser handles
type UnsupportedFileError struct {
	Name string
	Ext  string
}

func (e *UnsupportedFileError) Error() string {
	if e.Ext == "" {
		return fmt.Sprintf("unsupported file type: %s has no extension", e.Name)
	}
	return fmt.Sprintf("unsupported file type %q (%s)", e.Ext, e.Name)
}

// Is matches ErrUnsupportedFile
func (e *UnsupportedFileError) Is(target error) bool {
	if target == ErrUnsupportedFile {
		return true
	}
	_, ok := target.(*UnsupportedFileError)
	return ok
}

// NewUnsupportedFileError creates a new UnsupportedFileError
func NewUnsupportedFileError(name, ext string) *UnsupportedFileError {
	return &UnsupportedFileError{Name: name, Ext: ext}
}

// FileTooLargeError is returned when an upload exceeds the configured cap
type FileTooLargeError struct {
	Name  string
	Size  int64
	Limit int64
}

func (e *FileTooLargeError) Error() string {
	if e.Size > 0 {
		return fmt.Sprintf("file %s is %d bytes, maximum is %d", e.Name, e.Size, e.Limit)
	}
	return fmt.Sprintf("file %s exceeds maximum of %d bytes", e.Name, e.Limit)
}

// Is matches ErrFileTooLarge
func (e *FileTooLargeError) Is(target error) bool {
	return target == ErrFileTooLarge
}

// NewFileTooLargeError creates a new FileTooLargeError
func NewFileTooLargeError(name string, size, limit int64) *FileTooLargeError {
	return &FileTooLargeError{Name: name, Size: size, Limit: limit}
}

// ExtractError wraps a parser failure for a supported file
type ExtractError struct {
	Kind string
	Name string
	Err  error
}

func (e *ExtractError) Error() string {
	return fmt.Sprintf("failed to extract %s content from %s: %v", e.Kind, e.Name, e.Err)
}

func (e *ExtractError) Unwrap() error {
	return e.Err
}

// NewExtractError creates a new ExtractError
func NewExtractError(kind, name string, err error) *ExtractError {
	return &ExtractError{Kind: kind, Name: name, Err: err}
}

// AuthError represents an authentication failure
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	if e.Message == "" {
		return "authentication failed: API key may be invalid"
	}
	return fmt.Sprintf("authentication failed: %s", e.Message)
}

// Is allows comparison with sentinel errors
func (e *AuthError) Is(target error) bool {
	if target == ErrAuthFailed {
		return true
	}
	_, ok := target.(*AuthError)
	return ok
}

// NewAuthError creates a new AuthError
func NewAuthError(message string) *AuthError {
	return &AuthError{Message: message}
}

// APIError represents an API request failure
type APIError struct {
	StatusCode int
	Message    string
	Endpoint   string
	Body       string
}

func (e *APIError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("API error [%d] at %s: %s", e.StatusCode, e.Endpoint, e.Message)
	}
	return fmt.Sprintf("API error at %s: %s", e.Endpoint, e.Message)
}

// NewAPIError creates a new APIError
func NewAPIError(statusCode int, endpoint, message string) *APIError {
	return &APIError{
		StatusCode: statusCode,
		Endpoint:   endpoint,
		Message:    message,
	}
}

// TimeoutError represents a request timeout
type TimeoutError struct {
	Message string
}

func (e *TimeoutError) Error() string {
	if e.Message == "" {
		return "request timed out"
	}
	return fmt.Sprintf("request timed out: %s", e.Message)
}

// NewTimeoutError creates a new TimeoutError
func NewTimeoutError(message string) *TimeoutError {
	return &TimeoutError{Message: message}
}

// UsageLimitError represents a quota or rate limit
type UsageLimitError struct {
	Message string
}

func (e *UsageLimitError) Error() string {
	if e.Message == "" {
		return "usage limit exceeded"
	}
	return fmt.Sprintf("usage limit exceeded: %s", e.Message)
}

// NewUsageLimitError creates a new UsageLimitError
func NewUsageLimitError(message string) *UsageLimitError {
	return &UsageLimitError{Message: message}
}

// BlockedError represents a response or prompt blocked by safety filters
type BlockedError struct {
	Message string
}

func (e *BlockedError) Error() string {
	if e.Message == "" {
		return "content blocked"
	}
	return fmt.Sprintf("content blocked: %s", e.Message)
}

// NewBlockedError creates a new BlockedError
func NewBlockedError(message string) *BlockedError {
	return &BlockedError{Message: message}
}

// NetworkError represents a transport failure before any response arrived
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// NewNetworkError creates a new NetworkError
func NewNetworkError(err error) *NetworkError {
	return &NetworkError{Err: err}
}

// GetHTTPStatus returns the HTTP status carried by err, or 0
func GetHTTPStatus(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// GetEndpoint returns the endpoint carried by err, or ""
func GetEndpoint(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Endpoint
	}
	return ""
}

// GetErrorCode maps err onto an ErrorCode
func GetErrorCode(err error) ErrorCode {
	switch {
	case err == nil:
		return ErrCodeUnknown
	case IsUnsupportedFile(err):
		return ErrCodeUnsupportedFile
	case IsExtractError(err):
		return ErrCodeExtract
	case IsAuthError(err):
		return ErrCodeAuth
	case IsRateLimitError(err):
		return ErrCodeUsageLimitExceeded
	case IsTimeoutError(err):
		return ErrCodeTimeout
	case IsBlockedError(err):
		return ErrCodeBlocked
	case IsNetworkError(err):
		return ErrCodeNetwork
	default:
		return ErrCodeUnknown
	}
}

// IsAuthError reports whether err is an authentication failure
func IsAuthError(err error) bool {
	return errors.Is(err, ErrAuthFailed) || errors.Is(err, ErrMissingAPIKey)
}

// IsRateLimitError reports whether err is a usage limit error
func IsRateLimitError(err error) bool {
	var target *UsageLimitError
	return errors.As(err, &target)
}

// IsTimeoutError reports whether err is a timeout
func IsTimeoutError(err error) bool {
	var target *TimeoutError
	if errors.As(err, &target) {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded)
}

// IsBlockedError reports whether err is a safety block
func IsBlockedError(err error) bool {
	var target *BlockedError
	return errors.As(err, &target)
}

// IsNetworkError reports whether err is a transport failure
func IsNetworkError(err error) bool {
	var target *NetworkError
	if errors.As(err, &target) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

// IsUnsupportedFile reports whether err rejects a file type
func IsUnsupportedFile(err error) bool {
	return errors.Is(err, ErrUnsupportedFile)
}

// IsExtractError reports whether err is a parser failure
func IsExtractError(err error) bool {
	var target *ExtractError
	return errors.As(err, &target)
}
