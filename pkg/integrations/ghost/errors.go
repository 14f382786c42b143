package ghostintegration

import (
	"errors"
	"fmt"
	"strings"
)

// Ghost error bodies look like {"errors": [{"message", "context", "type", "code"}]}.
type apiError struct {
	Message string `json:"message"`
	Context string `json:"context"`
	Type    string `json:"type"`
	Code    string `json:"code"`
}

type apiErrorBody struct {
	Errors []apiError `json:"errors"`
}

const (
	apiErrorTypeValidation = "ValidationError"
	apiErrorTypeNotFound   = "NotFoundError"
)

// HaltedError marks a run as failed without disabling the automation. It is
// raised for validation failures, missing resources and unsupported-version
// gating, where retrying could never succeed and the message should reach the
// user verbatim.
type HaltedError struct {
	Message  string
	NotFound bool
}

func (e *HaltedError) Error() string {
	return e.Message
}

// RequestError covers every other non-2xx outcome. Status, method and URL are
// kept for diagnostics; the platform decides whether to retry.
type RequestError struct {
	Message    string
	StatusCode int
	Method     string
	URL        string
}

func (e *RequestError) Error() string {
	return e.Message
}

// RefreshAuthError signals the platform to re-run the credential acquisition
// flow. Only session-authenticated variants of this connector raise it; the
// API-key flow never does.
type RefreshAuthError struct {
	Message string
}

func (e *RefreshAuthError) Error() string {
	return e.Message
}

// classifyAPIError turns the first structured error of a response into a
// typed failure. Validation and not-found errors halt the run with a friendly
// message instead of being retried indefinitely as transient failures.
func classifyAPIError(apiErr apiError, statusCode int, method, url string) error {
	if apiErr.Type == apiErrorTypeValidation || apiErr.Type == apiErrorTypeNotFound {
		errorCode := apiErr.Type
		if apiErr.Code != "" {
			errorCode = fmt.Sprintf("%s: %s", apiErr.Type, apiErr.Code)
		}

		message := apiErr.Context
		if message == "" {
			message = apiErr.Message
		}

		return &HaltedError{
			Message:  fmt.Sprintf("%s (%s)", message, errorCode),
			NotFound: apiErr.Type == apiErrorTypeNotFound,
		}
	}

	return &RequestError{
		Message:    apiErr.Message,
		StatusCode: statusCode,
		Method:     method,
		URL:        url,
	}
}

// isNotFoundHalted reports whether err is a halting failure caused by a
// missing resource. Searches use it to turn "no match" into an empty result
// list instead of a failed run.
func isNotFoundHalted(err error) bool {
	var halted *HaltedError
	if !errors.As(err, &halted) {
		return false
	}

	return halted.NotFound || strings.Contains(halted.Message, "404")
}
