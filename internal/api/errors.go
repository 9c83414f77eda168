package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/google/generative-ai-go/genai"
	"github.com/tidwall/gjson"
	"google.golang.org/api/googleapi"

	apierrors "github.com/RidhamVashishth/Chatbot-using-Gemini/internal/errors"
)

// endpointGenerate names the upstream call in APIError
const endpointGenerate = "streamGenerateContent"

// ErrorNoticePrefix starts the assistant notice recorded for a failed turn
const ErrorNoticePrefix = "Sorry, an error occurred: "

// ErrorNotice formats the chat-log notice for a failed turn
func ErrorNotice(err error) string {
	return ErrorNoticePrefix + err.Error()
}

// classifyError maps SDK and transport failures onto the error taxonomy.
// Cancellation is returned unchanged.
func classifyError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return apierrors.NewTimeoutError(err.Error())
	}

	var blocked *genai.BlockedError
	if errors.As(err, &blocked) {
		return apierrors.NewBlockedError(blockReason(blocked))
	}

	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return classifyHTTPError(gerr.Code, gerr.Message, gerr.Body)
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return apierrors.NewNetworkError(err)
	}

	return apierrors.NewAPIError(0, endpointGenerate, err.Error())
}

// classifyHTTPError uses the status code and the Google JSON error body
// ({"error":{"code","message","status","details":[{"reason"}]}})
func classifyHTTPError(code int, message, body string) error {
	status := ""
	if gjson.Valid(body) {
		parsed := gjson.Parse(body)
		if m := parsed.Get("error.message").String(); m != "" {
			message = m
		}
		status = parsed.Get("error.status").String()
		parsed.Get("error.details.#.reason").ForEach(func(_, reason gjson.Result) bool {
			if reason.String() == "API_KEY_INVALID" {
				status = "UNAUTHENTICATED"
				return false
			}
			return true
		})
	}
	if message == "" {
		message = http.StatusText(code)
	}

	switch {
	case code == http.StatusUnauthorized || code == http.StatusForbidden ||
		status == "UNAUTHENTICATED" || status == "PERMISSION_DENIED":
		return apierrors.NewAuthError(message)
	case code == http.StatusTooManyRequests || status == "RESOURCE_EXHAUSTED":
		return apierrors.NewUsageLimitError(message)
	case code == http.StatusGatewayTimeout || status == "DEADLINE_EXCEEDED":
		return apierrors.NewTimeoutError(message)
	}

	apiErr := apierrors.NewAPIError(code, endpointGenerate, message)
	apiErr.Body = body
	return apiErr
}

func blockReason(err *genai.BlockedError) string {
	switch {
	case err.PromptFeedback != nil:
		return fmt.Sprintf("prompt blocked (%v)", err.PromptFeedback.BlockReason)
	case err.Candidate != nil:
		return fmt.Sprintf("response blocked (%v)", err.Candidate.FinishReason)
	default:
		return ""
	}
}
