package rest

import (
	"errors"
	"fmt"
	"net/http"
)

// toxicContentMessage is the exact rejection message the moderation
// layer of the backend sends. Matching on it is how the client tells a
// content-policy rejection apart from any other failure.
const toxicContentMessage = "The comment contains toxic content."

// ErrToxicContent indicates the backend rejected the content as
// toxic/inappropriate.
var ErrToxicContent = errors.New("comment rejected as toxic content")

// ApiError carries a non-success envelope back to the caller.
type ApiError struct {
	Status  int
	Code    int
	Message string
}

func (e *ApiError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Code, e.Message)
}

// IsContentPolicyViolation reports whether err is a moderation
// rejection, so callers can show the dedicated message.
func IsContentPolicyViolation(err error) bool {
	return errors.Is(err, ErrToxicContent)
}

func newApiError(status int, env envelope) error {
	if env.Message == toxicContentMessage {
		return ErrToxicContent
	}
	msg := env.Message
	if len(msg) == 0 {
		msg = http.StatusText(status)
	}
	code := env.Code
	if code == 0 {
		code = status
	}
	return &ApiError{Status: status, Code: code, Message: msg}
}
