package utils

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/we2pos/backend/internal/hdl"
	"go.uber.org/zap"
)

// Payload is the inner shape handlers emit on success. The envelope
// middleware lifts it into the standard response wrapper.
type Payload struct {
	Message string `json:"message,omitempty"`
	Results any    `json:"results"`
}

type SuccessEnvelope struct {
	StatusCode int    `json:"statusCode"`
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	Results    any    `json:"results"`
}

type ErrorDetail struct {
	Field  string `json:"field,omitempty"`
	Reason string `json:"reason"`
	Code   string `json:"code"`
}

type ErrorEnvelope struct {
	StatusCode int         `json:"statusCode"`
	Success    bool        `json:"success"`
	Message    string      `json:"message"`
	Error      ErrorDetail `json:"error"`
}

var codeByStatus = map[int]string{
	http.StatusBadRequest:          "INVALID_REQUEST",
	http.StatusUnauthorized:        "UNAUTHORIZED",
	http.StatusForbidden:           "FORBIDDEN",
	http.StatusNotFound:            "NOT_FOUND",
	http.StatusConflict:            "CONFLICT",
	http.StatusUnprocessableEntity: "UNPROCESSABLE_ENTITY",
	http.StatusTooManyRequests:     "TOO_MANY_REQUESTS",
}

// CodeFromStatus derives the machine-readable error code used when the
// error itself carries none.
func CodeFromStatus(status int) string {
	if code, ok := codeByStatus[status]; ok {
		return code
	}
	return "INTERNAL_SERVER_ERROR"
}

// SuccessResponse writes the handler payload. The envelope middleware
// is responsible for the outer wrapper.
func SuccessResponse(w http.ResponseWriter, statusCode int, message string, results any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(
		&Payload{
			Message: message,
			Results: results,
		},
	); err != nil {
		zap.L().Error("failed to encode response", zap.Error(err))
	}
}

// ErrResponse maps any error onto the standard error envelope. A
// *hdl.Error keeps its status, field and code; everything else becomes
// an opaque 500 whose reason carries the underlying message for
// diagnostics.
func ErrResponse(w http.ResponseWriter, err error) {
	env := buildErrorEnvelope(err)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(env.StatusCode)
	if err := json.NewEncoder(w).Encode(env); err != nil {
		zap.L().Error("failed to encode error response", zap.Error(err))
	}
}

func buildErrorEnvelope(err error) *ErrorEnvelope {
	var herr *hdl.Error
	if errors.As(err, &herr) {
		message := herr.Message
		if message == "" {
			message = http.StatusText(herr.Status)
		}
		if message == "" {
			message = "Request failed"
		}

		code := herr.Code
		if code == "" {
			code = CodeFromStatus(herr.Status)
		}

		return &ErrorEnvelope{
			StatusCode: herr.Status,
			Success:    false,
			Message:    message,
			Error: ErrorDetail{
				Field:  herr.Field,
				Reason: message,
				Code:   code,
			},
		}
	}

	reason := "Unexpected error"
	if err != nil && err.Error() != "" {
		reason = err.Error()
	}

	return &ErrorEnvelope{
		StatusCode: http.StatusInternalServerError,
		Success:    false,
		Message:    "Internal server error",
		Error: ErrorDetail{
			Reason: reason,
			Code:   "INTERNAL_SERVER_ERROR",
		},
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// ParseAndValidate decodes the request body into dst and runs the
// validator tags. On failure it writes a 400 with field-level detail
// and reports false.
func ParseAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		ErrResponse(w, hdl.NewError(http.StatusBadRequest, hdl.ErrDecodeRequest.Error()))
		return false
	}

	if err := validate.Struct(dst); err != nil {
		var verr validator.ValidationErrors
		if !errors.As(err, &verr) || len(verr) == 0 {
			ErrResponse(w, hdl.NewError(http.StatusBadRequest, err.Error()))
			return false
		}

		messages := make([]string, 0, len(verr))
		for _, fe := range verr {
			messages = append(messages, fe.Field()+" failed on the "+fe.Tag()+" rule")
		}

		ErrResponse(
			w,
			hdl.NewError(http.StatusBadRequest, strings.Join(messages, "; ")).
				WithField(verr[0].Field()),
		)
		return false
	}

	return true
}
