package utils

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/we2pos/backend/internal/hdl"
)

func decodeErr(t *testing.T, r *httptest.ResponseRecorder) *ErrorEnvelope {
	res := &ErrorEnvelope{}
	require.NoError(t, json.NewDecoder(r.Result().Body).Decode(res))
	return res
}

func TestErrResponse_StatusTextFallback(t *testing.T) {
	w := httptest.NewRecorder()
	ErrResponse(w, hdl.NewError(http.StatusNotFound, ""))

	assert.Equal(t, http.StatusNotFound, w.Code)

	res := decodeErr(t, w)
	assert.Equal(
		t, &ErrorEnvelope{
			StatusCode: 404,
			Success:    false,
			Message:    "Not Found",
			Error: ErrorDetail{
				Reason: "Not Found",
				Code:   "NOT_FOUND",
			},
		}, res,
	)
}

func TestErrResponse_StructuredError(t *testing.T) {
	w := httptest.NewRecorder()
	ErrResponse(
		w,
		hdl.NewError(http.StatusConflict, "Email already exists").WithField("email"),
	)

	res := decodeErr(t, w)
	assert.Equal(t, 409, res.StatusCode)
	assert.False(t, res.Success)
	assert.Equal(t, "Email already exists", res.Message)
	assert.Equal(t, "email", res.Error.Field)
	assert.Equal(t, "Email already exists", res.Error.Reason)
	assert.Equal(t, "CONFLICT", res.Error.Code)
}

func TestErrResponse_ExplicitCodeWins(t *testing.T) {
	w := httptest.NewRecorder()
	ErrResponse(
		w,
		hdl.NewError(http.StatusBadRequest, "bad birthday").WithCode("INVALID_DATE"),
	)

	res := decodeErr(t, w)
	assert.Equal(t, "INVALID_DATE", res.Error.Code)
}

func TestErrResponse_UnexpectedError(t *testing.T) {
	w := httptest.NewRecorder()
	ErrResponse(w, errors.New("db connection lost"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	res := decodeErr(t, w)
	assert.Equal(t, "Internal server error", res.Message)
	assert.Equal(t, "db connection lost", res.Error.Reason)
	assert.Equal(t, "INTERNAL_SERVER_ERROR", res.Error.Code)
	assert.Empty(t, res.Error.Field)
}

func TestErrResponse_NilError(t *testing.T) {
	w := httptest.NewRecorder()
	ErrResponse(w, nil)

	res := decodeErr(t, w)
	assert.Equal(t, "Internal server error", res.Message)
	assert.Equal(t, "Unexpected error", res.Error.Reason)
}

func TestCodeFromStatus(t *testing.T) {
	tests := []struct {
		status   int
		expected string
	}{
		{http.StatusBadRequest, "INVALID_REQUEST"},
		{http.StatusUnauthorized, "UNAUTHORIZED"},
		{http.StatusForbidden, "FORBIDDEN"},
		{http.StatusNotFound, "NOT_FOUND"},
		{http.StatusConflict, "CONFLICT"},
		{http.StatusUnprocessableEntity, "UNPROCESSABLE_ENTITY"},
		{http.StatusTooManyRequests, "TOO_MANY_REQUESTS"},
		{http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
		{http.StatusTeapot, "INTERNAL_SERVER_ERROR"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, CodeFromStatus(tt.status))
	}
}

func TestParseAndValidate(t *testing.T) {
	type payload struct {
		Email string `json:"email" validate:"required,email"`
		Name  string `json:"name"  validate:"required"`
	}

	tests := []struct {
		name    string
		body    string
		ok      bool
		message string
		field   string
	}{
		{
			name: "Valid",
			body: `{"email":"a@b.com","name":"John"}`,
			ok:   true,
		},
		{
			name:    "Malformed",
			body:    `{"email":0}`,
			ok:      false,
			message: hdl.ErrDecodeRequest.Error(),
		},
		{
			name:    "MissingEmail",
			body:    `{"name":"John"}`,
			ok:      false,
			message: "Email failed on the required rule",
			field:   "Email",
		},
		{
			name:    "EmptyBodyFields",
			body:    `{}`,
			ok:      false,
			message: "Email failed on the required rule; Name failed on the required rule",
			field:   "Email",
		},
	}

	for _, tt := range tests {
		t.Run(
			tt.name, func(t *testing.T) {
				w := httptest.NewRecorder()
				r := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(tt.body))

				ok := ParseAndValidate(w, r, &payload{})
				assert.Equal(t, tt.ok, ok)

				if !tt.ok {
					assert.Equal(t, http.StatusBadRequest, w.Code)
					res := decodeErr(t, w)
					assert.Equal(t, tt.message, res.Message)
					assert.Equal(t, "INVALID_REQUEST", res.Error.Code)
					assert.Equal(t, tt.field, res.Error.Field)
				}
			},
		)
	}
}
