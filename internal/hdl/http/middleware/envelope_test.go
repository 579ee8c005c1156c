package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/we2pos/backend/internal/hdl/http/utils"
)

func serve(t *testing.T, handler http.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	Envelope(handler).ServeHTTP(w, r)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	res := map[string]any{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	return res
}

func TestEnvelope_WrapsMessageAndResults(t *testing.T) {
	w := serve(
		t, func(w http.ResponseWriter, r *http.Request) {
			utils.SuccessResponse(
				w, http.StatusCreated, "Signup successfully", map[string]any{"id": 7},
			)
		},
	)

	assert.Equal(t, http.StatusCreated, w.Code)

	res := decodeEnvelope(t, w)
	assert.Equal(t, float64(201), res["statusCode"])
	assert.Equal(t, true, res["success"])
	assert.Equal(t, "Signup successfully", res["message"])
	assert.Equal(t, map[string]any{"id": float64(7)}, res["results"])
}

func TestEnvelope_WholePayloadBecomesResults(t *testing.T) {
	w := serve(
		t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"id":1,"email":"a@b.com"}`))
		},
	)

	res := decodeEnvelope(t, w)
	assert.Equal(t, "OK", res["message"])
	assert.Equal(
		t,
		map[string]any{"id": float64(1), "email": "a@b.com"},
		res["results"],
	)
}

func TestEnvelope_MessageFallsBackToStatusText(t *testing.T) {
	w := serve(
		t, func(w http.ResponseWriter, r *http.Request) {
			utils.SuccessResponse(w, http.StatusCreated, "", map[string]any{"id": 1})
		},
	)

	res := decodeEnvelope(t, w)
	assert.Equal(t, "Created", res["message"])
}

func TestEnvelope_AlreadyEnvelopedPassesThrough(t *testing.T) {
	body := `{"statusCode":409,"success":false,"message":"Email already exists","error":{"reason":"Email already exists","code":"CONFLICT"}}`

	w := serve(
		t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusConflict)
			_, _ = w.Write([]byte(body))
		},
	)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, body, w.Body.String())
}

func TestEnvelope_SkipsNoContent(t *testing.T) {
	w := serve(
		t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		},
	)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.Bytes())
}

func TestEnvelope_SkipsRedirect(t *testing.T) {
	w := serve(
		t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Location", "/elsewhere")
			w.WriteHeader(http.StatusFound)
		},
	)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Empty(t, w.Body.Bytes())
}

func TestEnvelope_SkipsAttachment(t *testing.T) {
	w := serve(
		t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Disposition", `attachment; filename="export.csv"`)
			w.Header().Set("Content-Type", "text/csv")
			_, _ = w.Write([]byte("id,email\n"))
		},
	)

	assert.Equal(t, "id,email\n", w.Body.String())
}

func TestEnvelope_SkipsBinaryContentType(t *testing.T) {
	w := serve(
		t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/octet-stream")
			_, _ = w.Write([]byte{0x1, 0x2, 0x3})
		},
	)

	assert.Equal(t, []byte{0x1, 0x2, 0x3}, w.Body.Bytes())
}
