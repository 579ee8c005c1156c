package middleware

import (
	"bytes"
	"net/http"
	"strings"

	"github.com/goccy/go-json"
	"github.com/we2pos/backend/internal/hdl/http/utils"
	"go.uber.org/zap"
)

// envelopeWriter buffers the handler output so the final shape can be
// decided after the handler returns.
type envelopeWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
	buf         bytes.Buffer
}

func (ew *envelopeWriter) WriteHeader(code int) {
	if !ew.wroteHeader {
		ew.status = code
		ew.wroteHeader = true
	}
}

func (ew *envelopeWriter) Write(p []byte) (int, error) {
	if !ew.wroteHeader {
		ew.WriteHeader(http.StatusOK)
	}
	return ew.buf.Write(p)
}

// Envelope wraps every successful handler result into the standard
// {statusCode, success, message, results} shape. Bodies that are
// already enveloped, binary/attachment responses, redirects and
// 204/304 statuses pass through untouched.
func Envelope(next http.Handler) http.Handler {
	return http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			ew := &envelopeWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(ew, r)

			body := ew.buf.Bytes()

			payload, wrap := shouldWrap(ew, body)
			if !wrap {
				flushRaw(w, ew.status, ew.wroteHeader, body)
				return
			}

			message, results := extractPayload(payload)
			if message == "" {
				message = http.StatusText(ew.status)
			}
			if message == "" {
				message = "Success"
			}

			w.Header().Set("Content-Type", "application/json")
			w.Header().Del("Content-Length")
			w.WriteHeader(ew.status)
			if err := json.NewEncoder(w).Encode(
				&utils.SuccessEnvelope{
					StatusCode: ew.status,
					Success:    true,
					Message:    message,
					Results:    results,
				},
			); err != nil {
				zap.L().Error("failed to encode envelope", zap.Error(err))
			}
		},
	)
}

func shouldWrap(ew *envelopeWriter, body []byte) (any, bool) {
	if ew.status == http.StatusNoContent || ew.status == http.StatusNotModified {
		return nil, false
	}
	if ew.status >= 300 && ew.status < 400 {
		return nil, false
	}

	disposition := ew.Header().Get("Content-Disposition")
	if strings.Contains(strings.ToLower(disposition), "attachment") {
		return nil, false
	}

	contentType := ew.Header().Get("Content-Type")
	if contentType != "" && !strings.Contains(contentType, "json") {
		return nil, false
	}

	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		// Not a JSON body, leave it alone.
		return nil, false
	}

	if obj, ok := payload.(map[string]any); ok {
		_, hasSuccess := obj["success"]
		_, hasStatus := obj["statusCode"]
		if hasSuccess && hasStatus {
			return nil, false
		}
	}

	return payload, true
}

// extractPayload pulls an optional {message, results} pair out of the
// raw handler payload. Anything else becomes results wholesale.
func extractPayload(payload any) (string, any) {
	obj, ok := payload.(map[string]any)
	if !ok {
		return "", payload
	}

	results, ok := obj["results"]
	if !ok {
		return "", payload
	}

	message, _ := obj["message"].(string)
	return message, results
}

func flushRaw(w http.ResponseWriter, status int, wroteHeader bool, body []byte) {
	if wroteHeader {
		w.WriteHeader(status)
	}
	if len(body) > 0 {
		if _, err := w.Write(body); err != nil {
			zap.L().Debug("failed to flush response", zap.Error(err))
		}
	}
}
