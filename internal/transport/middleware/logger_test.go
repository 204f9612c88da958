package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/heartmarshall/revisaquest-backend/pkg/ctxutil"
)

func loggedRequest(t *testing.T, status int, decorate func(*http.Request) *http.Request) string {
	t.Helper()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	h := Logger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/plans/today", nil)
	if decorate != nil {
		req = decorate(req)
	}
	h.ServeHTTP(httptest.NewRecorder(), req)

	return buf.String()
}

func TestLogger_RequestLine(t *testing.T) {
	out := loggedRequest(t, http.StatusOK, nil)

	for _, want := range []string{"http.request", `"method":"GET"`, "/api/v1/plans/today", `"status":200`, "duration", "INFO"} {
		if !strings.Contains(out, want) {
			t.Errorf("log line missing %q: %s", want, out)
		}
	}
}

func TestLogger_ErrorLevelOn5xx(t *testing.T) {
	out := loggedRequest(t, http.StatusBadGateway, nil)

	if !strings.Contains(out, "ERROR") {
		t.Errorf("expected error level: %s", out)
	}
	if !strings.Contains(out, `"status":502`) {
		t.Errorf("expected status 502: %s", out)
	}
}

func TestLogger_ContextIdentifiers(t *testing.T) {
	userID := uuid.New()
	out := loggedRequest(t, http.StatusOK, func(req *http.Request) *http.Request {
		ctx := ctxutil.WithRequestID(req.Context(), "req-5c1a")
		ctx = ctxutil.WithUserID(ctx, userID)
		return req.WithContext(ctx)
	})

	if !strings.Contains(out, "req-5c1a") {
		t.Errorf("log line missing request id: %s", out)
	}
	if !strings.Contains(out, userID.String()) {
		t.Errorf("log line missing user id: %s", out)
	}
}

func TestLogger_AnonymousRequestOmitsUserID(t *testing.T) {
	out := loggedRequest(t, http.StatusOK, nil)

	if strings.Contains(out, "user_id") {
		t.Errorf("user_id should be absent for anonymous requests: %s", out)
	}
}
