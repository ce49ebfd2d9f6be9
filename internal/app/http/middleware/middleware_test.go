package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var ok = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
})

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestInternalAuth(t *testing.T) {
	h := InternalAuth("secret")(ok)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := serve(h, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"success":false,"message":"unauthorized"}`, rec.Body.String())

	req.Header.Set("X-Internal-Token", "secret")
	assert.Equal(t, http.StatusNoContent, serve(h, req).Code)
}

func TestRequireRole(t *testing.T) {
	h := ForwardedIdentity(RequireRole(RoleAdmin)(ok))

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := serve(h, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"success":false,"message":"forbidden"}`, rec.Body.String())

	req.Header.Set("X-User-Role", "agent")
	assert.Equal(t, http.StatusForbidden, serve(h, req).Code)

	req.Header.Set("X-User-Role", " Admin ")
	assert.Equal(t, http.StatusNoContent, serve(h, req).Code)
}

func TestForwardedIdentity(t *testing.T) {
	var got Identity
	h := ForwardedIdentity(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = IdentityFromContext(r.Context())
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-User-ID", "u1")
	req.Header.Set("X-User-Role", "agent")
	serve(h, req)
	assert.Equal(t, Identity{UserID: "u1", Role: RoleAgent}, got)
}

func TestLoggingSetsRequestIDAndLogs(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	orig := zap.L()
	zap.ReplaceGlobals(zap.New(core))
	defer zap.ReplaceGlobals(orig)

	rec := serve(Logging(ok), httptest.NewRequest(http.MethodGet, "/ping", nil))
	id := rec.Header().Get("X-Request-Id")
	assert.NotEmpty(t, id)

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, id, fields["request_id"])
	assert.Equal(t, "/ping", fields["path"])
	assert.Equal(t, int64(http.StatusNoContent), fields["status"])
}

func TestLoggingKeepsIncomingRequestID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-Id", "abc")
	rec := serve(Logging(ok), req)
	assert.Equal(t, "abc", rec.Header().Get("X-Request-Id"))
}

func TestCORSPreflight(t *testing.T) {
	h := CORS("https://app.example.test")(http.NotFoundHandler())
	rec := serve(h, httptest.NewRequest(http.MethodOptions, "/v1/quotes", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://app.example.test", rec.Header().Get("Access-Control-Allow-Origin"))
}
