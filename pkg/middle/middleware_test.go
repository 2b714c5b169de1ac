package middle

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// wrap composes the chain the way main does: request IDs outermost so the
// access log sees them.
func wrap(log *zap.Logger, next http.Handler) http.Handler {
	return RequestIDMiddleware()(LoggingMiddleware(log)(next))
}

func observedLogger() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return zap.New(core), logs
}

func accessEntry(t *testing.T, logs *observer.ObservedLogs) observer.LoggedEntry {
	t.Helper()
	entries := logs.FilterMessage("Request completed").All()
	require.Len(t, entries, 1)
	return entries[0]
}

func TestAccessLogCarriesRequestID(t *testing.T) {
	log, logs := observedLogger()
	app := wrap(log, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)

	header := rec.Header().Get("X-Request-ID")
	require.True(t, strings.HasPrefix(header, "req-"))

	fields := accessEntry(t, logs).ContextMap()
	assert.Equal(t, header, fields["request_id"])
	assert.Equal(t, int64(http.StatusOK), fields["status"])
	assert.Equal(t, "/api/v1/health", fields["path"])
}

func TestRequestIDVariesPerRequest(t *testing.T) {
	log, _ := observedLogger()
	var seen []string
	app := wrap(log, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, RequestID(r.Context()))
	}))

	for i := 0; i < 2; i++ {
		app.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	}

	require.Len(t, seen, 2)
	assert.NotEmpty(t, seen[0])
	assert.NotEqual(t, seen[0], seen[1])
}

func TestLoggingMiddlewareRecoversPanic(t *testing.T) {
	log, logs := observedLogger()
	app := wrap(log, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Len(t, logs.FilterMessage("Internal Server Error").All(), 1)
}

func TestRequestIDMissing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, RequestID(req.Context()))
}
