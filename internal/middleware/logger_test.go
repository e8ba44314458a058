package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/mini-bank/pkg/configpkg"
)

func newEngine(logger zerolog.Logger, status int) *gin.Engine {
	gin.SetMode(gin.TestMode)

	engine := gin.New()
	engine.Use(RequestLogger(logger))
	engine.GET("/ping", func(gctx *gin.Context) {
		zerolog.Ctx(gctx.Request.Context()).Info().Msg("handler")
		gctx.Status(status)
	})

	return engine
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var lines []map[string]any

	dec := json.NewDecoder(buf)
	for dec.More() {
		line := map[string]any{}
		require.NoError(t, dec.Decode(&line))
		lines = append(lines, line)
	}

	return lines
}

func TestRequestLogger(t *testing.T) {
	testCases := []struct {
		name          string
		requestID     string
		status        int
		wantLastLevel string
	}{
		{name: "PropagatesRequestID", requestID: "req-1", status: http.StatusOK, wantLastLevel: "info"},
		{name: "GeneratesRequestID", status: http.StatusCreated, wantLastLevel: "info"},
		{name: "ServerErrorAtErrorLevel", requestID: "req-2", status: http.StatusInternalServerError, wantLastLevel: "error"},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			engine := newEngine(zerolog.New(&buf), tc.status)

			req, err := http.NewRequest(http.MethodGet, "/ping", nil)
			require.NoError(t, err)

			if tc.requestID != "" {
				req.Header.Set(RequestIDHeader, tc.requestID)
			}

			recorder := httptest.NewRecorder()
			engine.ServeHTTP(recorder, req)

			gotID := recorder.Header().Get(RequestIDHeader)
			if tc.requestID != "" {
				require.Equal(t, tc.requestID, gotID)
			} else {
				_, err := uuid.Parse(gotID)
				require.NoError(t, err)
			}

			lines := decodeLines(t, &buf)
			require.Len(t, lines, 2)

			for _, line := range lines {
				require.Equal(t, gotID, line["request_id"])
			}

			last := lines[1]
			require.Equal(t, tc.wantLastLevel, last["level"])
			require.Equal(t, "/ping", last["path"])
			require.EqualValues(t, tc.status, last["status_code"])
		})
	}
}

func TestRequestLoggerDoesNotLeakIDs(t *testing.T) {
	var buf bytes.Buffer
	engine := newEngine(zerolog.New(&buf), http.StatusOK)

	for _, id := range []string{"first", "second"} {
		req, err := http.NewRequest(http.MethodGet, "/ping", nil)
		require.NoError(t, err)
		req.Header.Set(RequestIDHeader, id)

		engine.ServeHTTP(httptest.NewRecorder(), req)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)

	for i, line := range lines {
		want := "first"
		if i >= 2 {
			want = "second"
		}

		require.Equal(t, 1, strings.Count(line, `"request_id"`), line)
		require.Contains(t, line, `"request_id":"`+want+`"`)
	}
}

func TestGetLogger(t *testing.T) {
	testCases := []struct {
		env  string
		want zerolog.Level
	}{
		{env: "production", want: zerolog.InfoLevel},
		{env: "development", want: zerolog.TraceLevel},
	}

	for _, tc := range testCases {
		logger := GetLogger(configpkg.Config{Environment: tc.env})
		require.Equal(t, tc.want, logger.GetLevel(), tc.env)
	}
}
