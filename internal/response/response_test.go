package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newEngine() *gin.Engine {
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/ok", func(c *gin.Context) { Success(c, http.StatusOK, gin.H{"status": "ok"}) })
	r.GET("/fail", func(c *gin.Context) { Fail(c, http.StatusConflict, ErrNothingToReview) })
	r.GET("/fields", func(c *gin.Context) {
		FailWithFields(c, http.StatusBadRequest, ErrValidation, map[string]string{"mode": "required"})
	})
	r.GET("/abort", func(c *gin.Context) {
		AbortFail(c, http.StatusInternalServerError, ErrSessionUnavailable)
		c.String(http.StatusTeapot, "unreachable")
	})
	return r
}

func do(t *testing.T, path, reqID string) (*httptest.ResponseRecorder, Response) {
	t.Helper()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if reqID != "" {
		req.Header.Set("X-Request-ID", reqID)
	}
	newEngine().ServeHTTP(rec, req)

	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func TestEnvelope(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantCode   ErrCode
		wantFields bool
	}{
		{name: "success", path: "/ok", wantStatus: http.StatusOK},
		{name: "fail", path: "/fail", wantStatus: http.StatusConflict, wantCode: ErrNothingToReview},
		{name: "fields", path: "/fields", wantStatus: http.StatusBadRequest, wantCode: ErrValidation, wantFields: true},
		{name: "abort", path: "/abort", wantStatus: http.StatusInternalServerError, wantCode: ErrSessionUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec, body := do(t, tt.path, "")
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.NotEmpty(t, body.Metadata.Timestamp)
			_, err := uuid.Parse(body.Metadata.RequestID)
			assert.NoError(t, err)
			assert.Equal(t, body.Metadata.RequestID, rec.Header().Get("X-Request-ID"))

			if tt.wantCode == "" {
				assert.Nil(t, body.Error)
				assert.NotNil(t, body.Data)
				return
			}
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Equal(t, GetMessage(tt.wantCode), body.Error.Message)
			assert.Equal(t, tt.wantFields, len(body.Error.Fields) > 0)
		})
	}
}

func TestRequestIDMiddleware_ReusesHeader(t *testing.T) {
	t.Parallel()

	rec, body := do(t, "/ok", "trace-123")
	assert.Equal(t, "trace-123", body.Metadata.RequestID)
	assert.Equal(t, "trace-123", rec.Header().Get("X-Request-ID"))
}

func TestRequestIDMiddleware_ReplacesOversizedHeader(t *testing.T) {
	t.Parallel()

	rec, body := do(t, "/ok", strings.Repeat("a", maxRequestIDLen+1))
	_, err := uuid.Parse(body.Metadata.RequestID)
	require.NoError(t, err)
	assert.Equal(t, body.Metadata.RequestID, rec.Header().Get(HeaderRequestID))
}

func TestRequestID_OutsideMiddleware(t *testing.T) {
	t.Parallel()

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Empty(t, RequestID(c))
}

func TestGetMessage_Unknown(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Unexpected error.", GetMessage("NOPE"))
}
