package logger

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"social-system/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestInitLogger_WritesJSONToFile(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "logs", "app.log")
	InitLogger(config.LogConfig{Level: "debug", Filename: filename, MaxSize: 1})
	t.Cleanup(func() { log = zap.NewNop() })

	Info("user registered", zap.Uint("user_id", 7))
	require.NoError(t, Sync())

	data, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"user registered"`)
	assert.Contains(t, string(data), `"user_id":7`)
}

func TestWithFields_AttachesRequestContext(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "app.log")
	InitLogger(config.LogConfig{Level: "info", Filename: filename, MaxSize: 1})
	t.Cleanup(func() { log = zap.NewNop() })

	WithFields(map[string]interface{}{"path": "/posts", "user_id": 3}).Error("list posts failed")
	require.NoError(t, Sync())

	data, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"path":"/posts"`)
	assert.Contains(t, string(data), `"user_id":3`)
	assert.Contains(t, string(data), `"level":"ERROR"`)
}

func TestGetLogLevel(t *testing.T) {
	assert.Equal(t, zapcore.WarnLevel, getLogLevel("warn"))
	assert.Equal(t, zapcore.InfoLevel, getLogLevel("bogus"))
}

func TestErrorLoggerMiddleware_RecoversPanic(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestLogger(), ErrorLoggerMiddleware())
	router.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
}
