package logging

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitWithWriter_ParsesLevel(t *testing.T) {
	var buf bytes.Buffer

	InitWithWriter(&buf, "warn", false)
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	InitWithWriter(&buf, "nonsense", false)
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}

func TestGinLogger_WritesStructuredLine(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	InitWithWriter(&buf, "info", false)

	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("userID", "u-1"); c.Next() })
	r.Use(GinLogger("userID"))
	r.GET("/api/things/:id", func(c *gin.Context) { c.Status(http.StatusConflict) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/things/42", nil))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "warn", line["level"])
	assert.Equal(t, "/api/things/:id", line["path"])
	assert.EqualValues(t, http.StatusConflict, line["status"])
	assert.Equal(t, "u-1", line["user_id"])
}
