package response

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	return c, w
}

func TestError(t *testing.T) {
	c, w := newContext()

	Error(c, http.StatusNotFound, "NO_DATA", "nothing here", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.True(t, c.IsAborted())
	assert.JSONEq(t, `{"ok":false,"error":{"code":"NO_DATA","message":"nothing here","details":null}}`, w.Body.String())
}

func TestSuccess(t *testing.T) {
	c, w := newContext()

	Success(c, http.StatusOK, gin.H{"status": "ok"})

	assert.JSONEq(t, `{"ok":true,"data":{"status":"ok"}}`, w.Body.String())
}

func TestPNG(t *testing.T) {
	c, w := newContext()

	PNG(c, []byte{0x89, 'P', 'N', 'G'})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
	assert.Equal(t, 4, w.Body.Len())
}

func TestAttachment(t *testing.T) {
	c, w := newContext()

	Attachment(c, "pay_gap.xlsx", "application/octet-stream", []byte("PK"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `attachment; filename="pay_gap.xlsx"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "PK", w.Body.String())
}
