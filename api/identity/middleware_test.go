package identity

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/beka-birhanu/vinom-wumpus/infrastruture/token"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthoriz(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tokenizer := token.NewJwtService("secret", "test")

	engine := gin.New()
	engine.GET("/me", Authoriz(tokenizer), func(c *gin.Context) {
		subject, ok := Subject(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, subject)
	})

	call := func(header string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)
		return rec
	}

	t.Run("valid bearer token", func(t *testing.T) {
		tok, err := tokenizer.Generate(map[string]interface{}{"sub": "alice"}, time.Minute)
		require.NoError(t, err)

		rec := call("Bearer " + tok)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "alice", rec.Body.String())
	})

	t.Run("missing header", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, call("").Code)
	})

	t.Run("wrong scheme", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, call("Basic abc").Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, call("Bearer nope").Code)
	})

	t.Run("token without subject", func(t *testing.T) {
		tok, err := tokenizer.Generate(map[string]interface{}{}, time.Minute)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, call("Bearer "+tok).Code)
	})
}
