// api/middleware/cache.go
package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	logger "github.com/dev-mohitbeniwal/folio/api/logging"
)

// CacheStore is the slice of the Redis client the page cache needs.
// Satisfied by db.RedisCache; tests use an in-memory fake.
type CacheStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Available() bool
}

// cacheWriter captures the response body on its way out so it can be
// stored after the handler has produced it.
type cacheWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *cacheWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *cacheWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// CachePage is a read-through cache for idempotent routes. GET requests
// are answered from the store when a valid entry exists; otherwise the
// handler runs and its successful JSON response is stored under the
// request's URL for ttl. Cache trouble of any kind degrades to live
// behavior and never reaches the client.
//
// The key is derived from path+query only, not from the authenticated
// principal, so entries are shared across users of a route.
func CachePage(store CacheStore, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Methods that modify data bypass the cache unconditionally.
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		if !store.Available() {
			c.Next()
			return
		}

		key := "cache:" + c.Request.URL.RequestURI()

		cached, err := store.Get(c.Request.Context(), key)
		if err != nil {
			logger.Error("Cache read failed", zap.Error(err), zap.String("key", key))
		} else if cached != "" && json.Valid([]byte(cached)) {
			c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(cached))
			c.Abort()
			return
		}

		writer := &cacheWriter{ResponseWriter: c.Writer}
		c.Writer = writer

		c.Next()

		if c.Writer.Status() != http.StatusOK {
			return
		}

		if err := store.Set(c.Request.Context(), key, writer.body.String(), ttl); err != nil {
			logger.Error("Cache write failed", zap.Error(err), zap.String("key", key))
		}
	}
}
