package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	logger "github.com/dev-mohitbeniwal/folio/api/logging"
	"github.com/dev-mohitbeniwal/folio/api/middleware"
)

// fakeStore is an in-memory CacheStore recording its calls.
type fakeStore struct {
	mu        sync.Mutex
	entries   map[string]string
	available bool
	getErr    error
	setErr    error
	gets      int
	sets      int
}

func newFakeStore() *fakeStore {
	return &fakeStore{entries: map[string]string{}, available: true}
}

func (s *fakeStore) Get(ctx context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gets++
	if s.getErr != nil {
		return "", s.getErr
	}
	return s.entries[key], nil
}

func (s *fakeStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sets++
	if s.setErr != nil {
		return s.setErr
	}
	s.entries[key] = value
	return nil
}

func (s *fakeStore) Available() bool {
	return s.available
}

func setupCacheRouter(store middleware.CacheStore, hits *int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	cached := router.Group("/api", middleware.CachePage(store, time.Minute))
	cached.GET("/projects", func(c *gin.Context) {
		*hits++
		c.JSON(http.StatusOK, gin.H{"projects": []string{"one", "two"}})
	})
	cached.POST("/projects", func(c *gin.Context) {
		*hits++
		c.JSON(http.StatusCreated, gin.H{"id": "p1"})
	})
	cached.GET("/missing", func(c *gin.Context) {
		*hits++
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})
	return router
}

func TestCachePage(t *testing.T) {
	logger.InitLogger(t.TempDir())
	defer logger.Sync()

	t.Run("SecondGetServedFromCache", func(t *testing.T) {
		store := newFakeStore()
		hits := 0
		router := setupCacheRouter(store, &hits)

		w1 := httptest.NewRecorder()
		req1, _ := http.NewRequest("GET", "/api/projects", nil)
		router.ServeHTTP(w1, req1)

		w2 := httptest.NewRecorder()
		req2, _ := http.NewRequest("GET", "/api/projects", nil)
		router.ServeHTTP(w2, req2)

		assert.Equal(t, http.StatusOK, w1.Code)
		assert.Equal(t, http.StatusOK, w2.Code)
		assert.Equal(t, w1.Body.String(), w2.Body.String())
		assert.Equal(t, 1, hits, "handler must not run on a cache hit")
		assert.Contains(t, store.entries, "cache:/api/projects")
	})

	t.Run("KeyIncludesQueryString", func(t *testing.T) {
		store := newFakeStore()
		hits := 0
		router := setupCacheRouter(store, &hits)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/projects?limit=5", nil)
		router.ServeHTTP(w, req)

		assert.Contains(t, store.entries, "cache:/api/projects?limit=5")
	})

	t.Run("NonGetBypassesStore", func(t *testing.T) {
		store := newFakeStore()
		hits := 0
		router := setupCacheRouter(store, &hits)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/projects", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 1, hits)
		assert.Zero(t, store.gets)
		assert.Zero(t, store.sets)
	})

	t.Run("GetErrorFallsThrough", func(t *testing.T) {
		store := newFakeStore()
		store.getErr = errors.New("connection reset")
		hits := 0
		router := setupCacheRouter(store, &hits)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/projects", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 1, hits)
	})

	t.Run("SetErrorStillResponds", func(t *testing.T) {
		store := newFakeStore()
		store.setErr = errors.New("connection reset")
		hits := 0
		router := setupCacheRouter(store, &hits)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/projects", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "projects")
	})

	t.Run("UnavailableStoreSkipped", func(t *testing.T) {
		store := newFakeStore()
		store.available = false
		hits := 0
		router := setupCacheRouter(store, &hits)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/projects", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 1, hits)
		assert.Zero(t, store.gets)
		assert.Zero(t, store.sets)
	})

	t.Run("CorruptEntryFallsThrough", func(t *testing.T) {
		store := newFakeStore()
		store.entries["cache:/api/projects"] = "{not json"
		hits := 0
		router := setupCacheRouter(store, &hits)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/projects", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 1, hits)
	})

	t.Run("NonOKResponseNotStored", func(t *testing.T) {
		store := newFakeStore()
		hits := 0
		router := setupCacheRouter(store, &hits)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/missing", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.NotContains(t, store.entries, "cache:/api/missing")
	})
}
