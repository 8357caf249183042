// Package apitest wires the full HTTP stack over an in-memory database for
// handler tests.
package apitest

import (
	"context"
	"fmt"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/gigboard/internal/api/middleware"
	"github.com/linskybing/gigboard/internal/api/routes"
	"github.com/linskybing/gigboard/internal/application"
	"github.com/linskybing/gigboard/internal/config"
	"github.com/linskybing/gigboard/internal/domain/user"
	"github.com/linskybing/gigboard/internal/realtime"
	"github.com/linskybing/gigboard/internal/repository"
	"github.com/linskybing/gigboard/internal/testutils"
	"github.com/linskybing/gigboard/pkg/moderation"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Env is a running API with its backing store.
type Env struct {
	Router   *gin.Engine
	DB       *gorm.DB
	Repos    *repository.Repos
	Services *application.Services
	Hub      *realtime.Hub
	Store    *MemoryStore
}

// SetupRouter builds the API the way main does over an in-memory database,
// minus external services.
func SetupRouter(t *testing.T) *Env {
	t.Helper()
	return NewEnv(t, testutils.NewSQLiteDB(t))
}

// NewEnv builds the API over an already migrated database.
func NewEnv(t *testing.T, gdb *gorm.DB) *Env {
	t.Helper()
	gin.SetMode(gin.TestMode)

	config.JwtSecret = "test-secret"
	config.Issuer = "gigboard-test"
	config.TokenTTLHours = 1
	middleware.Init()

	repos := repository.NewRepositories(gdb)
	hub := realtime.NewHub()
	store := &MemoryStore{objects: map[string][]byte{}}

	svc := application.New(repos, application.Deps{
		Broker: hub,
		Filter: moderation.DefaultFilter(),
		Store:  store,
	})

	r := gin.New()
	routes.RegisterRoutes(r, svc, repos)

	return &Env{Router: r, DB: gdb, Repos: repos, Services: svc, Hub: hub, Store: store}
}

// Token signs a short-lived token for u.
func (e *Env) Token(t *testing.T, u user.User) string {
	t.Helper()
	token, err := middleware.GenerateToken(u.ID, u.Username, string(u.Role), time.Hour)
	require.NoError(t, err)
	return token
}

// Client returns an HTTP client authenticated as u.
func (e *Env) Client(t *testing.T, u user.User) *HTTPClient {
	return NewHTTPClient(e.Router, e.Token(t, u))
}

// MemoryStore keeps uploaded objects in memory.
type MemoryStore struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func (s *MemoryStore) PutObject(_ context.Context, key string, r io.Reader, _ int64, _ string) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	s.objects[key] = data
	s.mu.Unlock()
	return fmt.Sprintf("http://objects.test/%s", key), nil
}

// Len reports how many objects were stored.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.objects)
}
