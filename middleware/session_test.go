package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/DarkcodeQuan/WebProject/models"
)

type memorySessionRepo struct {
	mu       sync.Mutex
	sessions map[string]*models.Session
}

func newMemorySessionRepo() *memorySessionRepo {
	return &memorySessionRepo{sessions: map[string]*models.Session{}}
}

func (r *memorySessionRepo) Get(ctx context.Context, id string) (*models.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	session, ok := r.sessions[id]
	if !ok {
		return nil, nil
	}
	copied := *session
	return &copied, nil
}

func (r *memorySessionRepo) Save(ctx context.Context, session *models.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *session
	r.sessions[session.ID] = &copied
	return nil
}

func (r *memorySessionRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
	return nil
}

func newSessionRouter(repo *memorySessionRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Session(repo, time.Hour))
	router.GET("/", func(c *gin.Context) {
		session := GetSession(c)
		c.JSON(http.StatusOK, gin.H{"session_id": session.ID})
	})
	return router
}

func TestSessionCreatedOnFirstVisit(t *testing.T) {
	repo := newMemorySessionRepo()
	router := newSessionRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, recorder.Code)
	}

	cookies := recorder.Result().Cookies()
	var sid string
	for _, cookie := range cookies {
		if cookie.Name == "sid" {
			sid = cookie.Value
		}
	}
	if sid == "" {
		t.Fatal("expected a sid cookie on first visit")
	}
	if len(repo.sessions) != 1 {
		t.Fatalf("expected 1 stored session, got %d", len(repo.sessions))
	}
	stored := repo.sessions[sid]
	if stored.CSRFToken == "" {
		t.Fatal("new session has no CSRF token")
	}
	if stored.Cart == nil {
		t.Fatal("new session has no cart")
	}
}

func TestSessionReusedAcrossRequests(t *testing.T) {
	repo := newMemorySessionRepo()
	router := newSessionRouter(repo)

	first := httptest.NewRecorder()
	router.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/", nil))

	var sid *http.Cookie
	for _, cookie := range first.Result().Cookies() {
		if cookie.Name == "sid" {
			sid = cookie
		}
	}
	if sid == nil {
		t.Fatal("no sid cookie issued")
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(sid)
	second := httptest.NewRecorder()
	router.ServeHTTP(second, req)

	if !strings.Contains(second.Body.String(), sid.Value) {
		t.Fatalf("expected the same session %q, got body %s", sid.Value, second.Body.String())
	}
	if len(repo.sessions) != 1 {
		t.Fatalf("expected 1 stored session, got %d", len(repo.sessions))
	}
}
