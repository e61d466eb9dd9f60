package projects

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTestRouter(userID string, repo Repo) *gin.Engine {
	gin.SetMode(gin.TestMode)

	handler := NewHandler(NewService(repo))
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("userId", userID)
		c.Next()
	})
	handler.RegisterRoutes(&router.RouterGroup)
	return router
}

func TestCreateThenGetRoundTrip(t *testing.T) {
	repo := NewMemoryRepo()
	router := newTestRouter("user-1", repo)

	body := `{"name":"Spring Gala","budget":2500.50}`
	req := httptest.NewRequest(http.MethodPost, "/projects/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var created map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	id, _ := created["id"].(string)
	if id == "" {
		t.Fatal("expected generated project id")
	}

	getReq := httptest.NewRequest(http.MethodGet, "/projects/"+id, nil)
	getResp := httptest.NewRecorder()
	router.ServeHTTP(getResp, getReq)
	if getResp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", getResp.Code)
	}

	var fetched map[string]any
	if err := json.Unmarshal(getResp.Body.Bytes(), &fetched); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if fetched["name"] != "Spring Gala" {
		t.Fatalf("expected name to round-trip, got %v", fetched["name"])
	}
	if fetched["budget"] != 2500.50 {
		t.Fatalf("expected budget to round-trip, got %v", fetched["budget"])
	}
}

func TestGetForeignProjectReturnsNotFound(t *testing.T) {
	repo := NewMemoryRepo()

	owner := newTestRouter("user-1", repo)
	body := `{"name":"Spring Gala","budget":100}`
	req := httptest.NewRequest(http.MethodPost, "/projects/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	owner.ServeHTTP(resp, req)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}
	var created map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	id := created["id"].(string)

	other := newTestRouter("user-2", repo)
	getReq := httptest.NewRequest(http.MethodGet, "/projects/"+id, nil)
	getResp := httptest.NewRecorder()
	other.ServeHTTP(getResp, getReq)
	if getResp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404 for foreign project, got %d", getResp.Code)
	}
}

func TestListReturnsOnlyOwnProjects(t *testing.T) {
	repo := NewMemoryRepo()
	svc := NewService(repo)

	if _, err := svc.Create(context.Background(), "user-1", "Gala", 100); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Create(context.Background(), "user-2", "Offsite", 200); err != nil {
		t.Fatalf("create: %v", err)
	}

	router := newTestRouter("user-1", repo)
	req := httptest.NewRequest(http.MethodGet, "/projects/", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	var out []map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 project, got %d", len(out))
	}
	if out[0]["name"] != "Gala" {
		t.Fatalf("expected own project, got %v", out[0]["name"])
	}
}

func TestCreateRejectsEmptyName(t *testing.T) {
	router := newTestRouter("user-1", NewMemoryRepo())

	req := httptest.NewRequest(http.MethodPost, "/projects/", strings.NewReader(`{"name":"  "}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}
