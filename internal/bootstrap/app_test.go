package bootstrap

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"net/url"
	"strings"
	"testing"
	"time"

	"eventplanner-backend/internal/invoices"
	"eventplanner-backend/internal/shared/config"
)

type stubSummarizer struct {
	calls  int
	result string
}

func (s *stubSummarizer) Summarize(ctx context.Context, text, prompt string) (string, error) {
	s.calls++
	return s.result, nil
}

func buildTestApp(t *testing.T) (*App, *stubSummarizer) {
	t.Helper()

	cfg := config.Config{
		Env:             "dev",
		ObjectStoreType: "local",
		UploadDir:       t.TempDir(),
		JWTSecret:       "test-secret",
		TokenTTLMinutes: 30,
		LLMProvider:     "none",
	}
	app, err := Build(cfg)
	if err != nil {
		t.Fatalf("build app: %v", err)
	}

	summarizer := &stubSummarizer{result: "venue and catering are booked"}
	app.DocumentsService.Summarizer = summarizer
	return app, summarizer
}

func do(t *testing.T, app *App, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)
	return resp
}

func registerAndLogin(t *testing.T, app *App, email string) string {
	t.Helper()

	body := `{"email":"` + email + `","password":"s3cret"}`
	req := httptest.NewRequest(http.MethodPost, "/users/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if resp := do(t, app, req); resp.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d: %s", resp.Code, resp.Body.String())
	}

	form := url.Values{"username": {email}, "password": {"s3cret"}}
	loginReq := httptest.NewRequest(http.MethodPost, "/token", strings.NewReader(form.Encode()))
	loginReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	loginResp := do(t, app, loginReq)
	if loginResp.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d: %s", loginResp.Code, loginResp.Body.String())
	}

	var out map[string]string
	if err := json.Unmarshal(loginResp.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode token response: %v", err)
	}
	if out["access_token"] == "" {
		t.Fatal("expected access_token")
	}
	return out["access_token"]
}

func createProject(t *testing.T, app *App, token, name string) string {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/projects/", strings.NewReader(`{"name":"`+name+`","budget":1000}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	resp := do(t, app, req)
	if resp.Code != http.StatusCreated {
		t.Fatalf("create project: expected 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var out map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode project response: %v", err)
	}
	id, _ := out["id"].(string)
	if id == "" {
		t.Fatal("expected project id")
	}
	return id
}

func uploadDocument(t *testing.T, app *App, token, projectID, filename, content string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	header.Set("Content-Type", "text/plain")
	part, err := writer.CreatePart(header)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	if _, err := part.Write([]byte(content)); err != nil {
		t.Fatalf("write part: %v", err)
	}
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/projects/"+projectID+"/documents/", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	return do(t, app, req)
}

func TestDocumentFlowEndToEnd(t *testing.T) {
	app, summarizer := buildTestApp(t)

	token := registerAndLogin(t, app, "planner@example.com")
	projectID := createProject(t, app, token, "Spring Gala")

	resp := uploadDocument(t, app, token, projectID, "notes.txt", "venue booked for June 12")
	if resp.Code != http.StatusCreated {
		t.Fatalf("upload: expected 201, got %d: %s", resp.Code, resp.Body.String())
	}
	var doc map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &doc); err != nil {
		t.Fatalf("decode document response: %v", err)
	}
	if doc["summary"] != "venue and catering are booked" {
		t.Fatalf("expected generated summary, got %v", doc["summary"])
	}
	if summarizer.calls != 1 {
		t.Fatalf("expected one summarizer call, got %d", summarizer.calls)
	}

	listReq := httptest.NewRequest(http.MethodGet, "/projects/"+projectID+"/documents/", nil)
	listReq.Header.Set("Authorization", "Bearer "+token)
	listResp := do(t, app, listReq)
	if listResp.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", listResp.Code)
	}
	var docs []map[string]any
	if err := json.Unmarshal(listResp.Body.Bytes(), &docs); err != nil {
		t.Fatalf("decode list response: %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("expected 1 document, got %d", len(docs))
	}

	summaryReq := httptest.NewRequest(http.MethodGet, "/projects/"+projectID+"/documents/summary", nil)
	summaryReq.Header.Set("Authorization", "Bearer "+token)
	summaryResp := do(t, app, summaryReq)
	if summaryResp.Code != http.StatusOK {
		t.Fatalf("summary: expected 200, got %d: %s", summaryResp.Code, summaryResp.Body.String())
	}
	var summary map[string]string
	if err := json.Unmarshal(summaryResp.Body.Bytes(), &summary); err != nil {
		t.Fatalf("decode summary response: %v", err)
	}
	if summary["summary"] == "" {
		t.Fatal("expected aggregated summary")
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	app, _ := buildTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/projects/", nil)
	resp := do(t, app, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", resp.Code)
	}
}

func TestOwnershipIsolationOverHTTP(t *testing.T) {
	app, _ := buildTestApp(t)

	ownerToken := registerAndLogin(t, app, "owner@example.com")
	otherToken := registerAndLogin(t, app, "other@example.com")
	projectID := createProject(t, app, ownerToken, "Gala")

	req := httptest.NewRequest(http.MethodGet, "/projects/"+projectID, nil)
	req.Header.Set("Authorization", "Bearer "+otherToken)
	resp := do(t, app, req)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for foreign project, got %d", resp.Code)
	}

	upload := uploadDocument(t, app, otherToken, projectID, "notes.txt", "text")
	if upload.Code != http.StatusNotFound {
		t.Fatalf("expected 404 uploading to foreign project, got %d", upload.Code)
	}
}

func TestInvoiceListAndUpdateOverHTTP(t *testing.T) {
	app, _ := buildTestApp(t)

	ownerToken := registerAndLogin(t, app, "owner@example.com")
	otherToken := registerAndLogin(t, app, "other@example.com")
	projectID := createProject(t, app, ownerToken, "Gala")

	invoice := invoices.Invoice{
		ID:        "inv-1",
		Filename:  "catering.pdf",
		Vendor:    "Acme Catering",
		Amount:    123.45,
		DueDate:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		ProjectID: projectID,
		CreatedAt: time.Now().UTC(),
	}
	if err := app.InvoicesRepo.Create(context.Background(), invoice); err != nil {
		t.Fatalf("seed invoice: %v", err)
	}

	listReq := httptest.NewRequest(http.MethodGet, "/invoices/", nil)
	listReq.Header.Set("Authorization", "Bearer "+ownerToken)
	listResp := do(t, app, listReq)
	if listResp.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d: %s", listResp.Code, listResp.Body.String())
	}
	var listed []map[string]any
	if err := json.Unmarshal(listResp.Body.Bytes(), &listed); err != nil {
		t.Fatalf("decode list response: %v", err)
	}
	if len(listed) != 1 || listed[0]["vendor"] != "Acme Catering" {
		t.Fatalf("expected seeded invoice, got %v", listed)
	}

	otherListReq := httptest.NewRequest(http.MethodGet, "/invoices/", nil)
	otherListReq.Header.Set("Authorization", "Bearer "+otherToken)
	otherListResp := do(t, app, otherListReq)
	if otherListResp.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", otherListResp.Code)
	}
	var otherListed []map[string]any
	if err := json.Unmarshal(otherListResp.Body.Bytes(), &otherListed); err != nil {
		t.Fatalf("decode list response: %v", err)
	}
	if len(otherListed) != 0 {
		t.Fatalf("expected no invoices for other user, got %v", otherListed)
	}

	foreignUpdate := httptest.NewRequest(http.MethodPut, "/invoices/inv-1", strings.NewReader(`{"is_paid":true}`))
	foreignUpdate.Header.Set("Content-Type", "application/json")
	foreignUpdate.Header.Set("Authorization", "Bearer "+otherToken)
	if resp := do(t, app, foreignUpdate); resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 updating foreign invoice, got %d", resp.Code)
	}

	update := httptest.NewRequest(http.MethodPut, "/invoices/inv-1", strings.NewReader(`{"is_paid":true}`))
	update.Header.Set("Content-Type", "application/json")
	update.Header.Set("Authorization", "Bearer "+ownerToken)
	updateResp := do(t, app, update)
	if updateResp.Code != http.StatusOK {
		t.Fatalf("update: expected 200, got %d: %s", updateResp.Code, updateResp.Body.String())
	}
	var updated map[string]any
	if err := json.Unmarshal(updateResp.Body.Bytes(), &updated); err != nil {
		t.Fatalf("decode update response: %v", err)
	}
	if updated["is_paid"] != true {
		t.Fatalf("expected is_paid true, got %v", updated["is_paid"])
	}
}

func TestMeEndpoint(t *testing.T) {
	app, _ := buildTestApp(t)

	token := registerAndLogin(t, app, "planner@example.com")
	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp := do(t, app, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var out map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out["email"] != "planner@example.com" {
		t.Fatalf("expected caller email, got %v", out["email"])
	}
}

func TestHealthAndMetrics(t *testing.T) {
	app, _ := buildTestApp(t)

	health := do(t, app, httptest.NewRequest(http.MethodGet, "/health", nil))
	if health.Code != http.StatusOK {
		t.Fatalf("health: expected 200, got %d", health.Code)
	}

	metrics := do(t, app, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if metrics.Code != http.StatusOK {
		t.Fatalf("metrics: expected 200, got %d", metrics.Code)
	}
	if !strings.Contains(metrics.Body.String(), "document_ingest_started_total") {
		t.Fatalf("expected ingest counter in metrics output, got %q", metrics.Body.String())
	}
}
