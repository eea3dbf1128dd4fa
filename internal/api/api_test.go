package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sca-trainer/backend/internal/auth"
	"github.com/sca-trainer/backend/internal/casegen"
	"github.com/sca-trainer/backend/internal/domain/patientcase"
	"github.com/sca-trainer/backend/internal/llm"
	"github.com/sca-trainer/backend/internal/rubric"
	"github.com/sca-trainer/backend/internal/scoring"
	"github.com/sca-trainer/backend/internal/service"
	"github.com/sca-trainer/backend/internal/store"
)

// fakeVerifier maps tokens to user IDs without the auth service.
type fakeVerifier struct {
	tokens map[string]string
}

func (f *fakeVerifier) VerifyToken(_ context.Context, token string) (string, error) {
	if id, ok := f.tokens[token]; ok {
		return id, nil
	}
	return "", auth.ErrInvalidToken
}

type fakeCompleter struct {
	response string
	err      error
}

func (f *fakeCompleter) Complete(_ context.Context, _ string, _ llm.Options) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

type fakePinger struct{ err error }

func (f *fakePinger) Ping(_ context.Context) error { return f.err }

const (
	validCase   = `{"name":"James","age":45,"presenting":"Persistent headache for two weeks.","context":"History of migraines. Works long hours at a computer."}`
	validScores = `{"data-gathering":4,"clinical-management":3,"interpersonal-skills":5}`
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

type testEnv struct {
	mux   *http.ServeMux
	store *store.SQLiteStore
}

func newTestEnv(t *testing.T, completer llm.Completer) *testEnv {
	t.Helper()

	s, err := store.NewSQLite(":memory:")
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	cases := service.NewCaseService(s, casegen.NewGenerator(completer, 0.7), nil, discard)
	consultations := service.NewConsultationService(s, scoring.NewScorer(completer, rubric.Default()), nil, discard)
	h := NewHandler(s, cases, consultations, nil, &fakePinger{}, discard)

	mux := http.NewServeMux()
	verifier := &fakeVerifier{tokens: map[string]string{
		"token-1": "user-1",
		"token-2": "user-2",
	}}
	RegisterRoutes(mux, h, verifier)

	return &testEnv{mux: mux, store: s}
}

func (e *testEnv) do(t *testing.T, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.mux.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) seedCase(t *testing.T) *patientcase.Case {
	t.Helper()
	c, err := patientcase.NewCase(patientcase.PatientCase{
		Name:       "James",
		Age:        45,
		Presenting: "Persistent headache for two weeks.",
		Context:    "History of migraines. Works long hours at a computer.",
	})
	if err != nil {
		t.Fatalf("failed to create case: %v", err)
	}
	if err := e.store.SaveCase(c); err != nil {
		t.Fatalf("failed to save case: %v", err)
	}
	return c
}

func TestAuthRequired(t *testing.T) {
	env := newTestEnv(t, &fakeCompleter{response: validCase})

	if rec := env.do(t, http.MethodPost, "/cases/generate", "", ""); rec.Code != http.StatusUnauthorized {
		t.Errorf("no token: expected 401, got %d", rec.Code)
	}
	if rec := env.do(t, http.MethodPost, "/cases/generate", "bogus", ""); rec.Code != http.StatusUnauthorized {
		t.Errorf("bad token: expected 401, got %d", rec.Code)
	}
}

func TestGenerateCaseEndpoint(t *testing.T) {
	env := newTestEnv(t, &fakeCompleter{response: validCase})

	rec := env.do(t, http.MethodPost, "/cases/generate", "token-1", "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp CaseResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Name != "James" || resp.Age != 45 || resp.ID == "" {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestGenerateCaseEndpoint_ProviderDown(t *testing.T) {
	env := newTestEnv(t, &fakeCompleter{err: &llm.ProviderError{Reason: "connection error"}})

	rec := env.do(t, http.MethodPost, "/cases/generate", "token-1", "")
	if rec.Code != http.StatusBadGateway {
		t.Errorf("expected 502, got %d", rec.Code)
	}
}

func TestCreateCaseEndpoint(t *testing.T) {
	env := newTestEnv(t, &fakeCompleter{response: validCase})

	rec := env.do(t, http.MethodPost, "/cases", "token-1", validCase)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	// Hand-authored cases pass through the same validation as generated ones.
	bad := `{"name":"Susan","age":40,"presenting":"Headache.","context":"None relevant."}`
	if rec := env.do(t, http.MethodPost, "/cases", "token-1", bad); rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestScoreConsultationEndpoint(t *testing.T) {
	env := newTestEnv(t, &fakeCompleter{response: validScores})
	c := env.seedCase(t)

	body := `{"transcript":"Doctor: What brings you in today?\nPatient: Headaches."}`
	rec := env.do(t, http.MethodPost, "/cases/"+c.ID+"/consultations", "token-1", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp ConsultationResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Overall != 4.0 || resp.Scores["data-gathering"].Score != 4 {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestScoreConsultationEndpoint_EmptyTranscript(t *testing.T) {
	env := newTestEnv(t, &fakeCompleter{response: validScores})
	c := env.seedCase(t)

	for _, body := range []string{`{"transcript":""}`, `{"transcript":"   "}`, `{}`} {
		rec := env.do(t, http.MethodPost, "/cases/"+c.ID+"/consultations", "token-1", body)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %s: expected 400, got %d", body, rec.Code)
		}
	}
}

func TestScoreConsultationEndpoint_UnknownCase(t *testing.T) {
	env := newTestEnv(t, &fakeCompleter{response: validScores})

	rec := env.do(t, http.MethodPost, "/cases/missing/consultations", "token-1", `{"transcript":"Doctor: Hello."}`)
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestScoreConsultationEndpoint_UnusableScores(t *testing.T) {
	env := newTestEnv(t, &fakeCompleter{response: `{"data-gathering":9}`})
	c := env.seedCase(t)

	rec := env.do(t, http.MethodPost, "/cases/"+c.ID+"/consultations", "token-1", `{"transcript":"Doctor: Hello."}`)
	if rec.Code != http.StatusBadGateway {
		t.Errorf("expected 502, got %d", rec.Code)
	}
}

func TestPrivateConsultationHiddenFromOthers(t *testing.T) {
	env := newTestEnv(t, &fakeCompleter{response: validScores})
	c := env.seedCase(t)

	rec := env.do(t, http.MethodPost, "/cases/"+c.ID+"/consultations", "token-1", `{"transcript":"Doctor: Hello."}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	var created ConsultationResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	// Owner sees it.
	if rec := env.do(t, http.MethodGet, "/consultations/"+created.ID, "token-1", ""); rec.Code != http.StatusOK {
		t.Errorf("owner: expected 200, got %d", rec.Code)
	}
	// Others get 404, not 403.
	if rec := env.do(t, http.MethodGet, "/consultations/"+created.ID, "token-2", ""); rec.Code != http.StatusNotFound {
		t.Errorf("non-owner: expected 404, got %d", rec.Code)
	}
}

func TestSharingAndComments(t *testing.T) {
	env := newTestEnv(t, &fakeCompleter{response: validScores})
	c := env.seedCase(t)

	rec := env.do(t, http.MethodPost, "/cases/"+c.ID+"/consultations", "token-1", `{"transcript":"Doctor: Hello."}`)
	var created ConsultationResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	// Comments are forbidden until shared.
	comment := `{"comment":"Good ICE exploration."}`
	if rec := env.do(t, http.MethodPost, "/consultations/"+created.ID+"/comments", "token-2", comment); rec.Code != http.StatusForbidden {
		t.Errorf("comment on private: expected 403, got %d", rec.Code)
	}

	// Only the owner can share.
	if rec := env.do(t, http.MethodPost, "/consultations/"+created.ID+"/share", "token-2", ""); rec.Code != http.StatusForbidden {
		t.Errorf("share by non-owner: expected 403, got %d", rec.Code)
	}
	if rec := env.do(t, http.MethodPost, "/consultations/"+created.ID+"/share", "token-1", ""); rec.Code != http.StatusNoContent {
		t.Errorf("share by owner: expected 204, got %d", rec.Code)
	}

	if rec := env.do(t, http.MethodPost, "/consultations/"+created.ID+"/comments", "token-2", comment); rec.Code != http.StatusCreated {
		t.Errorf("comment on shared: expected 201, got %d", rec.Code)
	}

	feedRec := env.do(t, http.MethodGet, "/shared", "token-2", "")
	var feed []ConsultationResponse
	if err := json.Unmarshal(feedRec.Body.Bytes(), &feed); err != nil {
		t.Fatalf("failed to decode feed: %v", err)
	}
	if len(feed) != 1 {
		t.Errorf("expected 1 shared consultation, got %d", len(feed))
	}
}

func TestAdminEndpoints(t *testing.T) {
	env := newTestEnv(t, &fakeCompleter{response: validScores})

	rec := env.do(t, http.MethodGet, "/admin/stats", "token-1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var stats StatsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &stats); err != nil {
		t.Fatalf("failed to decode stats: %v", err)
	}

	if rec := env.do(t, http.MethodGet, "/admin/llm-health", "token-1", ""); rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestRequestLoggingMiddleware(t *testing.T) {
	env := newTestEnv(t, &fakeCompleter{response: validCase})

	handler := Logging(discard)(CORS(env.mux))

	req := httptest.NewRequest(http.MethodOptions, "/cases", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Errorf("preflight: expected 204, got %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("missing CORS header, got %q", got)
	}
}
