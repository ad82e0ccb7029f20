package http

import (
	"bytes"
	"encoding/json"
	"errors"
	nethttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/safeplace/safeplace-server/internal/adapters/security"
	"github.com/safeplace/safeplace-server/internal/application"
	"github.com/safeplace/safeplace-server/internal/testsupport"
)

type testServer struct {
	router     nethttp.Handler
	completion *testsupport.StaticCompletion
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	signer, err := security.NewJWTSigner("handler-test-secret")
	if err != nil {
		t.Fatalf("init signer: %v", err)
	}

	completion := &testsupport.StaticCompletion{Reply: "That sounds hard. I'm here."}
	svc := application.NewService(application.Dependencies{
		Config: application.Config{
			TokenTTL:  7 * 24 * time.Hour,
			ListLimit: 200,
		},
		Accounts:   testsupport.NewMemoryAccounts(),
		Turns:      testsupport.NewMemoryTurns(),
		Journal:    testsupport.NewMemoryJournal(),
		Completion: completion,
		Hasher:     security.NewBcryptHasher(4),
		Signer:     signer,
	})

	return &testServer{
		router:     NewRouter(NewHandler(svc, nil)),
		completion: completion,
	}
}

func (s *testServer) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func decodeResponse[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return out
}

func (s *testServer) registerAccount(t *testing.T, email string) application.AuthResponse {
	t.Helper()
	rec := s.do(t, nethttp.MethodPost, "/api/register", "", map[string]string{
		"email":    email,
		"password": "pw123",
	})
	if rec.Code != nethttp.StatusCreated {
		t.Fatalf("register returned %d: %s", rec.Code, rec.Body.String())
	}
	return decodeResponse[application.AuthResponse](t, rec)
}

func TestRegisterChatHistoryFlow(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)
	auth := s.registerAccount(t, "a@x.com")
	if auth.Token == "" {
		t.Fatalf("expected session token in register response")
	}

	chatRec := s.do(t, nethttp.MethodPost, "/api/chat", auth.Token, map[string]string{"message": "hello"})
	if chatRec.Code != nethttp.StatusOK {
		t.Fatalf("chat returned %d: %s", chatRec.Code, chatRec.Body.String())
	}
	chatRes := decodeResponse[application.ChatResponse](t, chatRec)
	if chatRes.Reply == "" {
		t.Fatalf("expected non-empty reply")
	}

	histRec := s.do(t, nethttp.MethodGet, "/api/chat", auth.Token, nil)
	if histRec.Code != nethttp.StatusOK {
		t.Fatalf("history returned %d: %s", histRec.Code, histRec.Body.String())
	}
	turns := decodeResponse[[]turnResponse](t, histRec)
	if len(turns) != 2 {
		t.Fatalf("expected 2 turns, got %d", len(turns))
	}
	if turns[0].Sender != "user" || turns[0].Text != "hello" {
		t.Fatalf("unexpected first turn: %+v", turns[0])
	}
	if turns[1].Sender != "bot" || turns[1].Text != chatRes.Reply {
		t.Fatalf("unexpected second turn: %+v", turns[1])
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)
	for _, tc := range []struct {
		method string
		path   string
		body   any
	}{
		{nethttp.MethodPost, "/api/chat", map[string]string{"message": "hi"}},
		{nethttp.MethodGet, "/api/chat", nil},
		{nethttp.MethodPost, "/api/journal", map[string]string{"text": "hi"}},
		{nethttp.MethodGet, "/api/journal", nil},
		{nethttp.MethodGet, "/api/journal/trend", nil},
	} {
		rec := s.do(t, tc.method, tc.path, "", tc.body)
		if rec.Code != nethttp.StatusUnauthorized {
			t.Fatalf("%s %s without token returned %d", tc.method, tc.path, rec.Code)
		}
	}
}

func TestRejectsTamperedToken(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)
	auth := s.registerAccount(t, "tamper@x.com")

	rec := s.do(t, nethttp.MethodGet, "/api/chat", auth.Token+"x", nil)
	if rec.Code != nethttp.StatusUnauthorized {
		t.Fatalf("tampered token returned %d", rec.Code)
	}
}

func TestRegisterDuplicateReturnsBadRequest(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)
	s.registerAccount(t, "dup@x.com")

	rec := s.do(t, nethttp.MethodPost, "/api/register", "", map[string]string{
		"email":    "dup@x.com",
		"password": "pw123",
	})
	if rec.Code != nethttp.StatusBadRequest {
		t.Fatalf("duplicate register returned %d", rec.Code)
	}
	body := decodeResponse[map[string]string](t, rec)
	if body["error"] == "" {
		t.Fatalf("expected error message in body, got %s", rec.Body.String())
	}
}

func TestChatValidationAndUpstreamFailure(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)
	auth := s.registerAccount(t, "chatfail@x.com")

	rec := s.do(t, nethttp.MethodPost, "/api/chat", auth.Token, map[string]string{"message": ""})
	if rec.Code != nethttp.StatusBadRequest {
		t.Fatalf("empty message returned %d", rec.Code)
	}

	s.completion.Err = errors.New("upstream down")
	rec = s.do(t, nethttp.MethodPost, "/api/chat", auth.Token, map[string]string{"message": "hello"})
	if rec.Code != nethttp.StatusBadGateway {
		t.Fatalf("upstream failure returned %d", rec.Code)
	}

	s.completion.Err = nil
	histRec := s.do(t, nethttp.MethodGet, "/api/chat", auth.Token, nil)
	turns := decodeResponse[[]turnResponse](t, histRec)
	if len(turns) != 0 {
		t.Fatalf("failed send must not leave turns behind, got %d", len(turns))
	}
}

func TestJournalEndpoints(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)
	auth := s.registerAccount(t, "journal@x.com")

	rec := s.do(t, nethttp.MethodPost, "/api/journal", auth.Token, map[string]any{"text": "calm evening", "mood": 4})
	if rec.Code != nethttp.StatusCreated {
		t.Fatalf("add entry returned %d: %s", rec.Code, rec.Body.String())
	}
	created := decodeResponse[entryResponse](t, rec)
	if created.Mood != 4 || created.Text != "calm evening" {
		t.Fatalf("unexpected created entry: %+v", created)
	}

	rec = s.do(t, nethttp.MethodPost, "/api/journal", auth.Token, map[string]any{"mood": 4})
	if rec.Code != nethttp.StatusBadRequest {
		t.Fatalf("missing text returned %d", rec.Code)
	}

	rec = s.do(t, nethttp.MethodPost, "/api/journal", auth.Token, map[string]any{"text": "second"})
	if rec.Code != nethttp.StatusCreated {
		t.Fatalf("add second entry returned %d", rec.Code)
	}

	listRec := s.do(t, nethttp.MethodGet, "/api/journal", auth.Token, nil)
	entries := decodeResponse[[]entryResponse](t, listRec)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Text != "second" {
		t.Fatalf("entries should be newest first, got %+v", entries)
	}

	trendRec := s.do(t, nethttp.MethodGet, "/api/journal/trend", auth.Token, nil)
	if trendRec.Code != nethttp.StatusOK {
		t.Fatalf("trend returned %d", trendRec.Code)
	}
}

func TestLivenessRoutes(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)
	for _, path := range []string{"/api", "/healthz", "/readyz"} {
		rec := s.do(t, nethttp.MethodGet, path, "", nil)
		if rec.Code != nethttp.StatusOK {
			t.Fatalf("%s returned %d", path, rec.Code)
		}
	}
}
