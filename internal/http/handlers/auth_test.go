package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dravidKumar007/hair-Cut-Model/internal/auth"
)

func TestAuthCallbackMissingCode(t *testing.T) {
	app := newTestApp(t, nil)
	rec := httptest.NewRecorder()
	app.AuthCallback(rec, httptest.NewRequest(http.MethodGet, "/auth/callback", nil))

	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", rec.Code)
	}
	want := "/auth/error?error=Missing%20code%20in%20callback%20URL"
	if got := rec.Header().Get("Location"); got != want {
		t.Fatalf("Location = %q, want %q", got, want)
	}
}

func newAuthProvider(t *testing.T) *auth.Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"access_token":"at-123","refresh_token":"rt","token_type":"bearer","expires_in":3600}`)
	}))
	t.Cleanup(srv.Close)
	return auth.NewClient(auth.Options{BaseURL: srv.URL})
}

func TestAuthCallbackRejectsExternalRedirect(t *testing.T) {
	app := newTestApp(t, nil)
	app.Auth = newAuthProvider(t)

	rec := httptest.NewRecorder()
	app.AuthCallback(rec, httptest.NewRequest(http.MethodGet, "/auth/callback?code=abc&next=https://evil.example", nil))

	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", rec.Code)
	}
	if got := rec.Header().Get("Location"); got != "/" {
		t.Fatalf("Location = %q, want /", got)
	}
}

func TestAuthCallbackHonorsRelativeNext(t *testing.T) {
	app := newTestApp(t, nil)
	app.Auth = newAuthProvider(t)

	rec := httptest.NewRecorder()
	app.AuthCallback(rec, httptest.NewRequest(http.MethodGet, "/auth/callback?code=abc&next=/studio", nil))

	if got := rec.Header().Get("Location"); got != "/studio" {
		t.Fatalf("Location = %q, want /studio", got)
	}
	cookies := rec.Result().Cookies()
	var found bool
	for _, c := range cookies {
		if c.Name == AuthSessionCookie && c.Value == "at-123" {
			found = true
		}
	}
	if !found {
		t.Fatalf("session cookie not set: %+v", cookies)
	}
}

func TestAuthCallbackExchangeFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"error_description":"code expired"}`)
	}))
	defer srv.Close()

	app := newTestApp(t, nil)
	app.Auth = auth.NewClient(auth.Options{BaseURL: srv.URL})

	rec := httptest.NewRecorder()
	app.AuthCallback(rec, httptest.NewRequest(http.MethodGet, "/auth/callback?code=stale", nil))

	loc := rec.Header().Get("Location")
	if !strings.HasPrefix(loc, "/auth/error?error=") || !strings.Contains(loc, "code%20expired") {
		t.Fatalf("Location = %q, want error redirect with provider message", loc)
	}
}

func TestSanitizeNext(t *testing.T) {
	tests := []struct {
		next string
		want string
	}{
		{next: "", want: "/"},
		{next: "/", want: "/"},
		{next: "/studio", want: "/studio"},
		{next: "https://evil.example", want: "/"},
		{next: "//evil.example/path", want: "/"},
		{next: "studio", want: "/"},
	}
	for _, tt := range tests {
		if got := sanitizeNext(tt.next); got != tt.want {
			t.Fatalf("sanitizeNext(%q) = %q, want %q", tt.next, got, tt.want)
		}
	}
}

func TestAuthErrorPageEscapesMessage(t *testing.T) {
	app := newTestApp(t, nil)
	rec := httptest.NewRecorder()
	app.AuthError(rec, httptest.NewRequest(http.MethodGet, "/auth/error?error=%3Cscript%3E", nil))

	if body := rec.Body.String(); strings.Contains(body, "<script>") {
		t.Fatalf("message not escaped: %s", body)
	}
}
