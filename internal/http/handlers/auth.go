package handlers

import (
	"context"
	"fmt"
	"html"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// AuthSessionCookie names the cookie carrying the provider access token.
const AuthSessionCookie = "hcm_auth"

// AuthCallback handles the provider's OAuth redirect: it exchanges the
// one-time code for a session and forwards the user to their post-login
// destination. Only site-relative destinations are honored.
func (a *App) AuthCallback(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	next := r.URL.Query().Get("next")

	if code == "" {
		a.redirectAuthError(w, r, "Missing code in callback URL")
		return
	}
	if a.Auth == nil {
		a.redirectAuthError(w, r, "Auth provider is not configured")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()
	session, err := a.Auth.ExchangeCode(ctx, code)
	if err != nil {
		a.Logger.Error().Err(err).Msg("auth: code exchange failed")
		a.redirectAuthError(w, r, err.Error())
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     AuthSessionCookie,
		Value:    session.AccessToken,
		Path:     "/",
		MaxAge:   session.ExpiresIn,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, sanitizeNext(next), http.StatusFound)
}

// AuthError renders the message carried by an error redirect so the target
// exists even without a frontend route for it.
func (a *App) AuthError(w http.ResponseWriter, r *http.Request) {
	msg := r.URL.Query().Get("error")
	if msg == "" {
		msg = "Authentication failed"
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "<h1>Sign-in error</h1><p>%s</p>", html.EscapeString(msg))
}

func (a *App) redirectAuthError(w http.ResponseWriter, r *http.Request, message string) {
	http.Redirect(w, r, "/auth/error?error="+encodeQueryMessage(message), http.StatusFound)
}

// sanitizeNext allows only site-relative redirect targets. Anything absolute
// or protocol-relative falls back to the site root.
func sanitizeNext(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return "/"
	}
	return next
}

// encodeQueryMessage escapes a human-readable message for a query parameter,
// keeping spaces as %20 rather than '+'.
func encodeQueryMessage(message string) string {
	return strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
}
