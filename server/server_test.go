package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/journal-app/site/handlers"
)

func do(t *testing.T, req *http.Request) (*http.Response, string) {
	t.Helper()
	resp, err := New().Test(req, -1)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func TestRoutes(t *testing.T) {
	require.NoError(t, handlers.InitPageCache())

	tests := []struct {
		name         string
		method       string
		path         string
		expectedCode int
		contains     string
	}{
		{"terms", "GET", "/terms", http.StatusOK, "1. User Eligibility &amp; Age Restrictions"},
		{"sitemap", "GET", "/sitemap.xml", http.StatusOK, "/terms</loc>"},
		{"health", "GET", "/health", http.StatusOK, `"sections":10`},
		{"unknown page", "GET", "/journal", http.StatusNotFound, "Error 404"},
		{"bad display mode", "POST", "/display-mode/blue", http.StatusBadRequest, "Unknown display mode: blue"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := do(t, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.expectedCode, resp.StatusCode)
			assert.Contains(t, body, tt.contains)
		})
	}
}

func TestRootRedirectsToTerms(t *testing.T) {
	resp, _ := do(t, httptest.NewRequest("GET", "/", nil))
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/terms", resp.Header.Get("Location"))
}

func TestDisplayModeRoundTrip(t *testing.T) {
	require.NoError(t, handlers.InitPageCache())
	app := New()

	// choose dark without htmx: cookie + redirect
	resp, err := app.Test(httptest.NewRequest("POST", "/display-mode/dark", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	cookies := resp.Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "display_mode", cookies[0].Name)
	assert.Equal(t, "dark", cookies[0].Value)

	// follow the redirect carrying the cookie
	req := httptest.NewRequest("GET", "/terms", nil)
	req.AddCookie(cookies[0])
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.HasPrefix(string(body), "<!doctype html>"))
	assert.Contains(t, string(body), `data-display-mode="dark"`)
	assert.Equal(t, 1, strings.Count(string(body), "window.scrollTo(0, 0)"))
}
