package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/gamegestor/catalog-api/internal/core/auth"
)

func testTokens() *auth.TokenService {
	return auth.NewTokenService("test-secret", time.Hour)
}

func TestAuth_ValidToken(t *testing.T) {
	e := echo.New()
	tokens := testTokens()
	signed, err := tokens.Issue("id1", "alice", "admin")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Auth(tokens, zerolog.Nop())(func(c echo.Context) error {
		called = true
		claims, ok := Identity(c)
		if !ok {
			t.Fatalf("identity not set")
		}
		if claims.Username != "alice" || claims.Role != "admin" || claims.Subject != "id1" {
			t.Fatalf("unexpected claims: %+v", claims)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestAuth_BearerPrefixOptional(t *testing.T) {
	e := echo.New()
	tokens := testTokens()
	signed, err := tokens.Issue("id1", "alice", "user")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	// Raw token without the Bearer prefix is accepted.
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", signed)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Auth(tokens, zerolog.Nop())(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(testTokens(), zerolog.Nop())(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuth_RejectsInvalidTokens(t *testing.T) {
	e := echo.New()
	tokens := testTokens()

	expired, err := tokens.IssueWithTTL("id1", "alice", "user", -time.Second)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	otherSecret, err := auth.NewTokenService("other-secret", time.Hour).Issue("id1", "alice", "user")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	cases := map[string]string{
		"garbage":       "Bearer not-a-token",
		"expired":       "Bearer " + expired,
		"bad signature": "Bearer " + otherSecret,
	}

	for name, header := range cases {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", header)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		handler := Auth(tokens, zerolog.Nop())(func(c echo.Context) error {
			t.Fatalf("%s: should not reach next", name)
			return nil
		})

		if err := handler(c); err != nil {
			e.HTTPErrorHandler(err, c)
		}
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401, got %d", name, rec.Code)
		}
	}
}
