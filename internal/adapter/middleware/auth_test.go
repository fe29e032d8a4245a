package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

var testSecret = []byte("test-secret")

func makeToken(t *testing.T, secret []byte, sub, role, first, last, email string) string {
	t.Helper()
	claims := &Claims{
		Role:      role,
		FirstName: first,
		LastName:  last,
		Email:     email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sub,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func runAuth(t *testing.T, authorization string) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/applications", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := Auth(testSecret)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	if err := h(c); err != nil {
		t.Fatalf("middleware error: %v", err)
	}
	return rec, c
}

func TestAuth_ValidToken(t *testing.T) {
	token := makeToken(t, testSecret, "user-123", "user", "Ravi", "Kumar", "ravi@example.com")
	rec, c := runAuth(t, "Bearer "+token)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body=%s)", rec.Code, rec.Body.String())
	}
	if UserID(c) != "user-123" {
		t.Errorf("UserID = %q", UserID(c))
	}
	if Role(c) != "user" {
		t.Errorf("Role = %q", Role(c))
	}
	if DisplayName(c) != "Ravi Kumar" {
		t.Errorf("DisplayName = %q", DisplayName(c))
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	rec, _ := runAuth(t, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestAuth_MalformedHeader(t *testing.T) {
	rec, _ := runAuth(t, "Token abc")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestAuth_WrongSecret(t *testing.T) {
	token := makeToken(t, []byte("other-secret"), "user-123", "user", "", "", "")
	rec, _ := runAuth(t, "Bearer "+token)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestAuth_ExpiredToken(t *testing.T) {
	claims := &Claims{
		Role: "user",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-123",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	rec, _ := runAuth(t, "Bearer "+signed)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestAuth_MissingSubject(t *testing.T) {
	token := makeToken(t, testSecret, "", "user", "", "", "")
	rec, _ := runAuth(t, "Bearer "+token)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestRequireAdmin(t *testing.T) {
	cases := map[string]int{
		"admin":       http.StatusOK,
		"super_admin": http.StatusOK,
		"user":        http.StatusForbidden,
		"":            http.StatusForbidden,
	}
	for role, want := range cases {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/admin/applications", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.Set(ContextRole, role)

		h := RequireAdmin(func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})
		if err := h(c); err != nil {
			t.Fatalf("middleware error: %v", err)
		}
		if rec.Code != want {
			t.Errorf("role %q: status = %d, want %d", role, rec.Code, want)
		}
	}
}

func TestDisplayName_FallsBackToEmail(t *testing.T) {
	token := makeToken(t, testSecret, "user-123", "user", "", "", "ravi@example.com")
	_, c := runAuth(t, "Bearer "+token)
	if DisplayName(c) != "ravi@example.com" {
		t.Errorf("DisplayName = %q, want the email fallback", DisplayName(c))
	}
}
