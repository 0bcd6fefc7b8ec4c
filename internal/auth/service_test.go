package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/paceup/paceup/backend-go/internal/typeid"
)

func TestTokenRoundTrip(t *testing.T) {
	s := NewService(nil, "test-secret")
	want := typeid.NewUserID()

	token, err := s.issueToken(want)
	require.NoError(t, err)

	got, err := s.ValidateToken(token)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	issuer := NewService(nil, "secret-a")
	verifier := NewService(nil, "secret-b")

	token, err := issuer.issueToken(typeid.NewUserID())
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	require.Error(t, err)
}

func TestValidateTokenRejectsNonUserSubject(t *testing.T) {
	s := NewService(nil, "test-secret")

	for _, sub := range []string{typeid.NewArticleID(), "not-a-typeid", ""} {
		token, err := s.issueToken(sub)
		require.NoError(t, err)

		_, err = s.ValidateToken(token)
		require.Error(t, err, "subject %q must not validate", sub)
	}
}

func TestValidateTokenRejectsNonHMAC(t *testing.T) {
	s := NewService(nil, "test-secret")

	// alg=none tokens must never validate.
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": typeid.NewUserID()})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = s.ValidateToken(token)
	require.Error(t, err)
}

func TestValidateTokenGarbage(t *testing.T) {
	s := NewService(nil, "test-secret")
	_, err := s.ValidateToken("not-a-token")
	require.Error(t, err)
}

func TestAuthMiddleware(t *testing.T) {
	s := NewService(nil, "test-secret")
	userID := typeid.NewUserID()
	token, err := s.issueToken(userID)
	require.NoError(t, err)

	var gotUserID string
	h := s.AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID = UserIDFromContext(r.Context())
	}))

	req := httptest.NewRequest("GET", "/api/articles", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, userID, gotUserID)
}

func TestAuthMiddlewareRejects(t *testing.T) {
	s := NewService(nil, "test-secret")
	h := s.AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run without a valid token")
	}))

	for name, header := range map[string]string{
		"no header":    "",
		"wrong scheme": "Basic abc123",
		"bad token":    "Bearer garbage",
	} {
		req := httptest.NewRequest("GET", "/api/articles", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code, name)
	}
}

func TestValidateRegistration(t *testing.T) {
	base := credentials{Email: "coach@paceup.dev", Password: "longenough", DisplayName: "Coach Mirela"}
	require.Empty(t, validateRegistration(base))

	cases := []struct {
		name   string
		mutate func(*credentials)
	}{
		{"missing email", func(c *credentials) { c.Email = "" }},
		{"no at sign", func(c *credentials) { c.Email = "coach.paceup.dev" }},
		{"missing display name", func(c *credentials) { c.DisplayName = "" }},
		{"short password", func(c *credentials) { c.Password = "short" }},
	}
	for _, tc := range cases {
		c := base
		tc.mutate(&c)
		require.NotEmpty(t, validateRegistration(c), tc.name)
	}
}
