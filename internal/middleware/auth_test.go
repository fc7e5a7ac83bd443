package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "s3cret"

func signToken(t *testing.T, method jwt.SigningMethod, key interface{}, role string, expiresIn time.Duration) string {
	t.Helper()
	token := jwt.NewWithClaims(method, AdminClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "ops@agencia.example.com",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
		},
	})
	signed, err := token.SignedString(key)
	require.NoError(t, err)
	return signed
}

func TestAdminAuth(t *testing.T) {
	tests := []struct {
		name       string
		secret     string
		header     string
		wantStatus int
	}{
		{
			name:       "valid admin token",
			secret:     testSecret,
			header:     "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), RoleAdmin, time.Hour),
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing header",
			secret:     testSecret,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "not a bearer",
			secret:     testSecret,
			header:     "Basic YWRtaW46YWRtaW4=",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong secret",
			secret:     testSecret,
			header:     "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte("other"), RoleAdmin, time.Hour),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "other signing method",
			secret:     testSecret,
			header:     "Bearer " + signToken(t, jwt.SigningMethodHS512, []byte(testSecret), RoleAdmin, time.Hour),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "expired",
			secret:     testSecret,
			header:     "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), RoleAdmin, -time.Minute),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "not an admin",
			secret:     testSecret,
			header:     "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), "customer", time.Hour),
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "no secret configured",
			header:     "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), RoleAdmin, time.Hour),
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			e.Use(AdminAuth(tt.secret))
			e.GET("/admin", func(c echo.Context) error {
				assert.Equal(t, "ops@agencia.example.com", c.Get(ContextSubject))
				return c.NoContent(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
