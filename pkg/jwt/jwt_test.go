package jwt

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"social-system/config"

	"github.com/gin-gonic/gin"
	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(expire time.Duration) *JWTService {
	return NewJWTService(config.JWTConfig{Secret: "test-secret", Issuer: "social-system", ExpireTime: expire})
}

func TestIssueAndVerify(t *testing.T) {
	svc := newService(time.Hour)

	token, err := svc.Issue(7, "alice")
	require.NoError(t, err)

	identity, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), identity.UserID)
	assert.Equal(t, "alice", identity.Username)
}

func TestIssue_RequiresUserID(t *testing.T) {
	_, err := newService(time.Hour).Issue(0, "nobody")
	assert.Error(t, err)
}

func TestVerify_Rejects(t *testing.T) {
	svc := newService(time.Hour)
	valid, err := svc.Issue(1, "alice")
	require.NoError(t, err)

	otherSecret, err := NewJWTService(config.JWTConfig{Secret: "other", Issuer: "social-system", ExpireTime: time.Hour}).Issue(1, "alice")
	require.NoError(t, err)

	otherIssuer, err := NewJWTService(config.JWTConfig{Secret: "test-secret", Issuer: "someone-else", ExpireTime: time.Hour}).Issue(1, "alice")
	require.NoError(t, err)

	none, err := jwtv5.NewWithClaims(jwtv5.SigningMethodNone, &Claims{
		UserID:           1,
		RegisteredClaims: jwtv5.RegisteredClaims{Subject: "1", Issuer: "social-system"},
	}).SignedString(jwtv5.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	mismatched, err := jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, &Claims{
		UserID: 2,
		RegisteredClaims: jwtv5.RegisteredClaims{
			Subject:   "1",
			Issuer:    "social-system",
			ExpiresAt: jwtv5.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	tests := map[string]string{
		"empty":            "",
		"garbage":          "not.a.token",
		"tampered":         valid[:len(valid)-2] + "xx",
		"wrong secret":     otherSecret,
		"wrong issuer":     otherIssuer,
		"alg none":         none,
		"subject mismatch": mismatched,
	}
	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Verify(token)
			assert.Error(t, err)
		})
	}
}

func TestVerify_Expiry(t *testing.T) {
	svc := newService(time.Minute)
	issuedAt := time.Now()
	svc.now = func() time.Time { return issuedAt }

	token, err := svc.Issue(3, "carol")
	require.NoError(t, err)

	svc.now = func() time.Time { return issuedAt.Add(2 * time.Minute) }
	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, jwtv5.ErrTokenExpired)
}

func TestVerify_NoExpiryWhenDisabled(t *testing.T) {
	svc := newService(0)
	issuedAt := time.Now()
	svc.now = func() time.Time { return issuedAt }

	token, err := svc.Issue(3, "carol")
	require.NoError(t, err)

	svc.now = func() time.Time { return issuedAt.Add(24 * 365 * time.Hour) }
	identity, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint(3), identity.UserID)
}

func TestAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := newService(time.Hour)
	token, err := svc.Issue(9, "dave")
	require.NoError(t, err)

	reached := false
	router := gin.New()
	router.GET("/protected", svc.AuthMiddleware(), func(c *gin.Context) {
		reached = true
		identity, ok := GetIdentity(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"uid": identity.UserID, "username": identity.Username})
	})

	tests := []struct {
		name   string
		header string
		status int
	}{
		{name: "missing header", header: "", status: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic " + token, status: http.StatusUnauthorized},
		{name: "bearer without token", header: "Bearer ", status: http.StatusUnauthorized},
		{name: "invalid token", header: "Bearer abc.def.ghi", status: http.StatusUnauthorized},
		{name: "valid", header: "Bearer " + token, status: http.StatusOK},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			reached = false
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tc.status, w.Code)
			if tc.status == http.StatusUnauthorized {
				assert.False(t, reached)
				assert.Equal(t, "Invalid Access Token", w.Body.String())
				assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
				return
			}
			assert.True(t, reached)
			assert.JSONEq(t, `{"uid":9,"username":"dave"}`, w.Body.String())
		})
	}
}

func TestGetIdentity_Absent(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	_, ok := GetIdentity(c)
	assert.False(t, ok)
}
