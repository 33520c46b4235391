package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/private", SessionMiddleware(testSecret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"session_id": c.GetString(SessionIDKey)})
	})
	return r
}

func TestSessionTokenRoundTrip(t *testing.T) {
	token, err := GenerateSessionToken(testSecret, "abc", time.Hour)
	require.NoError(t, err)

	id, err := ParseSessionToken(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, "abc", id)

	_, err = ParseSessionToken("other-secret", token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseSessionTokenRejectsOtherSigningMethods(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"session_id": "abc",
		"iss":        tokenIssuer,
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ParseSessionToken(testSecret, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestSessionMiddleware(t *testing.T) {
	valid, err := GenerateSessionToken(testSecret, "abc", time.Hour)
	require.NoError(t, err)
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		SessionID: "abc",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)
	noSession, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"iss": tokenIssuer}).
		SignedString([]byte(testSecret))
	require.NoError(t, err)

	tests := []struct {
		name           string
		header         string
		expectedStatus int
		expectedMsg    string
	}{
		{"Missing header", "", http.StatusUnauthorized, "Authorization header is required"},
		{"Wrong scheme", "Basic " + valid, http.StatusUnauthorized, "Invalid authorization header format"},
		{"Expired token", "Bearer " + expired, http.StatusUnauthorized, "Invalid or expired token"},
		{"No session claim", "Bearer " + noSession, http.StatusUnauthorized, "Invalid or expired token"},
		{"Valid token", "Bearer " + valid, http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/private", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			newRouter().ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			var response map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			if tt.expectedMsg != "" {
				assert.Equal(t, tt.expectedMsg, response["message"])
				assert.Equal(t, "error", response["status"])
			} else {
				assert.Equal(t, "abc", response["session_id"])
			}
		})
	}
}
