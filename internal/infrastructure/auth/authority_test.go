package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plansvc/internal/shared/config"
	"plansvc/internal/shared/logger"
)

const testSecret = "test-secret"

func newTestClient(t *testing.T, validateURL string) *AuthorityClient {
	t.Helper()
	return NewAuthorityClient(&config.AuthorityConfig{
		Secret:           testSecret,
		ValidateURL:      validateURL,
		RequiredUserType: 3,
		TimeoutSeconds:   2,
	}, noopLogger{})
}

// signToken builds an HS256 token whose exp claim is epoch milliseconds.
func signToken(t *testing.T, secret string, expMillis int64) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user": "tester",
		"exp":  expMillis,
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func authorityStub(t *testing.T, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestCheck_MissingHeader(t *testing.T) {
	client := newTestClient(t, "http://unused")

	assert.Equal(t, ReasonMissingToken, client.Check(context.Background(), ""))
}

func TestCheck_MalformedHeader(t *testing.T) {
	client := newTestClient(t, "http://unused")

	assert.Equal(t, ReasonInvalidToken, client.Check(context.Background(), "Bearer"))
	assert.Equal(t, ReasonInvalidToken, client.Check(context.Background(), "Bearer "))
	assert.Equal(t, ReasonInvalidToken, client.Check(context.Background(), "Bearer not-a-jwt"))
}

func TestCheck_WrongSignature(t *testing.T) {
	client := newTestClient(t, "http://unused")
	token := signToken(t, "other-secret", time.Now().Add(time.Hour).UnixMilli())

	assert.Equal(t, ReasonInvalidToken, client.Check(context.Background(), "Bearer "+token))
}

func TestCheck_ExpiredMillis(t *testing.T) {
	client := newTestClient(t, "http://unused")
	token := signToken(t, testSecret, time.Now().Add(-time.Minute).UnixMilli())

	assert.Equal(t, ReasonExpiredToken, client.Check(context.Background(), "Bearer "+token))
}

func TestCheck_AuthorityAccepts(t *testing.T) {
	srv := authorityStub(t, `{"code":200,"userType":3}`)
	client := newTestClient(t, srv.URL)
	token := signToken(t, testSecret, time.Now().Add(time.Hour).UnixMilli())

	assert.Equal(t, "", client.Check(context.Background(), "Bearer "+token))
}

func TestCheck_AuthorityOmitsUserType(t *testing.T) {
	srv := authorityStub(t, `{"code":200}`)
	client := newTestClient(t, srv.URL)
	token := signToken(t, testSecret, time.Now().Add(time.Hour).UnixMilli())

	assert.Equal(t, "", client.Check(context.Background(), "Bearer "+token))
}

func TestCheck_AuthorityRejectsCode(t *testing.T) {
	srv := authorityStub(t, `{"code":401}`)
	client := newTestClient(t, srv.URL)
	token := signToken(t, testSecret, time.Now().Add(time.Hour).UnixMilli())

	assert.Equal(t, ReasonInvalidToken, client.Check(context.Background(), "Bearer "+token))
}

func TestCheck_WrongRole(t *testing.T) {
	srv := authorityStub(t, `{"code":200,"userType":1}`)
	client := newTestClient(t, srv.URL)
	token := signToken(t, testSecret, time.Now().Add(time.Hour).UnixMilli())

	assert.Equal(t, ReasonInsufficientPermissions, client.Check(context.Background(), "Bearer "+token))
}

func TestCheck_AuthorityUnreachable(t *testing.T) {
	srv := authorityStub(t, `{"code":200}`)
	srv.Close()
	client := newTestClient(t, srv.URL)
	token := signToken(t, testSecret, time.Now().Add(time.Hour).UnixMilli())

	// Network failures collapse into the generic invalid-token reason.
	assert.Equal(t, ReasonInvalidToken, client.Check(context.Background(), "Bearer "+token))
}

type noopLogger struct{}

func (n noopLogger) With(args ...any) logger.Interface     { return n }
func (n noopLogger) Named(name string) logger.Interface    { return n }
func (noopLogger) Debug(msg string, args ...any)                   {}
func (noopLogger) Info(msg string, args ...any)                    {}
func (noopLogger) Warn(msg string, args ...any)                    {}
func (noopLogger) Error(msg string, args ...any)                   {}
func (noopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Errorw(msg string, keysAndValues ...interface{}) {}
