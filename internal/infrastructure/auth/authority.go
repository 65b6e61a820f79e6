// Package auth implements the delegated bearer-token authorization check.
package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"plansvc/internal/shared/config"
	"plansvc/internal/shared/logger"
)

// Denial reasons returned by Check. An empty string means authorized; callers
// branch on the string, never on an error value.
const (
	ReasonMissingToken            = "missing token"
	ReasonInvalidToken            = "invalid token"
	ReasonExpiredToken            = "expired token"
	ReasonInsufficientPermissions = "insufficient permissions"
)

// Internal cause tags. The outward reason deliberately merges malformed tokens
// and authority outages into ReasonInvalidToken; these keep the distinction in
// the logs.
const (
	causeParse        = "token_parse"
	causeRemoteCall   = "authority_unreachable"
	causeRemoteDecode = "authority_bad_response"
	causeRemoteCode   = "authority_rejected"
)

// AuthorityClient validates a bearer token locally (signature, expiry) and
// then confirms it with the remote token authority.
type AuthorityClient struct {
	secret           []byte
	validateURL      string
	requiredUserType int
	httpClient       *http.Client
	logger           logger.Interface
}

func NewAuthorityClient(cfg *config.AuthorityConfig, logger logger.Interface) *AuthorityClient {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &AuthorityClient{
		secret:           []byte(cfg.Secret),
		validateURL:      cfg.ValidateURL,
		requiredUserType: cfg.RequiredUserType,
		httpClient:       &http.Client{Timeout: timeout},
		logger:           logger,
	}
}

type validateResponse struct {
	Code     int  `json:"code"`
	UserType *int `json:"userType"`
}

// Check validates the Authorization header value and returns an empty string
// when the caller is authorized, or a human-readable denial reason.
//
// The exp claim is an absolute epoch-millisecond timestamp, not the usual
// epoch seconds. The library's own expiry validation reads it as seconds and
// therefore never trips; the millisecond comparison below is the real check.
func (c *AuthorityClient) Check(ctx context.Context, authHeader string) string {
	if authHeader == "" {
		return ReasonMissingToken
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[1] == "" {
		c.logger.Warnw("malformed authorization header", "cause", causeParse)
		return ReasonInvalidToken
	}

	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return c.secret, nil
	})
	if err != nil {
		c.logger.Warnw("token verification failed", "cause", causeParse, "error", err)
		return ReasonInvalidToken
	}

	if exp, ok := claims["exp"].(float64); ok {
		if time.Now().UnixMilli() > int64(exp) {
			return ReasonExpiredToken
		}
	}

	result, reason := c.confirmRemotely(ctx, authHeader)
	if reason != "" {
		return reason
	}

	if result.UserType != nil && *result.UserType != c.requiredUserType {
		return ReasonInsufficientPermissions
	}

	return ""
}

func (c *AuthorityClient) confirmRemotely(ctx context.Context, authHeader string) (*validateResponse, string) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.validateURL, nil)
	if err != nil {
		c.logger.Errorw("failed to build authority request", "cause", causeRemoteCall, "error", err)
		return nil, ReasonInvalidToken
	}
	req.Header.Set("Authorization", authHeader)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Errorw("token authority unreachable", "cause", causeRemoteCall, "error", err)
		return nil, ReasonInvalidToken
	}
	defer resp.Body.Close()

	var result validateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		c.logger.Errorw("failed to decode authority response", "cause", causeRemoteDecode, "error", err)
		return nil, ReasonInvalidToken
	}

	if result.Code != http.StatusOK {
		c.logger.Warnw("token rejected by authority", "cause", causeRemoteCode, "code", result.Code)
		return nil, ReasonInvalidToken
	}

	return &result, ""
}
