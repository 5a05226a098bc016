package http

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/immxrtalbeast/roomgate/internal/config"
	"github.com/immxrtalbeast/roomgate/internal/domain"
	"github.com/immxrtalbeast/roomgate/internal/service"
)

const (
	userContextKey   = "user"
	accessCookieName = "access_token"
)

// IdentityClaims is what the identity provider asserts about the caller.
// The subject carries the user's uuid.
type IdentityClaims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
}

// Authenticator resolves the caller from a bearer token or the access cookie
// and records the identity reference on first sight.
type Authenticator struct {
	secret []byte
	issuer string
	users  service.UserInteractor
}

func NewAuthenticator(cfg config.AuthConfig, users service.UserInteractor) *Authenticator {
	return &Authenticator{
		secret: []byte(cfg.JWTSecret),
		issuer: cfg.Issuer,
		users:  users,
	}
}

func (a *Authenticator) RequireUser() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		raw := bearerToken(ctx)
		if raw == "" {
			writeError(ctx, fmt.Errorf("%w: authentication required", domain.ErrUnauthenticated))
			return
		}

		user, err := a.parse(raw)
		if err != nil {
			writeError(ctx, err)
			return
		}
		stored, err := a.users.EnsureUser(ctx.Request.Context(), user)
		if err != nil {
			writeError(ctx, err)
			return
		}

		ctx.Set(userContextKey, stored)
		ctx.Next()
	}
}

func (a *Authenticator) parse(raw string) (*domain.User, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if a.issuer != "" {
		opts = append(opts, jwt.WithIssuer(a.issuer))
	}

	var claims IdentityClaims
	_, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		return a.secret, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid or expired token", domain.ErrUnauthenticated)
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil || claims.Username == "" {
		return nil, fmt.Errorf("%w: token carries no identity", domain.ErrUnauthenticated)
	}
	return domain.NewUser(id, claims.Username), nil
}

func bearerToken(ctx *gin.Context) string {
	if header := ctx.GetHeader("Authorization"); header != "" {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	if cookie, err := ctx.Cookie(accessCookieName); err == nil {
		return cookie
	}
	return ""
}

// currentUser returns the caller set by RequireUser.
func currentUser(ctx *gin.Context) (*domain.User, error) {
	v, ok := ctx.Get(userContextKey)
	if !ok {
		return nil, fmt.Errorf("%w: authentication required", domain.ErrUnauthenticated)
	}
	user, ok := v.(*domain.User)
	if !ok {
		return nil, errors.New("unexpected user type in context")
	}
	return user, nil
}
