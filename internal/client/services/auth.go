// Package services contains the application services of the storefront
// client: authentication, catalog refresh, cart management and the checkout
// state machine. Services coordinate the remote gateway and the state store;
// they hold no UI concerns.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/example/coursemart/internal/client/api"
	"github.com/example/coursemart/internal/client/models"
	"github.com/example/coursemart/internal/client/store"
	"github.com/example/coursemart/internal/logging"
)

// AuthService manages the authentication session.
//
// Contract:
//   - Login: authenticate against the backend, arm the gateway token and
//     persist the session.
//   - Register: create an account; the user still has to log in afterwards.
//   - Logout: clear the persisted session and the gateway token.
//   - Restore: re-arm a previously persisted session on startup, discarding
//     it when the token has expired.
type AuthService interface {
	Login(ctx context.Context, email string, password []byte) (models.AuthSession, error)
	Register(ctx context.Context, email string, password []byte) error
	Logout(ctx context.Context) error
	Restore(ctx context.Context) models.AuthSession
}

type authService struct {
	client api.Client
	store  *store.Store
	log    logging.Logger
}

func NewAuthService(client api.Client, st *store.Store, log logging.Logger) AuthService {
	return &authService{client: client, store: st, log: log}
}

func (a *authService) Login(ctx context.Context, email string, password []byte) (models.AuthSession, error) {
	token, err := a.client.Login(ctx, email, password)
	if err != nil {
		return models.Anonymous(), fmt.Errorf("login error: %w", err)
	}

	session := sessionFromToken(token, email)
	a.client.SetToken(token)
	a.store.Auth.Set(ctx, session)
	return session, nil
}

func (a *authService) Register(ctx context.Context, email string, password []byte) error {
	if err := a.client.Register(ctx, email, password); err != nil {
		return fmt.Errorf("register error: %w", err)
	}
	return nil
}

func (a *authService) Logout(ctx context.Context) error {
	a.client.SetToken("")
	a.store.Auth.Set(ctx, models.Anonymous())
	return nil
}

func (a *authService) Restore(ctx context.Context) models.AuthSession {
	session := a.store.Auth.Get()
	if !session.IsAuthenticated || session.Token == "" {
		return models.Anonymous()
	}
	if tokenExpired(session.Token, time.Now()) {
		a.log.Info(ctx, "persisted session expired, discarding")
		a.store.Auth.Set(ctx, models.Anonymous())
		return models.Anonymous()
	}
	a.client.SetToken(session.Token)
	return session
}

// sessionFromToken builds the session from the token's identity claims. The
// token is parsed without signature verification: the backend is the
// authority, the client only reads what it was handed. Claims that cannot be
// read degrade to the email the user logged in with.
func sessionFromToken(token, email string) models.AuthSession {
	user := &models.User{Email: email}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err == nil {
		if sub, err := claims.GetSubject(); err == nil && sub != "" {
			user.ID = sub
		}
		if e, ok := claims["email"].(string); ok && e != "" {
			user.Email = e
		}
		if n, ok := claims["name"].(string); ok {
			user.Name = n
		}
	}

	return models.AuthSession{User: user, Token: token, IsAuthenticated: true}
}

// tokenExpired reports whether the token carries an exp claim in the past.
// Tokens without a readable exp are treated as still valid; the backend will
// reject them with a 401 if they are not.
func tokenExpired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(now)
}
