package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt"
	"google.golang.org/api/identitytoolkit/v3"
	"google.golang.org/api/option"
)

// Identity is the result of a successful email/password sign-in.
type Identity struct {
	IDToken string
	UID     string
	Email   string
}

// IdentityProvider exchanges credentials for an identity token.
type IdentityProvider interface {
	SignIn(ctx context.Context, email, password string) (*Identity, error)
}

// FirebaseIdentity signs users in through the Identity Toolkit API using
// the project's web API key.
type FirebaseIdentity struct {
	service *identitytoolkit.Service
}

func NewFirebaseIdentity(ctx context.Context, apiKey string, opts ...option.ClientOption) (*FirebaseIdentity, error) {
	opts = append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)
	svc, err := identitytoolkit.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("identity toolkit client: %w", err)
	}
	return &FirebaseIdentity{service: svc}, nil
}

func (f *FirebaseIdentity) SignIn(ctx context.Context, email, password string) (*Identity, error) {
	resp, err := f.service.Relyingparty.VerifyPassword(&identitytoolkit.IdentitytoolkitRelyingpartyVerifyPasswordRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	}).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("sign in: %w", err)
	}
	if resp.IdToken == "" {
		return nil, errors.New("sign in: empty id token")
	}

	uid := resp.LocalId
	if uid == "" {
		if uid, err = TokenUID(resp.IdToken); err != nil {
			return nil, err
		}
	}

	return &Identity{IDToken: resp.IdToken, UID: uid, Email: resp.Email}, nil
}

// TokenUID reads the uid claim of an identity token without verifying it.
// The token comes straight from the identity provider.
func TokenUID(token string) (string, error) {
	claims := jwt.MapClaims{}
	if _, _, err := (&jwt.Parser{}).ParseUnverified(token, claims); err != nil {
		return "", fmt.Errorf("parse id token: %w", err)
	}

	for _, key := range []string{"user_id", "sub"} {
		if uid, ok := claims[key].(string); ok && uid != "" {
			return uid, nil
		}
	}
	return "", errors.New("id token has no uid claim")
}
