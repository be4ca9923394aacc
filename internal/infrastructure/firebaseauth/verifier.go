// Package firebaseauth verifies Google sign-in ID tokens through the Firebase
// Admin SDK.
package firebaseauth

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"github.com/brandkit-io/brandkit-backend/internal/domain/entity"
	usecasecontract "github.com/brandkit-io/brandkit-backend/internal/usecase/contract"
)

type Verifier struct {
	client *auth.Client
}

var _ usecasecontract.ITokenVerifier = (*Verifier)(nil)

// NewVerifier initializes the Firebase Admin SDK from a credentials file.
// An empty path falls back to application default credentials.
func NewVerifier(ctx context.Context, credentialsPath string) (*Verifier, error) {
	var opts []option.ClientOption
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}
	app, err := firebase.NewApp(ctx, nil, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get Auth client: %w", err)
	}
	return &Verifier{client: client}, nil
}

// VerifyIDToken validates a Google ID token and maps it to claims.
func (v *Verifier) VerifyIDToken(ctx context.Context, idToken string) (*entity.Claims, error) {
	decoded, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, fmt.Errorf("failed to verify ID token: %w", err)
	}
	claims := &entity.Claims{UserID: decoded.UID, Role: entity.DefaultRole()}
	if email, ok := decoded.Claims["email"].(string); ok {
		claims.Email = email
	}
	if name, ok := decoded.Claims["name"].(string); ok {
		claims.Name = name
	}
	return claims, nil
}
