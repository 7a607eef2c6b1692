package config

import (
	"context"
	"encoding/json"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
)

// serviceAccountJSON assembles the service account document from the
// individual environment fields.
func serviceAccountJSON(cfg FirebaseConfig) ([]byte, error) {
	return json.Marshal(map[string]string{
		"type":                        "service_account",
		"project_id":                  cfg.ProjectID,
		"private_key_id":              cfg.PrivateKeyID,
		"private_key":                 cfg.PrivateKey,
		"client_email":                cfg.ClientEmail,
		"client_id":                   cfg.ClientID,
		"auth_uri":                    cfg.AuthURI,
		"token_uri":                   cfg.TokenURI,
		"auth_provider_x509_cert_url": cfg.AuthProviderCertURL,
		"client_x509_cert_url":        cfg.ClientCertURL,
	})
}

// InitFirebase initializes the Firebase Admin SDK from the service account
// fields in cfg.
func InitFirebase(ctx context.Context, cfg FirebaseConfig) (*firebase.App, error) {
	creds, err := serviceAccountJSON(cfg)
	if err != nil {
		return nil, fmt.Errorf("encode service account: %w", err)
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{
		ProjectID:     cfg.ProjectID,
		StorageBucket: cfg.Bucket(),
	}, option.WithCredentialsJSON(creds))
	if err != nil {
		return nil, fmt.Errorf("initialize firebase app: %w", err)
	}
	return app, nil
}
