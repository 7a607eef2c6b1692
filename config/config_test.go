package config

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("API_BASE_URL", "")
	t.Setenv("FIREBASE_PROJECT_ID", "arfind-test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "arfind-admin", cfg.App.Name)
	assert.Equal(t, "8080", cfg.HTTP.Port)
	assert.Equal(t, "arfind_session", cfg.Session.CookieName)
	assert.Equal(t, 12*time.Hour, cfg.Session.TTL)
	assert.Equal(t, 30*time.Second, cfg.API.Timeout)
	assert.Equal(t, "arfind-test.appspot.com", cfg.Firebase.Bucket())
}

func TestLoad_ReadsEnvironment(t *testing.T) {
	t.Setenv("APP_NAME", "arfind-staging")
	t.Setenv("PORT", "9000")
	t.Setenv("API_BASE_URL", "http://localhost:4000/")
	t.Setenv("API_TIMEOUT_SECONDS", "5")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("SESSION_COOKIE_SECURE", "true")
	t.Setenv("FIREBASE_PRIVATE_KEY", `-----BEGIN KEY-----\nabc\n-----END KEY-----`)
	t.Setenv("FIREBASE_STORAGE_BUCKET", "custom-bucket")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "arfind-staging", cfg.App.Name)
	assert.Equal(t, "9000", cfg.HTTP.Port)
	assert.Equal(t, "http://localhost:4000", cfg.API.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.API.Timeout)
	assert.Equal(t, 3, cfg.Redis.DB)
	assert.True(t, cfg.Session.Secure)
	assert.Equal(t, "-----BEGIN KEY-----\nabc\n-----END KEY-----", cfg.Firebase.PrivateKey)
	assert.Equal(t, "custom-bucket", cfg.Firebase.Bucket())
}

func TestValidate_RequiresFirebaseFields(t *testing.T) {
	cfg := &Config{}
	assert.EqualError(t, cfg.Validate(), "FIREBASE_PROJECT_ID environment variable is required")

	cfg.Firebase = FirebaseConfig{ProjectID: "p", ClientEmail: "svc@p.iam", PrivateKey: "k"}
	assert.EqualError(t, cfg.Validate(), "FIREBASE_API_KEY environment variable is required")

	cfg.Firebase.APIKey = "key"
	assert.NoError(t, cfg.Validate())
}

func TestServiceAccountJSON(t *testing.T) {
	raw, err := serviceAccountJSON(FirebaseConfig{ProjectID: "p", ClientEmail: "svc@p.iam", PrivateKey: "k"})
	require.NoError(t, err)

	var doc map[string]string
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Equal(t, "service_account", doc["type"])
	assert.Equal(t, "p", doc["project_id"])
	assert.Equal(t, "svc@p.iam", doc["client_email"])
}
