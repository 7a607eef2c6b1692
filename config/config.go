package config

import (
	"errors"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	// DefaultAPIBaseURL is the backend REST API the panel forwards to.
	DefaultAPIBaseURL = "https://arfindfranco-t22ijacwda-uc.a.run.app"

	defaultSessionCookie = "arfind_session"
)

// Config groups everything read from the environment at start-up.
type Config struct {
	App      AppConfig
	HTTP     HTTPConfig
	Session  SessionConfig
	Redis    RedisConfig
	API      APIConfig
	Firebase FirebaseConfig
}

type AppConfig struct {
	Env      string // development, production
	Name     string
	LogLevel string
}

type HTTPConfig struct {
	Port string
}

type SessionConfig struct {
	CookieName string
	TTL        time.Duration
	Secure     bool
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

// FirebaseConfig holds the service account fields plus the web API key
// used for email/password sign-in.
type FirebaseConfig struct {
	ProjectID           string
	PrivateKeyID        string
	PrivateKey          string
	ClientEmail         string
	ClientID            string
	AuthURI             string
	TokenURI            string
	AuthProviderCertURL string
	ClientCertURL       string
	APIKey              string
	StorageBucket       string
}

// Bucket returns the configured storage bucket, falling back to the
// project's default Firebase bucket.
func (f FirebaseConfig) Bucket() string {
	if f.StorageBucket != "" {
		return f.StorageBucket
	}
	return f.ProjectID + ".appspot.com"
}

// Load reads the configuration from the environment. A .env file in the
// working directory is loaded first when present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "arfind-admin"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Port: getString(v, "PORT", "8080"),
		},
		Session: SessionConfig{
			CookieName: getString(v, "SESSION_COOKIE_NAME", defaultSessionCookie),
			TTL:        time.Duration(getInt(v, "SESSION_TTL_HOURS", 12)) * time.Hour,
			Secure:     getBool(v, "SESSION_COOKIE_SECURE", false),
		},
		Redis: RedisConfig{
			Addr:     getString(v, "REDIS_ADDR", "localhost:6379"),
			Password: getString(v, "REDIS_PASSWORD", ""),
			DB:       getInt(v, "REDIS_DB", 0),
		},
		API: APIConfig{
			BaseURL: strings.TrimRight(getString(v, "API_BASE_URL", DefaultAPIBaseURL), "/"),
			Timeout: time.Duration(getInt(v, "API_TIMEOUT_SECONDS", 30)) * time.Second,
		},
		Firebase: FirebaseConfig{
			ProjectID:           getString(v, "FIREBASE_PROJECT_ID", ""),
			PrivateKeyID:        getString(v, "FIREBASE_PRIVATE_KEY_ID", ""),
			PrivateKey:          strings.ReplaceAll(getString(v, "FIREBASE_PRIVATE_KEY", ""), `\n`, "\n"),
			ClientEmail:         getString(v, "FIREBASE_CLIENT_EMAIL", ""),
			ClientID:            getString(v, "FIREBASE_CLIENT_ID", ""),
			AuthURI:             getString(v, "FIREBASE_AUTH_URI", "https://accounts.google.com/o/oauth2/auth"),
			TokenURI:            getString(v, "FIREBASE_TOKEN_URI", "https://oauth2.googleapis.com/token"),
			AuthProviderCertURL: getString(v, "FIREBASE_AUTH_PROVIDER_CERT", "https://www.googleapis.com/oauth2/v1/certs"),
			ClientCertURL:       getString(v, "FIREBASE_CLIENT_CERT", ""),
			APIKey:              getString(v, "FIREBASE_API_KEY", ""),
			StorageBucket:       getString(v, "FIREBASE_STORAGE_BUCKET", ""),
		},
	}

	return cfg, nil
}

// Validate reports the first missing setting the panel cannot start without.
func (c *Config) Validate() error {
	switch {
	case c.Firebase.ProjectID == "":
		return errors.New("FIREBASE_PROJECT_ID environment variable is required")
	case c.Firebase.ClientEmail == "":
		return errors.New("FIREBASE_CLIENT_EMAIL environment variable is required")
	case c.Firebase.PrivateKey == "":
		return errors.New("FIREBASE_PRIVATE_KEY environment variable is required")
	case c.Firebase.APIKey == "":
		return errors.New("FIREBASE_API_KEY environment variable is required")
	}
	return nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if !v.IsSet(key) {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
	if err != nil {
		return def
	}
	return n
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if !v.IsSet(key) {
		return def
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v.GetString(key)))
	if err != nil {
		return def
	}
	return b
}
