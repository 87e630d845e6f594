package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("FIREBASE_PROJECT_ID", "visionmatch-test")
	t.Setenv("FIREBASE_SERVICE_ACCOUNT_PATH", "/tmp/sa.json")
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SMTP_USER", "mailer")
	t.Setenv("SMTP_PASSWORD", "secret")
	t.Setenv("FROM_EMAIL", "noreply@example.com")
	t.Setenv("FIRESTORE_EMULATOR_HOST", "")
}

func TestParseDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, 587, cfg.SMTP.Port)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.Equal(t, 5, cfg.EmailRateBurst)
	assert.True(t, cfg.IsDevelopment())
}

func TestParseRequiresSecrets(t *testing.T) {
	for _, key := range []string{"FIREBASE_PROJECT_ID", "SMTP_HOST", "SMTP_USER", "SMTP_PASSWORD", "FROM_EMAIL"} {
		t.Run(key, func(t *testing.T) {
			setRequired(t)
			t.Setenv(key, "")

			_, err := Parse()
			assert.Error(t, err)
		})
	}
}

func TestParseRequiresFirebaseCredentials(t *testing.T) {
	setRequired(t)
	t.Setenv("FIREBASE_SERVICE_ACCOUNT_PATH", "")

	_, err := Parse()
	assert.ErrorIs(t, err, ErrMissingCredentials)

	t.Setenv("FIRESTORE_EMULATOR_HOST", "localhost:8081")
	cfg, err := Parse()
	require.NoError(t, err)
	assert.Equal(t, "localhost:8081", cfg.FirestoreEmulatorHost)
}
