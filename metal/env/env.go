package env

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Environment groups every configuration section. Tracing and Backup are
// opt-in, so their zero values are valid and only their own fields are checked.
type Environment struct {
	App       AppEnvironment       `validate:"required"`
	DB        DBEnvironment        `validate:"required"`
	Logs      LogsEnvironment      `validate:"required"`
	Network   NetEnvironment       `validate:"required"`
	Sentry    SentryEnvironment    `validate:"required"`
	Ping      PingEnvironment      `validate:"required"`
	Tracing   TracingEnvironment
	Backup    BackupEnvironment
	RateLimit RateLimitEnvironment `validate:"required"`
}

// SecretsDir defines where secret files are read from. It can be overridden in
// tests.
var SecretsDir = "/run/secrets"

func GetEnvVar(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func GetEnvInt(key string, fallback int) int {
	value := GetEnvVar(key)

	if value == "" {
		return fallback
	}

	number, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}

	return number
}

func GetSecretOrEnv(secretName string, envVarName string) string {
	secretPath := filepath.Join(SecretsDir, secretName)

	content, err := os.ReadFile(secretPath)
	if err == nil {
		return strings.TrimSpace(string(content))
	}

	return GetEnvVar(envVarName)
}
