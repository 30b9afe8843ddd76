package kernel

import (
	"strconv"

	"github.com/getsentry/sentry-go"
	sentryhttp "github.com/getsentry/sentry-go/http"
	"github.com/profileapi/database"
	"github.com/profileapi/metal/env"
	"github.com/profileapi/pkg/llogs"
	"github.com/profileapi/pkg/portal"
)

const defaultWritesPerMinute = 60

type Sentry struct {
	Handler *sentryhttp.Handler
	Options *sentryhttp.Options
	Env     *env.Environment
}

func MakeSentry(env *env.Environment) *Sentry {
	cOptions := sentry.ClientOptions{
		Dsn:         env.Sentry.DSN,
		Debug:       env.App.IsLocal(),
		Environment: env.App.Type,
		Release:     portal.ServiceVersion,
	}

	if err := sentry.Init(cOptions); err != nil {
		panic("sentry: error initialising the client: " + err.Error())
	}

	options := sentryhttp.Options{}
	handler := sentryhttp.New(options)

	return &Sentry{
		Handler: handler,
		Options: &options,
		Env:     env,
	}
}

func MakeDbConnection(env *env.Environment) *database.Connection {
	dbConn, err := database.MakeConnection(env)

	if err != nil {
		panic("Sql: error connecting to PostgresSQL: " + err.Error())
	}

	return dbConn
}

func MakeLogs(env *env.Environment) llogs.Driver {
	lDriver, err := llogs.MakeFilesLogs(env)

	if err != nil {
		panic("logs: error opening logs file: " + err.Error())
	}

	return lDriver
}

func MakeEnv(validate *portal.Validator) *env.Environment {
	errorSuffix := "Environment: "

	port, err := strconv.Atoi(env.GetEnvVar("ENV_DB_PORT"))
	if err != nil {
		panic(errorSuffix + "invalid value for ENV_DB_PORT: " + err.Error())
	}

	app := env.AppEnvironment{
		Name: env.GetEnvVar("ENV_APP_NAME"),
		URL:  env.GetEnvVar("ENV_APP_URL"),
		Type: env.GetEnvVar("ENV_APP_ENV_TYPE"),
	}

	db := env.DBEnvironment{
		UserName:     env.GetSecretOrEnv("pg_username", "ENV_DB_USER_NAME"),
		UserPassword: env.GetSecretOrEnv("pg_password", "ENV_DB_USER_PASSWORD"),
		DatabaseName: env.GetSecretOrEnv("pg_dbname", "ENV_DB_DATABASE_NAME"),
		Port:         port,
		Host:         env.GetEnvVar("ENV_DB_HOST"),
		DriverName:   database.DriverName,
		SSLMode:      env.GetEnvVar("ENV_DB_SSL_MODE"),
		TimeZone:     env.GetEnvVar("ENV_DB_TIMEZONE"),
	}

	logsEnv := env.LogsEnvironment{
		Level:      env.GetEnvVar("ENV_APP_LOG_LEVEL"),
		Dir:        env.GetEnvVar("ENV_APP_LOGS_DIR"),
		DateFormat: env.GetEnvVar("ENV_APP_LOGS_DATE_FORMAT"),
	}

	netEnv := env.NetEnvironment{
		HttpHost: env.GetEnvVar("ENV_HTTP_HOST"),
		HttpPort: env.GetEnvVar("ENV_HTTP_PORT"),
	}

	sentryEnv := env.SentryEnvironment{
		DSN: env.GetEnvVar("ENV_SENTRY_DSN"),
		CSP: env.GetEnvVar("ENV_SENTRY_CSP"),
	}

	pingEnv := env.PingEnvironment{
		Username: env.GetEnvVar("ENV_PING_USERNAME"),
		Password: env.GetEnvVar("ENV_PING_PASSWORD"),
	}

	tracingEnv := env.NewTracingEnvironment()

	backupEnv := env.BackupEnvironment{
		Enabled:   env.GetEnvVar("ENV_BACKUP_ENABLED") == "true",
		Cron:      env.GetEnvVar("ENV_BACKUP_CRON"),
		Dir:       env.GetEnvVar("ENV_BACKUP_DIR"),
		Retention: env.GetEnvInt("ENV_BACKUP_RETENTION", 0),
	}

	rateLimitEnv := env.RateLimitEnvironment{
		WritesPerMinute: env.GetEnvInt("ENV_RATE_LIMIT_WRITES_PER_MINUTE", defaultWritesPerMinute),
	}

	if _, err := validate.Rejects(app); err != nil {
		panic(errorSuffix + "invalid [APP] model: " + validate.GetErrorsAsJson())
	}

	if _, err := validate.Rejects(db); err != nil {
		panic(errorSuffix + "invalid [Sql] model: " + validate.GetErrorsAsJson())
	}

	if _, err := validate.Rejects(logsEnv); err != nil {
		panic(errorSuffix + "invalid [logs Credentials] model: " + validate.GetErrorsAsJson())
	}

	if _, err := validate.Rejects(netEnv); err != nil {
		panic(errorSuffix + "invalid [NETWORK] model: " + validate.GetErrorsAsJson())
	}

	if _, err := validate.Rejects(sentryEnv); err != nil {
		panic(errorSuffix + "invalid [SENTRY] model: " + validate.GetErrorsAsJson())
	}

	if _, err := validate.Rejects(pingEnv); err != nil {
		panic(errorSuffix + "invalid [ping] model: " + validate.GetErrorsAsJson())
	}

	if _, err := validate.Rejects(tracingEnv); err != nil {
		panic(errorSuffix + "invalid [tracing] model: " + validate.GetErrorsAsJson())
	}

	if _, err := validate.Rejects(backupEnv); err != nil {
		panic(errorSuffix + "invalid [backup] model: " + validate.GetErrorsAsJson())
	}

	if _, err := validate.Rejects(rateLimitEnv); err != nil {
		panic(errorSuffix + "invalid [rate limit] model: " + validate.GetErrorsAsJson())
	}

	profiles := &env.Environment{
		App:       app,
		DB:        db,
		Logs:      logsEnv,
		Network:   netEnv,
		Sentry:    sentryEnv,
		Ping:      pingEnv,
		Tracing:   tracingEnv,
		Backup:    backupEnv,
		RateLimit: rateLimitEnv,
	}

	if _, err := validate.Rejects(profiles); err != nil {
		panic(errorSuffix + "invalid [profiles] model: " + validate.GetErrorsAsJson())
	}

	return profiles
}
