package env

import "log/slog"

type LogsEnvironment struct {
	Level      string `validate:"required,lowercase,oneof=debug info warn error"`
	Dir        string `validate:"required,contains=%s"`
	DateFormat string `validate:"required"`
}

func (e LogsEnvironment) SlogLevel() slog.Level {
	switch e.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type SentryEnvironment struct {
	DSN string `validate:"required"`
	CSP string `validate:"required"`
}
