package llogs

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/profileapi/metal/env"
)

type FilesLogs struct {
	path   string
	file   *os.File
	logger *slog.Logger
	env    *env.Environment
}

// MakeFilesLogs opens today's log file and installs it as the default slog
// handler. Outside production the records are mirrored to stdout.
func MakeFilesLogs(env *env.Environment) (Driver, error) {
	manager := FilesLogs{env: env}
	manager.path = manager.DefaultPath()

	if err := os.MkdirAll(filepath.Dir(manager.path), 0o755); err != nil {
		return FilesLogs{}, fmt.Errorf("failed to create log directory: %w", err)
	}

	resource, err := os.OpenFile(manager.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return FilesLogs{}, fmt.Errorf("failed to open log file: %w", err)
	}

	var sink io.Writer = resource
	if !env.App.IsProduction() {
		sink = io.MultiWriter(resource, os.Stdout)
	}

	logger := slog.New(slog.NewTextHandler(sink, &slog.HandlerOptions{
		Level: env.Logs.SlogLevel(),
	})).With("app", env.App.Name)

	slog.SetDefault(logger)

	manager.file = resource
	manager.logger = logger

	return manager, nil
}

func (manager FilesLogs) DefaultPath() string {
	logsEnvironment := manager.env.Logs

	return fmt.Sprintf(
		logsEnvironment.Dir,
		time.Now().UTC().Format(logsEnvironment.DateFormat),
	)
}

func (manager FilesLogs) Logger() *slog.Logger {
	return manager.logger
}

func (manager FilesLogs) Close() bool {
	if manager.file == nil {
		return false
	}

	if err := manager.file.Close(); err != nil {
		slog.Error("error closing log file", "error", err)

		return false
	}

	return true
}
