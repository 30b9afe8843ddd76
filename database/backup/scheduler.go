package backup

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/profileapi/database"
	"github.com/profileapi/metal/env"
	"github.com/profileapi/pkg/portal"
)

const (
	filePrefix = "profiles-"
	fileSuffix = ".sql"
)

// CommandRunner abstracts exec.CommandContext so dumps can run without pg_dump.
type CommandRunner interface {
	Run(ctx context.Context, name string, args []string, env map[string]string) error
}

type ExecRunner struct{}

// Run includes the process output in the returned error when the command fails.
func (ExecRunner) Run(ctx context.Context, name string, args []string, envVars map[string]string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Env = append(os.Environ(), flattenEnv(envVars)...)

	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s failed: %w: %s", name, err, string(output))
	}

	return nil
}

// Scheduler dumps the profile tables on a cron schedule and prunes old dumps.
type Scheduler struct {
	cron        *cron.Cron
	env         *env.Environment
	runner      CommandRunner
	logger      *slog.Logger
	now         func() time.Time
	jobTimeout  time.Duration
	started     bool
	startStopMu sync.Mutex
	entryID     cron.EntryID
}

type Option func(*Scheduler)

func WithCommandRunner(runner CommandRunner) Option {
	return func(s *Scheduler) {
		if runner != nil {
			s.runner = runner
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Scheduler) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithNow controls the timestamp used for dump file names.
func WithNow(now func() time.Time) Option {
	return func(s *Scheduler) {
		if now != nil {
			s.now = now
		}
	}
}

func WithJobTimeout(timeout time.Duration) Option {
	return func(s *Scheduler) {
		if timeout > 0 {
			s.jobTimeout = timeout
		}
	}
}

func WithCron(c *cron.Cron) Option {
	return func(s *Scheduler) {
		if c != nil {
			s.cron = c
		}
	}
}

func NewScheduler(environment *env.Environment, opts ...Option) (*Scheduler, error) {
	if environment == nil {
		return nil, errors.New("environment cannot be nil")
	}

	// An empty expression still allows one-off dumps through Run.
	if expr := environment.Backup.Cron; expr != "" {
		if _, err := portal.CronParser.Parse(expr); err != nil {
			return nil, fmt.Errorf("invalid cron expression: %w", err)
		}
	}

	scheduler := &Scheduler{
		cron:       cron.New(cron.WithParser(portal.CronParser)),
		env:        environment,
		runner:     ExecRunner{},
		logger:     slog.Default(),
		now:        time.Now,
		jobTimeout: 5 * time.Minute,
	}

	for _, opt := range opts {
		opt(scheduler)
	}

	return scheduler, nil
}

// Start registers the dump job. Cancelling ctx stops the scheduler.
func (s *Scheduler) Start(ctx context.Context) error {
	if s == nil {
		return errors.New("scheduler is nil")
	}

	s.startStopMu.Lock()
	defer s.startStopMu.Unlock()

	if s.started {
		return errors.New("scheduler already started")
	}

	if s.env.Backup.Cron == "" {
		return errors.New("no backup schedule configured")
	}

	job := func() {
		jobCtx := ctx
		if jobCtx == nil {
			jobCtx = context.Background()
		}

		if s.jobTimeout > 0 {
			var cancel context.CancelFunc
			jobCtx, cancel = context.WithTimeout(jobCtx, s.jobTimeout)
			defer cancel()
		}

		if _, err := s.Run(jobCtx); err != nil {
			s.logger.Error("database backup failed", "error", err)
		}
	}

	entryID, err := s.cron.AddFunc(s.env.Backup.Cron, job)
	if err != nil {
		return fmt.Errorf("schedule backup job: %w", err)
	}

	s.entryID = entryID
	s.cron.Start()
	s.started = true

	if ctx != nil {
		go func() {
			<-ctx.Done()
			s.Stop()
		}()
	}

	return nil
}

// Stop halts the scheduler and waits for a running job to finish.
func (s *Scheduler) Stop() {
	if s == nil {
		return
	}

	s.startStopMu.Lock()
	if !s.started {
		s.startStopMu.Unlock()
		return
	}

	ctx := s.cron.Stop()
	s.started = false
	s.startStopMu.Unlock()

	<-ctx.Done()
}

// Run dumps the profile tables right away and returns the dump path.
func (s *Scheduler) Run(ctx context.Context) (string, error) {
	if s == nil {
		return "", errors.New("scheduler is nil")
	}

	if ctx == nil {
		ctx = context.Background()
	}

	backupDir := s.env.Backup.Dir
	if backupDir == "" {
		return "", errors.New("no backup directory configured")
	}

	if err := os.MkdirAll(backupDir, 0o755); err != nil {
		return "", fmt.Errorf("create backup directory: %w", err)
	}

	timestamp := s.now().UTC().Format("20060102T150405Z")
	filePath := filepath.Join(backupDir, filePrefix+timestamp+fileSuffix)

	args := []string{
		"--host", s.env.DB.Host,
		"--port", strconv.Itoa(s.env.DB.Port),
		"--username", s.env.DB.UserName,
		"--file", filePath,
		"--no-owner",
		"--no-privileges",
	}

	for _, table := range database.GetSchemaTables() {
		args = append(args, "--table", table)
	}

	args = append(args, s.env.DB.DatabaseName)

	envVars := map[string]string{
		"PGPASSWORD": s.env.DB.UserPassword,
		"PGSSLMODE":  s.env.DB.SSLMode,
	}

	if err := s.runner.Run(ctx, "pg_dump", args, envVars); err != nil {
		return "", err
	}

	s.logger.Info("database backup created", "path", filePath)

	removed, err := s.prune()
	if err != nil {
		s.logger.Warn("database backup pruning failed", "error", err)
	}

	if len(removed) > 0 {
		s.logger.Info("database backups pruned", "removed", len(removed))
	}

	return filePath, nil
}

// prune keeps the newest Retention dumps. Zero keeps everything.
func (s *Scheduler) prune() ([]string, error) {
	keep := s.env.Backup.Retention
	if keep <= 0 {
		return nil, nil
	}

	entries, err := os.ReadDir(s.env.Backup.Dir)
	if err != nil {
		return nil, fmt.Errorf("read backup directory: %w", err)
	}

	var dumps []string
	for _, entry := range entries {
		name := entry.Name()

		if entry.IsDir() || !strings.HasPrefix(name, filePrefix) || !strings.HasSuffix(name, fileSuffix) {
			continue
		}

		dumps = append(dumps, name)
	}

	if len(dumps) <= keep {
		return nil, nil
	}

	// Timestamps sort lexically.
	sort.Sort(sort.Reverse(sort.StringSlice(dumps)))

	var removed []string
	var errs []error

	for _, name := range dumps[keep:] {
		path := filepath.Join(s.env.Backup.Dir, name)

		if err := os.Remove(path); err != nil {
			errs = append(errs, err)
			continue
		}

		removed = append(removed, path)
	}

	return removed, errors.Join(errs...)
}

func flattenEnv(envVars map[string]string) []string {
	if len(envVars) == 0 {
		return nil
	}

	values := make([]string, 0, len(envVars))
	for key, value := range envVars {
		values = append(values, fmt.Sprintf("%s=%s", key, value))
	}

	return values
}
