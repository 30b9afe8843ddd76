package main

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/profileapi/database"
	"github.com/profileapi/database/backup"
	"github.com/profileapi/database/repository"
	"github.com/profileapi/database/seeder/seeds"
	"github.com/profileapi/metal/env"
	"github.com/profileapi/pkg/cli"
)

type bootFunc func(envPath string) (*env.Environment, *database.Connection, error)

// console carries what every command needs once the env file is loaded.
type console struct {
	boot          bootFunc
	envPath       string
	printer       cli.Printer
	out           io.Writer
	backupOptions []backup.Option

	env *env.Environment
	db  *database.Connection
}

func newConsole(boot bootFunc, out io.Writer, backupOptions ...backup.Option) *console {
	return &console{
		boot:          boot,
		printer:       cli.NewPrinter(out),
		out:           out,
		backupOptions: backupOptions,
	}
}

func (c *console) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "profilectl",
		Short:         "Maintenance commands for the profile API database",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.SetOut(c.out)
	root.SetErr(c.out)
	root.PersistentFlags().StringVar(&c.envPath, "env", "./.env", "Path to the env file")

	root.AddCommand(
		c.migrateCommand(),
		c.seedCommand(),
		c.truncateCommand(),
		c.statsCommand(),
		c.backupCommand(),
	)

	for _, cmd := range root.Commands() {
		cmd.RunE = c.withDatabase(cmd.RunE)
	}

	return root
}

// withDatabase connects before the command runs and paints its error.
func (c *console) withDatabase(run func(*cobra.Command, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		err := c.connect()
		if err == nil {
			err = run(cmd, args)
		}

		if err != nil {
			c.printer.Errorln(err.Error())
		}

		return err
	}
}

func (c *console) connect() error {
	if c.db != nil {
		return nil
	}

	environment, db, err := c.boot(c.envPath)
	if err != nil {
		return err
	}

	c.env = environment
	c.db = db

	return nil
}

func (c *console) close() {
	if c.db == nil {
		return
	}

	c.db.Close()
	c.db = nil
}

func (c *console) migrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the profile tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.db.Migrate(); err != nil {
				return err
			}

			c.printer.Successln("Tables migrated: users, education")

			return nil
		},
	}
}

func (c *console) seedCommand() *cobra.Command {
	var fresh bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert fixture profiles for every user type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			seeder := seeds.MakeSeeder(c.db, c.env)

			if fresh {
				if err := seeder.TruncateDB(); err != nil {
					return err
				}
			}

			total, err := seeder.Run(c.printer)
			if err != nil {
				return err
			}

			c.printer.Successln(fmt.Sprintf("Seeded %d profiles", total))

			return nil
		},
	}

	cmd.Flags().BoolVar(&fresh, "fresh", false, "Truncate the tables before seeding")

	return cmd
}

func (c *console) truncateCommand() *cobra.Command {
	var confirmed bool

	cmd := &cobra.Command{
		Use:   "truncate",
		Short: "Delete every profile and education row",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirmed {
				return errors.New("refusing to truncate without --yes")
			}

			if err := database.NewTruncate(c.db, c.env).WithOutput(c.out).Execute(); err != nil {
				return err
			}

			c.printer.Successln("Profile tables truncated")

			return nil
		},
	}

	cmd.Flags().BoolVar(&confirmed, "yes", false, "Confirm the truncation")

	return cmd
}

func (c *console) statsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show profile counts per user type and the average score",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := repository.Profiles{DB: c.db}.Stats()
			if err != nil {
				return err
			}

			kinds := make([]string, 0, len(stats.ByType))
			for kind := range stats.ByType {
				kinds = append(kinds, string(kind))
			}

			sort.Strings(kinds)

			c.printer.KeyValue("profiles", stats.Total)

			for _, kind := range kinds {
				c.printer.KeyValue(kind, stats.ByType[database.UserType(kind)])
			}

			c.printer.KeyValue("average score", fmt.Sprintf("%.2f", stats.AverageScore))
			c.printer.KeyValue("tests taken", stats.TestsTaken)

			return nil
		},
	}
}

func (c *console) backupCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Dump the profile tables with pg_dump",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			environment := *c.env
			if dir != "" {
				environment.Backup.Dir = dir
			}

			scheduler, err := backup.NewScheduler(&environment, c.backupOptions...)
			if err != nil {
				return err
			}

			path, err := scheduler.Run(cmd.Context())
			if err != nil {
				return err
			}

			c.printer.Successln("Backup written to " + path)

			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "Directory for the dump, overrides ENV_BACKUP_DIR")

	return cmd
}
