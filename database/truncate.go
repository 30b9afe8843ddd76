package database

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/profileapi/metal/env"
)

var ErrTruncateProduction = errors.New("cannot truncate the production database")

type Truncate struct {
	database *Connection
	env      *env.Environment
	out      io.Writer
}

func NewTruncate(db *Connection, env *env.Environment) *Truncate {
	return &Truncate{
		database: db,
		env:      env,
		out:      os.Stdout,
	}
}

func (t *Truncate) WithOutput(out io.Writer) *Truncate {
	t.out = out

	return t
}

// Execute empties every profile table, children first, and resets identities.
func (t *Truncate) Execute() error {
	if t.env.App.IsProduction() {
		return ErrTruncateProduction
	}

	tables := GetSchemaTables()
	var errs []error

	db := t.database.Sql()

	for i := len(tables) - 1; i >= 0; i-- {
		table := tables[i]

		if !isValidTable(table) {
			errs = append(errs, fmt.Errorf("table '%s' does not exist", table))
			continue
		}

		if !db.Migrator().HasTable(table) {
			fmt.Fprintf(t.out, "[db:truncate] skipped table [%s]: table does not exist\n", table)
			continue
		}

		exec := db.Exec(fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE;", table))
		if exec.Error != nil {
			if isUndefinedRelationError(exec.Error) {
				fmt.Fprintf(t.out, "[db:truncate] skipped table [%s]: %v\n", table, exec.Error)
				continue
			}

			errs = append(errs, fmt.Errorf("truncate table %s: %w", table, exec.Error))
			continue
		}

		fmt.Fprintf(t.out, "[db:truncate] truncated table [%s]\n", table)
	}

	if len(errs) > 0 {
		return fmt.Errorf("truncate completed with %d error(s): %w", len(errs), errors.Join(errs...))
	}

	return nil
}

func isUndefinedRelationError(err error) bool {
	return sqlState(err) == "42P01"
}

func sqlState(err error) string {
	if err == nil {
		return ""
	}

	var stateErr interface{ SQLState() string }
	if errors.As(err, &stateErr) {
		return stateErr.SQLState()
	}

	message := err.Error()
	upper := strings.ToUpper(message)
	marker := "(SQLSTATE "

	if idx := strings.LastIndex(upper, marker); idx != -1 {
		start := idx + len(marker)

		if end := strings.Index(upper[start:], ")"); end != -1 {
			return message[start : start+end]
		}
	}

	return ""
}
