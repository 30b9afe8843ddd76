package seeds

import (
	"fmt"
	"sync"

	"github.com/profileapi/database"
	"github.com/profileapi/database/repository"
	"github.com/profileapi/metal/env"
	"github.com/profileapi/pkg/cli"
)

type Seeder struct {
	db       *database.Connection
	env      *env.Environment
	profiles repository.Profiles
}

func MakeSeeder(db *database.Connection, env *env.Environment) *Seeder {
	return &Seeder{
		db:       db,
		env:      env,
		profiles: repository.Profiles{DB: db},
	}
}

func (s *Seeder) TruncateDB() error {
	return database.NewTruncate(s.db, s.env).Execute()
}

func (s *Seeder) SeedProfiles(kind database.UserType) ([]database.User, error) {
	var users []database.User

	for _, attrs := range ProfileAttrsFor(kind) {
		user, err := s.profiles.Create(attrs)
		if err != nil {
			return nil, fmt.Errorf("seed %s profile %s: %w", kind, attrs.Email, err)
		}

		users = append(users, *user)
	}

	return users, nil
}

// Run seeds every user type concurrently and reports progress on printer.
func (s *Seeder) Run(printer cli.Printer) (int, error) {
	var wg sync.WaitGroup
	var mu sync.Mutex
	var errs []error

	total := 0

	for _, kind := range database.UserTypes() {
		wg.Add(1)

		go func(kind database.UserType) {
			defer wg.Done()

			printer.Blueln(fmt.Sprintf("Seeding %s profiles ...", kind))

			users, err := s.SeedProfiles(kind)

			mu.Lock()
			defer mu.Unlock()

			if err != nil {
				errs = append(errs, err)
				return
			}

			total += len(users)
		}(kind)
	}

	wg.Wait()

	if len(errs) > 0 {
		return total, fmt.Errorf("seeding finished with %d error(s): %w", len(errs), errs[0])
	}

	return total, nil
}
