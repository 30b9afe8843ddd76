package main

import (
	"os"

	"github.com/profileapi/database"
	"github.com/profileapi/metal/env"
	"github.com/profileapi/metal/kernel"
	"github.com/profileapi/pkg/portal"
)

func main() {
	c := newConsole(boot, os.Stdout)
	err := c.rootCommand().Execute()
	c.close()

	if err != nil {
		os.Exit(1)
	}
}

// boot loads the env file and opens the database the same way the API does.
func boot(envPath string) (*env.Environment, *database.Connection, error) {
	environment, err := kernel.Ignite(envPath, portal.GetDefaultValidator())
	if err != nil {
		return nil, nil, err
	}

	return environment, kernel.MakeDbConnection(environment), nil
}
