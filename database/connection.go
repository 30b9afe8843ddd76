package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/profileapi/metal/env"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Connection struct {
	driverName string
	driver     *gorm.DB
	env        *env.Environment
}

func MakeConnection(env *env.Environment) (*Connection, error) {
	dbEnv := env.DB
	driver, err := gorm.Open(postgres.Open(dbEnv.GetDSN()), &gorm.Config{
		TranslateError: true,
	})

	if err != nil {
		return nil, err
	}

	return &Connection{
		driver:     driver,
		driverName: dbEnv.DriverName,
		env:        env,
	}, nil
}

func (c *Connection) Close() bool {
	if sqlDB, err := c.driver.DB(); err != nil {
		slog.Error("There was an error closing the db: " + err.Error())

		return false
	} else {
		if err = sqlDB.Close(); err != nil {
			slog.Error("There was an error closing the db: " + err.Error())
			return false
		}
	}

	return true
}

func (c *Connection) Ping() error {
	return c.PingContext(context.Background())
}

func (c *Connection) PingContext(ctx context.Context) error {
	var driver *sql.DB

	conn, err := c.driver.DB()
	if err != nil {
		slog.Error("Error retrieving the db driver", "error", err.Error())

		return fmt.Errorf("retrieve db driver: %w", err)
	}

	driver = conn

	if err := driver.PingContext(ctx); err != nil {
		slog.Error("Error pinging the db driver", "error", err.Error())

		return fmt.Errorf("ping db: %w", err)
	}

	slog.Debug("Database driver is healthy", "type", fmt.Sprintf("%T", driver), "open_connections", driver.Stats().OpenConnections)

	return nil
}

func (c *Connection) Sql() *gorm.DB {
	return c.driver
}

func (c *Connection) GetSession() *gorm.Session {
	return &gorm.Session{QueryFields: true}
}

func (c *Connection) Transaction(callback func(db *gorm.DB) error) error {
	return c.driver.Transaction(callback)
}

func (c *Connection) DriverName() string {
	if c.driverName == "" {
		return DriverName
	}

	return c.driverName
}
