package env

import "fmt"

type DBEnvironment struct {
	UserName     string `validate:"required,min=4"`
	UserPassword string `validate:"required,min=8"`
	DatabaseName string `validate:"required,min=4"`
	Port         int    `validate:"required,numeric,gte=1,lte=65535"`
	Host         string `validate:"required,hostname|ip"`
	DriverName   string `validate:"required,eq=postgres"`
	SSLMode      string `validate:"required,oneof=disable require verify-ca verify-full"`
	TimeZone     string `validate:"required"`
}

// GetDSN renders the key/value connection string understood by the pgx driver.
func (e DBEnvironment) GetDSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%d sslmode=%s TimeZone=%s",
		e.Host,
		e.UserName,
		e.UserPassword,
		e.DatabaseName,
		e.Port,
		e.SSLMode,
		e.TimeZone,
	)
}
