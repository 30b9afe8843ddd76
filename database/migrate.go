package database

import "slices"

// GetSchemaTables lists the tables in dependency order: parents first.
func GetSchemaTables() []string {
	return []string{
		UsersTable,
		EducationTable,
	}
}

func isValidTable(seed string) bool {
	return slices.Contains(GetSchemaTables(), seed)
}

func Models() []any {
	return []any{
		&User{},
		&Education{},
	}
}

func (c *Connection) Migrate() error {
	return c.driver.AutoMigrate(Models()...)
}
