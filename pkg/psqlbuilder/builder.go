// Package psqlbuilder wraps squirrel statement builders with the placeholder
// format of the configured SQL driver.
package psqlbuilder

import "github.com/Masterminds/squirrel"

// Поддерживаемые драйверы
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

var postgres = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Select создает SELECT для PostgreSQL ($1, $2, ...)
func Select(columns ...string) squirrel.SelectBuilder {
	return postgres.Select(columns...)
}

// Insert создает INSERT для PostgreSQL
func Insert(table string) squirrel.InsertBuilder {
	return postgres.Insert(table)
}

// ForDriver возвращает builder с форматом плейсхолдеров драйвера.
// Для sqlite используются "?", для всего остального "$N".
func ForDriver(driver string) squirrel.StatementBuilderType {
	if driver == DriverSQLite {
		return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)
	}
	return postgres
}
