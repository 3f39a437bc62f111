package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-feed/migrations"
)

// dialect captures what differs between the SQL backends.
type dialect struct {
	driver      string
	migrations  string
	placeholder sq.PlaceholderFormat

	isUniqueViolation func(error) bool
}

var (
	postgresDialect = dialect{
		driver:            "pgx",
		migrations:        migrations.Postgres,
		placeholder:       sq.Dollar,
		isUniqueViolation: isPostgresUniqueViolation,
	}

	sqliteDialect = dialect{
		driver:            "sqlite3",
		migrations:        migrations.SQLite,
		placeholder:       sq.Question,
		isUniqueViolation: isSQLiteUniqueViolation,
	}
)
