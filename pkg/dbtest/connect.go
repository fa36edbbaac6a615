package dbtest

import (
	"os"
	"strings"
	"testing"

	_ "github.com/jackc/pgx/v5/stdlib" // golang postgres driver
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

// DSNEnv names the variable holding a disposable test database.
const DSNEnv = "PG_TEST_DSN"

// Connect opens the test database, applies the migrations and truncates the
// given tables once the test finishes. The test is skipped when DSNEnv is
// unset.
func Connect(t *testing.T, migrations []string, tables ...string) *sqlx.DB {
	t.Helper()

	dsn := os.Getenv(DSNEnv)
	if dsn == "" {
		t.Skipf("%s is not set", DSNEnv)
	}

	rq := require.New(t)

	db, err := sqlx.Connect("pgx", dsn)
	rq.NoError(err)

	rq.NoError(MigrateFromFile(db, migrations...))

	t.Cleanup(func() {
		if len(tables) > 0 {
			_, err := db.Exec("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE")
			rq.NoError(err)
		}

		rq.NoError(db.Close())
	})

	return db
}
