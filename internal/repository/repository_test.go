package repository

import (
	"context"
	"database/sql"
	"testing"

	plannerdb "investmentplanner/internal/db"
	"investmentplanner/internal/util"

	"github.com/go-jet/jet/v2/postgres"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

const testSchemaName = "planner_test"

// newTestRepositoryDb connects to the local test database and migrates the
// test schema. Tests are skipped when no database is reachable.
func newTestRepositoryDb(t *testing.T) (*sql.DB, Schema) {
	t.Helper()

	db, err := util.NewTestDb()
	require.NoError(t, err)
	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("test database unavailable: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	err = plannerdb.Migrate(context.Background(), db, testSchemaName)
	require.NoError(t, err)

	schema := NewSchema(testSchemaName)
	require.NoError(t, cleanupSchema(db, schema))

	return db, schema
}

func cleanupSchema(db *sql.DB, schema Schema) error {
	tables := []interface {
		DELETE() postgres.DeleteStatement
	}{
		schema.InvestmentUser,
		schema.Investment,
		schema.AssetStrategy,
		schema.Strategy,
		schema.Asset,
		schema.Location,
		schema.UserAccount,
	}
	for _, t := range tables {
		if _, err := t.DELETE().WHERE(postgres.Bool(true)).Exec(db); err != nil {
			return err
		}
	}
	return nil
}

func TestPage_Validate(t *testing.T) {
	require.NoError(t, Page{Skip: 0, Take: 1}.Validate())
	require.Error(t, Page{Skip: -1, Take: 1}.Validate())
	require.Error(t, Page{Skip: 0, Take: 0}.Validate())
}
