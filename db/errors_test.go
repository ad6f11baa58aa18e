package database

import (
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sebuszqo/BudgetTracker/internal/config"
	"github.com/sebuszqo/BudgetTracker/internal/log"
)

func TestIsUniqueViolation_Postgres(t *testing.T) {
	assert.True(t, IsUniqueViolation(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsUniqueViolation(errors.New("boom")))
}

func TestIsUniqueViolation_SQLite(t *testing.T) {
	service, err := NewDBService(config.DriverSQLite, "file:"+filepath.Join(t.TempDir(), "budget.db"), log.Nop())
	require.NoError(t, err)
	defer service.Close()
	require.NoError(t, service.RunMigrations())

	insert := `INSERT INTO users (id, username, password_hash, hash_token) VALUES ($1, $2, $3, $4)`
	_, err = service.DB.Exec(insert, "1", "alice", "h", "t")
	require.NoError(t, err)

	_, err = service.DB.Exec(insert, "2", "alice", "h", "t")
	require.Error(t, err)
	assert.True(t, IsUniqueViolation(err))
}
