package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"github.com/sebuszqo/BudgetTracker/internal/config"
	"github.com/sebuszqo/BudgetTracker/internal/log"
)

// DBService owns the process-wide *sql.DB and remembers which driver opened it.
type DBService struct {
	DB      *sql.DB
	Driver  string
	connStr string
	logger  *log.Logger
}

// NewDBService opens and pings the database selected by driver.
func NewDBService(driver, connStr string, logger *log.Logger) (*DBService, error) {
	if connStr == "" {
		return nil, fmt.Errorf("missing database connection string")
	}

	db, err := sql.Open(driver, connStr)
	if err != nil {
		return nil, fmt.Errorf("could not open db connection: %w", err)
	}

	switch driver {
	case config.DriverSQLite:
		// SQLite allows a single writer; one connection also keeps :memory: databases alive.
		db.SetMaxOpenConns(1)
		if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
			db.Close()
			return nil, fmt.Errorf("could not enable foreign keys: %w", err)
		}
	default:
		db.SetMaxOpenConns(50)
		db.SetMaxIdleConns(25)
		db.SetConnMaxLifetime(5 * time.Minute)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("could not connect to the database: %w", err)
	}

	logger.WithComponent(log.ComponentStorage).Info("database connection established", "driver", driver)
	return &DBService{DB: db, Driver: driver, connStr: connStr, logger: logger.WithComponent(log.ComponentStorage)}, nil
}

// Health pings the database and reports the pool statistics.
func (s *DBService) Health(ctx context.Context) map[string]string {
	stats := make(map[string]string)

	if err := s.DB.PingContext(ctx); err != nil {
		stats["status"] = "down"
		stats["error"] = fmt.Sprintf("db down: %v", err)
		return stats
	}

	dbStats := s.DB.Stats()
	stats["status"] = "up"
	stats["message"] = "It's healthy"
	stats["driver"] = s.Driver
	stats["open_connections"] = fmt.Sprintf("%d", dbStats.OpenConnections)
	stats["in_use"] = fmt.Sprintf("%d", dbStats.InUse)
	stats["idle"] = fmt.Sprintf("%d", dbStats.Idle)
	return stats
}

func (s *DBService) Close() error {
	s.logger.Info("closing database connection", "driver", s.Driver)
	return s.DB.Close()
}
