package testutils

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	_ "github.com/lib/pq"
	"github.com/linskybing/gigboard/internal/config/db"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupPostgresForIntegration returns a migrated postgres database. It uses
// TEST_DB_DSN when set and otherwise starts a throwaway container.
func SetupPostgresForIntegration() (*gorm.DB, func()) {
	if dsn := os.Getenv("TEST_DB_DSN"); dsn != "" {
		sqlDB := openWithRetry(dsn)
		gdb := migrate(sqlDB)
		return gdb, func() {
			_ = sqlDB.Close()
		}
	}

	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image: "postgres:15",
		Env: map[string]string{
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_USER":     "test",
			"POSTGRES_DB":       "gigboard",
		},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForLog("database system is ready to accept connections").WithOccurrence(2).WithStartupTimeout(60 * time.Second),
	}

	pg, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		log.Fatal(err)
	}

	host, err := pg.Host(ctx)
	if err != nil {
		log.Fatal(err)
	}
	port, err := pg.MappedPort(ctx, "5432")
	if err != nil {
		log.Fatal(err)
	}

	dsn := fmt.Sprintf("postgres://test:test@%s:%s/gigboard?sslmode=disable", host, port.Port())
	sqlDB := openWithRetry(dsn)
	gdb := migrate(sqlDB)

	cleanup := func() {
		_ = sqlDB.Close()
		_ = pg.Terminate(ctx)
	}
	return gdb, cleanup
}

func openWithRetry(dsn string) *sql.DB {
	var (
		sqlDB *sql.DB
		err   error
	)
	for i := 0; i < 10; i++ {
		sqlDB, err = sql.Open("postgres", dsn)
		if err == nil {
			err = sqlDB.Ping()
			if err == nil {
				return sqlDB
			}
		}
		time.Sleep(1 * time.Second)
	}
	log.Fatal(err)
	return nil
}

func migrate(sqlDB *sql.DB) *gorm.DB {
	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		log.Fatal(err)
	}
	if err := gdb.AutoMigrate(db.Models()...); err != nil {
		log.Fatal(err)
	}
	return gdb
}

// TruncateAll empties every table and resets the id sequences.
func TruncateAll(gdb *gorm.DB) error {
	return gdb.Exec(`TRUNCATE audit_logs, messages, payments, contracts, proposals, jobs, users RESTART IDENTITY CASCADE`).Error
}
