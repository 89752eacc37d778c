package database

import (
	"fmt"
	"testing"
	"time"

	"corecrm/internal/config"
	"corecrm/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

// CreateTestCustomer inserts a customer with sensible defaults. createdAt
// drives list ordering in tests, so callers pass distinct values.
func CreateTestCustomer(t *testing.T, db *DB, name string, status models.Status, createdAt time.Time) *models.Customer {
	t.Helper()

	customer := &models.Customer{
		Name:      name,
		Email:     fmt.Sprintf("%s@example.com", status),
		Phone:     "11 99999-0000",
		Status:    status,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}

	if err := db.Create(customer).Error; err != nil {
		t.Fatalf("failed to create test customer: %v", err)
	}

	return customer
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	if err := db.Exec("DELETE FROM clientes").Error; err != nil {
		t.Logf("failed to cleanup clientes table: %v", err)
	}
}
