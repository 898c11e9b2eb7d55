package testutil

import (
	"database/sql"
	"fmt"
	"testing"

	_ "github.com/go-sql-driver/mysql"
)

// SetupTestDB opens the integration test database.
// Expects a MySQL instance on localhost:3306 with a 'bagbot_test' schema;
// tests are skipped when it is not reachable.
func SetupTestDB(t *testing.T) *sql.DB {
	dsn := "root:@tcp(localhost:3306)/bagbot_test?parseTime=true"
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.Ping()
	if err != nil {
		t.Skipf("test database not available: %v", err)
	}

	return db
}

func CleanupTestDB(t *testing.T, db *sql.DB) {
	if db == nil {
		return
	}

	tables := []string{"ConfirmedOrders"}
	for _, table := range tables {
		_, err := db.Exec(fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}

	db.Close()
}

func SetupTestTables(t *testing.T, db *sql.DB) {
	createConfirmedOrdersTable := `
	CREATE TABLE IF NOT EXISTS ConfirmedOrders (
		id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		orderNumber VARCHAR(20) NOT NULL UNIQUE,
		userId VARCHAR(64) NOT NULL,
		companyName VARCHAR(255),
		contactName VARCHAR(100),
		phone VARCHAR(30),
		invoice VARCHAR(50),
		sizeName VARCHAR(100),
		thicknessName VARCHAR(100),
		materialName VARCHAR(100),
		colorName VARCHAR(100),
		quantity INT DEFAULT 0,
		customRequirements TEXT,
		deliveryDate VARCHAR(10),
		totalPrice DECIMAL(12,2) DEFAULT 0.00,
		confirmedAt DATETIME,
		createdAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		INDEX idx_user (userId)
	)`

	_, err := db.Exec(createConfirmedOrdersTable)
	if err != nil {
		t.Logf("failed to create table ConfirmedOrders: %v", err)
	}
}
