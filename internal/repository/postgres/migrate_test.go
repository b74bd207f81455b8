package postgres

import (
	"strings"
	"testing"
)

// The schema carries the engine's core invariants; these assertions keep the
// embedded migration from drifting away from them.
func TestInitMigration_SchemaInvariants(t *testing.T) {
	data, err := migrationFiles.ReadFile("migrations/0001_init.up.sql")
	if err != nil {
		t.Fatalf("Failed to read embedded migration: %v", err)
	}
	schema := string(data)

	categories := tableDDL(t, schema, "categories")
	if !strings.Contains(categories, "user_id UUID NOT NULL REFERENCES users") {
		t.Error("Expected categories to belong to a user")
	}
	if !strings.Contains(categories, "UNIQUE (user_id, name)") {
		t.Error("Expected category names to be unique per user, not globally")
	}

	transactions := tableDDL(t, schema, "transactions")
	if !strings.Contains(transactions, "CHECK (amount > 0)") {
		t.Error("Expected transactions to reject non-positive amounts")
	}

	// A zero budget means the category is not tracked, so zero stays legal
	budgets := tableDDL(t, schema, "budgets")
	if !strings.Contains(budgets, "CHECK (amount >= 0)") {
		t.Error("Expected budgets to allow a zero amount")
	}
	if !strings.Contains(budgets, "UNIQUE (user_id, category_id, month)") {
		t.Error("Expected one budget per user, category and month")
	}

	notifications := tableDDL(t, schema, "notifications")
	if !strings.Contains(notifications, "UNIQUE (user_id, message)") {
		t.Error("Expected notification messages to be unique per user")
	}
}

func TestInitMigration_DownDropsAllTables(t *testing.T) {
	data, err := migrationFiles.ReadFile("migrations/0001_init.down.sql")
	if err != nil {
		t.Fatalf("Failed to read embedded migration: %v", err)
	}
	down := string(data)

	for _, table := range []string{"notifications", "budgets", "transactions", "categories", "users"} {
		if !strings.Contains(down, "DROP TABLE IF EXISTS "+table) {
			t.Errorf("Expected down migration to drop %s", table)
		}
	}
}

// tableDDL extracts one CREATE TABLE statement from the schema
func tableDDL(t *testing.T, schema, table string) string {
	t.Helper()

	marker := "CREATE TABLE " + table + " ("
	start := strings.Index(schema, marker)
	if start < 0 {
		t.Fatalf("Schema does not create table %s", table)
	}
	rest := schema[start:]
	end := strings.Index(rest, ";")
	if end < 0 {
		t.Fatalf("Unterminated CREATE TABLE for %s", table)
	}
	return rest[:end]
}
