package migrate_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/glowdecor/backend/pkg/migrate"
)

func TestMigrationsDirValidates(t *testing.T) {
	if err := migrate.ValidateDir("migrations"); err != nil {
		t.Fatalf("migration validation failed: %v", err)
	}
}

func TestProductsMigrationContainsSchema(t *testing.T) {
	matches, err := filepath.Glob(filepath.Join("migrations", "*_create_products.sql"))
	if err != nil {
		t.Fatalf("glob migrations: %v", err)
	}
	if len(matches) == 0 {
		t.Fatalf("no products migration file found")
	}

	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("read migration file: %v", err)
	}
	content := string(data)

	checks := []string{
		"CREATE TABLE products",
		"glow_color TEXT NOT NULL DEFAULT 'blue'",
		"CREATE INDEX idx_products_category ON products (category)",
		"CREATE INDEX idx_products_created_at ON products (created_at DESC)",
		"DROP TABLE products",
	}

	for _, sub := range checks {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}

func TestTelegramMessagesMigrationIndexesAuthLookup(t *testing.T) {
	matches, err := filepath.Glob(filepath.Join("migrations", "*_create_telegram_messages.sql"))
	if err != nil {
		t.Fatalf("glob migrations: %v", err)
	}
	if len(matches) == 0 {
		t.Fatalf("no telegram messages migration file found")
	}

	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("read migration file: %v", err)
	}

	if !strings.Contains(string(data), "idx_telegram_messages_user_phone") {
		t.Errorf("missing authorization lookup index")
	}
}
