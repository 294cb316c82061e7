package settings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	pkgerrors "github.com/glowdecor/backend/pkg/errors"
)

func setupSettingsTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// named shared-cache DB so every pooled connection sees the same schema
	conn, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	schema := `
CREATE TABLE IF NOT EXISTS site_settings (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL,
  updated_at DATETIME
);`
	require.NoError(t, conn.Exec(schema).Error)

	return conn
}

func TestSaveAndGetPreservesValueTypes(t *testing.T) {
	svc := NewService(setupSettingsTestDB(t))
	ctx := context.Background()

	err := svc.Save(ctx, map[string]any{
		"site_title":  "Glow Decor",
		"max_items":   float64(12),
		"maintenance": true,
		"socials":     map[string]any{"telegram": "@glowdecor"},
	})
	require.NoError(t, err)

	values, err := svc.Get(ctx)
	require.NoError(t, err)

	assert.Equal(t, "Glow Decor", values["site_title"])
	assert.Equal(t, float64(12), values["max_items"])
	assert.Equal(t, true, values["maintenance"])
	assert.Equal(t, map[string]any{"telegram": "@glowdecor"}, values["socials"])
}

func TestSaveOverwritesExistingKeys(t *testing.T) {
	svc := NewService(setupSettingsTestDB(t))
	ctx := context.Background()

	require.NoError(t, svc.Save(ctx, map[string]any{"site_title": "Old"}))
	require.NoError(t, svc.Save(ctx, map[string]any{"site_title": "New"}))

	values, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "New", values["site_title"])
	assert.Len(t, values, 1)
}

func TestSaveEmptyMapIsRejected(t *testing.T) {
	svc := NewService(setupSettingsTestDB(t))

	err := svc.Save(context.Background(), map[string]any{})
	require.Error(t, err)

	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
	assert.Equal(t, "Settings object required", typed.Message())
}

func TestGetEmptyStoreReturnsEmptyMap(t *testing.T) {
	svc := NewService(setupSettingsTestDB(t))

	values, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Empty(t, values)
}
