package products

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	pkgerrors "github.com/glowdecor/backend/pkg/errors"
)

func setupProductsTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// named shared-cache DB so every pooled connection sees the same schema
	conn, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	schema := `
CREATE TABLE IF NOT EXISTS products (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  category TEXT NOT NULL,
  price INTEGER NOT NULL DEFAULT 0,
  image_url TEXT NOT NULL,
  glow_color TEXT NOT NULL DEFAULT 'blue',
  description TEXT,
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, conn.Exec(schema).Error)

	return conn
}

func newTestService(t *testing.T) Service {
	t.Helper()
	return NewService(NewRepository(setupProductsTestDB(t)))
}

func testInput(name, category string) Input {
	return Input{
		Name:     name,
		Category: category,
		Price:    12500,
		ImageURL: "https://cdn.test/" + name + ".jpg",
	}
}

func TestCreateAndGetProduct(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	id, err := svc.Create(ctx, testInput("Лампа", "interior"))
	require.NoError(t, err)
	require.Positive(t, id)

	view, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Лампа", view.Name)
	assert.Equal(t, "interior", view.Category)
	assert.Equal(t, int64(12500), view.Price)
	assert.Equal(t, DefaultGlowColor, view.Glow)
	assert.NotEmpty(t, view.CreatedAt)
}

func TestGetMissingProductReturnsNotFound(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Get(context.Background(), 12345)
	require.Error(t, err)

	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
	assert.Equal(t, "Product not found", typed.Message())
}

func TestListFiltersByCategory(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, testInput("Лампа", "interior"))
	require.NoError(t, err)
	_, err = svc.Create(ctx, testInput("Фонарь", "landscape"))
	require.NoError(t, err)

	views, err := svc.List(ctx, "landscape")
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "Фонарь", views[0].Name)

	views, err = svc.List(ctx, "all")
	require.NoError(t, err)
	assert.Len(t, views, 2)

	views, err = svc.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, views, 2)
}

func TestListOrdersNewestFirst(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, testInput("Первый", "interior"))
	require.NoError(t, err)
	second, err := svc.Create(ctx, testInput("Второй", "interior"))
	require.NoError(t, err)

	views, err := svc.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, second, views[0].ID)
	assert.Equal(t, first, views[1].ID)
}

func TestUpdateProduct(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	id, err := svc.Create(ctx, testInput("Лампа", "interior"))
	require.NoError(t, err)

	updated := testInput("Лампа большая", "landscape")
	updated.GlowColor = "green"
	require.NoError(t, svc.Update(ctx, id, updated))

	view, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Лампа большая", view.Name)
	assert.Equal(t, "landscape", view.Category)
	assert.Equal(t, "green", view.Glow)
}

func TestUpdateMissingProductReturnsNotFound(t *testing.T) {
	svc := newTestService(t)

	err := svc.Update(context.Background(), 12345, testInput("Лампа", "interior"))
	require.Error(t, err)

	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}

func TestDeleteProduct(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	id, err := svc.Create(ctx, testInput("Лампа", "interior"))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, id))

	_, err = svc.Get(ctx, id)
	require.Error(t, err)

	// a second delete reports not found, not success
	err = svc.Delete(ctx, id)
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}
