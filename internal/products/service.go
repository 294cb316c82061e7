package products

import (
	"context"
	"strings"

	"github.com/glowdecor/backend/pkg/db/models"
	pkgerrors "github.com/glowdecor/backend/pkg/errors"
)

// Service exposes catalog reads for the storefront and full CRUD for the
// admin panel.
type Service interface {
	List(ctx context.Context, category string) ([]View, error)
	Get(ctx context.Context, id int64) (*View, error)
	Create(ctx context.Context, input Input) (int64, error)
	Update(ctx context.Context, id int64, input Input) error
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo *Repository
}

func NewService(repo *Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context, category string) ([]View, error) {
	category = strings.TrimSpace(category)
	if category == "all" {
		category = ""
	}

	rows, err := s.repo.List(ctx, category)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing products")
	}

	views := make([]View, 0, len(rows))
	for _, row := range rows {
		views = append(views, toView(row))
	}
	return views, nil
}

func (s *service) Get(ctx context.Context, id int64) (*View, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading product")
	}
	view := toView(*row)
	return &view, nil
}

func (s *service) Create(ctx context.Context, input Input) (int64, error) {
	product := newProduct(input)
	if err := s.repo.Create(ctx, &product); err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "creating product")
	}
	return product.ID, nil
}

func (s *service) Update(ctx context.Context, id int64, input Input) error {
	if err := s.repo.Update(ctx, id, newProduct(input)); err != nil {
		if IsNotFound(err) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "Product not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "updating product")
	}
	return nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if IsNotFound(err) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "Product not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "deleting product")
	}
	return nil
}

func newProduct(input Input) models.Product {
	glow := strings.TrimSpace(input.GlowColor)
	if glow == "" {
		glow = DefaultGlowColor
	}
	return models.Product{
		Name:        input.Name,
		Category:    input.Category,
		Price:       input.Price,
		ImageURL:    input.ImageURL,
		GlowColor:   glow,
		Description: input.Description,
	}
}
