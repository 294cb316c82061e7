package products

import (
	"time"

	"github.com/glowdecor/backend/pkg/db/models"
)

// View is the read-side product shape. The storefront consumes the short
// image/glow aliases, so they stay on the wire.
type View struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Price       int64  `json:"price"`
	Image       string `json:"image"`
	Glow        string `json:"glow"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
}

// Input carries the full writable field set. Create and update both replace
// every field.
type Input struct {
	Name        string
	Category    string
	Price       int64
	ImageURL    string
	GlowColor   string
	Description string
}

// DefaultGlowColor is applied when a create/update omits glow_color.
const DefaultGlowColor = "blue"

func toView(p models.Product) View {
	return View{
		ID:          p.ID,
		Name:        p.Name,
		Category:    p.Category,
		Price:       p.Price,
		Image:       p.ImageURL,
		Glow:        p.GlowColor,
		Description: p.Description,
		CreatedAt:   p.CreatedAt.Format(time.RFC3339),
	}
}
