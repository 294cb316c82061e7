package settings

import (
	"context"
	"encoding/json"
	"sort"

	"gorm.io/gorm"

	"github.com/glowdecor/backend/pkg/db"
	"github.com/glowdecor/backend/pkg/db/models"
	pkgerrors "github.com/glowdecor/backend/pkg/errors"
)

// Service reads and writes the site settings snapshot.
type Service interface {
	Get(ctx context.Context) (map[string]any, error)
	Save(ctx context.Context, values map[string]any) error
}

type service struct {
	conn *gorm.DB
	repo *Repository
}

func NewService(conn *gorm.DB) Service {
	return &service{conn: conn, repo: NewRepository(conn)}
}

// Get returns the full key/value map. Values that parse as JSON come back
// typed; anything else stays a raw string. The parse failure path is the
// intended fallback for plain-string values, not an error.
func (s *service) Get(ctx context.Context) (map[string]any, error) {
	rows, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading settings")
	}

	values := make(map[string]any, len(rows))
	for _, row := range rows {
		var parsed any
		if err := json.Unmarshal([]byte(row.Value), &parsed); err == nil {
			values[row.Key] = parsed
		} else {
			values[row.Key] = row.Value
		}
	}
	return values, nil
}

// Save upserts every key in one transaction. A failure on any key rolls back
// the whole batch.
func (s *service) Save(ctx context.Context, values map[string]any) error {
	if len(values) == 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "Settings object required")
	}

	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	return db.WithTx(ctx, s.conn, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		for _, key := range keys {
			encoded, err := encodeValue(values[key])
			if err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "encoding setting value")
			}
			if err := repo.Upsert(ctx, models.Setting{Key: key, Value: encoded}); err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "saving setting")
			}
		}
		return nil
	})
}

// encodeValue stores strings verbatim and JSON-encodes everything else, so a
// later Get round-trips the original type.
func encodeValue(value any) (string, error) {
	if s, ok := value.(string); ok {
		return s, nil
	}
	encoded, err := json.Marshal(value)
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}
