package out

import (
	"context"

	"medcalc/internal/modules/formulary/domain"
)

// CatalogStore loads user formulary entries that extend the builtin catalog.
type CatalogStore interface {
	Load(ctx context.Context) ([]domain.Medication, error)
}
