package interfaces

import (
	"context"
	"portal_electro/internal/domain/entities"
)

// ICatalogRepository exposes the read-only lookups that feed material selection.

type ICatalogRepository interface {
	ListCatalog(ctx context.Context) ([]entities.CatalogProduct, error)
	ListCablesAndAccessories(ctx context.Context) ([]entities.CableOrAccessory, error)
}
