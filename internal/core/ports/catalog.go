package ports

import "context"

// Product is the catalog read model consumed by order intake: enough to
// price and name a line item. Prices are in minor currency units.
type Product struct {
	ID       int64
	Name     string
	Price    int64
	IsActive bool
}

// CatalogReader resolves product identities against the current catalog.
// The catalog itself is managed elsewhere; the workflow only prices orders
// against it.
type CatalogReader interface {
	// GetProducts retrieves the products with the given identities.
	// Unknown identities are simply absent from the result, not an error.
	GetProducts(ctx context.Context, ids []int64) ([]Product, error)
}
