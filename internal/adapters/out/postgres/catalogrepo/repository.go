// Package catalogrepo provides read access to the product catalog. The
// catalog is managed through admin surfaces; the workflow only resolves
// product references against it when pricing orders.
package catalogrepo

import (
	"context"

	"orderdesk/internal/core/ports"

	"gorm.io/gorm"
)

// ProductDTO represents the database structure for catalog products.
// Prices are in minor currency units.
type ProductDTO struct {
	ID       int64 `gorm:"primaryKey;autoIncrement"`
	Name     string
	Price    int64
	IsActive bool
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

// GormCatalogReader implements CatalogReader using GORM.
type GormCatalogReader struct {
	db *gorm.DB
}

// NewGormCatalogReader creates a new GORM catalog reader.
func NewGormCatalogReader(db *gorm.DB) *GormCatalogReader {
	return &GormCatalogReader{db: db}
}

// GetProducts retrieves the products with the given identities. Unknown
// identities are absent from the result, not an error.
func (r *GormCatalogReader) GetProducts(ctx context.Context, ids []int64) ([]ports.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var dtos []ProductDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "id IN ?", ids).Error; err != nil {
		return nil, err
	}

	products := make([]ports.Product, 0, len(dtos))
	for _, dto := range dtos {
		products = append(products, ports.Product{
			ID:       dto.ID,
			Name:     dto.Name,
			Price:    dto.Price,
			IsActive: dto.IsActive,
		})
	}

	return products, nil
}
