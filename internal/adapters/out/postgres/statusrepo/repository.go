package statusrepo

import (
	"context"
	"errors"

	"orderdesk/internal/core/domain/model/status"
	"orderdesk/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormStatusRepository implements StatusRepository using GORM.
type GormStatusRepository struct {
	db *gorm.DB
}

// NewGormStatusRepository creates a new GORM status repository.
func NewGormStatusRepository(db *gorm.DB) *GormStatusRepository {
	return &GormStatusRepository{db: db}
}

// Get retrieves a status by ID.
func (r *GormStatusRepository) Get(ctx context.Context, id int64) (*status.Status, error) {
	var dto StatusDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("status", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetInitial retrieves the status new orders start in: the row with the
// lowest identity.
func (r *GormStatusRepository) GetInitial(ctx context.Context) (*status.Status, error) {
	var dto StatusDTO
	if err := r.db.WithContext(ctx).Order("id").First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("status", "initial")
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes a status. Referential integrity does the guarding: while
// any order or audit entry still references the row, the delete fails with
// an integrity conflict instead of silently orphaning history.
func (r *GormStatusRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&StatusDTO{}, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrForeignKeyViolated) {
			return errs.NewIntegrityConflictError("status", id)
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("status", id)
	}

	return nil
}
