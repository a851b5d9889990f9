package staffrepo

import (
	"context"
	"errors"

	"orderdesk/internal/core/domain/model/staff"
	"orderdesk/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormEmployeeRepository implements EmployeeRepository using GORM.
type GormEmployeeRepository struct {
	db *gorm.DB
}

// NewGormEmployeeRepository creates a new GORM employee repository.
func NewGormEmployeeRepository(db *gorm.DB) *GormEmployeeRepository {
	return &GormEmployeeRepository{db: db}
}

// Get retrieves an employee by ID.
func (r *GormEmployeeRepository) Get(ctx context.Context, id int64) (*staff.Employee, error) {
	return r.getBy(ctx, "employee", id, "id = ?", id)
}

// GetByChatID retrieves the employee bound to the given chat identity.
func (r *GormEmployeeRepository) GetByChatID(ctx context.Context, chatID int64) (*staff.Employee, error) {
	return r.getBy(ctx, "employee by chat", chatID, "chat_id = ?", chatID)
}

// GetByPhone retrieves an employee by the phone used as login key.
func (r *GormEmployeeRepository) GetByPhone(ctx context.Context, phone string) (*staff.Employee, error) {
	return r.getBy(ctx, "employee by phone", phone, "phone = ?", phone)
}

// Update persists the employee's session state. The role is a read-only
// reference and is never written from here.
func (r *GormEmployeeRepository) Update(ctx context.Context, aggregate *staff.Employee) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	// Select("*") forces nil values through, so logout actually clears the
	// chat binding and the held order.
	result := r.db.WithContext(ctx).Model(&EmployeeDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id", "Role").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("employee", dto.ID)
	}

	return nil
}

func (r *GormEmployeeRepository) getBy(
	ctx context.Context, paramName string, id any, query string, arg any,
) (*staff.Employee, error) {
	var dto EmployeeDTO
	if err := r.db.WithContext(ctx).Preload("Role").First(&dto, query, arg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(paramName, id)
		}
		return nil, err
	}

	return toDomain(dto)
}
