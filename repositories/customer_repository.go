package repositories

import (
	"context"
	"errors"
	"strings"
	"workshoppro-backend/models"

	"gorm.io/gorm"
)

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// List returns every active customer ordered by name.
func (r *CustomerRepository) List(ctx context.Context) ([]models.Customer, error) {
	var customers []models.Customer
	err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("full_name").
		Find(&customers).Error
	return customers, translateError(err)
}

// GetByID returns an active customer. Inactive rows are deliberately not
// reachable here; they come back only through the reactivate-on-create path.
func (r *CustomerRepository) GetByID(ctx context.Context, id uint) (*models.Customer, error) {
	var customer models.Customer
	err := r.db.WithContext(ctx).
		Where("id = ? AND active = ?", id, true).
		First(&customer).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &customer, nil
}

// SearchByName does a case-insensitive substring match on the stored
// (upper-cased) name.
func (r *CustomerRepository) SearchByName(ctx context.Context, name string) ([]models.Customer, error) {
	var customers []models.Customer
	err := r.db.WithContext(ctx).
		Where("full_name LIKE ? AND active = ?", "%"+strings.ToUpper(name)+"%", true).
		Order("full_name").
		Find(&customers).Error
	return customers, translateError(err)
}

// SearchByTaxID matches the exact tax id. Callers normalize the term first;
// the column already stores the canonical digits-only form.
func (r *CustomerRepository) SearchByTaxID(ctx context.Context, taxID string) ([]models.Customer, error) {
	var customers []models.Customer
	err := r.db.WithContext(ctx).
		Where("tax_id = ? AND active = ?", taxID, true).
		Find(&customers).Error
	return customers, translateError(err)
}

// SearchByPhone does a substring match on the normalized phone column.
func (r *CustomerRepository) SearchByPhone(ctx context.Context, phone string) ([]models.Customer, error) {
	var customers []models.Customer
	err := r.db.WithContext(ctx).
		Where("phone LIKE ? AND active = ?", "%"+phone+"%", true).
		Order("full_name").
		Find(&customers).Error
	return customers, translateError(err)
}

// Create inserts the customer, or reactivates and overwrites an inactive row
// holding the same tax id. A matching active row is a duplicate. The
// find-then-write pair runs in one transaction so a crash cannot leave a
// reactivated row with stale fields.
//
// Kind is bound to the tax id: on reactivation the stored kind wins and a
// differing declared kind is discarded without signal. The caller sees the
// stored value in the returned record.
func (r *CustomerRepository) Create(ctx context.Context, customer *models.Customer) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Customer
		err := tx.Where("tax_id = ?", customer.TaxID).
			Order("active DESC").
			First(&existing).Error
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			customer.Active = true
			return tx.Create(customer).Error
		}

		if existing.Active {
			return ErrDuplicate
		}

		// Reactivate-and-overwrite: same row, same id and kind, fresh data.
		if err := tx.Model(&models.Customer{}).
			Where("id = ?", existing.ID).
			Updates(overwriteFields(customer)).Error; err != nil {
			return err
		}
		customer.ID = existing.ID
		customer.Kind = existing.Kind
		customer.Active = true
		customer.CreatedAt = existing.CreatedAt
		return nil
	})
	return translateError(err)
}

// Update rewrites every mutable field of an active customer. Kind and tax id
// are immutable once assigned. Returns ErrNotFound when no active row matched.
func (r *CustomerRepository) Update(ctx context.Context, id uint, customer *models.Customer) error {
	result := r.db.WithContext(ctx).
		Model(&models.Customer{}).
		Where("id = ? AND active = ?", id, true).
		Updates(map[string]interface{}{
			"full_name":       customer.FullName,
			"birth_date":      customer.BirthDate,
			"gender":          customer.Gender,
			"phone":           customer.Phone,
			"phone_whats_app": customer.PhoneWhatsApp,
			"email":           customer.Email,
			"postal_code":     customer.PostalCode,
			"street":          customer.Street,
			"number":          customer.Number,
			"complement":      customer.Complement,
			"district":        customer.District,
			"city":            customer.City,
			"state":           customer.State,
		})
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete soft-deletes: the row stays, the flag flips.
func (r *CustomerRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).
		Model(&models.Customer{}).
		Where("id = ?", id).
		Update("active", false)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func overwriteFields(customer *models.Customer) map[string]interface{} {
	return map[string]interface{}{
		"full_name":       customer.FullName,
		"birth_date":      customer.BirthDate,
		"gender":          customer.Gender,
		"phone":           customer.Phone,
		"phone_whats_app": customer.PhoneWhatsApp,
		"email":           customer.Email,
		"postal_code":     customer.PostalCode,
		"street":          customer.Street,
		"number":          customer.Number,
		"complement":      customer.Complement,
		"district":        customer.District,
		"city":            customer.City,
		"state":           customer.State,
		"active":          true,
	}
}
