package repositories

import (
	"context"
	"errors"
	"strings"
	"workshoppro-backend/models"

	"gorm.io/gorm"
)

type VehicleRepository struct {
	db *gorm.DB
}

func NewVehicleRepository(db *gorm.DB) *VehicleRepository {
	return &VehicleRepository{db: db}
}

// List returns active vehicles with their owner, ordered by make.
func (r *VehicleRepository) List(ctx context.Context, descending bool) ([]models.Vehicle, error) {
	order := "make"
	if descending {
		order = "make DESC"
	}
	var vehicles []models.Vehicle
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Where("active = ?", true).
		Order(order).
		Find(&vehicles).Error
	if err != nil {
		return nil, translateError(err)
	}
	fillOwners(vehicles)
	return vehicles, nil
}

// GetByID returns the vehicle whether active or not. The reactivation
// workflow needs to load inactive vehicles, so no soft-delete filter here —
// unlike the customer lookup.
func (r *VehicleRepository) GetByID(ctx context.Context, id uint) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Where("id = ?", id).
		First(&vehicle).Error
	if err != nil {
		return nil, translateError(err)
	}
	fillOwner(&vehicle)
	return &vehicle, nil
}

// SearchByPlate does a substring match on the normalized plate, across active
// and inactive vehicles (an inactive hit is the entry point to reactivation).
// Active rows sort first.
func (r *VehicleRepository) SearchByPlate(ctx context.Context, plate string) ([]models.Vehicle, error) {
	var vehicles []models.Vehicle
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Where("plate LIKE ?", "%"+strings.ToUpper(plate)+"%").
		Order("active DESC, make").
		Find(&vehicles).Error
	if err != nil {
		return nil, translateError(err)
	}
	fillOwners(vehicles)
	return vehicles, nil
}

// SearchByOwnerTaxID returns the active vehicles of the customer holding the
// given (normalized) tax id.
func (r *VehicleRepository) SearchByOwnerTaxID(ctx context.Context, taxID string) ([]models.Vehicle, error) {
	var vehicles []models.Vehicle
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Joins("JOIN customers ON customers.id = vehicles.customer_id").
		Where("customers.tax_id = ? AND vehicles.active = ?", taxID, true).
		Order("vehicles.make").
		Find(&vehicles).Error
	if err != nil {
		return nil, translateError(err)
	}
	fillOwners(vehicles)
	return vehicles, nil
}

// Owner is the projection the confirm-owner lookup returns: just enough to
// identify the customer, nothing that could misreport the rest of the row.
type Owner struct {
	ID       uint   `json:"id"`
	FullName string `json:"fullName"`
	TaxID    string `json:"taxId"`
}

// FindOwnerByTaxID resolves an active customer by tax id. The registration
// form uses it to confirm the owner before saving a vehicle.
func (r *VehicleRepository) FindOwnerByTaxID(ctx context.Context, taxID string) (*Owner, error) {
	var owner Owner
	err := r.db.WithContext(ctx).
		Model(&models.Customer{}).
		Select("id", "full_name", "tax_id").
		Where("tax_id = ? AND active = ?", taxID, true).
		First(&owner).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &owner, nil
}

// Create inserts the vehicle and reads it back with its owner in the same
// transaction.
func (r *VehicleRepository) Create(ctx context.Context, vehicle *models.Vehicle) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		vehicle.Active = true
		if err := tx.Create(vehicle).Error; err != nil {
			return err
		}
		return tx.Preload("Customer").First(vehicle, vehicle.ID).Error
	})
	if err != nil {
		return translateError(err)
	}
	fillOwner(vehicle)
	return nil
}

// Update rewrites an active vehicle's fields and returns the fresh record.
func (r *VehicleRepository) Update(ctx context.Context, id uint, vehicle *models.Vehicle) (*models.Vehicle, error) {
	var updated models.Vehicle
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Vehicle{}).
			Where("id = ? AND active = ?", id, true).
			Updates(map[string]interface{}{
				"customer_id": vehicle.CustomerID,
				"make":        vehicle.Make,
				"model":       vehicle.Model,
				"engine":      vehicle.Engine,
				"model_year":  vehicle.ModelYear,
				"plate":       vehicle.Plate,
				"odometer":    vehicle.Odometer,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.Preload("Customer").First(&updated, id).Error
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, translateError(err)
	}
	fillOwner(&updated)
	return &updated, nil
}

// Deactivate flips the flag and severs the owner reference in one statement;
// the vehicle leaves the listings but stays in the table for reactivation.
func (r *VehicleRepository) Deactivate(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).
		Model(&models.Vehicle{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"active":      false,
			"customer_id": nil,
		})
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Reactivate sets the flag and binds the new owner in one statement: a
// vehicle never becomes active without an owner.
func (r *VehicleRepository) Reactivate(ctx context.Context, id uint, customerID uint) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Vehicle{}).
			Where("id = ?", id).
			Updates(map[string]interface{}{
				"active":      true,
				"customer_id": customerID,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.Preload("Customer").First(&vehicle, id).Error
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, translateError(err)
	}
	fillOwner(&vehicle)
	return &vehicle, nil
}

func fillOwner(v *models.Vehicle) {
	if v.Customer != nil {
		v.OwnerName = &v.Customer.FullName
		v.OwnerTaxID = &v.Customer.TaxID
	}
}

func fillOwners(vehicles []models.Vehicle) {
	for i := range vehicles {
		fillOwner(&vehicles[i])
	}
}
