package repositories

import (
	"context"
	"workshoppro-backend/models"
	"workshoppro-backend/utils"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// List returns every active account. Password hashes never leave the model's
// json:"-" field, so the rows are safe to serialize as-is.
func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("full_name").
		Find(&users).Error
	return users, translateError(err)
}

func (r *UserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).
		Where("id = ? AND active = ?", id, true).
		First(&user).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}

// FindByLoginOrEmail resolves an active account for the credential check.
func (r *UserRepository) FindByLoginOrEmail(ctx context.Context, identifier string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).
		Where("(login = ? OR email = ?) AND active = ?", identifier, identifier, true).
		First(&user).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}

// Create stores the account with the password bcrypt-hashed.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	hashed, err := utils.HashPassword(user.Password)
	if err != nil {
		return err
	}
	user.Password = hashed
	user.Active = true
	return translateError(r.db.WithContext(ctx).Create(user).Error)
}

// Update rewrites name, email and password of an active account. The password
// is rehashed on every update, unconditionally.
func (r *UserRepository) Update(ctx context.Context, id uint, fullName, email, password string) error {
	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}
	result := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ? AND active = ?", id, true).
		Updates(map[string]interface{}{
			"full_name": fullName,
			"email":     email,
			"password":  hashed,
		})
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete soft-deletes the account.
func (r *UserRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).
		Model(&models.User{}).
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
