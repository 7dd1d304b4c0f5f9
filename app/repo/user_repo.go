package repo

import (
	"adboard/app/models"

	"gorm.io/gorm"
)

type UserRepository struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{db: db} }

// WithTx rebinds the repository to a transaction handle.
func (r *UserRepository) WithTx(tx *gorm.DB) *UserRepository { return &UserRepository{db: tx} }

func (r *UserRepository) Create(u *models.User) error { return wrap(r.db.Create(u).Error) }

func (r *UserRepository) FindByID(id uint) (*models.User, error) {
	var u models.User
	if err := r.db.First(&u, id).Error; err != nil {
		return nil, wrap(err)
	}
	return &u, nil
}

func (r *UserRepository) FindByName(name string) (*models.User, error) {
	var u models.User
	if err := r.db.Where("name = ?", name).First(&u).Error; err != nil {
		return nil, wrap(err)
	}
	return &u, nil
}

// Update applies the given column set to one row. The caller builds the set
// from an allow-listed merge, never from raw payload keys, and checks
// existence itself: zero affected rows is not a failure here because a
// no-op merge over identical values also affects nothing.
func (r *UserRepository) Update(id uint, updates map[string]any) error {
	return wrap(r.db.Model(&models.User{}).Where("id = ?", id).Updates(updates).Error)
}

func (r *UserRepository) Delete(id uint) error {
	res := r.db.Delete(&models.User{}, id)
	if res.Error != nil {
		return wrap(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
