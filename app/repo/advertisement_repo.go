package repo

import (
	"adboard/app/models"

	"gorm.io/gorm"
)

type AdvertisementRepository struct{ db *gorm.DB }

func NewAdvertisementRepository(db *gorm.DB) *AdvertisementRepository {
	return &AdvertisementRepository{db: db}
}

func (r *AdvertisementRepository) WithTx(tx *gorm.DB) *AdvertisementRepository {
	return &AdvertisementRepository{db: tx}
}

func (r *AdvertisementRepository) ListAll() ([]models.Advertisement, error) {
	var ads []models.Advertisement
	if err := r.db.Order("id").Find(&ads).Error; err != nil {
		return nil, wrap(err)
	}
	return ads, nil
}

func (r *AdvertisementRepository) FindByID(id uint) (*models.Advertisement, error) {
	var ad models.Advertisement
	if err := r.db.First(&ad, id).Error; err != nil {
		return nil, wrap(err)
	}
	return &ad, nil
}

func (r *AdvertisementRepository) Create(ad *models.Advertisement) error {
	return wrap(r.db.Create(ad).Error)
}

// Update applies an allow-listed column set. Existence is the caller's
// concern; identical values legitimately affect zero rows.
func (r *AdvertisementRepository) Update(id uint, updates map[string]any) error {
	return wrap(r.db.Model(&models.Advertisement{}).Where("id = ?", id).Updates(updates).Error)
}

func (r *AdvertisementRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Advertisement{}, id)
	if res.Error != nil {
		return wrap(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DetachUser clears user_id on every advertisement owned by the given user.
// Used when the user row is deleted so dangling references never persist.
func (r *AdvertisementRepository) DetachUser(userID uint) error {
	return wrap(r.db.Model(&models.Advertisement{}).
		Where("user_id = ?", userID).
		Update("user_id", nil).Error)
}
