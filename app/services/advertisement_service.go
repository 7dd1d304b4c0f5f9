package services

import (
	"adboard/app/dto"
	"adboard/app/models"
	"adboard/app/repo"
	"adboard/app/validate"

	"gorm.io/gorm"
)

type AdvertisementService struct {
	db       *gorm.DB
	ads      *repo.AdvertisementRepository
	validate *validate.Validator
}

func NewAdvertisementService(db *gorm.DB, ads *repo.AdvertisementRepository, v *validate.Validator) *AdvertisementService {
	return &AdvertisementService{db: db, ads: ads, validate: v}
}

func (s *AdvertisementService) List() ([]dto.AdvertisementResponse, error) {
	ads, err := s.ads.ListAll()
	if err != nil {
		return nil, err
	}
	result := make([]dto.AdvertisementResponse, 0, len(ads))
	for i := range ads {
		result = append(result, *adToDTO(&ads[i]))
	}
	return result, nil
}

func (s *AdvertisementService) Get(id uint) (*dto.AdvertisementResponse, error) {
	ad, err := s.ads.FindByID(id)
	if err != nil {
		return nil, err
	}
	return adToDTO(ad), nil
}

// Create validates and inserts. UserID is stored as given; it is not
// checked against app_users.
func (s *AdvertisementService) Create(req dto.CreateAdvertisementRequest) (uint, error) {
	if err := s.validate.Struct(req); err != nil {
		return 0, err
	}
	ad := models.Advertisement{
		Title:       req.Title,
		Description: req.Description,
		Owner:       req.Owner,
		UserID:      req.UserID,
	}
	if err := s.ads.Create(&ad); err != nil {
		return 0, err
	}
	return ad.ID, nil
}

// Update merges submitted fields over the stored advertisement inside one
// transaction. Absent fields keep their stored values.
func (s *AdvertisementService) Update(id uint, req dto.UpdateAdvertisementRequest) error {
	if err := s.validate.Struct(req); err != nil {
		return err
	}
	updates := make(map[string]any)
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Owner != nil {
		updates["owner"] = *req.Owner
	}
	if req.UserID != nil {
		updates["user_id"] = *req.UserID
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		ads := s.ads.WithTx(tx)
		if _, err := ads.FindByID(id); err != nil {
			return err
		}
		if len(updates) == 0 {
			return nil
		}
		return ads.Update(id, updates)
	})
}

func (s *AdvertisementService) Delete(id uint) error {
	return s.ads.Delete(id)
}

func adToDTO(ad *models.Advertisement) *dto.AdvertisementResponse {
	return &dto.AdvertisementResponse{
		ID:           ad.ID,
		Title:        ad.Title,
		Description:  ad.Description,
		Owner:        ad.Owner,
		UserID:       ad.UserID,
		CreationTime: ad.CreationTime.Format(dto.TimeLayout),
	}
}
