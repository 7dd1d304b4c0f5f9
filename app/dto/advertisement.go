package dto

type CreateAdvertisementRequest struct {
	Title       string `json:"title" validate:"required,min=5,max=100"`
	Description string `json:"description" validate:"required,min=10,max=500"`
	Owner       string `json:"owner" validate:"omitempty,max=50"`
	UserID      *uint  `json:"user_id"`
}

type UpdateAdvertisementRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=5,max=100"`
	Description *string `json:"description" validate:"omitempty,min=10,max=500"`
	Owner       *string `json:"owner" validate:"omitempty,max=50"`
	UserID      *uint   `json:"user_id"`
}

type AdvertisementResponse struct {
	ID           uint   `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Owner        string `json:"owner"`
	UserID       *uint  `json:"user_id"`
	CreationTime string `json:"creation_time"`
}
