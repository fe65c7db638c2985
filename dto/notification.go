package dto

type NotificationResponse struct {
	ID          uint   `json:"id"`
	UserID      uint   `json:"userId"`
	Message     string `json:"message"`
	Description string `json:"description"`
	Read        bool   `json:"read"`
	CreatedAt   string `json:"createdAt"`
}

type MarkReadRequest struct {
	IDs []uint `json:"ids" binding:"required"`
}
