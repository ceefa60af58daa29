package business

import (
	"time"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/business"
)

// CreateBusinessRequest represents a request to create a business
type CreateBusinessRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=100"`
	Currency string `json:"currency" binding:"omitempty,currency"`
	Email    string `json:"email" binding:"omitempty,email,max=200"`
	Phone    string `json:"phone" binding:"omitempty,max=50"`
	Address  string `json:"address" binding:"max=500"`
}

// UpdateBusinessRequest represents a partial update of a business
type UpdateBusinessRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=1,max=100"`
	Currency *string `json:"currency" binding:"omitempty,currency"`
	Email    *string `json:"email" binding:"omitempty,max=200"`
	Phone    *string `json:"phone" binding:"omitempty,max=50"`
	Address  *string `json:"address" binding:"omitempty,max=500"`
}

// BusinessResponse represents a business in API responses
type BusinessResponse struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"user_id"`
	Name      string     `json:"name"`
	Currency  string     `json:"currency"`
	Email     string     `json:"email,omitempty"`
	Phone     string     `json:"phone,omitempty"`
	Address   string     `json:"address,omitempty"`
	State     string     `json:"state"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// ToBusinessResponse converts a domain Business to a response
func ToBusinessResponse(b *business.Business) BusinessResponse {
	return BusinessResponse{
		ID:        b.ID,
		UserID:    b.UserID,
		Name:      b.Name,
		Currency:  b.Currency,
		Email:     b.Email,
		Phone:     b.Phone,
		Address:   b.Address,
		State:     string(b.State()),
		DeletedAt: b.DeletedAt,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}
