package converter

import (
	"time"

	"github.com/google/uuid"
	"github.com/sohanurdev/portfolio-backend/internal/domain"
)

// AccountResponse never carries any password field.
type AccountResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func AccountToApi(a *domain.Account) *AccountResponse {
	if a == nil {
		return nil
	}
	return &AccountResponse{
		ID:        a.ID,
		Name:      a.Name,
		Email:     a.Email,
		Role:      a.Role,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func AccountsToApi(accounts []*domain.Account) []*AccountResponse {
	result := make([]*AccountResponse, 0, len(accounts))
	for _, a := range accounts {
		result = append(result, AccountToApi(a))
	}
	return result
}
