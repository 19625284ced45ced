package review

import (
	"time"

	"hbnb/internal/domain"
)

type CreateReviewRequest struct {
	Text    *string `json:"text" validate:"required"`
	Rating  *int    `json:"rating" validate:"required"`
	UserID  *string `json:"user_id" validate:"required"`
	PlaceID *string `json:"place_id" validate:"required"`
}

// UpdateReviewRequest changes text and rating only; the author and the place
// are fixed at creation.
type UpdateReviewRequest struct {
	Text   *string `json:"text,omitempty"`
	Rating *int    `json:"rating,omitempty"`
}

type ReviewResponse struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Rating    int       `json:"rating"`
	PlaceID   string    `json:"place_id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewReviewResponse(r *domain.Review) ReviewResponse {
	return ReviewResponse{
		ID:        r.ID(),
		Text:      r.Text(),
		Rating:    r.Rating(),
		PlaceID:   r.Place().ID(),
		UserID:    r.User().ID(),
		CreatedAt: r.CreatedAt(),
		UpdatedAt: r.UpdatedAt(),
	}
}
