package place

import (
	"time"

	"hbnb/internal/domain"
)

type CreatePlaceRequest struct {
	Title       *string  `json:"title" validate:"required"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price" validate:"required"`
	Latitude    *float64 `json:"latitude" validate:"required"`
	Longitude   *float64 `json:"longitude" validate:"required"`
	OwnerID     *string  `json:"owner_id" validate:"required"`
	Amenities   []string `json:"amenities,omitempty" validate:"omitempty,dive,required"`
}

type UpdatePlaceRequest struct {
	Title       *string  `json:"title,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	OwnerID     *string  `json:"owner_id,omitempty"`
	Amenities   []string `json:"amenities,omitempty" validate:"omitempty,dive,required"`
}

type OwnerSummary struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

type AmenitySummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ReviewSummary struct {
	ID     string `json:"id"`
	Text   string `json:"text"`
	Rating int    `json:"rating"`
	UserID string `json:"user_id"`
}

type PlaceResponse struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Price       float64          `json:"price"`
	Latitude    float64          `json:"latitude"`
	Longitude   float64          `json:"longitude"`
	OwnerID     string           `json:"owner_id"`
	Owner       OwnerSummary     `json:"owner"`
	Amenities   []AmenitySummary `json:"amenities"`
	Reviews     []ReviewSummary  `json:"reviews"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// PlaceReviewResponse is one entry of GET /places/{id}/reviews.
type PlaceReviewResponse struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Rating    int       `json:"rating"`
	PlaceID   string    `json:"place_id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewPlaceResponse(p *domain.Place) PlaceResponse {
	owner := p.Owner()
	resp := PlaceResponse{
		ID:          p.ID(),
		Title:       p.Title(),
		Description: p.Description(),
		Price:       p.Price(),
		Latitude:    p.Latitude(),
		Longitude:   p.Longitude(),
		OwnerID:     owner.ID(),
		Owner: OwnerSummary{
			ID:        owner.ID(),
			FirstName: owner.FirstName(),
			LastName:  owner.LastName(),
			Email:     owner.Email(),
		},
		Amenities: make([]AmenitySummary, 0),
		Reviews:   make([]ReviewSummary, 0),
		CreatedAt: p.CreatedAt(),
		UpdatedAt: p.UpdatedAt(),
	}
	for _, a := range p.Amenities() {
		resp.Amenities = append(resp.Amenities, AmenitySummary{ID: a.ID(), Name: a.Name()})
	}
	for _, r := range p.Reviews() {
		resp.Reviews = append(resp.Reviews, ReviewSummary{
			ID:     r.ID(),
			Text:   r.Text(),
			Rating: r.Rating(),
			UserID: r.User().ID(),
		})
	}
	return resp
}

func NewPlaceReviewResponse(r *domain.Review) PlaceReviewResponse {
	return PlaceReviewResponse{
		ID:        r.ID(),
		Text:      r.Text(),
		Rating:    r.Rating(),
		PlaceID:   r.Place().ID(),
		UserID:    r.User().ID(),
		CreatedAt: r.CreatedAt(),
		UpdatedAt: r.UpdatedAt(),
	}
}
