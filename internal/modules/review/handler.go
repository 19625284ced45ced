package review

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hbnb/internal/domain"
	"hbnb/internal/facade"
	"hbnb/internal/pkg/response"
	"hbnb/internal/pkg/validator"
)

type Handler struct {
	svc ReviewService
}

func NewHandler(svc ReviewService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	reviews := r.Group("/reviews")
	{
		reviews.POST("/", h.Create)
		reviews.GET("/", h.List)
		reviews.GET("/:id", h.Get)
		reviews.PUT("/:id", h.Update)
		reviews.DELETE("/:id", h.Delete)
	}
}

// Create posts a review for an existing place by an existing user.
// @Summary		Create a review
// @Tags		Reviews
// @Param		request	body	CreateReviewRequest	true	"text, rating, user_id, place_id"
// @Success		201	{object}	ReviewResponse
// @Failure		400	{object}	map[string]string	"invalid rating or unknown user/place"
// @Router		/reviews/ [POST]
func (h *Handler) Create(c *gin.Context) {
	var req CreateReviewRequest
	if err := validator.BindJSON(c, &req); err != nil {
		response.FromError(c, err)
		return
	}

	rv, err := h.svc.CreateReview(c.Request.Context(), facade.ReviewInput{
		Text:    *req.Text,
		Rating:  *req.Rating,
		UserID:  *req.UserID,
		PlaceID: *req.PlaceID,
	})
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, NewReviewResponse(rv))
}

func (h *Handler) List(c *gin.Context) {
	reviews := h.svc.GetAllReviews(c.Request.Context())
	out := make([]ReviewResponse, 0, len(reviews))
	for _, rv := range reviews {
		out = append(out, NewReviewResponse(rv))
	}
	response.JSON(c, http.StatusOK, out)
}

func (h *Handler) Get(c *gin.Context) {
	rv, err := h.svc.GetReview(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, NewReviewResponse(rv))
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateReviewRequest
	if err := validator.BindJSON(c, &req); err != nil {
		response.FromError(c, err)
		return
	}

	rv, err := h.svc.UpdateReview(c.Request.Context(), c.Param("id"), domain.ReviewPatch{
		Text:   req.Text,
		Rating: req.Rating,
	})
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, NewReviewResponse(rv))
}

// Delete removes a review and detaches it from its place.
// @Summary		Delete a review
// @Tags		Reviews
// @Param		id	path	string	true	"review id"
// @Success		200	{object}	map[string]string
// @Failure		404	{object}	map[string]string
// @Router		/reviews/{id} [DELETE]
func (h *Handler) Delete(c *gin.Context) {
	if err := h.svc.DeleteReview(c.Request.Context(), c.Param("id")); err != nil {
		response.FromError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Review deleted successfully")
}
