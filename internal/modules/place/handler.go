package place

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hbnb/internal/facade"
	"hbnb/internal/pkg/response"
	"hbnb/internal/pkg/validator"
)

type Handler struct {
	svc PlaceService
}

func NewHandler(svc PlaceService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	places := r.Group("/places")
	{
		places.POST("/", h.Create)
		places.GET("/", h.List)
		places.GET("/:id", h.Get)
		places.PUT("/:id", h.Update)
		places.GET("/:id/reviews", h.Reviews)
	}
}

// Create lists a new place for an existing owner.
// @Summary		Create a place
// @Tags		Places
// @Param		request	body	CreatePlaceRequest	true	"title, price, latitude, longitude, owner_id, amenities"
// @Success		201	{object}	PlaceResponse
// @Failure		400	{object}	map[string]string	"invalid data, unknown owner or amenity"
// @Router		/places/ [POST]
func (h *Handler) Create(c *gin.Context) {
	var req CreatePlaceRequest
	if err := validator.BindJSON(c, &req); err != nil {
		response.FromError(c, err)
		return
	}

	in := facade.PlaceInput{
		Title:      *req.Title,
		Price:      *req.Price,
		Latitude:   *req.Latitude,
		Longitude:  *req.Longitude,
		OwnerID:    *req.OwnerID,
		AmenityIDs: req.Amenities,
	}
	if req.Description != nil {
		in.Description = *req.Description
	}

	p, err := h.svc.CreatePlace(c.Request.Context(), in)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, NewPlaceResponse(p))
}

func (h *Handler) List(c *gin.Context) {
	places := h.svc.GetAllPlaces(c.Request.Context())
	out := make([]PlaceResponse, 0, len(places))
	for _, p := range places {
		out = append(out, NewPlaceResponse(p))
	}
	response.JSON(c, http.StatusOK, out)
}

func (h *Handler) Get(c *gin.Context) {
	p, err := h.svc.GetPlace(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, NewPlaceResponse(p))
}

// Update patches the supplied fields. Amenities in the body are attached in
// addition to the ones already present.
func (h *Handler) Update(c *gin.Context) {
	var req UpdatePlaceRequest
	if err := validator.BindJSON(c, &req); err != nil {
		response.FromError(c, err)
		return
	}

	p, err := h.svc.UpdatePlace(c.Request.Context(), c.Param("id"), facade.PlaceUpdate{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		OwnerID:     req.OwnerID,
		AmenityIDs:  req.Amenities,
	})
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, NewPlaceResponse(p))
}

func (h *Handler) Reviews(c *gin.Context) {
	reviews, err := h.svc.GetReviewsByPlace(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	out := make([]PlaceReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, NewPlaceReviewResponse(r))
	}
	response.JSON(c, http.StatusOK, out)
}
