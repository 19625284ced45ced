package amenity

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hbnb/internal/domain"
	"hbnb/internal/pkg/response"
	"hbnb/internal/pkg/validator"
)

type Handler struct {
	svc AmenityService
}

func NewHandler(svc AmenityService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	amenities := r.Group("/amenities")
	{
		amenities.POST("/", h.Create)
		amenities.GET("/", h.List)
		amenities.GET("/:id", h.Get)
		amenities.PUT("/:id", h.Update)
	}
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateAmenityRequest
	if err := validator.BindJSON(c, &req); err != nil {
		response.FromError(c, err)
		return
	}

	a, err := h.svc.CreateAmenity(c.Request.Context(), *req.Name)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, NewAmenityResponse(a))
}

// List returns every amenity as {"amenities": [...]}, empty list included.
func (h *Handler) List(c *gin.Context) {
	items := h.svc.GetAllAmenities(c.Request.Context())
	out := AmenityListResponse{Amenities: make([]AmenityResponse, 0, len(items))}
	for _, a := range items {
		out.Amenities = append(out.Amenities, NewAmenityResponse(a))
	}
	response.JSON(c, http.StatusOK, out)
}

func (h *Handler) Get(c *gin.Context) {
	a, err := h.svc.GetAmenity(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, NewAmenityResponse(a))
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateAmenityRequest
	if err := validator.BindJSON(c, &req); err != nil {
		response.FromError(c, err)
		return
	}

	a, err := h.svc.UpdateAmenity(c.Request.Context(), c.Param("id"), domain.AmenityPatch{Name: req.Name})
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, NewAmenityResponse(a))
}
