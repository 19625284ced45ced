package user

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hbnb/internal/domain"
	"hbnb/internal/facade"
	"hbnb/internal/pkg/response"
	"hbnb/internal/pkg/validator"
)

type Handler struct {
	svc UserService
}

func NewHandler(svc UserService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	users := r.Group("/users")
	{
		users.POST("/", h.Create)
		users.GET("/", h.List)
		users.GET("/:id", h.Get)
		users.PUT("/:id", h.Update)
	}
}

// Create registers a new user.
// @Summary		Register a user
// @Tags		Users
// @Param		request	body	CreateUserRequest	true	"first_name, last_name, email, is_admin"
// @Success		201	{object}	UserResponse
// @Failure		400	{object}	map[string]string	"invalid data or email already registered"
// @Router		/users/ [POST]
func (h *Handler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := validator.BindJSON(c, &req); err != nil {
		response.FromError(c, err)
		return
	}

	in := facade.UserInput{
		FirstName: *req.FirstName,
		LastName:  *req.LastName,
		Email:     *req.Email,
	}
	if req.IsAdmin != nil {
		in.IsAdmin = *req.IsAdmin
	}

	u, err := h.svc.CreateUser(c.Request.Context(), in)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, NewUserResponse(u))
}

func (h *Handler) List(c *gin.Context) {
	users := h.svc.GetAllUsers(c.Request.Context())
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, NewUserResponse(u))
	}
	response.JSON(c, http.StatusOK, out)
}

// Get returns one user.
// @Summary		Get a user
// @Tags		Users
// @Param		id	path	string	true	"user id"
// @Success		200	{object}	UserResponse
// @Failure		404	{object}	map[string]string
// @Router		/users/{id} [GET]
func (h *Handler) Get(c *gin.Context) {
	u, err := h.svc.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, NewUserResponse(u))
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateUserRequest
	if err := validator.BindJSON(c, &req); err != nil {
		response.FromError(c, err)
		return
	}

	u, err := h.svc.UpdateUser(c.Request.Context(), c.Param("id"), domain.UserPatch{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		IsAdmin:   req.IsAdmin,
	})
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, NewUserResponse(u))
}
