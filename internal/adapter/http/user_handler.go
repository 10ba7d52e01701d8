package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	userDomain "cryptolend-backend/internal/domain/user"
	"cryptolend-backend/internal/engine"
)

type UserHandler struct {
	eng  *engine.Engine
	repo userDomain.Repository
}

func NewUserHandler(eng *engine.Engine, repo userDomain.Repository) *UserHandler {
	return &UserHandler{eng: eng, repo: repo}
}

type createUserReq struct {
	Email    string `json:"email"     validate:"required"`
	Password string `json:"password"  validate:"required"`
	IsAdmin  *bool  `json:"is_admin"`
	IsActive *bool  `json:"is_active"`
}

type userDTO struct {
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	IsAdmin   bool      `json:"is_admin"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func toUserDTO(u *userDomain.User) userDTO {
	return userDTO{
		UserID:    u.UserID,
		Email:     u.Email,
		IsAdmin:   u.IsAdmin,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}

func (h *UserHandler) CreateUser(c echo.Context) error {
	var req createUserReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	u := &userDomain.User{Email: req.Email, Password: req.Password}
	changes := engine.NewChangeSet("email", "password")
	if req.IsAdmin != nil {
		u.IsAdmin = *req.IsAdmin
		changes.Mark("isAdmin")
	}
	if req.IsActive != nil {
		u.IsActive = *req.IsActive
		changes.Mark("isActive")
	}

	if err := h.eng.SaveUser(c.Request().Context(), u, changes); err != nil {
		return respondSaveError(c, err)
	}
	return c.JSON(http.StatusCreated, toUserDTO(u))
}

func (h *UserHandler) GetUser(c echo.Context) error {
	u, err := h.repo.GetByUserID(c.Request().Context(), c.Param("user_id"))
	if err != nil {
		return respondLookupError(c, err)
	}
	return c.JSON(http.StatusOK, toUserDTO(u))
}
