package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sekolahku/user-service/internal/dto"
	"github.com/sekolahku/user-service/internal/middleware"
	"github.com/sekolahku/user-service/internal/models"
	"github.com/sekolahku/user-service/internal/services"
	"github.com/sekolahku/user-service/internal/validation"
)

const (
	defaultPage  = 1
	defaultLimit = 25
	maxLimit     = 100

	msgNotFound = "User profile not found"
)

// UserService is the persistence surface the handlers need.
type UserService interface {
	FindAll(offset, limit int, search string) ([]models.UserProfile, int64, error)
	FindByUserID(userID string) (*models.UserProfile, error)
	Create(req dto.CreateUserProfileRequest, createdBy string) (*models.UserProfile, error)
	Update(userID string, req dto.UpdateUserProfileRequest, updatedBy string) (*models.UserProfile, error)
	SoftDelete(userID, deletedBy string) error
}

type UserHandler struct {
	service  UserService
	validate *validation.Validator
}

func NewUserHandler(service UserService) *UserHandler {
	return &UserHandler{
		service:  service,
		validate: validation.New(),
	}
}

// List handles GET /. Malformed page/limit values fall back to defaults.
func (h *UserHandler) List(c *fiber.Ctx) error {
	page := c.QueryInt("page", defaultPage)
	if page < 1 {
		page = defaultPage
	}
	limit := c.QueryInt("limit", defaultLimit)
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	search := c.Query("search")
	offset := (page - 1) * limit

	items, total, err := h.service.FindAll(offset, limit, search)
	if err != nil {
		return err
	}

	return sendList(c, "Users retrieved", items, &dto.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: (total + int64(limit) - 1) / int64(limit),
	})
}

func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	profile, err := h.service.FindByUserID(c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return sendError(c, fiber.StatusNotFound, msgNotFound)
		}
		return err
	}
	return sendResponse(c, fiber.StatusOK, "User profile retrieved", profile)
}

func (h *UserHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateUserProfileRequest
	if ferr := validation.DecodeBody(c.Body(), &req); ferr != nil {
		return sendError(c, fiber.StatusBadRequest, ferr.Message)
	}
	if ferr := h.validate.Struct(&req); ferr != nil {
		return sendError(c, fiber.StatusBadRequest, ferr.Message)
	}

	profile, err := h.service.Create(req, middleware.Identity(c))
	if err != nil {
		// Conflicts on userId are not translated here; they surface at the
		// app-level error boundary.
		return err
	}
	return sendResponse(c, fiber.StatusCreated, "User profile created", profile)
}

func (h *UserHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateUserProfileRequest
	if ferr := validation.DecodeBody(c.Body(), &req); ferr != nil {
		return sendError(c, fiber.StatusBadRequest, ferr.Message)
	}
	if ferr := h.validate.Struct(&req); ferr != nil {
		return sendError(c, fiber.StatusBadRequest, ferr.Message)
	}

	profile, err := h.service.Update(c.Params("id"), req, middleware.Identity(c))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return sendError(c, fiber.StatusNotFound, msgNotFound)
		}
		return err
	}
	return sendResponse(c, fiber.StatusOK, "User profile updated", profile)
}

func (h *UserHandler) Delete(c *fiber.Ctx) error {
	err := h.service.SoftDelete(c.Params("id"), middleware.Identity(c))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return sendError(c, fiber.StatusNotFound, msgNotFound)
		}
		return err
	}
	return sendResponse(c, fiber.StatusOK, "User profile deleted successfully", nil)
}
