package handler

import (
	"github.com/gin-gonic/gin"

	"registration/src/app/http/dto"
	"registration/src/app/http/response"
	"registration/src/app/middleware"
	"registration/src/core/usecase"
)

// UserHandler handles registration and listing endpoints.
type UserHandler struct {
	registrationService *usecase.RegistrationService
}

func NewUserHandler(registrationService *usecase.RegistrationService) *UserHandler {
	return &UserHandler{registrationService: registrationService}
}

// Register validates and stores a new user.
// POST /v1/users
func (h *UserHandler) Register(c *gin.Context) {
	requestID := middleware.GetRequestID(c)

	var req dto.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "all fields except city are required", requestID)
		return
	}

	candidate, err := req.ToCandidate()
	if err != nil {
		_ = c.Error(err)
		response.FromDomainError(c, err, requestID)
		return
	}

	user, err := h.registrationService.Register(c.Request.Context(), candidate)
	if err != nil {
		// Attach error for middleware logging
		_ = c.Error(err)
		response.FromDomainError(c, err, requestID)
		return
	}

	response.Created(c, dto.UserResponse{}.FromDomain(user))
}

// CheckField validates one form field.
// POST /v1/users/check
func (h *UserHandler) CheckField(c *gin.Context) {
	requestID := middleware.GetRequestID(c)

	var req dto.CheckFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "field must be one of firstName, lastName, email, birth, postalCode", requestID)
		return
	}

	if err := h.registrationService.CheckField(c.Request.Context(), req.Field, req.Value); err != nil {
		response.FromDomainError(c, err, requestID)
		return
	}

	response.OK(c, dto.CheckFieldResponse{Field: req.Field, Valid: true})
}

// List returns the user counter and the registered users.
// GET /v1/users
func (h *UserHandler) List(c *gin.Context) {
	dir, err := h.registrationService.Directory(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}

	response.OK(c, dto.DirectoryResponse{}.FromDomain(dir))
}

// Get returns one registered user.
// GET /v1/users/:user_id
func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.registrationService.Get(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}

	response.OK(c, dto.UserResponse{}.FromDomain(user))
}
