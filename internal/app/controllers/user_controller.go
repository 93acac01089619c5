// Package controllers handles HTTP request handling
package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/calwells/degreeplanner/internal/app/models/dto"
	"github.com/calwells/degreeplanner/internal/app/services"
	"github.com/calwells/degreeplanner/internal/middleware"
	"github.com/calwells/degreeplanner/internal/pkg/apperrors"
	"github.com/calwells/degreeplanner/internal/pkg/validation"
)

// UserController handles account registration, login and advisee listing
type UserController struct {
	userService *services.UserService
	logger      zerolog.Logger
}

// NewUserController creates a new UserController
func NewUserController(userService *services.UserService, logger zerolog.Logger) *UserController {
	return &UserController{
		userService: userService,
		logger:      logger,
	}
}

// Register handles account creation
// @Summary Register a new student account
// @Description Creates a student account and returns a bearer token. Field validation failures are returned with a 200 status as an array of field errors, matching the client's expectations.
// @Tags user
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Registration fields"
// @Success 200 {object} dto.TokenResponse "Account created"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /user/register [post]
func (c *UserController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusOK, []dto.FieldError{
			dto.NewFieldError("body", "Invalid request body"),
		})
		return
	}

	fieldErrors := validateRegistration(&req)
	if len(fieldErrors) > 0 {
		ctx.JSON(http.StatusOK, fieldErrors)
		return
	}

	token, err := c.userService.Register(ctx.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			ctx.JSON(http.StatusOK, dto.FieldErrorsResponse{
				Errors: []dto.FieldError{dto.NewFieldError("email", "E-mail already in use")},
			})
			return
		}
		c.logger.Error().Err(err).Msg("Registration failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.TokenResponse{Token: token})
}

func validateRegistration(req *dto.RegisterRequest) []dto.FieldError {
	var fieldErrors []dto.FieldError
	if !validation.IsValidEmail(req.Email) {
		fieldErrors = append(fieldErrors, dto.NewFieldError("email", "Invalid e-mail address"))
	}
	if !validation.IsValidName(req.Name) {
		fieldErrors = append(fieldErrors, dto.NewFieldError("name", "Enter a first and last name"))
	}
	if !validation.IsValidPassword(req.Password) {
		fieldErrors = append(fieldErrors, dto.NewFieldError("password", "Password must be 8-32 characters"))
	}
	return fieldErrors
}

// Login handles credential verification
// @Summary Log in
// @Description Verifies email and password and returns a bearer token.
// @Tags user
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.TokenResponse "Token issued"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Router /user/login [post]
func (c *UserController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.ErrInvalidCredentials)
		return
	}

	token, err := c.userService.Login(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.TokenResponse{Token: token})
}

// IsTokenValid confirms the caller's token
// @Summary Check token validity
// @Description Returns 204 when the bearer token attached to the request is valid. The auth middleware rejects the request otherwise.
// @Tags user
// @Security BearerAuth
// @Success 204 "Token valid"
// @Failure 401 {object} dto.ErrorResponse "Invalid token"
// @Router /user/isTokenValid [get]
func (c *UserController) IsTokenValid(ctx *gin.Context) {
	ctx.Status(http.StatusNoContent)
}

// GetAdvisees lists the caller's advisees
// @Summary List advisees
// @Description Returns the students advised by the calling faculty user.
// @Tags user
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.AdviseeResponse "Advisee listing"
// @Failure 401 {object} dto.ErrorResponse "Caller is not faculty"
// @Router /user/getAdvisees [get]
func (c *UserController) GetAdvisees(ctx *gin.Context) {
	callerID := ctx.GetString("userID")

	advisees, err := c.userService.GetAdvisees(ctx.Request.Context(), callerID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, advisees)
}
