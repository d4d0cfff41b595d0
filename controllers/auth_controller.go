package controllers

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"shopping-widget/client"
	"shopping-widget/models"
	"shopping-widget/store"
	"shopping-widget/utils"
)

// AuthClient is the slice of the shop API the auth handlers need.
type AuthClient interface {
	Register(ctx context.Context, email, username, password string) error
	Login(ctx context.Context, username, password string) (string, error)
}

type AuthController struct {
	Client AuthClient
	Store  store.Store
}

// respondRemoteError maps the client error taxonomy to a user-visible
// notification. No remote failure is fatal to the session; the caches keep
// serving whatever was last persisted.
func respondRemoteError(c *gin.Context, action string, err error) {
	log.Printf("%s failed: %v", action, err)

	var authErr *client.AuthError
	var svcErr *client.ServiceError
	var transportErr *client.TransportError
	var protoErr *client.ProtocolError

	switch {
	case errors.As(err, &authErr):
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Success: false,
			Message: "Please log in first",
			Error:   authErr.Reason,
		})
	case errors.As(err, &svcErr):
		message := svcErr.Message
		if message == "" {
			message = "The shop service rejected the request"
		}
		c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Success: false,
			Message: message,
			Error:   svcErr.Error(),
		})
	case errors.As(err, &transportErr):
		c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Success: false,
			Message: "Could not reach the shop service",
			Error:   transportErr.Error(),
		})
	case errors.As(err, &protoErr):
		c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Success: false,
			Message: "Unexpected response from the shop service",
			Error:   protoErr.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Something went wrong",
			Error:   err.Error(),
		})
	}
}

// Register godoc
// @Summary Register new user
// @Description Forward a registration to the shop service
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Register Request"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /auth/register [post]
func (ctrl *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid request"})
		return
	}

	if err := ctrl.Client.Register(c.Request.Context(), req.Email, req.Username, req.Password); err != nil {
		respondRemoteError(c, "Registration", err)
		return
	}

	c.JSON(http.StatusCreated, models.Response{Success: true, Message: "Registration successful"})
}

// Login godoc
// @Summary User login
// @Description Log in against the shop service and keep the session token
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login Request"
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid request"})
		return
	}

	token, err := ctrl.Client.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondRemoteError(c, "Login", err)
		return
	}

	if err := ctrl.Store.Set(store.TokenKey, token); err != nil {
		log.Printf("Failed to persist session token: %v", err)
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Login successful",
		Data:    gin.H{"username": utils.TokenSubject(token)},
	})
}

// Logout godoc
// @Summary User logout
// @Description Drop the session token
// @Tags Authentication
// @Produce json
// @Success 200 {object} models.Response
// @Router /auth/logout [post]
func (ctrl *AuthController) Logout(c *gin.Context) {
	if err := ctrl.Store.Remove(store.TokenKey); err != nil {
		log.Printf("Failed to remove session token: %v", err)
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Logged out"})
}
