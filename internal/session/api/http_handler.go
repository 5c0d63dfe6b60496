package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ridloal/storefront-demo/internal/platform/logger"
	"github.com/ridloal/storefront-demo/internal/session/domain"
	"github.com/ridloal/storefront-demo/internal/session/service"
)

type SessionHandler struct {
	sessionService service.SessionService
}

func NewSessionHandler(ss service.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: ss}
}

func (h *SessionHandler) RegisterRoutes(router *gin.RouterGroup) {
	authRoutes := router.Group("/auth")
	{
		authRoutes.POST("/login", h.Login)
		authRoutes.POST("/register", h.Register)
		authRoutes.POST("/logout", h.Logout)
		authRoutes.POST("/guest", h.SwitchToGuest)
		authRoutes.GET("/session", h.CurrentSession)
	}
}

func (h *SessionHandler) Login(c *gin.Context) {
	var req domain.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Login: bad request", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload: " + err.Error()})
		return
	}

	response, err := h.sessionService.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Login: service error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to login, please try again"})
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *SessionHandler) Register(c *gin.Context) {
	var req domain.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Register: bad request", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload: " + err.Error()})
		return
	}

	response, err := h.sessionService.Register(c.Request.Context(), req)
	if err != nil {
		logger.Error("Register: service error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register, please try again"})
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (h *SessionHandler) Logout(c *gin.Context) {
	if err := h.sessionService.Logout(c.Request.Context()); err != nil {
		logger.Error("Logout: service error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to logout"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *SessionHandler) SwitchToGuest(c *gin.Context) {
	response, err := h.sessionService.SwitchToGuest(c.Request.Context())
	if err != nil {
		logger.Error("SwitchToGuest: service error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to switch to guest mode"})
		return
	}
	c.JSON(http.StatusOK, response)
}

// CurrentSession mengembalikan session yang dipersist, kalau ada. Client
// memakai ini saat start untuk memutuskan apakah perlu prompt guest/login.
func (h *SessionHandler) CurrentSession(c *gin.Context) {
	session, err := h.sessionService.Current(c.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrNoActiveSession) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		logger.Error("CurrentSession: service error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load session"})
		return
	}
	c.JSON(http.StatusOK, session)
}
