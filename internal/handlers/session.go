package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"bingo-arena-backend/internal/models"
	"bingo-arena-backend/internal/services"
)

type SessionHandler struct {
	manager  *services.GameSessionManager
	registry *services.ConfigRegistry
}

func NewSessionHandler(manager *services.GameSessionManager, registry *services.ConfigRegistry) *SessionHandler {
	return &SessionHandler{
		manager:  manager,
		registry: registry,
	}
}

func (h *SessionHandler) ListConfigs(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"configs": h.registry.List(),
	})
}

func (h *SessionHandler) CreateSession(c *gin.Context) {
	var req models.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request",
			"details": err.Error(),
		})
		return
	}

	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request",
			"details": err.Error(),
		})
		return
	}

	session, err := h.manager.CreateGameSession(req.GameConfigID, req.Players)
	if err != nil {
		if errors.Is(err, services.ErrConfigNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error":   "Game config not found",
				"details": err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to create session",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"session": session,
	})
}

func (h *SessionHandler) StartSession(c *gin.Context) {
	sessionID := c.Param("id")

	session, check, err := h.manager.StartGame(sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to start session",
			"details": err.Error(),
		})
		return
	}

	if session == nil && check == nil {
		// Unknown id or already past waiting: a benign no-op.
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Session not found or not startable",
		})
		return
	}

	if check != nil && !check.CanStart {
		c.JSON(http.StatusConflict, gin.H{
			"error":     "Game start refused by admission control",
			"admission": check,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"session":   session,
		"admission": check,
	})
}

func (h *SessionHandler) FinishSession(c *gin.Context) {
	sessionID := c.Param("id")

	session, err := h.manager.FinishGame(sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to finish session",
			"details": err.Error(),
		})
		return
	}

	if session == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Session not found or not finishable",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"session": session,
	})
}

func (h *SessionHandler) GetSession(c *gin.Context) {
	session := h.manager.GetSession(c.Param("id"))
	if session == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"session": session,
	})
}

func (h *SessionHandler) ListSessions(c *gin.Context) {
	sessions := h.manager.ListSessions()
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"sessions": sessions,
		"count":    len(sessions),
	})
}
