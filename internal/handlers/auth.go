package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"boutique_back_end/internal/store"
	"boutique_back_end/internal/utils"
)

type credentialsInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// POST /api/auth/register
func (h *Handler) Register(c *gin.Context) {
	var input credentialsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	if err := h.State.Register(c.Request.Context(), input.Username, input.Password); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": store.MsgRegistered})
}

// POST /api/auth/login
func (h *Handler) Login(c *gin.Context) {
	var input credentialsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	// jeton signé avant d'ouvrir la session : sans jeton, rien ne change
	token, err := utils.GenerateJWT(h.JWTSecret, input.Username)
	if err != nil {
		writeError(c, err)
		return
	}

	if err := h.State.Login(c.Request.Context(), input.Username, input.Password); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"token":    token,
		"username": input.Username,
		"role":     utils.RoleFor(input.Username),
		"user":     h.State.View().User,
	})
}

// POST /api/auth/logout
func (h *Handler) Logout(c *gin.Context) {
	if err := h.State.Logout(c.Request.Context()); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": store.MsgLoggedOut})
}

// POST /api/auth/login/open, /api/auth/login/close, idem pour register
func (h *Handler) ShowLogin(c *gin.Context) { h.State.ShowLogin(); h.modals(c) }
func (h *Handler) HideLogin(c *gin.Context) { h.State.HideLogin(); h.modals(c) }
func (h *Handler) ShowRegister(c *gin.Context) { h.State.ShowRegister(); h.modals(c) }
func (h *Handler) HideRegister(c *gin.Context) { h.State.HideRegister(); h.modals(c) }

func (h *Handler) modals(c *gin.Context) {
	c.JSON(http.StatusOK, h.State.View().Modals)
}
