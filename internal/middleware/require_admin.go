package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"boutique_back_end/internal/models"
	"boutique_back_end/internal/utils"
)

// SessionSource donne l'utilisateur actuellement connecté à la vitrine
type SessionSource interface {
	Session() string
}

// RequireAdmin exige un jeton admin appartenant à la session en cours :
// un jeton émis avant une déconnexion ne suffit plus.
func RequireAdmin(sessions SessionSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.GetString("username")
		role := c.GetString("role")
		if role != utils.RoleAdmin || !models.IsAdmin(username) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Accès réservé aux administrateurs"})
			return
		}
		if sessions.Session() != username {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Session admin expirée"})
			return
		}
		c.Next()
	}
}
