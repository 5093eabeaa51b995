package handlers

import (
	"context"
	"errors"
	"log"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"boutique_back_end/internal/models"
	"boutique_back_end/internal/store"
)

// Searcher est la recherche plein texte optionnelle (Elasticsearch)
type Searcher interface {
	Search(ctx context.Context, query string) ([]models.Product, error)
}

// ImageUploader est le stockage optionnel des images produits (MinIO)
type ImageUploader interface {
	Upload(ctx context.Context, file *multipart.FileHeader) (string, error)
	SignedURL(ctx context.Context, imageURL string, ttl time.Duration) (string, error)
}

// Handler regroupe les dépendances des routes HTTP
type Handler struct {
	State     *store.State
	JWTSecret []byte
	Search    Searcher
	Images    ImageUploader
	Hub       *Hub
}

// writeError traduit les erreurs de la vitrine en réponses HTTP
func writeError(c *gin.Context, err error) {
	var loadErr *store.LoadError
	switch {
	case errors.Is(err, store.ErrLoginRequired):
		c.JSON(http.StatusUnauthorized, gin.H{"error": store.MsgLoginBeforeCheckout})
	case errors.Is(err, store.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": store.MsgInvalidCredentials})
	case errors.Is(err, store.ErrUserExists):
		c.JSON(http.StatusConflict, gin.H{"error": store.MsgUserExists})
	case errors.Is(err, store.ErrConfirmationRequired):
		c.JSON(http.StatusConflict, gin.H{"error": "Confirmation requise", "confirm": store.MsgConfirmDelete})
	case errors.Is(err, store.ErrNotAdmin):
		c.JSON(http.StatusForbidden, gin.H{"error": "Accès réservé aux administrateurs"})
	case errors.Is(err, store.ErrProductNotFound), errors.Is(err, store.ErrIndexOutOfRange):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrInvalidProduct):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Formulaire produit incomplet"})
	case errors.Is(err, store.ErrMissingUsername):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nom d'utilisateur requis"})
	case errors.As(err, &loadErr):
		log.Println("❌ Données persistées illisibles:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Données de la boutique illisibles"})
	default:
		log.Println("❌ Erreur vitrine:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur interne"})
	}
}
