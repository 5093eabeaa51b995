package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"boutique_back_end/internal/store"
)

// GET /api/storefront
func (h *Handler) GetStorefront(c *gin.Context) {
	c.JSON(http.StatusOK, h.State.View())
}

// GET /api/products?q=&sort=
func (h *Handler) ListProducts(c *gin.Context) {
	products := h.State.Browse(c.Query("q"), store.ParseSortKey(c.Query("sort")))
	c.JSON(http.StatusOK, gin.H{"products": products, "count": len(products)})
}

// GET /api/products/search?q= : Elasticsearch en priorité, filtre local sinon
func (h *Handler) SearchProducts(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "paramètre 'q' manquant"})
		return
	}

	if h.Search != nil {
		results, err := h.Search.Search(c.Request.Context(), query)
		if err == nil && len(results) > 0 {
			c.JSON(http.StatusOK, gin.H{"products": results, "count": len(results), "source": "elastic"})
			return
		}
	}

	products := h.State.Filter(query)
	c.JSON(http.StatusOK, gin.H{"products": products, "count": len(products), "source": "local"})
}
