package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"boutique_back_end/internal/models"
)

// POST /api/admin/panel/toggle
func (h *Handler) ToggleAdminPanel(c *gin.Context) {
	if err := h.State.ToggleAdminPanel(); err != nil {
		writeError(c, err)
		return
	}
	view := h.State.View()
	c.JSON(http.StatusOK, gin.H{"open": view.Modals.Admin, "admin": view.Admin})
}

// POST /api/admin/products : ajout, ou mise à jour si une édition est en cours
func (h *Handler) SaveProduct(c *gin.Context) {
	var form models.ProductForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	if err := h.State.AddOrUpdateProduct(c.Request.Context(), form); err != nil {
		writeError(c, err)
		return
	}
	view := h.State.View()
	c.JSON(http.StatusOK, gin.H{"message": view.Status.Admin, "products": view.Products})
}

// POST /api/admin/products/:index/edit
func (h *Handler) EditProduct(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Index invalide"})
		return
	}
	if err := h.State.EditProduct(index); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.State.View().Admin)
}

// DELETE /api/admin/products/:index?confirm=true
func (h *Handler) DeleteProduct(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Index invalide"})
		return
	}
	confirmed, _ := strconv.ParseBool(c.Query("confirm"))

	if err := h.State.DeleteProduct(c.Request.Context(), index, confirmed); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": h.State.View().Products})
}

// POST /api/admin/images (form-data "file")
func (h *Handler) UploadImage(c *gin.Context) {
	if h.Images == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Stockage d'images non configuré"})
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Champ 'file' manquant"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	imageURL, err := h.Images.Upload(ctx, file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload impossible"})
		return
	}

	resp := gin.H{"imageUrl": imageURL}
	if preview, err := h.Images.SignedURL(ctx, imageURL, 24*time.Hour); err == nil {
		resp["previewUrl"] = preview
	}
	c.JSON(http.StatusCreated, resp)
}
