package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"boutique_back_end/internal/store"
)

// GET /api/cart
func (h *Handler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, h.State.Cart())
}

// POST /api/cart
func (h *Handler) AddToCart(c *gin.Context) {
	var input struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	if err := h.State.AddToCart(c.Request.Context(), input.Name); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.State.Cart())
}

// DELETE /api/cart/:index
func (h *Handler) RemoveFromCart(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Index invalide"})
		return
	}

	if err := h.State.RemoveFromCart(c.Request.Context(), index); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.State.Cart())
}

// POST /api/checkout/open
func (h *Handler) OpenCheckout(c *gin.Context) {
	if err := h.State.OpenCheckout(); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.State.View().Modals)
}

// POST /api/checkout/close
func (h *Handler) CloseCheckout(c *gin.Context) {
	h.State.CloseCheckout()
	c.JSON(http.StatusOK, h.State.View().Modals)
}

// POST /api/orders
func (h *Handler) PlaceOrder(c *gin.Context) {
	ref, err := h.State.PlaceOrder(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	view := h.State.View()
	c.JSON(http.StatusCreated, gin.H{
		"orderId": ref,
		"message": store.MsgOrderPlaced,
		"cart":    view.Cart,
	})
}
