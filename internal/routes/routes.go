package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"boutique_back_end/internal/handlers"
	"boutique_back_end/internal/middleware"
)

// RegisterRoutes branche toutes les routes de la vitrine
func RegisterRoutes(r *gin.Engine, h *handlers.Handler, corsOrigins []string) {
	r.Use(corsMiddleware(corsOrigins))

	api := r.Group("/api")
	{
		api.GET("/storefront", h.GetStorefront)
		api.GET("/products", h.ListProducts)
		api.GET("/products/search", h.SearchProducts)

		api.GET("/cart", h.GetCart)
		api.POST("/cart", h.AddToCart)
		api.DELETE("/cart/:index", h.RemoveFromCart)

		api.POST("/checkout/open", h.OpenCheckout)
		api.POST("/checkout/close", h.CloseCheckout)
		api.POST("/orders", h.PlaceOrder)

		auth := api.Group("/auth")
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.POST("/logout", h.Logout)
		auth.POST("/login/open", h.ShowLogin)
		auth.POST("/login/close", h.HideLogin)
		auth.POST("/register/open", h.ShowRegister)
		auth.POST("/register/close", h.HideRegister)

		admin := api.Group("/admin")
		admin.Use(middleware.AuthRequired(h.JWTSecret), middleware.RequireAdmin(h.State))
		admin.POST("/panel/toggle", h.ToggleAdminPanel)
		admin.POST("/products", h.SaveProduct)
		admin.POST("/products/:index/edit", h.EditProduct)
		admin.DELETE("/products/:index", h.DeleteProduct)
		admin.POST("/images", h.UploadImage)
	}

	r.GET("/ws", h.StorefrontWebSocket)
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization")
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cors.New(cfg)
}
