package routes

import (
	"pharmacy-store/controllers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the API endpoints. requireAuth guards every mutating
// route; reads stay public.
func RegisterRoutes(
	r *gin.Engine,
	auth *controllers.AuthController,
	products *controllers.ProductController,
	uploads *controllers.UploadController,
	requireAuth gin.HandlerFunc,
) {
	api := r.Group("/api")
	{
		api.POST("/login", auth.Login)
		api.POST("/logout", requireAuth, auth.Logout)
		api.GET("/check-auth", auth.CheckAuth)

		api.GET("/products", products.GetProducts)
		api.POST("/products", requireAuth, products.CreateProduct)
		api.PUT("/products/:id", requireAuth, products.UpdateProduct)
		api.DELETE("/products/:id", requireAuth, products.DeleteProduct)

		api.POST("/upload", requireAuth, uploads.UploadImage)
	}
}
