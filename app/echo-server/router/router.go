package router

import (
	"myLaptopHub/internal/middleware"
	"myLaptopHub/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetupUserRoutes(api *echo.Group, handler *rest.UserHandler, authRequired echo.MiddlewareFunc) {
	users := api.Group("/users")

	users.GET("/email-verification/:code", handler.VerifyEmail)
	users.POST("/register", handler.Register)
	users.POST("/login", handler.Login)

	users.POST("/logout", handler.Logout, authRequired)
	users.GET("", handler.GetAllUsers, authRequired, middleware.AdminOnly())
	users.GET("/:id", handler.GetUserByID, authRequired, middleware.SelfOrAdmin())
	users.PUT("/:id", handler.UpdateUser, authRequired, middleware.SelfOrAdmin())
	users.DELETE("/:id", handler.DeleteUser, authRequired, middleware.AdminOnly())
}

func SetupSearchRoutes(api *echo.Group, handler *rest.SearchHandler, authRequired echo.MiddlewareFunc) {
	api.GET("/search", handler.Search, authRequired)

	reco := api.Group("/recommendations", authRequired)
	reco.GET("", handler.ForYou)
}

func SetupLaptopRoutes(api *echo.Group, laptopHandler *rest.LaptopHandler, reviewHandler *rest.ReviewHandler, authRequired echo.MiddlewareFunc) {
	laptops := api.Group("/laptops")

	laptops.GET("", laptopHandler.GetAllLaptops)
	laptops.GET("/:id", laptopHandler.GetLaptopByID, middleware.OptionalAuth())
	laptops.GET("/:id/reviews", reviewHandler.GetReviewsByLaptop)
	laptops.POST("/:id/click", laptopHandler.RecordClick, authRequired)

	laptops.POST("", laptopHandler.CreateLaptop, authRequired, middleware.AdminOnly())
	laptops.PUT("/:id", laptopHandler.UpdateLaptop, authRequired, middleware.AdminOnly())
	laptops.DELETE("/:id", laptopHandler.DeleteLaptop, authRequired, middleware.AdminOnly())

	api.GET("/brands", laptopHandler.GetAllBrands)
}

func SetupReviewRoutes(api *echo.Group, handler *rest.ReviewHandler, authRequired echo.MiddlewareFunc) {
	reviews := api.Group("/reviews")

	reviews.POST("", handler.CreateReview, authRequired)
	reviews.POST("/import", handler.ImportReviews, authRequired, middleware.AdminOnly())
}

func SetupAdminRoutes(api *echo.Group, handler *rest.AdminHandler, authRequired echo.MiddlewareFunc) {
	admin := api.Group("/admin", authRequired, middleware.AdminOnly())

	admin.GET("/stats", handler.GetStats)
}
