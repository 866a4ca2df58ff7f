package routes

import (
	"Farolero/controllers"
	"Farolero/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, db *gorm.DB) {
	router.Use(middleware.Logger())

	rc := controllers.NewRunController(db)

	api := router.Group("/")

	api.GET("/ping", controllers.Ping)

	run := api.Group("/game")
	{
		run.POST("/new", rc.NewGame())

		run.GET("/state", rc.State())

		run.POST("/deal", rc.Deal())

		run.POST("/discard", rc.Discard())

		run.POST("/play", rc.Play())

		run.POST("/save", rc.Save())

		run.POST("/load", rc.Load())

		run.GET("/saves", rc.Saves())
	}

	shop := api.Group("/shop")
	{
		shop.POST("/buy", rc.Buy())

		shop.POST("/reroll", rc.Reroll())

		shop.POST("/skip", rc.Skip())
	}
}
