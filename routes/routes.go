package routes

import (
	"github.com/AthemiS13/nutrix/controllers"
	"github.com/AthemiS13/nutrix/middlewares"
	"github.com/AthemiS13/nutrix/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	controllers.InitRealtime(services.NewProgressHub())

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)
		user.GET("/goals", controllers.GetGoals)
		user.PUT("/goals", controllers.UpdateGoals)
	}

	food := r.Group("/food")
	food.Use(middlewares.AuthMiddleware())
	{
		food.GET("/search", controllers.SearchFoods)
	}

	recipes := r.Group("/recipes")
	recipes.Use(middlewares.AuthMiddleware())
	{
		recipes.POST("", controllers.CreateRecipe)
		recipes.GET("", controllers.ListRecipes)
		recipes.GET("/:id", controllers.GetRecipe)
		recipes.DELETE("/:id", controllers.DeleteRecipe)
		recipes.POST("/:id/entries", controllers.AddRecipeEntry)
		recipes.PUT("/:id/entries/:entryID", controllers.UpdateRecipeEntry)
		recipes.DELETE("/:id/entries/:entryID", controllers.RemoveRecipeEntry)
	}

	meals := r.Group("/meals")
	meals.Use(middlewares.AuthMiddleware())
	{
		meals.POST("", controllers.LogMeal)
		meals.POST("/describe", controllers.DescribeMeal)
		meals.GET("", controllers.ListMeals)
		meals.DELETE("/:id", controllers.DeleteMeal)
	}

	stats := r.Group("/stats")
	stats.Use(middlewares.AuthMiddleware())
	{
		stats.GET("/daily", controllers.GetDailyStats)
		stats.GET("/weekly", controllers.GetWeeklyStats)
		stats.GET("/history", controllers.GetProgressHistory)
	}

	ws := r.Group("/ws")
	ws.Use(middlewares.AuthMiddleware())
	{
		ws.GET("/progress", controllers.ProgressWS)
	}

	return r
}
