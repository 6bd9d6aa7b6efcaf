package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/AthemiS13/nutrix/config"
	"github.com/AthemiS13/nutrix/nutrition"
	"github.com/AthemiS13/nutrix/services"

	"github.com/gin-gonic/gin"
)

// POST /meals logs a recipe portion, or an ad-hoc entry with explicit
// nutrients. Exactly one of recipe_id / nutrients must be supplied.
func LogMeal(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var body struct {
		RecipeID  string              `json:"recipe_id"`
		Label     string              `json:"label"`
		MassGrams float64             `json:"mass_grams" binding:"required,gt=0"`
		Nutrients *map[string]float64 `json:"nutrients"`
		Date      string              `json:"date"` // YYYY-MM-DD, default today
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	loggedOn, ok := parseDateOrToday(c, body.Date)
	if !ok {
		return
	}

	mealSvc := services.NewMealService(config.DB, hub)

	if body.RecipeID != "" {
		recipe, err := services.NewRecipeService(config.DB).Get(userID, body.RecipeID)
		if err != nil {
			c.JSON(recipeStatus(err), gin.H{"error": err.Error()})
			return
		}
		entry, err := mealSvc.LogRecipe(userID, recipe, body.MassGrams, loggedOn)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, entry)
		return
	}

	if body.Nutrients == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "either recipe_id or nutrients is required"})
		return
	}
	vec, err := nutrition.VectorFromMap(*body.Nutrients)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	entry, err := mealSvc.LogManual(userID, body.Label, body.MassGrams, vec, loggedOn)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// POST /meals/describe takes a free-text description, estimated by the LLM
// collaborator, then logged like any other ad-hoc entry.
func DescribeMeal(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var body struct {
		Description string  `json:"description" binding:"required"`
		MassGrams   float64 `json:"mass_grams" binding:"required,gt=0"`
		Date        string  `json:"date"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	loggedOn, ok := parseDateOrToday(c, body.Date)
	if !ok {
		return
	}

	vec, err := services.NewEstimateService().EstimateNutrients(body.Description, body.MassGrams)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	entry, err := services.NewMealService(config.DB, hub).
		LogManual(userID, body.Description, body.MassGrams, vec, loggedOn)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// GET /meals?date=YYYY-MM-DD
func ListMeals(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	date, ok := parseDateOrToday(c, c.Query("date"))
	if !ok {
		return
	}

	meals, err := services.NewMealService(config.DB, hub).ListByDate(userID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, meals)
}

// DELETE /meals/:id
func DeleteMeal(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	err := services.NewMealService(config.DB, hub).Delete(userID, c.Param("id"))
	if errors.Is(err, services.ErrMealNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func parseDateOrToday(c *gin.Context, raw string) (time.Time, bool) {
	if raw == "" {
		return time.Now(), true
	}
	date, err := time.Parse("2006-01-02", raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
		return time.Time{}, false
	}
	return date, true
}
