package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/AthemiS13/nutrix/config"
	"github.com/AthemiS13/nutrix/services"

	"github.com/gin-gonic/gin"
)

func recipeStatus(err error) int {
	if errors.Is(err, services.ErrRecipeNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func CreateRecipe(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe, err := services.NewRecipeService(config.DB).Create(userID, req.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, recipe)
}

func ListRecipes(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	recipes, err := services.NewRecipeService(config.DB).List(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, recipes)
}

func GetRecipe(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	recipe, err := services.NewRecipeService(config.DB).Get(userID, c.Param("id"))
	if err != nil {
		c.JSON(recipeStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, recipe)
}

func DeleteRecipe(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	if err := services.NewRecipeService(config.DB).Delete(userID, c.Param("id")); err != nil {
		c.JSON(recipeStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func AddRecipeEntry(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var req services.RecipeEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	foodSvc := services.NewFoodService(services.NewFoodDataService())
	ing, err := foodSvc.Lookup(req.ProviderFoodID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	recipe, err := services.NewRecipeService(config.DB).
		AddEntry(userID, c.Param("id"), ing, req.Amount, req.Unit)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, recipe)
}

func UpdateRecipeEntry(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	entryID, err := strconv.ParseUint(c.Param("entryID"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid entry id"})
		return
	}

	var req struct {
		MassGrams float64 `json:"mass_grams" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe, err := services.NewRecipeService(config.DB).
		UpdateEntryMass(userID, c.Param("id"), uint(entryID), req.MassGrams)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, recipe)
}

func RemoveRecipeEntry(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	entryID, err := strconv.ParseUint(c.Param("entryID"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid entry id"})
		return
	}

	recipe, err := services.NewRecipeService(config.DB).
		RemoveEntry(userID, c.Param("id"), uint(entryID))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, recipe)
}
