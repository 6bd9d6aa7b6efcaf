package controllers

import (
	"net/http"

	"github.com/AthemiS13/nutrix/services"

	"github.com/gin-gonic/gin"
)

// GET /food/search?q=apple
func SearchFoods(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing 'q' query param"})
		return
	}

	foodSvc := services.NewFoodService(services.NewFoodDataService())
	out, err := foodSvc.Search(query)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}
