package controllers

import (
	"net/http"

	"github.com/AthemiS13/nutrix/services"

	"github.com/gin-gonic/gin"
)

func GetGoals(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	goal, err := services.GetGoals(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"calories": goal.Calories,
		"protein":  goal.Protein,
	})
}

func UpdateGoals(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var req struct {
		Calories float64  `json:"calories" binding:"required,gt=0"`
		Protein  *float64 `json:"protein"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	protein := 0.0
	if req.Protein != nil {
		protein = *req.Protein
	}

	if err := services.UpsertGoals(userID, req.Calories, protein); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
