package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type MoodController struct {
	Moods *services.MoodService
}

func NewMoodController(moods *services.MoodService) *MoodController {
	return &MoodController{Moods: moods}
}

func (m *MoodController) Add(c *gin.Context) {
	uid := c.GetUint("userID")

	var input services.MoodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := m.Moods.Add(c.Request.Context(), uid, input)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func (m *MoodController) List(c *gin.Context) {
	uid := c.GetUint("userID")

	entries, err := m.Moods.List(c.Request.Context(), uid, c.Query("mood"), queryLimit(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

func (m *MoodController) Update(c *gin.Context) {
	uid := c.GetUint("userID")
	id, ok := pathID(c)
	if !ok {
		return
	}

	var input services.MoodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := m.Moods.Update(c.Request.Context(), uid, id, input)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (m *MoodController) Delete(c *gin.Context) {
	uid := c.GetUint("userID")
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := m.Moods.Delete(c.Request.Context(), uid, id); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
