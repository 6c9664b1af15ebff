package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type JournalController struct {
	Journal *services.JournalService
}

func NewJournalController(journal *services.JournalService) *JournalController {
	return &JournalController{Journal: journal}
}

func (j *JournalController) Add(c *gin.Context) {
	uid := c.GetUint("userID")

	var input services.JournalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := j.Journal.Add(c.Request.Context(), uid, input)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func (j *JournalController) List(c *gin.Context) {
	uid := c.GetUint("userID")

	entries, err := j.Journal.List(c.Request.Context(), uid, queryLimit(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

func (j *JournalController) Update(c *gin.Context) {
	uid := c.GetUint("userID")
	id, ok := pathID(c)
	if !ok {
		return
	}

	var input services.JournalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := j.Journal.Update(c.Request.Context(), uid, id, input)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (j *JournalController) Delete(c *gin.Context) {
	uid := c.GetUint("userID")
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := j.Journal.Delete(c.Request.Context(), uid, id); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
