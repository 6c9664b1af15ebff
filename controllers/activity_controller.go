package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type ActivityController struct {
	Activities *services.ActivityService
}

func NewActivityController(activities *services.ActivityService) *ActivityController {
	return &ActivityController{Activities: activities}
}

func (a *ActivityController) Add(c *gin.Context) {
	uid := c.GetUint("userID")

	var input services.ActivityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := a.Activities.Add(c.Request.Context(), uid, input)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, session)
}

func (a *ActivityController) List(c *gin.Context) {
	uid := c.GetUint("userID")

	sessions, err := a.Activities.List(c.Request.Context(), uid, c.Query("type"), queryLimit(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessions": sessions})
}

func (a *ActivityController) Update(c *gin.Context) {
	uid := c.GetUint("userID")
	id, ok := pathID(c)
	if !ok {
		return
	}

	var input services.ActivityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := a.Activities.Update(c.Request.Context(), uid, id, input)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (a *ActivityController) Delete(c *gin.Context) {
	uid := c.GetUint("userID")
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := a.Activities.Delete(c.Request.Context(), uid, id); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
