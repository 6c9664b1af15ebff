// controllers/dev_controller.go
package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type DevController struct {
	Users *services.UserService
}

func NewDevController(users *services.UserService) *DevController {
	return &DevController{Users: users}
}

// ResetData wipes the authenticated user's records and derived state.
// Debug/test tooling only; mount behind the auth middleware.
func (d *DevController) ResetData(c *gin.Context) {
	v, ok := c.Get("userID")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	uid, _ := v.(uint)

	if err := d.Users.ClearAllUserData(c.Request.Context(), uid); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
