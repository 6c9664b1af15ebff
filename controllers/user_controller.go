package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	Users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{Users: users}
}

func (u *UserController) GetProfile(c *gin.Context) {
	email := c.MustGet("email").(string)

	profile, err := u.Users.GetProfile(c.Request.Context(), email)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (u *UserController) UpdateProfile(c *gin.Context) {
	email := c.MustGet("email").(string)

	var input services.ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := u.Users.UpdateProfile(c.Request.Context(), email, input); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "profile updated"})
}

// ClearData erases every record and derived document for the account.
func (u *UserController) ClearData(c *gin.Context) {
	uid := c.GetUint("userID")

	if err := u.Users.ClearAllUserData(c.Request.Context(), uid); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "all user data cleared"})
}

// DeleteAccount disables the account and erases its data.
func (u *UserController) DeleteAccount(c *gin.Context) {
	uid := c.GetUint("userID")
	email := c.MustGet("email").(string)

	if err := u.Users.ClearAllUserData(c.Request.Context(), uid); err != nil {
		abortWithError(c, err)
		return
	}
	if err := u.Users.Disable(c.Request.Context(), email); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "account deleted"})
}
