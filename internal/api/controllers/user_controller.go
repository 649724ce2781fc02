package controllers

import (
	"github.com/gin-gonic/gin"

	"phka/internal/services"
	"phka/pkg/utils"
)

type UserController struct {
	userService services.UserServiceInterface
}

func NewUserController(userService services.UserServiceInterface) *UserController {
	return &UserController{userService: userService}
}

func (u *UserController) GetAllUsers(c *gin.Context) {
	users, err := u.userService.GetAllUsers(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, users, "Users retrieved")
}

// Me returns the authenticated user's own profile.
func (u *UserController) Me(c *gin.Context) {
	user, err := u.userService.GetUser(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, user, "User retrieved")
}

func (u *UserController) GetUser(c *gin.Context) {
	user, err := u.userService.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, user, "User retrieved")
}
