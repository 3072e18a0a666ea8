package handler

import (
	"github.com/gin-gonic/gin"

	"main/dto"
	"main/usecase"
	"main/utils"
)

func GetAccountHandler(c *gin.Context, userService *usecase.UserService) {
	user, err := userService.GetUserByID(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.Error(c, err)
		return
	}
	utils.Success(c, dto.ToUserProfileResponse(user))
}

func UpdateUserHandler(c *gin.Context, userService *usecase.UserService) {
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid Request")
		return
	}

	user, err := userService.UpdateUser(c.Request.Context(), c.GetString("user_id"), &req)
	if err != nil {
		utils.Error(c, err)
		return
	}
	utils.Success(c, dto.ToUserProfileResponse(user))
}

// DeleteUserHandler removes the account together with every post,
// folder, image and index record it owns, then ends all sessions.
func DeleteUserHandler(c *gin.Context, userService *usecase.UserService, sessionRepo SessionEnder) {
	userID := c.GetString("user_id")

	if err := userService.DeleteUser(c.Request.Context(), userID); err != nil {
		utils.Error(c, err)
		return
	}

	if err := sessionRepo.DeleteUserSessions(userID); err != nil {
		utils.TrackError("session", "cascade_cleanup_failed")
	}
	c.SetCookie("session_id", "", -1, "/", "", true, true)

	utils.Success(c, gin.H{"message": "Account deleted"})
}

// SessionEnder is the slice of the session repository the account
// deletion path needs.
type SessionEnder interface {
	DeleteUserSessions(userID string) error
}

func AddPreferredTagsHandler(c *gin.Context, userService *usecase.UserService) {
	var req dto.AddPreferredTagsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid Request")
		return
	}

	user, err := userService.AddPreferredTags(c.Request.Context(), c.GetString("user_id"), req.TagIDs)
	if err != nil {
		utils.Error(c, err)
		return
	}
	utils.Success(c, dto.ToUserProfileResponse(user))
}
