package handler

import (
	"github.com/gin-gonic/gin"

	"main/usecase"
	"main/utils"
)

// GetRecommendationsHandler serves the personalized feed. Any failure,
// including an unknown user, reads as "nothing to recommend" and maps
// to 404.
func GetRecommendationsHandler(c *gin.Context, recService *usecase.RecommendationService, userService *usecase.UserService) {
	page, err := utils.ParsePageRequest(c)
	if err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	user, err := userService.GetUserByID(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.NotFound(c, "No recommendations available")
		return
	}

	result, err := recService.RecommendedPosts(c.Request.Context(), user, page)
	if err != nil {
		utils.NotFound(c, "No recommendations available")
		return
	}
	utils.Success(c, result)
}

// GetGuestPostsHandler is the anonymous feed: plain pagination, no
// personalization.
func GetGuestPostsHandler(c *gin.Context, recService *usecase.RecommendationService) {
	page, err := utils.ParsePageRequest(c)
	if err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	result, err := recService.GuestPosts(c.Request.Context(), page)
	if err != nil {
		utils.Error(c, err)
		return
	}
	utils.Success(c, result)
}
