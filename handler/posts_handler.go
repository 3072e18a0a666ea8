package handler

import (
	"github.com/gin-gonic/gin"

	"main/dto"
	"main/usecase"
	"main/utils"
)

func GetPostsHandler(c *gin.Context, postService *usecase.PostService) {
	posts, err := postService.ReadAll(c.Request.Context())
	if err != nil {
		utils.Error(c, err)
		return
	}
	utils.Success(c, posts)
}

func GetPostHandler(c *gin.Context, postService *usecase.PostService) {
	post, err := postService.GetPostByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.Error(c, err)
		return
	}
	utils.Success(c, post)
}

func GetPostsByUserHandler(c *gin.Context, postService *usecase.PostService) {
	posts, err := postService.GetPostsByPatronID(c.Request.Context(), c.Param("userId"))
	if err != nil {
		utils.Error(c, err)
		return
	}
	utils.Success(c, posts)
}

func CreatePostHandler(c *gin.Context, postService *usecase.PostService, userService *usecase.UserService) {
	var req dto.PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid Request")
		return
	}

	patron, err := userService.GetUserByID(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.Error(c, err)
		return
	}

	post, err := postService.CreatePost(c.Request.Context(), patron, &req)
	if err != nil {
		utils.Error(c, err)
		return
	}
	utils.Created(c, post)
}

func UpdatePostHandler(c *gin.Context, postService *usecase.PostService) {
	var req dto.PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid Request")
		return
	}

	post, err := postService.UpdatePost(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		utils.Error(c, err)
		return
	}
	utils.Success(c, post)
}

func DeletePostHandler(c *gin.Context, postService *usecase.PostService, userService *usecase.UserService) {
	principal, err := userService.GetUserByID(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.Error(c, err)
		return
	}

	if err := postService.DeletePost(c.Request.Context(), principal, c.Param("id")); err != nil {
		utils.Error(c, err)
		return
	}
	utils.Success(c, gin.H{"message": "Post deleted"})
}

// SearchPostsHandler runs the keyword search against the secondary
// index and hydrates the hits from the primary store.
func SearchPostsHandler(c *gin.Context, searchService *usecase.SearchService) {
	var req dto.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid Request")
		return
	}

	page, err := utils.ParsePageRequest(c)
	if err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	result, err := searchService.Search(c.Request.Context(), req.Keyword, page)
	if err != nil {
		utils.Error(c, err)
		return
	}
	utils.Success(c, result)
}

// ReindexPostsHandler rebuilds the search index from the primary store.
func ReindexPostsHandler(c *gin.Context, postService *usecase.PostService) {
	count, err := postService.ReindexAll(c.Request.Context())
	if err != nil {
		utils.Error(c, err)
		return
	}
	utils.Success(c, gin.H{"indexed": count})
}
