package handler

import (
	"github.com/gin-gonic/gin"

	"main/dto"
	"main/model"
	"main/usecase"
	"main/utils"
)

type createTagRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

func GetTagsHandler(c *gin.Context, tagService *usecase.TagService) {
	tags, err := tagService.ReadAll(c.Request.Context())
	if err != nil {
		utils.Error(c, err)
		return
	}
	utils.Success(c, tags)
}

func GetTagHandler(c *gin.Context, tagService *usecase.TagService) {
	tag, err := tagService.GetTagByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.Error(c, err)
		return
	}
	utils.Success(c, tag)
}

func CreateTagHandler(c *gin.Context, tagService *usecase.TagService) {
	var req createTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid Request")
		return
	}

	tag, err := tagService.CreateTag(c.Request.Context(), &model.Tag{
		ID:   utils.GenerateID(),
		Name: req.Name,
	})
	if err != nil {
		utils.Error(c, err)
		return
	}
	utils.Created(c, tag)
}

// CreateTagsFromPromptHandler tokenizes free-text names and creates a
// tag per keyword that doesn't exist yet.
func CreateTagsFromPromptHandler(c *gin.Context, tagService *usecase.TagService) {
	var req dto.CreateTagsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid Request")
		return
	}

	tags, err := tagService.CreateTagsFromPrompt(c.Request.Context(), req.Names)
	if err != nil {
		utils.Error(c, err)
		return
	}
	utils.Created(c, tags)
}

func DeleteTagHandler(c *gin.Context, tagService *usecase.TagService) {
	if err := tagService.DeleteTag(c.Request.Context(), c.Param("id")); err != nil {
		utils.Error(c, err)
		return
	}
	utils.Success(c, gin.H{"message": "Tag deleted"})
}
