package handler

import (
	"github.com/gin-gonic/gin"

	"main/dto"
	"main/usecase"
	"main/utils"
)

func GetFoldersHandler(c *gin.Context, folderService *usecase.FolderService) {
	folders, err := folderService.ReadAll(c.Request.Context())
	if err != nil {
		utils.Error(c, err)
		return
	}
	utils.Success(c, folders)
}

func GetFolderHandler(c *gin.Context, folderService *usecase.FolderService) {
	folder, err := folderService.GetFolderByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.Error(c, err)
		return
	}
	utils.Success(c, folder)
}

func GetFoldersByUserHandler(c *gin.Context, folderService *usecase.FolderService) {
	folders, err := folderService.GetFoldersByPatron(c.Request.Context(), c.Param("userId"))
	if err != nil {
		utils.Error(c, err)
		return
	}
	utils.Success(c, folders)
}

func CreateFolderHandler(c *gin.Context, folderService *usecase.FolderService, userService *usecase.UserService) {
	var req dto.FolderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid Request")
		return
	}

	patron, err := userService.GetUserByID(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.Error(c, err)
		return
	}

	folder, err := folderService.CreateFolder(c.Request.Context(), patron, &req)
	if err != nil {
		utils.Error(c, err)
		return
	}
	utils.Created(c, folder)
}

func UpdateFolderHandler(c *gin.Context, folderService *usecase.FolderService) {
	var req dto.FolderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid Request")
		return
	}

	folder, err := folderService.UpdateFolder(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		utils.Error(c, err)
		return
	}
	utils.Success(c, folder)
}

func DeleteFolderHandler(c *gin.Context, folderService *usecase.FolderService, userService *usecase.UserService) {
	principal, err := userService.GetUserByID(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.Error(c, err)
		return
	}

	if err := folderService.DeleteFolder(c.Request.Context(), principal, c.Param("id")); err != nil {
		utils.Error(c, err)
		return
	}
	utils.Success(c, gin.H{"message": "Folder deleted"})
}
