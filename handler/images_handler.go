package handler

import (
	"net/http"

	"main/repository"
	"main/utils"

	"github.com/gin-gonic/gin"
)

// GetImageHandler serves the raw bytes of a stored image.
func GetImageHandler(c *gin.Context, imagesRepo *repository.ImagesRepo) {
	image, err := imagesRepo.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.Error(c, err)
		return
	}

	contentType := image.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Data(http.StatusOK, contentType, image.Data)
}
