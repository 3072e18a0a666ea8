package utils

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"main/model"
)

// ParsePageRequest reads the page/size query parameters. Page numbering
// starts at 0; size is capped to keep single responses bounded.
func ParsePageRequest(c *gin.Context) (model.PageRequest, error) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "0"))
	if err != nil || page < 0 {
		return model.PageRequest{}, errors.New("invalid page parameter")
	}

	size, err := strconv.Atoi(c.DefaultQuery("size", "20"))
	if err != nil || size < 1 {
		return model.PageRequest{}, errors.New("invalid size parameter")
	}
	if size > 100 {
		size = 100
	}

	return model.PageRequest{Page: page, Size: size}, nil
}
