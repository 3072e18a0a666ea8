package dto

import (
	"main/model"
	"time"
)

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=4,max=20"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,password"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UpdateUserRequest struct {
	Username string `json:"username" binding:"required,min=4,max=20"`
	Email    string `json:"email" binding:"required,email"`
}

// AddPreferredTagsRequest carries the tag IDs a user wants recommendations
// for.
type AddPreferredTagsRequest struct {
	TagIDs []string `json:"tag_ids" binding:"required"`
}

type UserProfileResponse struct {
	UserID          string    `json:"user_id"`
	Username        string    `json:"username"`
	Email           string    `json:"email"`
	PreferredTagIDs []string  `json:"preferred_tag_ids,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

func ToUserProfileResponse(user *model.User) UserProfileResponse {
	return UserProfileResponse{
		UserID:          user.UserID,
		Username:        user.Username,
		Email:           user.Email,
		PreferredTagIDs: user.PreferredTagIDs,
		CreatedAt:       user.CreatedAt,
	}
}
