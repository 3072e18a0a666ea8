package model

import "time"

type User struct {
	UserID          string    `bson:"user_id" json:"user_id"`                 // Unique ID number
	Username        string    `bson:"username" json:"username"`               // Username field
	Email           string    `bson:"email" json:"email"`                     // Email field
	Password        string    `bson:"password" json:"-"`                      // Hashed password field
	PreferredTagIDs []string  `bson:"preferred_tag_ids,omitempty" json:"preferred_tag_ids,omitempty"` // Recommendation preferences
	PostIDs         []string  `bson:"post_ids,omitempty" json:"post_ids,omitempty"`
	FolderIDs       []string  `bson:"folder_ids,omitempty" json:"folder_ids,omitempty"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"` // Time created for account life
}
