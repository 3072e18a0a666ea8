package model

import (
	"time"
)

// Post is the primary-store record for a shared artwork. Tag and folder
// membership is kept as mutual ID lists: post.tag_ids mirrors tag.post_ids
// and post.folder_ids mirrors folder.post_ids.
type Post struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description" json:"description"`
	PatronID    string    `bson:"patron_id" json:"patron_id"`
	TagIDs      []string  `bson:"tag_ids,omitempty" json:"tag_ids,omitempty"`
	FolderIDs   []string  `bson:"folder_ids,omitempty" json:"folder_ids,omitempty"`
	ImageID     string    `bson:"image_id,omitempty" json:"image_id,omitempty"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}
