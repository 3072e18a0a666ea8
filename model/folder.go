package model

import "time"

// Folder groups posts for one patron. Title is unique per patron.
type Folder struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description" json:"description"`
	PatronID    string    `bson:"patron_id" json:"patron_id"`
	PostIDs     []string  `bson:"post_ids,omitempty" json:"post_ids,omitempty"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}
