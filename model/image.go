package model

// Image holds the raw bytes of a post's picture. PostIDs is the reverse side
// of post.image_id; in practice one image belongs to one post.
type Image struct {
	ID          string   `bson:"_id,omitempty" json:"id"`
	Data        []byte   `bson:"data" json:"-"`
	ContentType string   `bson:"content_type" json:"content_type"`
	PostIDs     []string `bson:"post_ids,omitempty" json:"post_ids,omitempty"`
}
