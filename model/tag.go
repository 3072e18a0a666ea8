package model

// Tag names are unique after keyword normalization. PostIDs and UserIDs are
// the reverse sides of the post/tag and user-preference associations.
type Tag struct {
	ID      string   `bson:"_id,omitempty" json:"id"`
	Name    string   `bson:"name" json:"name"`
	PostIDs []string `bson:"post_ids,omitempty" json:"post_ids,omitempty"`
	UserIDs []string `bson:"user_ids,omitempty" json:"user_ids,omitempty"`
}
