package model

// PostIndex is the search-index projection of a Post, stored in redis and
// keyed by the post's primary identity. Only the searchable fields are
// copied; it exists exactly as long as its post does.
type PostIndex struct {
	PostID      string `json:"post_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}
