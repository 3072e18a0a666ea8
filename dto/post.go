package dto

// PostRequest is the body for creating or updating a post. TagIDs is the
// desired tag set; on update the current set is reconciled against it.
// Image is the picture payload, base64-encoded by the client; an empty
// Image on update means "keep the current picture".
type PostRequest struct {
	Title       string   `json:"title" binding:"required,max=200"`
	Description string   `json:"description"`
	TagIDs      []string `json:"tag_ids"`
	Image       string   `json:"image"`
	ImageType   string   `json:"image_type"`
}
