package dto

// CreateTagsRequest carries free-text tag names. Each name is normalized
// into keywords by the tokenizer service before tags are created.
type CreateTagsRequest struct {
	Names []string `json:"names" binding:"required,min=1"`
}

type SearchRequest struct {
	Keyword string `json:"keyword" binding:"required"`
}
