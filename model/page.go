package model

// PageRequest carries caller pagination. Page numbering starts at 0.
type PageRequest struct {
	Page int
	Size int
}

func (p PageRequest) Offset() int {
	if p.Page < 0 {
		return 0
	}
	return p.Page * p.Size
}

// PostPage is a single page of posts plus the query's total element count.
// TotalElements is the store-reported total for the whole query, not the
// size of Content.
type PostPage struct {
	Content       []*Post `json:"content"`
	TotalElements int64   `json:"total_elements"`
	Page          int     `json:"page"`
	Size          int     `json:"size"`
}

func EmptyPostPage(req PageRequest) *PostPage {
	return &PostPage{
		Content:       []*Post{},
		TotalElements: 0,
		Page:          req.Page,
		Size:          req.Size,
	}
}
