package usecase

import (
	"context"
	"log"

	"main/model"
	"main/utils"
)

// SearchService answers free-text queries against the search index and
// hydrates the hits from the primary store.
type SearchService struct {
	Posts     PostStore
	Index     PostIndexStore
	Tokenizer Tokenizer
}

// ProcessPrompt normalizes a free-text prompt into keyword tokens. A
// tokenizer failure degrades to zero tokens rather than failing the
// caller's request.
func (s *SearchService) ProcessPrompt(ctx context.Context, prompt string) []string {
	tokens, err := s.Tokenizer.Tokenize(ctx, prompt)
	if err != nil {
		utils.TrackError("tokenizer", "request_failed")
		log.Printf("Tokenizer request failed for prompt %q: %v", prompt, err)
		return []string{}
	}
	return tokens
}

// Search runs the keyword against the index and fetches the matching posts
// from the primary store. Zero index hits short-circuit: the primary store
// is not consulted and an empty page comes back. The returned total is the
// index-reported match count.
func (s *SearchService) Search(ctx context.Context, keyword string, page model.PageRequest) (*model.PostPage, error) {
	utils.TrackSearchQuery()

	records, total, err := s.Index.Search(ctx, keyword, page)
	if err != nil {
		return nil, err
	}

	if len(records) == 0 {
		log.Printf("No index hits for keyword %q", keyword)
		return model.EmptyPostPage(page), nil
	}

	postIDs := make([]string, 0, len(records))
	for _, record := range records {
		postIDs = append(postIDs, record.PostID)
	}

	posts, err := s.Posts.FindAllByIDs(ctx, postIDs)
	if err != nil {
		return nil, err
	}

	return &model.PostPage{
		Content:       posts,
		TotalElements: total,
		Page:          page.Page,
		Size:          page.Size,
	}, nil
}
