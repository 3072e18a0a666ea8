package usecase

import (
	"context"
	"math/rand"

	"main/model"
	"main/utils"
)

// RecommendationService blends tag-affinity results with a random sample
// into one shuffled page.
type RecommendationService struct {
	Posts PostStore
}

// RecommendedPosts issues two independent queries for the user: posts
// matching the preferred tags at the caller's page size, and a random
// sample at half the page size (minimum 1) excluding the preferred tags.
// The two result lists are concatenated and uniformly shuffled. The
// reported total is the sum of both sub-query totals; when the queries
// overlap it exceeds the true distinct count, which is accepted.
func (s *RecommendationService) RecommendedPosts(ctx context.Context, user *model.User, page model.PageRequest) (*model.PostPage, error) {
	utils.TrackRecommendation("user")

	preferred := user.PreferredTagIDs

	tagged := model.EmptyPostPage(page)
	if len(preferred) > 0 {
		var err error
		tagged, err = s.Posts.FindByTagIDs(ctx, preferred, page)
		if err != nil {
			return nil, err
		}
	}

	halfSize := page.Size / 2
	if halfSize < 1 {
		halfSize = 1
	}
	random, err := s.Posts.FindRandom(ctx, preferred, model.PageRequest{
		Page: page.Page,
		Size: halfSize,
	})
	if err != nil {
		return nil, err
	}

	mixed := make([]*model.Post, 0, len(tagged.Content)+len(random.Content))
	mixed = append(mixed, tagged.Content...)
	mixed = append(mixed, random.Content...)
	rand.Shuffle(len(mixed), func(i, j int) {
		mixed[i], mixed[j] = mixed[j], mixed[i]
	})

	return &model.PostPage{
		Content:       mixed,
		TotalElements: tagged.TotalElements + random.TotalElements,
		Page:          page.Page,
		Size:          page.Size,
	}, nil
}

// GuestPosts is the unauthenticated variant: the plain paginated listing
// in store order, no shuffle.
func (s *RecommendationService) GuestPosts(ctx context.Context, page model.PageRequest) (*model.PostPage, error) {
	utils.TrackRecommendation("guest")
	return s.Posts.FindAllPaged(ctx, page)
}
