package usecase

import (
	"context"
	"testing"

	"main/model"
)

func postPage(total int64, ids ...string) *model.PostPage {
	content := make([]*model.Post, 0, len(ids))
	for _, id := range ids {
		content = append(content, &model.Post{ID: id})
	}
	return &model.PostPage{Content: content, TotalElements: total}
}

func TestRecommendedPosts(t *testing.T) {
	t.Run("blends tagged and random results", func(t *testing.T) {
		log := &callLog{}
		posts := newFakePostStore(log)
		posts.taggedPage = postPage(3, "t1", "t2", "t3")
		posts.randomPage = postPage(5, "r1", "r2", "r3", "r4", "r5")
		svc := &RecommendationService{Posts: posts}

		user := &model.User{UserID: "u1", PreferredTagIDs: []string{"tag1"}}
		result, err := svc.RecommendedPosts(context.Background(), user, model.PageRequest{Page: 0, Size: 10})
		if err != nil {
			t.Fatalf("RecommendedPosts: %v", err)
		}

		if len(result.Content) != 8 {
			t.Errorf("content = %d posts, want all 8", len(result.Content))
		}
		if result.TotalElements != 8 {
			t.Errorf("total = %d, want sum of sub-totals 8", result.TotalElements)
		}

		// Shuffled, but the membership must be exactly the union.
		seen := make(map[string]bool)
		for _, post := range result.Content {
			seen[post.ID] = true
		}
		for _, id := range []string{"t1", "t2", "t3", "r1", "r2", "r3", "r4", "r5"} {
			if !seen[id] {
				t.Errorf("post %s missing from blended page", id)
			}
		}
	})

	t.Run("random sample uses half the page size", func(t *testing.T) {
		log := &callLog{}
		posts := newFakePostStore(log)
		svc := &RecommendationService{Posts: posts}

		user := &model.User{UserID: "u1", PreferredTagIDs: []string{"tag1"}}
		if _, err := svc.RecommendedPosts(context.Background(), user, model.PageRequest{Page: 2, Size: 20}); err != nil {
			t.Fatalf("RecommendedPosts: %v", err)
		}
		if posts.randomReq.Size != 10 {
			t.Errorf("random size = %d, want 10", posts.randomReq.Size)
		}
		if posts.randomReq.Page != 2 {
			t.Errorf("random page = %d, want 2", posts.randomReq.Page)
		}
		if posts.byTagPage.Size != 20 {
			t.Errorf("tagged size = %d, want full 20", posts.byTagPage.Size)
		}
	})

	t.Run("page size one still samples one random post", func(t *testing.T) {
		log := &callLog{}
		posts := newFakePostStore(log)
		svc := &RecommendationService{Posts: posts}

		user := &model.User{UserID: "u1", PreferredTagIDs: []string{"tag1"}}
		if _, err := svc.RecommendedPosts(context.Background(), user, model.PageRequest{Size: 1}); err != nil {
			t.Fatalf("RecommendedPosts: %v", err)
		}
		if posts.randomReq.Size != 1 {
			t.Errorf("random size = %d, want minimum 1", posts.randomReq.Size)
		}
	})

	t.Run("no preferred tags skips the tagged query", func(t *testing.T) {
		log := &callLog{}
		posts := newFakePostStore(log)
		posts.randomPage = postPage(2, "r1", "r2")
		svc := &RecommendationService{Posts: posts}

		user := &model.User{UserID: "u1"}
		result, err := svc.RecommendedPosts(context.Background(), user, model.PageRequest{Size: 10})
		if err != nil {
			t.Fatalf("RecommendedPosts: %v", err)
		}

		if log.has("posts.FindByTagIDs") {
			t.Errorf("tagged query ran without preferences, calls: %v", log.entries)
		}
		if len(result.Content) != 2 || result.TotalElements != 2 {
			t.Errorf("result = %d posts total %d, want the random 2", len(result.Content), result.TotalElements)
		}
	})

	t.Run("random query excludes the preferred tags", func(t *testing.T) {
		log := &callLog{}
		posts := newFakePostStore(log)
		svc := &RecommendationService{Posts: posts}

		user := &model.User{UserID: "u1", PreferredTagIDs: []string{"tag1", "tag2"}}
		if _, err := svc.RecommendedPosts(context.Background(), user, model.PageRequest{Size: 4}); err != nil {
			t.Fatalf("RecommendedPosts: %v", err)
		}
		if len(posts.randomArgs) != 2 || posts.randomArgs[0] != "tag1" {
			t.Errorf("random exclude = %v, want the preferred tags", posts.randomArgs)
		}
	})
}

func TestGuestPosts(t *testing.T) {
	log := &callLog{}
	posts := newFakePostStore(log)
	posts.put(&model.Post{ID: "p1"})
	posts.put(&model.Post{ID: "p2"})
	posts.put(&model.Post{ID: "p3"})
	svc := &RecommendationService{Posts: posts}

	result, err := svc.GuestPosts(context.Background(), model.PageRequest{Page: 0, Size: 10})
	if err != nil {
		t.Fatalf("GuestPosts: %v", err)
	}

	// Guest feed is plain pagination in store order, no shuffle.
	want := []string{"p1", "p2", "p3"}
	if len(result.Content) != len(want) {
		t.Fatalf("content = %d posts, want %d", len(result.Content), len(want))
	}
	for i, id := range want {
		if result.Content[i].ID != id {
			t.Errorf("content[%d] = %s, want %s", i, result.Content[i].ID, id)
		}
	}
}
