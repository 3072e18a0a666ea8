package usecase

import (
	"context"
	"encoding/base64"
	"errors"
	"reflect"
	"testing"

	"main/dto"
	"main/model"
)

func newPostService(log *callLog) (*PostService, *fakePostStore, *fakeIndexStore, *fakeTagStore, *fakeUserStore, *fakeFolderStore, *fakeImageStore) {
	posts := newFakePostStore(log)
	index := newFakeIndexStore(log)
	tags := newFakeTagStore(log)
	users := newFakeUserStore(log)
	folders := newFakeFolderStore(log)
	images := newFakeImageStore(log)
	svc := &PostService{
		Posts:   posts,
		Index:   index,
		Tags:    tags,
		Users:   users,
		Folders: folders,
		Images:  images,
	}
	return svc, posts, index, tags, users, folders, images
}

// seedPost puts a post into both stores the way create would.
func seedPost(posts *fakePostStore, index *fakeIndexStore, post *model.Post) {
	posts.put(post)
	index.records[post.ID] = &model.PostIndex{
		PostID:      post.ID,
		Title:       post.Title,
		Description: post.Description,
	}
}

func TestCreatePost(t *testing.T) {
	t.Run("writes primary before index", func(t *testing.T) {
		log := &callLog{}
		svc, _, index, _, users, _, _ := newPostService(log)
		users.users["u1"] = &model.User{UserID: "u1"}

		post, err := svc.CreatePost(context.Background(), users.users["u1"], &dto.PostRequest{
			Title:       "sunset",
			Description: "oil on canvas",
		})
		if err != nil {
			t.Fatalf("CreatePost: %v", err)
		}

		insertAt := log.index("posts.Insert")
		saveAt := log.index("index.Save")
		if insertAt < 0 || saveAt < 0 || insertAt > saveAt {
			t.Errorf("want primary insert before index save, got %v", log.entries)
		}
		if _, ok := index.records[post.ID]; !ok {
			t.Errorf("index record missing for %s", post.ID)
		}
		if !log.has("users.AddPostToUser") {
			t.Errorf("post not attached to user, calls: %v", log.entries)
		}
	})

	t.Run("unknown tag fails before any write", func(t *testing.T) {
		log := &callLog{}
		svc, posts, _, _, users, _, _ := newPostService(log)
		users.users["u1"] = &model.User{UserID: "u1"}

		_, err := svc.CreatePost(context.Background(), users.users["u1"], &dto.PostRequest{
			Title:  "sunset",
			TagIDs: []string{"nope"},
		})
		if !errors.Is(err, model.ErrNotFound) {
			t.Fatalf("want ErrNotFound, got %v", err)
		}
		if len(posts.posts) != 0 {
			t.Errorf("primary store written despite failed tag lookup")
		}
	})

	t.Run("stores decoded image", func(t *testing.T) {
		log := &callLog{}
		svc, _, _, _, users, _, images := newPostService(log)
		users.users["u1"] = &model.User{UserID: "u1"}

		raw := []byte{0x89, 0x50, 0x4e, 0x47}
		post, err := svc.CreatePost(context.Background(), users.users["u1"], &dto.PostRequest{
			Title:     "sunset",
			Image:     base64.StdEncoding.EncodeToString(raw),
			ImageType: "image/png",
		})
		if err != nil {
			t.Fatalf("CreatePost: %v", err)
		}
		image, ok := images.images[post.ImageID]
		if !ok {
			t.Fatalf("image %s not stored", post.ImageID)
		}
		if !reflect.DeepEqual(image.Data, raw) {
			t.Errorf("image data = %v, want %v", image.Data, raw)
		}
		if !log.has("images.AddPostToImage") {
			t.Errorf("post not attached to image, calls: %v", log.entries)
		}
	})
}

func TestUpdatePost(t *testing.T) {
	t.Run("index failure leaves primary unchanged", func(t *testing.T) {
		log := &callLog{}
		svc, posts, index, _, _, _, _ := newPostService(log)
		seedPost(posts, index, &model.Post{ID: "p1", Title: "old"})
		index.saveErr = errors.New("redis down")

		_, err := svc.UpdatePost(context.Background(), "p1", &dto.PostRequest{Title: "new"})
		if err == nil {
			t.Fatal("want error when index save fails")
		}
		if log.has("posts.Save") {
			t.Errorf("primary written despite index failure, calls: %v", log.entries)
		}
	})

	t.Run("missing index entry maps to not found", func(t *testing.T) {
		log := &callLog{}
		svc, posts, _, _, _, _, _ := newPostService(log)
		posts.put(&model.Post{ID: "p1", Title: "old"})

		_, err := svc.UpdatePost(context.Background(), "p1", &dto.PostRequest{Title: "new"})
		if !errors.Is(err, model.ErrNotFound) {
			t.Fatalf("want ErrNotFound, got %v", err)
		}
		if log.has("posts.Save") {
			t.Errorf("primary written despite missing index entry")
		}
	})

	t.Run("reconciles tag set", func(t *testing.T) {
		log := &callLog{}
		svc, posts, index, tags, _, _, _ := newPostService(log)
		tags.put(&model.Tag{ID: "a", Name: "abstract"})
		tags.put(&model.Tag{ID: "b", Name: "baroque"})
		tags.put(&model.Tag{ID: "c", Name: "cubism"})
		seedPost(posts, index, &model.Post{ID: "p1", Title: "t", TagIDs: []string{"a", "b"}})

		post, err := svc.UpdatePost(context.Background(), "p1", &dto.PostRequest{
			Title:  "t",
			TagIDs: []string{"b", "c"},
		})
		if err != nil {
			t.Fatalf("UpdatePost: %v", err)
		}

		if !reflect.DeepEqual(tags.removePostCalls, []string{"a"}) {
			t.Errorf("removed edges = %v, want [a]", tags.removePostCalls)
		}
		if len(tags.addPostCalls) != 1 || !reflect.DeepEqual(tags.addPostCalls[0], []string{"c"}) {
			t.Errorf("bulk adds = %v, want one call with [c]", tags.addPostCalls)
		}
		if !reflect.DeepEqual(post.TagIDs, []string{"b", "c"}) {
			t.Errorf("post.TagIDs = %v, want [b c]", post.TagIDs)
		}
	})

	t.Run("empty tag set detaches all in bulk", func(t *testing.T) {
		log := &callLog{}
		svc, posts, index, tags, _, _, _ := newPostService(log)
		seedPost(posts, index, &model.Post{ID: "p1", Title: "t", TagIDs: []string{"a", "b"}})

		post, err := svc.UpdatePost(context.Background(), "p1", &dto.PostRequest{Title: "t"})
		if err != nil {
			t.Fatalf("UpdatePost: %v", err)
		}

		if len(tags.bulkRemoveCalls) != 1 || !reflect.DeepEqual(tags.bulkRemoveCalls[0], []string{"a", "b"}) {
			t.Errorf("bulk removes = %v, want one call with [a b]", tags.bulkRemoveCalls)
		}
		if len(tags.removePostCalls) != 0 {
			t.Errorf("per-edge removes = %v, want none", tags.removePostCalls)
		}
		if post.TagIDs != nil {
			t.Errorf("post.TagIDs = %v, want nil", post.TagIDs)
		}
	})

	t.Run("identical image payload keeps current image", func(t *testing.T) {
		log := &callLog{}
		svc, posts, index, _, _, _, images := newPostService(log)
		raw := []byte{1, 2, 3}
		images.images["img1"] = &model.Image{ID: "img1", Data: raw}
		seedPost(posts, index, &model.Post{ID: "p1", Title: "t", ImageID: "img1"})

		post, err := svc.UpdatePost(context.Background(), "p1", &dto.PostRequest{
			Title: "t",
			Image: base64.StdEncoding.EncodeToString(raw),
		})
		if err != nil {
			t.Fatalf("UpdatePost: %v", err)
		}
		if post.ImageID != "img1" {
			t.Errorf("ImageID = %s, want img1", post.ImageID)
		}
		if log.has("images.Insert") {
			t.Errorf("new image stored for identical payload")
		}
	})

	t.Run("changed image payload swaps image", func(t *testing.T) {
		log := &callLog{}
		svc, posts, index, _, _, _, images := newPostService(log)
		images.images["img1"] = &model.Image{ID: "img1", Data: []byte{1, 2, 3}}
		seedPost(posts, index, &model.Post{ID: "p1", Title: "t", ImageID: "img1"})

		post, err := svc.UpdatePost(context.Background(), "p1", &dto.PostRequest{
			Title: "t",
			Image: base64.StdEncoding.EncodeToString([]byte{9, 9, 9}),
		})
		if err != nil {
			t.Fatalf("UpdatePost: %v", err)
		}
		if post.ImageID == "img1" {
			t.Errorf("ImageID unchanged after new payload")
		}
		if !log.has("images.RemovePostFromImage") || !log.has("images.AddPostToImage") {
			t.Errorf("image edges not rewired, calls: %v", log.entries)
		}
	})
}

func TestDeletePost(t *testing.T) {
	t.Run("index delete precedes primary delete", func(t *testing.T) {
		log := &callLog{}
		svc, posts, index, _, users, _, _ := newPostService(log)
		owner := &model.User{UserID: "u1"}
		users.users["u1"] = owner
		seedPost(posts, index, &model.Post{ID: "p1", PatronID: "u1"})

		if err := svc.DeletePost(context.Background(), owner, "p1"); err != nil {
			t.Fatalf("DeletePost: %v", err)
		}

		indexAt := log.index("index.Delete")
		primaryAt := log.index("posts.Delete")
		if indexAt < 0 || primaryAt < 0 || indexAt > primaryAt {
			t.Errorf("want index delete before primary delete, got %v", log.entries)
		}
	})

	t.Run("index failure leaves primary unchanged", func(t *testing.T) {
		log := &callLog{}
		svc, posts, index, _, users, _, _ := newPostService(log)
		owner := &model.User{UserID: "u1"}
		users.users["u1"] = owner
		seedPost(posts, index, &model.Post{ID: "p1", PatronID: "u1"})
		index.deleteErr = errors.New("redis down")

		if err := svc.DeletePost(context.Background(), owner, "p1"); err == nil {
			t.Fatal("want error when index delete fails")
		}
		if log.has("posts.Delete") {
			t.Errorf("primary deleted despite index failure")
		}
		if _, ok := posts.posts["p1"]; !ok {
			t.Errorf("post removed from primary store")
		}
	})

	t.Run("non-owner is forbidden", func(t *testing.T) {
		log := &callLog{}
		svc, posts, index, _, _, _, _ := newPostService(log)
		seedPost(posts, index, &model.Post{ID: "p1", PatronID: "u1"})

		err := svc.DeletePost(context.Background(), &model.User{UserID: "intruder"}, "p1")
		if !errors.Is(err, model.ErrForbidden) {
			t.Fatalf("want ErrForbidden, got %v", err)
		}
		if log.has("posts.Delete") || log.has("index.Delete") {
			t.Errorf("deletes ran for non-owner")
		}
	})
}

func TestDeleteAllByPatron(t *testing.T) {
	log := &callLog{}
	svc, posts, index, _, users, _, _ := newPostService(log)
	users.users["u1"] = &model.User{UserID: "u1"}
	seedPost(posts, index, &model.Post{ID: "p1", PatronID: "u1"})
	seedPost(posts, index, &model.Post{ID: "p2", PatronID: "u1"})
	seedPost(posts, index, &model.Post{ID: "p3", PatronID: "other"})

	if err := svc.DeleteAllByPatron(context.Background(), "u1"); err != nil {
		t.Fatalf("DeleteAllByPatron: %v", err)
	}

	if len(posts.posts) != 1 {
		t.Errorf("posts left = %d, want 1", len(posts.posts))
	}
	if _, ok := posts.posts["p3"]; !ok {
		t.Errorf("other patron's post removed")
	}
	if len(index.records) != 1 {
		t.Errorf("index records left = %d, want 1", len(index.records))
	}
}

func TestReindexAll(t *testing.T) {
	log := &callLog{}
	svc, posts, index, _, _, _, _ := newPostService(log)
	posts.put(&model.Post{ID: "p1", Title: "one"})
	posts.put(&model.Post{ID: "p2", Title: "two"})

	count, err := svc.ReindexAll(context.Background())
	if err != nil {
		t.Fatalf("ReindexAll: %v", err)
	}
	if count != 2 {
		t.Errorf("count = %d, want 2", count)
	}
	if len(index.records) != 2 {
		t.Errorf("index records = %d, want 2", len(index.records))
	}
	if index.records["p2"].Title != "two" {
		t.Errorf("record title = %s, want two", index.records["p2"].Title)
	}
}
