package usecase

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log"

	"main/dto"
	"main/model"
	"main/utils"

	"github.com/google/uuid"
)

// PostService owns post lifecycle and the coordination between the primary
// store and the search index. The two stores share no transaction: create
// writes the primary first so the index never references a missing post,
// while update and delete touch the index first so a failure leaves the
// primary unchanged. A crash between the two writes can still strand an
// index entry; ReindexAll is the repair hook for that window.
type PostService struct {
	Posts   PostStore
	Index   PostIndexStore
	Tags    TagStore
	Users   UserStore
	Folders FolderStore
	Images  ImageStore
}

func (s *PostService) ReadAll(ctx context.Context) ([]*model.Post, error) {
	return s.Posts.FindAll(ctx)
}

func (s *PostService) GetPostByID(ctx context.Context, postID string) (*model.Post, error) {
	return s.Posts.FindByID(ctx, postID)
}

func (s *PostService) GetPostsByPatronID(ctx context.Context, patronID string) ([]*model.Post, error) {
	return s.Posts.FindByPatronID(ctx, patronID)
}

// CreatePost builds a post for the patron, writes it to both stores and
// wires up the user, tag and image associations.
func (s *PostService) CreatePost(ctx context.Context, patron *model.User, req *dto.PostRequest) (*model.Post, error) {
	post := &model.Post{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		PatronID:    patron.UserID,
	}

	// Every referenced tag must exist before anything is written.
	for _, tagID := range req.TagIDs {
		tag, err := s.Tags.FindByID(ctx, tagID)
		if err != nil {
			return nil, err
		}
		post.TagIDs = append(post.TagIDs, tag.ID)
	}

	if req.Image != "" {
		image, err := s.createImage(ctx, req.Image, req.ImageType)
		if err != nil {
			return nil, err
		}
		post.ImageID = image.ID
	}

	if err := s.create(ctx, post); err != nil {
		return nil, err
	}

	if err := s.Users.AddPostToUser(ctx, post.PatronID, post.ID); err != nil {
		return nil, err
	}
	if err := s.Tags.AddPostToTags(ctx, post.TagIDs, post.ID); err != nil {
		return nil, err
	}
	if post.ImageID != "" {
		if err := s.Images.AddPostToImage(ctx, post.ImageID, post.ID); err != nil {
			return nil, err
		}
	}

	utils.TrackPostOperation("create")
	log.Printf("Post created: %s", post.ID)
	return post, nil
}

// UpdatePost applies new title/description, reconciles the tag set against
// the request, swaps the image if the payload changed, then writes both
// stores.
func (s *PostService) UpdatePost(ctx context.Context, postID string, req *dto.PostRequest) (*model.Post, error) {
	post, err := s.Posts.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	post.Title = req.Title
	post.Description = req.Description

	if err := s.updateTagsInPost(ctx, post, req.TagIDs); err != nil {
		return nil, err
	}
	if err := s.updateImageInPost(ctx, post, req); err != nil {
		return nil, err
	}

	if err := s.update(ctx, postID, post); err != nil {
		return nil, err
	}

	utils.TrackPostOperation("update")
	return post, nil
}

// updateTagsInPost reconciles the post's current tag set against the
// desired tag IDs. An empty desired set is "detach all": one bulk removal
// and the tag list nulled out, not merely emptied. Otherwise each stale
// edge is removed one at a time and all new edges are added in a single
// bulk call.
func (s *PostService) updateTagsInPost(ctx context.Context, post *model.Post, desiredTagIDs []string) error {
	desiredTags, err := s.Tags.FindAllByIDs(ctx, desiredTagIDs)
	if err != nil {
		return err
	}

	if len(desiredTags) == 0 {
		if err := s.Tags.RemovePostFromTags(ctx, post.TagIDs, post.ID); err != nil {
			return err
		}
		post.TagIDs = nil
		return nil
	}

	desired := make([]string, 0, len(desiredTags))
	for _, tag := range desiredTags {
		desired = append(desired, tag.ID)
	}

	toAdd, toRemove := diffByID(post.TagIDs, desired)

	for _, tagID := range toRemove {
		if err := s.Tags.RemovePostFromTag(ctx, tagID, post.ID); err != nil {
			return err
		}
		post.TagIDs = without(post.TagIDs, tagID)
	}

	if err := s.Tags.AddPostToTags(ctx, toAdd, post.ID); err != nil {
		return err
	}
	post.TagIDs = append(post.TagIDs, toAdd...)
	return nil
}

// updateImageInPost replaces the post's image when the request carries a
// payload that differs from the stored bytes. No payload means keep.
func (s *PostService) updateImageInPost(ctx context.Context, post *model.Post, req *dto.PostRequest) error {
	if req.Image == "" {
		return nil
	}

	data, err := base64.StdEncoding.DecodeString(req.Image)
	if err != nil {
		return fmt.Errorf("invalid image payload: %w", err)
	}

	if post.ImageID == "" {
		image, err := s.insertImage(ctx, data, req.ImageType)
		if err != nil {
			return err
		}
		post.ImageID = image.ID
		return nil
	}

	current, err := s.Images.FindByID(ctx, post.ImageID)
	if err != nil {
		return err
	}
	if bytes.Equal(current.Data, data) {
		return nil
	}

	if err := s.Images.RemovePostFromImage(ctx, current.ID, post.ID); err != nil {
		return err
	}
	image, err := s.insertImage(ctx, data, req.ImageType)
	if err != nil {
		return err
	}
	post.ImageID = image.ID
	return s.Images.AddPostToImage(ctx, image.ID, post.ID)
}

func (s *PostService) createImage(ctx context.Context, payload string, contentType string) (*model.Image, error) {
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("invalid image payload: %w", err)
	}
	return s.insertImage(ctx, data, contentType)
}

func (s *PostService) insertImage(ctx context.Context, data []byte, contentType string) (*model.Image, error) {
	image := &model.Image{
		ID:          uuid.NewString(),
		Data:        data,
		ContentType: contentType,
	}
	if err := s.Images.Insert(ctx, image); err != nil {
		return nil, err
	}
	return image, nil
}

// DeletePost removes the post after an ownership check, detaching all
// association edges before the two-store delete.
func (s *PostService) DeletePost(ctx context.Context, principal *model.User, postID string) error {
	post, err := s.Posts.FindByID(ctx, postID)
	if err != nil {
		return err
	}

	if post.PatronID != principal.UserID {
		log.Printf("User %s attempted to delete post %s owned by %s",
			principal.UserID, postID, post.PatronID)
		return model.ErrForbidden
	}

	if err := s.detachPost(ctx, post); err != nil {
		return err
	}

	if err := s.delete(ctx, postID); err != nil {
		return err
	}

	utils.TrackPostOperation("delete")
	return nil
}

// DeleteAllByPatron removes every post the user owns, used by account
// deletion. Each post goes through the same detach and two-store delete
// path as a single deletion.
func (s *PostService) DeleteAllByPatron(ctx context.Context, patronID string) error {
	posts, err := s.Posts.FindByPatronID(ctx, patronID)
	if err != nil {
		return err
	}

	for _, post := range posts {
		if err := s.detachPost(ctx, post); err != nil {
			return err
		}
		if err := s.delete(ctx, post.ID); err != nil {
			return err
		}
	}
	return nil
}

func (s *PostService) detachPost(ctx context.Context, post *model.Post) error {
	if err := s.Folders.RemovePostFromFolders(ctx, post.FolderIDs, post.ID); err != nil {
		return err
	}
	if err := s.Users.RemovePostFromUser(ctx, post.PatronID, post.ID); err != nil {
		return err
	}
	if err := s.Tags.RemovePostFromTags(ctx, post.TagIDs, post.ID); err != nil {
		return err
	}
	if post.ImageID != "" {
		if err := s.Images.RemovePostFromImage(ctx, post.ImageID, post.ID); err != nil {
			return err
		}
	}
	return nil
}

// create persists the primary record first, then projects the searchable
// fields into the index under the new identity.
func (s *PostService) create(ctx context.Context, post *model.Post) error {
	if err := s.Posts.Insert(ctx, post); err != nil {
		return err
	}

	record := &model.PostIndex{
		PostID:      post.ID,
		Title:       post.Title,
		Description: post.Description,
	}
	if err := s.Index.Save(ctx, record); err != nil {
		return fmt.Errorf("post %s created but index write failed: %w", post.ID, err)
	}
	return nil
}

// update verifies both records exist and the identities line up, then
// writes the index before the primary so an index failure leaves the
// primary untouched.
func (s *PostService) update(ctx context.Context, postID string, post *model.Post) error {
	stored, err := s.Posts.FindByID(ctx, postID)
	if err != nil {
		return err
	}
	record, err := s.Index.FindByPostID(ctx, postID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.ErrNotFound
		}
		return err
	}
	if stored.ID != post.ID {
		return model.ErrNotFound
	}

	record.Title = post.Title
	record.Description = post.Description
	if err := s.Index.Save(ctx, record); err != nil {
		return err
	}

	return s.Posts.Save(ctx, post)
}

// delete mirrors update's ordering: both records must exist, the index
// entry goes first.
func (s *PostService) delete(ctx context.Context, postID string) error {
	if _, err := s.Posts.FindByID(ctx, postID); err != nil {
		return err
	}
	if _, err := s.Index.FindByPostID(ctx, postID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			log.Printf("Post %s has no index entry", postID)
			return model.ErrNotFound
		}
		return err
	}

	if err := s.Index.DeleteByPostID(ctx, postID); err != nil {
		return err
	}
	return s.Posts.Delete(ctx, postID)
}

// ReindexAll rebuilds the search index from the primary store. It is the
// repair path for the consistency window between the two stores.
func (s *PostService) ReindexAll(ctx context.Context) (int, error) {
	posts, err := s.Posts.FindAll(ctx)
	if err != nil {
		return 0, err
	}

	for i, post := range posts {
		record := &model.PostIndex{
			PostID:      post.ID,
			Title:       post.Title,
			Description: post.Description,
		}
		if err := s.Index.Save(ctx, record); err != nil {
			return i, fmt.Errorf("reindex stopped at post %s: %w", post.ID, err)
		}
	}

	log.Printf("Reindexed %d posts", len(posts))
	return len(posts), nil
}
