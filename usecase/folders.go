package usecase

import (
	"context"
	"errors"
	"log"

	"main/dto"
	"main/model"

	"github.com/google/uuid"
)

type FolderService struct {
	Folders FolderStore
	Posts   PostStore
	Users   UserStore
}

func (s *FolderService) ReadAll(ctx context.Context) ([]*model.Folder, error) {
	return s.Folders.FindAll(ctx)
}

func (s *FolderService) GetFolderByID(ctx context.Context, folderID string) (*model.Folder, error) {
	return s.Folders.FindByID(ctx, folderID)
}

func (s *FolderService) GetFoldersByPatron(ctx context.Context, patronID string) ([]*model.Folder, error) {
	return s.Folders.FindByPatronID(ctx, patronID)
}

// CreateFolder stores a folder for the patron, enforcing per-patron title
// uniqueness, and attaches the referenced posts on both sides.
func (s *FolderService) CreateFolder(ctx context.Context, patron *model.User, req *dto.FolderRequest) (*model.Folder, error) {
	if _, err := s.Folders.FindByPatronAndTitle(ctx, patron.UserID, req.Title); err == nil {
		log.Printf("Folder already exists for patron %s: %s", patron.UserID, req.Title)
		return nil, model.ErrAlreadyExists
	} else if !errors.Is(err, model.ErrNotFound) {
		return nil, err
	}

	posts, err := s.Posts.FindAllByIDs(ctx, req.PostIDs)
	if err != nil {
		return nil, err
	}

	folder := &model.Folder{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		PatronID:    patron.UserID,
	}
	for _, post := range posts {
		folder.PostIDs = append(folder.PostIDs, post.ID)
	}

	if err := s.Folders.Insert(ctx, folder); err != nil {
		return nil, err
	}
	if err := s.Users.AddFolderToUser(ctx, patron.UserID, folder.ID); err != nil {
		return nil, err
	}
	if err := s.Posts.AddFolderToPosts(ctx, folder.PostIDs, folder.ID); err != nil {
		return nil, err
	}

	log.Printf("Folder created: %s", folder.ID)
	return folder, nil
}

// UpdateFolder applies new title/description and reconciles the folder's
// post set against the request.
func (s *FolderService) UpdateFolder(ctx context.Context, folderID string, req *dto.FolderRequest) (*model.Folder, error) {
	folder, err := s.Folders.FindByID(ctx, folderID)
	if err != nil {
		return nil, err
	}

	folder.Title = req.Title
	folder.Description = req.Description

	if err := s.updatePostsInFolder(ctx, folder, req.PostIDs); err != nil {
		return nil, err
	}

	if err := s.Folders.Save(ctx, folder); err != nil {
		return nil, err
	}
	return folder, nil
}

// updatePostsInFolder mirrors the post/tag reconciliation: empty desired
// set detaches everything in one bulk call and nulls the list; otherwise
// stale edges are removed one at a time and new edges added in one bulk
// call.
func (s *FolderService) updatePostsInFolder(ctx context.Context, folder *model.Folder, desiredPostIDs []string) error {
	desiredPosts, err := s.Posts.FindAllByIDs(ctx, desiredPostIDs)
	if err != nil {
		return err
	}

	if len(desiredPosts) == 0 {
		if err := s.Posts.RemoveFolderFromPosts(ctx, folder.PostIDs, folder.ID); err != nil {
			return err
		}
		folder.PostIDs = nil
		return nil
	}

	desired := make([]string, 0, len(desiredPosts))
	for _, post := range desiredPosts {
		desired = append(desired, post.ID)
	}

	toAdd, toRemove := diffByID(folder.PostIDs, desired)

	for _, postID := range toRemove {
		if err := s.Posts.RemoveFolderFromPost(ctx, postID, folder.ID); err != nil {
			return err
		}
		folder.PostIDs = without(folder.PostIDs, postID)
	}

	if err := s.Posts.AddFolderToPosts(ctx, toAdd, folder.ID); err != nil {
		return err
	}
	folder.PostIDs = append(folder.PostIDs, toAdd...)
	return nil
}

// DeleteFolder removes the folder after an ownership check, detaching its
// posts and the owning user first.
func (s *FolderService) DeleteFolder(ctx context.Context, principal *model.User, folderID string) error {
	folder, err := s.Folders.FindByID(ctx, folderID)
	if err != nil {
		return err
	}

	if folder.PatronID != principal.UserID {
		return model.ErrForbidden
	}

	if err := s.Posts.RemoveFolderFromPosts(ctx, folder.PostIDs, folder.ID); err != nil {
		return err
	}
	if err := s.Users.RemoveFolderFromUser(ctx, folder.PatronID, folder.ID); err != nil {
		return err
	}
	return s.Folders.Delete(ctx, folderID)
}

// DeleteAllByPatron removes every folder the user owns, used by account
// deletion.
func (s *FolderService) DeleteAllByPatron(ctx context.Context, patronID string) error {
	folders, err := s.Folders.FindByPatronID(ctx, patronID)
	if err != nil {
		return err
	}

	for _, folder := range folders {
		if err := s.Posts.RemoveFolderFromPosts(ctx, folder.PostIDs, folder.ID); err != nil {
			return err
		}
		if err := s.Folders.Delete(ctx, folder.ID); err != nil {
			return err
		}
	}
	return nil
}
