package usecase

import (
	"context"
	"fmt"
	"time"

	"main/dto"
	"main/model"
	"main/services"
	"main/utils"
)

// UserService owns accounts. Deleting an account cascades through the
// post and folder services so every owned entity and the search index
// stay consistent.
type UserService struct {
	Users     UserStore
	Tags      TagStore
	PostSvc   *PostService
	FolderSvc *FolderService
}

func (s *UserService) CreateUser(ctx context.Context, req *dto.RegisterRequest) (*model.User, error) {
	existing, err := s.Users.FindUserByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("username taken: %w", model.ErrAlreadyExists)
	}

	existing, err = s.Users.FindUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("email taken: %w", model.ErrAlreadyExists)
	}

	hashed, err := services.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		UserID:    utils.GenerateID(),
		Username:  req.Username,
		Email:     req.Email,
		Password:  hashed,
		CreatedAt: time.Now(),
	}
	if err := s.Users.AddUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) GetUserByID(ctx context.Context, userID string) (*model.User, error) {
	return s.Users.FindUser(ctx, userID)
}

func (s *UserService) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	user, err := s.Users.FindUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, model.ErrNotFound
	}
	return user, nil
}

// UpdateUser changes username and email. Each field is checked against
// other accounts before the write.
func (s *UserService) UpdateUser(ctx context.Context, userID string, req *dto.UpdateUserRequest) (*model.User, error) {
	user, err := s.Users.FindUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Username != user.Username {
		taken, err := s.Users.FindUserByUsername(ctx, req.Username)
		if err != nil {
			return nil, err
		}
		if taken != nil {
			return nil, fmt.Errorf("username taken: %w", model.ErrAlreadyExists)
		}
	}
	if req.Email != user.Email {
		taken, err := s.Users.FindUserByEmail(ctx, req.Email)
		if err != nil {
			return nil, err
		}
		if taken != nil {
			return nil, fmt.Errorf("email taken: %w", model.ErrAlreadyExists)
		}
	}

	user.Username = req.Username
	user.Email = req.Email
	if err := s.Users.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// AddPreferredTags records recommendation preferences on the account and
// mirrors the membership on each tag.
func (s *UserService) AddPreferredTags(ctx context.Context, userID string, tagIDs []string) (*model.User, error) {
	user, err := s.Users.FindUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	for _, tagID := range tagIDs {
		if _, err := s.Tags.FindByID(ctx, tagID); err != nil {
			return nil, err
		}
	}

	if err := s.Users.AddPreferredTags(ctx, userID, tagIDs); err != nil {
		return nil, err
	}
	if err := s.Tags.AddUserToTags(ctx, tagIDs, userID); err != nil {
		return nil, err
	}
	return s.Users.FindUser(ctx, user.UserID)
}

// DeleteUser removes the account and everything it owns: tag
// preferences, then all posts (with their index records and images),
// then all folders.
func (s *UserService) DeleteUser(ctx context.Context, userID string) error {
	user, err := s.Users.FindUser(ctx, userID)
	if err != nil {
		return err
	}

	if len(user.PreferredTagIDs) > 0 {
		if err := s.Tags.RemoveUserFromTags(ctx, user.PreferredTagIDs, userID); err != nil {
			return err
		}
	}
	if err := s.PostSvc.DeleteAllByPatron(ctx, userID); err != nil {
		return err
	}
	if err := s.FolderSvc.DeleteAllByPatron(ctx, userID); err != nil {
		return err
	}
	return s.Users.DeleteUserByID(ctx, userID)
}
