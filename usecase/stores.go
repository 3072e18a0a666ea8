package usecase

import (
	"context"

	"main/model"
)

// Persistence surfaces consumed by the services. The repository package
// provides the production implementations; tests substitute in-memory
// fakes.

type PostStore interface {
	Insert(ctx context.Context, post *model.Post) error
	FindByID(ctx context.Context, postID string) (*model.Post, error)
	Save(ctx context.Context, post *model.Post) error
	Delete(ctx context.Context, postID string) error
	FindAll(ctx context.Context) ([]*model.Post, error)
	FindAllByIDs(ctx context.Context, postIDs []string) ([]*model.Post, error)
	FindByPatronID(ctx context.Context, patronID string) ([]*model.Post, error)
	FindAllPaged(ctx context.Context, page model.PageRequest) (*model.PostPage, error)
	FindByTagIDs(ctx context.Context, tagIDs []string, page model.PageRequest) (*model.PostPage, error)
	FindRandom(ctx context.Context, excludeTagIDs []string, page model.PageRequest) (*model.PostPage, error)
	AddFolderToPosts(ctx context.Context, postIDs []string, folderID string) error
	RemoveFolderFromPost(ctx context.Context, postID string, folderID string) error
	RemoveFolderFromPosts(ctx context.Context, postIDs []string, folderID string) error
	RemoveTagFromPosts(ctx context.Context, postIDs []string, tagID string) error
}

type PostIndexStore interface {
	Save(ctx context.Context, record *model.PostIndex) error
	FindByPostID(ctx context.Context, postID string) (*model.PostIndex, error)
	DeleteByPostID(ctx context.Context, postID string) error
	Search(ctx context.Context, keyword string, page model.PageRequest) ([]*model.PostIndex, int64, error)
}

type TagStore interface {
	FindAll(ctx context.Context) ([]*model.Tag, error)
	FindByID(ctx context.Context, tagID string) (*model.Tag, error)
	FindByName(ctx context.Context, name string) (*model.Tag, error)
	FindAllByIDs(ctx context.Context, tagIDs []string) ([]*model.Tag, error)
	Insert(ctx context.Context, tag *model.Tag) error
	InsertMany(ctx context.Context, tags []*model.Tag) error
	Delete(ctx context.Context, tagID string) error
	AddPostToTags(ctx context.Context, tagIDs []string, postID string) error
	RemovePostFromTag(ctx context.Context, tagID string, postID string) error
	RemovePostFromTags(ctx context.Context, tagIDs []string, postID string) error
	AddUserToTags(ctx context.Context, tagIDs []string, userID string) error
	RemoveUserFromTags(ctx context.Context, tagIDs []string, userID string) error
}

type FolderStore interface {
	FindAll(ctx context.Context) ([]*model.Folder, error)
	FindByID(ctx context.Context, folderID string) (*model.Folder, error)
	FindByPatronAndTitle(ctx context.Context, patronID string, title string) (*model.Folder, error)
	FindByPatronID(ctx context.Context, patronID string) ([]*model.Folder, error)
	Insert(ctx context.Context, folder *model.Folder) error
	Save(ctx context.Context, folder *model.Folder) error
	Delete(ctx context.Context, folderID string) error
	RemovePostFromFolders(ctx context.Context, folderIDs []string, postID string) error
}

type UserStore interface {
	AddUser(ctx context.Context, user *model.User) error
	FindUser(ctx context.Context, userID string) (*model.User, error)
	FindUserByUsername(ctx context.Context, username string) (*model.User, error)
	FindUserByEmail(ctx context.Context, email string) (*model.User, error)
	UpdateUser(ctx context.Context, user *model.User) error
	DeleteUserByID(ctx context.Context, userID string) error
	AddPostToUser(ctx context.Context, userID string, postID string) error
	RemovePostFromUser(ctx context.Context, userID string, postID string) error
	AddFolderToUser(ctx context.Context, userID string, folderID string) error
	RemoveFolderFromUser(ctx context.Context, userID string, folderID string) error
	AddPreferredTags(ctx context.Context, userID string, tagIDs []string) error
}

type ImageStore interface {
	Insert(ctx context.Context, image *model.Image) error
	FindByID(ctx context.Context, imageID string) (*model.Image, error)
	Delete(ctx context.Context, imageID string) error
	AddPostToImage(ctx context.Context, imageID string, postID string) error
	RemovePostFromImage(ctx context.Context, imageID string, postID string) error
}

// Tokenizer normalizes a free-text prompt into keyword tokens. The
// production implementation calls the external tokenization service.
type Tokenizer interface {
	Tokenize(ctx context.Context, prompt string) ([]string, error)
}
