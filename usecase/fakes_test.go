package usecase

import (
	"context"
	"fmt"

	"main/model"
)

// callLog records store calls across fakes so tests can assert ordering
// between the primary store and the index.
type callLog struct {
	entries []string
}

func (l *callLog) add(entry string) {
	l.entries = append(l.entries, entry)
}

func (l *callLog) index(entry string) int {
	for i, e := range l.entries {
		if e == entry {
			return i
		}
	}
	return -1
}

func (l *callLog) has(entry string) bool {
	return l.index(entry) >= 0
}

type fakePostStore struct {
	log   *callLog
	posts map[string]*model.Post
	order []string

	insertErr error
	saveErr   error
	deleteErr error

	taggedPage *model.PostPage
	randomPage *model.PostPage
	pagedPage  *model.PostPage

	byTagArgs  []string
	byTagPage  model.PageRequest
	randomArgs []string
	randomReq  model.PageRequest

	removeTagCalls     []string
	bulkRemoveTagCalls int
}

func newFakePostStore(log *callLog) *fakePostStore {
	return &fakePostStore{log: log, posts: make(map[string]*model.Post)}
}

func (f *fakePostStore) put(post *model.Post) {
	if _, ok := f.posts[post.ID]; !ok {
		f.order = append(f.order, post.ID)
	}
	f.posts[post.ID] = post
}

func (f *fakePostStore) Insert(ctx context.Context, post *model.Post) error {
	f.log.add("posts.Insert")
	if f.insertErr != nil {
		return f.insertErr
	}
	f.put(post)
	return nil
}

func (f *fakePostStore) FindByID(ctx context.Context, postID string) (*model.Post, error) {
	post, ok := f.posts[postID]
	if !ok {
		return nil, model.ErrNotFound
	}
	return post, nil
}

func (f *fakePostStore) Save(ctx context.Context, post *model.Post) error {
	f.log.add("posts.Save")
	if f.saveErr != nil {
		return f.saveErr
	}
	if _, ok := f.posts[post.ID]; !ok {
		return model.ErrNotFound
	}
	f.posts[post.ID] = post
	return nil
}

func (f *fakePostStore) Delete(ctx context.Context, postID string) error {
	f.log.add("posts.Delete")
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if _, ok := f.posts[postID]; !ok {
		return model.ErrNotFound
	}
	delete(f.posts, postID)
	return nil
}

func (f *fakePostStore) FindAll(ctx context.Context) ([]*model.Post, error) {
	out := make([]*model.Post, 0, len(f.posts))
	for _, id := range f.order {
		if post, ok := f.posts[id]; ok {
			out = append(out, post)
		}
	}
	return out, nil
}

func (f *fakePostStore) FindAllByIDs(ctx context.Context, postIDs []string) ([]*model.Post, error) {
	f.log.add("posts.FindAllByIDs")
	out := make([]*model.Post, 0, len(postIDs))
	for _, id := range postIDs {
		if post, ok := f.posts[id]; ok {
			out = append(out, post)
		}
	}
	return out, nil
}

func (f *fakePostStore) FindByPatronID(ctx context.Context, patronID string) ([]*model.Post, error) {
	var out []*model.Post
	for _, id := range f.order {
		if post, ok := f.posts[id]; ok && post.PatronID == patronID {
			out = append(out, post)
		}
	}
	return out, nil
}

func (f *fakePostStore) FindAllPaged(ctx context.Context, page model.PageRequest) (*model.PostPage, error) {
	if f.pagedPage != nil {
		return f.pagedPage, nil
	}
	posts, _ := f.FindAll(ctx)
	return &model.PostPage{
		Content:       posts,
		TotalElements: int64(len(posts)),
		Page:          page.Page,
		Size:          page.Size,
	}, nil
}

func (f *fakePostStore) FindByTagIDs(ctx context.Context, tagIDs []string, page model.PageRequest) (*model.PostPage, error) {
	f.log.add("posts.FindByTagIDs")
	f.byTagArgs = tagIDs
	f.byTagPage = page
	if f.taggedPage != nil {
		return f.taggedPage, nil
	}
	return model.EmptyPostPage(page), nil
}

func (f *fakePostStore) FindRandom(ctx context.Context, excludeTagIDs []string, page model.PageRequest) (*model.PostPage, error) {
	f.log.add("posts.FindRandom")
	f.randomArgs = excludeTagIDs
	f.randomReq = page
	if f.randomPage != nil {
		return f.randomPage, nil
	}
	return model.EmptyPostPage(page), nil
}

func (f *fakePostStore) AddFolderToPosts(ctx context.Context, postIDs []string, folderID string) error {
	f.log.add(fmt.Sprintf("posts.AddFolderToPosts:%v", postIDs))
	return nil
}

func (f *fakePostStore) RemoveFolderFromPost(ctx context.Context, postID string, folderID string) error {
	f.log.add(fmt.Sprintf("posts.RemoveFolderFromPost:%s", postID))
	return nil
}

func (f *fakePostStore) RemoveFolderFromPosts(ctx context.Context, postIDs []string, folderID string) error {
	f.log.add("posts.RemoveFolderFromPosts")
	return nil
}

func (f *fakePostStore) RemoveTagFromPosts(ctx context.Context, postIDs []string, tagID string) error {
	f.log.add("posts.RemoveTagFromPosts")
	f.bulkRemoveTagCalls++
	return nil
}

type fakeIndexStore struct {
	log     *callLog
	records map[string]*model.PostIndex

	saveErr   error
	deleteErr error

	searchRecords []*model.PostIndex
	searchTotal   int64
	searchErr     error
}

func newFakeIndexStore(log *callLog) *fakeIndexStore {
	return &fakeIndexStore{log: log, records: make(map[string]*model.PostIndex)}
}

func (f *fakeIndexStore) Save(ctx context.Context, record *model.PostIndex) error {
	f.log.add("index.Save")
	if f.saveErr != nil {
		return f.saveErr
	}
	f.records[record.PostID] = record
	return nil
}

func (f *fakeIndexStore) FindByPostID(ctx context.Context, postID string) (*model.PostIndex, error) {
	record, ok := f.records[postID]
	if !ok {
		return nil, model.ErrNotFound
	}
	return record, nil
}

func (f *fakeIndexStore) DeleteByPostID(ctx context.Context, postID string) error {
	f.log.add("index.Delete")
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if _, ok := f.records[postID]; !ok {
		return model.ErrNotFound
	}
	delete(f.records, postID)
	return nil
}

func (f *fakeIndexStore) Search(ctx context.Context, keyword string, page model.PageRequest) ([]*model.PostIndex, int64, error) {
	f.log.add("index.Search")
	return f.searchRecords, f.searchTotal, f.searchErr
}

type fakeTagStore struct {
	log   *callLog
	tags  map[string]*model.Tag
	order []string

	insertManyCalls  int
	insertManyStaged []*model.Tag
	addPostCalls     [][]string
	removePostCalls  []string
	bulkRemoveCalls  [][]string
	addUserCalls     [][]string
	removeUserCalls  [][]string
}

func newFakeTagStore(log *callLog) *fakeTagStore {
	return &fakeTagStore{log: log, tags: make(map[string]*model.Tag)}
}

func (f *fakeTagStore) put(tag *model.Tag) {
	if _, ok := f.tags[tag.ID]; !ok {
		f.order = append(f.order, tag.ID)
	}
	f.tags[tag.ID] = tag
}

func (f *fakeTagStore) FindAll(ctx context.Context) ([]*model.Tag, error) {
	out := make([]*model.Tag, 0, len(f.tags))
	for _, id := range f.order {
		if tag, ok := f.tags[id]; ok {
			out = append(out, tag)
		}
	}
	return out, nil
}

func (f *fakeTagStore) FindByID(ctx context.Context, tagID string) (*model.Tag, error) {
	tag, ok := f.tags[tagID]
	if !ok {
		return nil, model.ErrNotFound
	}
	return tag, nil
}

func (f *fakeTagStore) FindByName(ctx context.Context, name string) (*model.Tag, error) {
	for _, tag := range f.tags {
		if tag.Name == name {
			return tag, nil
		}
	}
	return nil, model.ErrNotFound
}

func (f *fakeTagStore) FindAllByIDs(ctx context.Context, tagIDs []string) ([]*model.Tag, error) {
	out := make([]*model.Tag, 0, len(tagIDs))
	for _, id := range tagIDs {
		if tag, ok := f.tags[id]; ok {
			out = append(out, tag)
		}
	}
	return out, nil
}

func (f *fakeTagStore) Insert(ctx context.Context, tag *model.Tag) error {
	f.log.add("tags.Insert")
	f.put(tag)
	return nil
}

func (f *fakeTagStore) InsertMany(ctx context.Context, tags []*model.Tag) error {
	f.log.add("tags.InsertMany")
	f.insertManyCalls++
	f.insertManyStaged = tags
	for _, tag := range tags {
		f.put(tag)
	}
	return nil
}

func (f *fakeTagStore) Delete(ctx context.Context, tagID string) error {
	f.log.add("tags.Delete")
	if _, ok := f.tags[tagID]; !ok {
		return model.ErrNotFound
	}
	delete(f.tags, tagID)
	return nil
}

func (f *fakeTagStore) AddPostToTags(ctx context.Context, tagIDs []string, postID string) error {
	f.log.add(fmt.Sprintf("tags.AddPostToTags:%v", tagIDs))
	f.addPostCalls = append(f.addPostCalls, tagIDs)
	return nil
}

func (f *fakeTagStore) RemovePostFromTag(ctx context.Context, tagID string, postID string) error {
	f.log.add(fmt.Sprintf("tags.RemovePostFromTag:%s", tagID))
	f.removePostCalls = append(f.removePostCalls, tagID)
	return nil
}

func (f *fakeTagStore) RemovePostFromTags(ctx context.Context, tagIDs []string, postID string) error {
	f.log.add("tags.RemovePostFromTags")
	f.bulkRemoveCalls = append(f.bulkRemoveCalls, tagIDs)
	return nil
}

func (f *fakeTagStore) AddUserToTags(ctx context.Context, tagIDs []string, userID string) error {
	f.log.add("tags.AddUserToTags")
	f.addUserCalls = append(f.addUserCalls, tagIDs)
	return nil
}

func (f *fakeTagStore) RemoveUserFromTags(ctx context.Context, tagIDs []string, userID string) error {
	f.log.add("tags.RemoveUserFromTags")
	f.removeUserCalls = append(f.removeUserCalls, tagIDs)
	return nil
}

type fakeFolderStore struct {
	log     *callLog
	folders map[string]*model.Folder
	order   []string
}

func newFakeFolderStore(log *callLog) *fakeFolderStore {
	return &fakeFolderStore{log: log, folders: make(map[string]*model.Folder)}
}

func (f *fakeFolderStore) put(folder *model.Folder) {
	if _, ok := f.folders[folder.ID]; !ok {
		f.order = append(f.order, folder.ID)
	}
	f.folders[folder.ID] = folder
}

func (f *fakeFolderStore) FindAll(ctx context.Context) ([]*model.Folder, error) {
	out := make([]*model.Folder, 0, len(f.folders))
	for _, id := range f.order {
		if folder, ok := f.folders[id]; ok {
			out = append(out, folder)
		}
	}
	return out, nil
}

func (f *fakeFolderStore) FindByID(ctx context.Context, folderID string) (*model.Folder, error) {
	folder, ok := f.folders[folderID]
	if !ok {
		return nil, model.ErrNotFound
	}
	return folder, nil
}

func (f *fakeFolderStore) FindByPatronAndTitle(ctx context.Context, patronID string, title string) (*model.Folder, error) {
	for _, folder := range f.folders {
		if folder.PatronID == patronID && folder.Title == title {
			return folder, nil
		}
	}
	return nil, model.ErrNotFound
}

func (f *fakeFolderStore) FindByPatronID(ctx context.Context, patronID string) ([]*model.Folder, error) {
	var out []*model.Folder
	for _, id := range f.order {
		if folder, ok := f.folders[id]; ok && folder.PatronID == patronID {
			out = append(out, folder)
		}
	}
	return out, nil
}

func (f *fakeFolderStore) Insert(ctx context.Context, folder *model.Folder) error {
	f.log.add("folders.Insert")
	f.put(folder)
	return nil
}

func (f *fakeFolderStore) Save(ctx context.Context, folder *model.Folder) error {
	f.log.add("folders.Save")
	if _, ok := f.folders[folder.ID]; !ok {
		return model.ErrNotFound
	}
	f.folders[folder.ID] = folder
	return nil
}

func (f *fakeFolderStore) Delete(ctx context.Context, folderID string) error {
	f.log.add("folders.Delete")
	if _, ok := f.folders[folderID]; !ok {
		return model.ErrNotFound
	}
	delete(f.folders, folderID)
	return nil
}

func (f *fakeFolderStore) RemovePostFromFolders(ctx context.Context, folderIDs []string, postID string) error {
	f.log.add("folders.RemovePostFromFolders")
	return nil
}

type fakeUserStore struct {
	log   *callLog
	users map[string]*model.User

	preferredAdds [][]string
}

func newFakeUserStore(log *callLog) *fakeUserStore {
	return &fakeUserStore{log: log, users: make(map[string]*model.User)}
}

func (f *fakeUserStore) AddUser(ctx context.Context, user *model.User) error {
	f.log.add("users.AddUser")
	f.users[user.UserID] = user
	return nil
}

func (f *fakeUserStore) FindUser(ctx context.Context, userID string) (*model.User, error) {
	user, ok := f.users[userID]
	if !ok {
		return nil, model.ErrNotFound
	}
	return user, nil
}

func (f *fakeUserStore) FindUserByUsername(ctx context.Context, username string) (*model.User, error) {
	for _, user := range f.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) FindUserByEmail(ctx context.Context, email string) (*model.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) UpdateUser(ctx context.Context, user *model.User) error {
	f.log.add("users.UpdateUser")
	if _, ok := f.users[user.UserID]; !ok {
		return model.ErrNotFound
	}
	f.users[user.UserID] = user
	return nil
}

func (f *fakeUserStore) DeleteUserByID(ctx context.Context, userID string) error {
	f.log.add("users.DeleteUserByID")
	if _, ok := f.users[userID]; !ok {
		return model.ErrNotFound
	}
	delete(f.users, userID)
	return nil
}

func (f *fakeUserStore) AddPostToUser(ctx context.Context, userID string, postID string) error {
	f.log.add("users.AddPostToUser")
	if user, ok := f.users[userID]; ok {
		user.PostIDs = append(user.PostIDs, postID)
	}
	return nil
}

func (f *fakeUserStore) RemovePostFromUser(ctx context.Context, userID string, postID string) error {
	f.log.add("users.RemovePostFromUser")
	return nil
}

func (f *fakeUserStore) AddFolderToUser(ctx context.Context, userID string, folderID string) error {
	f.log.add("users.AddFolderToUser")
	if user, ok := f.users[userID]; ok {
		user.FolderIDs = append(user.FolderIDs, folderID)
	}
	return nil
}

func (f *fakeUserStore) RemoveFolderFromUser(ctx context.Context, userID string, folderID string) error {
	f.log.add("users.RemoveFolderFromUser")
	return nil
}

func (f *fakeUserStore) AddPreferredTags(ctx context.Context, userID string, tagIDs []string) error {
	f.log.add("users.AddPreferredTags")
	f.preferredAdds = append(f.preferredAdds, tagIDs)
	if user, ok := f.users[userID]; ok {
		user.PreferredTagIDs = append(user.PreferredTagIDs, tagIDs...)
	}
	return nil
}

type fakeImageStore struct {
	log    *callLog
	images map[string]*model.Image
}

func newFakeImageStore(log *callLog) *fakeImageStore {
	return &fakeImageStore{log: log, images: make(map[string]*model.Image)}
}

func (f *fakeImageStore) Insert(ctx context.Context, image *model.Image) error {
	f.log.add("images.Insert")
	f.images[image.ID] = image
	return nil
}

func (f *fakeImageStore) FindByID(ctx context.Context, imageID string) (*model.Image, error) {
	image, ok := f.images[imageID]
	if !ok {
		return nil, model.ErrNotFound
	}
	return image, nil
}

func (f *fakeImageStore) Delete(ctx context.Context, imageID string) error {
	f.log.add("images.Delete")
	delete(f.images, imageID)
	return nil
}

func (f *fakeImageStore) AddPostToImage(ctx context.Context, imageID string, postID string) error {
	f.log.add("images.AddPostToImage")
	return nil
}

func (f *fakeImageStore) RemovePostFromImage(ctx context.Context, imageID string, postID string) error {
	f.log.add("images.RemovePostFromImage")
	return nil
}

type fakeTokenizer struct {
	tokens  map[string][]string
	err     error
	prompts []string
}

func (f *fakeTokenizer) Tokenize(ctx context.Context, prompt string) ([]string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return nil, f.err
	}
	return f.tokens[prompt], nil
}
