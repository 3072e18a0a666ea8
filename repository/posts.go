package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"main/model"
	"main/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PostsRepo struct {
	MongoCollection *mongo.Collection
}

func GetPostsRepo(client *mongo.Client) *PostsRepo {
	return &PostsRepo{
		MongoCollection: client.Database(utils.GetEnvAsString("MONGO_DB", "arthub")).Collection("posts"),
	}
}

// Insert stores a new post.
func (r *PostsRepo) Insert(ctx context.Context, post *model.Post) error {
	timer := utils.TrackDBOperation("insert", "posts")
	defer timer.ObserveDuration()

	if post.PatronID == "" {
		return errors.New("patron ID is required")
	}

	post.CreatedAt = time.Now()
	post.UpdatedAt = time.Now()

	_, err := r.MongoCollection.InsertOne(ctx, post)
	return err
}

func (r *PostsRepo) FindByID(ctx context.Context, postID string) (*model.Post, error) {
	timer := utils.TrackDBOperation("find", "posts")
	defer timer.ObserveDuration()

	var post model.Post
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": postID}).Decode(&post)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, model.ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

// Save replaces the stored post with the given one.
func (r *PostsRepo) Save(ctx context.Context, post *model.Post) error {
	timer := utils.TrackDBOperation("update", "posts")
	defer timer.ObserveDuration()

	post.UpdatedAt = time.Now()

	result, err := r.MongoCollection.ReplaceOne(ctx, bson.M{"_id": post.ID}, post)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *PostsRepo) Delete(ctx context.Context, postID string) error {
	timer := utils.TrackDBOperation("delete", "posts")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{"_id": postID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *PostsRepo) FindAll(ctx context.Context) ([]*model.Post, error) {
	timer := utils.TrackDBOperation("find", "posts")
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.MongoCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var posts []*model.Post
	if err = cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *PostsRepo) FindAllByIDs(ctx context.Context, postIDs []string) ([]*model.Post, error) {
	timer := utils.TrackDBOperation("find", "posts")
	defer timer.ObserveDuration()

	if len(postIDs) == 0 {
		return []*model.Post{}, nil
	}

	cursor, err := r.MongoCollection.Find(ctx, bson.M{"_id": bson.M{"$in": postIDs}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var posts []*model.Post
	if err = cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *PostsRepo) FindByPatronID(ctx context.Context, patronID string) ([]*model.Post, error) {
	timer := utils.TrackDBOperation("find", "posts")
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.MongoCollection.Find(ctx, bson.M{"patron_id": patronID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var posts []*model.Post
	if err = cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// FindAllPaged returns posts in store-native order (newest first), paginated.
func (r *PostsRepo) FindAllPaged(ctx context.Context, page model.PageRequest) (*model.PostPage, error) {
	timer := utils.TrackDBOperation("find", "posts")
	defer timer.ObserveDuration()

	return r.findPage(ctx, bson.M{}, page)
}

// FindByTagIDs returns posts whose tag set intersects the given tag IDs.
func (r *PostsRepo) FindByTagIDs(ctx context.Context, tagIDs []string, page model.PageRequest) (*model.PostPage, error) {
	timer := utils.TrackDBOperation("find", "posts")
	defer timer.ObserveDuration()

	if len(tagIDs) == 0 {
		return model.EmptyPostPage(page), nil
	}

	filter := bson.M{"tag_ids": bson.M{"$in": tagIDs}}
	return r.findPage(ctx, filter, page)
}

// FindRandom samples posts in random order, excluding posts carrying any of
// the given tag IDs when the exclusion list is non-empty.
func (r *PostsRepo) FindRandom(ctx context.Context, excludeTagIDs []string, page model.PageRequest) (*model.PostPage, error) {
	timer := utils.TrackDBOperation("aggregate", "posts")
	defer timer.ObserveDuration()

	match := bson.M{}
	if len(excludeTagIDs) > 0 {
		match = bson.M{"tag_ids": bson.M{"$nin": excludeTagIDs}}
	}

	total, err := r.MongoCollection.CountDocuments(ctx, match)
	if err != nil {
		return nil, err
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: match}},
		bson.D{{Key: "$sample", Value: bson.D{{Key: "size", Value: page.Size}}}},
	}

	cursor, err := r.MongoCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var posts []*model.Post
	if err = cursor.All(ctx, &posts); err != nil {
		return nil, err
	}

	return &model.PostPage{
		Content:       posts,
		TotalElements: total,
		Page:          page.Page,
		Size:          page.Size,
	}, nil
}

// Association updates. Each call persists the posts' side of an edge.

func (r *PostsRepo) AddFolderToPosts(ctx context.Context, postIDs []string, folderID string) error {
	timer := utils.TrackDBOperation("update", "posts")
	defer timer.ObserveDuration()

	if len(postIDs) == 0 {
		return nil
	}
	_, err := r.MongoCollection.UpdateMany(ctx,
		bson.M{"_id": bson.M{"$in": postIDs}},
		bson.M{"$addToSet": bson.M{"folder_ids": folderID}})
	return err
}

func (r *PostsRepo) RemoveFolderFromPost(ctx context.Context, postID string, folderID string) error {
	timer := utils.TrackDBOperation("update", "posts")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.UpdateOne(ctx,
		bson.M{"_id": postID},
		bson.M{"$pull": bson.M{"folder_ids": folderID}})
	return err
}

func (r *PostsRepo) RemoveFolderFromPosts(ctx context.Context, postIDs []string, folderID string) error {
	timer := utils.TrackDBOperation("update", "posts")
	defer timer.ObserveDuration()

	if len(postIDs) == 0 {
		return nil
	}
	_, err := r.MongoCollection.UpdateMany(ctx,
		bson.M{"_id": bson.M{"$in": postIDs}},
		bson.M{"$pull": bson.M{"folder_ids": folderID}})
	return err
}

func (r *PostsRepo) RemoveTagFromPosts(ctx context.Context, postIDs []string, tagID string) error {
	timer := utils.TrackDBOperation("update", "posts")
	defer timer.ObserveDuration()

	if len(postIDs) == 0 {
		return nil
	}
	_, err := r.MongoCollection.UpdateMany(ctx,
		bson.M{"_id": bson.M{"$in": postIDs}},
		bson.M{"$pull": bson.M{"tag_ids": tagID}})
	return err
}

func (r *PostsRepo) findPage(ctx context.Context, filter bson.M, page model.PageRequest) (*model.PostPage, error) {
	total, err := r.MongoCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to count posts: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64(page.Offset())).
		SetLimit(int64(page.Size))

	cursor, err := r.MongoCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var posts []*model.Post
	if err = cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []*model.Post{}
	}

	return &model.PostPage{
		Content:       posts,
		TotalElements: total,
		Page:          page.Page,
		Size:          page.Size,
	}, nil
}
