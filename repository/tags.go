package repository

import (
	"context"

	"main/model"
	"main/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type TagsRepo struct {
	MongoCollection *mongo.Collection
}

func GetTagsRepo(client *mongo.Client) *TagsRepo {
	return &TagsRepo{
		MongoCollection: client.Database(utils.GetEnvAsString("MONGO_DB", "arthub")).Collection("tags"),
	}
}

func (r *TagsRepo) FindAll(ctx context.Context) ([]*model.Tag, error) {
	timer := utils.TrackDBOperation("find", "tags")
	defer timer.ObserveDuration()

	cursor, err := r.MongoCollection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var tags []*model.Tag
	if err = cursor.All(ctx, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

func (r *TagsRepo) FindByID(ctx context.Context, tagID string) (*model.Tag, error) {
	timer := utils.TrackDBOperation("find", "tags")
	defer timer.ObserveDuration()

	var tag model.Tag
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": tagID}).Decode(&tag)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, model.ErrNotFound
		}
		return nil, err
	}
	return &tag, nil
}

// FindByName returns model.ErrNotFound when no tag carries the name.
func (r *TagsRepo) FindByName(ctx context.Context, name string) (*model.Tag, error) {
	timer := utils.TrackDBOperation("find", "tags")
	defer timer.ObserveDuration()

	var tag model.Tag
	err := r.MongoCollection.FindOne(ctx, bson.M{"name": name}).Decode(&tag)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, model.ErrNotFound
		}
		return nil, err
	}
	return &tag, nil
}

func (r *TagsRepo) FindAllByIDs(ctx context.Context, tagIDs []string) ([]*model.Tag, error) {
	timer := utils.TrackDBOperation("find", "tags")
	defer timer.ObserveDuration()

	if len(tagIDs) == 0 {
		return []*model.Tag{}, nil
	}

	cursor, err := r.MongoCollection.Find(ctx, bson.M{"_id": bson.M{"$in": tagIDs}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var tags []*model.Tag
	if err = cursor.All(ctx, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

func (r *TagsRepo) Insert(ctx context.Context, tag *model.Tag) error {
	timer := utils.TrackDBOperation("insert", "tags")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.InsertOne(ctx, tag)
	return err
}

// InsertMany stores the staged tags in one bulk operation.
func (r *TagsRepo) InsertMany(ctx context.Context, tags []*model.Tag) error {
	timer := utils.TrackDBOperation("insert", "tags")
	defer timer.ObserveDuration()

	if len(tags) == 0 {
		return nil
	}

	docs := make([]interface{}, 0, len(tags))
	for _, tag := range tags {
		docs = append(docs, tag)
	}
	_, err := r.MongoCollection.InsertMany(ctx, docs)
	return err
}

func (r *TagsRepo) Delete(ctx context.Context, tagID string) error {
	timer := utils.TrackDBOperation("delete", "tags")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{"_id": tagID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return model.ErrNotFound
	}
	return nil
}

// Association updates. Each call persists the tags' side of an edge.

func (r *TagsRepo) AddPostToTags(ctx context.Context, tagIDs []string, postID string) error {
	timer := utils.TrackDBOperation("update", "tags")
	defer timer.ObserveDuration()

	if len(tagIDs) == 0 {
		return nil
	}
	_, err := r.MongoCollection.UpdateMany(ctx,
		bson.M{"_id": bson.M{"$in": tagIDs}},
		bson.M{"$addToSet": bson.M{"post_ids": postID}})
	return err
}

func (r *TagsRepo) RemovePostFromTag(ctx context.Context, tagID string, postID string) error {
	timer := utils.TrackDBOperation("update", "tags")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.UpdateOne(ctx,
		bson.M{"_id": tagID},
		bson.M{"$pull": bson.M{"post_ids": postID}})
	return err
}

func (r *TagsRepo) RemovePostFromTags(ctx context.Context, tagIDs []string, postID string) error {
	timer := utils.TrackDBOperation("update", "tags")
	defer timer.ObserveDuration()

	if len(tagIDs) == 0 {
		return nil
	}
	_, err := r.MongoCollection.UpdateMany(ctx,
		bson.M{"_id": bson.M{"$in": tagIDs}},
		bson.M{"$pull": bson.M{"post_ids": postID}})
	return err
}

func (r *TagsRepo) AddUserToTags(ctx context.Context, tagIDs []string, userID string) error {
	timer := utils.TrackDBOperation("update", "tags")
	defer timer.ObserveDuration()

	if len(tagIDs) == 0 {
		return nil
	}
	_, err := r.MongoCollection.UpdateMany(ctx,
		bson.M{"_id": bson.M{"$in": tagIDs}},
		bson.M{"$addToSet": bson.M{"user_ids": userID}})
	return err
}

func (r *TagsRepo) RemoveUserFromTags(ctx context.Context, tagIDs []string, userID string) error {
	timer := utils.TrackDBOperation("update", "tags")
	defer timer.ObserveDuration()

	if len(tagIDs) == 0 {
		return nil
	}
	_, err := r.MongoCollection.UpdateMany(ctx,
		bson.M{"_id": bson.M{"$in": tagIDs}},
		bson.M{"$pull": bson.M{"user_ids": userID}})
	return err
}
