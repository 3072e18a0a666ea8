package repository

import (
	"context"

	"main/model"
	"main/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type ImagesRepo struct {
	MongoCollection *mongo.Collection
}

func GetImagesRepo(client *mongo.Client) *ImagesRepo {
	return &ImagesRepo{
		MongoCollection: client.Database(utils.GetEnvAsString("MONGO_DB", "arthub")).Collection("images"),
	}
}

func (r *ImagesRepo) Insert(ctx context.Context, image *model.Image) error {
	timer := utils.TrackDBOperation("insert", "images")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.InsertOne(ctx, image)
	return err
}

func (r *ImagesRepo) FindByID(ctx context.Context, imageID string) (*model.Image, error) {
	timer := utils.TrackDBOperation("find", "images")
	defer timer.ObserveDuration()

	var image model.Image
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": imageID}).Decode(&image)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, model.ErrNotFound
		}
		return nil, err
	}
	return &image, nil
}

func (r *ImagesRepo) Delete(ctx context.Context, imageID string) error {
	timer := utils.TrackDBOperation("delete", "images")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{"_id": imageID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *ImagesRepo) AddPostToImage(ctx context.Context, imageID string, postID string) error {
	timer := utils.TrackDBOperation("update", "images")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.UpdateOne(ctx,
		bson.M{"_id": imageID},
		bson.M{"$addToSet": bson.M{"post_ids": postID}})
	return err
}

func (r *ImagesRepo) RemovePostFromImage(ctx context.Context, imageID string, postID string) error {
	timer := utils.TrackDBOperation("update", "images")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.UpdateOne(ctx,
		bson.M{"_id": imageID},
		bson.M{"$pull": bson.M{"post_ids": postID}})
	return err
}
