package repository

import (
	"context"
	"time"

	"main/model"
	"main/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type FoldersRepo struct {
	MongoCollection *mongo.Collection
}

func GetFoldersRepo(client *mongo.Client) *FoldersRepo {
	return &FoldersRepo{
		MongoCollection: client.Database(utils.GetEnvAsString("MONGO_DB", "arthub")).Collection("folders"),
	}
}

func (r *FoldersRepo) FindAll(ctx context.Context) ([]*model.Folder, error) {
	timer := utils.TrackDBOperation("find", "folders")
	defer timer.ObserveDuration()

	cursor, err := r.MongoCollection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var folders []*model.Folder
	if err = cursor.All(ctx, &folders); err != nil {
		return nil, err
	}
	return folders, nil
}

func (r *FoldersRepo) FindByID(ctx context.Context, folderID string) (*model.Folder, error) {
	timer := utils.TrackDBOperation("find", "folders")
	defer timer.ObserveDuration()

	var folder model.Folder
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": folderID}).Decode(&folder)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, model.ErrNotFound
		}
		return nil, err
	}
	return &folder, nil
}

// FindByPatronAndTitle backs the per-patron title uniqueness check.
func (r *FoldersRepo) FindByPatronAndTitle(ctx context.Context, patronID string, title string) (*model.Folder, error) {
	timer := utils.TrackDBOperation("find", "folders")
	defer timer.ObserveDuration()

	var folder model.Folder
	err := r.MongoCollection.FindOne(ctx,
		bson.M{"patron_id": patronID, "title": title}).Decode(&folder)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, model.ErrNotFound
		}
		return nil, err
	}
	return &folder, nil
}

func (r *FoldersRepo) FindByPatronID(ctx context.Context, patronID string) ([]*model.Folder, error) {
	timer := utils.TrackDBOperation("find", "folders")
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.MongoCollection.Find(ctx, bson.M{"patron_id": patronID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var folders []*model.Folder
	if err = cursor.All(ctx, &folders); err != nil {
		return nil, err
	}
	return folders, nil
}

func (r *FoldersRepo) Insert(ctx context.Context, folder *model.Folder) error {
	timer := utils.TrackDBOperation("insert", "folders")
	defer timer.ObserveDuration()

	folder.CreatedAt = time.Now()
	folder.UpdatedAt = time.Now()

	_, err := r.MongoCollection.InsertOne(ctx, folder)
	return err
}

func (r *FoldersRepo) Save(ctx context.Context, folder *model.Folder) error {
	timer := utils.TrackDBOperation("update", "folders")
	defer timer.ObserveDuration()

	folder.UpdatedAt = time.Now()

	result, err := r.MongoCollection.ReplaceOne(ctx, bson.M{"_id": folder.ID}, folder)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *FoldersRepo) Delete(ctx context.Context, folderID string) error {
	timer := utils.TrackDBOperation("delete", "folders")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{"_id": folderID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return model.ErrNotFound
	}
	return nil
}

// RemovePostFromFolders persists the folders' side of removed post edges.
func (r *FoldersRepo) RemovePostFromFolders(ctx context.Context, folderIDs []string, postID string) error {
	timer := utils.TrackDBOperation("update", "folders")
	defer timer.ObserveDuration()

	if len(folderIDs) == 0 {
		return nil
	}
	_, err := r.MongoCollection.UpdateMany(ctx,
		bson.M{"_id": bson.M{"$in": folderIDs}},
		bson.M{"$pull": bson.M{"post_ids": postID}})
	return err
}
