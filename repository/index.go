package repository

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SetupIndexes creates the indexes the repositories rely on. The unique
// indexes back the AlreadyExists checks at the store level as well.
func SetupIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "user_id", Value: 1}},
			Options: options.Index().
				SetName("user_id_unique").
				SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "username", Value: 1}},
			Options: options.Index().
				SetName("username_unique").
				SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "email", Value: 1}},
			Options: options.Index().
				SetName("email_unique").
				SetUnique(true),
		},
	}

	postIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "patron_id", Value: 1},
				{Key: "created_at", Value: -1},
			},
			Options: options.Index().SetName("patron_posts_date"),
		},
		{
			Keys:    bson.D{{Key: "tag_ids", Value: 1}},
			Options: options.Index().SetName("post_tags"),
		},
	}

	tagIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "name", Value: 1}},
			Options: options.Index().
				SetName("tag_name_unique").
				SetUnique(true),
		},
	}

	folderIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "patron_id", Value: 1},
				{Key: "title", Value: 1},
			},
			Options: options.Index().
				SetName("patron_folder_title_unique").
				SetUnique(true),
		},
	}

	sessionIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "session_id", Value: 1}},
			Options: options.Index().SetName("session_id_unique").SetUnique(true),
		},
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "is_active", Value: 1},
			},
			Options: options.Index().SetName("user_active_sessions"),
		},
		{
			Keys: bson.D{{Key: "expires_at", Value: 1}},
			Options: options.Index().
				SetName("session_expiry").
				SetExpireAfterSeconds(0),
		},
	}

	collections := map[string][]mongo.IndexModel{
		"users":    userIndexes,
		"posts":    postIndexes,
		"tags":     tagIndexes,
		"folders":  folderIndexes,
		"sessions": sessionIndexes,
	}

	for name, indexes := range collections {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, indexes); err != nil {
			return fmt.Errorf("failed to create indexes for %s: %w", name, err)
		}
		log.Printf("Indexes created for collection %s", name)
	}

	return nil
}
