package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"main/model"
	"main/utils"

	"github.com/redis/go-redis/v9"
)

// PostIndexRepo is the secondary search-index store. Each post gets one
// redis hash keyed by its primary identity, holding only the searchable
// fields. The repo never creates an entry without a corresponding post; the
// write ordering that keeps the two stores in step lives in the usecase
// layer.
type PostIndexRepo struct {
	Client *redis.Client
}

const postIndexKeyPrefix = "post_index:"

func GetPostIndexRepo(client *redis.Client) *PostIndexRepo {
	return &PostIndexRepo{Client: client}
}

func postIndexKey(postID string) string {
	return postIndexKeyPrefix + postID
}

// Save writes the index projection, creating or overwriting it.
func (r *PostIndexRepo) Save(ctx context.Context, record *model.PostIndex) error {
	timer := utils.TrackDBOperation("save", "post_index")
	defer timer.ObserveDuration()

	if record == nil || record.PostID == "" {
		return fmt.Errorf("index record requires a post ID")
	}

	err := r.Client.HSet(ctx, postIndexKey(record.PostID),
		"title", record.Title,
		"description", record.Description,
	).Err()
	if err != nil {
		utils.TrackError("search_index", "save_failed")
		return fmt.Errorf("failed to save index record: %w", err)
	}
	return nil
}

func (r *PostIndexRepo) FindByPostID(ctx context.Context, postID string) (*model.PostIndex, error) {
	timer := utils.TrackDBOperation("find", "post_index")
	defer timer.ObserveDuration()

	fields, err := r.Client.HGetAll(ctx, postIndexKey(postID)).Result()
	if err != nil {
		utils.TrackError("search_index", "lookup_failed")
		return nil, fmt.Errorf("failed to read index record: %w", err)
	}
	if len(fields) == 0 {
		return nil, model.ErrNotFound
	}

	return &model.PostIndex{
		PostID:      postID,
		Title:       fields["title"],
		Description: fields["description"],
	}, nil
}

func (r *PostIndexRepo) DeleteByPostID(ctx context.Context, postID string) error {
	timer := utils.TrackDBOperation("delete", "post_index")
	defer timer.ObserveDuration()

	deleted, err := r.Client.Del(ctx, postIndexKey(postID)).Result()
	if err != nil {
		utils.TrackError("search_index", "delete_failed")
		return fmt.Errorf("failed to delete index record: %w", err)
	}
	if deleted == 0 {
		return model.ErrNotFound
	}
	return nil
}

// Search returns the page of index records whose title or description
// contains the keyword (case-sensitive substring, *keyword* semantics),
// plus the total match count. Records are ordered by post ID so paging is
// stable across calls.
func (r *PostIndexRepo) Search(ctx context.Context, keyword string, page model.PageRequest) ([]*model.PostIndex, int64, error) {
	timer := utils.TrackDBOperation("search", "post_index")
	defer timer.ObserveDuration()

	var matches []*model.PostIndex

	iter := r.Client.Scan(ctx, 0, postIndexKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		fields, err := r.Client.HGetAll(ctx, key).Result()
		if err != nil {
			utils.TrackError("search_index", "scan_read_failed")
			return nil, 0, fmt.Errorf("failed to read index record: %w", err)
		}
		if len(fields) == 0 {
			continue
		}

		title := fields["title"]
		description := fields["description"]
		if !strings.Contains(title, keyword) && !strings.Contains(description, keyword) {
			continue
		}

		matches = append(matches, &model.PostIndex{
			PostID:      strings.TrimPrefix(key, postIndexKeyPrefix),
			Title:       title,
			Description: description,
		})
	}
	if err := iter.Err(); err != nil {
		utils.TrackError("search_index", "scan_failed")
		return nil, 0, fmt.Errorf("index scan failed: %w", err)
	}

	sort.Slice(matches, func(i, j int) bool {
		return matches[i].PostID < matches[j].PostID
	})

	total := int64(len(matches))

	start := page.Offset()
	if start >= len(matches) {
		return []*model.PostIndex{}, total, nil
	}
	end := start + page.Size
	if end > len(matches) {
		end = len(matches)
	}

	return matches[start:end], total, nil
}
