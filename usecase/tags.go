package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"main/model"

	"github.com/google/uuid"
)

type TagService struct {
	Tags   TagStore
	Posts  PostStore
	Search *SearchService
}

func (s *TagService) ReadAll(ctx context.Context) ([]*model.Tag, error) {
	return s.Tags.FindAll(ctx)
}

func (s *TagService) GetTagByID(ctx context.Context, tagID string) (*model.Tag, error) {
	return s.Tags.FindByID(ctx, tagID)
}

func (s *TagService) GetTagsByIDs(ctx context.Context, tagIDs []string) ([]*model.Tag, error) {
	return s.Tags.FindAllByIDs(ctx, tagIDs)
}

// CreateTag stores a single tag, rejecting duplicate names.
func (s *TagService) CreateTag(ctx context.Context, tag *model.Tag) (*model.Tag, error) {
	if _, err := s.Tags.FindByName(ctx, tag.Name); err == nil {
		log.Printf("Tag already exists: %s", tag.Name)
		return nil, model.ErrAlreadyExists
	} else if !errors.Is(err, model.ErrNotFound) {
		return nil, err
	}

	if tag.ID == "" {
		tag.ID = uuid.NewString()
	}
	if err := s.Tags.Insert(ctx, tag); err != nil {
		return nil, err
	}
	return tag, nil
}

// CreateTagsFromPrompt lower-cases each free-text name, tokenizes it and
// stages a tag for every keyword not already in the store. All staged tags
// go in with one bulk insert. Duplicate detection runs per keyword against
// the live store only, so two names tokenizing to the same new keyword in
// one call can still stage it twice.
func (s *TagService) CreateTagsFromPrompt(ctx context.Context, names []string) ([]*model.Tag, error) {
	staged := make([]*model.Tag, 0)

	for _, name := range names {
		keywords := s.Search.ProcessPrompt(ctx, strings.ToLower(name))

		for _, keyword := range keywords {
			_, err := s.Tags.FindByName(ctx, keyword)
			if err == nil {
				log.Printf("Tag already exists, skipping: %s", keyword)
				continue
			}
			if !errors.Is(err, model.ErrNotFound) {
				return nil, err
			}

			staged = append(staged, &model.Tag{
				ID:   uuid.NewString(),
				Name: keyword,
			})
		}
	}

	if err := s.Tags.InsertMany(ctx, staged); err != nil {
		return nil, err
	}

	log.Printf("Created %d tags from %d names", len(staged), len(names))
	return staged, nil
}

// DeleteTag drops the tag after detaching it from every post carrying it.
func (s *TagService) DeleteTag(ctx context.Context, tagID string) error {
	tag, err := s.Tags.FindByID(ctx, tagID)
	if err != nil {
		return err
	}

	if err := s.Posts.RemoveTagFromPosts(ctx, tag.PostIDs, tag.ID); err != nil {
		return err
	}
	return s.Tags.Delete(ctx, tagID)
}
