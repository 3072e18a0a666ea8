package handler

import (
	"log"

	"github.com/gin-gonic/gin"

	"main/model"
	"main/repository"
	"main/usecase"
	"main/utils"
)

type StatsHandler struct {
	userService   *usecase.UserService
	postService   *usecase.PostService
	folderService *usecase.FolderService
	tagService    *usecase.TagService
	sessionRepo   *repository.SessionRepo
}

func NewStatsHandler(
	userService *usecase.UserService,
	postService *usecase.PostService,
	folderService *usecase.FolderService,
	tagService *usecase.TagService,
	sessionRepo *repository.SessionRepo,
) *StatsHandler {
	return &StatsHandler{
		userService:   userService,
		postService:   postService,
		folderService: folderService,
		tagService:    tagService,
		sessionRepo:   sessionRepo,
	}
}

// GetUserStats aggregates the caller's posts, folders and session
// activity into one response.
func (h *StatsHandler) GetUserStats(c *gin.Context) {
	ctx := c.Request.Context()
	userID := c.GetString("user_id")

	user, err := h.userService.GetUserByID(ctx, userID)
	if err != nil {
		utils.Error(c, err)
		return
	}

	var stats model.UserStats

	posts, err := h.postService.GetPostsByPatronID(ctx, userID)
	if err != nil {
		log.Printf("Error fetching posts for stats: %v", err)
		utils.InternalError(c, "Failed to fetch posts")
		return
	}
	stats.PostStats.Total = len(posts)

	tagCounts := make(map[string]int)
	for _, post := range posts {
		tags, err := h.tagService.GetTagsByIDs(ctx, post.TagIDs)
		if err != nil {
			continue
		}
		for _, tag := range tags {
			tagCounts[tag.Name]++
		}
	}
	if len(tagCounts) > 0 {
		stats.PostStats.TagCounts = tagCounts
	}

	folders, err := h.folderService.GetFoldersByPatron(ctx, userID)
	if err != nil {
		log.Printf("Error fetching folders for stats: %v", err)
		utils.InternalError(c, "Failed to fetch folders")
		return
	}
	stats.FolderStats.Total = len(folders)

	sessions, err := h.sessionRepo.GetUserActiveSessions(userID)
	if err != nil {
		log.Printf("Error fetching sessions for stats: %v", err)
		utils.InternalError(c, "Failed to fetch sessions")
		return
	}

	stats.ActivityStats.AccountCreated = user.CreatedAt
	stats.ActivityStats.TotalSessions = len(sessions)
	for _, session := range sessions {
		if session.LastActivityAt.After(stats.ActivityStats.LastActive) {
			stats.ActivityStats.LastActive = session.LastActivityAt
		}
	}

	utils.Success(c, gin.H{
		"stats": stats,
	})
}
