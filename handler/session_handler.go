package handler

import (
	"github.com/gin-gonic/gin"

	"main/repository"
	"main/utils"
)

func GetActiveSessionsHandler(c *gin.Context, sessionRepo *repository.SessionRepo) {
	sessions, err := sessionRepo.GetUserActiveSessions(c.GetString("user_id"))
	if err != nil {
		utils.InternalError(c, "Failed to fetch sessions")
		return
	}

	utils.Success(c, gin.H{
		"sessions": sessions,
	})
}

func EndSessionHandler(c *gin.Context, sessionRepo *repository.SessionRepo) {
	sessionID := c.Param("id")

	session, err := sessionRepo.GetSession(sessionID)
	if err != nil {
		utils.InternalError(c, "Failed to fetch session")
		return
	}
	if session == nil || session.UserID != c.GetString("user_id") {
		utils.NotFound(c, "Session not found")
		return
	}

	if err := sessionRepo.DeleteSession(sessionID); err != nil {
		utils.InternalError(c, "Failed to end session")
		return
	}

	utils.Success(c, gin.H{"message": "Session ended"})
}

func LogoutAllSessionsHandler(c *gin.Context, sessionRepo *repository.SessionRepo) {
	if err := sessionRepo.EndAllUserSessions(c.GetString("user_id")); err != nil {
		utils.InternalError(c, "Failed to end all sessions")
		return
	}

	c.SetCookie("session_id", "", -1, "/", "", true, true)

	utils.Success(c, gin.H{
		"message": "Successfully logged out of all sessions",
	})
}
