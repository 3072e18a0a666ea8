package model

import "time"

// UserStats is the aggregate view served by the account stats endpoint.
type UserStats struct {
	PostStats struct {
		Total     int            `json:"total"`
		TagCounts map[string]int `json:"tag_counts,omitempty"`
	} `json:"post_stats"`
	FolderStats struct {
		Total int `json:"total"`
	} `json:"folder_stats"`
	ActivityStats struct {
		AccountCreated time.Time `json:"account_created"`
		LastActive     time.Time `json:"last_active,omitempty"`
		TotalSessions  int       `json:"total_sessions"`
	} `json:"activity_stats"`
}
