package dto

// FolderRequest is the body for creating or updating a folder. PostIDs is
// the desired post set; on update the current set is reconciled against it.
type FolderRequest struct {
	Title       string   `json:"title" binding:"required,max=200"`
	Description string   `json:"description"`
	PostIDs     []string `json:"post_ids"`
}
