package models

// Statistics is a read-only snapshot assembled from Article and
// Assignment counts. It is not backed by a table.
type Statistics struct {
	TotalArticles          int64   `json:"total_articles"`
	PendingArticles        int64   `json:"pending_articles"`
	CompletedArticles      int64   `json:"completed_articles"`
	ActiveEditors          int64   `json:"active_editors"`
	AverageProcessingHours float64 `json:"average_processing_time_hours"`
}
