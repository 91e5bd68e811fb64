package dto

// BookResponse: catalog entry annotated with the caller's reading status
type BookResponse struct {
	ID     int64   `json:"id"`
	Title  string  `json:"title"`
	Author string  `json:"author"`
	Rating float64 `json:"rating"`
	Cover  string  `json:"cover"`
	Status *string `json:"status"`
}

// ReadingStatusRequest: upsert of the caller's status for one book
type ReadingStatusRequest struct {
	BookID   int64  `json:"bookId" binding:"required"`
	Status   string `json:"status" binding:"required"`
	Progress *int   `json:"progress,omitempty"`
}

type FavoriteBookRequest struct {
	BookID int64 `json:"bookId" binding:"required"`
}
