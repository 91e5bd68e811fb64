package dto

// CreateListRequest: payload to create a reading list
type CreateListRequest struct {
	Name        string `json:"name" binding:"required,max=140"`
	Description string `json:"description"`
	Visibility  string `json:"visibility" binding:"required"`
}

// UpdateListRequest: partial update; nil fields are left alone
type UpdateListRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Visibility  *string `json:"visibility,omitempty"`
}

type AddBookToListRequest struct {
	BookID   int64  `json:"bookId" binding:"required"`
	Position *int   `json:"position,omitempty"`
	Note     string `json:"note,omitempty"`
}

// ListResponse: a reading list with its books and aggregate counts
type ListResponse struct {
	ID          int64            `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Visibility  string           `json:"visibility"`
	UserID      int64            `json:"userId"`
	Username    string           `json:"username"`
	CreatedAt   string           `json:"createdAt"`
	UpdatedAt   string           `json:"updatedAt"`
	BookCount   int64            `json:"bookCount"`
	LikeCount   int64            `json:"likeCount"`
	Books       []BookInListItem `json:"books"`
}

type BookInListItem struct {
	BookID   int64    `json:"bookId"`
	Title    string   `json:"title"`
	CoverURL string   `json:"coverUrl"`
	Authors  []string `json:"authors"`
	Position int      `json:"position"`
	Note     string   `json:"note"`
	AddedAt  string   `json:"addedAt"`
}
