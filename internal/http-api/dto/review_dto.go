package dto

type CreateReviewRequest struct {
	BookID int64  `json:"bookId" binding:"required"`
	Rating int    `json:"rating" binding:"required,min=1,max=5"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

// UpdateReviewRequest: partial update; nil fields are left alone
type UpdateReviewRequest struct {
	Rating *int    `json:"rating,omitempty"`
	Title  *string `json:"title,omitempty"`
	Body   *string `json:"body,omitempty"`
}

type ReviewResponse struct {
	ID         int64  `json:"id"`
	BookID     int64  `json:"bookId"`
	BookTitle  string `json:"bookTitle"`
	BookCover  string `json:"bookCover"`
	UserID     int64  `json:"userId"`
	Username   string `json:"username"`
	UserAvatar string `json:"userAvatar"`
	Rating     int    `json:"rating"`
	Title      string `json:"title"`
	Body       string `json:"body"`
	CreatedAt  string `json:"createdAt"`
	UpdatedAt  string `json:"updatedAt"`
	Likes      int64  `json:"likes"`
	Comments   int64  `json:"comments"`
}

// BookReviewsResponse: all active reviews of one book plus aggregates
type BookReviewsResponse struct {
	BookID        int64            `json:"bookId"`
	BookTitle     string           `json:"bookTitle"`
	AverageRating float64          `json:"averageRating"`
	TotalReviews  int              `json:"totalReviews"`
	Reviews       []ReviewResponse `json:"reviews"`
}

type AddCommentRequest struct {
	Body string `json:"body" binding:"required"`
}

type CommentResponse struct {
	ID         int64  `json:"id"`
	ReviewID   int64  `json:"reviewId"`
	UserID     int64  `json:"userId"`
	Username   string `json:"username"`
	UserAvatar string `json:"userAvatar"`
	Body       string `json:"body"`
	CreatedAt  string `json:"createdAt"`
}
