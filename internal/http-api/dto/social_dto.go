package dto

type FollowUserRequest struct {
	UserID int64 `json:"userId" binding:"required"`
}

type FollowAuthorRequest struct {
	AuthorID int64 `json:"authorId" binding:"required"`
}

// FollowResponse: confirmation of a new user follow edge
type FollowResponse struct {
	FollowerID       int64  `json:"followerId"`
	FollowerUsername string `json:"followerUsername"`
	FollowedID       int64  `json:"followedId"`
	FollowedUsername string `json:"followedUsername"`
	CreatedAt        string `json:"createdAt"`
}

// UserFollowStatsResponse: follower/following counts for a user. IsFollowing
// is nil when the viewer is the target.
type UserFollowStatsResponse struct {
	UserID         int64  `json:"userId"`
	Username       string `json:"username"`
	FollowersCount int64  `json:"followersCount"`
	FollowingCount int64  `json:"followingCount"`
	IsFollowing    *bool  `json:"isFollowing"`
}

// Feed event types
const (
	FeedItemReview = "REVIEW"
	FeedItemList   = "LIST"
)

// FeedItem: one activity event from a followed user. Exactly one of Review
// and List is set, matching Type.
type FeedItem struct {
	Type       string      `json:"type"`
	UserID     int64       `json:"userId"`
	Username   string      `json:"username"`
	UserAvatar string      `json:"userAvatar"`
	CreatedAt  string      `json:"createdAt"`
	Review     *FeedReview `json:"review"`
	List       *FeedList   `json:"list"`
}

type FeedReview struct {
	ReviewID  int64  `json:"reviewId"`
	BookID    int64  `json:"bookId"`
	BookTitle string `json:"bookTitle"`
	BookCover string `json:"bookCover"`
	Rating    int    `json:"rating"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	Likes     int64  `json:"likes"`
	Comments  int64  `json:"comments"`
}

type FeedList struct {
	ListID      int64  `json:"listId"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Visibility  string `json:"visibility"`
	BookCount   int64  `json:"bookCount"`
	Likes       int64  `json:"likes"`
}

// FeedResponse: one page of the merged feed. Total counts the whole merged
// set before pagination.
type FeedResponse struct {
	Items   []FeedItem `json:"items"`
	Total   int        `json:"total"`
	Limit   int        `json:"limit"`
	Offset  int        `json:"offset"`
	HasMore bool       `json:"hasMore"`
}

// ActivityStats: aggregate counters for one user's activity
type ActivityStats struct {
	TotalReviews   int64   `json:"totalReviews"`
	TotalReadLists int     `json:"totalReadLists"`
	BooksRead      int64   `json:"booksRead"`
	BooksReading   int64   `json:"booksReading"`
	BooksToRead    int64   `json:"booksToRead"`
	AverageRating  float64 `json:"averageRating"`
}

type ActivityResponse struct {
	Stats         ActivityStats    `json:"stats"`
	RecentReviews []ReviewResponse `json:"recentReviews"`
	ReadLists     []ListResponse   `json:"readLists"`
}
