package models

import "time"

// Follow is one edge of the user follow graph. The composite primary key
// guarantees at most one row per ordered (follower, followed) pair.
type Follow struct {
	FollowerID int64     `gorm:"primaryKey;autoIncrement:false" json:"follower_id"`
	FollowedID int64     `gorm:"primaryKey;autoIncrement:false" json:"followed_id"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`

	Follower *User `gorm:"foreignKey:FollowerID;constraint:OnDelete:CASCADE;" json:"follower,omitempty"`
	Followed *User `gorm:"foreignKey:FollowedID;constraint:OnDelete:CASCADE;" json:"followed,omitempty"`
}

func (Follow) TableName() string {
	return "follows"
}

// AuthorFollow mirrors Follow but targets the author id space.
type AuthorFollow struct {
	UserID    int64     `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	AuthorID  int64     `gorm:"primaryKey;autoIncrement:false" json:"author_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	User   *User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;" json:"user,omitempty"`
	Author *Author `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE;" json:"author,omitempty"`
}

func (AuthorFollow) TableName() string {
	return "author_follows"
}
