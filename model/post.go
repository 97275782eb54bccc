package model

type Post struct {
	DTO
	AuthorId     string        `gorm:"not null;index" json:"authorId"`
	AuthorName   string        `gorm:"not null" json:"authorName"`
	AuthorAvatar *string       `json:"authorAvatar"`
	Title        string        `gorm:"not null" json:"title"`
	Content      string        `gorm:"type:text;not null" json:"content"`
	ImageUrl     *string       `json:"imageUrl"`
	Category     string        `gorm:"not null;default:general;index" json:"category"`
	LikesCount   int           `gorm:"not null;default:0" json:"likesCount"`
	Likes        []PostLike    `gorm:"foreignKey:PostId;constraint:OnDelete:CASCADE" json:"likes"`
	Comments     []PostComment `gorm:"foreignKey:PostId;constraint:OnDelete:CASCADE" json:"comments"`
}

type Posts []Post

type PostLike struct {
	PostId   uint   `gorm:"primaryKey" json:"postId"`
	MemberId string `gorm:"primaryKey" json:"memberId"`
}

type PostComment struct {
	DTO
	PostId     uint   `gorm:"not null;index" json:"postId"`
	AuthorId   string `gorm:"not null" json:"authorId"`
	AuthorName string `gorm:"not null" json:"authorName"`
	Content    string `gorm:"type:text;not null" json:"content"`
}

type CreatePostInput struct {
	Title    string  `json:"title" validate:"required,max=200"`
	Content  string  `json:"content" validate:"required,max=10000"`
	ImageUrl *string `json:"imageUrl" validate:"omitempty,url"`
	Category string  `json:"category" validate:"omitempty,oneof=general trip_report tips meetup"`
}

type CreateCommentInput struct {
	Content string `json:"content" validate:"required,max=2000"`
}

type FilterPost struct {
	Category string `query:"category" validate:"omitempty,oneof=general trip_report tips meetup"`
	Limit    int    `query:"limit" validate:"omitempty,gte=1,lte=100"`
}

type LikeResult struct {
	LikesCount int  `json:"likes_count"`
	Liked      bool `json:"liked"`
}
