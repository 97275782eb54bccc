package model

import "time"

type DirectMessage struct {
	DTO
	ConversationId string `gorm:"not null;index" json:"conversationId"`
	SenderId       string `gorm:"not null;index" json:"senderId"`
	SenderName     string `gorm:"not null" json:"senderName"`
	ReceiverId     string `gorm:"not null;index" json:"receiverId"`
	ReceiverName   string `gorm:"not null" json:"receiverName"`
	Content        string `gorm:"type:text;not null" json:"content"`
	IsFromCaptain  bool   `gorm:"not null;default:false" json:"isFromCaptain"`
	IsRead         bool   `gorm:"not null;default:false" json:"isRead"`
}

type DirectMessages []DirectMessage

// Conversation is keyed by the sorted participant ids joined with "-".
type Conversation struct {
	ID               string     `gorm:"primaryKey" json:"id"`
	ParticipantIds   []string   `gorm:"type:jsonb;serializer:json" json:"participantIds"`
	ParticipantNames []string   `gorm:"type:jsonb;serializer:json" json:"participantNames"`
	LastMessage      *string    `json:"lastMessage"`
	LastMessageAt    *time.Time `gorm:"index" json:"lastMessageAt"`
	UnreadCount      int        `gorm:"not null;default:0" json:"unreadCount"`
	CreatedAt        time.Time  `json:"createdAt"`
}

type SendMessageInput struct {
	ReceiverId   string `json:"receiverId" validate:"required"`
	ReceiverName string `json:"receiverName" validate:"required"`
	Content      string `json:"content" validate:"required,max=5000"`
}

type CaptainInfo struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Avatar    string `json:"avatar"`
	IsCaptain bool   `json:"is_captain"`
}
