package models

import (
	"strconv"
	"time"
)

// Chat is a conversation between exactly two users. The pair is stored in
// canonical order (user_a_id < user_b_id) so each unordered pair maps to a
// single row.
type Chat struct {
	ID                 int64                          `json:"id"`
	UserAID            int64                          `json:"user_a_id"`
	UserBID            int64                          `json:"user_b_id"`
	ParticipantDetails map[string]ParticipantSnapshot `json:"participant_details"`
	LastMessage        LastMessage                    `json:"last_message"`
	UnreadCounts       map[string]int                 `json:"unread_counts"`
	CreatedAt          time.Time                      `json:"created_at"`
	UpdatedAt          time.Time                      `json:"updated_at"`
}

// ParticipantSnapshot is the denormalized profile copy captured when the
// chat is created. It is not refreshed when the profile changes later.
type ParticipantSnapshot struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Role     string  `json:"role"`
	PhotoURL *string `json:"photo_url"`
}

type LastMessage struct {
	Text      string    `json:"text"`
	SenderID  int64     `json:"sender_id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type ChatMessage struct {
	ID        int64     `json:"id"`
	ChatID    int64     `json:"chat_id"`
	SenderID  int64     `json:"sender_id"`
	Content   string    `json:"content"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

type ChatSummary struct {
	Chat
	OtherUser   ParticipantSnapshot `json:"other_user"`
	UnreadCount int                 `json:"unread_count"`
}

// ParticipantKey is the JSON object key used for a participant inside
// participant_details and unread_counts.
func ParticipantKey(userID int64) string {
	return strconv.FormatInt(userID, 10)
}

// OtherParticipant returns the participant id that is not actorID.
func (c *Chat) OtherParticipant(actorID int64) int64 {
	if actorID == c.UserAID {
		return c.UserBID
	}
	return c.UserAID
}

// HasParticipant reports whether userID is one of the two chat members.
func (c *Chat) HasParticipant(userID int64) bool {
	return userID == c.UserAID || userID == c.UserBID
}
