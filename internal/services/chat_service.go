package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/YunalDC/VitaRogueBack/internal/models"
	"github.com/YunalDC/VitaRogueBack/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type chatStore interface {
	GetByPair(ctx context.Context, first, second int64) (*models.Chat, error)
	Upsert(ctx context.Context, input repository.CreateChatInput) (*models.Chat, error)
	GetByIDForParticipant(ctx context.Context, chatID, participantID int64) (*models.Chat, error)
	ListForParticipant(ctx context.Context, participantID int64) ([]models.Chat, error)
}

type participantReader interface {
	GetParticipants(ctx context.Context, ids []int64) ([]models.ParticipantSnapshot, error)
}

type ChatService struct {
	db          *pgxpool.Pool
	chatRepo    chatStore
	messageRepo *repository.MessageRepository
	userRepo    participantReader
}

func NewChatService(
	db *pgxpool.Pool,
	chatRepo chatStore,
	messageRepo *repository.MessageRepository,
	userRepo participantReader,
) *ChatService {
	return &ChatService{
		db:          db,
		chatRepo:    chatRepo,
		messageRepo: messageRepo,
		userRepo:    userRepo,
	}
}

// ProvisionedChat is what the UI needs to open a conversation screen: the
// chat id plus the stored snapshot of the other participant.
type ProvisionedChat struct {
	ChatID    int64                      `json:"chat_id"`
	OtherUser models.ParticipantSnapshot `json:"other_user"`
}

type ChatDelivery struct {
	Chat        *models.Chat
	Message     *models.ChatMessage
	RecipientID int64
}

// GetOrCreateChat returns the unique chat between the two users, creating it
// on first use. Calls with the arguments in either order resolve to the same
// chat. A missing profile on either side fails with ErrUserNotFound and
// leaves no chat behind.
func (s *ChatService) GetOrCreateChat(ctx context.Context, currentUserID, otherUserID int64) (*ProvisionedChat, error) {
	if currentUserID <= 0 || otherUserID <= 0 || currentUserID == otherUserID {
		return nil, ErrInvalidInput
	}

	chat, err := s.chatRepo.GetByPair(ctx, currentUserID, otherUserID)
	if err == nil {
		return provisionedFrom(chat, otherUserID), nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	participants, err := s.userRepo.GetParticipants(ctx, []int64{currentUserID, otherUserID})
	if err != nil {
		return nil, err
	}

	details := make(map[string]models.ParticipantSnapshot, 2)
	for _, participant := range participants {
		details[models.ParticipantKey(participant.ID)] = snapshotWithDefaults(participant)
	}
	currentKey := models.ParticipantKey(currentUserID)
	otherKey := models.ParticipantKey(otherUserID)
	if _, ok := details[currentKey]; !ok {
		return nil, ErrUserNotFound
	}
	if _, ok := details[otherKey]; !ok {
		return nil, ErrUserNotFound
	}

	chat, err = s.chatRepo.Upsert(ctx, repository.CreateChatInput{
		FirstUserID:        currentUserID,
		SecondUserID:       otherUserID,
		ParticipantDetails: details,
		LastMessage:        models.LastMessage{Timestamp: time.Now().UTC()},
		UnreadCounts: map[string]int{
			currentKey: 0,
			otherKey:   0,
		},
	})
	if err != nil {
		return nil, err
	}

	return provisionedFrom(chat, otherUserID), nil
}

func (s *ChatService) ListChats(ctx context.Context, actorID int64) ([]models.ChatSummary, error) {
	if actorID <= 0 {
		return nil, ErrInvalidInput
	}

	chats, err := s.chatRepo.ListForParticipant(ctx, actorID)
	if err != nil {
		return nil, err
	}

	actorKey := models.ParticipantKey(actorID)
	summaries := make([]models.ChatSummary, 0, len(chats))
	for _, chat := range chats {
		otherKey := models.ParticipantKey(chat.OtherParticipant(actorID))
		summaries = append(summaries, models.ChatSummary{
			Chat:        chat,
			OtherUser:   snapshotWithDefaults(chat.ParticipantDetails[otherKey]),
			UnreadCount: chat.UnreadCounts[actorKey],
		})
	}

	return summaries, nil
}

func (s *ChatService) ListMessages(
	ctx context.Context,
	actorID int64,
	chatID int64,
	page int,
	limit int,
) ([]models.ChatMessage, int, error) {
	if chatID <= 0 || page <= 0 || limit <= 0 {
		return nil, 0, ErrInvalidInput
	}

	if _, err := s.chatRepo.GetByIDForParticipant(ctx, chatID, actorID); err != nil {
		return nil, 0, err
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, 0, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	txMessageRepo := repository.NewMessageRepository(tx)
	txChatRepo := repository.NewChatRepository(tx)

	messages, total, err := txMessageRepo.ListByChat(ctx, chatID, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, err
	}

	if err := txMessageRepo.MarkChatRead(ctx, chatID, actorID); err != nil {
		return nil, 0, err
	}
	if err := txChatRepo.ZeroUnread(ctx, chatID, actorID); err != nil {
		return nil, 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, 0, err
	}

	for i := range messages {
		if messages[i].SenderID != actorID {
			messages[i].IsRead = true
		}
	}

	return messages, total, nil
}

func (s *ChatService) SendMessage(
	ctx context.Context,
	actorID int64,
	chatID int64,
	content string,
) (*ChatDelivery, error) {
	if chatID <= 0 {
		return nil, ErrInvalidInput
	}
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return nil, ErrInvalidInput
	}

	chat, err := s.chatRepo.GetByIDForParticipant(ctx, chatID, actorID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrForbidden
		}
		return nil, err
	}
	recipientID := chat.OtherParticipant(actorID)

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	txMessageRepo := repository.NewMessageRepository(tx)
	txChatRepo := repository.NewChatRepository(tx)

	message, err := txMessageRepo.Create(ctx, chatID, actorID, trimmed)
	if err != nil {
		return nil, err
	}

	last := models.LastMessage{
		Text:      message.Content,
		SenderID:  message.SenderID,
		Timestamp: message.CreatedAt,
	}
	if err := txChatRepo.SetLastMessage(ctx, chatID, last, recipientID); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return &ChatDelivery{
		Chat:        chat,
		Message:     message,
		RecipientID: recipientID,
	}, nil
}

func provisionedFrom(chat *models.Chat, otherUserID int64) *ProvisionedChat {
	other := snapshotWithDefaults(chat.ParticipantDetails[models.ParticipantKey(otherUserID)])
	if other.ID == 0 {
		other.ID = otherUserID
	}
	return &ProvisionedChat{
		ChatID:    chat.ID,
		OtherUser: other,
	}
}

func snapshotWithDefaults(snapshot models.ParticipantSnapshot) models.ParticipantSnapshot {
	if snapshot.Name == "" {
		snapshot.Name = "User"
	}
	if snapshot.Role == "" {
		snapshot.Role = "user"
	}
	return snapshot
}

func FormatChatTimestamp(ts time.Time) string {
	return ts.UTC().Format(time.RFC3339)
}
