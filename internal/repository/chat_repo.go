package repository

import (
	"context"

	"github.com/YunalDC/VitaRogueBack/internal/models"
	"github.com/jackc/pgx/v5"
)

type ChatRepository struct {
	db DBTX
}

func NewChatRepository(db DBTX) *ChatRepository {
	return &ChatRepository{db: db}
}

// CanonicalPair orders two user ids so that every unordered pair maps to the
// same (user_a_id, user_b_id) key.
func CanonicalPair(first, second int64) (int64, int64) {
	if first < second {
		return first, second
	}
	return second, first
}

const chatColumns = `id, user_a_id, user_b_id, participant_details, last_message, unread_counts, created_at, updated_at`

func scanChat(row pgx.Row, chat *models.Chat) error {
	return row.Scan(
		&chat.ID,
		&chat.UserAID,
		&chat.UserBID,
		&chat.ParticipantDetails,
		&chat.LastMessage,
		&chat.UnreadCounts,
		&chat.CreatedAt,
		&chat.UpdatedAt,
	)
}

func (r *ChatRepository) GetByPair(ctx context.Context, first, second int64) (*models.Chat, error) {
	userA, userB := CanonicalPair(first, second)
	query := `
		SELECT ` + chatColumns + `
		FROM chats
		WHERE user_a_id = $1 AND user_b_id = $2
	`

	var chat models.Chat
	if err := scanChat(r.db.QueryRow(ctx, query, userA, userB), &chat); err != nil {
		return nil, err
	}
	return &chat, nil
}

type CreateChatInput struct {
	FirstUserID        int64
	SecondUserID       int64
	ParticipantDetails map[string]models.ParticipantSnapshot
	LastMessage        models.LastMessage
	UnreadCounts       map[string]int
}

// Upsert creates the chat for the canonical pair, or returns the existing
// row untouched when a concurrent caller created it first. The conflict
// clause makes find-or-create atomic at the store.
func (r *ChatRepository) Upsert(ctx context.Context, input CreateChatInput) (*models.Chat, error) {
	userA, userB := CanonicalPair(input.FirstUserID, input.SecondUserID)
	query := `
		INSERT INTO chats (user_a_id, user_b_id, participant_details, last_message, unread_counts)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_a_id, user_b_id)
		DO UPDATE SET updated_at = chats.updated_at
		RETURNING ` + chatColumns

	var chat models.Chat
	err := scanChat(r.db.QueryRow(ctx, query,
		userA,
		userB,
		input.ParticipantDetails,
		input.LastMessage,
		input.UnreadCounts,
	), &chat)
	if err != nil {
		return nil, err
	}
	return &chat, nil
}

func (r *ChatRepository) GetByIDForParticipant(ctx context.Context, chatID, participantID int64) (*models.Chat, error) {
	query := `
		SELECT ` + chatColumns + `
		FROM chats
		WHERE id = $1 AND (user_a_id = $2 OR user_b_id = $2)
	`

	var chat models.Chat
	if err := scanChat(r.db.QueryRow(ctx, query, chatID, participantID), &chat); err != nil {
		return nil, err
	}
	return &chat, nil
}

func (r *ChatRepository) ListForParticipant(ctx context.Context, participantID int64) ([]models.Chat, error) {
	query := `
		SELECT ` + chatColumns + `
		FROM chats
		WHERE user_a_id = $1 OR user_b_id = $1
		ORDER BY updated_at DESC, id DESC
	`

	rows, err := r.db.Query(ctx, query, participantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	chats := make([]models.Chat, 0)
	for rows.Next() {
		var chat models.Chat
		if err := scanChat(rows, &chat); err != nil {
			return nil, err
		}
		chats = append(chats, chat)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return chats, nil
}

// SetLastMessage denormalizes the newest message onto the chat record and
// bumps the recipient's unread counter.
func (r *ChatRepository) SetLastMessage(ctx context.Context, chatID int64, last models.LastMessage, recipientID int64) error {
	recipientKey := models.ParticipantKey(recipientID)
	_, err := r.db.Exec(ctx, `
		UPDATE chats
		SET last_message = $2,
			unread_counts = jsonb_set(
				unread_counts,
				ARRAY[$3],
				to_jsonb(COALESCE((unread_counts->>$3)::int, 0) + 1)
			),
			updated_at = NOW()
		WHERE id = $1
	`, chatID, last, recipientKey)
	return err
}

// ZeroUnread resets the reader's unread counter after messages are read.
func (r *ChatRepository) ZeroUnread(ctx context.Context, chatID, readerID int64) error {
	readerKey := models.ParticipantKey(readerID)
	_, err := r.db.Exec(ctx, `
		UPDATE chats
		SET unread_counts = jsonb_set(unread_counts, ARRAY[$2], to_jsonb(0))
		WHERE id = $1
	`, chatID, readerKey)
	return err
}
