package store

import (
	"context"
	"fmt"

	"github.com/sagelearn/sage/ent"
	"github.com/sagelearn/sage/ent/chatmessage"
)

// turnRepo implements TurnRepo using the ent client.
type turnRepo struct {
	client *ent.Client
}

func (r *turnRepo) Append(ctx context.Context, t NewTurn) (*Turn, error) {
	create := r.client.ChatMessage.Create().
		SetUserID(t.UserID).
		SetRole(t.Role).
		SetContent(t.Content)
	if t.PathID != "" {
		create.SetPathID(t.PathID)
	}
	if t.LessonID != "" {
		create.SetLessonID(t.LessonID)
	}
	if t.Context != nil {
		create.SetContext(t.Context)
	}

	m, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("append chat turn: %w", err)
	}
	return entTurnToTurn(m), nil
}

func (r *turnRepo) ListByUserPath(ctx context.Context, userID, pathID string) ([]*Turn, error) {
	q := r.client.ChatMessage.Query().
		Where(chatmessage.UserID(userID))
	if pathID != "" {
		q = q.Where(chatmessage.PathID(pathID))
	}

	msgs, err := q.Order(ent.Asc(chatmessage.FieldCreatedAt)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list chat turns: %w", err)
	}

	out := make([]*Turn, len(msgs))
	for i, m := range msgs {
		out[i] = entTurnToTurn(m)
	}
	return out, nil
}

func (r *turnRepo) CountUserTurns(ctx context.Context, userID, pathID string) (int, error) {
	q := r.client.ChatMessage.Query().
		Where(
			chatmessage.UserID(userID),
			chatmessage.Role("user"),
		)
	if pathID != "" {
		q = q.Where(chatmessage.PathID(pathID))
	}

	n, err := q.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count user turns: %w", err)
	}
	return n, nil
}

func entTurnToTurn(m *ent.ChatMessage) *Turn {
	return &Turn{
		ID:        m.ID,
		UserID:    m.UserID,
		PathID:    m.PathID,
		LessonID:  m.LessonID,
		Role:      m.Role,
		Content:   m.Content,
		Context:   m.Context,
		CreatedAt: m.CreatedAt,
	}
}
