package store

import (
	"context"
	"fmt"

	"github.com/sagelearn/sage/ent"
	"github.com/sagelearn/sage/ent/learnersnapshot"
)

// snapshotRepo implements SnapshotRepo using the ent client.
type snapshotRepo struct {
	client *ent.Client
}

func (r *snapshotRepo) Record(ctx context.Context, s NewSnapshot) (*SnapshotRecord, error) {
	create := r.client.LearnerSnapshot.Create().
		SetUserID(s.UserID).
		SetLevel(s.Level).
		SetConfidence(s.Confidence).
		SetAssessment(s.Assessment)
	if s.PathID != "" {
		create.SetPathID(s.PathID)
	}
	if s.LessonID != "" {
		create.SetLessonID(s.LessonID)
	}

	snap, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("record learner snapshot: %w", err)
	}
	return entSnapshotToRecord(snap), nil
}

func (r *snapshotRepo) Latest(ctx context.Context, userID, pathID string) (*SnapshotRecord, error) {
	q := r.client.LearnerSnapshot.Query().
		Where(learnersnapshot.UserID(userID))
	if pathID != "" {
		q = q.Where(learnersnapshot.PathID(pathID))
	}

	snap, err := q.Order(ent.Desc(learnersnapshot.FieldCreatedAt)).First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest snapshot: %w", err)
	}
	return entSnapshotToRecord(snap), nil
}

func (r *snapshotRepo) ListByUserPath(ctx context.Context, userID, pathID string) ([]*SnapshotRecord, error) {
	q := r.client.LearnerSnapshot.Query().
		Where(learnersnapshot.UserID(userID))
	if pathID != "" {
		q = q.Where(learnersnapshot.PathID(pathID))
	}

	snaps, err := q.Order(ent.Asc(learnersnapshot.FieldCreatedAt)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}

	out := make([]*SnapshotRecord, len(snaps))
	for i, s := range snaps {
		out[i] = entSnapshotToRecord(s)
	}
	return out, nil
}

func entSnapshotToRecord(s *ent.LearnerSnapshot) *SnapshotRecord {
	return &SnapshotRecord{
		ID:         s.ID,
		UserID:     s.UserID,
		PathID:     s.PathID,
		LessonID:   s.LessonID,
		Level:      s.Level,
		Confidence: s.Confidence,
		Assessment: s.Assessment,
		CreatedAt:  s.CreatedAt,
	}
}
