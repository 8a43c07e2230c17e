package store

import (
	"context"
	"fmt"

	"github.com/sagelearn/sage/ent"
	"github.com/sagelearn/sage/ent/user"
)

// userRepo implements UserRepo using the ent client.
type userRepo struct {
	client *ent.Client
}

func (r *userRepo) Create(ctx context.Context, u NewUser) (*User, error) {
	created, err := r.client.User.Create().
		SetUsername(u.Username).
		SetEmail(u.Email).
		SetName(u.Name).
		SetAvatar(u.Avatar).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return entUserToUser(created), nil
}

func (r *userRepo) Get(ctx context.Context, id string) (*User, error) {
	u, err := r.client.User.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return entUserToUser(u), nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*User, error) {
	u, err := r.client.User.Query().
		Where(user.Email(email)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return entUserToUser(u), nil
}

func entUserToUser(u *ent.User) *User {
	return &User{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		Name:        u.Name,
		Avatar:      u.Avatar,
		TotalPoints: u.TotalPoints,
		StreakDays:  u.StreakDays,
		CreatedAt:   u.CreatedAt,
	}
}
