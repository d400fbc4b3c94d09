// Package membership answers which events a viewer has joined. Only set
// membership is modelled; how a viewer comes to join an event lives elsewhere.
package membership

import (
	"context"
	"fmt"

	"devhub/models"

	"github.com/redis/go-redis/v9"
)

type JoinedSet interface {
	Contains(eventID string) bool
}

// Set is an in-memory JoinedSet.
type Set map[string]struct{}

func NewSet(ids ...string) Set {
	s := make(Set, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func (s Set) Contains(eventID string) bool {
	_, ok := s[eventID]
	return ok
}

// Source resolves the joined set for a viewer.
type Source interface {
	JoinedFor(ctx context.Context, viewer *models.Viewer) (JoinedSet, error)
}

// Placeholder returns the same fixed set for every viewer.
type Placeholder struct {
	IDs Set
}

// DefaultPlaceholder mirrors the sample RSVPs shipped with the seed data.
func DefaultPlaceholder() Placeholder {
	return Placeholder{IDs: NewSet("1", "4")}
}

func (p Placeholder) JoinedFor(_ context.Context, _ *models.Viewer) (JoinedSet, error) {
	return p.IDs, nil
}

// RedisSource reads joined event IDs from the set stored at joined:<userid>.
type RedisSource struct {
	Client redis.Cmdable
}

func JoinedKey(userID string) string {
	return "joined:" + userID
}

func (s RedisSource) JoinedFor(ctx context.Context, viewer *models.Viewer) (JoinedSet, error) {
	if viewer == nil || viewer.ID == "" {
		return Set{}, nil
	}
	ids, err := s.Client.SMembers(ctx, JoinedKey(viewer.ID)).Result()
	if err != nil {
		return nil, fmt.Errorf("load joined events for %s: %w", viewer.ID, err)
	}
	return NewSet(ids...), nil
}
