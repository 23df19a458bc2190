package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"fittrack/internal/models"

	"github.com/redis/go-redis/v9"
)

// Tracking sessions are transient: a session that receives no points for
// this long is expired by Redis.
const routeTTL = 24 * time.Hour

// RouteStore holds live route-tracking sessions.
type RouteStore interface {
	AppendPoint(ctx context.Context, sessionID string, point models.RoutePoint) (int64, error)
	Points(ctx context.Context, sessionID string) ([]models.RoutePoint, error)
	Clear(ctx context.Context, sessionID string) error
	Close() error
}

type redisRouteStore struct {
	client *redis.Client
}

func NewRedisRouteStore() (RouteStore, error) {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379/0"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opt)
	if _, err := client.Ping(context.Background()).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRouteStore{client: client}, nil
}

func (s *redisRouteStore) Close() error {
	return s.client.Close()
}

func routeKey(sessionID string) string {
	return fmt.Sprintf("route:%s", sessionID)
}

// AppendPoint pushes the point onto the session list and returns the new
// point count. The TTL is refreshed on every write.
func (s *redisRouteStore) AppendPoint(ctx context.Context, sessionID string, point models.RoutePoint) (int64, error) {
	data, err := json.Marshal(point)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal route point: %w", err)
	}

	key := routeKey(sessionID)
	total, err := s.client.RPush(ctx, key, data).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to store route point: %w", err)
	}
	if err := s.client.Expire(ctx, key, routeTTL).Err(); err != nil {
		return 0, fmt.Errorf("failed to refresh route TTL: %w", err)
	}
	return total, nil
}

// Points returns the session's points in insertion order. An unknown
// session yields an empty slice, not an error.
func (s *redisRouteStore) Points(ctx context.Context, sessionID string) ([]models.RoutePoint, error) {
	raw, err := s.client.LRange(ctx, routeKey(sessionID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read route points: %w", err)
	}

	points := make([]models.RoutePoint, 0, len(raw))
	for _, item := range raw {
		var point models.RoutePoint
		if err := json.Unmarshal([]byte(item), &point); err != nil {
			return nil, fmt.Errorf("failed to decode route point: %w", err)
		}
		points = append(points, point)
	}
	return points, nil
}

func (s *redisRouteStore) Clear(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, routeKey(sessionID)).Err()
}
