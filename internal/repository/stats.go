package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/othello-backend/internal/entity"
)

var ErrStatsNotFound = errors.New("search stats not found")

type StatsRepository interface {
	Save(ctx context.Context, record *entity.SearchRecord) error
	ListByGameID(ctx context.Context, gameID string) ([]*entity.SearchRecord, error)
	DeleteByGameID(ctx context.Context, gameID string) error
}

type dbStats struct {
	client *redis.Client
	limit  int64
}

// NewStatsRepository - keeps at most limit newest records per game.
func NewStatsRepository(client *redis.Client, limit int64) StatsRepository {
	return &dbStats{
		client: client,
		limit:  limit,
	}
}

func statsKey(gameID string) string {
	return "stats:" + gameID
}

func (that *dbStats) Save(ctx context.Context, record *entity.SearchRecord) error {
	recordJSON, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("could not marshal search record: %w", err)
	}

	key := statsKey(record.GameID)

	pipe := that.client.TxPipeline()
	pipe.RPush(ctx, key, recordJSON)
	if that.limit > 0 {
		pipe.LTrim(ctx, key, -that.limit, -1)
	}

	if _, err = pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save search record: %w", err)
	}

	return nil
}

func (that *dbStats) ListByGameID(ctx context.Context, gameID string) ([]*entity.SearchRecord, error) {
	response, err := that.client.LRange(ctx, statsKey(gameID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get search records: %w", err)
	}

	if len(response) == 0 {
		return nil, ErrStatsNotFound
	}

	records := make([]*entity.SearchRecord, 0, len(response))
	for _, item := range response {
		var record entity.SearchRecord
		if err = json.Unmarshal([]byte(item), &record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal search record: %w", err)
		}

		records = append(records, &record)
	}

	return records, nil
}

func (that *dbStats) DeleteByGameID(ctx context.Context, gameID string) error {
	deleted, err := that.client.Del(ctx, statsKey(gameID)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete search records: %w", err)
	}

	if deleted == 0 {
		return ErrStatsNotFound
	}

	return nil
}
