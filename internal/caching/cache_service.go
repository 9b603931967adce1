package caching

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"wms2/internal/models"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type CacheService interface {
	// Dashboard caching
	GetDashboardSummary(ctx context.Context) (*models.DashboardSummary, error)
	SetDashboardSummary(ctx context.Context, summary *models.DashboardSummary, ttl time.Duration) error
	DeleteDashboardSummary(ctx context.Context) error

	// Location tree caching
	GetWarehouseAisles(ctx context.Context, warehouseID uuid.UUID) ([]*models.Aisle, error)
	SetWarehouseAisles(ctx context.Context, warehouseID uuid.UUID, aisles []*models.Aisle, ttl time.Duration) error
	DeleteWarehouseAisles(ctx context.Context, warehouseID uuid.UUID) error

	GetAisleBins(ctx context.Context, aisleID uuid.UUID) ([]*models.Bin, error)
	SetAisleBins(ctx context.Context, aisleID uuid.UUID, bins []*models.Bin, ttl time.Duration) error
	DeleteAisleBins(ctx context.Context, aisleID uuid.UUID) error
}

type redisCacheService struct {
	client *redis.Client
}

func NewRedisCacheService(addr, password string, db int) CacheService {
	parsedAddr := addr
	if strings.HasPrefix(addr, "redis://") || strings.HasPrefix(addr, "rediss://") {
		if hostPort := strings.TrimPrefix(strings.TrimPrefix(addr, "redis://"), "rediss://"); hostPort != addr {
			parsedAddr = hostPort
		}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     parsedAddr,
		Password: password,
		DB:       db,
	})

	if pingErr := client.Ping(context.Background()).Err(); pingErr != nil {
		log.Printf("WARN: Redis ping failed on initialization: %v (address: %s)", pingErr, parsedAddr)
	}

	return &redisCacheService{client: client}
}

const dashboardSummaryKey = "wms:dashboard:summary"

func (r *redisCacheService) GetDashboardSummary(ctx context.Context) (*models.DashboardSummary, error) {
	data, err := r.client.Get(ctx, dashboardSummaryKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // cache miss
		}
		return nil, err
	}

	var summary models.DashboardSummary
	if err := json.Unmarshal(data, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

func (r *redisCacheService) SetDashboardSummary(ctx context.Context, summary *models.DashboardSummary, ttl time.Duration) error {
	data, err := json.Marshal(summary)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, dashboardSummaryKey, data, ttl).Err()
}

func (r *redisCacheService) DeleteDashboardSummary(ctx context.Context) error {
	return r.client.Del(ctx, dashboardSummaryKey).Err()
}

func (r *redisCacheService) GetWarehouseAisles(ctx context.Context, warehouseID uuid.UUID) ([]*models.Aisle, error) {
	key := fmt.Sprintf("wms:aisles:%s", warehouseID.String())
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // cache miss
		}
		return nil, err
	}

	var aisles []*models.Aisle
	if err := json.Unmarshal(data, &aisles); err != nil {
		return nil, err
	}
	return aisles, nil
}

func (r *redisCacheService) SetWarehouseAisles(ctx context.Context, warehouseID uuid.UUID, aisles []*models.Aisle, ttl time.Duration) error {
	key := fmt.Sprintf("wms:aisles:%s", warehouseID.String())
	data, err := json.Marshal(aisles)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, key, data, ttl).Err()
}

func (r *redisCacheService) DeleteWarehouseAisles(ctx context.Context, warehouseID uuid.UUID) error {
	key := fmt.Sprintf("wms:aisles:%s", warehouseID.String())
	return r.client.Del(ctx, key).Err()
}

func (r *redisCacheService) GetAisleBins(ctx context.Context, aisleID uuid.UUID) ([]*models.Bin, error) {
	key := fmt.Sprintf("wms:bins:%s", aisleID.String())
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // cache miss
		}
		return nil, err
	}

	var bins []*models.Bin
	if err := json.Unmarshal(data, &bins); err != nil {
		return nil, err
	}
	return bins, nil
}

func (r *redisCacheService) SetAisleBins(ctx context.Context, aisleID uuid.UUID, bins []*models.Bin, ttl time.Duration) error {
	key := fmt.Sprintf("wms:bins:%s", aisleID.String())
	data, err := json.Marshal(bins)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, key, data, ttl).Err()
}

func (r *redisCacheService) DeleteAisleBins(ctx context.Context, aisleID uuid.UUID) error {
	key := fmt.Sprintf("wms:bins:%s", aisleID.String())
	return r.client.Del(ctx, key).Err()
}
