// api/util/cache_service.go

package util

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dev-mohitbeniwal/folio/api/db"
	"github.com/dev-mohitbeniwal/folio/api/model"
)

// CacheService is the entity-level cache sitting next to the page cache:
// single documents cached by id, invalidated on writes. Best effort like
// everything else that touches Redis.
type CacheService struct {
	cache *db.RedisCache
	ttl   time.Duration
}

func NewCacheService(cache *db.RedisCache, ttl time.Duration) *CacheService {
	return &CacheService{cache: cache, ttl: ttl}
}

func (c *CacheService) GetProject(ctx context.Context, projectID string) (*model.Project, error) {
	var project model.Project
	found, err := c.get(ctx, fmt.Sprintf("project:%s", projectID), &project)
	if err != nil || !found {
		return nil, err
	}
	return &project, nil
}

func (c *CacheService) SetProject(ctx context.Context, project model.Project) error {
	return c.set(ctx, fmt.Sprintf("project:%s", project.ID), project)
}

func (c *CacheService) DeleteProject(ctx context.Context, projectID string) error {
	return c.delete(ctx, fmt.Sprintf("project:%s", projectID))
}

func (c *CacheService) GetSkill(ctx context.Context, skillID string) (*model.Skill, error) {
	var skill model.Skill
	found, err := c.get(ctx, fmt.Sprintf("skill:%s", skillID), &skill)
	if err != nil || !found {
		return nil, err
	}
	return &skill, nil
}

func (c *CacheService) SetSkill(ctx context.Context, skill model.Skill) error {
	return c.set(ctx, fmt.Sprintf("skill:%s", skill.ID), skill)
}

func (c *CacheService) DeleteSkill(ctx context.Context, skillID string) error {
	return c.delete(ctx, fmt.Sprintf("skill:%s", skillID))
}

func (c *CacheService) get(ctx context.Context, key string, out interface{}) (bool, error) {
	if !c.cache.Available() {
		return false, nil
	}
	val, err := c.cache.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if val == "" {
		return false, nil
	}
	if err := json.Unmarshal([]byte(val), out); err != nil {
		return false, fmt.Errorf("failed to unmarshal cached value for %s: %w", key, err)
	}
	return true, nil
}

func (c *CacheService) set(ctx context.Context, key string, value interface{}) error {
	if !c.cache.Available() {
		return nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value for %s: %w", key, err)
	}
	return c.cache.Set(ctx, key, string(data), c.ttl)
}

func (c *CacheService) delete(ctx context.Context, key string) error {
	if !c.cache.Available() {
		return nil
	}
	return c.cache.Delete(ctx, key)
}
