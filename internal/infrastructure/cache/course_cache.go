package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"courseadmin/internal/domain"
)

const (
	detailTTL = 1 * time.Hour
	listTTL   = 10 * time.Minute

	listKey = "courses:list"
)

// CourseCache keeps course reads off Postgres. Misses and marshal
// failures fall through silently; the cache is never authoritative.
type CourseCache struct {
	client *redis.Client
}

func NewCourseCache(client *redis.Client) *CourseCache {
	return &CourseCache{client: client}
}

func detailKey(id string) string {
	return "course:detail:" + id
}

func (c *CourseCache) GetCourse(ctx context.Context, id string) (*domain.Course, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	val, err := c.client.Get(ctx, detailKey(id)).Result()
	if err != nil {
		return nil, false
	}
	var course domain.Course
	if err := json.Unmarshal([]byte(val), &course); err != nil {
		return nil, false
	}
	return &course, true
}

func (c *CourseCache) SetCourse(ctx context.Context, course *domain.Course) {
	if c == nil || c.client == nil {
		return
	}
	if data, err := json.Marshal(course); err == nil {
		c.client.Set(ctx, detailKey(course.ID.String()), data, detailTTL)
	}
}

func (c *CourseCache) GetList(ctx context.Context) ([]domain.Course, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	val, err := c.client.Get(ctx, listKey).Result()
	if err != nil {
		return nil, false
	}
	var courses []domain.Course
	if err := json.Unmarshal([]byte(val), &courses); err != nil {
		return nil, false
	}
	return courses, true
}

func (c *CourseCache) SetList(ctx context.Context, courses []domain.Course) {
	if c == nil || c.client == nil {
		return
	}
	if data, err := json.Marshal(courses); err == nil {
		c.client.Set(ctx, listKey, data, listTTL)
	}
}

func (c *CourseCache) InvalidateCourse(ctx context.Context, id string) {
	if c == nil || c.client == nil {
		return
	}
	c.client.Del(ctx, detailKey(id), listKey)
}

func (c *CourseCache) InvalidateList(ctx context.Context) {
	if c == nil || c.client == nil {
		return
	}
	c.client.Del(ctx, listKey)
}
