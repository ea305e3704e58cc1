package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"courseadmin/internal/domain"
	"courseadmin/internal/infrastructure/cache"
)

type CourseRepository struct {
	db    *gorm.DB
	cache *cache.CourseCache
}

func NewCourseRepository(db *gorm.DB, cache *cache.CourseCache) *CourseRepository {
	return &CourseRepository{db: db, cache: cache}
}

func (r *CourseRepository) withChildren(ctx context.Context, includeStudents bool) *gorm.DB {
	query := r.db.WithContext(ctx).
		Preload("Sections", func(db *gorm.DB) *gorm.DB {
			return db.Order("position asc")
		}).
		Preload("Sections.Videos", func(db *gorm.DB) *gorm.DB {
			return db.Order("position asc")
		})
	if includeStudents {
		query = query.Preload("Students", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at asc")
		})
	}
	return query
}

func (r *CourseRepository) GetByID(ctx context.Context, id uuid.UUID, includeStudents bool) (*domain.Course, error) {
	// Student lists change independently of course content, so only
	// content-only reads go through the cache.
	if !includeStudents {
		if course, ok := r.cache.GetCourse(ctx, id.String()); ok {
			return course, nil
		}
	}

	var course domain.Course
	err := r.withChildren(ctx, includeStudents).First(&course, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrCourseNotFound
	}
	if err != nil {
		return nil, err
	}

	if !includeStudents {
		r.cache.SetCourse(ctx, &course)
	}
	return &course, nil
}

func (r *CourseRepository) List(ctx context.Context, includeStudents bool) ([]domain.Course, error) {
	if !includeStudents {
		if courses, ok := r.cache.GetList(ctx); ok {
			return courses, nil
		}
	}

	var courses []domain.Course
	err := r.withChildren(ctx, includeStudents).
		Order("created_at desc").
		Find(&courses).Error
	if err != nil {
		return nil, err
	}

	if !includeStudents {
		r.cache.SetList(ctx, courses)
	}
	return courses, nil
}

func (r *CourseRepository) Create(ctx context.Context, course *domain.Course) error {
	if err := r.db.WithContext(ctx).Create(course).Error; err != nil {
		return err
	}
	r.cache.InvalidateList(ctx)
	return nil
}

// Replace swaps the course's whole section/video subtree for the given
// set and updates the course fields, all in one transaction. Old section
// rows are deleted (videos cascade) and the new set is recreated with
// fresh identities; a failure anywhere rolls the whole write back.
func (r *CourseRepository) Replace(ctx context.Context, id uuid.UUID, in domain.CourseInput, sections []domain.Section) (*domain.Course, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var course domain.Course
		if err := tx.First(&course, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrCourseNotFound
			}
			return err
		}

		if err := tx.Where("course_id = ?", id).Delete(&domain.Section{}).Error; err != nil {
			return err
		}

		for i := range sections {
			sections[i].CourseID = id
		}
		if len(sections) > 0 {
			if err := tx.Create(&sections).Error; err != nil {
				return err
			}
		}

		return tx.Model(&domain.Course{}).Where("id = ?", id).Updates(map[string]interface{}{
			"title":       in.Title,
			"description": in.Description,
			"image_url":   in.ImageURL,
		}).Error
	})
	if err != nil {
		return nil, err
	}

	r.cache.InvalidateCourse(ctx, id.String())

	var course domain.Course
	if err := r.withChildren(ctx, false).First(&course, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *CourseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&domain.Course{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrCourseNotFound
	}
	r.cache.InvalidateCourse(ctx, id.String())
	return nil
}
