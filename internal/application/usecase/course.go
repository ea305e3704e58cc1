package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"courseadmin/internal/domain"
)

type CourseRepository interface {
	GetByID(ctx context.Context, id uuid.UUID, includeStudents bool) (*domain.Course, error)
	List(ctx context.Context, includeStudents bool) ([]domain.Course, error)
	Create(ctx context.Context, course *domain.Course) error
	Replace(ctx context.Context, id uuid.UUID, in domain.CourseInput, sections []domain.Section) (*domain.Course, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type CourseUseCase struct {
	courses CourseRepository
}

func NewCourseUseCase(courses CourseRepository) *CourseUseCase {
	return &CourseUseCase{courses: courses}
}

// Get loads a course with its ordered sections and videos. Every section
// comes back with a non-nil videos list so editors never see an absent
// list.
func (uc *CourseUseCase) Get(ctx context.Context, id uuid.UUID, includeStudents bool) (*domain.Course, error) {
	course, err := uc.courses.GetByID(ctx, id, includeStudents)
	if err != nil {
		return nil, err
	}
	ensureVideoLists(course)
	return course, nil
}

func (uc *CourseUseCase) List(ctx context.Context, includeStudents bool) ([]domain.Course, error) {
	courses, err := uc.courses.List(ctx, includeStudents)
	if err != nil {
		return nil, err
	}
	for i := range courses {
		ensureVideoLists(&courses[i])
	}
	return courses, nil
}

// Create persists a new course. The create path keeps sections holding a
// non-empty title and at least one complete video; it does not trim,
// matching the original intake behavior.
func (uc *CourseUseCase) Create(ctx context.Context, in domain.CourseInput) (*domain.Course, error) {
	kept := domain.FilterSections(in.Sections)
	course := &domain.Course{
		Title:       in.Title,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		Sections:    buildSections(kept),
	}
	if err := uc.courses.Create(ctx, course); err != nil {
		return nil, err
	}
	ensureVideoLists(course)
	return course, nil
}

// Replace validates the submitted draft and atomically swaps the
// course's section/video subtree. Validation failures never reach the
// repository.
func (uc *CourseUseCase) Replace(ctx context.Context, id uuid.UUID, in domain.CourseInput) (*domain.Course, error) {
	valid, err := domain.NormalizeSections(in.Sections)
	if err != nil {
		return nil, err
	}

	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	in.ImageURL = strings.TrimSpace(in.ImageURL)

	course, err := uc.courses.Replace(ctx, id, in, buildSections(valid))
	if err != nil {
		return nil, err
	}
	ensureVideoLists(course)
	return course, nil
}

func (uc *CourseUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	return uc.courses.Delete(ctx, id)
}

// buildSections turns submitted inputs into entities, recording
// insertion order in the position columns.
func buildSections(inputs []domain.SectionInput) []domain.Section {
	sections := make([]domain.Section, len(inputs))
	for i, s := range inputs {
		videos := make([]domain.Video, len(s.Videos))
		for j, v := range s.Videos {
			videos[j] = domain.Video{Title: v.Title, VideoURL: v.VideoURL, Position: j}
		}
		sections[i] = domain.Section{Title: s.Title, Position: i, Videos: videos}
	}
	return sections
}

func ensureVideoLists(course *domain.Course) {
	if course.Sections == nil {
		course.Sections = []domain.Section{}
	}
	for i := range course.Sections {
		if course.Sections[i].Videos == nil {
			course.Sections[i].Videos = []domain.Video{}
		}
	}
}
