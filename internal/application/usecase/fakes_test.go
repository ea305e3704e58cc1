package usecase

import (
	"context"

	"github.com/google/uuid"

	"courseadmin/internal/domain"
)

// In-memory repositories mirroring the Postgres contracts.

type fakeUserRepo struct {
	users map[uuid.UUID]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uuid.UUID]*domain.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return domain.ErrEmailExists
		}
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) UpdatePassword(_ context.Context, id uuid.UUID, digest string) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Password = digest
	return nil
}

func (r *fakeUserRepo) UpdateEmail(_ context.Context, id uuid.UUID, email string) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Email = email
	return nil
}

func (r *fakeUserRepo) EmailTaken(_ context.Context, email string, selfID uuid.UUID) (bool, error) {
	for _, u := range r.users {
		if u.Email == email && u.ID != selfID {
			return true, nil
		}
	}
	return false, nil
}

type fakeCourseRepo struct {
	courses      map[uuid.UUID]*domain.Course
	replaceCalls int
}

func newFakeCourseRepo() *fakeCourseRepo {
	return &fakeCourseRepo{courses: map[uuid.UUID]*domain.Course{}}
}

func (r *fakeCourseRepo) GetByID(_ context.Context, id uuid.UUID, _ bool) (*domain.Course, error) {
	c, ok := r.courses[id]
	if !ok {
		return nil, domain.ErrCourseNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCourseRepo) List(_ context.Context, _ bool) ([]domain.Course, error) {
	list := make([]domain.Course, 0, len(r.courses))
	for _, c := range r.courses {
		list = append(list, *c)
	}
	return list, nil
}

func (r *fakeCourseRepo) Create(_ context.Context, course *domain.Course) error {
	course.ID = uuid.New()
	assignIdentities(course)
	cp := *course
	r.courses[course.ID] = &cp
	return nil
}

func (r *fakeCourseRepo) Replace(_ context.Context, id uuid.UUID, in domain.CourseInput, sections []domain.Section) (*domain.Course, error) {
	r.replaceCalls++
	c, ok := r.courses[id]
	if !ok {
		return nil, domain.ErrCourseNotFound
	}
	c.Title = in.Title
	c.Description = in.Description
	c.ImageURL = in.ImageURL
	c.Sections = sections
	assignIdentities(c)
	cp := *c
	return &cp, nil
}

func (r *fakeCourseRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.courses[id]; !ok {
		return domain.ErrCourseNotFound
	}
	delete(r.courses, id)
	return nil
}

// assignIdentities mimics the server handing fresh ids to recreated rows.
func assignIdentities(c *domain.Course) {
	for i := range c.Sections {
		c.Sections[i].ID = uuid.New()
		c.Sections[i].CourseID = c.ID
		for j := range c.Sections[i].Videos {
			c.Sections[i].Videos[j].ID = uuid.New()
			c.Sections[i].Videos[j].SectionID = c.Sections[i].ID
		}
	}
}

type grantKey struct {
	courseID uuid.UUID
	email    string
}

type fakeGrantRepo struct {
	grants map[grantKey]*domain.StudentCourse
}

func newFakeGrantRepo() *fakeGrantRepo {
	return &fakeGrantRepo{grants: map[grantKey]*domain.StudentCourse{}}
}

func (r *fakeGrantRepo) Create(_ context.Context, grant *domain.StudentCourse) error {
	key := grantKey{grant.CourseID, grant.StudentEmail}
	if _, ok := r.grants[key]; ok {
		return domain.ErrGrantExists
	}
	cp := *grant
	r.grants[key] = &cp
	return nil
}

func (r *fakeGrantRepo) Delete(_ context.Context, courseID uuid.UUID, email string) error {
	key := grantKey{courseID, email}
	if _, ok := r.grants[key]; !ok {
		return domain.ErrGrantNotFound
	}
	delete(r.grants, key)
	return nil
}

func (r *fakeGrantRepo) Update(_ context.Context, courseID uuid.UUID, email string, patch domain.GrantPatch) (*domain.StudentCourse, error) {
	key := grantKey{courseID, email}
	g, ok := r.grants[key]
	if !ok {
		return nil, domain.ErrGrantNotFound
	}
	if patch.NewEmail != nil && *patch.NewEmail != "" {
		newKey := grantKey{courseID, *patch.NewEmail}
		if _, taken := r.grants[newKey]; taken && newKey != key {
			return nil, domain.ErrGrantExists
		}
		delete(r.grants, key)
		g.StudentEmail = *patch.NewEmail
		r.grants[newKey] = g
	}
	if patch.CertificateURL != nil {
		g.CertificateURL = *patch.CertificateURL
	}
	cp := *g
	return &cp, nil
}

func (r *fakeGrantRepo) ListForCourse(_ context.Context, courseID uuid.UUID) ([]domain.StudentCourse, error) {
	list := make([]domain.StudentCourse, 0)
	for key, g := range r.grants {
		if key.courseID == courseID {
			list = append(list, *g)
		}
	}
	return list, nil
}
