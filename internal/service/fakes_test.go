package service

import (
	"context"

	"github.com/campusreg/campusreg-go/internal/model"
	"github.com/campusreg/campusreg-go/internal/repository"
)

type fakeUserStore struct {
	users  map[string]*model.User
	nextID int64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]*model.User)}
}

func (f *fakeUserStore) Create(_ context.Context, user *model.User) error {
	if _, ok := f.users[user.Email]; ok {
		return repository.ErrDuplicateEmail
	}
	f.nextID++
	user.ID = f.nextID
	cp := *user
	f.users[user.Email] = &cp
	return nil
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (*model.User, error) {
	u, ok := f.users[email]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserStore) GetByID(_ context.Context, id int64) (*model.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (f *fakeUserStore) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := f.users[email]
	return ok, nil
}

type fakeCourseStore struct {
	courses map[string]model.Course
}

func newFakeCourseStore(courses ...model.Course) *fakeCourseStore {
	f := &fakeCourseStore{courses: make(map[string]model.Course)}
	for _, c := range courses {
		f.courses[c.StringID] = c
	}
	return f
}

func (f *fakeCourseStore) List(_ context.Context) ([]model.Course, error) {
	var out []model.Course
	for _, c := range f.courses {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeCourseStore) Exists(_ context.Context, id string) (bool, error) {
	_, ok := f.courses[id]
	return ok, nil
}

type fakeEnrollmentStore struct {
	courses *fakeCourseStore
	byUser  map[int64][]string
}

func newFakeEnrollmentStore(courses *fakeCourseStore) *fakeEnrollmentStore {
	return &fakeEnrollmentStore{courses: courses, byUser: make(map[int64][]string)}
}

func (f *fakeEnrollmentStore) Add(_ context.Context, userID int64, courseID string) error {
	for _, id := range f.byUser[userID] {
		if id == courseID {
			return nil
		}
	}
	f.byUser[userID] = append(f.byUser[userID], courseID)
	return nil
}

func (f *fakeEnrollmentStore) ListCourses(_ context.Context, userID int64) ([]model.Course, error) {
	var out []model.Course
	for _, id := range f.byUser[userID] {
		if c, ok := f.courses.courses[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}
