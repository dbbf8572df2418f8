package services

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/qmexai/ramadandata/internal/app/models"
	"github.com/qmexai/ramadandata/internal/pkg/apperrors"
)

// memStudentStore is an in-memory StudentStore.
type memStudentStore struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]models.Student
}

func newMemStudentStore() *memStudentStore {
	return &memStudentStore{rows: map[int64]models.Student{}}
}

func matches(s models.Student, f models.StudentFilter) bool {
	if f.Hostel != "" && (s.Hostel == nil || *s.Hostel != f.Hostel) {
		return false
	}
	if f.Year != "" && (s.Year == nil || *s.Year != f.Year) {
		return false
	}
	if f.RollNumber != "" && !strings.Contains(strings.ToLower(s.RollNumber), strings.ToLower(f.RollNumber)) {
		return false
	}
	return true
}

func (m *memStudentStore) List(_ context.Context, f models.StudentFilter) ([]models.Student, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Student{}
	for _, s := range m.rows {
		if matches(s, f) {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (m *memStudentStore) Create(_ context.Context, s *models.Student) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	s.ID = m.nextID
	s.CreatedAt = time.Now()
	m.rows[s.ID] = *s
	return nil
}

func (m *memStudentStore) Update(_ context.Context, s *models.Student) (*models.Student, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.rows[s.ID]
	if !ok {
		return s, nil
	}
	s.CreatedAt = existing.CreatedAt
	s.CreatedBy = existing.CreatedBy
	m.rows[s.ID] = *s
	updated := *s
	return &updated, nil
}

func (m *memStudentStore) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.rows, id)
	return nil
}

func (m *memStudentStore) Stats(ctx context.Context, f models.StudentFilter) (*models.StudentStats, error) {
	rows, _ := m.List(ctx, f)
	states := map[string]bool{}
	colleges := map[string]bool{}
	for _, s := range rows {
		states[s.State] = true
		colleges[s.CollegeType] = true
	}
	return &models.StudentStats{TotalRecords: len(rows), ActiveStates: len(states), Colleges: len(colleges)}, nil
}

// memUserStore is an in-memory UserStore enforcing unique username and phone.
type memUserStore struct {
	mu     sync.Mutex
	nextID int64
	users  []models.User
}

func (m *memUserStore) GetByUsername(_ context.Context, username string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Username == username {
			found := u
			return &found, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (m *memUserStore) Count(_ context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.users)), nil
}

func (m *memUserStore) Create(_ context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Username == user.Username || u.PhoneNumber == user.PhoneNumber {
			return apperrors.ErrUserAlreadyExists
		}
	}
	m.nextID++
	user.ID = m.nextID
	user.CreatedAt = time.Now()
	m.users = append(m.users, *user)
	return nil
}

func (m *memUserStore) List(_ context.Context) ([]models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.User, 0, len(m.users))
	for i := len(m.users) - 1; i >= 0; i-- {
		u := m.users[i]
		u.Password = ""
		out = append(out, u)
	}
	return out, nil
}

func (m *memUserStore) UpdatePassword(_ context.Context, id int64, hashed string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.users {
		if m.users[i].ID == id {
			m.users[i].Password = hashed
			return nil
		}
	}
	return apperrors.ErrUserNotFound
}

func (m *memUserStore) stored(username string) models.User {
	u, _ := m.GetByUsername(context.Background(), username)
	if u == nil {
		return models.User{}
	}
	return *u
}
