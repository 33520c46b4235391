package mocks

import (
	"swasthya/internal/models"
	"swasthya/internal/repository"

	"github.com/stretchr/testify/mock"
)

type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Create(session *models.Session) error {
	args := m.Called(session)
	return args.Error(0)
}

func (m *MockSessionRepository) FindByID(id string) (*models.Session, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockSessionRepository) Save(session *models.Session) error {
	args := m.Called(session)
	return args.Error(0)
}

// Update runs through FindByID and Save, so tests set expectations on those.
func (m *MockSessionRepository) Update(id string, fn func(*models.Session) error) (*models.Session, error) {
	found, err := m.FindByID(id)
	if err != nil {
		return nil, err
	}
	next := found.Clone()
	if err := fn(&next); err != nil {
		return nil, err
	}
	if err := m.Save(&next); err != nil {
		return nil, err
	}
	return &next, nil
}

func (m *MockSessionRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockSessionRepository) Count() int {
	args := m.Called()
	return args.Int(0)
}

type MockFoodRepository struct {
	mock.Mock
}

func (m *MockFoodRepository) FindAll() ([]models.FoodRow, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.FoodRow), args.Error(1)
}

func (m *MockFoodRepository) FindByName(name string) (*models.FoodRow, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FoodRow), args.Error(1)
}

func (m *MockFoodRepository) Upsert(rows []models.FoodRow) error {
	args := m.Called(rows)
	return args.Error(0)
}

func (m *MockFoodRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFoodRepository) DeleteAll() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

var (
	_ repository.SessionRepository = (*MockSessionRepository)(nil)
	_ repository.FoodRepository    = (*MockFoodRepository)(nil)
)
