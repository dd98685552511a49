package services

import (
	"errors"
	"lumina/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// ==================== MOCKS ====================

// MockOfferRepository is a mock implementation of OfferRepository interface
type MockOfferRepository struct {
	mock.Mock
}

var _ OfferRepository = (*MockOfferRepository)(nil)

func (m *MockOfferRepository) CreateOffer(offer *models.Offer) (int64, error) {
	args := m.Called(offer)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOfferRepository) GetOfferByID(offerID int64) (*models.Offer, error) {
	args := m.Called(offerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Offer), args.Error(1)
}

func (m *MockOfferRepository) UpdateOffer(offerID int64, offer *models.Offer) error {
	args := m.Called(offerID, offer)
	return args.Error(0)
}

func (m *MockOfferRepository) DeleteOffer(offerID int64) error {
	args := m.Called(offerID)
	return args.Error(0)
}

func (m *MockOfferRepository) ListOffers() ([]models.Offer, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Offer), args.Error(1)
}

func (m *MockOfferRepository) ListOffersByTutor(tutorID int64) ([]models.Offer, error) {
	args := m.Called(tutorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Offer), args.Error(1)
}

func (m *MockOfferRepository) SearchOffers(query string) ([]models.Offer, error) {
	args := m.Called(query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Offer), args.Error(1)
}

// ==================== TESTS ====================

func TestOfferService_Publish(t *testing.T) {
	validRequest := &models.PublishOfferRequest{
		Subject:     "Cálculo Diferencial",
		Category:    "Matemáticas",
		Level:       "Intermedio",
		Description: "Repaso de límites y derivadas",
		Price:       "15000",
		Modality:    models.ModalityOnline,
		Duration:    "1 hora",
	}

	tests := []struct {
		name          string
		userID        int64
		request       *models.PublishOfferRequest
		mockSetup     func(*MockUserRepository, *MockOfferRepository)
		expectedError error
	}{
		{
			name:    "Success - Tutor publishes online offer",
			userID:  4,
			request: validRequest,
			mockSetup: func(users *MockUserRepository, offers *MockOfferRepository) {
				users.On("GetUserByID", int64(4)).Return(&models.User{
					ID:       4,
					Name:     "Marta Gil",
					UserType: models.UserTypeTutor,
				}, nil)
				offers.On("CreateOffer", mock.MatchedBy(func(o *models.Offer) bool {
					return o.TutorID == 4 && o.TutorName == "Marta Gil"
				})).Return(int64(11), nil)
			},
			expectedError: nil,
		},
		{
			name:    "Success - Ambos account may publish",
			userID:  9,
			request: validRequest,
			mockSetup: func(users *MockUserRepository, offers *MockOfferRepository) {
				users.On("GetUserByID", int64(9)).Return(&models.User{
					ID:       9,
					Name:     "Luis Mora",
					UserType: models.UserTypeBoth,
				}, nil)
				offers.On("CreateOffer", mock.Anything).Return(int64(12), nil)
			},
			expectedError: nil,
		},
		{
			name:    "Error - Student cannot publish",
			userID:  2,
			request: validRequest,
			mockSetup: func(users *MockUserRepository, offers *MockOfferRepository) {
				users.On("GetUserByID", int64(2)).Return(&models.User{
					ID:       2,
					UserType: models.UserTypeStudent,
				}, nil)
			},
			expectedError: ErrNotTutor,
		},
		{
			name:   "Error - In-person offer without location",
			userID: 4,
			request: &models.PublishOfferRequest{
				Subject:     "Física I",
				Category:    "Ciencias",
				Level:       "Básico",
				Description: "Mecánica clásica",
				Price:       "12000",
				Modality:    models.ModalityInPerson,
				Duration:    "2 horas",
				Location:    "   ",
			},
			mockSetup: func(users *MockUserRepository, offers *MockOfferRepository) {
				users.On("GetUserByID", int64(4)).Return(&models.User{
					ID:       4,
					UserType: models.UserTypeTutor,
				}, nil)
			},
			expectedError: ErrLocationRequired,
		},
		{
			name:    "Error - Unknown user",
			userID:  99,
			request: validRequest,
			mockSetup: func(users *MockUserRepository, offers *MockOfferRepository) {
				users.On("GetUserByID", int64(99)).Return(nil, nil)
			},
			expectedError: ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUsers := new(MockUserRepository)
			mockOffers := new(MockOfferRepository)
			if tt.mockSetup != nil {
				tt.mockSetup(mockUsers, mockOffers)
			}

			service := NewOfferService(mockUsers, mockOffers)

			offer, err := service.Publish(tt.userID, tt.request)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, offer)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, offer)
				assert.Equal(t, tt.userID, offer.TutorID)
				assert.NotZero(t, offer.ID)
			}

			mockUsers.AssertExpectations(t)
			mockOffers.AssertExpectations(t)
		})
	}
}

func TestOfferService_Edit(t *testing.T) {
	owned := &models.Offer{
		ID:       11,
		TutorID:  4,
		Subject:  "Cálculo Diferencial",
		Modality: models.ModalityOnline,
	}

	request := &models.PublishOfferRequest{
		Subject:     "Cálculo Integral",
		Category:    "Matemáticas",
		Level:       "Avanzado",
		Description: "Integrales definidas",
		Price:       "18000",
		Modality:    models.ModalityOnline,
		Duration:    "1 hora",
	}

	tests := []struct {
		name          string
		userID        int64
		offerID       int64
		mockSetup     func(*MockOfferRepository)
		expectedError error
	}{
		{
			name:    "Success - Owner edits",
			userID:  4,
			offerID: 11,
			mockSetup: func(offers *MockOfferRepository) {
				offers.On("GetOfferByID", int64(11)).Return(owned, nil).Once()
				offers.On("UpdateOffer", int64(11), mock.MatchedBy(func(o *models.Offer) bool {
					return o.Subject == "Cálculo Integral"
				})).Return(nil)
				offers.On("GetOfferByID", int64(11)).Return(&models.Offer{
					ID:      11,
					TutorID: 4,
					Subject: "Cálculo Integral",
				}, nil).Once()
			},
			expectedError: nil,
		},
		{
			name:    "Error - Not the owner",
			userID:  2,
			offerID: 11,
			mockSetup: func(offers *MockOfferRepository) {
				offers.On("GetOfferByID", int64(11)).Return(owned, nil)
			},
			expectedError: ErrNotOfferOwner,
		},
		{
			name:    "Error - Offer not found",
			userID:  4,
			offerID: 404,
			mockSetup: func(offers *MockOfferRepository) {
				offers.On("GetOfferByID", int64(404)).Return(nil, nil)
			},
			expectedError: ErrOfferNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUsers := new(MockUserRepository)
			mockOffers := new(MockOfferRepository)
			if tt.mockSetup != nil {
				tt.mockSetup(mockOffers)
			}

			service := NewOfferService(mockUsers, mockOffers)

			offer, err := service.Edit(tt.userID, tt.offerID, request)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, offer)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "Cálculo Integral", offer.Subject)
			}

			mockOffers.AssertExpectations(t)
		})
	}
}

func TestOfferService_Remove(t *testing.T) {
	owned := &models.Offer{ID: 11, TutorID: 4}

	tests := []struct {
		name          string
		userID        int64
		offerID       int64
		mockSetup     func(*MockOfferRepository)
		expectedError error
	}{
		{
			name:    "Success - Owner deletes",
			userID:  4,
			offerID: 11,
			mockSetup: func(offers *MockOfferRepository) {
				offers.On("GetOfferByID", int64(11)).Return(owned, nil)
				offers.On("DeleteOffer", int64(11)).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:    "Error - Not the owner",
			userID:  2,
			offerID: 11,
			mockSetup: func(offers *MockOfferRepository) {
				offers.On("GetOfferByID", int64(11)).Return(owned, nil)
			},
			expectedError: ErrNotOfferOwner,
		},
		{
			name:    "Error - Offer not found",
			userID:  4,
			offerID: 404,
			mockSetup: func(offers *MockOfferRepository) {
				offers.On("GetOfferByID", int64(404)).Return(nil, nil)
			},
			expectedError: ErrOfferNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockOffers := new(MockOfferRepository)
			if tt.mockSetup != nil {
				tt.mockSetup(mockOffers)
			}

			service := NewOfferService(new(MockUserRepository), mockOffers)

			err := service.Remove(tt.userID, tt.offerID)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}

			mockOffers.AssertExpectations(t)
		})
	}
}

func TestOfferService_Search(t *testing.T) {
	results := []models.Offer{{ID: 3, Subject: "Química Orgánica"}}

	t.Run("Blank query falls back to the full list", func(t *testing.T) {
		mockOffers := new(MockOfferRepository)
		mockOffers.On("ListOffers").Return(results, nil)

		service := NewOfferService(new(MockUserRepository), mockOffers)

		offers, err := service.Search("   ")
		assert.NoError(t, err)
		assert.Len(t, offers, 1)

		mockOffers.AssertExpectations(t)
	})

	t.Run("Non-blank query hits the search path", func(t *testing.T) {
		mockOffers := new(MockOfferRepository)
		mockOffers.On("SearchOffers", "Química").Return(results, nil)

		service := NewOfferService(new(MockUserRepository), mockOffers)

		offers, err := service.Search(" Química ")
		assert.NoError(t, err)
		assert.Len(t, offers, 1)

		mockOffers.AssertExpectations(t)
	})

	t.Run("Repository error propagates", func(t *testing.T) {
		mockOffers := new(MockOfferRepository)
		mockOffers.On("SearchOffers", "Química").Return(nil, errors.New("database error"))

		service := NewOfferService(new(MockUserRepository), mockOffers)

		offers, err := service.Search("Química")
		assert.Error(t, err)
		assert.Nil(t, offers)
	})
}
