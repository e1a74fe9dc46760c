package poll

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/user-statistics/internal/lib/sl"
	"github.com/magabrotheeeer/user-statistics/internal/models"
	"github.com/magabrotheeeer/user-statistics/internal/services/report"
)

// MockService реализует интерфейс poll.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Poll(ctx context.Context, queryID string) (*models.ResponseData, error) {
	args := m.Called(ctx, queryID)
	if res := args.Get(0); res != nil {
		return res.(*models.ResponseData), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestPollHandler(t *testing.T) {
	const query = "3f2b8c1e-6d4a-4e0b-9a7c-2b1d5e8f0a11"

	tests := []struct {
		name           string
		query          string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:  "пустой query",
			query: "",
			setupMock: func(m *MockService) {
				m.On("Poll", mock.Anything, "").Return(nil, report.ErrEmptyQuery).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{}`,
		},
		{
			name:  "неизвестный query",
			query: "UnexpectedGUID",
			setupMock: func(m *MockService) {
				m.On("Poll", mock.Anything, "UnexpectedGUID").Return(nil, report.ErrQueryNotFound).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{}`,
		},
		{
			name:  "запрос в обработке",
			query: query,
			setupMock: func(m *MockService) {
				m.On("Poll", mock.Anything, query).Return(&models.ResponseData{Query: query, Percent: 50}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"query":"` + query + `","percent":50,"result":null}`,
		},
		{
			name:  "готовый результат",
			query: query,
			setupMock: func(m *MockService) {
				m.On("Poll", mock.Anything, query).Return(&models.ResponseData{
					Query:   query,
					Percent: 100,
					Result:  &models.UserInfoData{UserID: "TestUserID", CountSignIn: "12"},
				}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"query":"` + query + `","percent":100,"result":{"userId":"TestUserID","countSignIn":"12"}}`,
		},
		{
			name:  "ошибка хранилища",
			query: query,
			setupMock: func(m *MockService) {
				m.On("Poll", mock.Anything, query).Return(nil, errors.New("db error")).Once()
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"could not read request"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(sl.Discard(), mockService)

			target := "/report/info?query=" + url.QueryEscape(tt.query)
			req := httptest.NewRequest(http.MethodGet, target, nil)
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
			mockService.AssertExpectations(t)
		})
	}
}
