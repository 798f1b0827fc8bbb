package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ChinchiroBot_Go/internal/domain"
	"github.com/osse101/ChinchiroBot_Go/internal/history"
)

// MockRoundService is a testify mock of round.Service
type MockRoundService struct {
	mock.Mock
}

func (m *MockRoundService) PlayRound(ctx context.Context, bet int) (*domain.RoundRecord, error) {
	args := m.Called(ctx, bet)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RoundRecord), args.Error(1)
}

func sampleRecord(id uuid.UUID, payout int) *domain.RoundRecord {
	return &domain.RoundRecord{
		ID: id,
		Outcome: domain.RoundOutcome{
			Bet:             100,
			Payout:          payout,
			DeterminingSide: domain.SidePlayer,
		},
		StartedAt:  time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		ResolvedAt: time.Date(2025, 6, 1, 12, 0, 5, 0, time.UTC),
	}
}

func newStore(t *testing.T) *history.Store {
	t.Helper()
	store, err := history.NewStore(16)
	require.NoError(t, err)
	return store
}

func TestHandlePlayRound(t *testing.T) {
	recordID := uuid.MustParse("00000000-0000-0000-0000-000000000001")

	tests := []struct {
		name           string
		reqBody        interface{}
		setupMock      func(*MockRoundService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Invalid JSON",
			reqBody:        "not json",
			setupMock:      func(m *MockRoundService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequest,
		},
		{
			name:           "Missing Bet",
			reqBody:        map[string]int{},
			setupMock:      func(m *MockRoundService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequestError,
		},
		{
			name:           "Negative Bet",
			reqBody:        PlayRoundRequest{Bet: -5},
			setupMock:      func(m *MockRoundService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "bet",
		},
		{
			name:    "Service Error",
			reqBody: PlayRoundRequest{Bet: 100},
			setupMock: func(m *MockRoundService) {
				m.On("PlayRound", mock.Anything, 100).Return(nil, domain.ErrInvalidBet)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidBetError,
		},
		{
			name:    "Success",
			reqBody: PlayRoundRequest{Bet: 100},
			setupMock: func(m *MockRoundService) {
				m.On("PlayRound", mock.Anything, 100).Return(sampleRecord(recordID, 500), nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   recordID.String(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockRoundService)
			tt.setupMock(svc)
			h := NewRoundHandler(svc, newStore(t))

			var body bytes.Buffer
			require.NoError(t, json.NewEncoder(&body).Encode(tt.reqBody))

			req := httptest.NewRequest(http.MethodPost, "/api/v1/round/play", &body)
			rec := httptest.NewRecorder()

			h.HandlePlayRound(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
			svc.AssertExpectations(t)
		})
	}
}

func TestHandlePlayRound_StoresRecord(t *testing.T) {
	recordID := uuid.MustParse("00000000-0000-0000-0000-000000000002")
	svc := new(MockRoundService)
	svc.On("PlayRound", mock.Anything, 50).Return(sampleRecord(recordID, -50), nil)

	store := newStore(t)
	h := NewRoundHandler(svc, store)

	var body bytes.Buffer
	require.NoError(t, json.NewEncoder(&body).Encode(PlayRoundRequest{Bet: 50}))
	rec := httptest.NewRecorder()
	h.HandlePlayRound(rec, httptest.NewRequest(http.MethodPost, "/api/v1/round/play", &body))

	assert.Equal(t, http.StatusCreated, rec.Code)
	stored, ok := store.Get(recordID)
	assert.True(t, ok)
	assert.Equal(t, -50, stored.Outcome.Payout)
}

func TestHandleGetRound(t *testing.T) {
	recordID := uuid.MustParse("00000000-0000-0000-0000-000000000003")
	store := newStore(t)
	store.Add(*sampleRecord(recordID, 200))

	h := NewRoundHandler(new(MockRoundService), store)

	r := chi.NewRouter()
	r.Get("/round/{id}", h.HandleGetRound)

	tests := []struct {
		name           string
		path           string
		expectedStatus int
		expectedBody   string
	}{
		{"Found", "/round/" + recordID.String(), http.StatusOK, recordID.String()},
		{"Not Found", "/round/" + uuid.NewString(), http.StatusNotFound, ErrMsgRoundNotFoundError},
		{"Bad ID", "/round/not-a-uuid", http.StatusBadRequest, ErrMsgInvalidRoundID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
		})
	}
}

func TestHandleGetRecentRounds(t *testing.T) {
	store := newStore(t)
	first := sampleRecord(uuid.New(), 100)
	second := sampleRecord(uuid.New(), -200)
	store.Add(*first)
	store.Add(*second)

	h := NewRoundHandler(new(MockRoundService), store)

	rec := httptest.NewRecorder()
	h.HandleGetRecentRounds(rec, httptest.NewRequest(http.MethodGet, "/rounds/recent?limit=1", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var records []domain.RoundRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &records))
	require.Len(t, records, 1)
	assert.Equal(t, second.ID, records[0].ID)
}

func TestHandleGetRecentRounds_BadLimit(t *testing.T) {
	h := NewRoundHandler(new(MockRoundService), newStore(t))

	rec := httptest.NewRecorder()
	h.HandleGetRecentRounds(rec, httptest.NewRequest(http.MethodGet, "/rounds/recent?limit=zero", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
