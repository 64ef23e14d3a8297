package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/degenfarm/internal/domain"
	"github.com/osse101/degenfarm/internal/farm"
	"github.com/osse101/degenfarm/internal/handler"
	"github.com/osse101/degenfarm/mocks"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newRouter(svc farm.Service) http.Handler {
	r := chi.NewRouter()
	r.Route("/api/v1", handler.NewFarmHandler(svc).Routes)
	return r
}

func do(t *testing.T, h http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}
	req := httptest.NewRequest(method, target, &buf)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) handler.ErrorResponse {
	t.Helper()
	var resp handler.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp
}

func TestFarmHandler_Register(t *testing.T) {
	tests := []struct {
		name           string
		body           any
		setupMock      func(*mocks.MockFarmService)
		expectedStatus int
		expectedReason domain.Reason
		expectedField  string
	}{
		{
			name: "Success",
			body: handler.RegisterRequest{Username: "alice", CharacterID: "foxy"},
			setupMock: func(m *mocks.MockFarmService) {
				m.On("Register", mock.Anything, "alice", "foxy").Return(&farm.RegisterResult{
					Username:  "alice",
					Character: domain.Character{ID: "foxy"},
					CreatedAt: testNow,
				}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "Username Taken",
			body: handler.RegisterRequest{Username: "alice", CharacterID: "foxy"},
			setupMock: func(m *mocks.MockFarmService) {
				m.On("Register", mock.Anything, "alice", "foxy").
					Return(nil, fmt.Errorf("%w: alice", domain.ErrUsernameTaken))
			},
			expectedStatus: http.StatusConflict,
			expectedReason: domain.ReasonUsernameTaken,
		},
		{
			name: "Unknown Character",
			body: handler.RegisterRequest{Username: "alice", CharacterID: "dragon"},
			setupMock: func(m *mocks.MockFarmService) {
				m.On("Register", mock.Anything, "alice", "dragon").
					Return(nil, fmt.Errorf("%w: dragon", domain.ErrUnknownCharacter))
			},
			expectedStatus: http.StatusBadRequest,
			expectedReason: domain.ReasonUnknownCharacter,
		},
		{
			name: "Leaderboard Down",
			body: handler.RegisterRequest{Username: "alice", CharacterID: "foxy"},
			setupMock: func(m *mocks.MockFarmService) {
				m.On("Register", mock.Anything, "alice", "foxy").
					Return(nil, fmt.Errorf("%w: connection refused", domain.ErrSyncFailure))
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedReason: domain.ReasonSyncFailure,
		},
		{
			name:           "Invalid Username",
			body:           handler.RegisterRequest{Username: "a!", CharacterID: "foxy"},
			expectedStatus: http.StatusBadRequest,
			expectedField:  "username",
		},
		{
			name:           "Missing Character",
			body:           map[string]string{"username": "alice"},
			expectedStatus: http.StatusBadRequest,
			expectedField:  "character_id",
		},
		{
			name:           "Malformed JSON",
			body:           `{"username":`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Unknown Field",
			body:           `{"username":"alice","character_id":"foxy","seeds":1000000}`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockFarmService(t)
			if tt.setupMock != nil {
				tt.setupMock(svc)
			}

			rr := do(t, newRouter(svc), http.MethodPost, "/api/v1/players", tt.body)
			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

			if tt.expectedReason != "" {
				assert.Equal(t, tt.expectedReason, decodeError(t, rr).Reason)
			}
			if tt.expectedField != "" {
				var resp handler.ValidationErrorResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Contains(t, resp.Fields, tt.expectedField)
			}
			if tt.setupMock == nil {
				svc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything, mock.Anything)
			}
		})
	}
}

func TestFarmHandler_View(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := mocks.NewMockFarmService(t)
		capacity := 80.0
		svc.On("View", mock.Anything, "alice").Return(&farm.FarmView{
			Username:    "alice",
			Balance:     12.5,
			Pending:     20,
			Capacity:    &capacity,
			StreakCount: 3,
			AsOf:        testNow,
			Notices:     []string{farm.NoticeLastSaveFailed},
		}, nil)

		rr := do(t, newRouter(svc), http.MethodGet, "/api/v1/players/alice/farm", nil)
		require.Equal(t, http.StatusOK, rr.Code)

		var got farm.FarmView
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Equal(t, 20.0, got.Pending)
		require.NotNil(t, got.Capacity)
		assert.Equal(t, 80.0, *got.Capacity)
		assert.Equal(t, []string{farm.NoticeLastSaveFailed}, got.Notices)
	})

	t.Run("Unknown Player", func(t *testing.T) {
		svc := mocks.NewMockFarmService(t)
		svc.On("View", mock.Anything, "ghost").
			Return(nil, fmt.Errorf("%w: ghost", domain.ErrPlayerNotFound))

		rr := do(t, newRouter(svc), http.MethodGet, "/api/v1/players/ghost/farm", nil)
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, domain.ReasonPlayerNotFound, decodeError(t, rr).Reason)
	})
}

func TestFarmHandler_Collect(t *testing.T) {
	tests := []struct {
		name           string
		setupMock      func(*mocks.MockFarmService)
		expectedStatus int
	}{
		{
			name: "Success",
			setupMock: func(m *mocks.MockFarmService) {
				m.On("Collect", mock.Anything, "alice").Return(&farm.CollectResult{
					Username:      "alice",
					Gained:        40,
					Balance:       40,
					StreakAfter:   1,
					HarvestNumber: 1,
					CollectedAt:   testNow,
				}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Unexpected Failure",
			setupMock: func(m *mocks.MockFarmService) {
				m.On("Collect", mock.Anything, "alice").Return(nil, assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockFarmService(t)
			tt.setupMock(svc)

			rr := do(t, newRouter(svc), http.MethodPost, "/api/v1/players/alice/collect", nil)
			assert.Equal(t, tt.expectedStatus, rr.Code)
			if rr.Code == http.StatusInternalServerError {
				resp := decodeError(t, rr)
				assert.Equal(t, handler.ErrMsgGenericServerError, resp.Error)
				assert.NotContains(t, rr.Body.String(), assert.AnError.Error())
			}
		})
	}
}

func TestFarmHandler_Purchase(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedReason domain.Reason
	}{
		{"Success", nil, http.StatusOK, ""},
		{"Insufficient Funds", fmt.Errorf("%w: need 500", domain.ErrInsufficientFunds), http.StatusBadRequest, domain.ReasonInsufficientFunds},
		{"Locked", fmt.Errorf("%w: tools2", domain.ErrUpgradeLocked), http.StatusBadRequest, domain.ReasonUpgradeLocked},
		{"Already Owned", domain.ErrUpgradeAlreadyOwned, http.StatusBadRequest, domain.ReasonUpgradeAlreadyOwned},
		{"Not Found", domain.ErrUpgradeNotFound, http.StatusNotFound, domain.ReasonUpgradeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockFarmService(t)
			var result *farm.PurchaseResult
			if tt.err == nil {
				result = &farm.PurchaseResult{Username: "alice", UpgradeID: "tools1", Cost: 400, Balance: 0}
			}
			svc.On("PurchaseUpgrade", mock.Anything, "alice", "tools1").Return(result, tt.err)

			rr := do(t, newRouter(svc), http.MethodPost, "/api/v1/players/alice/upgrades/tools1", nil)
			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.err != nil {
				assert.Equal(t, tt.expectedReason, decodeError(t, rr).Reason)
				return
			}

			var got farm.PurchaseResult
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
			assert.Equal(t, int64(400), got.Cost)
		})
	}
}

func TestFarmHandler_Upgrades(t *testing.T) {
	svc := mocks.NewMockFarmService(t)
	svc.On("Upgrades", mock.Anything, "alice").Return(&farm.UpgradesView{Username: "alice", Balance: 10}, nil)

	rr := do(t, newRouter(svc), http.MethodGet, "/api/v1/players/alice/upgrades", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestFarmHandler_Characters(t *testing.T) {
	svc := mocks.NewMockFarmService(t)
	svc.On("Characters").Return([]domain.Character{
		{ID: "foxy", Name: "Foxy", BaseRatePerHour: 8, Ability: domain.AbilityStreakAmplifier},
	})

	rr := do(t, newRouter(svc), http.MethodGet, "/api/v1/characters", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"ability":"streak_amplifier"`)
}

func TestFarmHandler_Leaderboard(t *testing.T) {
	page := []domain.LeaderboardEntry{
		{Username: "whale", CharacterID: "okay_bear", TotalSeeds: 1234567, StreakCount: 9},
		{Username: "shrimp", CharacterID: "monke", TotalSeeds: 42},
	}

	t.Run("Default Locale", func(t *testing.T) {
		svc := mocks.NewMockFarmService(t)
		svc.On("Leaderboard", mock.Anything, 0).Return(page, nil)

		rr := do(t, newRouter(svc), http.MethodGet, "/api/v1/leaderboard", nil)
		require.Equal(t, http.StatusOK, rr.Code)

		var got handler.LeaderboardResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Equal(t, "en", got.Locale)
		require.Len(t, got.Entries, 2)
		assert.Equal(t, 1, got.Entries[0].Rank)
		assert.Equal(t, "1,234,567", got.Entries[0].Seeds)
		assert.Equal(t, "42", got.Entries[1].Seeds)
		assert.Equal(t, 2, got.Entries[1].Rank)
	})

	t.Run("German", func(t *testing.T) {
		svc := mocks.NewMockFarmService(t)
		svc.On("Leaderboard", mock.Anything, 10).Return(page[:1], nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/leaderboard?limit=10", nil)
		req.Header.Set("Accept-Language", "de-DE,de;q=0.9")
		rr := httptest.NewRecorder()
		newRouter(svc).ServeHTTP(rr, req)
		require.Equal(t, http.StatusOK, rr.Code)

		var got handler.LeaderboardResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Equal(t, "de", got.Locale)
		assert.Equal(t, "1.234.567", got.Entries[0].Seeds)
	})

	t.Run("Bad Limit", func(t *testing.T) {
		svc := mocks.NewMockFarmService(t)
		rr := do(t, newRouter(svc), http.MethodGet, "/api/v1/leaderboard?limit=lots", nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, handler.ErrMsgInvalidLimit, decodeError(t, rr).Error)
	})

	t.Run("Leaderboard Down", func(t *testing.T) {
		svc := mocks.NewMockFarmService(t)
		svc.On("Leaderboard", mock.Anything, 0).Return(nil, domain.ErrSyncFailure)

		rr := do(t, newRouter(svc), http.MethodGet, "/api/v1/leaderboard", nil)
		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	})
}
