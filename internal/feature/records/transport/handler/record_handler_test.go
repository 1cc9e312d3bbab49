package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitness_backend/internal/feature/records/domain/entity"
	jwtmw "fitness_backend/internal/platform/jwt"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// mockRecordsUsecase is a mock implementation of the RecordsUsecase interface.
type mockRecordsUsecase struct {
	ListFunc   func(ctx context.Context, userID uint) ([]entity.Record, error)
	AppendFunc func(ctx context.Context, userID uint, record entity.Record) ([]entity.Record, error)
}

func (m *mockRecordsUsecase) List(ctx context.Context, userID uint) ([]entity.Record, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockRecordsUsecase) Append(ctx context.Context, userID uint, record entity.Record) ([]entity.Record, error) {
	if m.AppendFunc != nil {
		return m.AppendFunc(ctx, userID, record)
	}
	return nil, nil
}

func f(v float64) *float64 { return &v }

// authedContext builds a test context as if the request had passed the auth gate.
func authedContext(t *testing.T, method, body string, userID uint) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	if body != "" {
		c.Request = httptest.NewRequest(method, "/", bytes.NewBufferString(body))
		c.Request.Header.Set("Content-Type", "application/json")
	} else {
		c.Request = httptest.NewRequest(method, "/", nil)
	}
	c.Set(jwtmw.ContextUserID, userID)
	return c, w
}

func TestRecordHandler_List(t *testing.T) {
	t.Run("returns the caller's records in append order", func(t *testing.T) {
		mockUC := &mockRecordsUsecase{
			ListFunc: func(ctx context.Context, userID uint) ([]entity.Record, error) {
				assert.Equal(t, uint(1), userID)
				return []entity.Record{{Weight: f(70)}, {Weight: f(71)}}, nil
			},
		}
		h := NewRecordHandler(mockUC)

		c, w := authedContext(t, http.MethodGet, "", 1)
		h.List(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var got []entity.Record
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		require.Len(t, got, 2)
		assert.Equal(t, f(70.0), got[0].Weight)
		assert.Equal(t, f(71.0), got[1].Weight)
	})

	t.Run("empty history serializes as [] not null", func(t *testing.T) {
		mockUC := &mockRecordsUsecase{
			ListFunc: func(ctx context.Context, userID uint) ([]entity.Record, error) {
				return nil, nil
			},
		}
		h := NewRecordHandler(mockUC)

		c, w := authedContext(t, http.MethodGet, "", 1)
		h.List(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("store failure returns 500 without raw error", func(t *testing.T) {
		mockUC := &mockRecordsUsecase{
			ListFunc: func(ctx context.Context, userID uint) ([]entity.Record, error) {
				return nil, errors.New("pq: connection refused")
			},
		}
		h := NewRecordHandler(mockUC)

		c, w := authedContext(t, http.MethodGet, "", 1)
		h.List(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"failed to load records"}`, w.Body.String())
		assert.NotContains(t, w.Body.String(), "connection refused")
	})
}

func TestRecordHandler_Append(t *testing.T) {
	t.Run("appends and returns the full updated list", func(t *testing.T) {
		mockUC := &mockRecordsUsecase{
			AppendFunc: func(ctx context.Context, userID uint, record entity.Record) ([]entity.Record, error) {
				assert.Equal(t, uint(1), userID)
				assert.Equal(t, f(70.0), record.Weight)
				assert.Equal(t, f(2000.0), record.Calories)
				require.Len(t, record.Exercises, 1)
				assert.Equal(t, "squat", record.Exercises[0].Name)
				return []entity.Record{{Weight: f(69)}, record}, nil
			},
		}
		h := NewRecordHandler(mockUC)

		body := `{"weight":70,"calories":2000,"exercises":[{"name":"squat","sets":5,"reps":5,"weight":100}]}`
		c, w := authedContext(t, http.MethodPost, body, 1)
		h.Append(c)

		assert.Equal(t, http.StatusCreated, w.Code)

		var got []entity.Record
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Len(t, got, 2, "response should carry the whole history")
	})

	t.Run("empty record body is accepted", func(t *testing.T) {
		mockUC := &mockRecordsUsecase{
			AppendFunc: func(ctx context.Context, userID uint, record entity.Record) ([]entity.Record, error) {
				assert.Nil(t, record.Weight)
				assert.Nil(t, record.Date)
				return []entity.Record{record}, nil
			},
		}
		h := NewRecordHandler(mockUC)

		c, w := authedContext(t, http.MethodPost, `{}`, 1)
		h.Append(c)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("malformed JSON returns 400", func(t *testing.T) {
		h := NewRecordHandler(&mockRecordsUsecase{})

		c, w := authedContext(t, http.MethodPost, `{"weight":`, 1)
		h.Append(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"invalid request"}`, w.Body.String())
	})

	t.Run("store failure returns 400 without raw error", func(t *testing.T) {
		mockUC := &mockRecordsUsecase{
			AppendFunc: func(ctx context.Context, userID uint, record entity.Record) ([]entity.Record, error) {
				return nil, errors.New("pq: connection refused")
			},
		}
		h := NewRecordHandler(mockUC)

		c, w := authedContext(t, http.MethodPost, `{"weight":70}`, 1)
		h.Append(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"failed to save record"}`, w.Body.String())
		assert.NotContains(t, w.Body.String(), "connection refused")
	})
}
