package v1

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/hunt-api/internal/domain"
	"github.com/vietanh2810/hunt-api/internal/service"
)

var start = time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)

func TestHandleCreateHunt(t *testing.T) {
	var got domain.Hunt
	hunts := &stubHunts{
		create: func(ownerID uint, hunt domain.Hunt) (domain.Hunt, error) {
			got = hunt
			hunt.ID, hunt.OwnerID = 9, ownerID
			return hunt, nil
		},
	}
	r := newRouter(hunts, &stubParticipation{})

	w := call(t, r, http.MethodPost, "/api/v1/hunts", 3, map[string]any{
		"title":      "Tromsø fjord lights",
		"start_date": start,
		"end_date":   start.Add(2 * time.Hour),
		"capacity":   10,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created domain.Hunt
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, uint(9), created.ID)
	assert.Equal(t, uint(3), created.OwnerID)
	assert.Equal(t, domain.VisibilityPublic, got.Visibility)
	require.NotNil(t, got.Capacity)
	assert.Equal(t, 10, *got.Capacity)
}

func TestHandleCreateHuntRejectsBadInput(t *testing.T) {
	hunts := &stubHunts{
		create: func(uint, domain.Hunt) (domain.Hunt, error) {
			t.Fatal("service must not be called")
			return domain.Hunt{}, nil
		},
	}
	r := newRouter(hunts, &stubParticipation{})

	tests := map[string]map[string]any{
		"end before start": {"title": "Tromsø fjord lights", "start_date": start, "end_date": start.Add(-time.Hour)},
		"zero capacity":    {"title": "Tromsø fjord lights", "start_date": start, "end_date": start.Add(time.Hour), "capacity": 0},
		"bad visibility":   {"title": "Tromsø fjord lights", "start_date": start, "end_date": start.Add(time.Hour), "visibility": "friends"},
		"missing title":    {"start_date": start, "end_date": start.Add(time.Hour)},
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			w := call(t, r, http.MethodPost, "/api/v1/hunts", 3, body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestHandlersRequireToken(t *testing.T) {
	r := newRouter(&stubHunts{}, &stubParticipation{})

	w := call(t, r, http.MethodGet, "/api/v1/hunts/1", 0, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "unauthorized", decodeErr(t, w).Code)
}

func TestHandleGetHunt(t *testing.T) {
	hunts := &stubHunts{
		get: func(huntID uint) (domain.Hunt, error) {
			if huntID == 7 {
				return domain.Hunt{ID: 7, Title: "Tromsø fjord lights"}, nil
			}
			return domain.Hunt{}, fmt.Errorf("s.store.GetHunt -> %w", service.ErrHuntNotFound)
		},
	}
	r := newRouter(hunts, &stubParticipation{})

	w := call(t, r, http.MethodGet, "/api/v1/hunts/7", 3, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = call(t, r, http.MethodGet, "/api/v1/hunts/8", 3, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "hunt_not_found", decodeErr(t, w).Code)

	w = call(t, r, http.MethodGet, "/api/v1/hunts/abc", 3, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleGetSummary(t *testing.T) {
	hunts := &stubHunts{
		summary: func(huntID uint) (domain.HuntSummary, error) {
			spots := 2
			return domain.HuntSummary{HuntID: huntID, ConfirmedCount: 3, AvailableSpots: &spots}, nil
		},
	}
	r := newRouter(hunts, &stubParticipation{})

	w := call(t, r, http.MethodGet, "/api/v1/hunts/7/summary", 3, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var summary domain.HuntSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	assert.Equal(t, uint(7), summary.HuntID)
	assert.Equal(t, 3, summary.ConfirmedCount)
	require.NotNil(t, summary.AvailableSpots)
	assert.Equal(t, 2, *summary.AvailableSpots)
}

func TestHandleUpdateHunt(t *testing.T) {
	var got domain.HuntChanges
	hunts := &stubHunts{
		update: func(ownerID, huntID uint, changes domain.HuntChanges) (domain.Hunt, error) {
			got = changes
			if changes.Visibility != nil {
				return domain.Hunt{}, fmt.Errorf("guard -> %w", service.ErrSettingsBlocked)
			}
			return domain.Hunt{ID: huntID, OwnerID: ownerID}, nil
		},
	}
	r := newRouter(hunts, &stubParticipation{})

	w := call(t, r, http.MethodPatch, "/api/v1/hunts/7", 1, map[string]any{"clear_capacity": true})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, got.ClearCapacity)
	assert.Nil(t, got.Capacity)

	w = call(t, r, http.MethodPatch, "/api/v1/hunts/7", 1, map[string]any{"visibility": "private"})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "settings_blocked", decodeErr(t, w).Code)

	w = call(t, r, http.MethodPatch, "/api/v1/hunts/7", 1, map[string]any{"capacity": 4, "clear_capacity": true})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleCancelHunt(t *testing.T) {
	hunts := &stubHunts{
		cancel: func(ownerID, huntID uint) error {
			if ownerID != 1 {
				return service.ErrNotHuntOwner
			}
			return nil
		},
	}
	r := newRouter(hunts, &stubParticipation{})

	w := call(t, r, http.MethodDelete, "/api/v1/hunts/7", 1, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = call(t, r, http.MethodDelete, "/api/v1/hunts/7", 2, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "not_hunt_owner", decodeErr(t, w).Code)
}

func TestUnknownErrorsAreHidden(t *testing.T) {
	hunts := &stubHunts{
		get: func(uint) (domain.Hunt, error) {
			return domain.Hunt{}, errors.New("connection reset by peer")
		},
	}
	r := newRouter(hunts, &stubParticipation{})

	w := call(t, r, http.MethodGet, "/api/v1/hunts/7", 3, nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "connection reset")
}

func TestHandleHealthcheck(t *testing.T) {
	r := newRouter(&stubHunts{}, &stubParticipation{})

	w := call(t, r, http.MethodGet, "/", 0, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
