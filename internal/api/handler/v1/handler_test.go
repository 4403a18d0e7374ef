package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/hunt-api/internal/api/middleware"
	"github.com/vietanh2810/hunt-api/internal/domain"
	"github.com/vietanh2810/hunt-api/internal/pkg/jwthelper"
	"github.com/vietanh2810/hunt-api/internal/service"
)

const signingKey = "handler-test-key"

func init() {
	gin.SetMode(gin.TestMode)
}

type stubHunts struct {
	create  func(ownerID uint, hunt domain.Hunt) (domain.Hunt, error)
	get     func(huntID uint) (domain.Hunt, error)
	summary func(huntID uint) (domain.HuntSummary, error)
	update  func(ownerID, huntID uint, changes domain.HuntChanges) (domain.Hunt, error)
	cancel  func(ownerID, huntID uint) error
}

func (s *stubHunts) CreateHunt(_ context.Context, ownerID uint, hunt domain.Hunt) (domain.Hunt, error) {
	return s.create(ownerID, hunt)
}

func (s *stubHunts) GetHunt(_ context.Context, huntID uint) (domain.Hunt, error) {
	return s.get(huntID)
}

func (s *stubHunts) Summary(_ context.Context, huntID uint) (domain.HuntSummary, error) {
	return s.summary(huntID)
}

func (s *stubHunts) UpdateHunt(_ context.Context, ownerID, huntID uint, changes domain.HuntChanges) (domain.Hunt, error) {
	return s.update(ownerID, huntID, changes)
}

func (s *stubHunts) CancelHunt(_ context.Context, ownerID, huntID uint) error {
	return s.cancel(ownerID, huntID)
}

// stubParticipation answers every call with p and err and records the IDs
// and options it got.
type stubParticipation struct {
	p       domain.Participant
	list    []domain.Participant
	allowed bool
	err     error

	called                  string
	huntID, ownerID, userID uint
	opts                    service.ApproveOptions
}

func (s *stubParticipation) self(op string, huntID, userID uint) (domain.Participant, error) {
	s.called, s.huntID, s.userID = op, huntID, userID
	return s.p, s.err
}

func (s *stubParticipation) owner(op string, huntID, ownerID, userID uint, opts service.ApproveOptions) (domain.Participant, error) {
	s.called, s.huntID, s.ownerID, s.userID, s.opts = op, huntID, ownerID, userID, opts
	return s.p, s.err
}

func (s *stubParticipation) Join(_ context.Context, huntID, userID uint) (domain.Participant, error) {
	return s.self("join", huntID, userID)
}

func (s *stubParticipation) Leave(_ context.Context, huntID, userID uint) (domain.Participant, error) {
	return s.self("leave", huntID, userID)
}

func (s *stubParticipation) MarkPaid(_ context.Context, huntID, userID uint) (domain.Participant, error) {
	return s.self("mark-paid", huntID, userID)
}

func (s *stubParticipation) GetParticipant(_ context.Context, huntID, userID uint) (domain.Participant, error) {
	return s.self("get", huntID, userID)
}

func (s *stubParticipation) Approve(_ context.Context, huntID, ownerID, userID uint, opts service.ApproveOptions) (domain.Participant, error) {
	return s.owner("approve", huntID, ownerID, userID, opts)
}

func (s *stubParticipation) Reject(_ context.Context, huntID, ownerID, userID uint) (domain.Participant, error) {
	return s.owner("reject", huntID, ownerID, userID, service.ApproveOptions{})
}

func (s *stubParticipation) ConfirmPayment(_ context.Context, huntID, ownerID, userID uint, opts service.ApproveOptions) (domain.Participant, error) {
	return s.owner("confirm-payment", huntID, ownerID, userID, opts)
}

func (s *stubParticipation) ListParticipants(_ context.Context, huntID, viewerID uint) ([]domain.Participant, error) {
	s.called, s.huntID, s.userID = "list", huntID, viewerID
	return s.list, s.err
}

func (s *stubParticipation) CanAccessContent(_ context.Context, huntID, userID uint) (bool, error) {
	s.called, s.huntID, s.userID = "access", huntID, userID
	return s.allowed, s.err
}

func newRouter(hunts HuntService, participation ParticipationService) *gin.Engine {
	r := gin.New()
	g := r.Group("/api/v1", middleware.NewAuthenticator(signingKey).VerifyJWT())

	hh := NewHuntHandler(hunts)
	g.POST("/hunts", hh.HandleCreateHunt)
	g.GET("/hunts/:huntID", hh.HandleGetHunt)
	g.PATCH("/hunts/:huntID", hh.HandleUpdateHunt)
	g.DELETE("/hunts/:huntID", hh.HandleCancelHunt)
	g.GET("/hunts/:huntID/summary", hh.HandleGetSummary)

	ph := NewParticipationHandler(participation)
	g.POST("/hunts/:huntID/join", ph.HandleJoin)
	g.POST("/hunts/:huntID/leave", ph.HandleLeave)
	g.POST("/hunts/:huntID/mark-paid", ph.HandleMarkPaid)
	g.GET("/hunts/:huntID/participants", ph.HandleListParticipants)
	g.GET("/hunts/:huntID/participants/me", ph.HandleGetMyParticipation)
	g.GET("/hunts/:huntID/access", ph.HandleAccess)
	g.POST("/hunts/:huntID/participants/:userID/approve", ph.HandleApprove)
	g.POST("/hunts/:huntID/participants/:userID/reject", ph.HandleReject)
	g.POST("/hunts/:huntID/participants/:userID/confirm-payment", ph.HandleConfirmPayment)

	r.GET("/", HandleHealthcheck)

	return r
}

// call sends the request as userID. A userID of zero sends no token.
func call(t *testing.T, r http.Handler, method, path string, userID uint, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if userID != 0 {
		token, err := jwthelper.GenerateToken([]byte(signingKey), userID, "test")
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	return w
}

type errBody struct {
	Status string `json:"status"`
	Code   string `json:"code"`
	Error  string `json:"error"`
}

func decodeErr(t *testing.T, w *httptest.ResponseRecorder) errBody {
	t.Helper()

	var body errBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	return body
}
