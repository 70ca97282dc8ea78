package handler_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"github.com/srikanthreddy78/SkillSwapApp/internal/delivery/http/handler"
	"github.com/srikanthreddy78/SkillSwapApp/internal/delivery/http/middleware"
	"github.com/srikanthreddy78/SkillSwapApp/internal/domain"
	mock_repository "github.com/srikanthreddy78/SkillSwapApp/internal/repository/mocks"
	"github.com/srikanthreddy78/SkillSwapApp/internal/usecase/discovery"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

// browseRouter wires the discovery handler behind a stub auth layer that
// injects userID, the way RequireAuth would after token verification.
func browseRouter(h *handler.DiscoveryHandler, userID uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/discovery", func(c *gin.Context) {
		c.Set(middleware.ContextUserID, userID)
	}, h.Browse)
	return router
}

func TestBrowseReturnsPage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mock_repository.NewMockUserRepository(ctrl)
	presence := mock_repository.NewMockPresenceStore(ctrl)

	selfID := uuid.New()
	other := &domain.User{
		ID:           uuid.New(),
		DisplayName:  "Alice",
		SkillsTaught: []string{"Guitar"},
	}

	userRepo.EXPECT().GetByID(gomock.Any(), selfID).Return(&domain.User{ID: selfID}, nil)
	userRepo.EXPECT().ListDiscoverable(gomock.Any(), selfID).Return([]*domain.User{other}, nil)
	presence.EXPECT().
		GetMany(gomock.Any(), gomock.Any()).
		Return(map[uuid.UUID]domain.PresenceStatus{other.ID: domain.StatusOnline}, nil)

	uc := discovery.NewDiscoveryUseCase(userRepo, presence, nil, newTestLogger())
	router := browseRouter(handler.NewDiscoveryHandler(uc), selfID)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/discovery?skill=Guitar&role=teaches&page=1", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp discovery.BrowseResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(resp.Users) != 1 || resp.Users[0].DisplayName != "Alice" {
		t.Errorf("users = %+v, want just Alice", resp.Users)
	}
	if resp.Users[0].Status != domain.StatusOnline {
		t.Errorf("status = %q, want online", resp.Users[0].Status)
	}
}

func TestBrowseRejectsBadRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := discovery.NewDiscoveryUseCase(
		mock_repository.NewMockUserRepository(ctrl),
		mock_repository.NewMockPresenceStore(ctrl),
		nil, newTestLogger(),
	)
	router := browseRouter(handler.NewDiscoveryHandler(uc), uuid.New())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/discovery?role=mentor", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestBrowsePageOutOfRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mock_repository.NewMockUserRepository(ctrl)
	presence := mock_repository.NewMockPresenceStore(ctrl)

	selfID := uuid.New()
	userRepo.EXPECT().GetByID(gomock.Any(), selfID).Return(&domain.User{ID: selfID}, nil)
	userRepo.EXPECT().ListDiscoverable(gomock.Any(), selfID).Return(nil, nil)

	uc := discovery.NewDiscoveryUseCase(userRepo, presence, nil, newTestLogger())
	router := browseRouter(handler.NewDiscoveryHandler(uc), selfID)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/discovery?page=7", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestBrowseRequiresAuth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := discovery.NewDiscoveryUseCase(
		mock_repository.NewMockUserRepository(ctrl),
		mock_repository.NewMockPresenceStore(ctrl),
		nil, newTestLogger(),
	)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	authMiddleware := middleware.NewAuthMiddleware("0123456789abcdef0123456789abcdef")
	router.GET("/discovery", authMiddleware.RequireAuth(), handler.NewDiscoveryHandler(uc).Browse)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/discovery", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}
