package list_videos

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resilientmind/coaching-platform/internal/api/middleware"
	"github.com/resilientmind/coaching-platform/internal/service/content/models"
)

type fakeService struct {
	listedMembership *string
	listedAll        bool
}

func (f *fakeService) ListVideos(_ context.Context, req *models.ListVideosRequest) (*models.VideoListResponse, error) {
	f.listedMembership = &req.Membership
	return &models.VideoListResponse{}, nil
}

func (f *fakeService) ListAllVideos(_ context.Context) (*models.VideoListResponse, error) {
	f.listedAll = true
	return &models.VideoListResponse{}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// serve прогоняет запрос через Auth middleware, как в боевом роутере
func serve(svc *fakeService, req *http.Request) *httptest.ResponseRecorder {
	h := NewHandler(svc, nopLogger{})
	rec := httptest.NewRecorder()
	middleware.Auth(http.HandlerFunc(h.Handle)).ServeHTTP(rec, req)
	return rec
}

func TestHandle_MembershipComesFromIdentityNotQuery(t *testing.T) {
	svc := &fakeService{}

	req := httptest.NewRequest(http.MethodGet, "/videos?membership=premium", nil)
	req.Header.Set("X-User-ID", uuid.NewString())
	req.Header.Set("X-User-Membership", "basic")

	rec := serve(svc, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.listedMembership)
	assert.Equal(t, "basic", *svc.listedMembership)
}

func TestHandle_AdminSeesFullLibrary(t *testing.T) {
	svc := &fakeService{}

	req := httptest.NewRequest(http.MethodGet, "/videos", nil)
	req.Header.Set("X-User-ID", uuid.NewString())
	req.Header.Set("X-User-Role", "admin")

	rec := serve(svc, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, svc.listedAll)
	assert.Nil(t, svc.listedMembership)
}

func TestHandle_AdminPreviewsTierViaQuery(t *testing.T) {
	svc := &fakeService{}

	req := httptest.NewRequest(http.MethodGet, "/videos?membership=premium", nil)
	req.Header.Set("X-User-ID", uuid.NewString())
	req.Header.Set("X-User-Role", "admin")

	rec := serve(svc, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.listedMembership)
	assert.Equal(t, "premium", *svc.listedMembership)
	assert.False(t, svc.listedAll)
}

func TestHandle_Unauthenticated(t *testing.T) {
	svc := &fakeService{}

	req := httptest.NewRequest(http.MethodGet, "/videos", nil)
	rec := serve(svc, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, svc.listedMembership)
}
