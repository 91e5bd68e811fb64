package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"parchelector/internal/http-api/dto"
	"parchelector/internal/http-api/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockSocialService mocks the SocialService interface
type MockSocialService struct {
	mock.Mock
}

func (m *MockSocialService) FollowUser(followerID, targetID int64) (*dto.FollowResponse, error) {
	args := m.Called(followerID, targetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.FollowResponse), args.Error(1)
}

func (m *MockSocialService) UnfollowUser(followerID, targetID int64) error {
	args := m.Called(followerID, targetID)
	return args.Error(0)
}

func (m *MockSocialService) IsFollowingUser(followerID, targetID int64) (bool, error) {
	args := m.Called(followerID, targetID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSocialService) FollowAuthor(ctx context.Context, userID, authorID int64) error {
	args := m.Called(ctx, userID, authorID)
	return args.Error(0)
}

func (m *MockSocialService) UnfollowAuthor(userID, authorID int64) error {
	args := m.Called(userID, authorID)
	return args.Error(0)
}

func (m *MockSocialService) IsFollowingAuthor(userID, authorID int64) (bool, error) {
	args := m.Called(userID, authorID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSocialService) FollowStats(targetID, viewerID int64) (*dto.UserFollowStatsResponse, error) {
	args := m.Called(targetID, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.UserFollowStatsResponse), args.Error(1)
}

func (m *MockSocialService) GetFeed(userID int64, limit, offset int) (*dto.FeedResponse, error) {
	args := m.Called(userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.FeedResponse), args.Error(1)
}

// fakeAuth injects a caller identity without a real token.
func fakeAuth(userID int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", userID)
		c.Next()
	}
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestFollowUser_SelfFollowEnvelope(t *testing.T) {
	mockSocial := new(MockSocialService)
	h := NewSocialHandler(mockSocial, nil)
	router := setupRouter()
	router.POST("/social/follow/user", fakeAuth(7), h.FollowUser)

	mockSocial.On("FollowUser", int64(7), int64(7)).Return(nil, service.ErrSelfFollow)

	body, _ := json.Marshal(dto.FollowUserRequest{UserID: 7})
	req, _ := http.NewRequest("POST", "/social/follow/user", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ApiResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, dto.StatusError, resp.Status)
	assert.Equal(t, "cannot follow yourself", resp.Message)
}

func TestFollowUser_Created(t *testing.T) {
	mockSocial := new(MockSocialService)
	h := NewSocialHandler(mockSocial, nil)
	router := setupRouter()
	router.POST("/social/follow/user", fakeAuth(1), h.FollowUser)

	mockSocial.On("FollowUser", int64(1), int64(2)).Return(&dto.FollowResponse{
		FollowerID:       1,
		FollowerUsername: "alice",
		FollowedID:       2,
		FollowedUsername: "bob",
	}, nil)

	body, _ := json.Marshal(dto.FollowUserRequest{UserID: 2})
	req, _ := http.NewRequest("POST", "/social/follow/user", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.ApiResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, dto.StatusSuccess, resp.Status)
	mockSocial.AssertExpectations(t)
}

func TestFeed_PassesPagination(t *testing.T) {
	mockSocial := new(MockSocialService)
	h := NewSocialHandler(mockSocial, nil)
	router := setupRouter()
	router.GET("/social/feed", fakeAuth(1), h.Feed)

	mockSocial.On("GetFeed", int64(1), 10, 20).Return(&dto.FeedResponse{
		Items:   []dto.FeedItem{},
		Total:   0,
		Limit:   10,
		Offset:  20,
		HasMore: false,
	}, nil)

	req, _ := http.NewRequest("GET", "/social/feed?limit=10&offset=20", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSocial.AssertExpectations(t)
}

func TestUserStats_NotFound(t *testing.T) {
	mockSocial := new(MockSocialService)
	h := NewSocialHandler(mockSocial, nil)
	router := setupRouter()
	router.GET("/social/users/:userId/stats", fakeAuth(1), h.UserStats)

	mockSocial.On("FollowStats", int64(99), int64(1)).Return(nil, service.ErrUserNotFound)

	req, _ := http.NewRequest("GET", "/social/users/99/stats", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
