// MentorHive | 2026
// service_test.go

package blog

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mentorhive/backend/internal/core"
	"github.com/mentorhive/backend/internal/user"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) Create(ctx context.Context, blog *Blog) error {
	args := m.Called(ctx, blog)
	return args.Error(0)
}

func (m *mockRepository) GetByID(
	ctx context.Context,
	id string,
) (*Blog, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Blog), args.Error(1)
}

func (m *mockRepository) Update(ctx context.Context, blog *Blog) error {
	args := m.Called(ctx, blog)
	return args.Error(0)
}

func (m *mockRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockRepository) IncrementViews(
	ctx context.Context,
	id string,
) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

func (m *mockRepository) IncrementLikes(
	ctx context.Context,
	id string,
) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

func (m *mockRepository) List(
	ctx context.Context,
	params ListBlogsParams,
) ([]Blog, int, error) {
	args := m.Called(ctx, params)
	return args.Get(0).([]Blog), args.Int(1), args.Error(2)
}

type mockUserGetter struct {
	mock.Mock
}

func (m *mockUserGetter) GetUser(
	ctx context.Context,
	id string,
) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func longContent(words int) string {
	return strings.TrimSpace(strings.Repeat("word ", words))
}

func TestEstimateReadTime(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{"empty", "", 1},
		{"short", "just a few words here", 1},
		{"exactly one unit", longContent(200), 1},
		{"just over one unit", longContent(201), 2},
		{"several units", longContent(450), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, estimateReadTime(tt.content))
		})
	}
}

func TestCreateBlogRequiresApprovedMentor(t *testing.T) {
	repo := new(mockRepository)
	users := new(mockUserGetter)
	svc := NewService(repo, users)
	ctx := context.Background()

	users.On("GetUser", ctx, "mentor-1").Return(&user.User{
		ID:               "mentor-1",
		Role:             user.RoleMentor,
		IsMentorApproved: false,
	}, nil)

	_, err := svc.CreateBlog(ctx, "mentor-1", CreateBlogRequest{
		Title:   "Unapproved musings",
		Content: longContent(60),
	})

	assert.ErrorIs(t, err, ErrMentorNotApproved)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateBlogRejectsJuniors(t *testing.T) {
	repo := new(mockRepository)
	users := new(mockUserGetter)
	svc := NewService(repo, users)
	ctx := context.Background()

	users.On("GetUser", ctx, "junior-1").Return(&user.User{
		ID:   "junior-1",
		Role: user.RoleJunior,
	}, nil)

	_, err := svc.CreateBlog(ctx, "junior-1", CreateBlogRequest{
		Title:   "Can juniors blog?",
		Content: longContent(60),
	})

	assert.ErrorIs(t, err, ErrMentorNotApproved)
}

func TestCreateBlogDerivesReadTime(t *testing.T) {
	repo := new(mockRepository)
	users := new(mockUserGetter)
	svc := NewService(repo, users)
	ctx := context.Background()

	users.On("GetUser", ctx, "mentor-1").Return(&user.User{
		ID:               "mentor-1",
		Role:             user.RoleMentor,
		IsMentorApproved: true,
	}, nil)
	repo.On("Create", ctx, mock.AnythingOfType("*blog.Blog")).Return(nil)

	blog, err := svc.CreateBlog(ctx, "mentor-1", CreateBlogRequest{
		Title:   "Reading pace matters",
		Content: longContent(450),
	})
	require.NoError(t, err)

	assert.Equal(t, 3, blog.ReadTime)
	assert.False(t, blog.IsPublished)
}

func TestCreateBlogHonorsExplicitReadTime(t *testing.T) {
	repo := new(mockRepository)
	users := new(mockUserGetter)
	svc := NewService(repo, users)
	ctx := context.Background()

	users.On("GetUser", ctx, "mentor-1").Return(&user.User{
		ID:               "mentor-1",
		Role:             user.RoleMentor,
		IsMentorApproved: true,
	}, nil)
	repo.On("Create", ctx, mock.AnythingOfType("*blog.Blog")).Return(nil)

	readTime := 10
	blog, err := svc.CreateBlog(ctx, "mentor-1", CreateBlogRequest{
		Title:    "Slow read",
		Content:  longContent(100),
		ReadTime: &readTime,
	})
	require.NoError(t, err)

	assert.Equal(t, 10, blog.ReadTime)
}

func TestUpdateBlogRecomputesReadTimeOnContentChange(t *testing.T) {
	repo := new(mockRepository)
	users := new(mockUserGetter)
	svc := NewService(repo, users)
	ctx := context.Background()

	repo.On("GetByID", ctx, "blog-1").Return(&Blog{
		ID:       "blog-1",
		AuthorID: "mentor-1",
		Content:  longContent(100),
		ReadTime: 1,
	}, nil)
	repo.On("Update", ctx, mock.AnythingOfType("*blog.Blog")).Return(nil)

	newContent := longContent(800)
	blog, err := svc.UpdateBlog(ctx, "mentor-1", user.RoleMentor, "blog-1",
		UpdateBlogRequest{Content: &newContent})
	require.NoError(t, err)

	assert.Equal(t, 4, blog.ReadTime)
}

func TestUpdateBlogByNonAuthor(t *testing.T) {
	repo := new(mockRepository)
	users := new(mockUserGetter)
	svc := NewService(repo, users)
	ctx := context.Background()

	repo.On("GetByID", ctx, "blog-1").Return(&Blog{
		ID:       "blog-1",
		AuthorID: "mentor-1",
	}, nil)

	title := "hijacked"
	_, err := svc.UpdateBlog(ctx, "intruder", user.RoleMentor, "blog-1",
		UpdateBlogRequest{Title: &title})

	assert.ErrorIs(t, err, core.ErrForbidden)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestGetBlogIncrementsViews(t *testing.T) {
	repo := new(mockRepository)
	users := new(mockUserGetter)
	svc := NewService(repo, users)
	ctx := context.Background()

	repo.On("GetByID", ctx, "blog-1").Return(&Blog{
		ID:    "blog-1",
		Views: 41,
	}, nil)
	repo.On("IncrementViews", ctx, "blog-1").Return(42, nil)

	blog, err := svc.GetBlog(ctx, "blog-1")
	require.NoError(t, err)

	assert.Equal(t, 42, blog.Views)
}

func TestListBlogsHidesDraftsFromStrangers(t *testing.T) {
	repo := new(mockRepository)
	users := new(mockUserGetter)
	svc := NewService(repo, users)
	ctx := context.Background()

	repo.On("List", ctx, mock.MatchedBy(func(p ListBlogsParams) bool {
		return !p.IncludeUnpublished
	})).Return([]Blog{}, 0, nil)

	_, _, err := svc.ListBlogs(ctx, "stranger", user.RoleJunior,
		ListBlogsParams{
			AuthorID:           "mentor-1",
			IncludeUnpublished: true,
		})
	require.NoError(t, err)

	repo.AssertExpectations(t)
}

func TestListBlogsKeepsDraftsForOwner(t *testing.T) {
	repo := new(mockRepository)
	users := new(mockUserGetter)
	svc := NewService(repo, users)
	ctx := context.Background()

	repo.On("List", ctx, mock.MatchedBy(func(p ListBlogsParams) bool {
		return p.IncludeUnpublished
	})).Return([]Blog{}, 0, nil)

	_, _, err := svc.ListBlogs(ctx, "mentor-1", user.RoleMentor,
		ListBlogsParams{
			AuthorID:           "mentor-1",
			IncludeUnpublished: true,
		})
	require.NoError(t, err)

	repo.AssertExpectations(t)
}
