package twitters

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simple-twitter/simple-twitter/internal/identity"
	"github.com/simple-twitter/simple-twitter/internal/shared"
)

type stubRepo struct {
	twitters map[int64]*Twitter
	nextID   int64
	deleted  []int64
}

func newStubRepo() *stubRepo {
	return &stubRepo{twitters: make(map[int64]*Twitter), nextID: 1}
}

func (r *stubRepo) Create(_ context.Context, twitter *Twitter) error {
	twitter.ID = r.nextID
	r.nextID++
	copied := *twitter
	r.twitters[twitter.ID] = &copied
	return nil
}

func (r *stubRepo) FindByID(_ context.Context, id int64) (*Twitter, error) {
	twitter, ok := r.twitters[id]
	if !ok {
		return nil, shared.NotFound("Twitter not found")
	}
	copied := *twitter
	return &copied, nil
}

func (r *stubRepo) FindAllByAuthor(_ context.Context, authorID uuid.UUID) ([]*Twitter, error) {
	var found []*Twitter
	for _, twitter := range r.twitters {
		if twitter.AuthorID == authorID {
			copied := *twitter
			found = append(found, &copied)
		}
	}
	return found, nil
}

func (r *stubRepo) Update(_ context.Context, twitter *Twitter) error {
	if _, ok := r.twitters[twitter.ID]; !ok {
		return shared.NotFound("Twitter not found")
	}
	copied := *twitter
	r.twitters[twitter.ID] = &copied
	return nil
}

func (r *stubRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.twitters[id]; !ok {
		return shared.NotFound("Twitter not found")
	}
	delete(r.twitters, id)
	r.deleted = append(r.deleted, id)
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestService(repo RepositoryPort) *Service {
	svc := NewService(repo, discardLogger())
	svc.now = func() time.Time { return time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC) }
	return svc
}

func seed(t *testing.T, repo *stubRepo, owner *identity.Principal, visibility Visibility) *Twitter {
	t.Helper()
	now := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	twitter := &Twitter{
		Content:        "hello world",
		AuthorID:       owner.UserID,
		AuthorUsername: owner.Subject,
		Visibility:     visibility,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	require.NoError(t, repo.Create(context.Background(), twitter))
	return twitter
}

func principal(username string) *identity.Principal {
	return identity.NewPrincipal(uuid.New(), username, []string{"USER"})
}

func TestCreateDefaultsToPublicWithZeroLikes(t *testing.T) {
	repo := newStubRepo()
	svc := newTestService(repo)
	owner := principal("alice")

	response, err := svc.Create(context.Background(), owner, CreateTwitterRequest{Content: "first post"})
	require.NoError(t, err)

	assert.Equal(t, "first post", response.Content)
	assert.Equal(t, "alice", response.Author)
	assert.Equal(t, "public", response.Visibility)
	assert.Zero(t, response.Likes)
	assert.False(t, response.Edited)
}

func TestCreateWithExplicitVisibility(t *testing.T) {
	repo := newStubRepo()
	svc := newTestService(repo)

	response, err := svc.Create(context.Background(), principal("alice"), CreateTwitterRequest{
		Content:    "just for me",
		Visibility: "private",
	})
	require.NoError(t, err)
	assert.Equal(t, "private", response.Visibility)
}

func TestCreateRejectsUnknownVisibility(t *testing.T) {
	svc := newTestService(newStubRepo())

	_, err := svc.Create(context.Background(), principal("alice"), CreateTwitterRequest{
		Content:    "oops",
		Visibility: "shared",
	})
	require.ErrorIs(t, err, shared.ErrInvalidArgument)
}

func TestListReturnsOnlyOwnTwitters(t *testing.T) {
	repo := newStubRepo()
	svc := newTestService(repo)
	alice := principal("alice")
	bob := principal("bob")
	seed(t, repo, alice, VisibilityPublic)
	seed(t, repo, alice, VisibilityPrivate)
	seed(t, repo, bob, VisibilityPublic)

	response, err := svc.List(context.Background(), alice)
	require.NoError(t, err)
	require.Len(t, response.Twitters, 2)
	for _, twitter := range response.Twitters {
		assert.Equal(t, "alice", twitter.Author)
	}
}

func TestGetPublicTwitterVisibleToAnyone(t *testing.T) {
	repo := newStubRepo()
	svc := newTestService(repo)
	alice := principal("alice")
	twitter := seed(t, repo, alice, VisibilityPublic)

	response, err := svc.Get(context.Background(), principal("bob"), twitter.ID)
	require.NoError(t, err)
	assert.Equal(t, twitter.ID, response.ID)
}

func TestGetPrivateTwitterHiddenFromOthers(t *testing.T) {
	repo := newStubRepo()
	svc := newTestService(repo)
	alice := principal("alice")
	twitter := seed(t, repo, alice, VisibilityPrivate)

	_, err := svc.Get(context.Background(), principal("bob"), twitter.ID)
	require.ErrorIs(t, err, shared.ErrPermissionDenied)
	assert.Equal(t, "User does not have permission to view this twitter", err.Error())

	response, err := svc.Get(context.Background(), alice, twitter.ID)
	require.NoError(t, err)
	assert.Equal(t, twitter.ID, response.ID)
}

func TestGetUnknownTwitter(t *testing.T) {
	svc := newTestService(newStubRepo())

	_, err := svc.Get(context.Background(), principal("alice"), 999)
	require.ErrorIs(t, err, shared.ErrNotFound)
	assert.Equal(t, "Twitter not found", err.Error())
}

func TestUpdateByOwnerMarksEdited(t *testing.T) {
	repo := newStubRepo()
	svc := newTestService(repo)
	alice := principal("alice")
	twitter := seed(t, repo, alice, VisibilityPublic)

	content := "edited content"
	visibility := "private"
	likes := int64(5)
	response, err := svc.Update(context.Background(), alice, twitter.ID, UpdateTwitterRequest{
		Content:    &content,
		Visibility: &visibility,
		Likes:      &likes,
	})
	require.NoError(t, err)

	assert.Equal(t, "edited content", response.Content)
	assert.Equal(t, "private", response.Visibility)
	assert.Equal(t, int64(5), response.Likes)
	assert.True(t, response.Edited)
}

func TestUpdateDeniedForNonOwnerEvenWhenPublic(t *testing.T) {
	repo := newStubRepo()
	svc := newTestService(repo)
	twitter := seed(t, repo, principal("alice"), VisibilityPublic)

	content := "hijack"
	_, err := svc.Update(context.Background(), principal("bob"), twitter.ID, UpdateTwitterRequest{Content: &content})
	require.ErrorIs(t, err, shared.ErrPermissionDenied)
	assert.Equal(t, "User does not have permission to update this twitter", err.Error())

	unchanged, findErr := repo.FindByID(context.Background(), twitter.ID)
	require.NoError(t, findErr)
	assert.Equal(t, "hello world", unchanged.Content)
}

func TestUpdateRejectsInvalidVisibility(t *testing.T) {
	repo := newStubRepo()
	svc := newTestService(repo)
	alice := principal("alice")
	twitter := seed(t, repo, alice, VisibilityPublic)

	visibility := "restricted"
	_, err := svc.Update(context.Background(), alice, twitter.ID, UpdateTwitterRequest{Visibility: &visibility})
	require.ErrorIs(t, err, shared.ErrInvalidArgument)
}

func TestDeleteByOwner(t *testing.T) {
	repo := newStubRepo()
	svc := newTestService(repo)
	alice := principal("alice")
	twitter := seed(t, repo, alice, VisibilityPrivate)

	require.NoError(t, svc.Delete(context.Background(), alice, twitter.ID))
	assert.Equal(t, []int64{twitter.ID}, repo.deleted)
}

func TestDeleteDeniedForNonOwner(t *testing.T) {
	repo := newStubRepo()
	svc := newTestService(repo)
	twitter := seed(t, repo, principal("alice"), VisibilityPublic)

	err := svc.Delete(context.Background(), principal("bob"), twitter.ID)
	require.ErrorIs(t, err, shared.ErrPermissionDenied)
	assert.Equal(t, "User does not have permission to delete this twitter", err.Error())
	assert.Empty(t, repo.deleted)
}
