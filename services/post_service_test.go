package services

import (
	"testing"
	"time"

	"quill/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateDraft(t *testing.T) {
	db := setupTestDB(t)
	owner := createTestUser(t, db, "Jane Doe", "jane@x.com")
	svc := NewPostService(db)

	post, err := svc.CreateDraft(owner.ID)
	require.NoError(t, err)

	assert.NotZero(t, post.ID)
	assert.Equal(t, models.StatusDraft, post.Status)
	assert.Empty(t, post.Title)
	assert.Empty(t, post.Content)
	assert.Empty(t, post.Image)
	assert.Nil(t, post.PublishedOn)
	assert.Nil(t, post.TrashDate)
	assert.Equal(t, owner.ID, post.AuthorID)
}

func TestUpdateContentPartialPatch(t *testing.T) {
	db := setupTestDB(t)
	owner := createTestUser(t, db, "Jane Doe", "jane@x.com")
	svc := NewPostService(db)

	post, err := svc.CreateDraft(owner.ID)
	require.NoError(t, err)

	_, err = svc.UpdateContent(post.ID, owner.ID, &models.UpdatePostRequest{
		Title:   "First post",
		Content: "Hello world",
		Image:   "cover.png",
	})
	require.NoError(t, err)

	// An all-empty patch must leave every field untouched.
	updated, err := svc.UpdateContent(post.ID, owner.ID, &models.UpdatePostRequest{})
	require.NoError(t, err)
	assert.Equal(t, "First post", updated.Title)
	assert.Equal(t, "Hello world", updated.Content)
	assert.Equal(t, "cover.png", updated.Image)

	// A single-field patch must not disturb the others, and an empty string
	// can never clear a field.
	updated, err = svc.UpdateContent(post.ID, owner.ID, &models.UpdatePostRequest{Title: "Renamed"})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, "Hello world", updated.Content)
	assert.Equal(t, "cover.png", updated.Image)
}

func TestUpdateContentOwnership(t *testing.T) {
	db := setupTestDB(t)
	owner := createTestUser(t, db, "Jane Doe", "jane@x.com")
	other := createTestUser(t, db, "John Roe", "john@x.com")
	svc := NewPostService(db)

	post, err := svc.CreateDraft(owner.ID)
	require.NoError(t, err)

	_, err = svc.UpdateContent(post.ID, other.ID, &models.UpdatePostRequest{Title: "hijack"})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.UpdateContent(9999, owner.ID, &models.UpdatePostRequest{Title: "ghost"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateStatusPublish(t *testing.T) {
	db := setupTestDB(t)
	owner := createTestUser(t, db, "Jane Doe", "jane@x.com")
	svc := NewPostService(db)

	post, err := svc.CreateDraft(owner.ID)
	require.NoError(t, err)

	published, message, err := svc.UpdateStatus(post.ID, owner.ID, &models.UpdateStatusRequest{
		Status:  models.StatusPublished,
		Title:   "Launch",
		Content: "We shipped",
	})
	require.NoError(t, err)

	assert.Equal(t, "Post publish successfully", message)
	assert.Equal(t, models.StatusPublished, published.Status)
	require.NotNil(t, published.PublishedOn)
	assert.Nil(t, published.TrashDate)
	assert.Equal(t, "Launch", published.Title)
	assert.Equal(t, "We shipped", published.Content)
}

func TestUpdateStatusTrashAndBackToDraft(t *testing.T) {
	db := setupTestDB(t)
	owner := createTestUser(t, db, "Jane Doe", "jane@x.com")
	svc := NewPostService(db)

	post, err := svc.CreateDraft(owner.ID)
	require.NoError(t, err)

	_, _, err = svc.UpdateStatus(post.ID, owner.ID, &models.UpdateStatusRequest{Status: models.StatusPublished})
	require.NoError(t, err)

	trashed, message, err := svc.UpdateStatus(post.ID, owner.ID, &models.UpdateStatusRequest{
		Status:  models.StatusTrashed,
		Title:   "should be ignored",
		Content: "should be ignored",
	})
	require.NoError(t, err)

	assert.Equal(t, "Post saved in thrash", message)
	assert.Equal(t, models.StatusTrashed, trashed.Status)
	require.NotNil(t, trashed.TrashDate)
	assert.Nil(t, trashed.PublishedOn)
	// Trashing never touches content.
	assert.Empty(t, trashed.Title)
	assert.Empty(t, trashed.Content)

	draft, message, err := svc.UpdateStatus(post.ID, owner.ID, &models.UpdateStatusRequest{Status: models.StatusDraft})
	require.NoError(t, err)

	assert.Equal(t, "Post saved as draft", message)
	assert.Equal(t, models.StatusDraft, draft.Status)
	assert.Nil(t, draft.PublishedOn)
	assert.Nil(t, draft.TrashDate)
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	db := setupTestDB(t)
	owner := createTestUser(t, db, "Jane Doe", "jane@x.com")
	svc := NewPostService(db)

	post, err := svc.CreateDraft(owner.ID)
	require.NoError(t, err)

	for _, status := range []int{0, 4, -1, 99} {
		_, _, err := svc.UpdateStatus(post.ID, owner.ID, &models.UpdateStatusRequest{Status: status})
		assert.ErrorIs(t, err, ErrBadRequest, "status %d", status)
	}
}

func TestUpdateStatusOwnership(t *testing.T) {
	db := setupTestDB(t)
	owner := createTestUser(t, db, "Jane Doe", "jane@x.com")
	other := createTestUser(t, db, "John Roe", "john@x.com")
	svc := NewPostService(db)

	post, err := svc.CreateDraft(owner.ID)
	require.NoError(t, err)

	_, _, err = svc.UpdateStatus(post.ID, other.ID, &models.UpdateStatusRequest{Status: models.StatusPublished})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListForOwnerCountsAndPaging(t *testing.T) {
	db := setupTestDB(t)
	owner := createTestUser(t, db, "Jane Doe", "jane@x.com")
	other := createTestUser(t, db, "John Roe", "john@x.com")
	svc := NewPostService(db)

	base := time.Now().Add(-time.Hour)
	mkPost := func(authorID uint, status, i int) {
		post := &models.Post{
			Title:     "post",
			AuthorID:  authorID,
			Status:    status,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, db.Create(post).Error)
	}

	for i := 0; i < 8; i++ {
		mkPost(owner.ID, models.StatusPublished, i)
	}
	for i := 8; i < 13; i++ {
		mkPost(owner.ID, models.StatusDraft, i)
	}
	for i := 13; i < 15; i++ {
		mkPost(owner.ID, models.StatusTrashed, i)
	}
	// Another user's posts must not leak into the listing or the counts.
	mkPost(other.ID, models.StatusPublished, 20)

	posts, counts, err := svc.ListForOwner(owner.ID, 0, 0)
	require.NoError(t, err)

	require.NotNil(t, counts)
	assert.Equal(t, int64(8), counts.Publish)
	assert.Equal(t, int64(5), counts.Draft)
	assert.Equal(t, int64(2), counts.Thrash)
	assert.Equal(t, int64(15), counts.All)
	assert.Equal(t, counts.All, counts.Publish+counts.Draft+counts.Thrash)

	// Fixed page size of 12.
	assert.Len(t, posts, PageSize)

	// Ordered by status ascending, newest first within a status.
	for i := 1; i < len(posts); i++ {
		prev, cur := posts[i-1], posts[i]
		if prev.Status == cur.Status {
			assert.False(t, prev.CreatedAt.Before(cur.CreatedAt))
		} else {
			assert.Less(t, prev.Status, cur.Status)
		}
	}

	// Later pages skip the aggregate counts entirely.
	page2, counts2, err := svc.ListForOwner(owner.ID, 0, PageSize)
	require.NoError(t, err)
	assert.Nil(t, counts2)
	assert.Len(t, page2, 3)
}

func TestListForOwnerStatusFilter(t *testing.T) {
	db := setupTestDB(t)
	owner := createTestUser(t, db, "Jane Doe", "jane@x.com")
	svc := NewPostService(db)

	for _, status := range []int{models.StatusPublished, models.StatusDraft, models.StatusDraft, models.StatusTrashed} {
		require.NoError(t, db.Create(&models.Post{AuthorID: owner.ID, Status: status}).Error)
	}

	posts, _, err := svc.ListForOwner(owner.ID, models.StatusDraft, 0)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	for _, p := range posts {
		assert.Equal(t, models.StatusDraft, p.Status)
	}

	_, _, err = svc.ListForOwner(owner.ID, 4, 0)
	assert.ErrorIs(t, err, ErrBadRequest)
	_, _, err = svc.ListForOwner(owner.ID, -1, 0)
	assert.ErrorIs(t, err, ErrBadRequest)
}

func TestGetOwned(t *testing.T) {
	db := setupTestDB(t)
	owner := createTestUser(t, db, "Jane Doe", "jane@x.com")
	other := createTestUser(t, db, "John Roe", "john@x.com")
	svc := NewPostService(db)

	post, err := svc.CreateDraft(owner.ID)
	require.NoError(t, err)
	_, err = svc.UpdateContent(post.ID, owner.ID, &models.UpdatePostRequest{Title: "Mine", Content: "Body"})
	require.NoError(t, err)

	summary, err := svc.GetOwned(post.ID, owner.ID)
	require.NoError(t, err)
	require.NotNil(t, summary)
	assert.Equal(t, "Mine", summary.Title)
	assert.Equal(t, "Body", summary.Content)
	assert.Equal(t, models.StatusDraft, summary.Status)

	// A miss is not an error: the caller serves a null post with a 200.
	summary, err = svc.GetOwned(post.ID, other.ID)
	require.NoError(t, err)
	assert.Nil(t, summary)

	summary, err = svc.GetOwned(9999, owner.ID)
	require.NoError(t, err)
	assert.Nil(t, summary)
}

func TestDeleteOwned(t *testing.T) {
	db := setupTestDB(t)
	owner := createTestUser(t, db, "Jane Doe", "jane@x.com")
	other := createTestUser(t, db, "John Roe", "john@x.com")
	svc := NewPostService(db)

	post, err := svc.CreateDraft(owner.ID)
	require.NoError(t, err)

	// Deleting someone else's post succeeds silently and removes nothing.
	require.NoError(t, svc.DeleteOwned(post.ID, other.ID))
	var count int64
	db.Model(&models.Post{}).Count(&count)
	assert.Equal(t, int64(1), count)

	require.NoError(t, svc.DeleteOwned(post.ID, owner.ID))
	db.Model(&models.Post{}).Count(&count)
	assert.Equal(t, int64(0), count)

	// Repeat deletes stay quiet too.
	require.NoError(t, svc.DeleteOwned(post.ID, owner.ID))
}
