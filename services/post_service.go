package services

import (
	"errors"
	"time"

	"quill/models"

	"gorm.io/gorm"
)

// PageSize is the fixed page length for post listings.
const PageSize = 12

type PostService struct {
	db *gorm.DB
}

func NewPostService(db *gorm.DB) *PostService {
	return &PostService{db: db}
}

// CreateDraft inserts an empty draft owned by the given user. Authors start
// from a blank post and fill it in through content patches.
func (s *PostService) CreateDraft(authorID uint) (*models.Post, error) {
	post := &models.Post{
		Title:    "",
		Content:  "",
		Image:    "",
		AuthorID: authorID,
		Status:   models.StatusDraft,
	}

	if err := s.db.Create(post).Error; err != nil {
		return nil, err
	}

	return post, nil
}

// getOwnedPost loads a post only if it belongs to the author. Existence and
// ownership collapse into one filtered lookup, so a foreign post looks the
// same as a missing one.
func (s *PostService) getOwnedPost(postID, authorID uint) (*models.Post, error) {
	var post models.Post
	err := s.db.Where("id = ? AND author_id = ?", postID, authorID).First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

// applyPatch overwrites only the fields the request actually carries. An
// empty string is treated as "not provided", never as "clear the field".
func applyPatch(post *models.Post, req *models.UpdatePostRequest) {
	if req.Title != "" {
		post.Title = req.Title
	}
	if req.Content != "" {
		post.Content = req.Content
	}
	if req.Image != "" {
		post.Image = req.Image
	}
}

func (s *PostService) UpdateContent(postID, authorID uint, req *models.UpdatePostRequest) (*models.Post, error) {
	post, err := s.getOwnedPost(postID, authorID)
	if err != nil {
		return nil, err
	}

	applyPatch(post, req)

	if err := s.db.Save(post).Error; err != nil {
		return nil, err
	}

	return post, nil
}

// UpdateStatus transitions a post between draft, published and trashed,
// keeping the timestamp pair consistent with the target status: publishing
// stamps PublishedOn, trashing stamps TrashDate, and each transition clears
// the other. Publishing may carry a content patch along; the other two leave
// content untouched.
func (s *PostService) UpdateStatus(postID, authorID uint, req *models.UpdateStatusRequest) (*models.Post, string, error) {
	if req.Status != models.StatusPublished &&
		req.Status != models.StatusDraft &&
		req.Status != models.StatusTrashed {
		return nil, "", ErrBadRequest
	}

	post, err := s.getOwnedPost(postID, authorID)
	if err != nil {
		return nil, "", err
	}

	now := time.Now()
	switch req.Status {
	case models.StatusPublished:
		post.Status = models.StatusPublished
		post.PublishedOn = &now
		post.TrashDate = nil
		applyPatch(post, &models.UpdatePostRequest{Title: req.Title, Content: req.Content, Image: req.Image})
	case models.StatusTrashed:
		post.Status = models.StatusTrashed
		post.PublishedOn = nil
		post.TrashDate = &now
	default:
		post.Status = models.StatusDraft
		post.PublishedOn = nil
		post.TrashDate = nil
	}

	if err := s.db.Save(post).Error; err != nil {
		return nil, "", err
	}

	var message string
	switch req.Status {
	case models.StatusPublished:
		message = "Post publish successfully"
	case models.StatusDraft:
		message = "Post saved as draft"
	case models.StatusTrashed:
		message = "Post saved in thrash"
	}

	return post, message, nil
}

// ListForOwner pages through a user's posts, optionally narrowed to one
// status (0 means all). The per-status counts are aggregated only for the
// first page; later pages skip the extra query and return no counts at all.
func (s *PostService) ListForOwner(authorID uint, status, skip int) ([]models.Post, *models.StatusCount, error) {
	if status < 0 || status > 3 {
		return nil, nil, ErrBadRequest
	}

	var counts *models.StatusCount
	if skip == 0 {
		var rows []struct {
			Status int
			Count  int64
		}
		err := s.db.Model(&models.Post{}).
			Select("status, count(*) as count").
			Where("author_id = ?", authorID).
			Group("status").
			Scan(&rows).Error
		if err != nil {
			return nil, nil, err
		}

		counts = &models.StatusCount{}
		for _, row := range rows {
			switch row.Status {
			case models.StatusPublished:
				counts.Publish = row.Count
			case models.StatusDraft:
				counts.Draft = row.Count
			case models.StatusTrashed:
				counts.Thrash = row.Count
			}
		}
		counts.All = counts.Publish + counts.Draft + counts.Thrash
	}

	query := s.db.Where("author_id = ?", authorID)
	if status > 0 {
		query = query.Where("status = ?", status)
	}

	var posts []models.Post
	err := query.
		Order("status ASC").
		Order("created_at DESC").
		Offset(skip).
		Limit(PageSize).
		Find(&posts).Error
	if err != nil {
		return nil, nil, err
	}

	return posts, counts, nil
}

// GetOwned returns the editor projection of a post, or nil when the post is
// missing or foreign. The caller still answers 200 in that case; the nil
// body stands in for "nothing to edit".
func (s *PostService) GetOwned(postID, authorID uint) (*models.PostSummary, error) {
	var summary models.PostSummary
	err := s.db.Model(&models.Post{}).
		Select("id, title, content, image, status").
		Where("id = ? AND author_id = ?", postID, authorID).
		First(&summary).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &summary, nil
}

// DeleteOwned removes a post if the author owns it. Deleting a missing or
// foreign post is a silent no-op; the operation reports success either way.
func (s *PostService) DeleteOwned(postID, authorID uint) error {
	return s.db.Where("id = ? AND author_id = ?", postID, authorID).
		Delete(&models.Post{}).Error
}
