package twitters

import "time"

// CreateTwitterRequest is the payload for posting a new twitter.
type CreateTwitterRequest struct {
	Content    string `json:"content" validate:"required"`
	Visibility string `json:"visibility"`
}

// UpdateTwitterRequest carries the editable fields of a twitter. Absent
// fields are left untouched.
type UpdateTwitterRequest struct {
	Content    *string `json:"content"`
	Visibility *string `json:"visibility"`
	Likes      *int64  `json:"likes" validate:"omitempty,min=0"`
}

// TwitterResponse is the wire form of a single twitter.
type TwitterResponse struct {
	ID         int64  `json:"id"`
	Content    string `json:"content"`
	Author     string `json:"author"`
	CreatedAt  string `json:"created_at"`
	Visibility string `json:"visibility"`
	Likes      int64  `json:"likes"`
	Edited     bool   `json:"edited"`
}

// TwitterListResponse wraps the author's own timeline.
type TwitterListResponse struct {
	Twitters []TwitterResponse `json:"twitters"`
}

func toResponse(t *Twitter) TwitterResponse {
	return TwitterResponse{
		ID:         t.ID,
		Content:    t.Content,
		Author:     t.AuthorUsername,
		CreatedAt:  t.CreatedAt.Format(time.RFC3339),
		Visibility: t.Visibility.DisplayValue(),
		Likes:      t.Likes,
		Edited:     t.IsEdited(),
	}
}
