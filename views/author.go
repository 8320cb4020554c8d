package views

import (
	"go.uber.org/zap"

	"github.com/cppla/huxiang/models"
	"github.com/cppla/huxiang/utils"
)

// DeletedUsername is shown for authors whose account row no longer exists.
const DeletedUsername = "[deleted]"

// AuthorSummary is the author block of listings and comments.
type AuthorSummary struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
	Missing  bool   `json:"missing,omitempty"`
}

// AuthorProfile is the author block of a post detail.
type AuthorProfile struct {
	AuthorSummary
	Bio string `json:"bio"`
}

// NewAuthorSummary projects u. A nil user yields a placeholder flagged as missing.
func NewAuthorSummary(authorID uint, u *models.User) AuthorSummary {
	if u == nil || u.ID == 0 {
		utils.Logger.Warn("author reference points to a missing user", zap.Uint("author_id", authorID))
		return AuthorSummary{ID: authorID, Username: DeletedUsername, Missing: true}
	}
	return AuthorSummary{ID: u.ID, Username: u.Username, Avatar: u.Avatar}
}

// NewAuthorProfile projects u including the bio.
func NewAuthorProfile(authorID uint, u *models.User) AuthorProfile {
	p := AuthorProfile{AuthorSummary: NewAuthorSummary(authorID, u)}
	if u != nil {
		p.Bio = u.Bio
	}
	return p
}

// UserView is the account representation returned by auth endpoints.
type UserView struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Bio       string `json:"bio"`
	Avatar    string `json:"avatar"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

// NewUserView projects an account.
func NewUserView(u *models.User) UserView {
	return UserView{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Bio:       u.Bio,
		Avatar:    u.Avatar,
		Role:      u.Role,
		CreatedAt: FormatTime(u.CreatedAt),
	}
}
