package handler

import (
	"time"

	"sugarrush/internal/domain/entity"
)

// userView is the public JSON shape of a user. The Google id is never exposed.
type userView struct {
	ID            string    `json:"id"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	Role          string    `json:"role"`
	PreferredName string    `json:"preferred_name"`
	PhoneNumber   string    `json:"phone_number"`
	DateCreated   time.Time `json:"date_created"`
}

func newUserView(u *entity.User) userView {
	return userView{
		ID:            u.ID,
		Username:      u.Username,
		Email:         u.Email,
		Role:          u.Role.String(),
		PreferredName: u.PreferredName,
		PhoneNumber:   u.PhoneNumber,
		DateCreated:   u.CreatedAt,
	}
}

func newUserViews(users []*entity.User) []userView {
	views := make([]userView, 0, len(users))
	for _, u := range users {
		views = append(views, newUserView(u))
	}

	return views
}

// sessionUserView is the user summary returned on login.
type sessionUserView struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

type loginView struct {
	Token string          `json:"token"`
	User  sessionUserView `json:"user"`
}
