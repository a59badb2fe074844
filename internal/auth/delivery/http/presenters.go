package http

import (
	"time"

	"task-assistant/internal/auth"
	"task-assistant/internal/model"
)

type signUpReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

func (r signUpReq) toInput() auth.SignUpInput {
	return auth.SignUpInput{Email: r.Email, Password: r.Password, Name: r.Name}
}

type signInReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r signInReq) toInput() auth.SignInInput {
	return auth.SignInInput{Email: r.Email, Password: r.Password}
}

type userResp struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type sessionResp struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

type authResp struct {
	Token string   `json:"token"`
	User  userResp `json:"user"`
}

type getSessionResp struct {
	User    userResp    `json:"user"`
	Session sessionResp `json:"session"`
}

type successResp struct {
	Success bool `json:"success"`
}

func (h *handler) newUserResp(u model.User) userResp {
	return userResp{ID: u.ID, Email: u.Email, Name: u.Name, CreatedAt: u.CreatedAt}
}

func (h *handler) newAuthResp(o auth.AuthOutput) authResp {
	return authResp{Token: o.Token, User: h.newUserResp(o.User)}
}

func (h *handler) newGetSessionResp(o auth.SessionOutput) getSessionResp {
	return getSessionResp{
		User: h.newUserResp(o.User),
		Session: sessionResp{
			ID:        o.Session.ID,
			UserID:    o.Session.UserID,
			ExpiresAt: o.Session.ExpiresAt,
		},
	}
}
