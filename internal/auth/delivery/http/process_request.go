package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func (h *handler) processSignUpReq(c *gin.Context) (signUpReq, error) {
	var req signUpReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errWrongBody
	}
	return req, nil
}

func (h *handler) processSignInReq(c *gin.Context) (signInReq, error) {
	var req signInReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errWrongBody
	}
	return req, nil
}

func (h *handler) setSessionCookie(c *gin.Context, token string, expiresAt time.Time) {
	c.SetSameSite(http.SameSiteLaxMode)
	maxAge := int(time.Until(expiresAt).Seconds())
	c.SetCookie(h.cookie.CookieName, token, maxAge, "/", h.cookie.CookieDomain, h.cookie.CookieSecure, true)
}

func (h *handler) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.CookieName, "", -1, "/", h.cookie.CookieDomain, h.cookie.CookieSecure, true)
}
