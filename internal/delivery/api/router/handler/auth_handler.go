package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"vidtube/config"
	apimiddleware "vidtube/internal/delivery/api/middleware"
	"vidtube/internal/delivery/api/response"
	deliverycontext "vidtube/internal/delivery/context"
	"vidtube/internal/domain/entity"
	"vidtube/internal/domain/service"
	"vidtube/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AuthHandler serves signup, signin, logout and token refresh.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	cfg    *config.Config
	logger *slog.Logger
}

func NewAuthHandler(uc usecase.AuthUsecase, cfg *config.Config, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, cfg: cfg, logger: logger}
}

type signupRequest struct {
	FullName string `form:"fullName" validate:"required,max=100"`
	Username string `form:"username" validate:"required,min=3,max=30"`
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required,min=6,max=72"`
}

type signinRequest struct {
	Username string `json:"username" validate:"required_without=Email"`
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password" validate:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type signinResponse struct {
	User         *entity.Identity `json:"user"`
	AccessToken  string           `json:"accessToken"`
	RefreshToken string           `json:"refreshToken"`
}

// Signup handles the multipart registration form.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	avatar, closeAvatar, err := formAsset(c, "avatar", service.AssetImage, true)
	if err != nil {
		return err
	}
	defer closeAvatar()

	cover, closeCover, err := formAsset(c, "coverImage", service.AssetImage, false)
	if err != nil {
		return err
	}
	defer closeCover()

	user, err := h.uc.Signup(c.Request().Context(), &usecase.SignupInput{
		FullName:   req.FullName,
		Username:   req.Username,
		Email:      req.Email,
		Password:   req.Password,
		Avatar:     avatar,
		CoverImage: cover,
	})
	if err != nil {
		return err
	}

	return response.Created(c, user, "User registered successfully")
}

func (h *AuthHandler) Signin(c echo.Context) error {
	var req signinRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	out, err := h.uc.Signin(c.Request().Context(), &usecase.SigninInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	h.setTokenCookies(c, out.Tokens)

	return response.OK(c, signinResponse{
		User:         out.User,
		AccessToken:  out.Tokens.AccessToken,
		RefreshToken: out.Tokens.RefreshToken,
	}, "User logged in successfully")
}

func (h *AuthHandler) Logout(c echo.Context) error {
	identity, err := caller(c)
	if err != nil {
		return err
	}

	if err := h.uc.Logout(c.Request().Context(), identity.ID); err != nil {
		return err
	}

	h.clearTokenCookies(c)

	return response.OK(c, map[string]any{}, "User logged out successfully")
}

// RefreshToken takes the token from the cookie, falling back to the JSON body.
func (h *AuthHandler) RefreshToken(c echo.Context) error {
	token := ""
	if cookie, err := c.Cookie(apimiddleware.RefreshTokenCookie); err == nil {
		token = cookie.Value
	}
	if token == "" {
		var req refreshRequest
		if err := c.Bind(&req); err == nil {
			token = strings.TrimSpace(req.RefreshToken)
		}
	}

	pair, err := h.uc.RefreshToken(c.Request().Context(), token)
	if err != nil {
		return err
	}
	deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Debug("Token pair rotated")

	h.setTokenCookies(c, *pair)

	return response.OK(c, pair, "Access token refreshed")
}

func (h *AuthHandler) setTokenCookies(c echo.Context, pair entity.TokenPair) {
	c.SetCookie(h.cookie(apimiddleware.AccessTokenCookie, pair.AccessToken, h.cfg.Token.AccessTTL))
	c.SetCookie(h.cookie(apimiddleware.RefreshTokenCookie, pair.RefreshToken, h.cfg.Token.RefreshTTL))
}

func (h *AuthHandler) clearTokenCookies(c echo.Context) {
	for _, name := range []string{apimiddleware.AccessTokenCookie, apimiddleware.RefreshTokenCookie} {
		cookie := h.cookie(name, "", 0)
		cookie.MaxAge = -1
		cookie.Expires = time.Unix(0, 0)
		c.SetCookie(cookie)
	}
}

func (h *AuthHandler) cookie(name, value string, ttl time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Domain:   h.cfg.Cookie.Domain,
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   h.cfg.Cookie.Secure,
		SameSite: sameSite(h.cfg.Cookie.SameSite),
	}
}

func sameSite(mode string) http.SameSite {
	switch strings.ToLower(mode) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
