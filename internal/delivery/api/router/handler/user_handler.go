package handler

import (
	"context"

	"vidtube/internal/delivery/api/response"
	"vidtube/internal/domain/entity"
	"vidtube/internal/domain/service"
	"vidtube/internal/usecase"

	"github.com/labstack/echo/v4"
)

// UserHandler serves the caller's own account and channel views.
type UserHandler struct {
	uc usecase.UserUsecase
}

func NewUserHandler(uc usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

type changePasswordRequest struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=6,max=72"`
}

type updateAccountRequest struct {
	FullName string `json:"fullName" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
}

func (h *UserHandler) ChangePassword(c echo.Context) error {
	identity, err := caller(c)
	if err != nil {
		return err
	}
	var req changePasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.uc.ChangePassword(c.Request().Context(), identity.ID, &usecase.ChangePasswordInput{
		OldPassword: req.OldPassword,
		NewPassword: req.NewPassword,
	}); err != nil {
		return err
	}

	return response.OK(c, map[string]any{}, "Password changed successfully")
}

func (h *UserHandler) CurrentUser(c echo.Context) error {
	identity, err := caller(c)
	if err != nil {
		return err
	}

	current, err := h.uc.CurrentUser(c.Request().Context(), identity.ID)
	if err != nil {
		return err
	}

	return response.OK(c, current, "Current user fetched successfully")
}

func (h *UserHandler) UpdateAccount(c echo.Context) error {
	identity, err := caller(c)
	if err != nil {
		return err
	}
	var req updateAccountRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	updated, err := h.uc.UpdateAccount(c.Request().Context(), identity.ID, &usecase.UpdateAccountInput{
		FullName: req.FullName,
		Email:    req.Email,
	})
	if err != nil {
		return err
	}

	return response.OK(c, updated, "Account details updated successfully")
}

func (h *UserHandler) UpdateAvatar(c echo.Context) error {
	return h.updateImage(c, "avatar", h.uc.UpdateAvatar, "Avatar image updated successfully")
}

func (h *UserHandler) UpdateCoverImage(c echo.Context) error {
	return h.updateImage(c, "coverImage", h.uc.UpdateCoverImage, "Cover image updated successfully")
}

func (h *UserHandler) updateImage(
	c echo.Context,
	field string,
	update func(ctx context.Context, userID string, asset *service.Asset) (*entity.Identity, error),
	message string,
) error {
	identity, err := caller(c)
	if err != nil {
		return err
	}

	asset, closeAsset, err := formAsset(c, field, service.AssetImage, true)
	if err != nil {
		return err
	}
	defer closeAsset()

	updated, err := update(c.Request().Context(), identity.ID, asset)
	if err != nil {
		return err
	}

	return response.OK(c, updated, message)
}

func (h *UserHandler) ChannelProfile(c echo.Context) error {
	identity, err := caller(c)
	if err != nil {
		return err
	}

	profile, err := h.uc.ChannelProfile(c.Request().Context(), c.Param("username"), identity.ID)
	if err != nil {
		return err
	}

	return response.OK(c, profile, "User channel fetched successfully")
}

func (h *UserHandler) WatchHistory(c echo.Context) error {
	identity, err := caller(c)
	if err != nil {
		return err
	}

	history, err := h.uc.WatchHistory(c.Request().Context(), identity.ID)
	if err != nil {
		return err
	}

	return response.OK(c, history, "Watch history fetched successfully")
}

func (h *UserHandler) DeleteAccount(c echo.Context) error {
	identity, err := caller(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteAccount(c.Request().Context(), identity.ID); err != nil {
		return err
	}

	return response.OK(c, map[string]any{}, "Account deleted successfully")
}
