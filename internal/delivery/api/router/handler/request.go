// Package handler contains the HTTP handlers for the application.
package handler

import (
	"io"
	"mime/multipart"
	"path/filepath"
	"strconv"

	deliverycontext "vidtube/internal/delivery/context"
	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/domain/service"
	"vidtube/internal/errors"

	"github.com/labstack/echo/v4"
)

// bindAndValidate binds path, query and body, then runs the registered validator.
func bindAndValidate(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithMessage("invalid request payload"))
	}

	return c.Validate(dst)
}

// caller returns the identity set by the auth middleware.
func caller(c echo.Context) (*entity.Identity, error) {
	identity := deliverycontext.GetIdentity(c)
	if identity == nil {
		return nil, errors.WithStack(domainerrors.ErrUnauthorized)
	}

	return identity, nil
}

// pageParams reads page and limit. Absent values are zero; present ones must be integers >= 1.
func pageParams(c echo.Context) (page, limit int, err error) {
	if page, err = positiveQueryInt(c, "page"); err != nil {
		return 0, 0, err
	}
	if limit, err = positiveQueryInt(c, "limit"); err != nil {
		return 0, 0, err
	}

	return page, limit, nil
}

func positiveQueryInt(c echo.Context, name string) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, errors.WithStack(domainerrors.ErrInvalidPage.WithDetails([]domainerrors.FieldViolation{
			{Field: name, Rule: "gte", Message: name + " must be an integer of at least 1"},
		}))
	}

	return n, nil
}

// formAsset opens an uploaded file. The returned closer must be called once
// the asset has been consumed. A missing optional file yields a nil asset.
func formAsset(c echo.Context, field string, kind service.AssetKind, required bool) (*service.Asset, func(), error) {
	header, err := c.FormFile(field)
	if err != nil {
		if required {
			return nil, func() {}, errors.WithStack(domainerrors.ErrMissingFile.WithMessage(field + " file is required"))
		}

		return nil, func() {}, nil
	}

	file, err := header.Open()
	if err != nil {
		return nil, func() {}, errors.Wrap(domainerrors.ErrUploadFailed.WithMessage("cannot read "+field), err.Error())
	}

	return newAsset(header, file, kind), func() { _ = file.Close() }, nil
}

func newAsset(header *multipart.FileHeader, body io.Reader, kind service.AssetKind) *service.Asset {
	contentType := header.Header.Get(echo.HeaderContentType)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return &service.Asset{
		Kind:        kind,
		FileName:    filepath.Base(header.Filename),
		ContentType: contentType,
		Size:        header.Size,
		Body:        body,
	}
}
