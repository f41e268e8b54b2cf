package handler

import (
	"net/http"
	"net/url"
	"strconv"

	domainerrors "planner/internal/domain/errors"
	"planner/internal/domain/service"
	"planner/internal/errors"

	"github.com/labstack/echo/v4"
)

const photoCacheControl = "public, max-age=86400"

// PhotoHandler serves uploaded event photos from the photo bucket.
type PhotoHandler struct {
	photos service.PhotoReader
}

// NewPhotoHandler is the constructor for PhotoHandler, injected by Fx.
func NewPhotoHandler(photos service.PhotoReader) *PhotoHandler {
	return &PhotoHandler{photos: photos}
}

// Serve streams the photo stored under the wildcard path.
func (h *PhotoHandler) Serve(c echo.Context) error {
	key, err := url.PathUnescape(c.Param("*"))
	if err != nil || key == "" {
		return domainerrors.ErrPhotoNotFound
	}

	obj, err := h.photos.Open(c.Request().Context(), key)
	if err != nil {
		return errors.WithStack(err)
	}
	defer obj.Body.Close()

	header := c.Response().Header()
	header.Set(echo.HeaderContentLength, strconv.FormatInt(obj.Size, 10))
	header.Set("Cache-Control", photoCacheControl)

	return c.Stream(http.StatusOK, obj.ContentType, obj.Body)
}
