package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khauvukhanh/web-clot/internal/http/middleware"
	"github.com/khauvukhanh/web-clot/internal/shared/apperr"
	"github.com/khauvukhanh/web-clot/internal/storage"
)

// UploadsHandler stores product images and hands the resulting public
// URL back to the form on the client side.
type UploadsHandler struct {
	Store storage.Storage
}

func NewUploadsHandler(store storage.Storage) *UploadsHandler {
	return &UploadsHandler{Store: store}
}

func (h *UploadsHandler) Post(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		middleware.Fail(c, apperr.InvalidErr("image file is required", nil))
		return
	}
	if file.Size > storage.MaxUploadSize {
		middleware.Fail(c, apperr.InvalidErr("image exceeds the 5MB upload limit", nil))
		return
	}

	src, err := file.Open()
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	defer src.Close()

	res, err := h.Store.Put(c.Request.Context(), src, storage.PutInput{
		Filename:    file.Filename,
		ContentType: file.Header.Get("Content-Type"),
		Size:        file.Size,
	})
	if err != nil {
		if errors.Is(err, storage.ErrUnsupportedType) {
			middleware.Fail(c, apperr.InvalidErr("unsupported image type", nil))
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": res.URL, "key": res.Key})
}
