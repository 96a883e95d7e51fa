package handlers

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ContentMachine/Talent-and-Beauty-Backend/internal/config"
	"github.com/ContentMachine/Talent-and-Beauty-Backend/internal/services/dto"
	"github.com/ContentMachine/Talent-and-Beauty-Backend/internal/storage"
	"github.com/ContentMachine/Talent-and-Beauty-Backend/pkg/apperrors"
)

// saveFormFiles stores every file under the given form field and returns
// their public references. prefix namespaces the objects ("talents/nin",
// "ads/media", ...).
func saveFormFiles(c *gin.Context, store storage.Storage, field, prefix string) ([]dto.UploadedFile, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, nil
	}

	files := form.File[field]
	if len(files) == 0 {
		return nil, nil
	}

	out := make([]dto.UploadedFile, 0, len(files))
	for _, fh := range files {
		uploaded, err := saveOneFile(c, store, fh, prefix)
		if err != nil {
			return nil, err
		}
		out = append(out, *uploaded)
	}
	return out, nil
}

// saveFormFile stores a single optional file part.
func saveFormFile(c *gin.Context, store storage.Storage, field, prefix string) (*dto.UploadedFile, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return nil, nil
	}
	return saveOneFile(c, store, fh, prefix)
}

func saveOneFile(c *gin.Context, store storage.Storage, fh *multipart.FileHeader, prefix string) (*dto.UploadedFile, error) {
	cfg := config.GetConfig()

	if cfg.Upload.MaxSize > 0 && fh.Size > cfg.Upload.MaxSize {
		return nil, apperrors.NewBadRequestError(fmt.Sprintf("File %s exceeds the size limit", fh.Filename))
	}

	contentType := fh.Header.Get("Content-Type")
	if !isAllowedContentType(cfg.Upload.AllowedTypes, contentType) {
		return nil, apperrors.NewBadRequestError("Unsupported file type: " + contentType)
	}

	src, err := fh.Open()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	defer src.Close()

	storageID := fmt.Sprintf("%s/%s%s", prefix, uuid.NewString(), filepath.Ext(fh.Filename))
	if err := store.Save(c.Request.Context(), storageID, src, contentType); err != nil {
		return nil, apperrors.InternalError(err)
	}

	url, err := store.GetURL(c.Request.Context(), storageID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.UploadedFile{
		URL:         url,
		StorageID:   storageID,
		ContentType: contentType,
	}, nil
}

func isAllowedContentType(allowed []string, contentType string) bool {
	if len(allowed) == 0 {
		return true
	}
	for _, a := range allowed {
		if a == contentType {
			return true
		}
		// "image/*" style entries
		if strings.HasSuffix(a, "/*") && strings.HasPrefix(contentType, strings.TrimSuffix(a, "*")) {
			return true
		}
	}
	return false
}
