package api

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hitekgroup/hitek-site-backend/errs"
	"github.com/hitekgroup/hitek-site-backend/storage"
)

// maxUploadSize caps image uploads at 10MB.
const maxUploadSize = 10 * 1024 * 1024

// allowedImageTypes are the content types accepted for uploads.
var allowedImageTypes = map[string]bool{
	"image/jpeg":    true,
	"image/png":     true,
	"image/gif":     true,
	"image/webp":    true,
	"image/svg+xml": true,
}

// uploadFolders maps the submitted target to its object key prefix.
var uploadFolders = map[string]string{
	"project": "project-images",
	"blog":    "blog-images",
}

type uploadHandler struct {
	responder Responder
	logger    zerolog.Logger
	store     storage.ObjectStore
}

func newUploadHandler(store storage.ObjectStore) uploadHandler {
	logger := log.With().Str("handlerName", "uploadHandler").Logger()

	return uploadHandler{
		responder: NewResponder(logger),
		logger:    logger,
		store:     store,
	}
}

type uploadResponse struct {
	URL        string `json:"url"`
	ObjectName string `json:"object_name"`
}

// uploadImage stores an image in the object bucket
// @Summary Upload image
// @Description Stores a multipart image upload under a generated object name and returns its durable public URL. Upload failures are surfaced, never papered over with a placeholder URL
// @Tags Upload
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Image file"
// @Param folder formData string false "Target folder: project or blog" default(project)
// @Success 201 {object} uploadResponse "Stored object URL"
// @Failure 400 {object} ErrorResponse "Bad Request - Missing or invalid file"
// @Failure 413 {object} ErrorResponse "Payload Too Large - File exceeds the size limit"
// @Failure 415 {object} ErrorResponse "Unsupported Media Type - Not an accepted image type"
// @Failure 502 {object} ErrorResponse "Bad Gateway - Object storage rejected the upload"
// @Router /upload [post]
func (h uploadHandler) uploadImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			h.responder.WriteError(w, errs.NewMaxBodySizeExceededError(maxUploadSize))
			return
		}

		file, header, err := r.FormFile("image")
		if err != nil {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("image"))
			return
		}
		defer file.Close()

		contentType := header.Header.Get("Content-Type")
		if !allowedImageTypes[contentType] {
			allowed := make([]string, 0, len(allowedImageTypes))
			for t := range allowedImageTypes {
				allowed = append(allowed, t)
			}
			h.responder.WriteError(w, errs.NewUnsupportedMediaTypeError(contentType, allowed))
			return
		}

		folder, ok := uploadFolders[r.FormValue("folder")]
		if !ok {
			folder = uploadFolders["project"]
		}

		ext := strings.ToLower(filepath.Ext(header.Filename))
		objectName := folder + "/" + uuid.New().String() + ext

		url, err := h.store.Upload(r.Context(), objectName, file, header.Size, contentType)
		if err != nil {
			h.logger.Error().Err(err).Str("objectName", objectName).Msg("Object storage upload failed")
			h.responder.WriteError(w, errs.NewUploadError(objectName, err))
			return
		}

		h.logger.Info().Str("objectName", objectName).Int64("size", header.Size).Msg("Image uploaded")

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, uploadResponse{
			URL:        url,
			ObjectName: objectName,
		})
	}
}
