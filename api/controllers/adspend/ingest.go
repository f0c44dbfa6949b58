package adspend

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/angelmondragon/adspend-backend/api/responses"
	"github.com/angelmondragon/adspend-backend/api/validators"
	"github.com/angelmondragon/adspend-backend/internal/adspend"
	pkgerrors "github.com/angelmondragon/adspend-backend/pkg/errors"
	"github.com/angelmondragon/adspend-backend/pkg/logger"
)

const (
	uploadField    = "file"
	maxFilenameLen = 255
	// multipart parts beyond this spill to temp files
	multipartMemory = 8 << 20
)

func Ingest(service adspend.Service, maxUploadBytes int64, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if maxUploadBytes > 0 {
			r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
		}

		if err := r.ParseMultipartForm(multipartMemory); err != nil {
			responses.WriteError(ctx, logg, w, uploadError(err, maxUploadBytes))
			return
		}
		defer func() {
			if r.MultipartForm != nil {
				_ = r.MultipartForm.RemoveAll()
			}
		}()

		file, header, err := r.FormFile(uploadField)
		if err != nil {
			responses.WriteError(ctx, logg, w, uploadError(err, maxUploadBytes))
			return
		}
		defer file.Close()

		result, err := service.Ingest(ctx, adspend.IngestRequest{
			Filename: validators.SanitizeString(header.Filename, maxFilenameLen),
			Body:     file,
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteJSON(w, http.StatusOK, result)
	}
}

func uploadError(err error, limit int64) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) || errors.Is(err, multipart.ErrMessageTooLarge) {
		return pkgerrors.Wrap(pkgerrors.CodePayloadTooLarge, err, "upload exceeds size limit").
			WithDetails(map[string]any{"max_bytes": limit})
	}
	if errors.Is(err, http.ErrMissingFile) {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "multipart field 'file' is required")
	}
	return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid multipart upload: "+err.Error())
}
