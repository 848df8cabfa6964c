package upload_evidence

import (
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
)

const (
	msgInvalidMultipart = "некорректный multipart запрос"
	msgMissingFile      = "отсутствует файл в поле file"
)

// Лимит размера evidence-файла (фото, подписи)
const maxUploadBytes = 10 << 20 // 10 MiB

type Handler struct {
	evidenceClient EvidenceStoreClient
	logger         Logger
}

func NewHandler(evidenceClient EvidenceStoreClient, logger Logger) *Handler {
	return &Handler{
		evidenceClient: evidenceClient,
		logger:         logger,
	}
}

// UploadResponse HTTP response model
type UploadResponse struct {
	Ref string `json:"ref"`
}

// Handle POST /api/v1/staff/evidence
// Принимает один файл в поле file и возвращает content reference
// Полученные ссылки передаются в confirm-pickup / confirm-return
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		h.logger.Warn("POST /staff/evidence - Invalid multipart request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMultipart)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		h.logger.Warn("POST /staff/evidence - Missing file: %v", err)
		handlers.RespondBadRequest(w, msgMissingFile)
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	ref, err := h.evidenceClient.Upload(r.Context(), header.Filename, contentType, file)
	if err != nil {
		h.logger.Error("POST /staff/evidence - Failed to upload file name=%s: %v", header.Filename, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /staff/evidence - Evidence uploaded successfully: name=%s, ref=%s", header.Filename, ref)
	handlers.RespondJSON(w, http.StatusCreated, UploadResponse{Ref: ref})
}
