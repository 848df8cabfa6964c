package evidencestore

// UploadResponse ответ хранилища на загрузку файла
// Ref - стабильный content reference, по которому файл можно найти позже
type UploadResponse struct {
	Ref  string `json:"ref"`
	Size int64  `json:"size"`
}
