package upload_evidence

import (
	"context"
	"io"
)

type EvidenceStoreClient interface {
	Upload(ctx context.Context, fileName string, contentType string, body io.Reader) (string, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
