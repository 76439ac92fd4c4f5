package interfaces

import "context"

// UploadContext identifies which CRM record owns the uploaded file; it picks
// the object's storage location.
type UploadContext struct {
	ClienteID string
	ProjetoID string
	VisitaID  string
}

// UploadInput references a transient staged file to be made durable.
type UploadInput struct {
	// Referencia is the transient local reference supplied by the caller
	// (anything in the document URL field without an http(s) scheme).
	Referencia  string
	NomeArquivo string
	ContentType string
	TenantID    string
	Contexto    UploadContext
}

// UploadOutput describes the durable object produced by the upload.
type UploadOutput struct {
	URL     string
	Caminho string
	Formato string
	Tamanho int64
}

// IUploadService materializes a transient local file reference into a durable
// object-storage URL. A failure here aborts the enclosing create/update
// before anything is persisted.
type IUploadService interface {
	Materialize(ctx context.Context, in UploadInput) (UploadOutput, error)
}
