package uploader

// UploadRequest is the body of POST /upload.
type UploadRequest struct {
	FileName      string `json:"fileName" validate:"required,filename"`
	FileData      string `json:"fileData" validate:"required"`
	CustomerName  string `json:"customerName,omitempty"`
	CustomerEmail string `json:"customerEmail,omitempty" validate:"omitempty,email"`
}

// BatchFile is a single entry of a batch upload.
type BatchFile struct {
	FileName string `json:"fileName" validate:"required,filename"`
	FileData string `json:"fileData" validate:"required"`
}

// BatchUploadRequest is the body of POST /upload-batch.
type BatchUploadRequest struct {
	Files         []BatchFile `json:"files" validate:"required,min=1,dive"`
	CustomerName  string      `json:"customerName,omitempty"`
	CustomerEmail string      `json:"customerEmail,omitempty" validate:"omitempty,email"`
}

// FileResult is the per-file outcome in a batch response. Failed
// entries carry an error message instead of links.
type FileResult struct {
	Success      bool   `json:"success"`
	FileName     string `json:"fileName"`
	FileID       string `json:"fileId,omitempty"`
	ViewLink     string `json:"viewLink,omitempty"`
	DownloadLink string `json:"downloadLink,omitempty"`
	Error        string `json:"error,omitempty"`
}

// UploadResponse is the success body of POST /upload.
type UploadResponse struct {
	Success      bool   `json:"success"`
	FileID       string `json:"fileId"`
	FileName     string `json:"fileName"`
	ViewLink     string `json:"viewLink"`
	DownloadLink string `json:"downloadLink"`
}

// BatchUploadResponse is the body of POST /upload-batch. Success is
// true only when every file in the batch succeeded; the per-file
// entries preserve input order.
type BatchUploadResponse struct {
	Success    bool         `json:"success"`
	FolderLink string       `json:"folderLink"`
	Files      []FileResult `json:"files"`
}
