package dto

// DeleteImageRequest asks for removal of an uploaded file by its public URL.
// Only URLs under the uploads path are accepted.
type DeleteImageRequest struct {
	ImageURL string `json:"imageUrl" validate:"required"`
}

// UploadResponse returns the public URL of a stored file.
type UploadResponse struct {
	URL string `json:"url"`
}
