package dto

// CarouselUploadRequest is the multipart metadata accompanying an image file.
type CarouselUploadRequest struct {
	Title       string `form:"title" validate:"required"`
	Description string `form:"description" validate:"required"`
}

// CarouselOrderEntry references an existing image by id inside a reorder
// payload; the payload array order becomes the display order.
type CarouselOrderEntry struct {
	ID string `json:"id" validate:"required"`
}

// CarouselRenameRequest updates the title of a single image in place.
type CarouselRenameRequest struct {
	ID    string `json:"id" validate:"required"`
	Title string `json:"title" validate:"required"`
}
