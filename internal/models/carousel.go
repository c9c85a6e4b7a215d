package models

// CarouselImage is one entry of the home-page carousel. The position inside
// the stored array is the display order.
type CarouselImage struct {
	ID          string `json:"id"`
	URL         string `json:"url"`
	Title       string `json:"title"`
	Description string `json:"description"`
}
