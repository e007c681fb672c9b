package model

const (
	EntityName = "gallery"
)

const (
	TypeImage = "image"
	TypeVideo = "video"
)

// Category vocabulary for seeded items; user submissions always land in the
// implicit "user-uploads" bucket.
const (
	CategoryEvents   = "events"
	CategoryAcademic = "academic"
	CategorySports   = "sports"
	CategoryCultural = "cultural"
	CategoryCampus   = "campus"
)

// GalleryItem is one uploaded or seeded asset shown in the gallery grid.
// Items are immutable once created; the only mutation is removal.
type GalleryItem struct {
	ID       int64  `json:"id"`
	Type     string `json:"type"`
	Title    string `json:"title"`
	Date     string `json:"date"`
	Src      string `json:"src"`
	Category string `json:"category"`
	// Thumbnail is only set for video items, which cannot render their own
	// grid preview.
	Thumbnail string `json:"thumbnail,omitempty"`
	// Filename is the storage key assigned by the blob backend. Seeded items
	// and client-local items have none.
	Filename string `json:"filename,omitempty"`
}
