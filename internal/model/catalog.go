package model

import "time"

// Artist represents a row in the `artist` table.
type Artist struct {
	ArtistID  uint64 `json:"artistID"`  // artist.ArtistID
	Name      string `json:"name"`      // artist.Name
	BirthYear int    `json:"birthYear"` // artist.BirthYear
	Country   string `json:"country"`   // artist.Country
}

// Artwork represents a row in the `artwork` table. ArtistID and GalleryID
// are foreign keys; deletes are manual and order-dependent because the
// schema defines no cascade rules.
type Artwork struct {
	ArtworkID   uint64  // artwork.ArtworkID
	Title       string  // artwork.Title
	YearCreated int     // artwork.YearCreated
	ArtistID    uint64  // artwork.ArtistID
	GalleryID   uint64  // artwork.GalleryID
	Value       float64 // artwork.Value
	Medium      string  // artwork.Medium
	Dimensions  string  // artwork.Dimensions
}

// Gallery represents a row in the `gallery` table.
type Gallery struct {
	GalleryID   uint64 `json:"galleryID"`   // gallery.GalleryID
	Name        string `json:"name"`        // gallery.Name
	FloorNumber int    `json:"floorNumber"` // gallery.FloorNumber
	Capacity    int    `json:"capacity"`    // gallery.Capacity
}

// Exhibition represents a row in the `exhibition` table.
type Exhibition struct {
	ExhibitionID uint64    `json:"exhibitionID"` // exhibition.ExhibitionID
	Name         string    `json:"name"`         // exhibition.Name
	StartDate    time.Time `json:"startDate"`    // exhibition.StartDate
	EndDate      time.Time `json:"endDate"`      // exhibition.EndDate
	GalleryID    uint64    `json:"galleryID"`    // exhibition.GalleryID
	Description  string    `json:"description"`  // exhibition.Description
}

// Event represents a row in the `event` table. Date and Time are stored in
// separate columns; Time keeps the raw "HH:MM:SS" text the way the schema
// defines it.
type Event struct {
	EventID     uint64    `json:"eventID"`     // event.EventID
	Name        string    `json:"name"`        // event.Name
	Date        time.Time `json:"date"`        // event.Date
	Time        string    `json:"time"`        // event.Time
	GalleryID   uint64    `json:"galleryID"`   // event.GalleryID
	Description string    `json:"description"` // event.Description
}

// StoreItem represents a row in the `storeitem` table.
type StoreItem struct {
	StoreItemID uint64  `json:"storeItemID"` // storeitem.StoreItemID
	Name        string  `json:"name"`        // storeitem.Name
	Price       float64 `json:"price"`       // storeitem.Price
	Category    string  `json:"category"`    // storeitem.Category
	Description string  `json:"description"` // storeitem.Description
}
