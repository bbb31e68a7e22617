package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/harism06/museum-db/internal/repository"
)

// Catalog write handlers. All of these sit behind the manager gate; the
// policy table in the router is the single source of truth for tiers.

type artistReq struct {
	Name      string `json:"name"`
	BirthYear int    `json:"birthYear"`
	Country   string `json:"country"`
}

// CreateArtist inserts an artist row.
func (h *CatalogHandler) CreateArtist(c echo.Context) error {
	var req artistReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Name == "" || req.BirthYear == 0 || req.Country == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "all fields are required"})
	}
	id, err := h.Artists.Create(c.Request().Context(), req.Name, req.BirthYear, req.Country)
	if err != nil {
		c.Logger().Errorf("create artist: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to add artist"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "artist added successfully", "artistID": id})
}

// UpdateArtist rewrites an artist row.
func (h *CatalogHandler) UpdateArtist(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid artist id"})
	}
	var req artistReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Name == "" || req.BirthYear == 0 || req.Country == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "all fields are required"})
	}
	err := h.Artists.Update(c.Request().Context(), id, req.Name, req.BirthYear, req.Country)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "artist not found"})
	case err != nil:
		c.Logger().Errorf("update artist: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update artist"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "artist updated successfully"})
}

// DeleteArtist removes an artist row.
func (h *CatalogHandler) DeleteArtist(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid artist id"})
	}
	err := h.Artists.Delete(c.Request().Context(), id)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "artist not found"})
	case err != nil:
		c.Logger().Errorf("delete artist: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to remove artist"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "artist removed successfully"})
}

type artworkReq struct {
	Title       string  `json:"title"`
	YearCreated int     `json:"yearCreated"`
	ArtistID    uint64  `json:"artistID"`
	GalleryID   uint64  `json:"galleryID"`
	Value       float64 `json:"value"`
	Dimensions  string  `json:"dimensions"`
	Medium      string  `json:"medium"`
}

// CreateArtwork inserts an artwork row.
func (h *CatalogHandler) CreateArtwork(c echo.Context) error {
	var req artworkReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Title == "" || req.YearCreated == 0 || req.ArtistID == 0 || req.GalleryID == 0 || req.Medium == "" || req.Dimensions == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "all fields are required"})
	}
	id, err := h.Artworks.Create(c.Request().Context(),
		req.Title, req.YearCreated, req.ArtistID, req.GalleryID, req.Value, req.Dimensions, req.Medium)
	if err != nil {
		c.Logger().Errorf("create artwork: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to add artwork"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "artwork added successfully", "artworkID": id})
}

// UpdateArtwork rewrites an artwork row.
func (h *CatalogHandler) UpdateArtwork(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid artwork id"})
	}
	var req artworkReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Title == "" || req.YearCreated == 0 || req.ArtistID == 0 || req.GalleryID == 0 || req.Medium == "" || req.Dimensions == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "all fields are required"})
	}
	err := h.Artworks.Update(c.Request().Context(), id,
		req.Title, req.YearCreated, req.ArtistID, req.GalleryID, req.Value, req.Dimensions, req.Medium)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "artwork not found"})
	case err != nil:
		c.Logger().Errorf("update artwork: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update artwork"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "artwork updated successfully"})
}

// DeleteArtwork removes an artwork row.
func (h *CatalogHandler) DeleteArtwork(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid artwork id"})
	}
	err := h.Artworks.Delete(c.Request().Context(), id)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "artwork not found"})
	case err != nil:
		c.Logger().Errorf("delete artwork: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to remove artwork"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "artwork removed successfully"})
}

type galleryReq struct {
	Name        string `json:"name"`
	FloorNumber int    `json:"floorNumber"`
	Capacity    int    `json:"capacity"`
}

// CreateGallery inserts a gallery row.
func (h *CatalogHandler) CreateGallery(c echo.Context) error {
	var req galleryReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Name == "" || req.Capacity == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "all fields are required"})
	}
	id, err := h.Galleries.Create(c.Request().Context(), req.Name, req.FloorNumber, req.Capacity)
	if err != nil {
		c.Logger().Errorf("create gallery: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to add gallery"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "gallery added successfully", "galleryID": id})
}

// UpdateGallery rewrites a gallery row.
func (h *CatalogHandler) UpdateGallery(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid gallery id"})
	}
	var req galleryReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Name == "" || req.Capacity == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "all fields are required"})
	}
	err := h.Galleries.Update(c.Request().Context(), id, req.Name, req.FloorNumber, req.Capacity)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "gallery not found"})
	case err != nil:
		c.Logger().Errorf("update gallery: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update gallery"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "gallery updated successfully"})
}

// DeleteGallery removes a gallery row. Rows referencing the gallery must
// be removed first; the foreign key failure surfaces as a 500 otherwise.
func (h *CatalogHandler) DeleteGallery(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid gallery id"})
	}
	err := h.Galleries.Delete(c.Request().Context(), id)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "gallery not found"})
	case err != nil:
		c.Logger().Errorf("delete gallery: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to remove gallery"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "gallery removed successfully"})
}

type exhibitionReq struct {
	Name        string `json:"name"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	GalleryID   uint64 `json:"galleryID"`
	Description string `json:"description"`
}

// CreateExhibition inserts an exhibition row.
func (h *CatalogHandler) CreateExhibition(c echo.Context) error {
	var req exhibitionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Name == "" || req.StartDate == "" || req.EndDate == "" || req.GalleryID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "all fields are required"})
	}
	start, err := parseDate(req.StartDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "startDate must be YYYY-MM-DD"})
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "endDate must be YYYY-MM-DD"})
	}
	id, err := h.Exhibitions.Create(c.Request().Context(), req.Name, start, end, req.GalleryID, req.Description)
	if err != nil {
		c.Logger().Errorf("create exhibition: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to add exhibition"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "exhibition added successfully", "exhibitionID": id})
}

// UpdateExhibition rewrites an exhibition row.
func (h *CatalogHandler) UpdateExhibition(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid exhibition id"})
	}
	var req exhibitionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Name == "" || req.StartDate == "" || req.EndDate == "" || req.GalleryID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "all fields are required"})
	}
	start, err := parseDate(req.StartDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "startDate must be YYYY-MM-DD"})
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "endDate must be YYYY-MM-DD"})
	}
	err = h.Exhibitions.Update(c.Request().Context(), id, req.Name, start, end, req.GalleryID, req.Description)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "exhibition not found"})
	case err != nil:
		c.Logger().Errorf("update exhibition: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update exhibition"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "exhibition updated successfully"})
}

// DeleteExhibition removes an exhibition row.
func (h *CatalogHandler) DeleteExhibition(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid exhibition id"})
	}
	err := h.Exhibitions.Delete(c.Request().Context(), id)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "exhibition not found"})
	case err != nil:
		c.Logger().Errorf("delete exhibition: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to remove exhibition"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "exhibition removed successfully"})
}

type eventReq struct {
	Name        string `json:"name"`
	Date        string `json:"date"`
	Time        string `json:"time"` // HH:MM:SS
	GalleryID   uint64 `json:"galleryID"`
	Description string `json:"description"`
}

// CreateEvent inserts an event row.
func (h *CatalogHandler) CreateEvent(c echo.Context) error {
	var req eventReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Name == "" || req.Date == "" || req.Time == "" || req.GalleryID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "all fields are required"})
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "date must be YYYY-MM-DD"})
	}
	id, err := h.Events.Create(c.Request().Context(), req.Name, date, req.Time, req.GalleryID, req.Description)
	if err != nil {
		c.Logger().Errorf("create event: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to add event"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "event added successfully", "eventID": id})
}

// UpdateEvent rewrites an event row.
func (h *CatalogHandler) UpdateEvent(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid event id"})
	}
	var req eventReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Name == "" || req.Date == "" || req.Time == "" || req.GalleryID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "all fields are required"})
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "date must be YYYY-MM-DD"})
	}
	err = h.Events.Update(c.Request().Context(), id, req.Name, date, req.Time, req.GalleryID, req.Description)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "event not found"})
	case err != nil:
		c.Logger().Errorf("update event: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update event"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "event updated successfully"})
}

// DeleteEvent removes an event row.
func (h *CatalogHandler) DeleteEvent(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid event id"})
	}
	err := h.Events.Delete(c.Request().Context(), id)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "event not found"})
	case err != nil:
		c.Logger().Errorf("delete event: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to remove event"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "event removed successfully"})
}

type storeItemReq struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
}

// CreateStoreItem inserts a store item row.
func (h *CatalogHandler) CreateStoreItem(c echo.Context) error {
	var req storeItemReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Name == "" || req.Price <= 0 || req.Category == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "all fields are required"})
	}
	id, err := h.StoreItems.Create(c.Request().Context(), req.Name, req.Price, req.Category, req.Description)
	if err != nil {
		c.Logger().Errorf("create store item: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to add item"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "item added successfully", "storeItemID": id})
}

// UpdateStoreItem rewrites a store item row.
func (h *CatalogHandler) UpdateStoreItem(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid item id"})
	}
	var req storeItemReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Name == "" || req.Price <= 0 || req.Category == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "all fields are required"})
	}
	err := h.StoreItems.Update(c.Request().Context(), id, req.Name, req.Price, req.Category, req.Description)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "item not found"})
	case err != nil:
		c.Logger().Errorf("update store item: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update item"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "item updated successfully"})
}

// DeleteStoreItem removes a store item row.
func (h *CatalogHandler) DeleteStoreItem(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid item id"})
	}
	err := h.StoreItems.Delete(c.Request().Context(), id)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "item not found"})
	case err != nil:
		c.Logger().Errorf("delete store item: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to remove item"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "item removed successfully"})
}
