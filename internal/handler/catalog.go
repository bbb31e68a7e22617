package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/harism06/museum-db/internal/repository"
)

// CatalogHandler bundles the repositories behind the six catalog
// collections. Listings are public; mutations sit behind the manager gate
// and live in catalog_admin.go.
type CatalogHandler struct {
	Artists     *repository.ArtistRepo
	Artworks    *repository.ArtworkRepo
	Galleries   *repository.GalleryRepo
	Exhibitions *repository.ExhibitionRepo
	Events      *repository.EventRepo
	StoreItems  *repository.StoreItemRepo
}

// NewCatalogHandler constructs a CatalogHandler and panics if any
// dependency is nil.
func NewCatalogHandler(artists *repository.ArtistRepo, artworks *repository.ArtworkRepo, galleries *repository.GalleryRepo, exhibitions *repository.ExhibitionRepo, events *repository.EventRepo, storeItems *repository.StoreItemRepo) *CatalogHandler {
	if artists == nil || artworks == nil || galleries == nil || exhibitions == nil || events == nil || storeItems == nil {
		panic("nil repository passed to NewCatalogHandler")
	}
	return &CatalogHandler{
		Artists:     artists,
		Artworks:    artworks,
		Galleries:   galleries,
		Exhibitions: exhibitions,
		Events:      events,
		StoreItems:  storeItems,
	}
}

// ListArtists returns every artist.
func (h *CatalogHandler) ListArtists(c echo.Context) error {
	out, err := h.Artists.List(c.Request().Context())
	if err != nil {
		c.Logger().Errorf("list artists: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch artists"})
	}
	return c.JSON(http.StatusOK, out)
}

// ListArtworks returns every artwork joined with its artist.
func (h *CatalogHandler) ListArtworks(c echo.Context) error {
	out, err := h.Artworks.List(c.Request().Context())
	if err != nil {
		c.Logger().Errorf("list artworks: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch artworks"})
	}
	return c.JSON(http.StatusOK, out)
}

// ListGalleries returns every gallery.
func (h *CatalogHandler) ListGalleries(c echo.Context) error {
	out, err := h.Galleries.List(c.Request().Context())
	if err != nil {
		c.Logger().Errorf("list galleries: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch galleries"})
	}
	return c.JSON(http.StatusOK, out)
}

// ListExhibitions returns every exhibition.
func (h *CatalogHandler) ListExhibitions(c echo.Context) error {
	out, err := h.Exhibitions.List(c.Request().Context())
	if err != nil {
		c.Logger().Errorf("list exhibitions: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch exhibitions"})
	}
	return c.JSON(http.StatusOK, out)
}

// ListEvents returns every event.
func (h *CatalogHandler) ListEvents(c echo.Context) error {
	out, err := h.Events.List(c.Request().Context())
	if err != nil {
		c.Logger().Errorf("list events: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch events"})
	}
	return c.JSON(http.StatusOK, out)
}

// ListStoreItems returns every store item.
func (h *CatalogHandler) ListStoreItems(c echo.Context) error {
	out, err := h.StoreItems.List(c.Request().Context())
	if err != nil {
		c.Logger().Errorf("list store items: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch items from store"})
	}
	return c.JSON(http.StatusOK, out)
}
