package handler

import (
	"net/http"

	"github.com/https-dhanesh/itesa-website/internal/content"
)

// SiteHandler отдает содержимое публичных страниц
type SiteHandler struct {
	site *content.Site
}

// NewSiteHandler создает новый handler для содержимого сайта
func NewSiteHandler(site *content.Site) *SiteHandler {
	return &SiteHandler{site: site}
}

// Get обрабатывает GET /site
func (h *SiteHandler) Get(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.site)
}
