package suppliers

import "github.com/go-chi/chi/v5"

// MountRoutes registers the supplier endpoints. Path names follow the public
// API contract of the service.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Get("/search", h.Search)
	r.Get("/getUser/{id}", h.Get)
	r.Post("/CreateUser", h.Create)
	r.Put("/UpdateUser/{id}", h.Update)
	r.Delete("/deleteUser/{id}", h.Delete)
	r.Post("/generateReport", h.GenerateReport)
}
