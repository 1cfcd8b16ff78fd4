package rest

import "net/http"

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth    *AuthHandler
	Deck    *DeckHandler
	Vocab   *VocabHandler
	Review  *ReviewHandler
	Catalog *CatalogHandler
	Health  *HealthHandler
}

// NewRouter builds the API route table. Authentication and the rest of
// the middleware stack are applied by the caller around the returned mux.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	// Probes.
	mux.HandleFunc("GET /livez", h.Health.Live)
	mux.HandleFunc("GET /readyz", h.Health.Ready)
	mux.HandleFunc("GET /healthz", h.Health.Health)

	// Auth.
	mux.HandleFunc("POST /v1/auth/register", h.Auth.Register)
	mux.HandleFunc("POST /v1/auth/login", h.Auth.Login)

	// Screenshots. The literal /public segment takes precedence over {id}.
	mux.HandleFunc("POST /v1/screenshots", h.Deck.Upload)
	mux.HandleFunc("GET /v1/screenshots", h.Deck.ListMine)
	mux.HandleFunc("GET /v1/screenshots/public", h.Deck.BrowsePublic)
	mux.HandleFunc("GET /v1/screenshots/{id}", h.Deck.Get)
	mux.HandleFunc("PATCH /v1/screenshots/{id}", h.Deck.Update)
	mux.HandleFunc("DELETE /v1/screenshots/{id}", h.Deck.Delete)
	mux.HandleFunc("PUT /v1/screenshots/{id}/visibility", h.Deck.SetVisibility)
	mux.HandleFunc("POST /v1/screenshots/{id}/adopt", h.Deck.Adopt)

	// Vocabulary.
	mux.HandleFunc("POST /v1/screenshots/{id}/vocab", h.Vocab.Add)
	mux.HandleFunc("PUT /v1/vocab/{id}", h.Vocab.Update)
	mux.HandleFunc("DELETE /v1/vocab/{id}", h.Vocab.Delete)

	// Reviews.
	mux.HandleFunc("GET /v1/reviews/due", h.Review.DueQueue)
	mux.HandleFunc("GET /v1/reviews/due/count", h.Review.DueCount)
	mux.HandleFunc("POST /v1/cards/{id}/review", h.Review.Submit)

	// Catalog.
	mux.HandleFunc("GET /v1/titles", h.Catalog.List)
	mux.HandleFunc("GET /v1/titles/{anilistId}", h.Catalog.Get)

	return mux
}
