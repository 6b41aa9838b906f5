package routes

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/cors"

	"steamlens/profile"
)

func renderJSONMessage(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	res := map[string]string{"message": message}
	json.NewEncoder(w).Encode(res)
}

func renderJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	res := map[string]string{"error": message}
	json.NewEncoder(w).Encode(res)
}

func Register(mux *http.ServeMux, svc *profile.Service) http.Handler {

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprintf(w, "Welcome to Steamlens. Look up a Steam profile at /api/v1/profile/{steamID}\n")
	})

	mux.HandleFunc("/api", func(w http.ResponseWriter, r *http.Request) {
		renderJSONMessage(w, "This is the base of the Steamlens API")
	})

	mux.HandleFunc("GET /api/v1/resolve", func(w http.ResponseWriter, r *http.Request) {
		input := r.URL.Query().Get("input")
		if input == "" {
			renderJSONError(w, http.StatusBadRequest, "An input query parameter must be provided")
			return
		}
		steamID, err := svc.ResolveIdentifier(r.Context(), input)
		if errors.Is(err, profile.ErrInvalidIdentifier) {
			renderJSONError(w, http.StatusBadRequest, "That doesn't look like a Steam ID or vanity name")
			return
		}
		if errors.Is(err, profile.ErrIdentifierNotFound) {
			renderJSONError(w, http.StatusNotFound, "Steam ID not found")
			return
		}
		if err != nil {
			renderJSONError(w, http.StatusInternalServerError, "Something went wrong")
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"steam_id": steamID})
	})

	mux.HandleFunc("GET /api/v1/profile/{steamID}", func(w http.ResponseWriter, r *http.Request) {
		steamID := r.PathValue("steamID")
		currency := r.URL.Query().Get("currency")

		result, err := svc.GetProfile(r.Context(), steamID, currency)
		if errors.Is(err, profile.ErrInvalidIdentifier) {
			renderJSONError(w, http.StatusBadRequest, "The Steam ID in the URL is not valid")
			return
		}
		if errors.Is(err, profile.ErrProfilePrivate) {
			renderJSONError(w, http.StatusForbidden, "This profile is private. It cannot be scanned.")
			return
		}
		if errors.Is(err, profile.ErrUpstreamUnavailable) {
			renderJSONError(w, http.StatusBadGateway, "Failed to fetch data. The Steam API is busy.")
			return
		}
		if err != nil {
			renderJSONError(w, http.StatusInternalServerError, "Something went wrong")
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(result)
	})

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET"},
		AllowedHeaders: []string{"Origin, Content-Type, Accept"},
	})

	return c.Handler(mux)
}
