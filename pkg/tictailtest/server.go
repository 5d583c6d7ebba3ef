// Package tictailtest provides an in-process fake of the Tictail API for
// tests and examples. It serves a single seeded store under /v1 and keeps
// followers and cards in memory.
package tictailtest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/tictail/tictail-go/pkg/tictail"
)

// DefaultToken is accepted by servers created with NewServer.
const DefaultToken = "test-token"

const supportEmail = "developers@tictail.com"

var validID = regexp.MustCompile(`^[A-Za-z0-9]+$`)

type object = map[string]interface{}

type storeData struct {
	store      object
	products   []object
	customers  []object
	followers  []object
	orders     []object
	categories []object
	cards      []object
	theme      object
}

// Server is a running fake API.
type Server struct {
	*httptest.Server

	token  string
	mu     sync.Mutex
	stores map[string]*storeData
}

// NewServer starts a fake API accepting DefaultToken.
func NewServer() *Server {
	return NewServerWithToken(DefaultToken)
}

// NewServerWithToken starts a fake API accepting token.
func NewServerWithToken(token string) *Server {
	s := &Server{
		token:  token,
		stores: map[string]*storeData{StoreID: seedStore()},
	}
	s.Server = httptest.NewServer(s.Router())

	return s
}

// Token returns the accepted access token.
func (s *Server) Token() string {
	return s.token
}

// Router returns the API routes without starting a listener.
func (s *Server) Router() *mux.Router {
	router := mux.NewRouter()
	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, object{})
	})
	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, object{})
	})

	api := router.PathPrefix("/v1").Subrouter()
	api.Use(s.authenticate, validateIDs)

	api.HandleFunc("/me", s.handleMe).Methods(http.MethodGet)
	api.HandleFunc("/stores/{store}", s.handleStore).Methods(http.MethodGet)
	api.HandleFunc("/stores/{store}/products", s.handleList(func(d *storeData) []object { return d.products })).Methods(http.MethodGet)
	api.HandleFunc("/stores/{store}/products/{id}", s.handleGet(func(d *storeData) []object { return d.products })).Methods(http.MethodGet)
	api.HandleFunc("/stores/{store}/customers", s.handleList(func(d *storeData) []object { return d.customers })).Methods(http.MethodGet)
	api.HandleFunc("/stores/{store}/customers/{id}", s.handleGet(func(d *storeData) []object { return d.customers })).Methods(http.MethodGet)
	api.HandleFunc("/stores/{store}/orders", s.handleList(func(d *storeData) []object { return d.orders })).Methods(http.MethodGet)
	api.HandleFunc("/stores/{store}/orders/{id}", s.handleGet(func(d *storeData) []object { return d.orders })).Methods(http.MethodGet)
	api.HandleFunc("/stores/{store}/categories", s.handleList(func(d *storeData) []object { return d.categories })).Methods(http.MethodGet)
	api.HandleFunc("/stores/{store}/followers", s.handleList(func(d *storeData) []object { return d.followers })).Methods(http.MethodGet)
	api.HandleFunc("/stores/{store}/followers", s.handleCreateFollower).Methods(http.MethodPost)
	api.HandleFunc("/stores/{store}/followers/{id}", s.handleDeleteFollower).Methods(http.MethodDelete)
	api.HandleFunc("/stores/{store}/cards", s.handleCreateCard).Methods(http.MethodPost)
	api.HandleFunc("/stores/{store}/theme", s.handleTheme).Methods(http.MethodGet)

	return router
}

// Followers returns a copy of a store's followers.
func (s *Server) Followers(storeID string) []map[string]interface{} {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, ok := s.stores[storeID]
	if !ok {
		return nil
	}

	return append([]object(nil), data.followers...)
}

// Cards returns a copy of the cards posted to a store.
func (s *Server) Cards(storeID string) []map[string]interface{} {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, ok := s.stores[storeID]
	if !ok {
		return nil
	}

	return append([]object(nil), data.cards...)
}

func (s *Server) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+s.token {
			writeError(w, http.StatusForbidden, object{})

			return
		}

		next.ServeHTTP(w, r)
	})
}

func validateIDs(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for _, value := range mux.Vars(r) {
			if !validID.MatchString(value) {
				writeError(w, http.StatusBadRequest, object{"id": "malformed"})

				return
			}
		}

		next.ServeHTTP(w, r)
	})
}

// lookupStore locks the server and resolves the {store} variable. The
// caller must unlock when ok is true.
func (s *Server) lookupStore(w http.ResponseWriter, r *http.Request) (*storeData, bool) {
	s.mu.Lock()

	data, ok := s.stores[mux.Vars(r)["store"]]
	if !ok {
		s.mu.Unlock()
		writeError(w, http.StatusNotFound, object{})

		return nil, false
	}

	return data, true
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	writeJSON(w, http.StatusOK, s.stores[StoreID].store)
}

func (s *Server) handleStore(w http.ResponseWriter, r *http.Request) {
	data, ok := s.lookupStore(w, r)
	if !ok {
		return
	}
	defer s.mu.Unlock()

	writeJSON(w, http.StatusOK, data.store)
}

func (s *Server) handleTheme(w http.ResponseWriter, r *http.Request) {
	data, ok := s.lookupStore(w, r)
	if !ok {
		return
	}
	defer s.mu.Unlock()

	writeJSON(w, http.StatusOK, data.theme)
}

func (s *Server) handleGet(items func(*storeData) []object) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, ok := s.lookupStore(w, r)
		if !ok {
			return
		}
		defer s.mu.Unlock()

		id := mux.Vars(r)["id"]
		for _, item := range items(data) {
			if item["id"] == id {
				writeJSON(w, http.StatusOK, item)

				return
			}
		}

		writeError(w, http.StatusNotFound, object{})
	}
}

func (s *Server) handleList(items func(*storeData) []object) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, ok := s.lookupStore(w, r)
		if !ok {
			return
		}
		defer s.mu.Unlock()

		result, params := filterItems(items(data), r)
		if len(params) > 0 {
			writeError(w, http.StatusBadRequest, params)

			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

func (s *Server) handleCreateFollower(w http.ResponseWriter, r *http.Request) {
	body, ok := decodeBody(w, r)
	if !ok {
		return
	}

	email, _ := body["email"].(string)
	if email == "" {
		writeError(w, http.StatusBadRequest, object{"email": "email is required in json"})

		return
	}

	data, ok := s.lookupStore(w, r)
	if !ok {
		return
	}
	defer s.mu.Unlock()

	now := time.Now().UTC().Format("2006-01-02T15:04:05.000000")
	follower := object{
		"id":          newID(),
		"email":       email,
		"created_at":  now,
		"modified_at": now,
	}
	data.followers = append(data.followers, follower)

	writeJSON(w, http.StatusCreated, follower)
}

func (s *Server) handleDeleteFollower(w http.ResponseWriter, r *http.Request) {
	data, ok := s.lookupStore(w, r)
	if !ok {
		return
	}
	defer s.mu.Unlock()

	id := mux.Vars(r)["id"]
	for i, follower := range data.followers {
		if follower["id"] == id {
			data.followers = append(data.followers[:i], data.followers[i+1:]...)
			w.WriteHeader(http.StatusNoContent)

			return
		}
	}

	writeError(w, http.StatusNotFound, object{})
}

func (s *Server) handleCreateCard(w http.ResponseWriter, r *http.Request) {
	body, ok := decodeBody(w, r)
	if !ok {
		return
	}

	cardType, _ := body["card_type"].(string)
	if cardType == "" {
		writeError(w, http.StatusBadRequest, object{"card_type": "card_type is required in json"})

		return
	}

	data, ok := s.lookupStore(w, r)
	if !ok {
		return
	}
	defer s.mu.Unlock()

	card := object{}
	for key, value := range body {
		card[key] = value
	}

	card["id"] = newID()
	card["created_at"] = time.Now().UTC().Format("2006-01-02T15:04:05.000000")
	data.cards = append(data.cards, card)

	writeJSON(w, http.StatusCreated, card)
}

// filterItems applies the list parameters the API understands. Invalid
// parameters are reported in the returned params map.
func filterItems(items []object, r *http.Request) ([]object, object) {
	query := r.URL.Query()
	result := append([]object{}, items...)

	if after := query.Get(tictail.ParamAfter); after != "" {
		result = sliceAfter(result, after)
	}

	if before := query.Get(tictail.ParamBefore); before != "" {
		result = sliceBefore(result, before)
	}

	if categories := query.Get(tictail.ParamCategories); categories != "" {
		result = filterByCategory(result, strings.Split(categories, ","))
	}

	for _, param := range []string{tictail.ParamModifiedBefore, tictail.ParamModifiedAfter} {
		raw := query.Get(param)
		if raw == "" {
			continue
		}

		bound, ok := tictail.ParseTime(raw)
		if !ok {
			return nil, object{param: "malformed"}
		}

		result = filterByModified(result, bound, param == tictail.ParamModifiedBefore)
	}

	return result, nil
}

func sliceAfter(items []object, id string) []object {
	for i, item := range items {
		if item["id"] == id {
			return items[i+1:]
		}
	}

	return []object{}
}

func sliceBefore(items []object, id string) []object {
	for i, item := range items {
		if item["id"] == id {
			return items[:i]
		}
	}

	return []object{}
}

func filterByCategory(items []object, ids []string) []object {
	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}

	filtered := []object{}

	for _, item := range items {
		categories, _ := item["categories"].([]interface{})
		for _, category := range categories {
			c, _ := category.(object)
			if id, _ := c["id"].(string); wanted[id] {
				filtered = append(filtered, item)

				break
			}
		}
	}

	return filtered
}

func filterByModified(items []object, bound time.Time, before bool) []object {
	filtered := []object{}

	for _, item := range items {
		raw, _ := item["modified_at"].(string)

		modified, ok := tictail.ParseTime(raw)
		if !ok {
			continue
		}

		if (before && modified.Before(bound)) || (!before && modified.After(bound)) {
			filtered = append(filtered, item)
		}
	}

	return filtered
}

func decodeBody(w http.ResponseWriter, r *http.Request) (object, bool) {
	var body object

	err := json.NewDecoder(r.Body).Decode(&body)
	if err != nil {
		writeError(w, http.StatusBadRequest, object{"body": "malformed json"})

		return nil, false
	}

	if body == nil {
		body = object{}
	}

	return body, true
}

func newID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, params object) {
	writeJSON(w, status, object{
		"status":        status,
		"message":       http.StatusText(status),
		"params":        params,
		"support_email": supportEmail,
	})
}
