package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/mealbridge/mealbridge/internal/geo"
	"github.com/mealbridge/mealbridge/internal/storage"
)

type quantityPayload struct {
	Value float64 `json:"value" validate:"required,gt=0"`
	Unit  string  `json:"unit" validate:"required"`
}

type pickupPayload struct {
	Start time.Time `json:"start" validate:"required"`
	End   time.Time `json:"end" validate:"required"`
}

type createListingRequest struct {
	Title              string          `json:"title" validate:"required,max=200"`
	Description        string          `json:"description" validate:"max=2000"`
	FoodType           string          `json:"food_type" validate:"omitempty,oneof=cooked raw packaged fruits vegetables dairy bakery mixed"`
	Quantity           quantityPayload `json:"quantity" validate:"required"`
	Longitude          float64         `json:"longitude" validate:"gte=-180,lte=180"`
	Latitude           float64         `json:"latitude" validate:"gte=-90,lte=90"`
	Address            string          `json:"address" validate:"required"`
	PickupTimes        pickupPayload   `json:"pickup_times" validate:"required"`
	FallbackPreference string          `json:"fallback_preference" validate:"omitempty,oneof=receiver animal_farm biocompost none"`
	FallbackOrder      []string        `json:"fallback_order" validate:"omitempty,dive,oneof=receiver animal_farm biocompost"`
}

// decodeCreateListing accepts both the JSON body and the flattened form
// encoding that older clients send (quantity_value / quantity_unit fields
// instead of a nested quantity object).
func (s *Server) decodeCreateListing(r *http.Request) (createListingRequest, error) {
	var req createListingRequest

	if r.Header.Get("Content-Type") == "application/x-www-form-urlencoded" {
		if err := r.ParseForm(); err != nil {
			return req, err
		}
		req.Title = r.PostFormValue("title")
		req.Description = r.PostFormValue("description")
		req.FoodType = r.PostFormValue("food_type")
		req.Address = r.PostFormValue("address")
		req.FallbackPreference = r.PostFormValue("fallback_preference")
		req.Quantity.Unit = r.PostFormValue("quantity_unit")
		req.Quantity.Value, _ = strconv.ParseFloat(r.PostFormValue("quantity_value"), 64)
		req.Longitude, _ = strconv.ParseFloat(r.PostFormValue("longitude"), 64)
		req.Latitude, _ = strconv.ParseFloat(r.PostFormValue("latitude"), 64)
		req.PickupTimes.Start, _ = time.Parse(time.RFC3339, r.PostFormValue("pickup_start"))
		req.PickupTimes.End, _ = time.Parse(time.RFC3339, r.PostFormValue("pickup_end"))
		return req, nil
	}

	err := json.NewDecoder(r.Body).Decode(&req)
	return req, err
}

func (s *Server) handleCreateListing(w http.ResponseWriter, r *http.Request) {
	a, ok := actorFrom(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "authorization required")
		return
	}

	req, err := s.decodeCreateListing(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	order := make([]storage.FallbackTarget, 0, len(req.FallbackOrder))
	for _, t := range req.FallbackOrder {
		order = append(order, storage.FallbackTarget(t))
	}

	listing, err := s.marketplace.CreateListing(r.Context(), storage.CreateListingInput{
		DonorID:     a.ID,
		Title:       req.Title,
		Description: req.Description,
		FoodType:    storage.FoodType(req.FoodType),
		Quantity: storage.Quantity{
			Value: req.Quantity.Value,
			Unit:  storage.Unit(req.Quantity.Unit),
		},
		Location:           geo.Point{Longitude: req.Longitude, Latitude: req.Latitude},
		Address:            req.Address,
		Pickup:             storage.PickupWindow{Start: req.PickupTimes.Start, End: req.PickupTimes.End},
		FallbackPreference: storage.FallbackTarget(req.FallbackPreference),
		FallbackOrder:      order,
	})
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, listing)
}

func (s *Server) handleGetListing(w http.ResponseWriter, r *http.Request) {
	listing, err := s.marketplace.GetListing(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, listing)
}

func (s *Server) handleListListings(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	f := storage.ListFilter{
		Status:   storage.Status(q.Get("status")),
		FoodType: storage.FoodType(q.Get("food_type")),
	}
	if v := q.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			respondError(w, http.StatusBadRequest, "limit must be an integer")
			return
		}
		f.Limit = limit
	}
	if q.Get("longitude") != "" || q.Get("latitude") != "" {
		lon, errLon := strconv.ParseFloat(q.Get("longitude"), 64)
		lat, errLat := strconv.ParseFloat(q.Get("latitude"), 64)
		if errLon != nil || errLat != nil {
			respondError(w, http.StatusBadRequest, "longitude and latitude must both be valid numbers")
			return
		}
		f.Near = &geo.Point{Longitude: lon, Latitude: lat}
		if v := q.Get("radius_m"); v != "" {
			radius, err := strconv.ParseFloat(v, 64)
			if err != nil {
				respondError(w, http.StatusBadRequest, "radius_m must be a number")
				return
			}
			f.RadiusM = radius
		}
	}

	listings, err := s.marketplace.ListListings(r.Context(), f)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, listings)
}

func (s *Server) handleMyDonations(w http.ResponseWriter, r *http.Request) {
	a, ok := actorFrom(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "authorization required")
		return
	}
	listings, err := s.marketplace.MyDonations(r.Context(), a.ID)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, listings)
}

func (s *Server) handleMyClaims(w http.ResponseWriter, r *http.Request) {
	a, ok := actorFrom(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "authorization required")
		return
	}
	listings, err := s.marketplace.MyClaims(r.Context(), a.ID)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, listings)
}

func (s *Server) handleClaimListing(w http.ResponseWriter, r *http.Request) {
	a, ok := actorFrom(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "authorization required")
		return
	}
	listing, err := s.marketplace.ClaimListing(r.Context(), mux.Vars(r)["id"], a.ID)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, listing)
}

type confirmRequest struct {
	Action string `json:"action" validate:"required,oneof=confirm reject"`
}

func (s *Server) handleConfirmClaim(w http.ResponseWriter, r *http.Request) {
	a, ok := actorFrom(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "authorization required")
		return
	}

	var req confirmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	listing, err := s.marketplace.ConfirmClaim(r.Context(), mux.Vars(r)["id"], a.ID, storage.ConfirmAction(req.Action))
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, listing)
}

func (s *Server) handleCompleteListing(w http.ResponseWriter, r *http.Request) {
	a, ok := actorFrom(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "authorization required")
		return
	}
	listing, points, err := s.marketplace.CompleteListing(r.Context(), mux.Vars(r)["id"], a.ID)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"listing":        listing,
		"points_awarded": points,
	})
}

func (s *Server) handleCancelListing(w http.ResponseWriter, r *http.Request) {
	a, ok := actorFrom(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "authorization required")
		return
	}
	listing, err := s.marketplace.CancelListing(r.Context(), mux.Vars(r)["id"], a.ID)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, listing)
}

type rateRequest struct {
	Score    int    `json:"score" validate:"required,min=1,max=5"`
	Feedback string `json:"feedback" validate:"max=1000"`
}

func (s *Server) handleRateListing(w http.ResponseWriter, r *http.Request) {
	a, ok := actorFrom(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "authorization required")
		return
	}

	var req rateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	listing, err := s.marketplace.RateListing(r.Context(), mux.Vars(r)["id"], a.ID, req.Score, req.Feedback)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, listing)
}
