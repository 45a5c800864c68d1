package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/mealbridge/mealbridge/internal/geo"
	"github.com/mealbridge/mealbridge/internal/repository"
	"github.com/mealbridge/mealbridge/internal/storage"
)

type createCheckpointRequest struct {
	Name            string  `json:"name" validate:"required,max=200"`
	Type            string  `json:"type" validate:"required,oneof=fridge animal_farm biocompost"`
	Longitude       float64 `json:"longitude" validate:"gte=-180,lte=180"`
	Latitude        float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Address         string  `json:"address" validate:"required"`
	CapacityMaximum int     `json:"capacity_maximum" validate:"omitempty,gt=0"`
}

func (s *Server) handleCreateCheckpoint(w http.ResponseWriter, r *http.Request) {
	a, ok := actorFrom(r)
	if !ok || a.Role != string(storage.RoleAdmin) {
		respondError(w, http.StatusForbidden, "admin role required")
		return
	}

	var req createCheckpointRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	cp, err := s.directory.CreateCheckpoint(r.Context(), storage.CreateCheckpointInput{
		Name:            req.Name,
		Type:            storage.CheckpointType(req.Type),
		Location:        geo.Point{Longitude: req.Longitude, Latitude: req.Latitude},
		Address:         req.Address,
		CapacityMaximum: req.CapacityMaximum,
	})
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, cp)
}

type updateCheckpointRequest struct {
	Name            *string `json:"name" validate:"omitempty,max=200"`
	IsActive        *bool   `json:"is_active"`
	CapacityCurrent *int    `json:"capacity_current" validate:"omitempty,gte=0"`
	CapacityMaximum *int    `json:"capacity_maximum" validate:"omitempty,gt=0"`
}

func (s *Server) handleUpdateCheckpoint(w http.ResponseWriter, r *http.Request) {
	a, ok := actorFrom(r)
	if !ok || a.Role != string(storage.RoleAdmin) {
		respondError(w, http.StatusForbidden, "admin role required")
		return
	}

	var req updateCheckpointRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	cp, err := s.directory.UpdateCheckpoint(r.Context(), mux.Vars(r)["id"], storage.UpdateCheckpointInput{
		Name:            req.Name,
		IsActive:        req.IsActive,
		CapacityCurrent: req.CapacityCurrent,
		CapacityMaximum: req.CapacityMaximum,
	})
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, cp)
}

func (s *Server) handleGetCheckpoint(w http.ResponseWriter, r *http.Request) {
	cp, err := s.directory.GetCheckpoint(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, cp)
}

func (s *Server) handleListCheckpoints(w http.ResponseWriter, r *http.Request) {
	cps, err := s.directory.ListCheckpoints(r.Context())
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, cps)
}

type registerRequest struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"max=200"`
	Role     string `json:"role" validate:"required,oneof=donor receiver admin"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	u := &repository.User{
		ID:       uuid.NewString(),
		Username: req.Username,
		Name:     req.Name,
		Role:     req.Role,
	}
	if err := s.users.Create(r.Context(), u, req.Password); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to create user")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"id":       u.ID,
		"username": u.Username,
		"role":     u.Role,
	})
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	u, err := s.marketplace.GetUser(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, u)
}
