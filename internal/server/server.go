//go:generate mockgen -source ./server.go -destination=./mocks/server.go -package=mock_server
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/mealbridge/mealbridge/internal/repository"
	"github.com/mealbridge/mealbridge/internal/storage"
)

type Marketplace interface {
	CreateListing(ctx context.Context, in storage.CreateListingInput) (*storage.Listing, error)
	GetListing(ctx context.Context, id string) (*storage.Listing, error)
	ListListings(ctx context.Context, f storage.ListFilter) ([]*storage.Listing, error)
	MyDonations(ctx context.Context, donorID string) ([]*storage.Listing, error)
	MyClaims(ctx context.Context, userID string) ([]*storage.Listing, error)
	ClaimListing(ctx context.Context, listingID, receiverID string) (*storage.Listing, error)
	ConfirmClaim(ctx context.Context, listingID, donorID string, action storage.ConfirmAction) (*storage.Listing, error)
	CompleteListing(ctx context.Context, listingID, actorID string) (*storage.Listing, int, error)
	CancelListing(ctx context.Context, listingID, donorID string) (*storage.Listing, error)
	RateListing(ctx context.Context, listingID, raterID string, score int, feedback string) (*storage.Listing, error)
	GetUser(ctx context.Context, userID string) (*storage.User, error)
}

type Directory interface {
	CreateCheckpoint(ctx context.Context, in storage.CreateCheckpointInput) (*storage.Checkpoint, error)
	UpdateCheckpoint(ctx context.Context, id string, in storage.UpdateCheckpointInput) (*storage.Checkpoint, error)
	GetCheckpoint(ctx context.Context, id string) (*storage.Checkpoint, error)
	ListCheckpoints(ctx context.Context) ([]*storage.Checkpoint, error)
}

type UserRepo interface {
	Create(ctx context.Context, u *repository.User, password string) error
	ValidateUser(ctx context.Context, username, password string) (bool, error)
	GetByUsername(ctx context.Context, username string) (*repository.User, error)
}

type Server struct {
	marketplace Marketplace
	directory   Directory
	users       UserRepo
	validate    *validator.Validate
	logger      *zap.Logger
	server      *http.Server
}

func New(marketplace Marketplace, directory Directory, users UserRepo, logger *zap.Logger) *Server {
	return &Server{
		marketplace: marketplace,
		directory:   directory,
		users:       users,
		validate:    validator.New(),
		logger:      logger,
	}
}

func (s *Server) Run(port string) error {
	s.server = &http.Server{
		Addr:         ":" + port,
		Handler:      s.setupRoutes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	s.logger.Info("http server starting", zap.String("port", port))
	return s.server.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Server) setupRoutes() http.Handler {
	r := mux.NewRouter()

	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	r.HandleFunc("/api/health", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/api/register", s.handleRegister).Methods(http.MethodPost)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(s.basicAuthMiddleware)

	api.HandleFunc("/listings", s.handleCreateListing).Methods(http.MethodPost)
	api.HandleFunc("/listings", s.handleListListings).Methods(http.MethodGet)
	api.HandleFunc("/listings/my/donations", s.handleMyDonations).Methods(http.MethodGet)
	api.HandleFunc("/listings/my/claims", s.handleMyClaims).Methods(http.MethodGet)
	api.HandleFunc("/listings/{id}", s.handleGetListing).Methods(http.MethodGet)
	api.HandleFunc("/listings/{id}", s.handleCancelListing).Methods(http.MethodDelete)
	api.HandleFunc("/listings/{id}/claim", s.handleClaimListing).Methods(http.MethodPost)
	api.HandleFunc("/listings/{id}/confirm", s.handleConfirmClaim).Methods(http.MethodPost)
	api.HandleFunc("/listings/{id}/complete", s.handleCompleteListing).Methods(http.MethodPost)
	api.HandleFunc("/listings/{id}/rate", s.handleRateListing).Methods(http.MethodPost)

	api.HandleFunc("/checkpoints", s.handleCreateCheckpoint).Methods(http.MethodPost)
	api.HandleFunc("/checkpoints", s.handleListCheckpoints).Methods(http.MethodGet)
	api.HandleFunc("/checkpoints/{id}", s.handleGetCheckpoint).Methods(http.MethodGet)
	api.HandleFunc("/checkpoints/{id}", s.handleUpdateCheckpoint).Methods(http.MethodPut)

	api.HandleFunc("/users/{id}", s.handleGetUser).Methods(http.MethodGet)

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":   true,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
