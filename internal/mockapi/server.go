package mockapi

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// Config controls the fixture's behavior. The artificial latency simulates
// network delay and is applied uniformly to every route.
type Config struct {
	// Latency is the artificial per-request delay. Zero disables it.
	Latency time.Duration `env:"MOCK_LATENCY" envDefault:"500ms"`

	// TokenSecret signs the bearer tokens the fixture issues.
	TokenSecret string `env:"MOCK_TOKEN_SECRET" envDefault:"splitmacha-dev-secret"`

	// TokenTTL is the issued token lifetime.
	TokenTTL time.Duration `env:"MOCK_TOKEN_TTL" envDefault:"24h"`
}

// Server answers the SplitMacha HTTP surface from in-memory records.
type Server struct {
	store  *RecordStore
	tokens *TokenManager
	logger *slog.Logger
	cfg    Config
}

// New creates a mock backend over the given store.
func New(cfg Config, store *RecordStore, logger *slog.Logger) *Server {
	return &Server{
		store:  store,
		tokens: NewTokenManager(cfg.TokenSecret, cfg.TokenTTL),
		logger: logger,
		cfg:    cfg,
	}
}

// Handler returns the full route table.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(requestLogger(s.logger))
	r.Use(metricsMiddleware)
	r.Use(latencyMiddleware(s.cfg.Latency))

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login", s.handleLogin)
		r.Post("/auth/register", s.handleRegister)

		r.Get("/users", s.handleListUsers)
		r.Post("/users", s.handleCreateUser)
		r.Get("/users/me", s.handleMe)
		r.Get("/users/search", s.handleSearchUsers)
		r.Get("/users/email/{email}", s.handleUserByEmail)
		r.Get("/users/{id}", s.handleUserByID)
		r.Put("/users/{id}", s.handleUpdateUser)

		r.Get("/groups", s.handleListGroups)
		r.Post("/groups", s.handleCreateGroup)

		r.Get("/expenses", s.handleListExpenses)
		r.Post("/expenses", s.handleCreateExpense)

		r.Get("/friends", s.handleListFriends)

		r.Get("/settlements", s.handleListSettlements)
		r.Post("/settlements", s.handleRecordSettlement)

		r.Get("/health", s.handleHealth)
	})

	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// apiError is the structured error body every failing route returns.
type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, status int, kind, message string) {
	writeJSON(w, status, apiError{Error: kind, Message: message})
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "Bad request", "Malformed JSON body")
		return false
	}
	return true
}
