package transport

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	catalogapp "github.com/muhammadheryan/e-voting/application/catalog"
	configapp "github.com/muhammadheryan/e-voting/application/config"
	"github.com/muhammadheryan/e-voting/application/realtime"
	userapp "github.com/muhammadheryan/e-voting/application/user"
	voteapp "github.com/muhammadheryan/e-voting/application/vote"
	"github.com/muhammadheryan/e-voting/cmd/config"
	"github.com/muhammadheryan/e-voting/constant"
	"github.com/muhammadheryan/e-voting/model"
	"github.com/muhammadheryan/e-voting/thirdparty/ipresolver"
	"github.com/muhammadheryan/e-voting/utils/errors"
	validatorx "github.com/muhammadheryan/e-voting/utils/validator"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	UserApp    userapp.UserApp
	VoteApp    voteapp.VoteApp
	ConfigApp  configapp.ConfigApp
	CatalogApp catalogapp.CatalogApp
	Projector  realtime.Projector
	IPResolver ipresolver.Resolver
}

func NewTransport(auth config.AuthConfig, rh *RestHandler) http.Handler {
	mux := mux.NewRouter()

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Public routes
	mux.HandleFunc("/config", rh.GetConfig).Methods(http.MethodGet)
	mux.HandleFunc("/categories", rh.GetCategories).Methods(http.MethodGet)
	mux.HandleFunc("/live", rh.GetLive).Methods(http.MethodGet)
	mux.HandleFunc("/dashboard", rh.GetDashboard).Methods(http.MethodGet)
	mux.HandleFunc("/login", rh.Login).Methods(http.MethodPost)

	// protected routes
	mux.HandleFunc("/selection", rh.GetSelection).Methods(http.MethodGet)
	mux.HandleFunc("/selection/amount", rh.SelectAmount).Methods(http.MethodPost)
	mux.HandleFunc("/selection/nominee", rh.ChooseNominee).Methods(http.MethodPost)
	mux.HandleFunc("/payment/initiate", rh.InitiatePayment).Methods(http.MethodPost)
	mux.HandleFunc("/payment/cancel", rh.CancelPayment).Methods(http.MethodPost)
	mux.HandleFunc("/payment/callback", rh.PaymentCallback).Methods(http.MethodPost)

	// internal routes
	internal := mux.PathPrefix("/internal/v1").Subrouter()
	internal.Use(InternalMiddleware(auth.InternalAPIKey))
	internal.HandleFunc("/payment/{reference}/expire", rh.ExpirePayment).Methods(http.MethodPost)

	// admin routes
	admin := mux.PathPrefix("/admin").Subrouter()
	admin.Use(AdminMiddleware(auth.AdminUser, auth.AdminPasswordHash))
	admin.HandleFunc("/config/{key}", rh.UpdateConfig).Methods(http.MethodPut)

	// middleware
	mux.Use(LoggingMiddleware())
	mux.Use(AuthMiddleware(rh.UserApp))

	return mux
}

// GetConfig handler
// @Summary Public configuration
// @Description Title, currency, payment key and vote rates used by the voting page
// @Tags Config
// @Produce json
// @Success 200 {object} model.AppConfig
// @Failure 500 {object} Response
// @Router /config [get]
func (s *RestHandler) GetConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := s.ConfigApp.Get(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, cfg)
}

// GetCategories handler
// @Summary List categories
// @Description Active categories in display order with their active nominees
// @Tags Catalog
// @Produce json
// @Success 200 {object} model.CatalogResponse
// @Failure 500 {object} Response
// @Router /categories [get]
func (s *RestHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	res, err := s.CatalogApp.GetCatalog(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetLive handler
// @Summary Live view
// @Description Nominee vote counts and rate options kept current by change events
// @Tags Catalog
// @Produce json
// @Success 200 {object} model.LiveView
// @Router /live [get]
func (s *RestHandler) GetLive(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, s.Projector.Snapshot())
}

// GetDashboard handler
// @Summary Dashboard
// @Description Vote totals, revenue, voters and per category leaderboards
// @Tags Catalog
// @Produce json
// @Success 200 {object} model.DashboardResponse
// @Failure 500 {object} Response
// @Router /dashboard [get]
func (s *RestHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	res, err := s.CatalogApp.GetDashboard(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Login handler
// @Summary Login voter
// @Description Login with the 9 digits of a phone number and receive a session token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} model.LoginResponse
// @Failure 400 {object} Response
// @Router /login [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidPhone))
		return
	}

	req.IPAddress = s.IPResolver.Resolve(ctx, r)
	req.UserAgent = r.UserAgent()

	res, err := s.UserApp.Login(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// UpdateConfig handler
// @Summary Update configuration entry
// @Description Change one app_config value and notify live views
// @Tags Admin
// @Accept json
// @Produce json
// @Param key path string true "Config key"
// @Param request body model.UpdateConfigRequest true "Update Config Request"
// @Success 200 {object} model.ConfigEntity
// @Failure 400 {object} Response
// @Failure 401 {object} Response
// @Router /admin/config/{key} [put]
func (s *RestHandler) UpdateConfig(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	req.Key = mux.Vars(r)["key"]

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.ConfigApp.Update(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
