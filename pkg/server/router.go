package server

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"droscher.com/Barista/configs"
	"droscher.com/Barista/pkg/auth"
	"droscher.com/Barista/pkg/repository"
)

const (
	PermissionGetDrinksDetail = "get:drinks-detail"
	PermissionPostDrinks      = "post:drinks"
	PermissionPatchDrinks     = "patch:drinks"
	PermissionDeleteDrinks    = "delete:drinks"
)

// ServiceName is reported by the health checker.
const ServiceName = "barista.v1.DrinkService"

// NewRouter builds the drinks API. Requests outside of the known routes get
// the same JSON error envelope as handler failures.
func NewRouter(repo repository.DrinkRepository, authConf configs.Auth, metrics *Metrics, logger *zap.Logger) http.Handler {
	drinks := NewDrinkServer(repo, metrics, logger)
	authManager := auth.NewAuthManager(authConf, logger, drinks.authError)

	router := mux.NewRouter()
	router.Use(requestLogger(logger), recoverer(drinks.responder), metrics.Middleware)

	router.HandleFunc("/drinks", drinks.GetDrinks).Methods(http.MethodGet)
	router.HandleFunc("/drinks-detail", authManager.Require(PermissionGetDrinksDetail, drinks.GetDrinksDetail)).Methods(http.MethodGet)
	router.HandleFunc("/drinks", authManager.Require(PermissionPostDrinks, drinks.CreateDrink)).Methods(http.MethodPost)
	router.HandleFunc("/drinks/{id:[0-9]+}", authManager.Require(PermissionPatchDrinks, drinks.UpdateDrink)).Methods(http.MethodPatch)
	router.HandleFunc("/drinks/{id:[0-9]+}", authManager.Require(PermissionDeleteDrinks, drinks.DeleteDrink)).Methods(http.MethodDelete)
	router.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)

	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		drinks.error(w, http.StatusNotFound)
	})
	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		drinks.error(w, http.StatusMethodNotAllowed)
	})

	return router
}
