package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"droscher.com/Barista/pkg/auth"
	"droscher.com/Barista/pkg/model"
	"droscher.com/Barista/pkg/recipe"
	"droscher.com/Barista/pkg/repository"
)

var (
	ErrInvalidInput = errors.New("bad request")
	ErrEmptyTitle   = errors.New("title must be a non-empty string")
)

type DrinkServer struct {
	responder
	repository repository.DrinkRepository
	metrics    *Metrics
	logger     *zap.Logger
}

type listResponse[T any] struct {
	Success bool `json:"success"`
	Drinks  []T  `json:"drinks"`
}

type createResponse struct {
	Success bool            `json:"success"`
	Drinks  model.LongDrink `json:"drinks"`
}

type deleteResponse struct {
	Success bool `json:"success"`
	Delete  uint `json:"delete"`
}

func NewDrinkServer(repository repository.DrinkRepository, metrics *Metrics, logger *zap.Logger) *DrinkServer {
	return &DrinkServer{responder: responder{logger: logger}, repository: repository, metrics: metrics, logger: logger}
}

// GetDrinks is public and hides ingredient names.
func (d *DrinkServer) GetDrinks(w http.ResponseWriter, r *http.Request) {
	drinks, ok := d.listDrinks(w, r)
	if !ok {
		return
	}

	d.respond(w, http.StatusOK, listResponse[model.ShortDrink]{Success: true, Drinks: model.ShortDrinks(drinks)})
}

func (d *DrinkServer) GetDrinksDetail(w http.ResponseWriter, r *http.Request, _ *auth.Claims) {
	drinks, ok := d.listDrinks(w, r)
	if !ok {
		return
	}

	d.respond(w, http.StatusOK, listResponse[model.LongDrink]{Success: true, Drinks: model.LongDrinks(drinks)})
}

// listDrinks reports an empty table as not found.
func (d *DrinkServer) listDrinks(w http.ResponseWriter, r *http.Request) ([]*model.Drink, bool) {
	drinks, err := d.repository.GetDrinks(r.Context())
	if err != nil {
		d.error(w, http.StatusInternalServerError)

		return nil, false
	}

	if len(drinks) == 0 {
		d.error(w, http.StatusNotFound)

		return nil, false
	}

	return drinks, true
}

func (d *DrinkServer) CreateDrink(w http.ResponseWriter, r *http.Request, claims *auth.Claims) {
	body, err := decodeBody(r)
	if err != nil {
		d.logger.Info("invalid drink body", zap.Error(err))
		d.error(w, http.StatusBadRequest)

		return
	}

	rawTitle, hasTitle := body["title"]
	rawRecipe, hasRecipe := body["recipe"]

	if !hasTitle || !hasRecipe {
		d.error(w, http.StatusBadRequest)

		return
	}

	drink := model.Drink{}

	if err = applyTitle(&drink, rawTitle); err == nil {
		err = applyRecipe(&drink, rawRecipe)
	}

	if err != nil {
		d.logger.Info("rejected drink", zap.Error(err))
		d.error(w, http.StatusUnprocessableEntity)

		return
	}

	created, err := d.repository.AddDrink(r.Context(), drink)
	if err != nil {
		d.error(w, http.StatusUnprocessableEntity)

		return
	}

	d.metrics.drinkChanged("create")
	d.logger.Info("drink created", zap.Uint("drink_id", created.ID), zap.String("subject", claims.Subject))

	d.respond(w, http.StatusOK, createResponse{Success: true, Drinks: created.Long()})
}

func (d *DrinkServer) UpdateDrink(w http.ResponseWriter, r *http.Request, claims *auth.Claims) {
	drink, ok := d.findDrink(w, r)
	if !ok {
		return
	}

	body, err := decodeBody(r)
	if err != nil {
		d.logger.Info("invalid drink body", zap.Error(err))
		d.error(w, http.StatusBadRequest)

		return
	}

	rawTitle, hasTitle := body["title"]
	rawRecipe, hasRecipe := body["recipe"]

	if !hasTitle && !hasRecipe {
		d.error(w, http.StatusUnprocessableEntity)

		return
	}

	if hasTitle {
		err = applyTitle(drink, rawTitle)
	}

	if err == nil && hasRecipe {
		err = applyRecipe(drink, rawRecipe)
	}

	if err != nil {
		d.logger.Info("rejected drink update", zap.Uint("drink_id", drink.ID), zap.Error(err))
		d.error(w, http.StatusUnprocessableEntity)

		return
	}

	updated, err := d.repository.UpdateDrink(r.Context(), drink)
	if err != nil {
		if errors.Is(err, repository.ErrDrinkNotFound) {
			d.error(w, http.StatusNotFound)
		} else {
			d.error(w, http.StatusUnprocessableEntity)
		}

		return
	}

	d.metrics.drinkChanged("update")
	d.logger.Info("drink updated", zap.Uint("drink_id", updated.ID), zap.String("subject", claims.Subject))

	d.respond(w, http.StatusOK, listResponse[model.LongDrink]{Success: true, Drinks: []model.LongDrink{updated.Long()}})
}

func (d *DrinkServer) DeleteDrink(w http.ResponseWriter, r *http.Request, claims *auth.Claims) {
	drink, ok := d.findDrink(w, r)
	if !ok {
		return
	}

	if err := d.repository.DeleteDrink(r.Context(), drink.ID); err != nil {
		if errors.Is(err, repository.ErrDrinkNotFound) {
			d.error(w, http.StatusNotFound)
		} else {
			d.error(w, http.StatusUnprocessableEntity)
		}

		return
	}

	d.metrics.drinkChanged("delete")
	d.logger.Info("drink deleted", zap.Uint("drink_id", drink.ID), zap.String("subject", claims.Subject))

	d.respond(w, http.StatusOK, deleteResponse{Success: true, Delete: drink.ID})
}

func (d *DrinkServer) findDrink(w http.ResponseWriter, r *http.Request) (*model.Drink, bool) {
	drinkID, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 0)
	if err != nil {
		d.error(w, http.StatusNotFound)

		return nil, false
	}

	drink, err := d.repository.GetDrinkByID(r.Context(), uint(drinkID))
	if err != nil {
		if errors.Is(err, repository.ErrDrinkNotFound) {
			d.error(w, http.StatusNotFound)
		} else {
			d.logger.Error("error loading drink", zap.Uint64("drink_id", drinkID), zap.Error(err))
			d.error(w, http.StatusInternalServerError)
		}

		return nil, false
	}

	return drink, true
}

// decodeBody keeps the raw fields so that absent and null keys can be told apart.
func decodeBody(r *http.Request) (map[string]json.RawMessage, error) {
	var body map[string]json.RawMessage

	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	return body, nil
}

func applyTitle(drink *model.Drink, raw json.RawMessage) error {
	var title string

	if err := json.Unmarshal(raw, &title); err != nil {
		return fmt.Errorf("%w: %w", ErrEmptyTitle, err)
	}

	if title == "" {
		return ErrEmptyTitle
	}

	drink.Title = title

	return nil
}

func applyRecipe(drink *model.Drink, raw json.RawMessage) error {
	parsed, err := recipe.Parse(raw)
	if err != nil {
		return err
	}

	drink.Recipe = parsed

	return nil
}
