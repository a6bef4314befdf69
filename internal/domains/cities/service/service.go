package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/savioruz/geoapi/config"
	"github.com/savioruz/geoapi/internal/domains/cities/dto"
	"github.com/savioruz/geoapi/internal/domains/cities/repository"
	"github.com/savioruz/geoapi/pkg/constant"
	"github.com/savioruz/geoapi/pkg/failure"
	"github.com/savioruz/geoapi/pkg/gdto"
	"github.com/savioruz/geoapi/pkg/helper"
	"github.com/savioruz/geoapi/pkg/logger"
	"github.com/savioruz/geoapi/pkg/postgres"
	"github.com/savioruz/geoapi/pkg/query"
	"github.com/savioruz/geoapi/pkg/redis"
	"github.com/savioruz/geoapi/pkg/result"
)

const (
	MsgNotFound        = "City not found."
	MsgCountryNotFound = "Country not found."
	MsgConflict        = "City with this name already exists in this country."
)

var writeErrors = postgres.Classification{
	NotFound:      MsgNotFound,
	Conflict:      MsgConflict,
	MissingParent: MsgCountryNotFound,
}

//go:generate mockgen -destination=../mock/service.go -package=mock github.com/savioruz/geoapi/internal/domains/cities/service CityService

// CityService manages the cities of one country. Every operation is scoped by the country id;
// a city that exists under another country is reported as not found.
type CityService interface {
	Get(ctx context.Context, countryID, id string) result.Result[dto.CityResponse]
	GetAll(ctx context.Context, countryID string, req dto.GetCitiesRequest) result.Result[gdto.PagedList[dto.CityResponse]]
	Create(ctx context.Context, countryID string, req dto.CreateCityRequest) result.Result[dto.CityResponse]
	Update(ctx context.Context, countryID, id string, req dto.UpdateCityRequest) result.Result[result.Unit]
	Delete(ctx context.Context, countryID, id string) result.Result[result.Unit]
}

type cityService struct {
	db     postgres.PgxIface
	repo   repository.Store
	cache  redis.Cache
	cfg    *config.Config
	logger logger.Interface
}

func New(db postgres.PgxIface, repo repository.Store, cache redis.Cache, cfg *config.Config, l logger.Interface) CityService {
	return &cityService{
		db:     db,
		repo:   repo,
		cache:  cache,
		cfg:    cfg,
		logger: l,
	}
}

func cityKey(countryID, id string) string {
	return helper.BuildCacheKey(constant.CacheKeyCity, countryID+":"+id)
}

func citiesKey(countryID, postfix string) string {
	return helper.BuildCacheKey(constant.CacheKeyCities, countryID+":"+postfix)
}

func (s *cityService) Get(ctx context.Context, countryID, id string) result.Result[dto.CityResponse] {
	cacheKey := cityKey(countryID, id)

	var cacheRes dto.CityResponse
	if err := s.cache.Get(ctx, cacheKey, &cacheRes); err == nil {
		s.logger.Debug("service - city - get - city %s - cache hit", id)

		return result.Ok(cacheRes)
	} else if !redis.IsMiss(err) {
		s.logger.Warn("service - city - get - failed to read cache: %v", err)
	}

	city, err := s.repo.GetCityById(ctx, s.db, repository.GetCityByIdParams{
		ID:        helper.PgUUID(id),
		CountryID: helper.PgUUID(countryID),
	})
	if err != nil {
		err = postgres.Classify(err, postgres.Classification{NotFound: MsgNotFound})
		if failure.KindOf(err) != failure.KindNotFound {
			s.logger.Error("service - city - get - failed to get city by id: %v", err)
		}

		return result.Fail[dto.CityResponse](err)
	}

	res := dto.CityResponse{}.FromModel(city)

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.Duration); err != nil {
		s.logger.Error("service - city - get - failed to set cache: %v", err)
	}

	return result.Ok(res)
}

func (s *cityService) GetAll(ctx context.Context, countryID string, req dto.GetCitiesRequest) result.Result[gdto.PagedList[dto.CityResponse]] {
	parent := helper.PgUUID(countryID)

	if err := s.countryExists(ctx, s.db, parent, "get all"); err != nil {
		return result.Fail[gdto.PagedList[dto.CityResponse]](err)
	}

	paging := req.PagedRequest.Normalize(gdto.Cities)

	cacheKey := citiesKey(countryID, helper.GenerateUniqueKey(map[string]string{
		"page":       strconv.Itoa(paging.Page),
		"pageSize":   strconv.Itoa(paging.PageSize),
		"sortColumn": paging.SortColumn,
		"sortOrder":  paging.SortOrder,
		"name":       req.Name,
		"latitude":   formatCoordinate(req.Latitude),
		"longitude":  formatCoordinate(req.Longitude),
	}))

	var cacheRes gdto.PagedList[dto.CityResponse]
	if err := s.cache.Get(ctx, cacheKey, &cacheRes); err == nil {
		s.logger.Debug("service - city - get all - cache hit")

		return result.Ok(cacheRes)
	} else if !redis.IsMiss(err) {
		s.logger.Warn("service - city - get all - failed to read cache: %v", err)
	}

	spec := query.New().
		Scoped(repository.FieldCountryID, parent).
		Contains(repository.FieldName, req.Name).
		Equals(repository.FieldLatitude, req.Latitude).
		Equals(repository.FieldLongitude, req.Longitude)

	cities, total, err := s.repo.ListCities(ctx, s.db, spec, paging)
	if err != nil {
		s.logger.Error("service - city - get all - failed to list cities: %v", err)

		return result.Fail[gdto.PagedList[dto.CityResponse]](failure.InternalError(err))
	}

	res := gdto.NewPagedList(dto.FromModels(cities), paging, int(total))

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.Duration); err != nil {
		s.logger.Error("service - city - get all - failed to set cache: %v", err)
	}

	return result.Ok(res)
}

func (s *cityService) Create(ctx context.Context, countryID string, req dto.CreateCityRequest) result.Result[dto.CityResponse] {
	parent := helper.PgUUID(countryID)

	tx, err := s.db.Begin(ctx)
	if err != nil {
		s.logger.Error("service - city - create - failed to begin transaction: %v", err)

		return result.Fail[dto.CityResponse](failure.InternalError(err))
	}
	defer s.rollback(ctx, tx, "create")

	if err = s.countryExists(ctx, tx, parent, "create"); err != nil {
		return result.Fail[dto.CityResponse](err)
	}

	_, err = s.repo.GetCityByName(ctx, tx, repository.GetCityByNameParams{CountryID: parent, Name: req.Name})
	if err == nil {
		return result.Fail[dto.CityResponse](failure.Conflict(MsgConflict))
	}

	if !errors.Is(err, pgx.ErrNoRows) {
		s.logger.Error("service - city - create - failed to get city by name: %v", err)

		return result.Fail[dto.CityResponse](failure.InternalError(err))
	}

	city, err := s.repo.CreateCity(ctx, tx, repository.CreateCityParams{
		CountryID: parent,
		Name:      req.Name,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	})
	if err != nil {
		err = postgres.Classify(err, writeErrors)
		s.logger.Error("service - city - create - failed to create city: %v", err)

		return result.Fail[dto.CityResponse](err)
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error("service - city - create - failed to commit transaction: %v", err)

		return result.Fail[dto.CityResponse](postgres.Classify(err, writeErrors))
	}

	s.invalidate(ctx, "create", countryID)

	return result.Ok(dto.CityResponse{}.FromModel(city))
}

func (s *cityService) Update(ctx context.Context, countryID, id string, req dto.UpdateCityRequest) result.Result[result.Unit] {
	parent, cityID := helper.PgUUID(countryID), helper.PgUUID(id)

	tx, err := s.db.Begin(ctx)
	if err != nil {
		s.logger.Error("service - city - update - failed to begin transaction: %v", err)

		return result.Fail[result.Unit](failure.InternalError(err))
	}
	defer s.rollback(ctx, tx, "update")

	_, err = s.repo.GetCityById(ctx, tx, repository.GetCityByIdParams{ID: cityID, CountryID: parent})
	if err != nil {
		err = postgres.Classify(err, postgres.Classification{NotFound: MsgNotFound})
		if failure.KindOf(err) != failure.KindNotFound {
			s.logger.Error("service - city - update - failed to get city by id: %v", err)
		}

		return result.Fail[result.Unit](err)
	}

	existing, err := s.repo.GetCityByName(ctx, tx, repository.GetCityByNameParams{CountryID: parent, Name: req.Name})
	switch {
	case err == nil && existing.ID != cityID:
		return result.Fail[result.Unit](failure.Conflict(MsgConflict))
	case err != nil && !errors.Is(err, pgx.ErrNoRows):
		s.logger.Error("service - city - update - failed to get city by name: %v", err)

		return result.Fail[result.Unit](failure.InternalError(err))
	}

	rows, err := s.repo.UpdateCity(ctx, tx, repository.UpdateCityParams{
		ID:        cityID,
		CountryID: parent,
		Name:      req.Name,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	})
	if err != nil {
		err = postgres.Classify(err, writeErrors)
		s.logger.Error("service - city - update - failed to update city: %v", err)

		return result.Fail[result.Unit](err)
	}

	if rows == 0 {
		return result.Fail[result.Unit](failure.NotFound(MsgNotFound))
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error("service - city - update - failed to commit transaction: %v", err)

		return result.Fail[result.Unit](postgres.Classify(err, writeErrors))
	}

	s.invalidate(ctx, "update", countryID, cityKey(countryID, id))

	return result.Ok(result.Unit{})
}

func (s *cityService) Delete(ctx context.Context, countryID, id string) result.Result[result.Unit] {
	rows, err := s.repo.DeleteCity(ctx, s.db, repository.DeleteCityParams{
		ID:        helper.PgUUID(id),
		CountryID: helper.PgUUID(countryID),
	})
	if err != nil {
		s.logger.Error("service - city - delete - failed to delete city: %v", err)

		return result.Fail[result.Unit](failure.InternalError(err))
	}

	if rows == 0 {
		return result.Fail[result.Unit](failure.NotFound(MsgNotFound))
	}

	s.invalidate(ctx, "delete", countryID, cityKey(countryID, id))

	return result.Ok(result.Unit{})
}

func (s *cityService) countryExists(ctx context.Context, db repository.DBTX, id pgtype.UUID, op string) error {
	exists, err := s.repo.CountryExists(ctx, db, id)
	if err != nil {
		s.logger.Error("service - city - "+op+" - failed to check country: %v", err)

		return failure.InternalError(err)
	}

	if !exists {
		return failure.NotFound(MsgCountryNotFound)
	}

	return nil
}

func (s *cityService) rollback(ctx context.Context, tx pgx.Tx, op string) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		s.logger.Error("service - city - "+op+" - failed to rollback transaction: %v", err)
	}
}

// invalidate drops the given keys and every cached listing of the country's cities.
func (s *cityService) invalidate(ctx context.Context, op, countryID string, keys ...string) {
	if len(keys) > 0 {
		if err := s.cache.Delete(ctx, keys...); err != nil {
			s.logger.Error("service - city - "+op+" - failed to delete cache: %v", err)
		}
	}

	if err := s.cache.Clear(ctx, citiesKey(countryID, "*")); err != nil {
		s.logger.Error("service - city - "+op+" - failed to clear cache: %v", err)
	}
}

func formatCoordinate(v *float64) string {
	if v == nil {
		return ""
	}

	return fmt.Sprintf("%.6f", *v)
}
