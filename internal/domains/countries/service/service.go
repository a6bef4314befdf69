package service

import (
	"context"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/savioruz/geoapi/config"
	"github.com/savioruz/geoapi/internal/domains/countries/dto"
	"github.com/savioruz/geoapi/internal/domains/countries/repository"
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
	MsgNotFound      = "Country not found."
	MsgNameConflict  = "Country with this name already exists."
	MsgIsoConflict   = "Country with this ISO code already exists."
	constraintIsoKey = "countries_iso_code_key"
)

var writeErrors = postgres.Classification{
	NotFound:    MsgNotFound,
	Conflict:    MsgNameConflict,
	Constraints: map[string]string{constraintIsoKey: MsgIsoConflict},
}

//go:generate mockgen -destination=../mock/service.go -package=mock github.com/savioruz/geoapi/internal/domains/countries/service CountryService

type CountryService interface {
	Get(ctx context.Context, id string) result.Result[dto.CountryResponse]
	GetAll(ctx context.Context, req dto.GetCountriesRequest) result.Result[gdto.PagedList[dto.CountryResponse]]
	Create(ctx context.Context, req dto.CreateCountryRequest) result.Result[dto.CountryResponse]
	Update(ctx context.Context, id string, req dto.UpdateCountryRequest) result.Result[result.Unit]
	Delete(ctx context.Context, id string) result.Result[result.Unit]
}

type countryService struct {
	db     postgres.PgxIface
	repo   repository.Store
	cache  redis.Cache
	cfg    *config.Config
	logger logger.Interface
}

func New(db postgres.PgxIface, repo repository.Store, cache redis.Cache, cfg *config.Config, l logger.Interface) CountryService {
	return &countryService{
		db:     db,
		repo:   repo,
		cache:  cache,
		cfg:    cfg,
		logger: l,
	}
}

func (s *countryService) Get(ctx context.Context, id string) result.Result[dto.CountryResponse] {
	cacheKey := helper.BuildCacheKey(constant.CacheKeyCountry, id)

	var cacheRes dto.CountryResponse
	if err := s.cache.Get(ctx, cacheKey, &cacheRes); err == nil {
		s.logger.Debug("service - country - get - country %s - cache hit", id)

		return result.Ok(cacheRes)
	} else if !redis.IsMiss(err) {
		s.logger.Warn("service - country - get - failed to read cache: %v", err)
	}

	country, err := s.repo.GetCountryById(ctx, s.db, helper.PgUUID(id))
	if err != nil {
		err = postgres.Classify(err, postgres.Classification{NotFound: MsgNotFound})
		if failure.KindOf(err) != failure.KindNotFound {
			s.logger.Error("service - country - get - failed to get country by id: %v", err)
		}

		return result.Fail[dto.CountryResponse](err)
	}

	res := dto.CountryResponse{}.FromModel(country)

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.Duration); err != nil {
		s.logger.Error("service - country - get - failed to set cache: %v", err)
	}

	return result.Ok(res)
}

func (s *countryService) GetAll(ctx context.Context, req dto.GetCountriesRequest) result.Result[gdto.PagedList[dto.CountryResponse]] {
	paging := req.PagedRequest.Normalize(gdto.Countries)

	cacheKey := helper.BuildCacheKey(constant.CacheKeyCountries, helper.GenerateUniqueKey(map[string]string{
		"page":       strconv.Itoa(paging.Page),
		"pageSize":   strconv.Itoa(paging.PageSize),
		"sortColumn": paging.SortColumn,
		"sortOrder":  paging.SortOrder,
		"name":       req.Name,
		"isoCode":    req.IsoCode,
	}))

	var cacheRes gdto.PagedList[dto.CountryResponse]
	if err := s.cache.Get(ctx, cacheKey, &cacheRes); err == nil {
		s.logger.Debug("service - country - get all - cache hit")

		return result.Ok(cacheRes)
	} else if !redis.IsMiss(err) {
		s.logger.Warn("service - country - get all - failed to read cache: %v", err)
	}

	spec := query.New().
		Contains(repository.FieldName, req.Name).
		Contains(repository.FieldIsoCode, req.IsoCode)

	countries, total, err := s.repo.ListCountries(ctx, s.db, spec, paging)
	if err != nil {
		s.logger.Error("service - country - get all - failed to list countries: %v", err)

		return result.Fail[gdto.PagedList[dto.CountryResponse]](failure.InternalError(err))
	}

	res := gdto.NewPagedList(dto.FromModels(countries), paging, int(total))

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.Duration); err != nil {
		s.logger.Error("service - country - get all - failed to set cache: %v", err)
	}

	return result.Ok(res)
}

func (s *countryService) Create(ctx context.Context, req dto.CreateCountryRequest) result.Result[dto.CountryResponse] {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		s.logger.Error("service - country - create - failed to begin transaction: %v", err)

		return result.Fail[dto.CountryResponse](failure.InternalError(err))
	}
	defer s.rollback(ctx, tx, "create")

	_, err = s.repo.GetCountryByName(ctx, tx, req.Name)
	if err == nil {
		return result.Fail[dto.CountryResponse](failure.Conflict(MsgNameConflict))
	}

	if !errors.Is(err, pgx.ErrNoRows) {
		s.logger.Error("service - country - create - failed to get country by name: %v", err)

		return result.Fail[dto.CountryResponse](failure.InternalError(err))
	}

	country, err := s.repo.CreateCountry(ctx, tx, repository.CreateCountryParams{
		Name:    req.Name,
		IsoCode: req.IsoCode,
	})
	if err != nil {
		err = postgres.Classify(err, writeErrors)
		s.logger.Error("service - country - create - failed to create country: %v", err)

		return result.Fail[dto.CountryResponse](err)
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error("service - country - create - failed to commit transaction: %v", err)

		return result.Fail[dto.CountryResponse](postgres.Classify(err, writeErrors))
	}

	s.invalidate(ctx, "create")

	return result.Ok(dto.CountryResponse{}.FromModel(country))
}

func (s *countryService) Update(ctx context.Context, id string, req dto.UpdateCountryRequest) result.Result[result.Unit] {
	countryID := helper.PgUUID(id)

	tx, err := s.db.Begin(ctx)
	if err != nil {
		s.logger.Error("service - country - update - failed to begin transaction: %v", err)

		return result.Fail[result.Unit](failure.InternalError(err))
	}
	defer s.rollback(ctx, tx, "update")

	if _, err = s.repo.GetCountryById(ctx, tx, countryID); err != nil {
		err = postgres.Classify(err, postgres.Classification{NotFound: MsgNotFound})
		if failure.KindOf(err) != failure.KindNotFound {
			s.logger.Error("service - country - update - failed to get country by id: %v", err)
		}

		return result.Fail[result.Unit](err)
	}

	existing, err := s.repo.GetCountryByName(ctx, tx, req.Name)
	switch {
	case err == nil && existing.ID != countryID:
		return result.Fail[result.Unit](failure.Conflict(MsgNameConflict))
	case err != nil && !errors.Is(err, pgx.ErrNoRows):
		s.logger.Error("service - country - update - failed to get country by name: %v", err)

		return result.Fail[result.Unit](failure.InternalError(err))
	}

	rows, err := s.repo.UpdateCountry(ctx, tx, repository.UpdateCountryParams{
		ID:      countryID,
		Name:    req.Name,
		IsoCode: req.IsoCode,
	})
	if err != nil {
		err = postgres.Classify(err, writeErrors)
		s.logger.Error("service - country - update - failed to update country: %v", err)

		return result.Fail[result.Unit](err)
	}

	if rows == 0 {
		return result.Fail[result.Unit](failure.NotFound(MsgNotFound))
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error("service - country - update - failed to commit transaction: %v", err)

		return result.Fail[result.Unit](postgres.Classify(err, writeErrors))
	}

	s.invalidate(ctx, "update", helper.BuildCacheKey(constant.CacheKeyCountry, id))

	return result.Ok(result.Unit{})
}

func (s *countryService) Delete(ctx context.Context, id string) result.Result[result.Unit] {
	rows, err := s.repo.DeleteCountry(ctx, s.db, helper.PgUUID(id))
	if err != nil {
		s.logger.Error("service - country - delete - failed to delete country: %v", err)

		return result.Fail[result.Unit](failure.InternalError(err))
	}

	if rows == 0 {
		return result.Fail[result.Unit](failure.NotFound(MsgNotFound))
	}

	s.invalidate(ctx, "delete", helper.BuildCacheKey(constant.CacheKeyCountry, id))

	// Cities go with their country.
	for _, pattern := range []string{
		helper.BuildCacheKey(constant.CacheKeyCity, id+":*"),
		helper.BuildCacheKey(constant.CacheKeyCities, id+":*"),
	} {
		if err := s.cache.Clear(ctx, pattern); err != nil {
			s.logger.Error("service - country - delete - failed to clear city cache: %v", err)
		}
	}

	return result.Ok(result.Unit{})
}

func (s *countryService) rollback(ctx context.Context, tx pgx.Tx, op string) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		s.logger.Error("service - country - "+op+" - failed to rollback transaction: %v", err)
	}
}

// invalidate drops the given keys and every cached country listing.
func (s *countryService) invalidate(ctx context.Context, op string, keys ...string) {
	if len(keys) > 0 {
		if err := s.cache.Delete(ctx, keys...); err != nil {
			s.logger.Error("service - country - "+op+" - failed to delete cache: %v", err)
		}
	}

	if err := s.cache.Clear(ctx, helper.BuildCacheKey(constant.CacheKeyCountries, "*")); err != nil {
		s.logger.Error("service - country - "+op+" - failed to clear cache: %v", err)
	}
}
