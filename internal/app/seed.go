package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	cityRepository "github.com/savioruz/geoapi/internal/domains/cities/repository"
	countryRepository "github.com/savioruz/geoapi/internal/domains/countries/repository"
	userRepository "github.com/savioruz/geoapi/internal/domains/user/repository"
	"github.com/savioruz/geoapi/pkg/constant"
	"github.com/savioruz/geoapi/pkg/logger"
	"github.com/savioruz/geoapi/pkg/password"
	"github.com/savioruz/geoapi/pkg/postgres"
)

type seedUser struct {
	userName  string
	email     string
	firstName string
	lastName  string
	password  string
	roles     []string
}

type seedCity struct {
	name      string
	latitude  float64
	longitude float64
}

type seedCountry struct {
	name    string
	isoCode string
	cities  []seedCity
}

var seedUsers = []seedUser{
	{"admin", "admin@geoapi.com", "Admin", "User", "Admin123!", []string{constant.RoleAdmin, constant.RoleUser}},
	{"user", "user@geoapi.com", "Regular", "User", "User123!", []string{constant.RoleUser}},
}

var seedCountries = []seedCountry{
	{"Canada", "CAN", []seedCity{{"Toronto", 43.6532, -79.3832}, {"Vancouver", 49.2827, -123.1207}, {"Montreal", 45.5017, -73.5673}}},
	{"Germany", "DEU", []seedCity{{"Berlin", 52.52, 13.405}, {"Munich", 48.1351, 11.582}, {"Hamburg", 53.5511, 9.9937}}},
	{"France", "FRA", []seedCity{{"Paris", 48.8566, 2.3522}, {"Lyon", 45.764, 4.8357}, {"Marseille", 43.2965, 5.3698}}},
	{"Japan", "JPN", []seedCity{{"Tokyo", 35.6762, 139.6503}, {"Osaka", 34.6937, 135.5023}, {"Kyoto", 35.0116, 135.7681}}},
	{"Brazil", "BRA", []seedCity{{"Sao Paulo", -23.5505, -46.6333}, {"Rio de Janeiro", -22.9068, -43.1729}}},
	{"Australia", "AUS", []seedCity{{"Sydney", -33.8688, 151.2093}, {"Melbourne", -37.8136, 144.9631}}},
	{"India", "IND", []seedCity{{"Mumbai", 19.076, 72.8777}, {"Delhi", 28.7041, 77.1025}, {"Bangalore", 12.9716, 77.5946}}},
	{"Indonesia", "IDN", []seedCity{{"Jakarta", -6.2088, 106.8456}, {"Surabaya", -7.2575, 112.7521}, {"Bandung", -6.9175, 107.6191}}},
	{"Kenya", "KEN", []seedCity{{"Nairobi", -1.2921, 36.8219}, {"Mombasa", -4.0435, 39.6682}}},
	{"Mexico", "MEX", []seedCity{{"Mexico City", 19.4326, -99.1332}, {"Guadalajara", 20.6597, -103.3496}}},
}

// Seeder loads the development data set. Rows that already exist are left untouched.
type Seeder struct {
	db        postgres.PgxIface
	countries countryRepository.Querier
	cities    cityRepository.Querier
	users     userRepository.Querier
	logger    logger.Interface
}

func NewSeeder(
	db postgres.PgxIface,
	countries countryRepository.Querier,
	cities cityRepository.Querier,
	users userRepository.Querier,
	l logger.Interface,
) *Seeder {
	return &Seeder{
		db:        db,
		countries: countries,
		cities:    cities,
		users:     users,
		logger:    l,
	}
}

func (s *Seeder) Seed(ctx context.Context) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("seed - begin: %w", err)
	}

	defer func() {
		if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			s.logger.Error("app - seed - rollback: %v", err)
		}
	}()

	for _, u := range seedUsers {
		if err := s.seedUser(ctx, tx, u); err != nil {
			return err
		}
	}

	for _, c := range seedCountries {
		if err := s.seedCountry(ctx, tx, c); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("seed - commit: %w", err)
	}

	s.logger.Info("app - seed - development data loaded")

	return nil
}

func (s *Seeder) seedUser(ctx context.Context, tx pgx.Tx, u seedUser) error {
	_, err := s.users.GetUserByUsername(ctx, tx, u.userName)
	if err == nil {
		return nil
	}

	if !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("seed - user %s: %w", u.userName, err)
	}

	hash, err := password.Hash(u.password)
	if err != nil {
		return fmt.Errorf("seed - user %s: %w", u.userName, err)
	}

	created, err := s.users.CreateUser(ctx, tx, userRepository.CreateUserParams{
		Username:     u.userName,
		Email:        u.email,
		FirstName:    u.firstName,
		LastName:     u.lastName,
		PasswordHash: hash,
	})
	if err != nil {
		return fmt.Errorf("seed - user %s: %w", u.userName, err)
	}

	for _, role := range u.roles {
		if err := s.users.AddUserRole(ctx, tx, userRepository.AddUserRoleParams{UserID: created.ID, Role: role}); err != nil {
			return fmt.Errorf("seed - user %s role %s: %w", u.userName, role, err)
		}
	}

	return nil
}

func (s *Seeder) seedCountry(ctx context.Context, tx pgx.Tx, c seedCountry) error {
	country, err := s.countries.GetCountryByName(ctx, tx, c.name)

	switch {
	case errors.Is(err, pgx.ErrNoRows):
		country, err = s.countries.CreateCountry(ctx, tx, countryRepository.CreateCountryParams{
			Name:    c.name,
			IsoCode: c.isoCode,
		})
		if err != nil {
			return fmt.Errorf("seed - country %s: %w", c.name, err)
		}
	case err != nil:
		return fmt.Errorf("seed - country %s: %w", c.name, err)
	}

	for _, city := range c.cities {
		_, err := s.cities.GetCityByName(ctx, tx, cityRepository.GetCityByNameParams{CountryID: country.ID, Name: city.name})
		if err == nil {
			continue
		}

		if !errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("seed - city %s: %w", city.name, err)
		}

		if _, err := s.cities.CreateCity(ctx, tx, cityRepository.CreateCityParams{
			CountryID: country.ID,
			Name:      city.name,
			Latitude:  city.latitude,
			Longitude: city.longitude,
		}); err != nil {
			return fmt.Errorf("seed - city %s: %w", city.name, err)
		}
	}

	return nil
}
