package app

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	cityMock "github.com/savioruz/geoapi/internal/domains/cities/mock"
	cityRepository "github.com/savioruz/geoapi/internal/domains/cities/repository"
	countryMock "github.com/savioruz/geoapi/internal/domains/countries/mock"
	countryRepository "github.com/savioruz/geoapi/internal/domains/countries/repository"
	userMock "github.com/savioruz/geoapi/internal/domains/user/mock"
	userRepository "github.com/savioruz/geoapi/internal/domains/user/repository"
	"github.com/savioruz/geoapi/pkg/helper"
	log "github.com/savioruz/geoapi/pkg/logger/mock"
	"github.com/savioruz/geoapi/pkg/password"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type seedMocks struct {
	db        pgxmock.PgxPoolIface
	countries *countryMock.MockStore
	cities    *cityMock.MockStore
	users     *userMock.MockStore
}

func newSeeder(t *testing.T) (*Seeder, seedMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)

	db, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(db.Close)

	l := log.NewMockInterface(ctrl)
	l.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()
	l.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()

	m := seedMocks{
		db:        db,
		countries: countryMock.NewMockStore(ctrl),
		cities:    cityMock.NewMockStore(ctrl),
		users:     userMock.NewMockStore(ctrl),
	}

	return NewSeeder(db, m.countries, m.cities, m.users, l), m
}

func cityCount() int {
	n := 0
	for _, c := range seedCountries {
		n += len(c.cities)
	}

	return n
}

func TestSeeder_Seed(t *testing.T) {
	ctx := context.Background()

	t.Run("success: existing data is left untouched", func(t *testing.T) {
		s, m := newSeeder(t)

		m.db.ExpectBegin()
		m.users.EXPECT().GetUserByUsername(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(userRepository.User{}, nil).Times(len(seedUsers))
		m.countries.EXPECT().GetCountryByName(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(countryRepository.Country{ID: helper.PgUUID("4b6f0e3c-1c1a-4d4e-9f0a-2a7c4b1e9d01")}, nil).
			Times(len(seedCountries))
		m.cities.EXPECT().GetCityByName(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(cityRepository.City{}, nil).Times(cityCount())
		m.db.ExpectCommit()
		m.db.ExpectRollback()

		require.NoError(t, s.Seed(ctx))
		assert.NoError(t, m.db.ExpectationsWereMet())
	})

	t.Run("success: empty database", func(t *testing.T) {
		s, m := newSeeder(t)

		var hashes []string

		m.db.ExpectBegin()
		m.users.EXPECT().GetUserByUsername(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(userRepository.User{}, pgx.ErrNoRows).Times(len(seedUsers))
		m.users.EXPECT().CreateUser(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ userRepository.DBTX, arg userRepository.CreateUserParams) (userRepository.User, error) {
				hashes = append(hashes, arg.PasswordHash)

				return userRepository.User{ID: helper.PgUUID("0b9d1f0e-7c5a-4a8e-9a45-5c7c0f6b8e11"), Username: arg.Username}, nil
			}).Times(len(seedUsers))
		m.users.EXPECT().AddUserRole(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(3)
		m.countries.EXPECT().GetCountryByName(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(countryRepository.Country{}, pgx.ErrNoRows).Times(len(seedCountries))
		m.countries.EXPECT().CreateCountry(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(countryRepository.Country{ID: helper.PgUUID("4b6f0e3c-1c1a-4d4e-9f0a-2a7c4b1e9d01")}, nil).
			Times(len(seedCountries))
		m.cities.EXPECT().GetCityByName(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(cityRepository.City{}, pgx.ErrNoRows).Times(cityCount())
		m.cities.EXPECT().CreateCity(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(cityRepository.City{}, nil).Times(cityCount())
		m.db.ExpectCommit()
		m.db.ExpectRollback()

		require.NoError(t, s.Seed(ctx))
		require.Len(t, hashes, 2)
		assert.True(t, password.Check("Admin123!", hashes[0]))
		assert.True(t, password.Check("User123!", hashes[1]))
		assert.NoError(t, m.db.ExpectationsWereMet())
	})

	t.Run("error: lookup failure rolls back", func(t *testing.T) {
		s, m := newSeeder(t)

		m.db.ExpectBegin()
		m.users.EXPECT().GetUserByUsername(gomock.Any(), gomock.Any(), "admin").
			Return(userRepository.User{}, errors.New("connection reset"))
		m.db.ExpectRollback()

		err := s.Seed(ctx)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "seed - user admin")
		assert.NoError(t, m.db.ExpectationsWereMet())
	})
}
