package repository

//go:generate mockgen -destination=../mock/querier.go -package=mock github.com/savioruz/geoapi/internal/domains/auth/repository Querier
