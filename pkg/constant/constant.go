package constant

const (
	CacheParentKey = "geoapi"

	CacheKeyCountry   = "country"
	CacheKeyCountries = "countries"
	CacheKeyCity      = "city"
	CacheKeyCities    = "cities"
	CacheKeyUser      = "user"
)

const (
	RequestParamID        = "id"
	RequestParamCountryID = "countryId"

	RequestValidateUUID = "required,uuid"
)

const (
	RoleAdmin = "Admin"
	RoleUser  = "User"
)

const (
	JwtFieldUser     = "user_id"
	JwtFieldUserName = "user_name"
	JwtFieldEmail    = "email"
	JwtFieldRoles    = "roles"
	JwtFieldTokenID  = "token_id"
	JwtFieldExpiry   = "token_expiry"

	LocalRequestID = "request_id"
	LocalVerbose   = "verbose_errors"
)

const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"
)
