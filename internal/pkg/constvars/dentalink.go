package constvars

// DefaultBaseURL is the documented production API root.
const DefaultBaseURL = "https://api.dentalink.healthatom.com/api/v1"

const (
	EndpointCitas       = "/citas"
	EndpointSucursales  = "/sucursales"
	EndpointEstadosCita = "/citas/estados"
	EndpointCitaByIDFmt = "/citas/%d"

	AuthorizationTokenFmt = "Token %s"
	QueryParamKey         = "q"
)

// Date layouts used by the Dentalink wire format.
const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04:05"
)
