package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY ContextKey = "request_id"
)

const (
	AppName      = "saude-connect"
	AppUserAgent = "saude-connect-client"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)
