package config

// Defaults match a Spring Boot service exposing springdoc at /api/v3/api-docs.
const (
	DefaultDocsURL      = "http://localhost:8080/api/v3/api-docs"
	DefaultBaseURL      = "http://localhost:8080/api"
	DefaultAPIKeyHeader = "X-API-KEY"
	DefaultExecutor     = "http"
	DefaultCurlPath     = "curl"
	DefaultLogLevel     = "info"
)
