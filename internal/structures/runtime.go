package structures

import "net/http"

type CliFlags struct {
	EnvFile   string
	DebugMode bool
}

type Route struct {
	Url     string
	Handler http.Handler
}
