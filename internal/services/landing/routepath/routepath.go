// Package routepath stores canonical HTTP paths for the landing service.
package routepath

const (
	Root             = "/"
	Install          = "/install"
	Health           = "/health"
	AssetsPrefix     = "/assets/"
	Favicon          = AssetsPrefix + "favicon.ico"
	RootFavicon      = "/favicon.ico"
	StaticPrefix     = "/static/"
	Stylesheet       = StaticPrefix + "landing.css"
	Script           = StaticPrefix + "landing.js"
	APIPrefix        = "/api/"
	Languages        = APIPrefix + "languages"
	Hello            = APIPrefix + "hello"
	HelloPrefix      = Hello + "/"
	HelloNamePattern = HelloPrefix + "{name}"
)
