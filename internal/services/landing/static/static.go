package static

import "embed"

// FS exposes landing static assets for HTTP serving.
//
//go:embed *.css *.js *.ico *.sh
var FS embed.FS

// Names of assets served from fixed routes rather than /static/.
const (
	InstallScript = "install.sh"
	Favicon       = "favicon.ico"
)
