package landing

import (
	"io/fs"
	"log/slog"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/zarazaex69/zik-landing/internal/content"
	apperrors "github.com/zarazaex69/zik-landing/internal/services/landing/platform/errors"
	"github.com/zarazaex69/zik-landing/internal/services/landing/platform/httpx"
	"github.com/zarazaex69/zik-landing/internal/services/landing/routepath"
	"github.com/zarazaex69/zik-landing/internal/services/landing/static"
	"github.com/zarazaex69/zik-landing/internal/services/landing/templates"
	"github.com/zarazaex69/zik-landing/internal/services/shared/i18nhttp"
	"github.com/zarazaex69/zik-landing/internal/services/shared/route"
)

type handlers struct {
	store       *content.Store
	assets      fs.FS
	version     string
	defaultLang content.Code
	logger      *slog.Logger
}

// helloResponse is the body of the hello echo endpoints.
type helloResponse struct {
	Message string `json:"message"`
	Method  string `json:"method,omitempty"`
}

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

type languageEntry struct {
	Code   content.Code `json:"code"`
	Tag    string       `json:"tag"`
	Label  string       `json:"label"`
	URL    string       `json:"url"`
	Active bool         `json:"active"`
}

type languagesResponse struct {
	Active      content.Code    `json:"active"`
	ActiveLabel string          `json:"active_label"`
	Languages   []languageEntry `json:"languages"`
}

func registerRoutes(mux *http.ServeMux, h handlers) {
	get := httpx.RequireMethod(http.MethodGet)

	mux.Handle(routepath.StaticPrefix, get(http.HandlerFunc(h.handleStatic)))
	mux.Handle(routepath.Install, get(http.HandlerFunc(h.handleInstall)))
	mux.Handle(routepath.Favicon, get(http.HandlerFunc(h.handleFavicon)))
	mux.Handle(routepath.RootFavicon, get(http.HandlerFunc(h.handleFavicon)))
	mux.Handle(routepath.Health, get(http.HandlerFunc(h.handleHealth)))
	mux.Handle(routepath.Languages, get(http.HandlerFunc(h.handleLanguages)))
	mux.Handle(routepath.Hello, httpx.RequireMethod(http.MethodGet, http.MethodPut)(http.HandlerFunc(h.handleHello)))
	mux.Handle(routepath.HelloNamePattern, get(http.HandlerFunc(h.handleHelloName)))
	mux.Handle(routepath.Root, get(http.HandlerFunc(h.handlePage)))
}

// handlePage serves the landing page for "/" and every unmatched path.
func (h handlers) handlePage(w http.ResponseWriter, r *http.Request) {
	if route.RedirectTrailingSlash(w, r) {
		return
	}
	v := mountView(h.store, i18nhttp.ResolveStoredCode(r, h.defaultLang), templates.ViewState{
		Path:     r.URL.Path,
		RawQuery: r.URL.RawQuery,
	})
	defer v.Close()
	v.OnLanguageChange(func(code content.Code) {
		i18nhttp.SetLanguageCookie(w, code)
	})

	if requested := i18nhttp.QueryLanguage(r); requested != "" {
		if _, ok := v.SetLanguage(requested); !ok {
			h.logger.DebugContext(r.Context(), "ignoring unsupported language",
				slog.String("lang", requested),
				slog.String("active", string(v.Language())),
			)
		}
	}

	w.Header().Set("Content-Language", content.Tag(v.Language()).String())
	w.Header().Set("Vary", "Cookie, Accept-Language")
	templ.Handler(v.Page()).ServeHTTP(w, r)
}

func (h handlers) handleInstall(w http.ResponseWriter, r *http.Request) {
	h.serveAsset(w, r, static.InstallScript, "text/plain; charset=utf-8")
}

func (h handlers) handleFavicon(w http.ResponseWriter, r *http.Request) {
	h.serveAsset(w, r, static.Favicon, "image/x-icon")
}

// handleStatic serves single embedded files. Directories, the prefix
// itself included, are never listed.
func (h handlers) handleStatic(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(r.URL.Path, routepath.StaticPrefix)
	info, err := fs.Stat(h.assets, name)
	if err != nil || info.IsDir() {
		httpx.WriteError(w, apperrors.E(apperrors.KindNotFound, "asset not found"))
		return
	}
	http.ServeFileFS(w, r, h.assets, name)
}

func (h handlers) serveAsset(w http.ResponseWriter, r *http.Request, name string, contentType string) {
	payload, err := fs.ReadFile(h.assets, name)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "read static asset", slog.String("asset", name), slog.Any("error", err))
		httpx.WriteError(w, apperrors.E(apperrors.KindNotFound, "asset not found"))
		return
	}
	_ = httpx.WriteContent(w, http.StatusOK, contentType, payload)
}

func (h handlers) handleHealth(w http.ResponseWriter, _ *http.Request) {
	_ = httpx.WriteJSON(w, http.StatusOK, healthResponse{Status: "ok", Version: h.version})
}

func (h handlers) handleLanguages(w http.ResponseWriter, r *http.Request) {
	code, _ := i18nhttp.ResolveCode(r, h.defaultLang)
	options := i18nhttp.BuildLanguageOptions(code, routepath.Root, "")
	resp := languagesResponse{
		Active:      code,
		ActiveLabel: i18nhttp.ActiveLanguageLabel(options),
		Languages:   make([]languageEntry, 0, len(options)),
	}
	for _, option := range options {
		resp.Languages = append(resp.Languages, languageEntry{
			Code:   option.Code,
			Tag:    option.Tag,
			Label:  option.Label,
			URL:    option.URL,
			Active: option.Active,
		})
	}
	_ = httpx.WriteJSON(w, http.StatusOK, resp)
}

func (h handlers) handleHello(w http.ResponseWriter, r *http.Request) {
	_ = httpx.WriteJSON(w, http.StatusOK, helloResponse{Message: "Hello, world!", Method: r.Method})
}

func (h handlers) handleHelloName(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.PathValue("name"))
	if name == "" {
		httpx.WriteError(w, apperrors.E(apperrors.KindInvalidInput, "name is required"))
		return
	}
	_ = httpx.WriteJSON(w, http.StatusOK, helloResponse{Message: "Hello, " + name + "!"})
}
