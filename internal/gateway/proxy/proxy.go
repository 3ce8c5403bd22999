// Package proxy реализует маршрутизацию шлюза: запрос пересылается
// сервису, чей префикс пути совпал первым. Таблица маршрутов читается
// из конфигурации на старте и далее не изменяется.
package proxy

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"

	"github.com/go-chi/render"

	"github.com/magabrotheeeer/commerce-gateway/internal/config"
	"github.com/magabrotheeeer/commerce-gateway/internal/http/response"
)

type route struct {
	prefix  string
	forward *httputil.ReverseProxy
}

// Proxy пересылает запросы целевым сервисам по таблице маршрутов.
type Proxy struct {
	routes []route
	log    *slog.Logger
}

// New строит Proxy из таблицы маршрутов конфигурации.
func New(log *slog.Logger, cfgRoutes []config.Route) (*Proxy, error) {
	const op = "proxy.New"

	routes := make([]route, 0, len(cfgRoutes))
	for _, r := range cfgRoutes {
		target, err := url.Parse(r.Target)
		if err != nil {
			return nil, fmt.Errorf("%s: parse target for %s: %w", op, r.Prefix, err)
		}
		routes = append(routes, route{
			prefix:  r.Prefix,
			forward: httputil.NewSingleHostReverseProxy(target),
		})
	}

	return &Proxy{
		routes: routes,
		log:    log,
	}, nil
}

// ServeHTTP находит маршрут по префиксу пути и пересылает запрос.
// Запрос без подходящего маршрута получает 404.
func (p *Proxy) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	for _, rt := range p.routes {
		if strings.HasPrefix(r.URL.Path, rt.prefix) {
			rt.forward.ServeHTTP(w, r)
			return
		}
	}

	p.log.Error("no route for path", slog.String("path", r.URL.Path))
	w.WriteHeader(http.StatusNotFound)
	render.JSON(w, r, response.Error("unknown route"))
}
