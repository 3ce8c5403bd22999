// Package policy реализует цепочку проверок доступа пограничного шлюза.
//
// Запрос проходит упорядоченный список проверок; первая не пропустившая
// проверка определяет исход запроса. Проверка путей-исключений может
// пропустить запрос в обход всех последующих проверок. Каждый запрос
// разрешается ровно в один исход до того, как попадёт в обработчик.
package policy

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/commerce-gateway/internal/http/response"
)

// Outcome — итоговое решение цепочки по запросу.
type Outcome int

const (
	// OutcomeAllow — запрос пропускается дальше без изменений.
	OutcomeAllow Outcome = iota
	// OutcomeRejectUnauthenticated — запрос отклоняется как неаутентифицированный.
	OutcomeRejectUnauthenticated
	// OutcomeRejectForbidden — запрос отклоняется по политике доступа.
	OutcomeRejectForbidden
)

// String возвращает категорию исхода для диагностики. Сырой токен и секрет
// в диагностику не попадают.
func (o Outcome) String() string {
	switch o {
	case OutcomeAllow:
		return "allow"
	case OutcomeRejectUnauthenticated:
		return "unauthenticated"
	case OutcomeRejectForbidden:
		return "forbidden"
	default:
		return "unknown"
	}
}

// Decision — результат одной проверки в цепочке.
type Decision int

const (
	// DecisionNext — проверка пройдена, запрос передаётся следующей.
	DecisionNext Decision = iota
	// DecisionAccept — запрос пропускается в обход всех последующих проверок.
	DecisionAccept
	// DecisionUnauthenticated — запрос отклоняется как неаутентифицированный.
	DecisionUnauthenticated
	// DecisionForbidden — запрос отклоняется по политике доступа.
	DecisionForbidden
)

// Check — одна проверка запроса. Проверки не изменяют запрос и безопасны
// для конкурентного вызова: они читают только неизменяемую конфигурацию.
type Check func(r *http.Request) Decision

// Resolve прогоняет запрос через цепочку проверок и возвращает исход.
// Первая проверка, вернувшая не DecisionNext, завершает цепочку.
func Resolve(r *http.Request, checks []Check) Outcome {
	for _, check := range checks {
		switch check(r) {
		case DecisionAccept:
			return OutcomeAllow
		case DecisionUnauthenticated:
			return OutcomeRejectUnauthenticated
		case DecisionForbidden:
			return OutcomeRejectForbidden
		}
	}
	return OutcomeAllow
}

// Middleware возвращает HTTP middleware, применяющее цепочку проверок
// к каждому запросу. Отклонённый запрос не достигает обработчика;
// пропущенный передаётся дальше без изменений.
func Middleware(log *slog.Logger, checks ...Check) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "policy.Middleware"

			outcome := Resolve(r, checks)
			if outcome == OutcomeAllow {
				next.ServeHTTP(w, r)
				return
			}

			log.Error("request rejected",
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
				slog.String("outcome", outcome.String()),
				slog.String("path", r.URL.Path))

			switch outcome {
			case OutcomeRejectForbidden:
				w.WriteHeader(http.StatusForbidden)
				render.JSON(w, r, response.Error("forbidden"))
			default:
				w.WriteHeader(http.StatusUnauthorized)
				render.JSON(w, r, response.Error("unauthorized"))
			}
		})
	}
}
