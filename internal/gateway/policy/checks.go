package policy

import (
	"net"
	"net/http"
	"slices"
	"strings"

	"github.com/magabrotheeeer/commerce-gateway/internal/lib/jwt"
)

// ExemptPaths пропускает запросы к служебным путям (health-пробы и т.п.)
// в обход всех последующих проверок.
func ExemptPaths(prefixes []string) Check {
	return func(r *http.Request) Decision {
		for _, prefix := range prefixes {
			if strings.HasPrefix(r.URL.Path, prefix) {
				return DecisionAccept
			}
		}
		return DecisionNext
	}
}

// AllowList отклоняет запросы с адресов источника вне списка разрешённых.
// Пустой список означает разрешающую политику. Проверка выполняется до
// разбора токена: запрещённый адрес получает forbidden независимо от
// валидности токена.
func AllowList(addrs []string) Check {
	return func(r *http.Request) Decision {
		if len(addrs) == 0 {
			return DecisionNext
		}
		host, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			host = r.RemoteAddr
		}
		if slices.Contains(addrs, host) {
			return DecisionNext
		}
		return DecisionForbidden
	}
}

// BearerToken проверяет bearer-токен в заголовке Authorization.
//
// Префикс "Bearer " отрезается, если присутствует; заголовок без префикса
// трактуется как сырой токен — исторически допускаемый разбор, сохранён
// намеренно. Отсутствие заголовка, любая ошибка проверки токена и пустой
// subject дают отказ в аутентификации. Проверка не добавляет данных
// в запрос: на успешном пути запрос уходит дальше без изменений.
func BearerToken(maker jwt.Maker) Check {
	return func(r *http.Request) Decision {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			return DecisionUnauthenticated
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

		if _, err := maker.ParseToken(tokenStr); err != nil {
			return DecisionUnauthenticated
		}
		return DecisionNext
	}
}
