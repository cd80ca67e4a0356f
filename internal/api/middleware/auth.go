package middleware

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/m04kA/SMC-RoomBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// Заголовки, проставляемые API gateway после аутентификации
const (
	HeaderUserID       = "X-User-ID"
	HeaderUserEmail    = "X-User-Email"
	HeaderUserName     = "X-User-Name"
	HeaderUserRole     = "X-User-Role"
	HeaderManagedRooms = "X-Managed-Rooms"
	HeaderSelectedRoom = "X-Selected-Room"
)

const msgUnauthorized = "требуется аутентификация"

type ctxKey string

const actorKey ctxKey = "actor"

// ActorFromRequest собирает дескриптор актора из заголовков gateway.
// Отсутствие или мусор в заголовках дает анонимного актора
func ActorFromRequest(r *http.Request) domain.Actor {
	actor := domain.Actor{Role: domain.RoleAnonymous}

	userID, err := strconv.ParseInt(r.Header.Get(HeaderUserID), 10, 64)
	if err != nil || userID <= 0 {
		return actor
	}

	role := domain.Role(r.Header.Get(HeaderUserRole))
	if !domain.ValidRole(role) || role == domain.RoleAnonymous {
		role = domain.RoleUser
	}

	actor.ID = userID
	actor.Email = r.Header.Get(HeaderUserEmail)
	actor.Name = r.Header.Get(HeaderUserName)
	actor.Role = role

	if raw := r.Header.Get(HeaderManagedRooms); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
			if err == nil && id > 0 {
				actor.ManagedRooms = append(actor.ManagedRooms, id)
			}
		}
	}

	if raw := r.Header.Get(HeaderSelectedRoom); raw != "" {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil && id > 0 {
			actor.SelectedRoomID = &id
		}
	}

	return actor
}

// WithActor кладет актора в контекст запроса
func WithActor(ctx context.Context, actor domain.Actor) context.Context {
	return context.WithValue(ctx, actorKey, actor)
}

// GetActor возвращает актора запроса; для публичных маршрутов без
// Resolve-цепочки возвращается анонимный актор
func GetActor(ctx context.Context) domain.Actor {
	if actor, ok := ctx.Value(actorKey).(domain.Actor); ok {
		return actor
	}
	return domain.Actor{Role: domain.RoleAnonymous}
}

// Resolve разбирает заголовки gateway и кладет актора в контекст запроса.
// Анонимные запросы пропускает: гварды доступа остаются за сервисным слоем
func Resolve(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor := ActorFromRequest(r)
		next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actor)))
	})
}

// Auth требует аутентифицированного актора, иначе 401
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor := GetActor(r.Context())
		if !actor.IsAuthenticated() {
			handlers.RespondUnauthorized(w, msgUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}
