package httpkit

import (
	"net/http"

	"readathon/internal/modkit/scope"
	perr "readathon/internal/platform/errors"
	pnet "readathon/internal/platform/net"

	"github.com/google/uuid"
)

// ClubHeader is the request header carrying the tenant (club) id
const ClubHeader = "X-Club-ID"

// RequireClub is middleware that pulls the club id from the header, validates it
// is a uuid, and stores it on the request context as the tenant id
func RequireClub(write func(w http.ResponseWriter, status int, body any)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.Header.Get(ClubHeader)
			if raw == "" {
				status, body := pnet.Error(
					perr.InvalidArgf("missing %s header", ClubHeader),
					pnet.RequestID(r.Context()),
				)
				write(w, status, body)
				return
			}
			id, err := uuid.Parse(raw)
			if err != nil {
				status, body := pnet.Error(
					perr.InvalidArgf("malformed %s header", ClubHeader),
					pnet.RequestID(r.Context()),
				)
				write(w, status, body)
				return
			}
			ctx := pnet.WithRequest(r.Context(), "", id.String())
			ctx = scope.With(ctx, map[string]string{"club_id": id.String()})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
