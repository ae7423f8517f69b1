package auth

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"

	"github.com/ghuser/stockroom/pkg/httpx"
	"github.com/ghuser/stockroom/pkg/logger"
)

const sessionName = "stockroom_session"
const sessionStaffIDKey = "staff_id"

// RequireAuth enforces a staff session cookie and injects the StaffID into the
// request context. Returns 401 if the session is missing, invalid, or lacks a
// valid staff_id. Mounted on /api only when AUTH_REQUIRED=true.
func RequireAuth(store sessions.Store, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, err := store.Get(r, sessionName)
			if err != nil {
				log.WarnContext(r.Context(), "invalid session cookie", "error", err)
				httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
				return
			}

			staffIDStr, ok := session.Values[sessionStaffIDKey].(string)
			if !ok || staffIDStr == "" {
				log.WarnContext(r.Context(), "session missing staff_id")
				httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
				return
			}

			staffID, err := uuid.Parse(staffIDStr)
			if err != nil {
				log.WarnContext(r.Context(), "invalid staff_id in session", "staff_id", staffIDStr, "error", err)
				httpx.JSONError(w, http.StatusUnauthorized, "invalid session data")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithStaffID(r.Context(), staffID)))
		})
	}
}

// StartSession binds staffID to the request's session and writes the cookie.
// Sessions are issued by the staff sign-in flow sharing this store.
func StartSession(w http.ResponseWriter, r *http.Request, store sessions.Store, staffID uuid.UUID) error {
	session, err := store.Get(r, sessionName)
	if err != nil {
		return err
	}
	session.Values[sessionStaffIDKey] = staffID.String()
	return session.Save(r, w)
}
