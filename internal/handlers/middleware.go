package handlers

import (
	"net/http"

	"github.com/shrimpsizemoose/trekker/logger"
)

func (h *QuizHandler) sessionID(r *http.Request) string {
	cookie, err := r.Cookie(h.service.Config.Server.CookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

func (h *QuizHandler) setSessionCookie(w http.ResponseWriter, sid string) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.service.Config.Server.CookieName,
		Value:    sid,
		Path:     "/",
		MaxAge:   h.service.Config.Sessions.TTLMinutes * 60,
		HttpOnly: true,
		Secure:   h.service.Config.Server.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *QuizHandler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.service.Config.Server.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.service.Config.Server.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

// authedHandlerFunc receives the resolved session on top of the request.
type authedHandlerFunc func(w http.ResponseWriter, r *http.Request, userID int64, username, sid string)

// RequireAuth resolves the session cookie and redirects anonymous
// requests to the login page instead of erroring.
func (h *QuizHandler) RequireAuth(next authedHandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid := h.sessionID(r)
		if sid == "" {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		userID, username, err := h.service.SessionUser(r.Context(), sid)
		if err != nil {
			logger.Error.Printf("Failed to resolve session: %v", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		if userID == 0 {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		next(w, r, userID, username, sid)
	}
}
