package handlers

import (
	"errors"
	"net/http"

	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/shrimpsizemoose/frageverk/internal/app"
	"github.com/shrimpsizemoose/frageverk/internal/store"
	"github.com/shrimpsizemoose/frageverk/internal/web"
)

// Auth failure and conflict notices are deliberately generic: the login
// one must not reveal whether the email or the password was wrong.
const (
	noticeInvalidCredentials = "Invalid email or password"
	noticeConflict           = "Username or email already exists"
	noticeInvalidInput       = "Please check the registration details and try again"
)

type QuizHandler struct {
	service  *app.Service
	renderer *web.Renderer
}

func NewQuizHandler(service *app.Service, renderer *web.Renderer) *QuizHandler {
	return &QuizHandler{
		service:  service,
		renderer: renderer,
	}
}

type formView struct {
	Notice string
}

func (h *QuizHandler) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.renderer.Render(w, name, data); err != nil {
		logger.Error.Printf("Render failed: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func (h *QuizHandler) HandleLanding(w http.ResponseWriter, r *http.Request) {
	h.render(w, "index.html", nil)
}

func (h *QuizHandler) HandleLoginForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, "login.html", formView{})
}

func (h *QuizHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	user, err := h.service.Authenticate(r.PostFormValue("email"), r.PostFormValue("password"))
	if err != nil {
		logger.Error.Printf("Login failed: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if user == nil {
		h.render(w, "login.html", formView{Notice: noticeInvalidCredentials})
		return
	}

	sid, err := h.service.StartSession(r.Context(), user)
	if err != nil {
		logger.Error.Printf("Failed to start session: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	h.setSessionCookie(w, sid)
	http.Redirect(w, r, "/quiz", http.StatusSeeOther)
}

func (h *QuizHandler) HandleRegisterForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, "register.html", formView{})
}

func (h *QuizHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	user, err := h.service.Register(
		r.PostFormValue("username"),
		r.PostFormValue("email"),
		r.PostFormValue("password"),
	)
	switch {
	case errors.Is(err, store.ErrConflict):
		h.render(w, "register.html", formView{Notice: noticeConflict})
		return
	case errors.Is(err, app.ErrInvalidRegistration):
		h.render(w, "register.html", formView{Notice: noticeInvalidInput})
		return
	case err != nil:
		logger.Error.Printf("Registration failed: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	sid, err := h.service.StartSession(r.Context(), user)
	if err != nil {
		logger.Error.Printf("Failed to start session: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	h.setSessionCookie(w, sid)
	http.Redirect(w, r, "/quiz", http.StatusSeeOther)
}

func (h *QuizHandler) HandleLogout(w http.ResponseWriter, r *http.Request, userID int64, username, sid string) {
	if err := h.service.EndSession(r.Context(), sid); err != nil {
		logger.Error.Printf("Failed to end session for %s: %v", username, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	h.clearSessionCookie(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
