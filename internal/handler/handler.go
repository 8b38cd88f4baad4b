package handler

import (
	"embed"
	"errors"
	"html/template"
	"net/http"
	"strings"

	"github.com/Dan9191/auth-service/internal/middleware"
	"github.com/Dan9191/auth-service/internal/service"
	"github.com/Dan9191/auth-service/internal/session"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

//go:embed templates/*.html
var templateFS embed.FS

// Form-level messages shown on re-render. Authentication failures share
// one message regardless of cause to avoid account enumeration.
const (
	msgFillAllFields      = "Please fill all fields."
	msgPasswordMismatch   = "Passwords do not match."
	msgUsernameTooLong    = "Username must be at most 20 characters."
	msgEmailTooLong       = "Email must be at most 120 characters."
	msgDuplicateUser      = "Username or email already exists."
	msgInvalidCredentials = "Invalid credentials."
	msgRegistered         = "Registration successful. Please log in."
)

const (
	maxUsernameLen = 20
	maxEmailLen    = 120
)

type viewData struct {
	Msg      string
	Username string
}

// Handler serves the HTML surface of the application
type Handler struct {
	svc      *service.Service
	sessions *session.Manager
	log      *logrus.Logger
	tmpl     *template.Template
}

// NewHandler initializes the handler with its dependencies
func NewHandler(svc *service.Service, sessions *session.Manager, log *logrus.Logger) *Handler {
	return &Handler{
		svc:      svc,
		sessions: sessions,
		log:      log,
		tmpl:     template.Must(template.ParseFS(templateFS, "templates/*.html")),
	}
}

// Routes builds the application router. Dashboard and account deletion
// sit behind the login guard; everything else is public.
func (h *Handler) Routes() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/", h.Home).Methods("GET")
	r.HandleFunc("/register", h.Register).Methods("GET", "POST")
	r.HandleFunc("/login", h.Login).Methods("GET", "POST")
	r.HandleFunc("/logout", h.Logout).Methods("GET")

	protected := r.PathPrefix("/").Subrouter()
	protected.Use(middleware.RequireLogin(h.sessions))
	protected.HandleFunc("/dashboard", h.Dashboard).Methods("GET")
	protected.HandleFunc("/delete_account", h.DeleteAccount).Methods("POST")

	return r
}

// Home redirects to the dashboard or the login page depending on
// session state.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.sessions.Current(r); ok {
		http.Redirect(w, r, "/dashboard", http.StatusFound)
		return
	}
	http.Redirect(w, r, "/login", http.StatusFound)
}

// Register renders the registration form and creates accounts. A new
// account is not logged in automatically.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		h.render(w, "register.html", viewData{})
		return
	}

	username := strings.TrimSpace(r.FormValue("username"))
	email := strings.ToLower(strings.TrimSpace(r.FormValue("email")))
	password := r.FormValue("password")
	confirm := r.FormValue("confirm")

	var msg string
	switch {
	case username == "" || email == "" || strings.TrimSpace(password) == "" || strings.TrimSpace(confirm) == "":
		msg = msgFillAllFields
	case password != confirm:
		msg = msgPasswordMismatch
	case len(username) > maxUsernameLen:
		msg = msgUsernameTooLong
	case len(email) > maxEmailLen:
		msg = msgEmailTooLong
	default:
		_, err := h.svc.Register(r.Context(), username, email, password)
		switch {
		case err == nil:
			http.Redirect(w, r, "/login?registered=1", http.StatusFound)
			return
		case errors.Is(err, service.ErrDuplicateUser):
			msg = msgDuplicateUser
		default:
			h.serverError(w, err)
			return
		}
	}

	h.render(w, "register.html", viewData{Msg: msg})
}

// Login renders the login form and authenticates by email or username.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		var msg string
		if r.URL.Query().Get("registered") != "" {
			msg = msgRegistered
		}
		h.render(w, "login.html", viewData{Msg: msg})
		return
	}

	identifier := strings.ToLower(strings.TrimSpace(r.FormValue("email")))
	password := r.FormValue("password")

	user, err := h.svc.Authenticate(r.Context(), identifier, password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			h.render(w, "login.html", viewData{Msg: msgInvalidCredentials})
			return
		}
		h.serverError(w, err)
		return
	}

	if err := h.sessions.Issue(w, user); err != nil {
		h.serverError(w, err)
		return
	}
	http.Redirect(w, r, "/dashboard", http.StatusFound)
}

// Dashboard renders the authenticated view. The username comes from the
// session, not the database; usernames are immutable so the two cannot
// diverge.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}
	h.render(w, "dashboard.html", viewData{Username: ident.Username})
}

// Logout clears the session unconditionally. A request with no session
// still redirects.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Clear(w)
	http.Redirect(w, r, "/login", http.StatusFound)
}

// DeleteAccount removes the current user and ends their session.
func (h *Handler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	if err := h.svc.DeleteAccount(r.Context(), ident.UserID); err != nil {
		h.serverError(w, err)
		return
	}

	h.sessions.Clear(w)
	http.Redirect(w, r, "/register", http.StatusFound)
}

func (h *Handler) render(w http.ResponseWriter, name string, data viewData) {
	if err := h.tmpl.ExecuteTemplate(w, name, data); err != nil {
		h.log.Errorf("Failed to render %s: %v", name, err)
	}
}

func (h *Handler) serverError(w http.ResponseWriter, err error) {
	h.log.Errorf("Internal error: %v", err)
	http.Error(w, "Internal server error", http.StatusInternalServerError)
}
