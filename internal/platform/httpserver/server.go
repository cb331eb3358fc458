package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	identityservice "nusakarya/contexts/identity-access/identity-service"
	identityports "nusakarya/contexts/identity-access/identity-service/ports"
	karyaregistry "nusakarya/contexts/provenance/karya-registry"
	karyahttp "nusakarya/contexts/provenance/karya-registry/transport/http"
	licenseservice "nusakarya/contexts/provenance/license-service"
	licensehttp "nusakarya/contexts/provenance/license-service/transport/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

type Server struct {
	mux      *http.ServeMux
	logger   *slog.Logger
	addr     string
	identity identityservice.Module
	karya    karyaregistry.Module
	licenses licenseservice.Module
}

func New(
	identity identityservice.Module,
	karya karyaregistry.Module,
	licenses licenseservice.Module,
	logger *slog.Logger,
	addr string,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":3000"
	}

	s := &Server{
		mux:      http.NewServeMux(),
		logger:   logger,
		addr:     addr,
		identity: identity,
		karya:    karya,
		licenses: licenses,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.handler())
}

func (s *Server) handler() http.Handler {
	return withRequestLogging(s.logger, s.mux)
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("POST /auth/verify", s.handleAuthVerify)
	s.mux.HandleFunc("GET /auth/me", s.handleAuthMe)
	s.mux.HandleFunc("POST /karya", s.handleCreateKarya)
	s.mux.HandleFunc("GET /karya", s.handleListKarya)
	s.mux.HandleFunc("POST /karya/verify", s.handleVerifyKarya)
	s.mux.HandleFunc("POST /license", s.handleCreateLicense)
	s.mux.HandleFunc("GET /license", s.handleListLicenses)

	s.mux.HandleFunc("POST /v1/auth/verify", s.handleAuthVerify)
	s.mux.HandleFunc("GET /v1/auth/me", s.handleAuthMe)
	s.mux.HandleFunc("POST /v1/karya", s.handleCreateKarya)
	s.mux.HandleFunc("GET /v1/karya", s.handleListKarya)
	s.mux.HandleFunc("POST /v1/karya/verify", s.handleVerifyKarya)
	s.mux.HandleFunc("POST /v1/license", s.handleCreateLicense)
	s.mux.HandleFunc("GET /v1/license", s.handleListLicenses)
}

func (s *Server) handleAuthVerify(w http.ResponseWriter, r *http.Request) {
	resp, err := s.identity.Handler.VerifyHandler(r.Context(), r.Header.Get("Authorization"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, "User verified and synced successfully", resp)
}

func (s *Server) handleAuthMe(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	resp, err := s.identity.Handler.MeHandler(r.Context(), claims)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, "", resp)
}

func (s *Server) handleCreateKarya(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.resolveUser(w, r)
	if !ok {
		return
	}

	var req karyahttp.CreateKaryaRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := s.karya.Handler.CreateKaryaHandler(r.Context(), userID, req)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeSuccess(w, http.StatusCreated, "Karya created successfully", resp)
}

func (s *Server) handleListKarya(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.resolveUser(w, r)
	if !ok {
		return
	}

	resp, err := s.karya.Handler.ListKaryaHandler(r.Context(), userID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, "Karya retrieved successfully", resp)
}

// handleVerifyKarya is the only unauthenticated domain route: anyone may
// check whether a file hash is registered.
func (s *Server) handleVerifyKarya(w http.ResponseWriter, r *http.Request) {
	var req karyahttp.VerifyKaryaRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := s.karya.Handler.VerifyKaryaHandler(r.Context(), req)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, "Karya verified successfully", resp)
}

func (s *Server) handleCreateLicense(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.resolveUser(w, r)
	if !ok {
		return
	}

	var req licensehttp.CreateLicenseRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := s.licenses.Handler.CreateLicenseHandler(r.Context(), userID, req)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeSuccess(w, http.StatusCreated, "License created successfully", resp)
}

func (s *Server) handleListLicenses(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.resolveUser(w, r)
	if !ok {
		return
	}

	resp, err := s.licenses.Handler.ListLicensesHandler(r.Context(), userID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, "Licenses retrieved successfully", resp)
}

// authenticate resolves the bearer credential into verified claims. Claims
// travel as explicit arguments from here; nothing is attached to the request.
func (s *Server) authenticate(w http.ResponseWriter, r *http.Request) (identityports.Claims, bool) {
	claims, err := s.identity.Handler.Authenticate(r.Context(), r.Header.Get("Authorization"))
	if err != nil {
		writeDomainError(w, err)
		return identityports.Claims{}, false
	}
	return claims, true
}

// resolveUser authenticates and looks up the local user record. Routes other
// than /auth/verify never sync; an identity that has not synced yet gets a
// 404 rather than an implicit row.
func (s *Server) resolveUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	claims, ok := s.authenticate(w, r)
	if !ok {
		return "", false
	}
	user, err := s.identity.Service.CurrentUser(r.Context(), claims)
	if err != nil {
		writeDomainError(w, err)
		return "", false
	}
	return user.ID, true
}

// decodeBody parses the JSON request body. An empty body decodes to the
// zero value so required-field validation can report what is missing.
func decodeBody(w http.ResponseWriter, r *http.Request, out any) bool {
	if err := json.NewDecoder(r.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return true
		}
		writeError(w, http.StatusBadRequest, "PARSING_ERROR", "Error while parsing JSON request body")
		return false
	}
	return true
}
