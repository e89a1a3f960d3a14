// Package appwritefake serves the subset of the Appwrite REST API used by the
// appwrite gateway, backed by the in-memory backend. It exists for tests.
package appwritefake

import (
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"snapgram/internal/domain/gateway"
	"snapgram/internal/infra/appwrite"
	"snapgram/internal/infra/memory"

	"github.com/labstack/echo/v4"
)

// APIPrefix is the version path the fake serves under.
const APIPrefix = "/v1"

// SessionDelivery is how the fake hands the session secret to the client.
type SessionDelivery int

const (
	DeliverCookie SessionDelivery = iota
	DeliverBody
	DeliverFallbackHeader
)

// Request is a call observed by the fake.
type Request struct {
	ID      string // X-Request-Id sent by the caller, or the one the fake assigned.
	Method  string
	Path    string
	Query   url.Values
	Project string
	Session string
}

// Options configure the fake.
type Options struct {
	ProjectID   string
	DatabaseID  string
	BucketID    string
	Collections map[string]gateway.Collection // Backend collection id to logical name; identity when unset.
	Delivery    SessionDelivery
	Logger      *slog.Logger // Request log; discarded when nil.
}

// Server is an httptest server speaking the Appwrite REST API.
type Server struct {
	backend *memory.Backend
	opts    Options
	logger  *slog.Logger
	http    *httptest.Server

	mu       sync.Mutex
	secrets  map[string]string // secret -> session id
	requests []Request
}

// Start serves a fake over backend until the test ends.
func Start(t testing.TB, backend *memory.Backend, opts Options) *Server {
	t.Helper()

	if opts.ProjectID == "" {
		opts.ProjectID = "snapgram"
	}
	if opts.DatabaseID == "" {
		opts.DatabaseID = "main"
	}
	if opts.BucketID == "" {
		opts.BucketID = "media"
	}

	s := &Server{
		backend: backend,
		opts:    opts,
		logger:  opts.Logger,
		secrets: make(map[string]string),
	}
	if s.logger == nil {
		s.logger = slog.New(slog.DiscardHandler)
	}
	s.http = httptest.NewServer(s.routes())
	t.Cleanup(s.http.Close)

	return s
}

// Endpoint is the base URL clients should use.
func (s *Server) Endpoint() string {
	return s.http.URL + APIPrefix
}

// Settings returns client settings matching the fake.
func (s *Server) Settings() appwrite.Settings {
	collections := make(map[gateway.Collection]string, len(s.opts.Collections))
	for id, c := range s.opts.Collections {
		collections[c] = id
	}

	return appwrite.Settings{
		Endpoint:    s.Endpoint(),
		ProjectID:   s.opts.ProjectID,
		DatabaseID:  s.opts.DatabaseID,
		BucketID:    s.opts.BucketID,
		Collections: collections,
		Timeout:     5 * time.Second,
	}
}

// Requests returns the calls received so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]Request(nil), s.requests...)
}

// LastRequest returns the most recent call.
func (s *Server) LastRequest() Request {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.requests) == 0 {
		return Request{}
	}

	return s.requests[len(s.requests)-1]
}

func (s *Server) routes() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = handleError

	api := e.Group(APIPrefix, s.requestID, s.logRequests, s.record, s.requireProject)

	api.POST("/account", s.createAccount)
	api.GET("/account", s.getAccount, s.requireSession)
	api.POST("/account/sessions/email", s.createSession)
	api.DELETE("/account/sessions/:sessionId", s.deleteSession, s.requireSession)

	docs := api.Group("/databases/:databaseId/collections/:collectionId/documents", s.requireDatabase)
	docs.POST("", s.createDocument)
	docs.GET("", s.listDocuments)
	docs.GET("/:documentId", s.getDocument)
	docs.PATCH("/:documentId", s.updateDocument)
	docs.DELETE("/:documentId", s.deleteDocument)

	files := api.Group("/storage/buckets/:bucketId/files", s.requireBucket)
	files.POST("", s.uploadFile)
	files.DELETE("/:fileId", s.deleteFile)

	return e
}

func (s *Server) record(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		s.mu.Lock()
		s.requests = append(s.requests, Request{
			ID:      requestIDOf(c),
			Method:  req.Method,
			Path:    req.URL.Path,
			Query:   req.URL.Query(),
			Project: req.Header.Get(appwrite.HeaderProject),
			Session: req.Header.Get(appwrite.HeaderSession),
		})
		s.mu.Unlock()

		return next(c)
	}
}

func (s *Server) requireProject(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if c.Request().Header.Get(appwrite.HeaderProject) != s.opts.ProjectID {
			return remoteError(http.StatusNotFound, "project_not_found", "Project with the requested ID could not be found.")
		}

		return next(c)
	}
}

func (s *Server) requireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		s.mu.Lock()
		_, ok := s.secrets[c.Request().Header.Get(appwrite.HeaderSession)]
		s.mu.Unlock()
		if !ok {
			return remoteError(http.StatusUnauthorized, "general_unauthorized_scope", "User (role: guests) missing scope (account)")
		}

		return next(c)
	}
}

func (s *Server) requireDatabase(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if c.Param("databaseId") != s.opts.DatabaseID {
			return remoteError(http.StatusNotFound, "database_not_found", "Database not found")
		}

		return next(c)
	}
}

func (s *Server) requireBucket(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if c.Param("bucketId") != s.opts.BucketID {
			return remoteError(http.StatusNotFound, "storage_bucket_not_found", "Storage bucket with the requested ID could not be found.")
		}

		return next(c)
	}
}

func (s *Server) collection(c echo.Context) gateway.Collection {
	id := c.Param("collectionId")
	if logical, ok := s.opts.Collections[id]; ok {
		return logical
	}

	return gateway.Collection(id)
}

type errorResponse struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
	Type    string `json:"type"`
	Version string `json:"version"`
}

func remoteError(code int, kind, message string) *gateway.RemoteError {
	return &gateway.RemoteError{Code: code, Type: kind, Message: message}
}

// handleError renders failures in the backend's error body shape.
func handleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var remoteErr *gateway.RemoteError
	if errors.As(err, &remoteErr) {
		code := remoteErr.Code
		if code == 0 {
			code = http.StatusServiceUnavailable
		}
		_ = c.JSON(code, errorResponse{Message: remoteErr.Message, Code: code, Type: remoteErr.Type, Version: "fake"})

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		_ = c.JSON(httpErr.Code, errorResponse{Message: http.StatusText(httpErr.Code), Code: httpErr.Code, Type: "general_route_not_found", Version: "fake"})

		return
	}

	_ = c.JSON(http.StatusInternalServerError, errorResponse{Message: err.Error(), Code: http.StatusInternalServerError, Type: "general_unknown", Version: "fake"})
}

func timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
