package health

import (
	"context"
	"net/http"
	"os"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/evoting/internal/pkg/logger"
)

// Checker reports the health of one dependency
type Checker interface {
	CheckHealth(ctx context.Context) error
}

// CheckerFunc adapts a ping function to Checker
type CheckerFunc func(ctx context.Context) error

// CheckHealth implements Checker
func (f CheckerFunc) CheckHealth(ctx context.Context) error {
	return f(ctx)
}

// BuildInfo contains information about the build
type BuildInfo struct {
	Version     string    `json:"version"`
	ServiceName string    `json:"service_name"`
	GoVersion   string    `json:"go_version"`
	Hostname    string    `json:"hostname"`
	ServerTime  time.Time `json:"server_time"`
}

// DependencyStatus is the outcome of one check
type DependencyStatus struct {
	Status    string `json:"status"`
	Error     string `json:"error,omitempty"`
	LatencyMS int64  `json:"latency_ms"`
}

// ReadinessResponse is returned by /ready
type ReadinessResponse struct {
	Status       string                      `json:"status"`
	Service      string                      `json:"service"`
	Timestamp    time.Time                   `json:"timestamp"`
	Dependencies map[string]DependencyStatus `json:"dependencies"`
}

// Service runs registered dependency checks
type Service struct {
	serviceName string
	version     string
	timeout     time.Duration
	checkers    map[string]Checker
}

// NewService creates a health service
func NewService(serviceName, version string) *Service {
	return &Service{
		serviceName: serviceName,
		version:     version,
		timeout:     3 * time.Second,
		checkers:    make(map[string]Checker),
	}
}

// AddChecker registers a dependency check
func (s *Service) AddChecker(name string, checker Checker) {
	s.checkers[name] = checker
}

// Check runs every checker concurrently and reports whether all passed
func (s *Service) Check(ctx context.Context) (ReadinessResponse, bool) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	names := make([]string, 0, len(s.checkers))
	for name := range s.checkers {
		names = append(names, name)
	}
	sort.Strings(names)

	results := make([]DependencyStatus, len(names))
	var wg sync.WaitGroup
	for i, name := range names {
		wg.Add(1)
		go func(i int, checker Checker) {
			defer wg.Done()
			start := time.Now()
			err := checker.CheckHealth(ctx)
			st := DependencyStatus{Status: "healthy", LatencyMS: time.Since(start).Milliseconds()}
			if err != nil {
				st.Status = "unhealthy"
				st.Error = err.Error()
			}
			results[i] = st
		}(i, s.checkers[name])
	}
	wg.Wait()

	resp := ReadinessResponse{
		Status:       "ready",
		Service:      s.serviceName,
		Timestamp:    time.Now(),
		Dependencies: make(map[string]DependencyStatus, len(names)),
	}
	healthy := true
	for i, name := range names {
		resp.Dependencies[name] = results[i]
		if results[i].Status != "healthy" {
			healthy = false
		}
	}
	if !healthy {
		resp.Status = "not_ready"
	}
	return resp, healthy
}

// RegisterHealthEndpoints registers /ping, /health and /ready
func RegisterHealthEndpoints(e *echo.Echo, s *Service) {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}

	e.GET("/ping", func(c echo.Context) error {
		return c.JSON(http.StatusOK, BuildInfo{
			Version:     s.version,
			ServiceName: s.serviceName,
			GoVersion:   runtime.Version(),
			Hostname:    hostname,
			ServerTime:  time.Now(),
		})
	})

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	e.GET("/ready", func(c echo.Context) error {
		resp, ok := s.Check(c.Request().Context())
		if !ok {
			logger.Warn("Readiness check failed", logger.Any("dependencies", resp.Dependencies))
			return c.JSON(http.StatusServiceUnavailable, resp)
		}
		return c.JSON(http.StatusOK, resp)
	})
}
