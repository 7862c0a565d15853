package utils

import (
	"net"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"
)

// FrontendURL returns the base URL voters are redirected to. A configured
// localhost or 127.0.0.1 without an explicit port is treated as a leftover
// dev default and replaced by the origin of the current request.
func FrontendURL(configured string, c echo.Context) string {
	configured = strings.TrimRight(configured, "/")

	u, err := url.Parse(configured)
	if err == nil && u.Host != "" && u.Port() == "" && isLoopbackHost(u.Hostname()) {
		return RequestOrigin(c)
	}
	if configured == "" {
		return RequestOrigin(c)
	}
	return configured
}

// RequestOrigin returns scheme://host of the request being served
func RequestOrigin(c echo.Context) string {
	return c.Scheme() + "://" + c.Request().Host
}

func isLoopbackHost(host string) bool {
	if host == "localhost" {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.Equal(net.IPv4(127, 0, 0, 1))
}
