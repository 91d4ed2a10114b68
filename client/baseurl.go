package client

import (
	"strings"

	"github.com/clacky-ai/uniapp-fastapi-mysql-starter/devmode"
)

// Location is the page location the client runs under, the way a browser
// front-end would see it. Only Hostname takes part in base URL resolution.
type Location struct {
	Protocol string
	Hostname string
	Port     string
}

// Origin renders scheme://host[:port], the target of relative paths on this
// page. Protocol may be given with or without the trailing colon and defaults
// to http.
func (l Location) Origin() string {
	if l.Hostname == "" {
		return ""
	}
	scheme := strings.TrimSuffix(l.Protocol, ":")
	if scheme == "" {
		scheme = "http"
	}
	o := scheme + "://" + l.Hostname
	if l.Port != "" {
		o += ":" + l.Port
	}
	return o
}

// ResolveBaseURL returns the prefix prepended to every API path.
//
// Pages served from the hosted preview domain or from a loopback host sit
// behind a dev server that proxies /api, so the prefix is empty and paths stay
// relative. Everything else, including a missing location, talks to the local
// backend directly.
func ResolveBaseURL(loc *Location) string {
	if loc == nil || loc.Hostname == "" {
		return devmode.BackendURL
	}
	host := strings.ToLower(loc.Hostname)
	if strings.Contains(host, devmode.ProxyDomain) {
		return ""
	}
	for _, lh := range devmode.LoopbackHosts {
		if host == lh {
			return ""
		}
	}
	return devmode.BackendURL
}
