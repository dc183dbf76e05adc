package main

import (
	"net/http"
	"testing"
	"time"

	"github.com/powerboxizm12/stremio-au-addon/config"
)

func TestNewServer(t *testing.T) {
	cfg := config.Default()
	cfg.HTTP.Address = "127.0.0.1"
	cfg.HTTP.Port = "7001"
	cfg.Playlist.Timeout = 20 * time.Second

	handler := http.NotFoundHandler()
	server := newServer(cfg, handler)

	if server.Addr != "127.0.0.1:7001" {
		t.Errorf("expected addr 127.0.0.1:7001, got %q", server.Addr)
	}
	if server.Handler == nil {
		t.Error("expected handler to be set")
	}
	if server.WriteTimeout != 35*time.Second {
		t.Errorf("expected write timeout to cover the playlist timeout, got %v", server.WriteTimeout)
	}
	if server.ReadTimeout != 15*time.Second {
		t.Errorf("expected read timeout 15s, got %v", server.ReadTimeout)
	}
}

func TestNewServerIPv6Address(t *testing.T) {
	cfg := config.Default()
	cfg.HTTP.Address = "::1"

	if got := newServer(cfg, http.NotFoundHandler()).Addr; got != "[::1]:7000" {
		t.Errorf("expected bracketed IPv6 addr, got %q", got)
	}
}
