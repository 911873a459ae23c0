package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLocation(t *testing.T) {
	tests := []struct {
		raw    string
		route  Route
		coinID string
	}{
		{"/", RouteHero, ""},
		{"", RouteHero, ""},
		{"/login", RouteLogin, ""},
		{"/home", RouteHome, ""},
		{"/home/", RouteHome, ""},
		{"/table", RouteTable, ""},
		{"/coin/bitcoin", RouteCoin, "bitcoin"},
		{"/coin/usd%20coin", RouteCoin, "usd coin"},
		{"/coin/", RouteNotFound, ""},
		{"/coin/a/b", RouteNotFound, ""},
		{"/portfolio", RoutePortfolio, ""},
		{"/logs", RouteLogs, ""},
		{"/settings", RouteNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			loc := ParseLocation(tt.raw)
			assert.Equal(t, tt.route, loc.Route)
			assert.Equal(t, tt.coinID, loc.CoinID)
		})
	}
}

func TestLocationRoundTrip(t *testing.T) {
	for _, raw := range []string{"/", "/login", "/home", "/table", "/coin/bitcoin", "/portfolio", "/logs"} {
		assert.Equal(t, raw, ParseLocation(raw).String())
	}
	assert.Equal(t, "/404", Location{Route: RouteNotFound}.String())
}

func TestPortfolioAddHandoff(t *testing.T) {
	loc := PortfolioAdd("ethereum", 2.5)
	assert.Equal(t, "/portfolio?add=ethereum&quantity=2.5", loc.String())

	parsed := ParseLocation(loc.String())
	id, qty, ok := parsed.Handoff()
	assert.True(t, ok)
	assert.Equal(t, "ethereum", id)
	assert.Equal(t, "2.5", qty)

	_, _, ok = ParseLocation("/portfolio").Handoff()
	assert.False(t, ok)

	_, _, ok = ParseLocation("/home?add=bitcoin").Handoff()
	assert.False(t, ok)
}
