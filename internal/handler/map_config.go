package handler

import "net/http"

// Map defaults for the tree map, centred on Nigeria
const (
	DefaultMapStyle = "mapbox://styles/mapbox/light-v11"
	DefaultMapZoom  = 5.5
	DefaultMapMin   = 5
	DefaultMapMax   = 12
)

// DefaultMapCenter is [lng, lat]
var DefaultMapCenter = [2]float64{8.6753, 9.082}

// MapConfig is what the browser needs to draw the tree map
type MapConfig struct {
	AccessToken string     `json:"accessToken"`
	Style       string     `json:"style"`
	Center      [2]float64 `json:"center"`
	Zoom        float64    `json:"zoom"`
	MinZoom     float64    `json:"minZoom"`
	MaxZoom     float64    `json:"maxZoom"`
}

// HandleMapConfig returns the public map configuration
// @Summary Map config
// @Description The access token is a public, URL-restricted browser token.
// @Tags config
// @Produce json
// @Success 200 {object} Envelope{data=MapConfig}
// @Router /config/map [get]
func HandleMapConfig(accessToken string) http.HandlerFunc {
	cfg := MapConfig{
		AccessToken: accessToken,
		Style:       DefaultMapStyle,
		Center:      DefaultMapCenter,
		Zoom:        DefaultMapZoom,
		MinZoom:     DefaultMapMin,
		MaxZoom:     DefaultMapMax,
	}
	return func(w http.ResponseWriter, _ *http.Request) {
		respondData(w, http.StatusOK, cfg, "")
	}
}
