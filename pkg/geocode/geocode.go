package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/diptansh-1/restaurant-app/pkg/geo"
)

// Client resolves a coordinate to a city name through a Nominatim-style
// reverse endpoint. Any failure degrades to DefaultCity; callers never see
// an error from a geocoding lookup.
type Client struct {
	BaseURL     string
	DefaultCity string
	HTTP        *http.Client
}

func New(baseURL, defaultCity string) *Client {
	return &Client{
		BaseURL:     baseURL,
		DefaultCity: defaultCity,
		HTTP:        &http.Client{Timeout: 5 * time.Second},
	}
}

type reverseResponse struct {
	Address struct {
		City    string `json:"city"`
		Town    string `json:"town"`
		Village string `json:"village"`
		State   string `json:"state"`
	} `json:"address"`
}

// CityName returns the city for the coordinate, preferring city, then
// town, village and state, falling back to DefaultCity.
func (c *Client) CityName(ctx context.Context, at geo.Coordinate) string {
	url := fmt.Sprintf("%s/reverse?lat=%f&lon=%f&format=json", c.BaseURL, at.Lat, at.Lng)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return c.DefaultCity
	}

	res, err := c.HTTP.Do(req)
	if err != nil {
		log.Printf("geocode: reverse lookup failed: %v", err)
		return c.DefaultCity
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		log.Printf("geocode: reverse lookup returned %d", res.StatusCode)
		return c.DefaultCity
	}

	var body reverseResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		log.Printf("geocode: bad reverse response: %v", err)
		return c.DefaultCity
	}

	for _, name := range []string{body.Address.City, body.Address.Town, body.Address.Village, body.Address.State} {
		if name != "" {
			return name
		}
	}
	return c.DefaultCity
}
