package amadeus

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

// SearchLocations looks up cities and airports matching keyword.
func (c *Client) SearchLocations(ctx context.Context, keyword string) ([]Location, error) {
	q := url.Values{}
	q.Set("subType", "CITY,AIRPORT")
	q.Set("keyword", keyword)
	q.Set("page[limit]", "5")

	var resp locationsResponse
	if err := c.get(ctx, locationsPath, q, &resp); err != nil {
		return nil, fmt.Errorf("location search failed: %w", err)
	}

	out := make([]Location, 0, len(resp.Data))
	for _, d := range resp.Data {
		out = append(out, Location{
			Name:        d.Name,
			SubType:     d.SubType,
			IATACode:    d.IATACode,
			CityCode:    d.Address.CityCode,
			CountryCode: d.Address.CountryCode,
		})
	}
	return out, nil
}

// ResolveCityCode turns a place name into an IATA city code. Upper-case three letter
// input is taken as a code already. Results are cached.
func (c *Client) ResolveCityCode(ctx context.Context, place string) (string, error) {
	place = strings.TrimSpace(place)
	if isIATACode(place) {
		return place, nil
	}

	key := strings.ToLower(place)
	if code, ok := c.locations.Get(key); ok {
		return code, nil
	}

	locs, err := c.SearchLocations(ctx, place)
	if err != nil {
		return "", err
	}

	code := pickCityCode(locs)
	if code == "" {
		return "", fmt.Errorf("%w: %s", ErrLocationNotFound, place)
	}

	c.locations.Add(key, code)
	return code, nil
}

func pickCityCode(locs []Location) string {
	for _, l := range locs {
		if l.SubType == "CITY" && l.IATACode != "" {
			return l.IATACode
		}
	}
	for _, l := range locs {
		if l.CityCode != "" {
			return l.CityCode
		}
		if l.IATACode != "" {
			return l.IATACode
		}
	}
	return ""
}

func isIATACode(s string) bool {
	if len(s) != 3 {
		return false
	}
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
