package registry

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"bluebook/internal/utils"
)

// Flat text registries served next to the app. Each is optional; a missing
// or unreadable file simply yields an empty list.
const (
	LicensesFile = "loyver.txt"
	DriversFile  = "sjoforer.txt"
	RoutesFile   = "ruter.txt"
)

// Driver is one "<id> <name...>" line from the driver registry.
type Driver struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Route is one "<routeNumber> <customerName...>" line from the route registry.
type Route struct {
	RouteNumber string `json:"routeNumber"`
	Customer    string `json:"customer"`
}

// Loader fetches the three registries from a local directory or, when
// BaseURL is set, over HTTP. All loads are fail-soft.
type Loader struct {
	Dir     string
	BaseURL string
	Client  *http.Client
}

// LoadLicenses returns one license id per non-blank trimmed line.
func (l Loader) LoadLicenses() []string {
	text, err := l.fetch(LicensesFile)
	if err != nil {
		utils.LogEvent("", "registry", "load_licenses", "fallback to empty list: "+err.Error())
		return []string{}
	}
	out := []string{}
	for _, line := range splitLines(text) {
		out = append(out, line)
	}
	return out
}

// LoadDrivers parses "<id><whitespace><name...>" lines. Names are title-cased.
func (l Loader) LoadDrivers() []Driver {
	text, err := l.fetch(DriversFile)
	if err != nil {
		utils.LogEvent("", "registry", "load_drivers", "fallback to empty list: "+err.Error())
		return []Driver{}
	}
	out := []Driver{}
	for _, line := range splitLines(text) {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		out = append(out, Driver{
			ID:   fields[0],
			Name: utils.TitleCaseName(strings.Join(fields[1:], " ")),
		})
	}
	return out
}

// LoadRoutes parses "<routeNumber><whitespace><customerName...>" lines.
func (l Loader) LoadRoutes() []Route {
	text, err := l.fetch(RoutesFile)
	if err != nil {
		utils.LogEvent("", "registry", "load_routes", "fallback to empty list: "+err.Error())
		return []Route{}
	}
	out := []Route{}
	for _, line := range splitLines(text) {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		out = append(out, Route{
			RouteNumber: fields[0],
			Customer:    strings.Join(fields[1:], " "),
		})
	}
	return out
}

// Load fetches all three registries.
func (l Loader) Load() Registry {
	return Registry{
		Licenses: l.LoadLicenses(),
		Drivers:  l.LoadDrivers(),
		Routes:   l.LoadRoutes(),
	}
}

func (l Loader) fetch(name string) (string, error) {
	if strings.TrimSpace(l.BaseURL) != "" {
		return l.fetchHTTP(name)
	}
	b, err := os.ReadFile(filepath.Join(l.Dir, name))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (l Loader) fetchHTTP(name string) (string, error) {
	client := l.Client
	if client == nil {
		client = &http.Client{Timeout: 5 * time.Second}
	}
	url := strings.TrimRight(l.BaseURL, "/") + "/" + name
	resp, err := client.Get(url)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("fetch %s: status %d", name, resp.StatusCode)
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func splitLines(text string) []string {
	out := []string{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}

// Registry holds the parsed lookup tables. The registries are conveniences:
// every lookup has a "no match" answer and the form works without them.
type Registry struct {
	Licenses []string `json:"licenses"`
	Drivers  []Driver `json:"drivers"`
	Routes   []Route  `json:"routes"`
}

// FindRoute matches a route number exactly.
func (r Registry) FindRoute(routeNumber string) (Route, bool) {
	nr := strings.TrimSpace(routeNumber)
	for _, rt := range r.Routes {
		if rt.RouteNumber == nr {
			return rt, true
		}
	}
	return Route{}, false
}

// MatchCustomer resolves a customer name to a route by exact
// case-insensitive match, or by partial match when exactly one route matches.
func (r Registry) MatchCustomer(name string) (Route, bool) {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return Route{}, false
	}
	for _, rt := range r.Routes {
		if strings.ToLower(rt.Customer) == needle {
			return rt, true
		}
	}
	var hit Route
	count := 0
	for _, rt := range r.Routes {
		if strings.Contains(strings.ToLower(rt.Customer), needle) {
			hit = rt
			count++
		}
	}
	if count == 1 {
		return hit, true
	}
	return Route{}, false
}

// FindDriver matches a driver id exactly.
func (r Registry) FindDriver(id string) (Driver, bool) {
	want := strings.TrimSpace(id)
	for _, d := range r.Drivers {
		if d.ID == want {
			return d, true
		}
	}
	return Driver{}, false
}

// FindDriverByName matches a title-cased driver name case-insensitively.
func (r Registry) FindDriverByName(name string) (Driver, bool) {
	want := strings.ToLower(utils.TitleCaseName(name))
	for _, d := range r.Drivers {
		if strings.ToLower(d.Name) == want {
			return d, true
		}
	}
	return Driver{}, false
}
