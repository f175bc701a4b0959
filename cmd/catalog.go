package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

var errNoGeography = errors.New("no geography available")

// ── Geo-data collaborator ──

type geoCity struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude,string"`
	Longitude float64 `json:"longitude,string"`
}

type geoState struct {
	Name   string    `json:"name"`
	Type   string    `json:"type"`
	Cities []geoCity `json:"cities"`
}

type geoCountry struct {
	Name   string     `json:"name"`
	ISO3   string     `json:"iso3"`
	States []geoState `json:"states"`
}

type geoSource interface {
	Fetch(countryISO3 string) (*geoCountry, error)
}

// httpGeoSource pulls the public countries+states+cities JSON dump and
// filters it to one country. A non-200 response fails the run.
type httpGeoSource struct {
	url    string
	client *http.Client
}

func newGeoSource(url string) httpGeoSource {
	return httpGeoSource{url: url, client: &http.Client{Timeout: 2 * time.Minute}}
}

func (s httpGeoSource) Fetch(countryISO3 string) (*geoCountry, error) {
	resp, err := s.client.Get(s.url)
	if err != nil {
		return nil, fmt.Errorf("fetch geo data: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch geo data: unexpected status %s", resp.Status)
	}

	var countries []geoCountry
	if err := json.NewDecoder(resp.Body).Decode(&countries); err != nil {
		return nil, fmt.Errorf("decode geo data: %w", err)
	}
	for i := range countries {
		if countries[i].ISO3 == countryISO3 {
			return &countries[i], nil
		}
	}
	return nil, fmt.Errorf("fetch geo data: no country with iso3 %q", countryISO3)
}

// randomPlace draws a uniformly random state and a uniformly random city
// within it. Entries whose type is not literally "state" (districts,
// territories, outlying areas) are filtered out, as are states without
// cities.
func randomPlace(g *GenContext, country *geoCountry) (geoState, geoCity, error) {
	states := make([]geoState, 0, len(country.States))
	for _, s := range country.States {
		if s.Type == "state" && len(s.Cities) > 0 {
			states = append(states, s)
		}
	}
	if len(states) == 0 {
		return geoState{}, geoCity{}, fmt.Errorf("%w: country %q has no states with cities", errNoGeography, country.ISO3)
	}
	state := states[g.intn(len(states))]
	city := state.Cities[g.intn(len(state.Cities))]
	return state, city, nil
}

// ── Seed catalog collaborator ──

// seedCatalog supplies the hand-curated seed records behind products, stores
// and suppliers.
type seedCatalog interface {
	Fetch(name string) ([]map[string]any, error)
}

// dirCatalog reads seed catalogs as JSON arrays from <dir>/data/<name>.json,
// mirroring the bucket layout the snapshots use. A missing file is an empty
// (optional) catalog; a file that exists but does not parse fails the run.
type dirCatalog struct {
	dir string
}

func (c dirCatalog) Fetch(name string) ([]map[string]any, error) {
	path := filepath.Join(c.dir, "data", name+".json")
	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("fetch seed catalog %s: %w", name, err)
	}
	var records []map[string]any
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("parse seed catalog %s: %w", name, err)
	}
	return records, nil
}

// ── Raw record field access ──

func stringField(row map[string]any, key string) string {
	v, _ := row[key].(string)
	return v
}

func intField(row map[string]any, key string) int {
	v, _ := row[key].(float64)
	return int(v)
}

func floatField(row map[string]any, key string) float64 {
	v, _ := row[key].(float64)
	return v
}

func mapField(row map[string]any, key string) map[string]any {
	v, _ := row[key].(map[string]any)
	return v
}

// ── Seed-driven builders ──

func buildProducts(catalog seedCatalog) ([]Product, error) {
	rows, err := catalog.Fetch("products_data")
	if err != nil {
		return nil, err
	}
	products := make([]Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, Product{
			ProductID:       intField(row, "product_id"),
			ProductName:     stringField(row, "product_name"),
			Category:        stringField(row, "category"),
			Subcategory:     stringField(row, "subcategory"),
			Brand:           stringField(row, "brand"),
			Price:           floatField(row, "price"),
			Description:     stringField(row, "description"),
			ImageURL:        stringField(row, "image_url"),
			InventoryLevel:  intField(row, "inventory_level"),
			SupplierID:      intField(row, "supplier_id"),
			AverageRating:   floatField(row, "average_rating"),
			NutritionalInfo: mapField(row, "nutritional_info"),
		})
	}
	return products, nil
}

func buildStores(g *GenContext, catalog seedCatalog, country *geoCountry) ([]Store, error) {
	rows, err := catalog.Fetch("stores_data")
	if err != nil {
		return nil, err
	}
	stores := make([]Store, 0, len(rows))
	for _, row := range rows {
		state, city, err := randomPlace(g, country)
		if err != nil {
			return nil, err
		}
		stores = append(stores, Store{
			StoreID:      intField(row, "store_id"),
			StoreName:    stringField(row, "store_name"),
			AddressState: state.Name,
			AddressCity:  city.Name,
			Latitude:     city.Latitude,
			Longitude:    city.Longitude,
			OpeningHours: mapField(row, "opening_hours"),
			ManagerID:    intField(row, "manager_id"),
		})
	}
	return stores, nil
}

func buildSuppliers(g *GenContext, catalog seedCatalog, country *geoCountry) ([]Supplier, error) {
	rows, err := catalog.Fetch("suppliers_data")
	if err != nil {
		return nil, err
	}
	suppliers := make([]Supplier, 0, len(rows))
	for _, row := range rows {
		state, city, err := randomPlace(g, country)
		if err != nil {
			return nil, err
		}
		suppliers = append(suppliers, Supplier{
			SupplierID:   intField(row, "supplier_id"),
			SupplierName: stringField(row, "supplier_name"),
			ContactName:  stringField(row, "contact_name"),
			Email:        stringField(row, "email"),
			PhoneNumber:  stringField(row, "phone_number"),
			AddressState: state.Name,
			AddressCity:  city.Name,
			Latitude:     city.Latitude,
			Longitude:    city.Longitude,
		})
	}
	return suppliers, nil
}

func buildCustomers(g *GenContext, numOfCustomers int, country *geoCountry) ([]Customer, error) {
	customers := make([]Customer, 0, numOfCustomers)
	for i := 0; i < numOfCustomers; i++ {
		state, city, err := randomPlace(g, country)
		if err != nil {
			return nil, err
		}
		customers = append(customers, newCustomer(g, state.Name, city.Name))
	}
	return customers, nil
}
