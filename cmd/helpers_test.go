package cmd

import (
	"errors"
	"time"
)

// fakeCatalog serves seed rows from memory.
type fakeCatalog map[string][]map[string]any

func (c fakeCatalog) Fetch(name string) ([]map[string]any, error) {
	return c[name], nil
}

// fakeGeo serves a fixed country, or fails.
type fakeGeo struct {
	country *geoCountry
	err     error
}

func (g fakeGeo) Fetch(countryISO3 string) (*geoCountry, error) {
	if g.err != nil {
		return nil, g.err
	}
	return g.country, nil
}

var errGeoDown = errors.New("geo source unavailable")

func testCountry() *geoCountry {
	return &geoCountry{
		Name: "United States",
		ISO3: "USA",
		States: []geoState{
			{
				Name: "Oregon",
				Type: "state",
				Cities: []geoCity{
					{Name: "Portland", Latitude: 45.52, Longitude: -122.68},
					{Name: "Eugene", Latitude: 44.05, Longitude: -123.09},
				},
			},
			{
				Name: "Ohio",
				Type: "state",
				Cities: []geoCity{
					{Name: "Columbus", Latitude: 39.96, Longitude: -83.00},
				},
			},
			{Name: "Puerto Rico", Type: "outlying area", Cities: []geoCity{
				{Name: "San Juan", Latitude: 18.47, Longitude: -66.11},
			}},
			{Name: "Nowhere", Type: "state"},
		},
	}
}

func testSeedRows() fakeCatalog {
	return fakeCatalog{
		"products_data": {
			{
				"product_id": 1.0, "product_name": "Salmon Feast", "category": "Food",
				"subcategory": "Wet Food", "brand": "Purrfect", "price": 12.5,
				"description": "Grain-free salmon cat food", "image_url": "https://img.example.com/1.png",
				"inventory_level": 40.0, "supplier_id": 1.0, "average_rating": 4.5,
				"nutritional_info": map[string]any{"protein": "32%"},
			},
			{
				"product_id": 2.0, "product_name": "Squeaky Bone", "category": "Toys",
				"subcategory": "Chew Toys", "brand": "WagCo", "price": 7.0,
				"description": "Durable rubber bone", "image_url": "https://img.example.com/2.png",
				"inventory_level": 120.0, "supplier_id": 2.0, "average_rating": 4.1,
			},
			{
				"product_id": 3.0, "product_name": "Catnip Mouse", "category": "Toys",
				"subcategory": "Catnip Toys", "brand": "Purrfect", "price": 4.25,
				"description": "Refillable catnip mouse", "image_url": "https://img.example.com/3.png",
				"inventory_level": 75.0, "supplier_id": 2.0, "average_rating": 3.8,
			},
		},
		"stores_data": {
			{"store_id": 1.0, "store_name": "Cymbal Pets Downtown", "manager_id": 100.0,
				"opening_hours": map[string]any{"mon": "9-18"}},
			{"store_id": 2.0, "store_name": "Cymbal Pets Mall", "manager_id": 101.0},
		},
		"suppliers_data": {
			{"supplier_id": 1.0, "supplier_name": "Pet Food Co", "contact_name": "Dana Reyes",
				"email": "dana@example.com", "phone_number": "555-0101"},
			{"supplier_id": 2.0, "supplier_name": "Toy Works", "contact_name": "Sam Lee",
				"email": "sam@example.org", "phone_number": "555-0102"},
		},
	}
}

func testGenContext(seed int64) *GenContext {
	return newGenContext(seed, time.Date(2023, time.June, 15, 0, 0, 0, 0, time.UTC))
}

func testRunConfig() *runConfig {
	return &runConfig{
		DatasetID:      "cymbal_pets",
		Country:        "USA",
		NumOfCustomers: 50,
		DailyOrderRate: 2.0,
		CaseDivisor:    44,
		PetDivisor:     12,
		Seed:           7,
		SkipLoad:       true,
		LogLevel:       "INFO",
	}
}
