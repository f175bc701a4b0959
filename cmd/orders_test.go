package cmd

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProducts() []Product {
	return []Product{
		{ProductID: 1, Category: "Food", Price: 12.5, AverageRating: 4.5},
		{ProductID: 2, Category: "Toys", Price: 7.0, AverageRating: 4.1},
		{ProductID: 3, Category: "Toys", Price: 4.25, AverageRating: 3.8},
		{ProductID: 4, Category: "Accessories", Price: 15.0, AverageRating: 4.9},
		{ProductID: 5, Category: "Health & Wellness", Price: 22.0, AverageRating: 4.0},
	}
}

func TestBuildOrdersVolume(t *testing.T) {
	// Ten days of history at two orders per day.
	today := time.Date(2023, time.January, 11, 0, 0, 0, 0, time.UTC)
	g := newGenContext(31, today)

	customers, err := buildCustomers(g, 10, testCountry())
	require.NoError(t, err)
	stores := []Store{{StoreID: 1}, {StoreID: 2}}

	orders := buildOrders(g, customers, stores, 2.0)
	require.Len(t, orders, 20)
	for _, o := range orders {
		assert.True(t, o.OrderDate.After(cymbalPetsStartDate))
		assert.False(t, o.OrderDate.After(today))
	}
}

func TestBuildOrdersInvariants(t *testing.T) {
	g := testGenContext(32)
	customers, err := buildCustomers(g, 30, testCountry())
	require.NoError(t, err)
	stores := []Store{{StoreID: 1}, {StoreID: 2}, {StoreID: 3}}

	orders := buildOrders(g, customers, stores, 3.0)
	require.NotEmpty(t, orders)

	var attached int
	for i, o := range orders {
		assert.Equal(t, i+1, o.OrderID)
		assert.True(t, o.OrderDate.After(cymbalPetsStartDate))
		assert.True(t, o.OrderDate.Before(g.today))

		switch o.OrderType {
		case "Offline":
			assert.Nil(t, o.ShippingAddressCity, "offline order %d keeps a shipping city", o.OrderID)
			require.NotNil(t, o.StoreID)
			assert.Contains(t, offlinePayments, o.PaymentMethod)
		case "Online":
			assert.Nil(t, o.StoreID, "online order %d keeps a store", o.OrderID)
			assert.Contains(t, onlinePayments, o.PaymentMethod)
		default:
			t.Fatalf("unexpected order type %q", o.OrderType)
		}

		if o.CustomerID != nil {
			attached++
			assert.GreaterOrEqual(t, *o.CustomerID, 1)
			assert.LessOrEqual(t, *o.CustomerID, 30)
		}
	}
	// Roughly two thirds of orders belong to a known customer.
	assert.InDelta(t, customerAttachRate, float64(attached)/float64(len(orders)), 0.12)
}

func TestBuildOrdersWithoutCustomersOrStores(t *testing.T) {
	g := testGenContext(33)
	orders := buildOrders(g, nil, nil, 1.0)
	require.NotEmpty(t, orders)
	for _, o := range orders {
		assert.Nil(t, o.CustomerID)
		assert.Nil(t, o.StoreID)
		assert.Nil(t, o.ShippingAddressCity)
	}
}

func TestBuildOrderItems(t *testing.T) {
	g := testGenContext(34)
	customers, err := buildCustomers(g, 20, testCountry())
	require.NoError(t, err)
	stores := []Store{{StoreID: 1}}
	products := testProducts()

	orders := buildOrders(g, customers, stores, 3.0)
	items := buildOrderItems(g, orders, products, customers)
	require.NotEmpty(t, items)

	orderIDs := make(map[int]bool, len(orders))
	for _, o := range orders {
		orderIDs[o.OrderID] = true
	}
	productsByID := make(map[int]Product, len(products))
	for _, p := range products {
		productsByID[p.ProductID] = p
	}

	for i, it := range items {
		assert.Equal(t, i+1, it.OrderItemID)
		assert.True(t, orderIDs[it.OrderID], "item %d references unknown order %d", it.OrderItemID, it.OrderID)

		product, ok := productsByID[it.ProductID]
		require.True(t, ok, "item %d references unknown product %d", it.OrderItemID, it.ProductID)
		assert.GreaterOrEqual(t, it.Quantity, 1)
		assert.LessOrEqual(t, it.Quantity, maxItemQuantity)
		assert.InDelta(t, float64(it.Quantity)*product.Price, it.Price, 1e-9)
	}
}

func TestBuildOrderItemsSkipsEmptyCategories(t *testing.T) {
	g := testGenContext(35)
	stores := []Store{{StoreID: 1}}
	orders := buildOrders(g, nil, stores, 2.0)

	// Only Toys exist, so every emitted item is a toy and draws landing on
	// other categories produce nothing.
	products := []Product{
		{ProductID: 2, Category: "Toys", Price: 7.0, AverageRating: 4.1},
		{ProductID: 3, Category: "Toys", Price: 4.25, AverageRating: 3.8},
	}
	items := buildOrderItems(g, orders, products, nil)
	require.NotEmpty(t, items)
	for _, it := range items {
		assert.Contains(t, []int{2, 3}, it.ProductID)
	}

	assert.Empty(t, buildOrderItems(g, orders, nil, nil))
}

func TestBuildOrderItemsUnratedProducts(t *testing.T) {
	g := testGenContext(36)
	stores := []Store{{StoreID: 1}}
	orders := buildOrders(g, nil, stores, 2.0)

	// Zero ratings zero out every weight; the uniform fallback must still
	// produce items.
	products := []Product{
		{ProductID: 1, Category: "Food", Price: 12.5},
		{ProductID: 2, Category: "Toys", Price: 7.0},
		{ProductID: 3, Category: "Accessories", Price: 15.0},
		{ProductID: 4, Category: "Health & Wellness", Price: 22.0},
	}
	items := buildOrderItems(g, orders, products, nil)
	assert.NotEmpty(t, items)
}
