package cmd

import "math"

// productCategories fixes the category order so affinity weight tables line
// up positionally.
var productCategories = []string{"Food", "Toys", "Accessories", "Health & Wellness"}

// categoryAffinity maps customer gender to category selection weights.
// Guest orders and missing genders default to "f"; anything else falls back
// to the neutral table.
var categoryAffinity = map[string][]float64{
	"m": {0.35, 0.30, 0.20, 0.15},
	"f": {0.40, 0.10, 0.25, 0.25},
}

var neutralAffinity = []float64{0.38, 0.25, 0.22, 0.15}

// Item counts are front-loaded toward one- and two-item baskets.
var (
	itemCounts       = []int{1, 2, 3, 4, 5}
	itemCountWeights = []float64{0.25, 0.45, 0.18, 0.07, 0.05}
)

// maxItemQuantity bounds the per-line quantity draw (uniform 1..max).
const maxItemQuantity = 4

const customerAttachRate = 0.67

var (
	orderTypes       = []string{"Online", "Offline"}
	orderTypeWeights = []float64{0.61, 0.39}

	offlinePayments      = []string{"Cash", "Credit Card"}
	offlinePaymentWeight = []float64{0.35, 0.65}

	onlinePayments      = []string{"Credit Card", "Paypal", "Invoice"}
	onlinePaymentWeight = []float64{0.41, 0.33, 0.26}
)

// newOrder instantiates one order. Every order starts with a store attached;
// orders that resolve Online drop the store and keep the shipping city, and
// offline orders do the opposite.
func newOrder(g *GenContext, customerID *int, shippingCity *string, storeID *int) Order {
	o := Order{
		OrderID:             g.nextID("orders", 1),
		CustomerID:          customerID,
		StoreID:             storeID,
		OrderDate:           Date{biasedDate(g, cymbalPetsStartDate, g.today, nil)},
		OrderType:           mustChoose(g, orderTypes, orderTypeWeights),
		ShippingAddressCity: shippingCity,
	}
	if o.OrderType == "Offline" {
		o.PaymentMethod = mustChoose(g, offlinePayments, offlinePaymentWeight)
		o.ShippingAddressCity = nil
	} else {
		o.PaymentMethod = mustChoose(g, onlinePayments, onlinePaymentWeight)
		o.StoreID = nil
	}
	return o
}

// buildOrders creates daysSinceStart × round(dailyRate) orders. Each order
// attaches to a uniformly random existing customer with probability
// customerAttachRate (guest order otherwise) and references a uniformly
// random store.
func buildOrders(g *GenContext, customers []Customer, stores []Store, dailyRate float64) []Order {
	numOrders := daysBetween(cymbalPetsStartDate, g.today) * int(math.Round(dailyRate))
	orders := make([]Order, 0, numOrders)
	for i := 0; i < numOrders; i++ {
		var customerID *int
		var shippingCity *string
		if g.weightedBool(customerAttachRate) && len(customers) > 0 {
			cust := customers[g.intn(len(customers))]
			id, city := cust.CustomerID, cust.AddressCity
			customerID, shippingCity = &id, &city
		}
		var storeID *int
		if len(stores) > 0 {
			id := stores[g.intn(len(stores))].StoreID
			storeID = &id
		}
		orders = append(orders, newOrder(g, customerID, shippingCity, storeID))
	}
	return orders
}

// buildOrderItems fills each order's basket. Per order: the item count comes
// from the fixed basket-size distribution and the category weights come from
// the ordering customer's gender affinity. Per item: a category is drawn,
// then a product within it weighted by average_rating × the order month's
// seasonal weight (uniform if every weight is zero). A category with no
// products yields no item for that draw.
func buildOrderItems(g *GenContext, orders []Order, products []Product, customers []Customer) []OrderItem {
	productsByCategory := make(map[string][]Product)
	for _, p := range products {
		productsByCategory[p.Category] = append(productsByCategory[p.Category], p)
	}
	customersByID := make(map[int]Customer, len(customers))
	for _, c := range customers {
		customersByID[c.CustomerID] = c
	}

	var items []OrderItem
	for _, order := range orders {
		gender := "f"
		if order.CustomerID != nil {
			if cust, ok := customersByID[*order.CustomerID]; ok && cust.Gender != "" {
				gender = cust.Gender
			}
		}
		affinity, ok := categoryAffinity[gender]
		if !ok {
			affinity = neutralAffinity
		}

		numItems := mustChoose(g, itemCounts, itemCountWeights)
		monthWeight := seasonalWeights[order.OrderDate.Month()]

		for n := 0; n < numItems; n++ {
			category := mustChoose(g, productCategories, affinity)
			eligible := productsByCategory[category]
			if len(eligible) == 0 {
				continue
			}

			weights := make([]float64, len(eligible))
			var total float64
			for i, p := range eligible {
				weights[i] = p.AverageRating * monthWeight
				total += weights[i]
			}
			if total == 0 {
				for i := range weights {
					weights[i] = 1
				}
			}

			product := mustChoose(g, eligible, weights)
			quantity := g.intRange(1, maxItemQuantity)
			items = append(items, OrderItem{
				OrderItemID: g.nextID("order_items", 1),
				OrderID:     order.OrderID,
				ProductID:   product.ProductID,
				Quantity:    quantity,
				Price:       float64(quantity) * product.Price,
			})
		}
	}
	return items
}
