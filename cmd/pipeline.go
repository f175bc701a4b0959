package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// dataset is the complete output of one generation run.
type dataset struct {
	Suppliers  []Supplier
	Products   []Product
	Stores     []Store
	Customers  []Customer
	Employees  []Employee
	Nutrition  []NutritionFact
	Pets       []PetProfile
	Cases      []CustomerServiceCase
	Orders     []Order
	OrderItems []OrderItem
}

// tableData is one generated table in both shapes the run needs: records for
// NDJSON snapshots and column/row form for the warehouse copy.
type tableData struct {
	name    string
	records []any
	columns []string
	rows    [][]any
}

func (d *dataset) tables() []tableData {
	suppliers := tableData{name: "suppliers", columns: []string{
		"supplier_id", "supplier_name", "contact_name", "email", "phone_number",
		"address_state", "address_city", "latitude", "longitude",
	}}
	for _, s := range d.Suppliers {
		suppliers.records = append(suppliers.records, s)
		suppliers.rows = append(suppliers.rows, []any{
			s.SupplierID, s.SupplierName, s.ContactName, s.Email, s.PhoneNumber,
			s.AddressState, s.AddressCity, s.Latitude, s.Longitude,
		})
	}

	products := tableData{name: "products", columns: []string{
		"product_id", "product_name", "category", "subcategory", "brand", "price",
		"description", "image_url", "inventory_level", "supplier_id",
		"average_rating", "nutritional_info",
	}}
	for _, p := range d.Products {
		products.records = append(products.records, p)
		products.rows = append(products.rows, []any{
			p.ProductID, p.ProductName, p.Category, p.Subcategory, p.Brand, p.Price,
			p.Description, p.ImageURL, p.InventoryLevel, p.SupplierID,
			p.AverageRating, p.NutritionalInfo,
		})
	}

	stores := tableData{name: "stores", columns: []string{
		"store_id", "store_name", "address_state", "address_city", "latitude",
		"longitude", "opening_hours", "manager_id",
	}}
	for _, s := range d.Stores {
		stores.records = append(stores.records, s)
		stores.rows = append(stores.rows, []any{
			s.StoreID, s.StoreName, s.AddressState, s.AddressCity, s.Latitude,
			s.Longitude, s.OpeningHours, s.ManagerID,
		})
	}

	customers := tableData{name: "customers", columns: []string{
		"customer_id", "first_name", "last_name", "email", "gender",
		"address_state", "address_city", "loyalty_member",
	}}
	for _, c := range d.Customers {
		customers.records = append(customers.records, c)
		customers.rows = append(customers.rows, []any{
			c.CustomerID, c.FirstName, c.LastName, c.Email, c.Gender,
			c.AddressState, c.AddressCity, c.LoyaltyMember,
		})
	}

	employees := tableData{name: "employees", columns: []string{
		"employee_id", "first_name", "last_name", "job_title", "gender",
		"hire_date", "salary",
	}}
	for _, e := range d.Employees {
		employees.records = append(employees.records, e)
		employees.rows = append(employees.rows, []any{
			e.EmployeeID, e.FirstName, e.LastName, e.JobTitle, e.Gender,
			e.HireDate.Time, e.Salary,
		})
	}

	nutrition := tableData{name: "nutrition_facts", columns: []string{
		"food_id", "food_name", "nutritional_info",
	}}
	for _, n := range d.Nutrition {
		nutrition.records = append(nutrition.records, n)
		nutrition.rows = append(nutrition.rows, []any{n.FoodID, n.FoodName, n.NutritionalInfo})
	}

	pets := tableData{name: "pet_profiles", columns: []string{
		"pet_id", "customer_id", "pet_type", "pet_name", "age", "weight",
		"activity_level", "dietary_needs",
	}}
	for _, p := range d.Pets {
		pets.records = append(pets.records, p)
		pets.rows = append(pets.rows, []any{
			p.PetID, p.CustomerID, p.PetType, p.PetName, p.Age, p.Weight,
			p.ActivityLevel, p.DietaryNeeds,
		})
	}

	cases := tableData{name: "customer_service", columns: []string{
		"case_id", "customer_id", "case_type", "case_status", "resolution_notes",
		"agent_id",
	}}
	for _, c := range d.Cases {
		cases.records = append(cases.records, c)
		cases.rows = append(cases.rows, []any{
			c.CaseID, c.CustomerID, c.CaseType, c.CaseStatus, c.ResolutionNotes,
			c.AgentID,
		})
	}

	orders := tableData{name: "orders", columns: []string{
		"order_id", "customer_id", "store_id", "order_date", "order_type",
		"payment_method", "shipping_address_city",
	}}
	for _, o := range d.Orders {
		orders.records = append(orders.records, o)
		orders.rows = append(orders.rows, []any{
			o.OrderID, o.CustomerID, o.StoreID, o.OrderDate.Time, o.OrderType,
			o.PaymentMethod, o.ShippingAddressCity,
		})
	}

	items := tableData{name: "order_items", columns: []string{
		"order_item_id", "order_id", "product_id", "quantity", "price",
	}}
	for _, it := range d.OrderItems {
		items.records = append(items.records, it)
		items.rows = append(items.rows, []any{
			it.OrderItemID, it.OrderID, it.ProductID, it.Quantity, it.Price,
		})
	}

	return []tableData{
		suppliers, products, stores, customers, employees,
		nutrition, pets, cases, orders, items,
	}
}

// generateDataset produces every table of one run in dependency order so id
// counters and references line up.
func generateDataset(g *GenContext, geo geoSource, catalog seedCatalog, config *runConfig) (*dataset, error) {
	country, err := geo.Fetch(config.Country)
	if err != nil {
		return nil, fmt.Errorf("could not fetch geography: %w", err)
	}

	d := &dataset{}

	if d.Suppliers, err = buildSuppliers(g, catalog, country); err != nil {
		return nil, err
	}
	log.Infof("generated %d suppliers", len(d.Suppliers))

	if d.Products, err = buildProducts(catalog); err != nil {
		return nil, err
	}
	log.Infof("generated %d products", len(d.Products))

	if d.Stores, err = buildStores(g, catalog, country); err != nil {
		return nil, err
	}
	log.Infof("generated %d stores", len(d.Stores))

	if d.Customers, err = buildCustomers(g, config.NumOfCustomers, country); err != nil {
		return nil, err
	}
	log.Infof("generated %d customers", len(d.Customers))

	d.Employees = buildEmployees(g, len(d.Stores))
	log.Infof("generated %d employees", len(d.Employees))

	d.Nutrition = buildNutritionFacts(d.Products)
	log.Infof("generated %d nutrition facts", len(d.Nutrition))

	d.Pets = buildPetProfiles(g, d.Customers, config.PetDivisor)
	log.Infof("generated %d pet profiles", len(d.Pets))

	d.Cases = buildServiceCases(g, d.Customers, config.CaseDivisor)
	log.Infof("generated %d customer service cases", len(d.Cases))

	d.Orders = buildOrders(g, d.Customers, d.Stores, config.DailyOrderRate)
	log.Infof("generated %d orders", len(d.Orders))

	d.OrderItems = buildOrderItems(g, d.Orders, d.Products, d.Customers)
	log.Infof("generated %d order items", len(d.OrderItems))

	return d, nil
}

// executeRun performs one full generation run: generate every table, write
// NDJSON snapshots under a fresh run directory, then truncate-and-load the
// warehouse unless the run is configured snapshot-only.
func executeRun(ctx context.Context, config *runConfig, geo geoSource, catalog seedCatalog, loader warehouseLoader) error {
	runID := uuid.NewString()
	log.Infof("starting run %s", runID)

	g := newGenContext(config.Seed, time.Now().UTC())

	data, err := generateDataset(g, geo, catalog, config)
	if err != nil {
		return err
	}
	tables := data.tables()

	if err := writeSnapshots(config.BucketDir, runID, tables); err != nil {
		return err
	}
	log.Infof("wrote snapshots for run %s to %s", runID, config.BucketDir)

	if config.SkipLoad {
		log.Infof("warehouse load skipped for run %s", runID)
		return nil
	}
	if err := loader.Load(ctx, config.DatasetID, tables); err != nil {
		return fmt.Errorf("could not load warehouse: %w", err)
	}

	log.Infof("run %s finished", runID)
	return nil
}
