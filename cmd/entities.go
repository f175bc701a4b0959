package cmd

import (
	"strings"
	"time"
)

// Date is a calendar date serialized as an ISO-8601 day string (YYYY-MM-DD),
// which is what the warehouse's NDJSON ingestion expects for DATE columns.
type Date struct {
	time.Time
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format("2006-01-02") + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	t, err := time.Parse(`"2006-01-02"`, string(b))
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// Product is immutable once read from the seed catalog.
type Product struct {
	ProductID       int            `json:"product_id"`
	ProductName     string         `json:"product_name"`
	Category        string         `json:"category"`
	Subcategory     string         `json:"subcategory"`
	Brand           string         `json:"brand"`
	Price           float64        `json:"price"`
	Description     string         `json:"description"`
	ImageURL        string         `json:"image_url"`
	InventoryLevel  int            `json:"inventory_level"`
	SupplierID      int            `json:"supplier_id"`
	AverageRating   float64        `json:"average_rating"`
	NutritionalInfo map[string]any `json:"nutritional_info"`
}

type Store struct {
	StoreID      int            `json:"store_id"`
	StoreName    string         `json:"store_name"`
	AddressState string         `json:"address_state"`
	AddressCity  string         `json:"address_city"`
	Latitude     float64        `json:"latitude"`
	Longitude    float64        `json:"longitude"`
	OpeningHours map[string]any `json:"opening_hours"`
	ManagerID    int            `json:"manager_id"`
}

type Supplier struct {
	SupplierID   int     `json:"supplier_id"`
	SupplierName string  `json:"supplier_name"`
	ContactName  string  `json:"contact_name"`
	Email        string  `json:"email"`
	PhoneNumber  string  `json:"phone_number"`
	AddressState string  `json:"address_state"`
	AddressCity  string  `json:"address_city"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
}

type Customer struct {
	CustomerID    int    `json:"customer_id"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Email         string `json:"email"`
	Gender        string `json:"gender"`
	AddressState  string `json:"address_state"`
	AddressCity   string `json:"address_city"`
	LoyaltyMember bool   `json:"loyalty_member"`
}

type Employee struct {
	EmployeeID int     `json:"employee_id"`
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	JobTitle   string  `json:"job_title"`
	Gender     string  `json:"gender"`
	HireDate   Date    `json:"hire_date"`
	Salary     float64 `json:"salary"`
}

// Order carries nullable FKs: a nil CustomerID is a guest order, and online
// orders clear StoreID while offline orders clear ShippingAddressCity.
type Order struct {
	OrderID             int     `json:"order_id"`
	CustomerID          *int    `json:"customer_id"`
	StoreID             *int    `json:"store_id"`
	OrderDate           Date    `json:"order_date"`
	OrderType           string  `json:"order_type"`
	PaymentMethod       string  `json:"payment_method"`
	ShippingAddressCity *string `json:"shipping_address_city"`
}

type OrderItem struct {
	OrderItemID int     `json:"order_item_id"`
	OrderID     int     `json:"order_id"`
	ProductID   int     `json:"product_id"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

type CustomerServiceCase struct {
	CaseID          int    `json:"case_id"`
	CustomerID      int    `json:"customer_id"`
	CaseType        string `json:"case_type"`
	CaseStatus      string `json:"case_status"`
	ResolutionNotes string `json:"resolution_notes"`
	AgentID         int    `json:"agent_id"`
}

type PetProfile struct {
	PetID         int    `json:"pet_id"`
	CustomerID    int    `json:"customer_id"`
	PetType       string `json:"pet_type"`
	PetName       string `json:"pet_name"`
	Age           int    `json:"age"`
	Weight        int    `json:"weight"`
	ActivityLevel string `json:"activity_level"`
	DietaryNeeds  string `json:"dietary_needs"`
}

// NutritionFact is a derived view: one row per Food-category product.
type NutritionFact struct {
	FoodID          int            `json:"food_id"`
	FoodName        string         `json:"food_name"`
	NutritionalInfo map[string]any `json:"nutritional_info"`
}

// ── Factories ──

const (
	firstCustomerID = 1
	firstEmployeeID = 100

	employeeBaseSalary   = 67300.0
	employeeMonthlyRaise = 855.0
)

func newCustomer(g *GenContext, state, city string) Customer {
	gender := pickGender(g)
	first := pickFirstName(g, gender)
	last := pick(g, lastNames)
	return Customer{
		CustomerID:    g.nextID("customers", firstCustomerID),
		FirstName:     first,
		LastName:      last,
		Email:         strings.ToLower(first) + strings.ToLower(last) + "@" + pick(g, safeDomains),
		Gender:        gender,
		AddressState:  state,
		AddressCity:   city,
		LoyaltyMember: g.weightedBool(0.31),
	}
}

// newEmployee hires an employee on a seasonally-biased date and derives the
// salary from tenure: base plus a fixed raise for each full 30 days served.
func newEmployee(g *GenContext) Employee {
	gender := pickGender(g)
	hireDate := biasedDate(g, cymbalPetsStartDate, g.today, nil)
	monthsServed := daysBetween(hireDate, g.today) / 30
	return Employee{
		EmployeeID: g.nextID("employees", firstEmployeeID),
		FirstName:  pickFirstName(g, gender),
		LastName:   pick(g, lastNames),
		JobTitle:   pick(g, jobTitles),
		Gender:     gender,
		HireDate:   Date{hireDate},
		Salary:     employeeBaseSalary + float64(monthsServed)*employeeMonthlyRaise,
	}
}

func newPetProfile(g *GenContext, customerID int) PetProfile {
	return PetProfile{
		PetID:         g.nextID("pet_profiles", 1),
		CustomerID:    customerID,
		PetType:       mustChoose(g, petTypes, petTypeWeights),
		PetName:       randomPetName(g),
		Age:           g.intRange(1, 10),
		Weight:        g.intRange(1, 20),
		ActivityLevel: pick(g, activityLevels),
		DietaryNeeds:  randomSentence(g, 10),
	}
}

func newServiceCase(g *GenContext, customerID int) CustomerServiceCase {
	return CustomerServiceCase{
		CaseID:          g.nextID("customer_service", 1),
		CustomerID:      customerID,
		CaseType:        mustChoose(g, caseTypes, caseTypeWeights),
		CaseStatus:      mustChoose(g, caseStatuses, caseStatusWeights),
		ResolutionNotes: randomSentence(g, 10),
		AgentID:         g.intRange(1, 7),
	}
}
