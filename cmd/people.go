package cmd

import "math"

// employeesPerStore matches the staffing ratio of the seed business model.
const employeesPerStore = 7

func buildEmployees(g *GenContext, storeCount int) []Employee {
	employees := make([]Employee, 0, storeCount*employeesPerStore)
	for i := 0; i < storeCount*employeesPerStore; i++ {
		employees = append(employees, newEmployee(g))
	}
	return employees
}

// buildNutritionFacts derives the nutrition view: one row per Food product.
func buildNutritionFacts(products []Product) []NutritionFact {
	var facts []NutritionFact
	for _, p := range products {
		if p.Category == "Food" {
			facts = append(facts, NutritionFact{
				FoodID:          p.ProductID,
				FoodName:        p.ProductName,
				NutritionalInfo: p.NutritionalInfo,
			})
		}
	}
	return facts
}

// buildPetProfiles attaches round(len(customers)/divisor) pet profiles to
// uniformly random customers.
func buildPetProfiles(g *GenContext, customers []Customer, divisor int) []PetProfile {
	if len(customers) == 0 {
		return nil
	}
	count := int(math.Round(float64(len(customers)) / float64(divisor)))
	profiles := make([]PetProfile, 0, count)
	for i := 0; i < count; i++ {
		owner := customers[g.intn(len(customers))]
		profiles = append(profiles, newPetProfile(g, owner.CustomerID))
	}
	return profiles
}

// buildServiceCases opens round(len(customers)/divisor) support cases for
// uniformly random customers.
func buildServiceCases(g *GenContext, customers []Customer, divisor int) []CustomerServiceCase {
	if len(customers) == 0 {
		return nil
	}
	count := int(math.Round(float64(len(customers)) / float64(divisor)))
	cases := make([]CustomerServiceCase, 0, count)
	for i := 0; i < count; i++ {
		cust := customers[g.intn(len(customers))]
		cases = append(cases, newServiceCase(g, cust.CustomerID))
	}
	return cases
}
