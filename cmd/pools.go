package cmd

import "strings"

// ── Word pools ──

var maleFirstNames = []string{
	"James", "Robert", "John", "Michael", "David", "William", "Richard", "Joseph",
	"Thomas", "Charles", "Christopher", "Daniel", "Matthew", "Anthony", "Mark", "Donald",
	"Steven", "Paul", "Andrew", "Joshua", "Kenneth", "Kevin", "Brian", "George",
	"Timothy", "Ronald", "Edward", "Jason", "Jeffrey", "Ryan", "Jacob", "Gary",
	"Nicholas", "Eric", "Jonathan", "Stephen", "Larry", "Justin", "Scott", "Brandon",
	"Benjamin", "Samuel", "Raymond", "Gregory", "Frank", "Alexander", "Patrick", "Jack",
	"Dennis", "Jerry", "Tyler", "Aaron", "Jose", "Adam", "Nathan", "Henry",
	"Peter", "Zachary", "Douglas", "Harold", "Albert", "Carl", "Arthur", "Gerald",
	"Roger", "Keith", "Jeremy", "Terry", "Lawrence", "Sean", "Christian", "Austin",
	"Jesse", "Dylan", "Bruce", "Ralph", "Roy", "Eugene", "Randy", "Wayne",
	"Vincent", "Philip", "Bobby", "Russell", "Howard", "Louis", "Harry", "Fred",
	"Martin", "Alan", "Craig", "Walter", "Danny", "Ernest", "Phillip", "Todd",
}

var femaleFirstNames = []string{
	"Mary", "Patricia", "Jennifer", "Linda", "Elizabeth", "Barbara", "Susan", "Jessica",
	"Sarah", "Karen", "Lisa", "Nancy", "Betty", "Margaret", "Sandra", "Ashley",
	"Dorothy", "Kimberly", "Emily", "Donna", "Michelle", "Carol", "Amanda", "Melissa",
	"Deborah", "Stephanie", "Rebecca", "Sharon", "Laura", "Cynthia", "Kathleen", "Amy",
	"Angela", "Shirley", "Anna", "Brenda", "Pamela", "Emma", "Nicole", "Helen",
	"Samantha", "Katherine", "Christine", "Debra", "Rachel", "Carolyn", "Janet", "Catherine",
	"Maria", "Heather", "Diane", "Ruth", "Julie", "Olivia", "Joyce", "Virginia",
	"Victoria", "Kelly", "Lauren", "Christina", "Joan", "Evelyn", "Judith", "Megan",
	"Andrea", "Cheryl", "Hannah", "Jacqueline", "Martha", "Gloria", "Teresa", "Ann",
	"Sara", "Madison", "Frances", "Kathryn", "Janice", "Jean", "Abigail", "Alice",
	"Judy", "Sophia", "Grace", "Denise", "Amber", "Doris", "Marilyn", "Danielle",
	"Beverly", "Isabella", "Theresa", "Diana", "Natalie", "Brittany", "Charlotte", "Marie",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis",
	"Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez", "Wilson", "Anderson",
	"Thomas", "Taylor", "Moore", "Jackson", "Martin", "Lee", "Perez", "Thompson",
	"White", "Harris", "Sanchez", "Clark", "Ramirez", "Lewis", "Robinson", "Walker",
	"Young", "Allen", "King", "Wright", "Scott", "Torres", "Nguyen", "Hill",
	"Flores", "Green", "Adams", "Nelson", "Baker", "Hall", "Rivera", "Campbell",
	"Mitchell", "Carter", "Roberts", "Gomez", "Phillips", "Evans", "Turner", "Diaz",
	"Parker", "Cruz", "Edwards", "Collins", "Reyes", "Stewart", "Morris", "Morales",
	"Murphy", "Cook", "Rogers", "Gutierrez", "Ortiz", "Morgan", "Cooper", "Peterson",
	"Bailey", "Reed", "Kelly", "Howard", "Ramos", "Kim", "Cox", "Ward",
	"Richardson", "Watson", "Brooks", "Chavez", "Wood", "James", "Bennett", "Gray",
	"Mendoza", "Ruiz", "Hughes", "Price", "Alvarez", "Castillo", "Sanders", "Patel",
	"Myers", "Long", "Ross", "Foster", "Jimenez", "Powell",
}

// safeDomains are reserved domains that can never receive real mail.
var safeDomains = []string{"example.com", "example.org", "example.net"}

var jobTitles = []string{
	"Sales Associate",
	"Cashier",
	"Pet Care Specialist",
	"Groomer",
	"Inventory Manager",
	"Customer Service Representative",
}

var petTypes = []string{"Cat", "Dog", "Fish", "Bird", "Reptile", "Other"}
var petTypeWeights = []float64{0.30, 0.25, 0.14, 0.09, 0.06, 0.16}

var activityLevels = []string{"Low", "Medium", "High"}

var caseTypes = []string{"Return", "Complaint", "Product Question", "Payment Issue"}
var caseTypeWeights = []float64{0.10, 0.50, 0.25, 0.15}

var caseStatuses = []string{"Open", "In Progress", "Closed", "Escalated"}
var caseStatusWeights = []float64{0.45, 0.15, 0.45, 0.05}

// noteWords feeds the free-text fields (resolution notes, dietary needs).
var noteWords = []string{
	"customer", "contacted", "support", "regarding", "product", "order", "refund",
	"replacement", "shipping", "delayed", "resolved", "pending", "escalated", "follow",
	"up", "issue", "payment", "processed", "confirmed", "canceled", "exchange",
	"grain", "free", "diet", "sensitive", "stomach", "prefers", "wet", "dry",
	"food", "twice", "daily", "portion", "controlled", "allergic", "chicken",
	"requires", "supplement", "joint", "health", "weight", "management", "formula",
	"high", "protein", "low", "fat", "senior", "puppy", "kitten", "treats",
}

func pick(g *GenContext, pool []string) string {
	return pool[g.intn(len(pool))]
}

// pickGender draws a gender with the observed customer-base skew.
func pickGender(g *GenContext) string {
	return mustChoose(g, []string{"m", "f"}, []float64{0.37, 0.63})
}

func pickFirstName(g *GenContext, gender string) string {
	if gender == "m" {
		return pick(g, maleFirstNames)
	}
	return pick(g, femaleFirstNames)
}

// randomPetName draws from either first-name pool; pets answer to people
// names here.
func randomPetName(g *GenContext) string {
	if g.intn(2) == 0 {
		return pick(g, maleFirstNames)
	}
	return pick(g, femaleFirstNames)
}

// randomSentence joins wordCount pool words into a capitalized sentence.
func randomSentence(g *GenContext, wordCount int) string {
	words := make([]string, wordCount)
	for i := range words {
		words[i] = pick(g, noteWords)
	}
	s := strings.Join(words, " ")
	if len(s) > 0 {
		s = strings.ToUpper(s[:1]) + s[1:]
	}
	return s + "."
}
