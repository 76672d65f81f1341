package classifier

// Indicator keywords shift the income/expense score when present in a
// transaction line. Kept as plain data so they can be tested and extended
// without touching the scoring logic.

var incomeIndicators = []string{
	"received", "credited", "deposit", "salary", "wages", "refund", "cashback",
	"interest", "dividend", "commission", "bonus", "transfer in", "upi credit",
	"payment received", "money received", "funds received",
}

var expenseIndicators = []string{
	"paid", "debited", "withdrawal", "payment", "purchase", "buy", "spent",
	"charge", "fee", "tax", "fine", "transfer out", "upi debit",
	"payment made", "money sent", "funds sent",
}

// categoryKeywords pairs a category name with the substrings that vote for
// it. Order matters: on equal scores the earlier category wins, matching the
// behaviour the dashboards were tuned against.
type categoryKeywords struct {
	Name     string
	Keywords []string
}

var expenseCategories = []categoryKeywords{
	{"food", []string{"restaurant", "cafe", "food", "meal", "dining", "swiggy", "zomato", "dominos", "mcdonalds", "kfc", "starbucks", "coffee", "tea", "lunch", "dinner", "breakfast", "grocery", "vegetables", "fruits", "supermarket"}},
	{"transport", []string{"fuel", "petrol", "diesel", "car", "bike", "ola", "uber", "taxi", "bus", "train", "flight", "airline", "airport", "railway", "metro", "parking", "toll", "auto", "cab"}},
	{"housing", []string{"rent", "emi", "mortgage", "house", "home", "electricity", "water", "gas", "internet", "wifi", "broadband", "maintenance", "repair", "furniture", "appliance"}},
	{"healthcare", []string{"hospital", "doctor", "medicine", "pharmacy", "clinic", "dentist", "optician", "insurance", "medical", "health", "fitness", "gym", "yoga"}},
	{"education", []string{"school", "college", "university", "tuition", "books", "stationery", "course", "training", "certification", "exam", "fees"}},
	{"shopping", []string{"amazon", "flipkart", "myntra", "ajio", "clothing", "fashion", "electronics", "mobile", "laptop", "shopping", "purchase", "buy", "retail", "store", "mall", "brand"}},
	{"entertainment", []string{"movie", "cinema", "netflix", "amazon prime", "disney", "spotify", "music", "concert", "theatre", "game", "playstation", "xbox", "streaming", "subscription"}},
	{"travel", []string{"hotel", "resort", "vacation", "holiday", "tour", "trip", "booking", "oyo", "makemytrip", "goibibo", "airbnb", "ola", "uber", "ola money"}},
	{"personal_care", []string{"salon", "spa", "beauty", "cosmetics", "haircut", "massage", "skincare", "makeup", "perfume", "fragrance"}},
	{"utilities", []string{"phone", "mobile", "recharge", "bill", "dth", "cable", "subscription", "membership", "fee"}},
	{"other", nil},
}

var incomeCategories = []categoryKeywords{
	{"salary", []string{"salary", "wages", "payroll", "compensation", "income", "earnings", "take home", "net pay"}},
	{"freelance", []string{"freelance", "consulting", "contract", "service fee", "professional services"}},
	{"investment", []string{"dividend", "interest", "capital gains", "roi", "return on investment", "mutual fund", "fixed deposit", "fd", "sip"}},
	{"business", []string{"revenue", "sales", "profit", "business income", "commission", "royalty"}},
	{"gift", []string{"gift", "present", "donation", "contribution", "award", "prize", "scholarship"}},
	{"refund", []string{"refund", "reimbursement", "rebate", "cashback", "return"}},
	{"other_income", []string{"other", "miscellaneous"}},
}

// Categories returns the category taxonomy for a transaction type. Exposed
// so downstream consumers (budget views, search filters) can enumerate it.
func Categories(t Type) []string {
	tables := expenseCategories
	if t == TypeIncome {
		tables = incomeCategories
	}
	names := make([]string, 0, len(tables))
	for _, c := range tables {
		names = append(names, c.Name)
	}
	return names
}
