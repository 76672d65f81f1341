package money

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
)

// TestDataGenerator produces realistic Indian bank statement data for
// tests using gofakeit.
type TestDataGenerator struct {
	faker *gofakeit.Faker
}

// NewTestDataGenerator creates a generator with a random seed.
func NewTestDataGenerator() *TestDataGenerator {
	return &TestDataGenerator{
		faker: gofakeit.New(0),
	}
}

// NewTestDataGeneratorWithSeed creates a generator with a fixed seed for
// reproducibility.
func NewTestDataGeneratorWithSeed(seed int64) *TestDataGenerator {
	return &TestDataGenerator{
		faker: gofakeit.New(seed),
	}
}

// TestTransaction is one generated statement entry.
type TestTransaction struct {
	ID          uuid.UUID
	Date        time.Time
	Description string
	Amount      *Money
	Category    string
	Merchant    string
	IsExpense   bool
}

var merchants = []string{
	"SWIGGY", "ZOMATO", "UBER", "OLA", "IRCTC",
	"AMAZON", "FLIPKART", "MYNTRA", "DMART", "BIGBASKET",
	"NETFLIX", "SPOTIFY", "HOTSTAR", "AIRTEL", "JIO",
	"PAYTM", "PHONEPE", "APOLLO PHARMACY", "RELIANCE DIGITAL",
}

var rails = []string{"UPI-", "POS ", "NEFT-", "IMPS-", "BIL/"}

var cities = []string{
	"BANGALORE", "MUMBAI", "DELHI", "CHENNAI",
	"HYDERABAD", "PUNE", "KOLKATA", "GURGAON",
}

var expenseCategories = []string{
	"food", "transport", "shopping", "entertainment",
	"utilities", "health", "groceries", "travel",
}

var incomeCategories = []string{
	"salary", "refund", "interest", "other_income",
}

// Transaction generates a single random expense-or-income entry.
func (g *TestDataGenerator) Transaction(currency string) TestTransaction {
	if g.faker.Bool() {
		return g.ExpenseTransaction(currency)
	}
	return g.IncomeTransaction(currency)
}

// Transactions generates count random entries.
func (g *TestDataGenerator) Transactions(currency string, count int) []TestTransaction {
	txs := make([]TestTransaction, count)
	for i := 0; i < count; i++ {
		txs[i] = g.Transaction(currency)
	}
	return txs
}

// ExpenseTransaction generates a purchase in the ₹10 to ₹5,000 range with a
// statement-style narration ("UPI-SWIGGY BANGALORE 4512345678").
func (g *TestDataGenerator) ExpenseTransaction(currency string) TestTransaction {
	merchant := merchants[g.faker.Number(0, len(merchants)-1)]
	return TestTransaction{
		ID:          uuid.New(),
		Date:        g.faker.DateRange(time.Now().AddDate(-1, 0, 0), time.Now()),
		Description: g.Narration(merchant),
		Amount:      g.RandomAmount(currency, 1000, 500000).Negate(),
		Category:    expenseCategories[g.faker.Number(0, len(expenseCategories)-1)],
		Merchant:    merchant,
		IsExpense:   true,
	}
}

// IncomeTransaction generates a salary-sized credit (₹10,000 to ₹200,000).
func (g *TestDataGenerator) IncomeTransaction(currency string) TestTransaction {
	company := g.faker.Company()
	return TestTransaction{
		ID:          uuid.New(),
		Date:        g.faker.DateRange(time.Now().AddDate(-1, 0, 0), time.Now()),
		Description: fmt.Sprintf("NEFT SALARY %s", company),
		Amount:      g.RandomAmount(currency, 1000000, 20000000),
		Category:    incomeCategories[g.faker.Number(0, len(incomeCategories)-1)],
		Merchant:    company,
		IsExpense:   false,
	}
}

// Narration builds a bank-style narration line for the merchant: payment
// rail prefix, city, and a trailing reference number.
func (g *TestDataGenerator) Narration(merchant string) string {
	rail := rails[g.faker.Number(0, len(rails)-1)]
	city := cities[g.faker.Number(0, len(cities)-1)]
	return fmt.Sprintf("%s%s %s %s", rail, merchant, city, g.faker.DigitN(10))
}

// RandomAmount generates a Money value within a minor-unit range.
func (g *TestDataGenerator) RandomAmount(currency string, minMinor, maxMinor int64) *Money {
	if minMinor > maxMinor {
		minMinor, maxMinor = maxMinor, minMinor
	}
	minor := g.faker.Int64() % (maxMinor - minMinor + 1)
	if minor < 0 {
		minor = -minor
	}
	return New(minMinor+minor, currency)
}

// StatementLines renders count generated expenses as text lines the way a
// scanned statement would carry them ("15/01/2024 UPI-SWIGGY ... ₹450.00").
func (g *TestDataGenerator) StatementLines(count int) []string {
	lines := make([]string, count)
	for i := 0; i < count; i++ {
		tx := g.ExpenseTransaction(INR)
		lines[i] = fmt.Sprintf("%s %s ₹%s",
			tx.Date.Format("02/01/2006"), tx.Description, tx.Amount.Abs().String())
	}
	return lines
}

// MonthlyStatementSet generates a realistic month: one or two salary
// credits plus daily expenses.
func (g *TestDataGenerator) MonthlyStatementSet(currency string) []TestTransaction {
	txs := make([]TestTransaction, 0, 40)

	paychecks := g.faker.Number(1, 2)
	for i := 0; i < paychecks; i++ {
		txs = append(txs, g.IncomeTransaction(currency))
	}

	expenses := g.faker.Number(20, 35)
	for i := 0; i < expenses; i++ {
		txs = append(txs, g.ExpenseTransaction(currency))
	}

	return txs
}
