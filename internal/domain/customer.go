package domain

import "github.com/shopspring/decimal"

// Customer holds the balance a checkout settles against.
type Customer struct {
	name    string
	balance decimal.Decimal
}

func NewCustomer(name string, balance decimal.Decimal) *Customer {
	return &Customer{name: name, balance: balance}
}

func (c *Customer) Name() string {
	return c.name
}

func (c *Customer) Balance() decimal.Decimal {
	return c.balance
}

// Pay debits the balance. Solvency is the caller's responsibility; checkout
// verifies the balance covers the total before settling.
func (c *Customer) Pay(amount decimal.Decimal) {
	c.balance = c.balance.Sub(amount)
}
