package domain

import (
	"errors"
	"strings"
)

// ErrEmptyCustomerField indicates that a customer field is empty or whitespace.
var ErrEmptyCustomerField = errors.New("customer fields must not be empty")

// Customer holds the identity record of the card owner.
//
// The record is validated once at construction and never mutated afterwards.
type Customer struct {
	name    string
	email   string
	contact string
}

// NewCustomer validates the given fields and returns the customer record.
func NewCustomer(name, email, contact string) (*Customer, error) {
	if strings.TrimSpace(name) == "" ||
		strings.TrimSpace(email) == "" ||
		strings.TrimSpace(contact) == "" {
		return nil, ErrEmptyCustomerField
	}

	return &Customer{name: name, email: email, contact: contact}, nil
}

// Name returns the customer name.
func (c *Customer) Name() string { return c.name }

// Email returns the customer email.
func (c *Customer) Email() string { return c.email }

// Contact returns the customer contact number.
func (c *Customer) Contact() string { return c.contact }
