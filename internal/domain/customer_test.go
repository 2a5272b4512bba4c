package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	testCases := []struct {
		name     string
		custName string
		email    string
		contact  string
		wantErr  error
	}{
		{
			name:     "OK",
			custName: "petr",
			email:    "petr@email.com",
			contact:  "+10000000001",
		},
		{
			name:     "EmptyName",
			custName: "",
			email:    "petr@email.com",
			contact:  "+10000000001",
			wantErr:  ErrEmptyCustomerField,
		},
		{
			name:     "WhitespaceEmail",
			custName: "petr",
			email:    "   ",
			contact:  "+10000000001",
			wantErr:  ErrEmptyCustomerField,
		},
		{
			name:     "EmptyContact",
			custName: "petr",
			email:    "petr@email.com",
			contact:  "",
			wantErr:  ErrEmptyCustomerField,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			customer, err := NewCustomer(tc.custName, tc.email, tc.contact)

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				require.Nil(t, customer)

				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.custName, customer.Name())
			require.Equal(t, tc.email, customer.Email())
			require.Equal(t, tc.contact, customer.Contact())
		})
	}
}
