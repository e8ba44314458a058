package domain

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
)

func TestAccountView(t *testing.T) {
	acc := Account{
		AccountNo:     "ACC-1001",
		HolderName:    "alice johnson",
		Balance:       decimal.RequireFromString("123456.5"),
		IsKYCVerified: true,
		CreatedAt:     time.Date(2024, time.January, 9, 8, 5, 3, 0, time.UTC),
	}

	want := AccountView{
		AccountNo:      "ACC-1001",
		HolderName:     "alice johnson",
		Initials:       "AJ",
		Balance:        "123456.5",
		BalanceDisplay: "₹1,23,456.50",
		IsKYCVerified:  true,
		CreatedAt:      "09/01/2024, 08:05:03",
	}

	if diff := cmp.Diff(want, acc.View()); diff != "" {
		t.Errorf("View() mismatch (-want +got):\n%s", diff)
	}
}

func TestInitials(t *testing.T) {
	testCases := []struct {
		name string
		want string
	}{
		{name: "Alice", want: "A"},
		{name: "Bob Smith", want: "BS"},
		{name: "carol ann davis", want: "CA"},
		{name: "  spaced   out  ", want: "SO"},
		{name: "", want: ""},
		{name: "élodie durand", want: "ÉD"},
	}

	for _, tc := range testCases {
		if got := Initials(tc.name); got != tc.want {
			t.Errorf("Initials(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestSummaryView(t *testing.T) {
	s := Summary{TotalAccounts: 3, KYCVerifiedAccounts: 2, TotalBalance: decimal.RequireFromString("95000")}

	want := SummaryView{
		TotalAccounts:       3,
		KYCVerifiedAccounts: 2,
		TotalBalance:        "95000",
		TotalBalanceDisplay: "₹95,000.00",
	}

	if diff := cmp.Diff(want, s.View()); diff != "" {
		t.Errorf("View() mismatch (-want +got):\n%s", diff)
	}
}
