// Package domain provides defenitions of all ledger entities and errors.
package domain

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/go-petr/mini-bank/pkg/moneypkg"
	"github.com/shopspring/decimal"
)

// DisplayTimeLayout is the human readable layout used for timestamps shown to users.
const DisplayTimeLayout = "02/01/2006, 15:04:05"

// Account holds the balance and identity of one bank account.
//
// Only the ledger mutates Balance; everything else is fixed at creation.
type Account struct {
	AccountNo     string          `json:"account_no"`
	HolderName    string          `json:"holder_name"`
	Balance       decimal.Decimal `json:"balance"`
	IsKYCVerified bool            `json:"is_kyc_verified"`
	CreatedAt     time.Time       `json:"created_at"`
}

// AccountView is the display-safe snapshot of an Account.
type AccountView struct {
	AccountNo      string `json:"account_no"`
	HolderName     string `json:"holder_name"`
	Initials       string `json:"initials"`
	Balance        string `json:"balance"`
	BalanceDisplay string `json:"balance_display"`
	IsKYCVerified  bool   `json:"is_kyc_verified"`
	CreatedAt      string `json:"created_at"`
}

// View returns the snapshot of the account used for rendering.
func (a Account) View() AccountView {
	return AccountView{
		AccountNo:      a.AccountNo,
		HolderName:     a.HolderName,
		Initials:       Initials(a.HolderName),
		Balance:        a.Balance.String(),
		BalanceDisplay: moneypkg.FormatINR(a.Balance),
		IsKYCVerified:  a.IsKYCVerified,
		CreatedAt:      a.CreatedAt.Format(DisplayTimeLayout),
	}
}

// Views converts accounts to their snapshots keeping the order.
func Views(accounts []Account) []AccountView {
	views := make([]AccountView, 0, len(accounts))
	for _, a := range accounts {
		views = append(views, a.View())
	}

	return views
}

// Initials returns the upper-cased first letters of the first two words of name.
func Initials(name string) string {
	var sb strings.Builder

	for i, w := range strings.Fields(name) {
		if i == 2 {
			break
		}

		r, _ := utf8.DecodeRuneInString(w)
		sb.WriteRune(unicode.ToUpper(r))
	}

	return sb.String()
}

// Summary holds totals over all accounts of the ledger.
type Summary struct {
	TotalAccounts       int             `json:"total_accounts"`
	KYCVerifiedAccounts int             `json:"kyc_verified_accounts"`
	TotalBalance        decimal.Decimal `json:"total_balance"`
}

// SummaryView is the display-safe snapshot of a Summary.
type SummaryView struct {
	TotalAccounts       int    `json:"total_accounts"`
	KYCVerifiedAccounts int    `json:"kyc_verified_accounts"`
	TotalBalance        string `json:"total_balance"`
	TotalBalanceDisplay string `json:"total_balance_display"`
}

// View returns the snapshot of the summary used for rendering.
func (s Summary) View() SummaryView {
	return SummaryView{
		TotalAccounts:       s.TotalAccounts,
		KYCVerifiedAccounts: s.KYCVerifiedAccounts,
		TotalBalance:        s.TotalBalance.String(),
		TotalBalanceDisplay: moneypkg.FormatINR(s.TotalBalance),
	}
}
