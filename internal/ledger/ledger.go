// Package ledger manages accounts, money movements and the operation log.
//
// Every operation validates its input before touching state: the first failing
// check returns an error and leaves accounts and log exactly as they were.
package ledger

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/mini-bank/internal/domain"
	"github.com/go-petr/mini-bank/pkg/configpkg"
	"github.com/go-petr/mini-bank/pkg/moneypkg"
)

// Ledger owns all accounts and the operation log.
type Ledger struct {
	mu sync.Mutex

	prefix   string
	sequence int64

	accounts map[string]*domain.Account
	order    []string // account numbers in creation order
	log      []domain.LogEntry

	now func() time.Time
}

// New returns an empty ledger numbering accounts after config.AccountSequenceBase.
func New(config configpkg.Config) *Ledger {
	prefix := config.AccountPrefix
	if prefix == "" {
		prefix = configpkg.DefaultAccountPrefix
	}

	return &Ledger{
		prefix:   prefix,
		sequence: config.AccountSequenceBase,
		accounts: make(map[string]*domain.Account),
		now:      time.Now,
	}
}

func (l *Ledger) nextAccountNo() string {
	l.sequence++
	return l.prefix + "-" + strconv.FormatInt(l.sequence, 10)
}

// record prepends a successful entry to the log.
func (l *Ledger) record(t domain.EntryType, details string) {
	entry := domain.LogEntry{
		ID:        len(l.log) + 1,
		Timestamp: l.now().Format(domain.DisplayTimeLayout),
		Type:      t,
		Details:   details,
		Status:    domain.EntryStatusSuccess,
	}

	l.log = append([]domain.LogEntry{entry}, l.log...)
}

func (l *Ledger) find(accountNo string) (*domain.Account, error) {
	acc, ok := l.accounts[strings.TrimSpace(accountNo)]
	if !ok {
		return nil, &domain.NotFoundError{AccountNo: accountNo}
	}

	return acc, nil
}

func validAmount(op domain.EntryType, amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return domain.InvalidAmount(op)
	}

	return nil
}

func kycLabel(verified bool) string {
	if verified {
		return "Verified"
	}

	return "Not Verified"
}

// CreateAccount opens an account for holderName with initialBalance.
func (l *Ledger) CreateAccount(ctx context.Context, holderName string, initialBalance decimal.Decimal, isKYCVerified bool) (domain.Account, error) {
	log := zerolog.Ctx(ctx)

	holderName = strings.TrimSpace(holderName)
	if holderName == "" {
		err := &domain.ValidationError{Field: "holder_name", Message: domain.MsgHolderNameEmpty}
		log.Info().Err(err).Send()

		return domain.Account{}, err
	}

	if initialBalance.IsNegative() {
		err := domain.InvalidAmount(domain.EntryTypeCreateAccount)
		log.Info().Err(err).Send()

		return domain.Account{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	acc := &domain.Account{
		AccountNo:     l.nextAccountNo(),
		HolderName:    holderName,
		Balance:       initialBalance,
		IsKYCVerified: isKYCVerified,
		CreatedAt:     l.now(),
	}
	l.accounts[acc.AccountNo] = acc
	l.order = append(l.order, acc.AccountNo)

	l.record(domain.EntryTypeCreateAccount, fmt.Sprintf(
		"Account %s created for %q. Balance: %s. KYC: %s.",
		acc.AccountNo, acc.HolderName, moneypkg.Rupees(acc.Balance), kycLabel(acc.IsKYCVerified)))

	log.Debug().Str("account_no", acc.AccountNo).Msg("account created")

	return *acc, nil
}

// Deposit credits amount to the account.
func (l *Ledger) Deposit(ctx context.Context, accountNo string, amount decimal.Decimal) (domain.Account, error) {
	log := zerolog.Ctx(ctx)

	if err := validAmount(domain.EntryTypeDeposit, amount); err != nil {
		log.Info().Err(err).Send()
		return domain.Account{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	acc, err := l.find(accountNo)
	if err != nil {
		log.Info().Err(err).Send()
		return domain.Account{}, err
	}

	acc.Balance = acc.Balance.Add(amount)

	l.record(domain.EntryTypeDeposit, fmt.Sprintf(
		"%s deposited to %s (%s). New balance: %s.",
		moneypkg.Rupees(amount), acc.AccountNo, acc.HolderName, moneypkg.Rupees(acc.Balance)))

	log.Debug().Str("account_no", acc.AccountNo).Msg("deposit recorded")

	return *acc, nil
}

// Withdraw debits amount from the account.
func (l *Ledger) Withdraw(ctx context.Context, accountNo string, amount decimal.Decimal) (domain.Account, error) {
	log := zerolog.Ctx(ctx)

	if err := validAmount(domain.EntryTypeWithdrawal, amount); err != nil {
		log.Info().Err(err).Send()
		return domain.Account{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	acc, err := l.find(accountNo)
	if err != nil {
		log.Info().Err(err).Send()
		return domain.Account{}, err
	}

	if amount.GreaterThan(acc.Balance) {
		err := &domain.InsufficientFundsError{
			AccountNo: acc.AccountNo,
			Available: acc.Balance,
			Requested: amount,
		}
		log.Info().Err(err).Send()

		return domain.Account{}, err
	}

	acc.Balance = acc.Balance.Sub(amount)

	l.record(domain.EntryTypeWithdrawal, fmt.Sprintf(
		"%s withdrawn from %s (%s). New balance: %s.",
		moneypkg.Rupees(amount), acc.AccountNo, acc.HolderName, moneypkg.Rupees(acc.Balance)))

	log.Debug().Str("account_no", acc.AccountNo).Msg("withdrawal recorded")

	return *acc, nil
}

// Transfer moves amount from the sender to the receiver.
//
// Only KYC verified accounts may send money. The KYC check runs before the
// balance check.
func (l *Ledger) Transfer(ctx context.Context, senderNo, receiverNo string, amount decimal.Decimal) (domain.TransferResult, error) {
	log := zerolog.Ctx(ctx)

	if err := validAmount(domain.EntryTypeTransfer, amount); err != nil {
		log.Info().Err(err).Send()
		return domain.TransferResult{}, err
	}

	if strings.TrimSpace(senderNo) == strings.TrimSpace(receiverNo) {
		err := &domain.ValidationError{Field: "receiver_account_no", Message: domain.MsgSameAccount}
		log.Info().Err(err).Send()

		return domain.TransferResult{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	sender, err := l.find(senderNo)
	if err != nil {
		log.Info().Err(err).Send()
		return domain.TransferResult{}, err
	}

	receiver, err := l.find(receiverNo)
	if err != nil {
		log.Info().Err(err).Send()
		return domain.TransferResult{}, err
	}

	if !sender.IsKYCVerified {
		err := &domain.ComplianceError{AccountNo: sender.AccountNo, HolderName: sender.HolderName}
		log.Info().Err(err).Send()

		return domain.TransferResult{}, err
	}

	if amount.GreaterThan(sender.Balance) {
		err := &domain.InsufficientFundsError{
			AccountNo: sender.AccountNo,
			Available: sender.Balance,
			Requested: amount,
			Transfer:  true,
		}
		log.Info().Err(err).Send()

		return domain.TransferResult{}, err
	}

	sender.Balance = sender.Balance.Sub(amount)
	receiver.Balance = receiver.Balance.Add(amount)

	l.record(domain.EntryTypeTransfer, fmt.Sprintf(
		"%s transferred from %s (%s) to %s (%s). Sender balance: %s. Receiver balance: %s.",
		moneypkg.Rupees(amount),
		sender.AccountNo, sender.HolderName,
		receiver.AccountNo, receiver.HolderName,
		moneypkg.Rupees(sender.Balance), moneypkg.Rupees(receiver.Balance)))

	log.Debug().
		Str("sender", sender.AccountNo).
		Str("receiver", receiver.AccountNo).
		Msg("transfer recorded")

	return domain.TransferResult{Sender: *sender, Receiver: *receiver}, nil
}

// GetAccount returns the account with the given number.
func (l *Ledger) GetAccount(ctx context.Context, accountNo string) (domain.Account, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	acc, err := l.find(accountNo)
	if err != nil {
		zerolog.Ctx(ctx).Info().Err(err).Send()
		return domain.Account{}, err
	}

	return *acc, nil
}

// ListAccounts returns all accounts in creation order.
func (l *Ledger) ListAccounts(ctx context.Context) []domain.Account {
	l.mu.Lock()
	defer l.mu.Unlock()

	accounts := make([]domain.Account, 0, len(l.order))
	for _, no := range l.order {
		accounts = append(accounts, *l.accounts[no])
	}

	return accounts
}

// Log returns the operation log, newest entry first.
func (l *Ledger) Log(ctx context.Context) []domain.LogEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	entries := make([]domain.LogEntry, len(l.log))
	copy(entries, l.log)

	return entries
}

// ClearLog empties the operation log. Accounts and numbering are untouched.
func (l *Ledger) ClearLog(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()

	zerolog.Ctx(ctx).Debug().Int("entries", len(l.log)).Msg("log cleared")

	l.log = nil
}

// Summary returns totals over all accounts.
func (l *Ledger) Summary(ctx context.Context) domain.Summary {
	l.mu.Lock()
	defer l.mu.Unlock()

	s := domain.Summary{
		TotalAccounts: len(l.order),
		TotalBalance:  decimal.Zero,
	}

	for _, no := range l.order {
		acc := l.accounts[no]

		s.TotalBalance = s.TotalBalance.Add(acc.Balance)
		if acc.IsKYCVerified {
			s.KYCVerifiedAccounts++
		}
	}

	return s
}
