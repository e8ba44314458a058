package domain

// EntryType names the operation recorded by a LogEntry.
type EntryType string

// Entry types. EntryTypeError is reserved: rejected operations are never logged.
const (
	EntryTypeCreateAccount EntryType = "CREATE_ACCOUNT"
	EntryTypeDeposit       EntryType = "DEPOSIT"
	EntryTypeWithdrawal    EntryType = "WITHDRAWAL"
	EntryTypeTransfer      EntryType = "TRANSFER"
	EntryTypeError         EntryType = "ERROR"
)

// EntryStatus is the outcome recorded by a LogEntry.
type EntryStatus string

// Entry statuses.
const (
	EntryStatusSuccess EntryStatus = "SUCCESS"
	EntryStatusError   EntryStatus = "ERROR"
)

// LogEntry is an immutable record of one completed ledger operation.
type LogEntry struct {
	ID        int         `json:"id"` // position at insertion time
	Timestamp string      `json:"timestamp"`
	Type      EntryType   `json:"type"`
	Details   string      `json:"details"`
	Status    EntryStatus `json:"status"`
}
