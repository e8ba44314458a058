package domain

// TransferResult is the result of the transfer between two accounts.
type TransferResult struct {
	Sender   Account `json:"sender"`
	Receiver Account `json:"receiver"`
}

// TransferView is the display-safe snapshot of a TransferResult.
type TransferView struct {
	Sender   AccountView `json:"sender"`
	Receiver AccountView `json:"receiver"`
}

// View returns the snapshot of both transfer accounts.
func (r TransferResult) View() TransferView {
	return TransferView{
		Sender:   r.Sender.View(),
		Receiver: r.Receiver.View(),
	}
}
