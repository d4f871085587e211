package entity

// StatusKind discriminates ConnectionStatus.
type StatusKind string

const (
	StatusHidden          StatusKind = "hidden"
	StatusDisconnected    StatusKind = "disconnected"
	StatusWrongNetwork    StatusKind = "wrong_network"
	StatusConnected       StatusKind = "connected"
	StatusConnectionError StatusKind = "connection_error"
)

// ConnectionErrorKind refines StatusConnectionError.
type ConnectionErrorKind string

const (
	ErrorKindGeneric      ConnectionErrorKind = "generic"
	ErrorKindWrongNetwork ConnectionErrorKind = "wrong_network"
)

// ConnectionStatus is the resolved wallet status handed to the renderer.
// Account, Pending, Confirmed, HasPending and ShowIdentityIcon are only set for StatusConnected;
// ErrorKind only for StatusConnectionError.
type ConnectionStatus struct {
	Kind             StatusKind          `json:"kind"`
	Account          string              `json:"account,omitempty"`
	ErrorKind        ConnectionErrorKind `json:"errorKind,omitempty"`
	Pending          []Transaction       `json:"pending,omitempty"`
	Confirmed        []Transaction       `json:"confirmed,omitempty"`
	HasPending       bool                `json:"hasPending"`
	ShowIdentityIcon bool                `json:"showIdentityIcon"`
}

// Visible reports whether anything should be rendered.
func (s ConnectionStatus) Visible() bool {
	return s.Kind != StatusHidden
}

// StatusView is what the API and the stream publish.
type StatusView struct {
	Version         uint64           `json:"version"`
	Status          ConnectionStatus `json:"status"`
	DisplayAccount  string           `json:"displayAccount,omitempty"`
	Network         *Network         `json:"network,omitempty"`
	WalletModalOpen bool             `json:"walletModalOpen"`
}

// ChangeSource names the store that produced a change event.
type ChangeSource string

const (
	ChangeProvider     ChangeSource = "provider"
	ChangeTransactions ChangeSource = "transactions"
	ChangeModal        ChangeSource = "modal"
)

// ChangeEvent is emitted after every mutation of observed state.
type ChangeEvent struct {
	Source  ChangeSource
	Version uint64
}
