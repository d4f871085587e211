package entity

// ContextName identifies an independently tracked wallet connection.
type ContextName string

const (
	// ContextActive is whichever connector is currently selected.
	ContextActive ContextName = "active"
	// ContextInjected is the browser-extension wallet.
	ContextInjected ContextName = "injected"
	// ContextBackup is the read-only fallback connection.
	ContextBackup ContextName = "backup"
)

// ContextNames lists every known context in a stable order.
var ContextNames = []ContextName{ContextActive, ContextInjected, ContextBackup}

// ParseContextName validates a raw context name.
func ParseContextName(raw string) (ContextName, bool) {
	for _, name := range ContextNames {
		if string(name) == raw {
			return name, true
		}
	}
	return "", false
}

// ConnectorKind describes the connection method behind a context.
type ConnectorKind string

const (
	ConnectorInjected      ConnectorKind = "injected"
	ConnectorWalletConnect ConnectorKind = "walletconnect"
	ConnectorNetwork       ConnectorKind = "network"
)

// FaultKind is set where a connection fault originates so consumers never inspect error types.
type FaultKind string

const (
	FaultGeneric            FaultKind = "generic"
	FaultUnsupportedChainID FaultKind = "unsupported_chain_id"
)

// ConnectionFault is a connection-level failure reported by the provider layer.
type ConnectionFault struct {
	Kind    FaultKind `json:"kind"`
	Message string    `json:"message,omitempty"`
}

func (f *ConnectionFault) Error() string {
	if f.Message == "" {
		return string(f.Kind)
	}
	return string(f.Kind) + ": " + f.Message
}

// NetworkState is a snapshot of one connection context.
type NetworkState struct {
	ChainID   *int64           `json:"chainId,omitempty"`
	Account   *string          `json:"account,omitempty"`
	Active    bool             `json:"active"`
	Error     *ConnectionFault `json:"error,omitempty"`
	Connector ConnectorKind    `json:"connector,omitempty"`
}

// ChainIDValue reports the chain id. Zero counts as not reported.
func (s NetworkState) ChainIDValue() (int64, bool) {
	if s.ChainID == nil || *s.ChainID == 0 {
		return 0, false
	}
	return *s.ChainID, true
}

// AccountValue reports the connected account. An empty address counts as no account.
func (s NetworkState) AccountValue() (string, bool) {
	if s.Account == nil || *s.Account == "" {
		return "", false
	}
	return *s.Account, true
}

// Clone returns a copy that shares no pointers with s.
func (s NetworkState) Clone() NetworkState {
	out := s
	if s.ChainID != nil {
		id := *s.ChainID
		out.ChainID = &id
	}
	if s.Account != nil {
		account := *s.Account
		out.Account = &account
	}
	if s.Error != nil {
		fault := *s.Error
		out.Error = &fault
	}
	return out
}

// ProviderSnapshot is a consistent read of all connection contexts.
type ProviderSnapshot struct {
	Active   NetworkState
	Injected NetworkState
	Backup   NetworkState
	Version  uint64
}
