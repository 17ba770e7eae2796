package extdata

// ScopeType selects the addressing axis for a document collection:
// organization-wide (Default) or per-user (User).
type ScopeType string

const (
	// ScopeDefault addresses the organization-wide collection.
	ScopeDefault ScopeType = "Default"
	// ScopeUser addresses a per-user collection.
	ScopeUser ScopeType = "User"
)

// Sentinel scope values defined by the extension data REST contract.
const (
	// ScopeValueCurrent denotes the current collection on the Default axis.
	ScopeValueCurrent = "Current"
	// ScopeValueMe denotes the calling user on the User axis.
	ScopeValueMe = "me"
)

// Scope is a resolved pair of path segments for the Scopes/{type}/{value}
// portion of a document address.
type Scope struct {
	Type  ScopeType
	Value string
}

// ResolveScope turns caller-supplied scope parameters into the concrete
// path segments the service expects. Any type other than [ScopeUser]
// resolves to the Default axis. An empty value falls back to the axis
// sentinel ("Current" for Default, "me" for User); a non-empty value is
// kept as-is on either axis.
func ResolveScope(scopeType ScopeType, scopeValue string) Scope {
	if scopeType == ScopeUser {
		if scopeValue == "" {
			scopeValue = ScopeValueMe
		}
		return Scope{Type: ScopeUser, Value: scopeValue}
	}
	if scopeValue == "" {
		scopeValue = ScopeValueCurrent
	}
	return Scope{Type: ScopeDefault, Value: scopeValue}
}
