package handler

import (
	"github.com/arthur-debert/resolvr/pkg/desktop"
)

// NamedHandler identifies a registered desktop application by name. The
// name is an opaque, byte-exact key into the entry registry; no internal
// structure is assumed. NamedHandler is a comparable value type and
// serializes as the bare name.
type NamedHandler struct {
	name string
}

// NewNamed builds a handler for name, validating that the registry can
// resolve it. The lookup error propagates when it cannot.
func NewNamed(name string) (NamedHandler, error) {
	h := NamedHandler{name: name}
	if _, err := h.GetEntry(); err != nil {
		return NamedHandler{}, err
	}
	return h, nil
}

// AssumeValid builds a handler for name without consulting the registry.
// It never fails; callers accept that GetEntry may fail later if the
// name turns out not to exist. Meant for trusted or pre-validated names,
// such as candidates the registry itself produced.
func AssumeValid(name string) NamedHandler {
	return NamedHandler{name: name}
}

// Name returns the handler's registry key.
func (h NamedHandler) Name() string { return h.name }

// String returns the bare name.
func (h NamedHandler) String() string { return h.name }

// GetEntry resolves the name through the entry registry. It fails with a
// NOT_FOUND error when the registry has no such name; registry backend
// failures propagate as lookup errors.
func (h NamedHandler) GetEntry() (*desktop.Entry, error) {
	return Entries.Lookup(h.name)
}

// MarshalText serializes the handler as its bare name.
func (h NamedHandler) MarshalText() ([]byte, error) {
	return []byte(h.name), nil
}

// UnmarshalText restores a handler from its bare name. Deserialized names
// are not validated against the registry, matching AssumeValid.
func (h *NamedHandler) UnmarshalText(text []byte) error {
	h.name = string(text)
	return nil
}
