package premiumerrors

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Entry overrides the defaults of a single code. Zero fields keep the
// built-in default.
type Entry struct {
	Message   string `yaml:"message"`
	Status    int    `yaml:"status"`
	Retryable *bool  `yaml:"retryable"`
}

// Catalog holds per-code overrides, typically localized messages or
// service-specific HTTP statuses. A nil *Catalog applies no overrides.
type Catalog struct {
	entries map[Code]Entry
}

type catalogFile struct {
	Codes map[string]Entry `yaml:"codes"`
}

// LoadCatalog parses a YAML catalog of the form:
//
//	codes:
//	  USER_CANCELED:
//	    message: "Purchase was canceled"
//	    status: 400
//	  SERVICE_UNAVAILABLE:
//	    retryable: false
//
// Keys must be code names; unknown names are rejected.
func LoadCatalog(r io.Reader) (*Catalog, error) {
	var f catalogFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && err != io.EOF {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	c := &Catalog{entries: make(map[Code]Entry, len(f.Codes))}
	for name, entry := range f.Codes {
		code, err := Parse(name)
		if err != nil {
			return nil, fmt.Errorf("parse catalog: %w", err)
		}
		if entry.Status != 0 && (entry.Status < 100 || entry.Status > 599) {
			return nil, fmt.Errorf("parse catalog: %s: invalid status %d", name, entry.Status)
		}
		c.entries[code] = entry
	}
	return c, nil
}

// LoadCatalogFile reads a YAML catalog from path.
func LoadCatalogFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return LoadCatalog(f)
}

// Lookup returns the override for code, if any.
func (c *Catalog) Lookup(code Code) (Entry, bool) {
	if c == nil {
		return Entry{}, false
	}
	e, ok := c.entries[code]
	return e, ok
}

// Len returns the number of codes with overrides.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}

// New creates an Error for code with the catalog's overrides applied.
func (c *Catalog) New(code Code) *Error {
	return c.Apply(New(code, 0, ""))
}

// Apply returns a copy of e with the override for e.Code applied.
// Messages are only replaced when e still carries the default message.
func (c *Catalog) Apply(e *Error) *Error {
	if e == nil {
		return nil
	}
	entry, ok := c.Lookup(e.Code)
	if !ok {
		return e
	}
	out := e.clone()
	if entry.Message != "" && e.Message == defaultMessage(e.Code) {
		out.Message = entry.Message
	}
	if entry.Status != 0 {
		out.Status = entry.Status
	}
	if entry.Retryable != nil {
		out.Retryable = *entry.Retryable
	}
	return out
}

// Message returns the effective default message for code.
func (c *Catalog) Message(code Code) string {
	if entry, ok := c.Lookup(code); ok && entry.Message != "" {
		return entry.Message
	}
	return defaultMessage(code)
}

// Status returns the effective default HTTP status for code.
func (c *Catalog) Status(code Code) int {
	if entry, ok := c.Lookup(code); ok && entry.Status != 0 {
		return entry.Status
	}
	return defaultStatus(code)
}

// Retryable returns the effective default retryable flag for code.
func (c *Catalog) Retryable(code Code) bool {
	if entry, ok := c.Lookup(code); ok && entry.Retryable != nil {
		return *entry.Retryable
	}
	return isRetryableDefault(code)
}
