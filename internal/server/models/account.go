// Package models holds the persisted account entity and the field policy
// applied to partial updates.
package models

import (
	"fmt"
	"math"
	"time"
)

// Provider tags accepted at registration.
const (
	ProviderEmail    = "email"
	ProviderPhone    = "phone"
	ProviderGoogle   = "google"
	ProviderGithub   = "github"
	ProviderApple    = "apple"
	ProviderLinkedin = "linkedin"
)

var KnownProviders = map[string]struct{}{
	ProviderEmail:    {},
	ProviderPhone:    {},
	ProviderGoogle:   {},
	ProviderGithub:   {},
	ProviderApple:    {},
	ProviderLinkedin: {},
}

// Document keys shared by every storage backend.
const (
	FieldID           = "id"
	FieldUsername     = "username"
	FieldEmail        = "email"
	FieldPhone        = "phone"
	FieldPassword     = "password"
	FieldPasswordHash = "password_hash"
	FieldProviders    = "providers"
	FieldProvider     = "provider"
	FieldIPAddress    = "ip_address"
	FieldURL          = "url"
	FieldIsVerified   = "is_verified"
	FieldAvatar       = "avatar"
	FieldFirstname    = "firstname"
	FieldLastname     = "lastname"
	FieldMetadata     = "metadata"
	FieldSessionToken = "session_token"
	FieldToken        = "token"
	FieldLastLogin    = "last_login"
	FieldCreatedAt    = "created_at"
	FieldUpdatedAt    = "updated_at"
)

// Account is the durable identity record. Empty strings stand for absent
// optional values; PasswordHash is empty for social-provider accounts.
type Account struct {
	ID           string
	Username     string
	Email        string
	Phone        string
	PasswordHash string
	Providers    []string
	IPAddress    string
	URL          string
	IsVerified   int
	Avatar       string
	Firstname    string
	Lastname     string
	Metadata     map[string]any
	SessionToken string
	LastLogin    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// SessionUpdate is what a successful sign-in persists.
type SessionUpdate struct {
	Token     string
	SourceIP  string
	LastLogin time.Time
	UpdatedAt time.Time
}

// Clone returns a deep copy so callers never share slices or maps with a store.
func (a *Account) Clone() *Account {
	if a == nil {
		return nil
	}
	c := *a
	if a.Providers != nil {
		c.Providers = append([]string(nil), a.Providers...)
	}
	if a.Metadata != nil {
		c.Metadata = cloneMap(a.Metadata)
	}
	if a.LastLogin != nil {
		t := *a.LastLogin
		c.LastLogin = &t
	}
	return &c
}

type fieldKind int

const (
	kindString fieldKind = iota
	kindInt
	kindMapping
	kindTime
)

var updatable = map[string]fieldKind{
	FieldUsername:   kindString,
	FieldEmail:      kindString,
	FieldPhone:      kindString,
	FieldIPAddress:  kindString,
	FieldURL:        kindString,
	FieldAvatar:     kindString,
	FieldFirstname:  kindString,
	FieldLastname:   kindString,
	FieldIsVerified: kindInt,
	FieldMetadata:   kindMapping,
	FieldUpdatedAt:  kindTime,
}

var immutable = map[string]struct{}{
	FieldID:           {},
	"_id":             {},
	FieldProviders:    {},
	FieldProvider:     {},
	FieldPassword:     {},
	FieldPasswordHash: {},
	FieldSessionToken: {},
	FieldCreatedAt:    {},
	FieldLastLogin:    {},
}

// FieldError names an update key that cannot be applied.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %q %s", e.Field, e.Reason)
}

// CoerceUpdate checks fields against the update policy and converts values to
// the types stores expect: strings, int, map[string]any and time.Time.
// Numbers decoded from JSON as float64 must be integral for is_verified.
// updated_at is accepted only as a time.Time stamped by the server.
func CoerceUpdate(fields map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(fields))
	for key, value := range fields {
		if _, ok := immutable[key]; ok {
			return nil, &FieldError{Field: key, Reason: "cannot be updated"}
		}
		kind, ok := updatable[key]
		if !ok {
			return nil, &FieldError{Field: key, Reason: "is not a known field"}
		}

		switch kind {
		case kindString:
			s, ok := value.(string)
			if !ok {
				return nil, &FieldError{Field: key, Reason: "must be a string"}
			}
			out[key] = s
		case kindInt:
			n, ok := toInt(value)
			if !ok {
				return nil, &FieldError{Field: key, Reason: "must be an integer"}
			}
			out[key] = n
		case kindMapping:
			m, ok := value.(map[string]any)
			if !ok {
				return nil, &FieldError{Field: key, Reason: "must be an object"}
			}
			out[key] = cloneMap(m)
		case kindTime:
			t, ok := value.(time.Time)
			if !ok {
				return nil, &FieldError{Field: key, Reason: "cannot be updated"}
			}
			out[key] = t
		}
	}
	return out, nil
}

// Apply writes coerced update fields onto the account, plus a
// session_token set by the service on rename. Other keys are ignored.
func (a *Account) Apply(fields map[string]any) {
	for key, value := range fields {
		switch key {
		case FieldUsername:
			a.Username, _ = value.(string)
		case FieldEmail:
			a.Email, _ = value.(string)
		case FieldPhone:
			a.Phone, _ = value.(string)
		case FieldIPAddress:
			a.IPAddress, _ = value.(string)
		case FieldURL:
			a.URL, _ = value.(string)
		case FieldAvatar:
			a.Avatar, _ = value.(string)
		case FieldFirstname:
			a.Firstname, _ = value.(string)
		case FieldLastname:
			a.Lastname, _ = value.(string)
		case FieldIsVerified:
			a.IsVerified, _ = value.(int)
		case FieldMetadata:
			if m, ok := value.(map[string]any); ok {
				a.Metadata = cloneMap(m)
			}
		case FieldUpdatedAt:
			if t, ok := value.(time.Time); ok {
				a.UpdatedAt = t
			}
		case FieldSessionToken:
			a.SessionToken, _ = value.(string)
		}
	}
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case float64:
		if n != math.Trunc(n) || math.IsInf(n, 0) || n > math.MaxInt32 || n < math.MinInt32 {
			return 0, false
		}
		return int(n), true
	case bool:
		if n {
			return 1, true
		}
		return 0, true
	}
	return 0, false
}

func cloneMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return cloneMap(t)
	case []any:
		s := make([]any, len(t))
		for i, item := range t {
			s[i] = cloneValue(item)
		}
		return s
	default:
		return v
	}
}
