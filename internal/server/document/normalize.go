package document

import (
	"fmt"
	"math"
	"time"

	"github.com/dmitrijs2005/identcore/internal/server/models"
	"github.com/dmitrijs2005/identcore/internal/timex"
	"go.mongodb.org/mongo-driver/v2/bson"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// NormalizeTime extends timex.NormalizeTime with the bson date types met
// in stored documents.
func NormalizeTime(v any) (time.Time, bool) {
	switch x := v.(type) {
	case bson.DateTime:
		return timex.NormalizeTime(x.Time())
	case bson.Timestamp:
		return timex.NormalizeTime(time.Unix(int64(x.T), 0))
	}
	return timex.NormalizeTime(v)
}

// NormalizeValue walks a stored or decoded wire value and replaces
// store-specific types: object ids become hex strings, dates become UTC
// time.Time, and bson documents and protobuf structs become plain maps and
// slices.
func NormalizeValue(v any) any {
	switch x := v.(type) {
	case *structpb.Struct:
		if x == nil {
			return nil
		}
		return normalizeMap(x.AsMap())
	case *structpb.ListValue:
		if x == nil {
			return nil
		}
		return normalizeSlice(x.AsSlice())
	case *structpb.Value:
		if x == nil {
			return nil
		}
		return NormalizeValue(x.AsInterface())
	case bson.ObjectID:
		return x.Hex()
	case bson.DateTime, bson.Timestamp, *timestamppb.Timestamp, time.Time:
		t, _ := NormalizeTime(x)
		return t
	case bson.M:
		return normalizeMap(x)
	case map[string]any:
		return normalizeMap(x)
	case bson.D:
		m := make(map[string]any, len(x))
		for _, e := range x {
			m[e.Key] = NormalizeValue(e.Value)
		}
		return m
	case bson.A:
		return normalizeSlice(x)
	case []any:
		return normalizeSlice(x)
	}
	return v
}

func normalizeMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = NormalizeValue(v)
	}
	return out
}

func normalizeSlice(s []any) []any {
	out := make([]any, len(s))
	for i, v := range s {
		out[i] = NormalizeValue(v)
	}
	return out
}

// ToAccount maps a raw stored document onto the typed account. It accepts
// the legacy "provider" and "token" keys written by older deployments.
func ToAccount(doc bson.M) (*models.Account, error) {
	m := normalizeMap(doc)
	a := &models.Account{}

	id := m["_id"]
	if id == nil {
		id = m[models.FieldID]
	}
	switch x := id.(type) {
	case string:
		a.ID = x
	case nil:
		return nil, fmt.Errorf("document has no id")
	default:
		a.ID = fmt.Sprint(x)
	}

	a.Username = str(m[models.FieldUsername])
	if a.Username == "" {
		return nil, fmt.Errorf("document %s has no username", a.ID)
	}
	a.Email = str(m[models.FieldEmail])
	a.Phone = str(m[models.FieldPhone])
	a.PasswordHash = str(m[models.FieldPasswordHash])
	if a.PasswordHash == "" {
		a.PasswordHash = str(m[models.FieldPassword])
	}
	a.IPAddress = str(m[models.FieldIPAddress])
	a.URL = str(m[models.FieldURL])
	a.Avatar = str(m[models.FieldAvatar])
	a.Firstname = str(m[models.FieldFirstname])
	a.Lastname = str(m[models.FieldLastname])

	a.SessionToken = str(m[models.FieldSessionToken])
	if a.SessionToken == "" {
		a.SessionToken = str(m[models.FieldToken])
	}

	providers := m[models.FieldProviders]
	if providers == nil {
		providers = m[models.FieldProvider]
	}
	a.Providers = stringList(providers)

	a.IsVerified = integer(m[models.FieldIsVerified])

	if md, ok := m[models.FieldMetadata].(map[string]any); ok {
		a.Metadata = md
	}

	if t, ok := NormalizeTime(m[models.FieldCreatedAt]); ok {
		a.CreatedAt = t
	}
	if t, ok := NormalizeTime(m[models.FieldUpdatedAt]); ok {
		a.UpdatedAt = t
	}
	if t, ok := NormalizeTime(m[models.FieldLastLogin]); ok {
		a.LastLogin = &t
	}

	return a, nil
}

// Canonical returns the caller-facing copy of a: the password hash is
// removed and timestamps are UTC with millisecond precision.
func Canonical(a *models.Account) *models.Account {
	if a == nil {
		return nil
	}
	c := a.Clone()
	c.PasswordHash = ""
	c.CreatedAt = canonicalTime(c.CreatedAt)
	c.UpdatedAt = canonicalTime(c.UpdatedAt)
	if c.LastLogin != nil {
		t := canonicalTime(*c.LastLogin)
		c.LastLogin = &t
	}
	if c.Metadata != nil {
		c.Metadata = normalizeMap(c.Metadata)
	}
	return c
}

func canonicalTime(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC().Truncate(time.Millisecond)
}

func str(v any) string {
	s, _ := v.(string)
	return s
}

func stringList(v any) []string {
	switch x := v.(type) {
	case string:
		if x == "" {
			return nil
		}
		return []string{x}
	case []string:
		return append([]string(nil), x...)
	case []any:
		out := make([]string, 0, len(x))
		for _, item := range x {
			if s, ok := item.(string); ok && s != "" {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

func integer(v any) int {
	switch x := v.(type) {
	case int:
		return x
	case int32:
		return int(x)
	case int64:
		return int(x)
	case float64:
		if x == math.Trunc(x) {
			return int(x)
		}
	case bool:
		if x {
			return 1
		}
	}
	return 0
}
