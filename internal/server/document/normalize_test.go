package document

import (
	"testing"
	"time"

	"github.com/dmitrijs2005/identcore/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func TestNormalizeTime(t *testing.T) {
	want := time.Date(2025, 5, 6, 7, 8, 9, 123000000, time.UTC)
	local := want.In(time.FixedZone("X", 3*3600)).Add(456 * time.Microsecond)

	tests := []struct {
		name string
		in   any
	}{
		{"time with sub-ms", local},
		{"bson date", bson.NewDateTimeFromTime(want)},
		{"timestamppb", timestamppb.New(want)},
		{"rfc3339 string", "2025-05-06T10:08:09.123+03:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NormalizeTime(tt.in)
			require.True(t, ok)
			assert.True(t, want.Equal(got), "got %s", got)
			assert.Equal(t, time.UTC, got.Location())
		})
	}

	for _, bad := range []any{nil, "yesterday", 42, time.Time{}, (*timestamppb.Timestamp)(nil)} {
		_, ok := NormalizeTime(bad)
		assert.False(t, ok, "%v", bad)
	}

	got, ok := NormalizeTime(bson.Timestamp{T: uint32(want.Unix())})
	require.True(t, ok)
	assert.True(t, want.Truncate(time.Second).Equal(got), "got %s", got)
}

func TestNormalizeValue(t *testing.T) {
	oid := bson.NewObjectID()
	when := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	got := NormalizeValue(bson.M{
		"id":   oid,
		"at":   bson.NewDateTimeFromTime(when),
		"doc":  bson.D{{Key: "k", Value: oid}},
		"list": bson.A{"x", bson.NewDateTimeFromTime(when)},
		"n":    int32(3),
	})

	assert.Equal(t, map[string]any{
		"id":   oid.Hex(),
		"at":   when,
		"doc":  map[string]any{"k": oid.Hex()},
		"list": []any{"x", when},
		"n":    int32(3),
	}, got)
}

func TestNormalizeValue_Struct(t *testing.T) {
	fields, err := structpb.NewStruct(map[string]any{
		"firstname":   "Jane",
		"is_verified": 1,
		"metadata":    map[string]any{"tags": []any{"a", nil}},
		"avatar":      nil,
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"firstname":   "Jane",
		"is_verified": float64(1),
		"metadata":    map[string]any{"tags": []any{"a", nil}},
		"avatar":      nil,
	}, NormalizeValue(fields))

	assert.Equal(t, "x", NormalizeValue(structpb.NewStringValue("x")))
	assert.Equal(t, []any{true}, NormalizeValue(&structpb.ListValue{Values: []*structpb.Value{structpb.NewBoolValue(true)}}))
	assert.Nil(t, NormalizeValue((*structpb.Struct)(nil)))
}

func TestToAccount(t *testing.T) {
	oid := bson.NewObjectID()
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	a, err := ToAccount(bson.M{
		"_id":           oid,
		"username":      "alice",
		"email":         "a@b.com",
		"password_hash": "$2a$hash",
		"providers":     bson.A{"email"},
		"ip_address":    "10.0.0.1",
		"url":           "https://a.example",
		"is_verified":   int32(1),
		"metadata":      bson.D{{Key: "plan", Value: "pro"}},
		"session_token": "tok",
		"created_at":    bson.NewDateTimeFromTime(created),
		"updated_at":    bson.NewDateTimeFromTime(created.Add(time.Minute)),
	})
	require.NoError(t, err)

	assert.Equal(t, &models.Account{
		ID:           oid.Hex(),
		Username:     "alice",
		Email:        "a@b.com",
		PasswordHash: "$2a$hash",
		Providers:    []string{"email"},
		IPAddress:    "10.0.0.1",
		URL:          "https://a.example",
		IsVerified:   1,
		Metadata:     map[string]any{"plan": "pro"},
		SessionToken: "tok",
		CreatedAt:    created,
		UpdatedAt:    created.Add(time.Minute),
	}, a)
}

func TestToAccount_LegacyKeys(t *testing.T) {
	a, err := ToAccount(bson.M{
		"_id":         "abc",
		"username":    "bob",
		"provider":    bson.A{"google"},
		"token":       "legacy",
		"is_verified": float64(0),
		"last_login":  "2025-02-03T04:05:06Z",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"google"}, a.Providers)
	assert.Equal(t, "legacy", a.SessionToken)
	require.NotNil(t, a.LastLogin)
	assert.Equal(t, time.Date(2025, 2, 3, 4, 5, 6, 0, time.UTC), *a.LastLogin)
}

func TestToAccount_Invalid(t *testing.T) {
	_, err := ToAccount(bson.M{"username": "x"})
	assert.Error(t, err)

	_, err = ToAccount(bson.M{"_id": "1"})
	assert.Error(t, err)
}

func TestCanonical(t *testing.T) {
	created := time.Date(2025, 1, 1, 0, 0, 0, 999999, time.FixedZone("X", 3600))
	in := &models.Account{Username: "alice", PasswordHash: "secret", CreatedAt: created, UpdatedAt: created}

	out := Canonical(in)

	assert.Empty(t, out.PasswordHash)
	assert.Equal(t, "secret", in.PasswordHash)
	assert.Equal(t, time.UTC, out.CreatedAt.Location())
	assert.Equal(t, 0, out.CreatedAt.Nanosecond())
	assert.Nil(t, Canonical(nil))
}
