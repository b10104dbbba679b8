package validate

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	tests := []struct {
		name      string
		email     string
		username  string
		password  string
		badFields []string
	}{
		{"valid", "a@b.com", "ana_22", "secret1", nil},
		{"bad email", "not-an-email", "ana_22", "secret1", []string{"email"}},
		{"username too short", "a@b.com", "ab", "secret1", []string{"username"}},
		{"username too long", "a@b.com", "abcdefghijklmnopqrstuvwxy", "secret1", []string{"username"}},
		{"username bad chars", "a@b.com", "ana-22!", "secret1", []string{"username"}},
		{"password too short", "a@b.com", "ana_22", "12345", []string{"password"}},
		{"everything wrong", "x", "a!", "1", []string{"email", "username", "password"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, errs := Register(tt.email, tt.username, tt.password)
			if len(tt.badFields) == 0 {
				assert.True(t, errs.Empty())
				return
			}
			assert.Len(t, errs, len(tt.badFields))
			for _, f := range tt.badFields {
				assert.NotEmpty(t, errs[f], "expected error on %q", f)
			}
		})
	}
}

func TestLogin(t *testing.T) {
	_, errs := Login("ana", "pw")
	assert.True(t, errs.Empty())

	_, errs = Login("", "")
	assert.NotEmpty(t, errs["username"])
	assert.NotEmpty(t, errs["password"])
}

func TestWrapCreateYearCoercion(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
		ok   bool
	}{
		{"number", `2024`, 2024, true},
		{"numeric string", `"2024"`, 2024, true},
		{"negative", `-5`, -5, true},
		{"float", `2024.5`, 0, false},
		{"non-numeric string", `"20x4"`, 0, false},
		{"null", `null`, 0, false},
		{"missing", ``, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, errs := WrapCreate("t", "k", json.RawMessage(tt.raw))
			if tt.ok {
				require.True(t, errs.Empty())
				assert.Equal(t, tt.want, in.Year)
			} else {
				assert.NotEmpty(t, errs["year"])
			}
		})
	}
}

func TestWrapCreateRequiredStrings(t *testing.T) {
	_, errs := WrapCreate("", "", json.RawMessage(`2024`))
	assert.NotEmpty(t, errs["title"])
	assert.NotEmpty(t, errs["kind"])
}

func TestItemDates(t *testing.T) {
	in, errs := Item("Big Mac", "2024-03-01T12:00:00.000Z", nil)
	require.True(t, errs.Empty())
	assert.Equal(t, time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC), in.Date)

	in, errs = Item("Big Mac", "2024-03-01", nil)
	require.True(t, errs.Empty())
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), in.Date)

	_, errs = Item("Big Mac", "not a date", nil)
	assert.NotEmpty(t, errs["date"])

	_, errs = Item("", "2024-03-01", nil)
	assert.NotEmpty(t, errs["name"])
}

func TestItemNotesField(t *testing.T) {
	in, errs := Item("Big Mac", "2024-03-01", json.RawMessage(`"extra pickles"`))
	require.True(t, errs.Empty())
	require.NotNil(t, in.Notes)
	assert.Equal(t, "extra pickles", *in.Notes)

	in, errs = Item("Big Mac", "2024-03-01", nil)
	require.True(t, errs.Empty())
	assert.Nil(t, in.Notes)

	// an explicit null is not an absent optional
	_, errs = Item("Big Mac", "2024-03-01", json.RawMessage(`null`))
	assert.NotEmpty(t, errs["notes"])

	_, errs = Item("Big Mac", "2024-03-01", json.RawMessage(`42`))
	assert.NotEmpty(t, errs["notes"])
}

func TestReportShape(t *testing.T) {
	_, errs := Register("x", "a", "1")
	b, err := json.Marshal(errs.Report())
	require.NoError(t, err)

	var out struct {
		FormErrors  []string            `json:"formErrors"`
		FieldErrors map[string][]string `json:"fieldErrors"`
	}
	require.NoError(t, json.Unmarshal(b, &out))
	assert.NotNil(t, out.FormErrors)
	assert.Empty(t, out.FormErrors)
	assert.NotEmpty(t, out.FieldErrors["email"])
}
