package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyKnownCodes(t *testing.T) {
	for _, code := range Codes() {
		want, ok := Lookup(code)
		require.True(t, ok, "code %d listed but not found", code)
		assert.Equal(t, want, Classify(code), "code %d", code)
	}
}

func TestClassifyNotFound(t *testing.T) {
	d := Classify(404)

	assert.Equal(t, "Not Found", d.Title)
	assert.Equal(t, Error, d.Category)
	assert.Contains(t, d.Message, "could not be found")
	assert.Equal(t, IconSearch, d.Icon)
}

func TestClassifyFallbacks(t *testing.T) {
	tests := []struct {
		name string
		code int
		want Descriptor
	}{
		{"unknown 2xx", 203, Default(Success)},
		{"upper 2xx", 299, Default(Success)},
		{"unknown 3xx", 303, Default(Info)},
		{"upper 3xx", 399, Default(Info)},
		{"unknown 4xx", 499, Default(Error)},
		{"unknown 5xx", 599, Default(Error)},
		{"beyond 5xx", 999, Default(Error)},
		{"informational", 100, Default(Error)},
		{"zero", 0, Default(Error)},
		{"negative", -1, Default(Error)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.code))
		})
	}
}

func TestKnownCodesMatchRangeCategory(t *testing.T) {
	for _, code := range Codes() {
		assert.Equal(t, CategoryOf(code), Classify(code).Category, "code %d", code)
	}
}

func TestCodesCoversTable(t *testing.T) {
	want := []int{
		200, 201, 202, 204,
		300, 301, 302, 304, 307, 308,
		400, 401, 403, 404, 405, 408, 409, 422, 429,
		500, 501, 502, 503, 504,
	}
	assert.Equal(t, want, Codes())
}

func TestClassifyReturnsCopy(t *testing.T) {
	d := Classify(500)
	d.Message = "mutated"

	assert.NotEqual(t, "mutated", Classify(500).Message)
}

func TestNetworkIsFixed(t *testing.T) {
	d := Network()
	assert.Equal(t, "Network Error", d.Title)
	assert.Equal(t, Error, d.Category)
	assert.Equal(t, IconWifiOff, d.Icon)

	d.Title = "mutated"
	d.Message = "mutated"
	assert.Equal(t, "Network Error", Network().Title)
	assert.NotEqual(t, "mutated", Network().Message)
}

func TestWithMessage(t *testing.T) {
	d := Classify(404)
	overridden := d.WithMessage("X")

	assert.Equal(t, "X", overridden.Message)
	assert.Equal(t, d.Title, overridden.Title)
	assert.Equal(t, d.Category, overridden.Category)
	assert.NotEqual(t, "X", d.Message)
}

func TestIsSuccess(t *testing.T) {
	assert.True(t, IsSuccess(200))
	assert.True(t, IsSuccess(299))
	assert.False(t, IsSuccess(199))
	assert.False(t, IsSuccess(300))
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in   string
		want Category
		ok   bool
	}{
		{"success", Success, true},
		{"INFO", Info, true},
		{" error ", Error, true},
		{"warning", Error, false},
		{"", Error, false},
	}

	for _, tt := range tests {
		got, ok := ParseCategory(tt.in)
		assert.Equal(t, tt.want, got, "ParseCategory(%q)", tt.in)
		assert.Equal(t, tt.ok, ok, "ParseCategory(%q) ok", tt.in)
	}
}

func TestCategoryString(t *testing.T) {
	assert.Equal(t, "success", Success.String())
	assert.Equal(t, "info", Info.String())
	assert.Equal(t, "error", Error.String())
}

func TestResolve(t *testing.T) {
	custom := Descriptor{Title: "Maintenance", Message: "Back at <b>10:00</b>", Category: Info, Icon: "clock"}

	tests := []struct {
		name   string
		target Target
		want   Descriptor
	}{
		{"status code", StatusCode{Code: 404}, Classify(404)},
		{"status code with override", StatusCode{Code: 404, Override: "X"}, Classify(404).WithMessage("X")},
		{"unknown status code", StatusCode{Code: 418}, Default(Error)},
		{"custom verbatim", Custom{Descriptor: custom}, custom},
		{"custom zero value", Custom{}, Descriptor{}},
		{"nil target", nil, Default(Error)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.target))
		})
	}
}
