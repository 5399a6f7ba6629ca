package validate

import "testing"

func TestRequireBounded(t *testing.T) {
	tests := []struct {
		in      string
		min     int
		max     int
		want    string
		wantErr bool
	}{
		{in: "  hello  ", min: 1, max: 10, want: "hello"},
		{in: "   ", min: 1, max: 10, wantErr: true},
		{in: "toolongvalue", min: 1, max: 5, wantErr: true},
		{in: "héllo", min: 5, max: 5, want: "héllo"}, // rune count, not bytes
	}
	for _, tc := range tests {
		got, err := RequireBounded("field", tc.in, tc.min, tc.max)
		if tc.wantErr != (err != nil) {
			t.Errorf("RequireBounded(%q): err = %v", tc.in, err)
			continue
		}
		if err == nil && got != tc.want {
			t.Errorf("RequireBounded(%q): want %q, got %q", tc.in, tc.want, got)
		}
	}
}

func TestRequireURL(t *testing.T) {
	good := []string{
		"https://cdn.example.com/a.pdf",
		"http://localhost:8080/x",
		"  https://example.com/q?x=1  ",
	}
	for _, in := range good {
		if _, err := RequireURL("u", in); err != nil {
			t.Errorf("RequireURL(%q): unexpected error %v", in, err)
		}
	}
	bad := []string{"", "not a url", "ftp://example.com/a", "example.com/a", "https://"}
	for _, in := range bad {
		if _, err := RequireURL("u", in); err == nil {
			t.Errorf("RequireURL(%q): expected error", in)
		}
	}
}

func TestSanitizeString(t *testing.T) {
	tests := []struct{ in, want string }{
		{"  a  b ", "a b"},
		{"a\t\nb", "a b"},
		{"a\x00b", "ab"},
		{"", ""},
	}
	for _, tc := range tests {
		if got := SanitizeString(tc.in); got != tc.want {
			t.Errorf("SanitizeString(%q): want %q, got %q", tc.in, tc.want, got)
		}
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct{ in, want string }{
		{"The Quiet Harbor", "the-quiet-harbor"},
		{"Café au Lait!", "cafe-au-lait"},
		{"  spaced   out  ", "spaced-out"},
		{"snake_case_name", "snake-case-name"},
		{"", "n-a"},
		{"!!!", "n-a"},
		{"MiXeD-123", "mixed-123"},
	}
	for _, tc := range tests {
		if got := Slugify(tc.in); got != tc.want {
			t.Errorf("Slugify(%q): want %q, got %q", tc.in, tc.want, got)
		}
	}
}
