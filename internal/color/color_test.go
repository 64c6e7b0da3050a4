package color

import (
	"testing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Color
		wantErr bool
	}{
		{"with hash", "#1e66f5", Color{30, 102, 245}, false},
		{"without hash", "1e66f5", Color{30, 102, 245}, false},
		{"black", "#000000", Color{0, 0, 0}, false},
		{"white", "#ffffff", Color{255, 255, 255}, false},
		{"uppercase", "#AABBCC", Color{170, 187, 204}, false},
		{"too short", "#fff", Color{}, true},
		{"too long", "#aabbccdd", Color{}, true},
		{"invalid chars", "#zzzzzz", Color{}, true},
		{"empty", "", Color{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHex(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseHex(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("ParseHex(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestColorEncodings(t *testing.T) {
	c := Color{30, 102, 245}

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"hex", c.Hex(), "#1e66f5"},
		{"rgb", c.RGB(), "rgb(30, 102, 245)"},
		{"raw", c.Raw(), "30, 102, 245"},
		{"hsl", c.HSL(), "hsl(220, 91%, 54%)"},
		{"rgba", c.RGBA(0.5), "rgba(30, 102, 245, 0.5)"},
		{"rgba clamped", c.RGBA(3), "rgba(30, 102, 245, 1)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestColorHexZeroPadding(t *testing.T) {
	c := Color{0, 5, 10}
	want := "#00050a"
	if got := c.Hex(); got != want {
		t.Errorf("Color.Hex() = %q, want %q", got, want)
	}
}

func TestHSLAchromatic(t *testing.T) {
	want := "hsl(0, 0%, 0%)"
	if got := (Color{}).HSL(); got != want {
		t.Errorf("HSL() = %q, want %q", got, want)
	}
}

func TestBrighten(t *testing.T) {
	tests := []struct {
		name   string
		color  Color
		amount float64
		want   Color
	}{
		{"brighten red by 10%", Color{255, 0, 0}, 0.1, Color{255, 51, 51}},
		{"white stays white", Color{255, 255, 255}, 0.5, Color{255, 255, 255}},
		{"brighten black by 50%", Color{0, 0, 0}, 0.5, Color{128, 128, 128}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Brighten(tt.color, tt.amount)
			if got != tt.want {
				t.Errorf("Brighten(%v, %v) = %v, want %v", tt.color, tt.amount, got, tt.want)
			}
		})
	}
}

func TestDarken(t *testing.T) {
	tests := []struct {
		name   string
		color  Color
		amount float64
		want   Color
	}{
		{"darken red by 10%", Color{255, 0, 0}, 0.1, Color{204, 0, 0}},
		{"black stays black", Color{0, 0, 0}, 0.5, Color{0, 0, 0}},
		{"darken white by 50%", Color{255, 255, 255}, 0.5, Color{128, 128, 128}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Darken(tt.color, tt.amount)
			if got != tt.want {
				t.Errorf("Darken(%v, %v) = %v, want %v", tt.color, tt.amount, got, tt.want)
			}
		})
	}
}

func TestFade(t *testing.T) {
	got := Fade(Color{255, 0, 0}, 0.25)
	want := "rgba(255, 0, 0, 0.25)"
	if got != want {
		t.Errorf("Fade() = %q, want %q", got, want)
	}
}
