package headerview

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.MaxHeight != 125 || cfg.MinHeight != 80 {
		t.Errorf("heights = (%v, %v), want (125, 80)", cfg.MaxHeight, cfg.MinHeight)
	}
	if cfg.MaxOverlayOpacity != 0.3 || cfg.MinOverlayOpacity != 0 {
		t.Errorf("overlay opacity = (%v, %v), want (0.3, 0)", cfg.MaxOverlayOpacity, cfg.MinOverlayOpacity)
	}
	if cfg.ForegroundParallaxRatio != 1 {
		t.Errorf("ForegroundParallaxRatio = %v, want 1", cfg.ForegroundParallaxRatio)
	}
	if cfg.OverlayColor != ColorBlack {
		t.Errorf("OverlayColor = %v, want black", cfg.OverlayColor)
	}
	if cfg.ScrollViewBackgroundColor != ColorWhite {
		t.Errorf("ScrollViewBackgroundColor = %v, want white", cfg.ScrollViewBackgroundColor)
	}
	if cfg.ForegroundExtrapolate != ExtrapolateClamp {
		t.Errorf("ForegroundExtrapolate = %v, want clamp", cfg.ForegroundExtrapolate)
	}
	if cfg.UseNativeDriver || cfg.DisableHeaderGrow || cfg.FadeOutForeground {
		t.Error("flags should default to false")
	}
	if cfg.HeaderScrollDistance() != 45 {
		t.Errorf("HeaderScrollDistance = %v, want 45", cfg.HeaderScrollDistance())
	}
}

func TestOverlayDisabled(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.OverlayDisabled() {
		t.Error("default overlay should be enabled")
	}
	cfg.MaxOverlayOpacity = 0
	if !cfg.OverlayDisabled() {
		t.Error("overlay with both bounds zero should be disabled")
	}
	cfg.MinOverlayOpacity = 0.2
	if cfg.OverlayDisabled() {
		t.Error("overlay with a non-zero bound should be enabled")
	}
}

func TestStyleMerge(t *testing.T) {
	base := Style{MarginTop: Ptr(45.0), PaddingBottom: Ptr(45.0), BackgroundColor: Ptr(ColorWhite)}
	got := base.Merge(Style{PaddingBottom: Ptr(10.0), Opacity: Ptr(0.5)})

	if *got.MarginTop != 45 {
		t.Errorf("MarginTop = %v, want 45", *got.MarginTop)
	}
	if *got.PaddingBottom != 10 {
		t.Errorf("PaddingBottom = %v, want 10", *got.PaddingBottom)
	}
	if *got.Opacity != 0.5 {
		t.Errorf("Opacity = %v, want 0.5", *got.Opacity)
	}
	if *got.BackgroundColor != ColorWhite {
		t.Errorf("BackgroundColor = %v, want white", *got.BackgroundColor)
	}
	if got.PaddingTop != nil || got.Offset != nil {
		t.Error("unset fields should stay nil")
	}
}

func TestLoadConfigOverridesPresentKeys(t *testing.T) {
	path := writeFile(t, "theme.toml", `
max_height = 200
overlay_color = "#ff0000"
foreground_extrapolate = "extend"
use_native_driver = true
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.MaxHeight != 200 {
		t.Errorf("MaxHeight = %v, want 200", cfg.MaxHeight)
	}
	if cfg.OverlayColor != (Color{1, 0, 0, 1}) {
		t.Errorf("OverlayColor = %v, want red", cfg.OverlayColor)
	}
	if cfg.ForegroundExtrapolate != ExtrapolateExtend {
		t.Errorf("ForegroundExtrapolate = %v, want extend", cfg.ForegroundExtrapolate)
	}
	if !cfg.UseNativeDriver {
		t.Error("UseNativeDriver should be true")
	}

	// Absent keys keep their defaults.
	def := DefaultConfig()
	if cfg.MinHeight != def.MinHeight {
		t.Errorf("MinHeight = %v, want %v", cfg.MinHeight, def.MinHeight)
	}
	if cfg.MaxOverlayOpacity != def.MaxOverlayOpacity {
		t.Errorf("MaxOverlayOpacity = %v, want %v", cfg.MaxOverlayOpacity, def.MaxOverlayOpacity)
	}
	if cfg.ScrollViewBackgroundColor != def.ScrollViewBackgroundColor {
		t.Errorf("ScrollViewBackgroundColor = %v, want %v", cfg.ScrollViewBackgroundColor, def.ScrollViewBackgroundColor)
	}
	if cfg.HeaderImage != nil {
		t.Error("HeaderImage should be nil")
	}
}

func TestLoadConfigHeaderImage(t *testing.T) {
	path := writeFile(t, "theme.toml", `header_image = "assets/header.png"`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.HeaderImage == nil || len(cfg.HeaderImage.Variants) != 1 {
		t.Fatalf("HeaderImage = %+v, want one variant", cfg.HeaderImage)
	}
	if got := cfg.HeaderImage.Variants[0].URI; got != "assets/header.png" {
		t.Errorf("URI = %q, want assets/header.png", got)
	}
}

func TestLoadConfigHeaderImageVariants(t *testing.T) {
	path := writeFile(t, "theme.toml", `
[[header_image_variants]]
uri = "small.png"
width = 320
height = 125

[[header_image_variants]]
uri = "large.png"
width = 1280
height = 500
scale = 2
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.HeaderImage == nil || len(cfg.HeaderImage.Variants) != 2 {
		t.Fatalf("HeaderImage = %+v, want two variants", cfg.HeaderImage)
	}
	v := cfg.HeaderImage.Variants[1]
	if v.URI != "large.png" || v.Width != 1280 || v.Scale != 2 {
		t.Errorf("variant = %+v, want large.png 1280 @2x", v)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("missing file should fail")
	}
	bad := map[string]string{
		"syntax":      "max_height = = 3",
		"color":       `overlay_color = "#zzzzzz"`,
		"extrapolate": `foreground_extrapolate = "bounce"`,
	}
	for name, body := range bad {
		if _, err := LoadConfig(writeFile(t, name+".toml", body)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"black", ColorBlack},
		{"White", ColorWhite},
		{"transparent", ColorTransparent},
		{"#ff0000", Color{1, 0, 0, 1}},
		{"#0f0", Color{0, 1, 0, 1}},
		{"#0000ff80", Color{0, 0, 1, 128.0 / 255}},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if err != nil {
			t.Errorf("ParseColor(%q) error: %v", tt.in, err)
			continue
		}
		if !approxEqual(got.R, tt.want.R, 1e-6) || !approxEqual(got.G, tt.want.G, 1e-6) ||
			!approxEqual(got.B, tt.want.B, 1e-6) || !approxEqual(got.A, tt.want.A, 1e-6) {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	for _, in := range []string{"", "red", "#12", "#gggggg", "#ff0000zz"} {
		if _, err := ParseColor(in); err == nil {
			t.Errorf("ParseColor(%q) should fail", in)
		}
	}
}

func TestFormatColor(t *testing.T) {
	if got := FormatColor(Color{1, 0, 0, 1}); got != "#ff0000" {
		t.Errorf("FormatColor(red) = %q, want #ff0000", got)
	}
	if got := FormatColor(Color{0, 0, 0, 0.5}); got != "#00000080" {
		t.Errorf("FormatColor(half black) = %q, want #00000080", got)
	}
}
