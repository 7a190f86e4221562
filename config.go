package headerview

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Config is the per-render layout configuration of a HeaderScrollView.
// Start from DefaultConfig; the zero value is not a usable layout.
type Config struct {
	// OverlayColor fills the overlay drawn above the header image.
	OverlayColor Color
	// FadeOutForeground is accepted for compatibility and currently has no
	// effect.
	FadeOutForeground bool
	// ForegroundParallaxRatio multiplies the parallax foreground's speed.
	ForegroundParallaxRatio float64
	// MaxHeight is the expanded header height, MinHeight the collapsed one.
	MaxHeight float64
	MinHeight float64
	// Overlay opacity at offset zero (Min) and at full collapse (Max).
	MaxOverlayOpacity float64
	MinOverlayOpacity float64
	// ForegroundExtrapolate is the parallax layer's extrapolation policy.
	ForegroundExtrapolate Extrapolate
	// ScrollViewBackgroundColor fills the container and the scroll content.
	ScrollViewBackgroundColor Color
	// UseNativeDriver selects the transform-only, frame-sampled path.
	UseNativeDriver bool
	// DisableHeaderGrow turns off the overscroll scale effect.
	DisableHeaderGrow bool
	// HeaderImage, when set, replaces Renderers.Header.
	HeaderImage *ImageSource

	HeaderContainerStyle          Style
	FixedForegroundContainerStyle Style
	// ChildrenStyle is merged last onto the scroll content container.
	ChildrenStyle Style

	// Debug enables development advisories on stderr.
	Debug bool
}

// DefaultConfig returns the default layout.
func DefaultConfig() Config {
	return Config{
		OverlayColor:              ColorBlack,
		ForegroundParallaxRatio:   1,
		MaxHeight:                 125,
		MinHeight:                 80,
		MaxOverlayOpacity:         0.3,
		MinOverlayOpacity:         0,
		ForegroundExtrapolate:     ExtrapolateClamp,
		ScrollViewBackgroundColor: ColorWhite,
	}
}

// HeaderScrollDistance is how far the body scrolls while the header
// collapses. Negative when MinHeight exceeds MaxHeight; that is not rejected.
func (c Config) HeaderScrollDistance() float64 {
	return c.MaxHeight - c.MinHeight
}

// OverlayDisabled reports whether the overlay can be left out entirely.
func (c Config) OverlayDisabled() bool {
	return c.MinOverlayOpacity == c.MaxOverlayOpacity && c.MaxOverlayOpacity == 0
}

// Style overrides merged onto an internal layer. Nil fields leave the
// layer's own value in place.
type Style struct {
	BackgroundColor *Color
	Opacity         *float64
	Offset          *Vec2
	MarginTop       *float64
	PaddingTop      *float64
	PaddingBottom   *float64
}

// Merge returns s with every field set in o taking precedence.
func (s Style) Merge(o Style) Style {
	if o.BackgroundColor != nil {
		s.BackgroundColor = o.BackgroundColor
	}
	if o.Opacity != nil {
		s.Opacity = o.Opacity
	}
	if o.Offset != nil {
		s.Offset = o.Offset
	}
	if o.MarginTop != nil {
		s.MarginTop = o.MarginTop
	}
	if o.PaddingTop != nil {
		s.PaddingTop = o.PaddingTop
	}
	if o.PaddingBottom != nil {
		s.PaddingBottom = o.PaddingBottom
	}
	return s
}

// Ptr returns a pointer to v, for filling Style fields.
func Ptr[T any](v T) *T {
	return &v
}

// fileConfig is the on-disk form of Config.
type fileConfig struct {
	OverlayColor              string         `koanf:"overlay_color"`
	FadeOutForeground         bool           `koanf:"fade_out_foreground"`
	ForegroundParallaxRatio   float64        `koanf:"foreground_parallax_ratio"`
	MaxHeight                 float64        `koanf:"max_height"`
	MinHeight                 float64        `koanf:"min_height"`
	MaxOverlayOpacity         float64        `koanf:"max_overlay_opacity"`
	MinOverlayOpacity         float64        `koanf:"min_overlay_opacity"`
	ForegroundExtrapolate     string         `koanf:"foreground_extrapolate"`
	ScrollViewBackgroundColor string         `koanf:"scroll_view_background_color"`
	UseNativeDriver           bool           `koanf:"use_native_driver"`
	DisableHeaderGrow         bool           `koanf:"disable_header_grow"`
	HeaderImage               string         `koanf:"header_image"`
	HeaderImageVariants       []ImageVariant `koanf:"header_image_variants"`
	Debug                     bool           `koanf:"debug"`
}

// LoadConfig reads a TOML theme file and merges it onto DefaultConfig.
// Keys absent from the file keep their defaults.
func LoadConfig(path string) (Config, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}

	def := DefaultConfig()
	fc := fileConfig{
		OverlayColor:              FormatColor(def.OverlayColor),
		ForegroundParallaxRatio:   def.ForegroundParallaxRatio,
		MaxHeight:                 def.MaxHeight,
		MinHeight:                 def.MinHeight,
		MaxOverlayOpacity:         def.MaxOverlayOpacity,
		MinOverlayOpacity:         def.MinOverlayOpacity,
		ForegroundExtrapolate:     def.ForegroundExtrapolate.String(),
		ScrollViewBackgroundColor: FormatColor(def.ScrollViewBackgroundColor),
	}
	if err := k.Unmarshal("", &fc); err != nil {
		return Config{}, fmt.Errorf("decode config %s: %w", path, err)
	}
	return fc.config()
}

// config converts the file form, validating colors and policies.
func (fc fileConfig) config() (Config, error) {
	cfg := DefaultConfig()
	var err error
	if cfg.OverlayColor, err = ParseColor(fc.OverlayColor); err != nil {
		return Config{}, fmt.Errorf("overlay_color: %w", err)
	}
	if cfg.ScrollViewBackgroundColor, err = ParseColor(fc.ScrollViewBackgroundColor); err != nil {
		return Config{}, fmt.Errorf("scroll_view_background_color: %w", err)
	}
	if cfg.ForegroundExtrapolate, err = ParseExtrapolate(fc.ForegroundExtrapolate); err != nil {
		return Config{}, fmt.Errorf("foreground_extrapolate: %w", err)
	}
	cfg.FadeOutForeground = fc.FadeOutForeground
	cfg.ForegroundParallaxRatio = fc.ForegroundParallaxRatio
	cfg.MaxHeight = fc.MaxHeight
	cfg.MinHeight = fc.MinHeight
	cfg.MaxOverlayOpacity = fc.MaxOverlayOpacity
	cfg.MinOverlayOpacity = fc.MinOverlayOpacity
	cfg.UseNativeDriver = fc.UseNativeDriver
	cfg.DisableHeaderGrow = fc.DisableHeaderGrow
	cfg.Debug = fc.Debug

	switch {
	case len(fc.HeaderImageVariants) > 0:
		cfg.HeaderImage = &ImageSource{Variants: fc.HeaderImageVariants}
	case fc.HeaderImage != "":
		cfg.HeaderImage = &ImageSource{Variants: []ImageVariant{{URI: fc.HeaderImage}}}
	}
	return cfg, nil
}

// namedColors are the color keywords accepted besides hex notation.
var namedColors = map[string]Color{
	"black":       ColorBlack,
	"white":       ColorWhite,
	"transparent": ColorTransparent,
}

// ParseColor parses "#rgb", "#rrggbb", "#rrggbbaa" or one of the names
// black, white and transparent.
func ParseColor(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[s]; ok {
		return c, nil
	}
	alpha := 1.0
	if len(s) == 9 && s[0] == '#' {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("parse color %q: %w", s, err)
		}
		alpha = float64(a) / 255
		s = s[:7]
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return Color{R: c.R, G: c.G, B: c.B, A: alpha}, nil
}

// FormatColor renders c as "#rrggbb", or "#rrggbbaa" when not opaque.
func FormatColor(c Color) string {
	hex := colorful.Color{R: c.R, G: c.G, B: c.B}.Hex()
	if c.A >= 1 {
		return hex
	}
	return fmt.Sprintf("%s%02x", hex, uint8(clamp01(c.A)*255+0.5))
}

// orDefault returns *p, or def when p is nil.
func orDefault[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}
