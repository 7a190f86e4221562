// Package headerview is a scroll view with a collapsing, parallax image
// header for [Ebitengine].
//
// A [HeaderScrollView] stacks four layers over a scrollable body: the header
// (an image or caller content), a translucent overlay that darkens as the
// header collapses, a fixed foreground pinned to the header, and a parallax
// foreground that moves at its own rate. Pulling the body past its top grows
// the header.
//
// # Quick start
//
// The package draws through a small retained-mode scene graph. Implement
// [ebiten.Game] and call [Scene.Update] and [Scene.Draw]:
//
//	scene := headerview.NewScene()
//	content := headerview.NewRect("content", 320, 2000, headerview.ColorWhite)
//
//	hv := headerview.New(headerview.DefaultConfig(), headerview.Renderers{},
//		nil, headerview.ScrollProps{Content: content})
//	hv.Mount(scene.Root())
//	hv.Layout(headerview.Rect{Width: 320, Height: 480})
//
//	type Game struct{ scene *headerview.Scene }
//
//	func (g *Game) Update() error         { g.scene.Update(); return nil }
//	func (g *Game) Draw(s *ebiten.Image)  { g.scene.Draw(s) }
//	func (g *Game) Layout(w, h int) (int, int) { return w, h }
//
// # Scroll mapping
//
// Every visual property is a clamped linear function of the body's vertical
// scroll offset, see [Interpolate] and the [Config] methods
// [Config.OverlayOpacity], [Config.HeaderScale], [Config.TouchableHeight]
// and [Config.ForegroundTranslate]. The header collapses over
// [Config.HeaderScrollDistance] pixels of scrolling.
//
// # Bodies
//
// Any [Scrollable] can be hosted. [ScrollView] and [ListView] are the
// built-in bodies; they scroll with the mouse wheel and animate
// programmatic scrolls with [gween]. Control operations such as
// [HeaderScrollView.ScrollToEnd] are forwarded to the body when it supports
// them and do nothing otherwise.
//
// # Native driver
//
// With [Config.UseNativeDriver] the body writes its offset straight into a
// single-writer cell and the header samples it once per frame, updating
// transforms and opacity only. The touchable fixed foreground animates its
// height and is therefore left out on this path.
//
// # Themes
//
// [LoadConfig] reads a TOML theme file over [DefaultConfig]:
//
//	max_height = 200
//	min_height = 64
//	overlay_color = "#102030"
//	header_image = "assets/header.jpg"
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package headerview
