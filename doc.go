// Package folio renders an animated single-page portfolio with [Ebitengine]:
// a full-window Kage background, a spinning hero mesh, a field of shaded
// decorative shapes drifting past the camera, and content sections that the
// visitor moves between with the mouse wheel, the tab bar or the keyboard.
//
// # Quick start
//
// [Run] opens a resizable window and drives a [Scene]:
//
//	scene, err := folio.NewScene(folio.DefaultConfig(), folio.SceneOptions{})
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer scene.Dispose()
//	if err := folio.Run(scene, folio.RunConfig{Width: 1280, Height: 720}); err != nil {
//		log.Fatal(err)
//	}
//
// Scene implements [ebiten.Game], so it can also be passed to
// [ebiten.RunGame] directly or embedded in a larger game.
//
// # Frame loop
//
// Every Update samples the [Clock] once and runs one step in a fixed order:
// pending section requests, the debounced wheel, then the [Camera], the
// [ScrollUniform], the [Hero] and the [Pool]. The [Navigator] owns the
// current section; everything else reads the targets it derives and never
// writes back. Camera smoothing uses 1 - e^(-k*dt) so the motion does not
// depend on the frame rate.
//
// [State] holds all of this without any GPU resources. Tests build one with
// a [VirtualClock] and call [State.Step] directly.
//
// # Configuration
//
// Sections and tuning constants come from a [Config], usually loaded from
// YAML with [LoadConfig]. [WatchConfig] reloads the file on save and feeds
// [SceneOptions.Reload]; tuning and section text apply live.
//
// # Logging
//
// folio logs through log/slog. Use [SetLogger] to route its output; section
// changes and per-frame stats are logged at Debug level.
//
// # Scenario scripts
//
// [LoadTestScript] reads a JSON list of wheel, click, tab, move, wait,
// expect and screenshot steps. Attached with [Scene.SetTestRunner], the
// steps are injected as input one frame at a time.
//
// [Ebitengine]: https://ebitengine.org
package folio
