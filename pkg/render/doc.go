// Package render turns scenes into images.
//
// The renderers walk the flattened scene tree in draw order and emit one
// still per call:
//
//   - [RenderSVG] hand-emits a standalone SVG document.
//   - [RenderPNG] rasterizes through fogleman/gg.
//   - [Frames] and [WriteFrames] step an animation playback and rasterize
//     every frame, for assembling clips externally.
//   - [ToDOT] and [RenderDOT] export graph widgets through Graphviz for
//     structural inspection.
//
// All renderers share the same projection: scene units scale by a
// pixels-per-unit factor and the y axis flips from the scene's y-up
// convention to the image's y-down one.
package render
