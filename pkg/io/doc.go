// Package io writes and reads accepted selection regions.
//
// # Formats
//
// A [Region] can be written in three formats:
//
//   - json: an object with the rectangle, the surface bounds and the episode ID
//   - geometry: an X11 geometry string "WxH+X+Y" followed by a newline
//   - text: one "key: value" line per field, for humans
//
// The JSON form looks like:
//
//	{
//	  "x": 10,
//	  "y": 20,
//	  "width": 300,
//	  "height": 200,
//	  "bounds": {"width": 800, "height": 600},
//	  "episode": "0b9c5d0e-..."
//	}
//
// Only the JSON form can be read back with [ReadJSON] or [ImportJSON].
//
// # Export
//
// Use [Write] for any io.Writer or [Export] for a file path:
//
//	err := io.Export(region, io.FormatGeometry, "region.txt")
//
// Both report each write to the export hooks registered with the
// observability package.
package io
