// Package server exposes catalogue keyboards over HTTP for quick previews.
//
// Diagrams are served as text/plain so they read cleanly through curl:
//
//	GET /healthz                              liveness probe
//	GET /keyboards                            catalogue listing (JSON)
//	GET /keyboards/{name}.txt                 every layer of one keyboard
//	GET /keyboards/{name}/layers/{layer}.txt  a single layer
//
// The .txt endpoints accept ?split_at=N to override the split column.
// Rendered diagrams are cached through pkg/cache, so several instances
// pointed at one Redis or Mongo backend share renders instead of
// recomputing them.
package server
