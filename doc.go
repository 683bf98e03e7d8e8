// Package wfc is an in-memory toolkit for Wave Function Collapse —
// learning adjacency constraints from a sample and synthesizing new 2-D
// arrangements that locally resemble it.
//
// 🚀 What is wfc?
//
//	A small, deterministic-by-choice library that brings together:
//		• symbols/  — dense id interning with empirical frequency weights
//		• rules/    — directed adjacency constraints keyed by arbitrary offsets
//		• wave/     — the solver core: entropy-driven selection, constraint
//		              intersection, weighted sampling, restart-on-contradiction
//		• tileset/  — bitmap ⇄ grid collaborators: slice a sample image into
//		              tiles, render a solved grid back to pixels
//
// ✨ Why choose wfc?
//
//   - Reproducible – every stochastic step takes an injectable, seedable RNG
//   - Rock-solid guarantees – sentinel errors, validated options, in-code docs
//   - Pure Go – no cgo; stdlib image for the I/O edges
//   - Honest semantics – the classic restart-only (Las Vegas) state machine,
//     with an opt-in restart ceiling when you need bounded runs
//
// Quick ASCII example:
//
//	sample            solved 6×3 (same local texture, new arrangement)
//	A B A             A B A B A B
//	B A B     ──►     B A B A B A
//	A B A             A B A B A B
//
// Dive into examples/ for a full PNG-to-PNG synthesis walkthrough.
//
//	go get github.com/katalvlaran/wfc
package wfc
