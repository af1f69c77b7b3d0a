// Package anim is the bridge between the carvers and whatever paints them:
// a Renderer capability interface plus a context-cancellable Delay used
// between animation frames.
//
// Renderer is deliberately a single-method interface so the carvers stay
// decoupled from any concrete drawing surface — terminal view, image
// buffer, or a test stub recording frames.
//
// Delay is the carvers' only suspension point. Cancellation is cooperative:
// a fired context is observed when Delay is next awaited, and surfaces as
// ErrAborted. In-flight synchronous work always completes first.
package anim
