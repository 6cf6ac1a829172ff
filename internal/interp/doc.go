// Package interp parses command lines and applies them to a canvas.
//
// Every line is classified as one of [Exit], [Normal], [CommandOnly],
// [Unknown] or [ParseError]. Only Normal lines change the picture, and
// only those belong in the history log; recording them is the caller's
// job.
//
// # Verbs
//
//	line x0 y0 x1 y1   draw a segment               Normal
//	save [file]        write the log (history.txt)  CommandOnly
//	undo               drop the last entry, replay  CommandOnly
//	quit               stop the session             Exit
//
// # Undo
//
// Undo never erases. It blanks the canvas, removes the newest log entry
// and replays a snapshot of what remains. Replay only draws; it never
// touches the log and skips any verb other than line.
package interp
