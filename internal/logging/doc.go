// Package logging builds the zerolog logger used by the server and CLI and
// keeps secret key material out of every log sink.
//
// Output goes to a console writer when stderr is a terminal and to JSON
// otherwise, optionally teed into a size-rotated file. Every sink is wrapped
// in a FilteringWriter that redacts anything shaped like an exported secret.
package logging
