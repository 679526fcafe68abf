// SPDX-License-Identifier: MIT

// Package casefile reads and writes the team-forming case stream.
//
// Format (one token group per line, blank lines ignored):
//
//	<teams n>          number of teams; 0 terminates the stream
//	<name> <x> <y>     2n lines, integer coordinates
//	...
//	0
//
// Reader.Next yields cases in order with 1-based indices and io.EOF after
// the terminating 0. Malformed lines and a stream that ends before the
// terminator are reported as ErrMalformed / ErrUnexpectedEOF wrapped with
// the offending line number; match them with errors.Is.
package casefile
