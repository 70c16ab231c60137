// Copyright 2017 The Bazel Authors. All rights reserved.
// Copyright 2026 The Cinder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chunkedfile provides utilities for testing that diagnostics
// are reported in the appropriate places.
//
// A chunked file consists of several chunks of input text separated by
// "---" lines. Each chunk is an input to the program under test, such
// as the binder. Each occurrence of "###" on a line, conventionally
// within a comment, is an expectation of a diagnostic on that line:
// the following text, up to the next "###", is a Go string literal
// denoting a regular expression that should match the diagnostic message.
//
// Example:
//
//	int f() { return "s"; } // ### "TypeMismatch"
//	---
//	void g() {
//	  break; // ### "NoEnclosingLoop"
//	  x = y; // ### "UndeclaredVariable: .*x" ### "UndeclaredVariable: .*y"
//	}
//
// A client test feeds each chunk of text into the program under test,
// then calls chunk.GotError for each diagnostic that actually occurred.
// Any discrepancy between the actual and expected diagnostics is
// reported using the client's reporter, which is typically a testing.T.
package chunkedfile // import "go.cinder.dev/internal/chunkedfile"

import (
	"fmt"
	"os"
	"regexp"
	"runtime"
	"strconv"
	"strings"
)

const debug = false

// A Chunk is a portion of a source file.
// It contains a set of expected diagnostics.
type Chunk struct {
	Source   string
	filename string
	report   Reporter
	wantErrs map[int][]*regexp.Regexp
}

// Reporter is implemented by *testing.T.
type Reporter interface {
	Errorf(format string, args ...interface{})
}

// Read parses a chunked file and returns its chunks.
// It reports failures using the reporter.
//
// Error messages of the form "file.cdr:line:col: ..." are prefixed
// by a newline so that the Go source position added by (*testing.T).Errorf
// appears on a separate line so as not to confuse editors.
func Read(filename string, report Reporter) (chunks []Chunk) {
	data, err := os.ReadFile(filename)
	if err != nil {
		report.Errorf("%s", err)
		return
	}
	eol := "\n"
	if runtime.GOOS == "windows" {
		eol = "\r\n"
	}
	return readBytes(filename, data, report, eol)
}

func readBytes(filename string, data []byte, report Reporter, eol string) (chunks []Chunk) {
	linenum := 1
	for i, chunk := range strings.Split(string(data), eol+"---"+eol) {
		if debug {
			fmt.Printf("chunk %d at line %d: %s\n", i, linenum, chunk)
		}
		// Pad with newlines so the line numbers match the original file.
		src := strings.Repeat("\n", linenum-1) + chunk

		wantErrs := make(map[int][]*regexp.Regexp)

		// Parse comments of the form:
		// ### "expected error" ### "another".
		lines := strings.Split(chunk, "\n")
		for j := 0; j < len(lines); j, linenum = j+1, linenum+1 {
			line := lines[j]
			hashes := strings.Index(line, "###")
			if hashes < 0 {
				continue
			}
			for _, rest := range strings.Split(line[hashes+len("###"):], "###") {
				rest = strings.TrimSpace(rest)
				pattern, err := strconv.Unquote(rest)
				if err != nil {
					report.Errorf("\n%s:%d: not a quoted regexp: %s", filename, linenum, rest)
					continue
				}
				rx, err := regexp.Compile(pattern)
				if err != nil {
					report.Errorf("\n%s:%d: %v", filename, linenum, err)
					continue
				}
				wantErrs[linenum] = append(wantErrs[linenum], rx)
				if debug {
					fmt.Printf("\t%d\t%s\n", linenum, rx)
				}
			}
		}
		linenum++

		chunks = append(chunks, Chunk{src, filename, report, wantErrs})
	}
	return chunks
}

// GotError should be called by the client to report a diagnostic at a
// particular line. The message is matched against the first pending
// expectation for that line that it satisfies.
// GotError reports unexpected diagnostics to the chunk's reporter.
func (chunk *Chunk) GotError(linenum int, msg string) {
	wants := chunk.wantErrs[linenum]
	if len(wants) == 0 {
		chunk.report.Errorf("\n%s:%d: unexpected error: %v", chunk.filename, linenum, msg)
		return
	}
	for i, rx := range wants {
		if rx.MatchString(msg) {
			chunk.consume(linenum, i)
			return
		}
	}
	chunk.consume(linenum, 0)
	chunk.report.Errorf("\n%s:%d: error %q does not match pattern %q", chunk.filename, linenum, msg, wants[0])
}

func (chunk *Chunk) consume(linenum, i int) {
	wants := chunk.wantErrs[linenum]
	wants = append(wants[:i:i], wants[i+1:]...)
	if len(wants) == 0 {
		delete(chunk.wantErrs, linenum)
	} else {
		chunk.wantErrs[linenum] = wants
	}
}

// Done should be called by the client to indicate that the chunk has no
// more diagnostics. Done reports expected diagnostics that did not occur
// to the chunk's reporter.
func (chunk *Chunk) Done() {
	for linenum, wants := range chunk.wantErrs {
		for _, rx := range wants {
			chunk.report.Errorf("\n%s:%d: expected error matching %q", chunk.filename, linenum, rx)
		}
	}
}
