// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package status

import (
	"fmt"
)

// 🧮 Summary aggregates the outcomes of a run
type Summary struct {
	Processed int // files rewritten
	Unchanged int // files left as they were
	NotFound  int // manifest paths missing under root
	Failed    int // files that could not be read, transformed or written
	Rewrites  int // call sites rewritten over all files
}

// Summarize counts files by status.
func Summarize(files []FileInfo) Summary {
	var s Summary
	for _, f := range files {
		switch f.Status {
		case StatusProcessed:
			s.Processed++
			s.Rewrites += f.Rewrites
		case StatusUnchanged:
			s.Unchanged++
		case StatusNotFound:
			s.NotFound++
		case StatusError:
			s.Failed++
		}
	}
	return s
}

// Skipped is the number of files left untouched because nothing changed.
func (s Summary) Skipped() int {
	return s.Unchanged
}

// Errors counts every file that was not handled, missing ones included.
func (s Summary) Errors() int {
	return s.NotFound + s.Failed
}

// Total is the number of files accounted for.
func (s Summary) Total() int {
	return s.Processed + s.Unchanged + s.Errors()
}

// String formats the summary line of a run
func (s Summary) String() string {
	return fmt.Sprintf("Summary: %d processed, %d skipped, %d errors (%d not found)",
		s.Processed, s.Skipped(), s.Errors(), s.NotFound)
}

// FormatProgress formats a progress message with percentage
func FormatProgress(current, total int) string {
	var percentage float64
	if total == 0 {
		percentage = 0
		if current > 0 {
			percentage = 100
		}
	} else {
		percentage = float64(current) / float64(total) * 100
	}

	if current >= total {
		return fmt.Sprintf("✅ Progress: %d/%d (%.0f%%)", current, total, percentage)
	}
	return fmt.Sprintf("⏳ Progress: %d/%d (%.0f%%)", current, total, percentage)
}
