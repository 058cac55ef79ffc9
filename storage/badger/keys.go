// Copyright 2025 Poiesic Systems
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


package badger

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/poiesic/campusdir/core"
)

const (
	historyEntryPrefix = "histent"
	historyDatePrefix  = "histdat"
)

// makeHistoryEntryKey generates a key for a history entry by ID.
func makeHistoryEntryKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", historyEntryPrefix, id))
}

// makeHistoryDateKey generates a composite key for the date index.
// Format: prefix:timestamp:id
func makeHistoryDateKey(timestamp time.Time, id core.ID) []byte {
	prefix := historyDatePrefix + ":"
	prefixBytes := []byte(prefix)
	buf := make([]byte, len(prefixBytes)+16) // 8 bytes timestamp + 8 bytes ID
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(timestamp.UnixMicro()))
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}

// makePartialHistoryDateKey generates a partial key for recency scans.
// Format: prefix:timestamp
func makePartialHistoryDateKey(timestamp time.Time) []byte {
	prefix := historyDatePrefix + ":"
	prefixBytes := []byte(prefix)
	buf := make([]byte, len(prefixBytes)+8)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(timestamp.UnixMicro()))
	return buf
}
