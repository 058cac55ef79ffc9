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


package storage

import (
	"fmt"
	"time"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"

	"github.com/poiesic/campusdir/core"
)

// Hand-written MUS serializers. The stored types are few and flat, so the
// field layout is spelled out here instead of generated. Timestamps are
// stored as Unix microseconds.

// MarshalID serializes an ID to bytes.
func MarshalID(id core.ID) []byte {
	buf := make([]byte, varint.Uint64.Size(uint64(id)))
	varint.Uint64.Marshal(uint64(id), buf)
	return buf
}

// UnmarshalID deserializes an ID from bytes.
func UnmarshalID(data []byte) (core.ID, error) {
	v, _, err := varint.Uint64.Unmarshal(data)
	if err != nil {
		return 0, fmt.Errorf("%w: id: %w", ErrSerializationFailed, err)
	}
	return core.ID(v), nil
}

// MarshalHistoryEntry serializes a HistoryEntry to bytes.
func MarshalHistoryEntry(entry *core.HistoryEntry) []byte {
	ts := entry.Timestamp.UnixMicro()
	size := varint.Uint64.Size(uint64(entry.Id)) +
		varint.Int.Size(int(entry.Kind)) +
		ord.String.Size(entry.Query) +
		ord.String.Size(string(entry.Intent)) +
		varint.Int.Size(entry.Hits) +
		varint.Int64.Size(ts)

	buf := make([]byte, size)
	n := varint.Uint64.Marshal(uint64(entry.Id), buf)
	n += varint.Int.Marshal(int(entry.Kind), buf[n:])
	n += ord.String.Marshal(entry.Query, buf[n:])
	n += ord.String.Marshal(string(entry.Intent), buf[n:])
	n += varint.Int.Marshal(entry.Hits, buf[n:])
	varint.Int64.Marshal(ts, buf[n:])
	return buf
}

// UnmarshalHistoryEntry deserializes a HistoryEntry from bytes.
func UnmarshalHistoryEntry(data []byte) (*core.HistoryEntry, error) {
	entry := &core.HistoryEntry{}

	id, n, err := varint.Uint64.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: history entry id: %w", ErrSerializationFailed, err)
	}
	entry.Id = core.ID(id)

	kind, n1, err := varint.Int.Unmarshal(data[n:])
	if err != nil {
		return nil, fmt.Errorf("%w: history entry kind: %w", ErrSerializationFailed, err)
	}
	entry.Kind = core.QueryKind(kind)
	n += n1

	query, n1, err := ord.String.Unmarshal(data[n:])
	if err != nil {
		return nil, fmt.Errorf("%w: history entry query: %w", ErrSerializationFailed, err)
	}
	entry.Query = query
	n += n1

	intent, n1, err := ord.String.Unmarshal(data[n:])
	if err != nil {
		return nil, fmt.Errorf("%w: history entry intent: %w", ErrSerializationFailed, err)
	}
	entry.Intent = core.Intent(intent)
	n += n1

	hits, n1, err := varint.Int.Unmarshal(data[n:])
	if err != nil {
		return nil, fmt.Errorf("%w: history entry hits: %w", ErrSerializationFailed, err)
	}
	entry.Hits = hits
	n += n1

	ts, _, err := varint.Int64.Unmarshal(data[n:])
	if err != nil {
		return nil, fmt.Errorf("%w: history entry timestamp: %w", ErrSerializationFailed, err)
	}
	entry.Timestamp = time.UnixMicro(ts).UTC()

	return entry, nil
}
