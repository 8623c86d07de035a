// Copyright 2025 nuls Authors
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

package listing

import (
	"io/fs"
	"strings"
	"time"
)

// FileType tags an entry as a regular file or a directory.
type FileType int

const (
	TypeFile FileType = iota
	TypeDir
)

func (t FileType) String() string {
	if t == TypeDir {
		return "Dir"
	}
	return "File"
}

// Style is a semantic tag for how a piece of text should be displayed.
// The mapping to actual terminal colors lives in internal/render, so the
// formatter stays testable on plain strings.
type Style int

const (
	StyleNeutral Style = iota
	StyleAttention
	StyleDanger
	StyleGranted
	StyleMuted
	StyleInfo
	StyleDir
	StyleDirMarker
)

// Span is a run of text carrying one style.
type Span struct {
	Text  string
	Style Style
}

// Cell is an ordered sequence of styled spans making up one table cell.
type Cell []Span

// Text returns the cell's content with styling stripped.
func (c Cell) Text() string {
	var b strings.Builder
	for _, s := range c {
		b.WriteString(s.Text)
	}
	return b.String()
}

// Metadata is a point-in-time snapshot of one filesystem object's
// attributes. It is fetched fresh for every entry and never cached.
type Metadata struct {
	IsDir   bool
	Size    int64
	Perm    uint32 // nine POSIX permission bits, 0o400 down to 0o001
	UID     uint32
	HasUID  bool // false when the platform exposes no numeric owner
	ModTime time.Time
}

// metadataFromInfo extracts the snapshot this tool cares about from a
// stat result.
func metadataFromInfo(info fs.FileInfo) Metadata {
	m := Metadata{
		IsDir:   info.IsDir(),
		Size:    info.Size(),
		Perm:    uint32(info.Mode().Perm()),
		ModTime: info.ModTime(),
	}
	m.UID, m.HasUID = ownerUID(info)
	return m
}

// Entry pairs a directory entry's name with its metadata snapshot.
type Entry struct {
	Name string
	Meta Metadata
}

// Record holds the six display fields for one table row. Every field is
// always present; unavailable values degrade to placeholders, never to a
// missing field.
type Record struct {
	Permissions Cell
	Size        Cell
	Owner       string
	Name        Cell
	Type        FileType
	Modified    string
}
