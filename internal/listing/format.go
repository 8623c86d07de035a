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
	"math"
	"strconv"
	"time"
	"unicode/utf8"
)

const (
	// OwnerSentinel is shown when the numeric owner id cannot be resolved.
	OwnerSentinel = "User error"
	// NamePlaceholder is shown when an entry name is not valid text.
	NamePlaceholder = "Unknown name"
	// DirSizePlaceholder is shown in place of a directory's byte length.
	DirSizePlaceholder = "-"
)

// permFlags lists the nine permission bits in display order:
// owner r/w/x, group r/w/x, other r/w/x.
var permFlags = [9]struct {
	bit uint32
	ch  string
}{
	{0o400, "r"},
	{0o200, "w"},
	{0o100, "x"},
	{0o040, "r"},
	{0o020, "w"},
	{0o010, "x"},
	{0o004, "r"},
	{0o002, "w"},
	{0o001, "x"},
}

// Formatter derives display records from metadata snapshots. It is a pure
// transform: the same snapshot always produces the same record. Identity
// resolution and the timestamp location are injected so tests can pin
// them down.
type Formatter struct {
	identity Identity
	loc      *time.Location
}

// NewFormatter returns a Formatter using the given identity resolver and
// time location. A nil location means UTC, matching the original tool's
// timestamps.
func NewFormatter(identity Identity, loc *time.Location) *Formatter {
	if loc == nil {
		loc = time.UTC
	}
	return &Formatter{identity: identity, loc: loc}
}

// Format produces the full display record for one entry. It never fails:
// each field degrades to its placeholder independently.
func (f *Formatter) Format(name string, meta Metadata) Record {
	return Record{
		Permissions: FormatPermissions(meta.IsDir, meta.Perm),
		Size:        FormatSize(meta.Size, meta.IsDir),
		Owner:       f.FormatOwner(meta),
		Name:        FormatName(name, meta.IsDir),
		Type:        ClassifyType(meta.IsDir),
		Modified:    f.FormatModified(meta.ModTime),
	}
}

// ClassifyType maps the is-directory flag to a type tag.
func ClassifyType(isDir bool) FileType {
	if isDir {
		return TypeDir
	}
	return TypeFile
}

// FormatSize renders a byte length in one of three magnitude tiers.
// Directories always get the fixed placeholder since their reported size
// is not meaningful here. Quotients round half away from zero.
func FormatSize(size int64, isDir bool) Cell {
	if isDir {
		return Cell{{Text: DirSizePlaceholder, Style: StyleInfo}}
	}
	switch {
	case size < 1024:
		return Cell{{Text: strconv.FormatInt(size, 10), Style: StyleGranted}}
	case size > 1024*1024:
		// Strictly greater: exactly 1 MiB stays in the "k" tier.
		mb := int64(math.Round(float64(size) / (1024 * 1024)))
		return Cell{{Text: strconv.FormatInt(mb, 10) + "m", Style: StyleAttention}}
	default:
		kb := int64(math.Round(float64(size) / 1024))
		return Cell{{Text: strconv.FormatInt(kb, 10) + "k", Style: StyleAttention}}
	}
}

// FormatOwner resolves the numeric owner id to a username. Resolution
// failure of any kind yields the fixed sentinel so the listing continues.
func (f *Formatter) FormatOwner(meta Metadata) string {
	if !meta.HasUID || f.identity == nil {
		return OwnerSentinel
	}
	name, err := f.identity.Lookup(meta.UID)
	if err != nil {
		return OwnerSentinel
	}
	return name
}

// FormatName styles an entry name, substituting a placeholder when the
// name is not valid UTF-8.
func FormatName(name string, isDir bool) Cell {
	if !utf8.ValidString(name) {
		name = NamePlaceholder
	}
	if isDir {
		return Cell{{Text: name, Style: StyleDir}}
	}
	return Cell{{Text: name, Style: StyleNeutral}}
}

// FormatModified renders a modification time as "day month hour:minute"
// with a space-padded day, e.g. "14 Jun 09:32". A zero time renders as
// the empty string.
func (f *Formatter) FormatModified(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(f.loc).Format("_2 Jan 15:04")
}

// FormatPermissions renders the classic ten-character permission string.
// The leading character marks directories; the nine bit positions follow
// in owner/group/other r,w,x order. Set bits in the owner triplet use the
// attention color for r and x and the danger color for w; set bits in the
// group and other triplets use the granted color; clear bits are muted.
func FormatPermissions(isDir bool, perm uint32) Cell {
	cell := make(Cell, 0, 10)
	if isDir {
		cell = append(cell, Span{Text: "d", Style: StyleDirMarker})
	} else {
		cell = append(cell, Span{Text: ".", Style: StyleNeutral})
	}
	for i, f := range permFlags {
		if perm&f.bit == 0 {
			cell = append(cell, Span{Text: "-", Style: StyleMuted})
			continue
		}
		style := StyleGranted
		if i < 3 {
			style = StyleAttention
			if f.ch == "w" {
				style = StyleDanger
			}
		}
		cell = append(cell, Span{Text: f.ch, Style: style})
	}
	return cell
}
