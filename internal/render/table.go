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

package render

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/tushyagupta81/nuls/internal/listing"
)

// Column order is fixed: Permissions, Size, Owner, Name, Type, Modified.
const (
	colOwner = 2
	colType  = 4
)

// Table lays the records out as a rounded-border table with a centered,
// tinted header row. The Owner and Type columns carry their accent at the
// column level, independent of per-cell spans.
func (r *Renderer) Table(records []listing.Record) string {
	base := r.re.NewStyle().Padding(0, 1)
	header := base.Align(lipgloss.Center).Foreground(colorBrightGreen)
	owner := base.Foreground(colorBrightYellow)
	typ := base.Foreground(colorBlue)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(r.re.NewStyle()).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return header
			case col == colOwner:
				return owner
			case col == colType:
				return typ
			default:
				return base
			}
		}).
		Headers("Permissions", "Size", "Owner", "Name", "Type", "Modified")

	for _, rec := range records {
		t.Row(
			r.Permissions(rec.Permissions),
			r.Cell(rec.Size),
			rec.Owner,
			r.Cell(rec.Name),
			rec.Type.String(),
			rec.Modified,
		)
	}

	return t.String()
}
