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
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/tushyagupta81/nuls/internal/config"
	"github.com/tushyagupta81/nuls/internal/listing"
)

// ANSI palette indices for the semantic styles. Kept to the basic 16
// colors so output matches across terminals.
const (
	colorRed          = lipgloss.Color("1")
	colorGreen        = lipgloss.Color("2")
	colorBlue         = lipgloss.Color("4")
	colorCyan         = lipgloss.Color("6")
	colorWhite        = lipgloss.Color("7")
	colorBrightBlack  = lipgloss.Color("8")
	colorBrightRed    = lipgloss.Color("9")
	colorBrightGreen  = lipgloss.Color("10")
	colorBrightYellow = lipgloss.Color("11")
	colorBrightBlue   = lipgloss.Color("12")
)

// Renderer maps semantic style tags to terminal styling. All lipgloss
// styles hang off a renderer bound to the output writer, so writing to a
// non-terminal naturally drops the color codes.
type Renderer struct {
	re     *lipgloss.Renderer
	styles map[listing.Style]lipgloss.Style
	bold   lipgloss.Style
	err    lipgloss.Style
}

// New returns a Renderer for the given writer. ColorAuto defers to the
// renderer's own terminal detection; the other modes force a profile.
func New(w io.Writer, mode config.ColorMode) *Renderer {
	re := lipgloss.NewRenderer(w)
	switch mode {
	case config.ColorAlways:
		re.SetColorProfile(termenv.ANSI)
	case config.ColorNever:
		re.SetColorProfile(termenv.Ascii)
	}

	return &Renderer{
		re: re,
		styles: map[listing.Style]lipgloss.Style{
			listing.StyleNeutral:   re.NewStyle().Foreground(colorWhite),
			listing.StyleAttention: re.NewStyle().Foreground(colorBrightYellow),
			listing.StyleDanger:    re.NewStyle().Foreground(colorBrightRed),
			listing.StyleGranted:   re.NewStyle().Foreground(colorGreen),
			listing.StyleMuted:     re.NewStyle().Foreground(colorBrightBlack),
			listing.StyleInfo:      re.NewStyle().Foreground(colorCyan),
			listing.StyleDir:       re.NewStyle().Foreground(colorBlue).Bold(true),
			listing.StyleDirMarker: re.NewStyle().Foreground(colorBrightBlue),
		},
		bold: re.NewStyle().Bold(true),
		err:  re.NewStyle().Foreground(colorRed),
	}
}

// Cell renders a styled cell to a terminal string.
func (r *Renderer) Cell(c listing.Cell) string {
	var b strings.Builder
	for _, span := range c {
		b.WriteString(r.styles[span.Style].Render(span.Text))
	}
	return b.String()
}

// Permissions renders the permission cell with its overall bold wrap.
func (r *Renderer) Permissions(c listing.Cell) string {
	return r.bold.Render(r.Cell(c))
}

// Error renders a user-facing failure message.
func (r *Renderer) Error(msg string) string {
	return r.err.Render(msg)
}
