// Package output renders hook configuration listings for the terminal.
package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lilhook/lilhook/internal/hookcfg"
	"github.com/lilhook/lilhook/internal/shared"
	"github.com/lilhook/lilhook/internal/store"
)

// ListRenderer formats providers and their hook entries. Listing order
// follows document order exactly.
type ListRenderer struct {
	headerStyle lipgloss.Style
	itemStyle   lipgloss.Style
	noteStyle   lipgloss.Style
	bulletStyle lipgloss.Style
	bullet      string
	indent      string
}

// NewListRenderer creates a list renderer with the shared palette.
func NewListRenderer() *ListRenderer {
	return &ListRenderer{
		headerStyle: shared.HeaderStyle,
		itemStyle:   shared.ItemStyle,
		noteStyle:   shared.SubtleStyle,
		bulletStyle: shared.BulletStyle,
		bullet:      "•",
		indent:      "  ",
	}
}

// NewPlainListRenderer creates a renderer without color, for pipes and
// scripts.
func NewPlainListRenderer() *ListRenderer {
	plain := lipgloss.NewStyle()
	return &ListRenderer{
		headerStyle: plain,
		itemStyle:   plain,
		noteStyle:   plain,
		bulletStyle: plain,
		bullet:      "•",
		indent:      "  ",
	}
}

// RenderConfig formats the document's providers and hook entries.
func (l *ListRenderer) RenderConfig(cfg *hookcfg.Config) string {
	var sb strings.Builder

	for _, repo := range cfg.Repos {
		sb.WriteString(l.headerStyle.Render(providerLabel(repo)))
		sb.WriteString("\n")

		if len(repo.Hooks) == 0 {
			sb.WriteString(l.indent)
			sb.WriteString(l.noteStyle.Render("(no hooks enabled)"))
			sb.WriteString("\n")
			continue
		}

		for _, hook := range repo.Hooks {
			sb.WriteString(l.indent)
			sb.WriteString(l.bulletStyle.Render(l.bullet))
			sb.WriteString(" ")
			sb.WriteString(l.itemStyle.Render(hook.DisplayName()))

			if note := hookNote(hook); note != "" {
				sb.WriteString(" ")
				sb.WriteString(l.noteStyle.Render(note))
			}
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

// RenderIndex formats provider index records from the cache store.
func (l *ListRenderer) RenderIndex(providers []store.Provider) string {
	var sb strings.Builder

	if len(providers) == 0 {
		sb.WriteString(l.noteStyle.Render("(index is empty)"))
		sb.WriteString("\n")
		return sb.String()
	}

	for _, p := range providers {
		sb.WriteString(l.indent)
		sb.WriteString(l.bulletStyle.Render(l.bullet))
		sb.WriteString(" ")
		sb.WriteString(l.itemStyle.Render(p.Source + "@" + p.Rev))
		sb.WriteString(" ")
		sb.WriteString(l.noteStyle.Render(
			fmt.Sprintf("→ %s (last used %s)", p.Path, p.LastUsed.Format("2006-01-02"))))
		sb.WriteString("\n")
	}

	return sb.String()
}

func providerLabel(repo hookcfg.Repo) string {
	if repo.IsLocal() {
		return "local"
	}
	return repo.Repo + " @ " + repo.Rev
}

// hookNote summarizes an entry's narrowing options in one bracketed chunk.
func hookNote(hook hookcfg.Hook) string {
	var parts []string

	if len(hook.Stages) > 0 {
		stages := make([]string, len(hook.Stages))
		for i, s := range hook.Stages {
			stages[i] = string(s)
		}
		parts = append(parts, "stages: "+strings.Join(stages, ","))
	}
	if len(hook.Types) > 0 {
		parts = append(parts, "types: "+strings.Join(hook.Types, ","))
	}
	if len(hook.Args) > 0 {
		parts = append(parts, "args: "+strings.Join(hook.Args, " "))
	}
	if hook.AlwaysRun {
		parts = append(parts, "always")
	}

	if len(parts) == 0 {
		return ""
	}
	return "[" + strings.Join(parts, "; ") + "]"
}
