package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/handiism/recipe-browser/internal/controller"
	"github.com/handiism/recipe-browser/internal/model"
	"github.com/handiism/recipe-browser/internal/nav"
)

// previewLength is the number of instruction runes shown under a list row.
const previewLength = 60

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	recipeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8B500"))

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B"))

	chipStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#6C757D"))

	activeChipStyle = chipStyle.
			BorderForeground(lipgloss.Color("#FF6B6B")).
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	heartStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))
)

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("🍲 Recipe Browser"))
	b.WriteString("\n")

	if m.nav.Current().Route == nav.RecipeDetails {
		b.WriteString(m.viewDetail())
	} else {
		b.WriteString(m.viewHome())
	}

	b.WriteString("\n")
	if m.notice != nil {
		b.WriteString(renderNotice(*m.notice))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

func (m Model) viewHome() string {
	state := m.browse.State()
	var b strings.Builder

	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	b.WriteString(m.renderChips(state))
	b.WriteString("\n")

	switch {
	case state.IsLoading:
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
		b.WriteString(subtitleStyle.Render("Loading recipes..."))
		b.WriteString("\n")
	case len(state.Recipes) == 0:
		b.WriteString(dimStyle.Render("No recipes found."))
		b.WriteString("\n")
	default:
		b.WriteString(m.renderList(state.Recipes))
	}

	return b.String()
}

func (m Model) renderChips(state controller.BrowseState) string {
	chips := make([]string, 0, len(state.Categories))
	for i, c := range state.Categories {
		style := chipStyle
		if c.Name == state.SelectedCategory {
			style = activeChipStyle
		}
		label := c.Name
		if m.focus == FocusCategories && i == m.catCursor {
			label = "‹" + label + "›"
		}
		chips = append(chips, style.Render(label))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, chips...)
	if m.width > 0 && lipgloss.Width(row) > m.width {
		return lipgloss.NewStyle().MaxWidth(m.width).Render(row)
	}
	return row
}

func (m Model) renderList(recipes []model.Recipe) string {
	// Each row takes two lines. Keep the cursor in view.
	rows := 8
	if m.height > 0 {
		rows = max((m.height-14)/2, 3)
	}
	start := 0
	if m.cursor >= rows {
		start = m.cursor - rows + 1
	}
	end := min(start+rows, len(recipes))

	var b strings.Builder
	for i := start; i < end; i++ {
		r := recipes[i]
		prefix, nameStyle := "  ", recipeStyle
		if m.focus == FocusList && i == m.cursor {
			prefix, nameStyle = "> ", selectedStyle
		}
		b.WriteString(prefix + nameStyle.Render(r.Name))
		b.WriteString("\n")
		b.WriteString(dimStyle.Render(fmt.Sprintf("    Category: %s · %s", r.CategoryLabel(), r.Summary(previewLength))))
		b.WriteString("\n")
	}
	if len(recipes) > end-start {
		b.WriteString(dimStyle.Render(fmt.Sprintf("  %d/%d", m.cursor+1, len(recipes))))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) viewDetail() string {
	d := m.screens.detail
	if d == nil {
		return ""
	}
	state := d.State()
	switch {
	case state.IsLoading && state.Recipe == nil:
		return m.spinner.View() + " " + subtitleStyle.Render("Loading recipe...") + "\n"
	case state.Recipe == nil:
		return errorStyle.Render("Recipe not found.") + "\n"
	}
	return m.viewport.View() + "\n"
}

// renderRecipe lays out the detail screen body.
func renderRecipe(state controller.DetailState, preview string, width int) string {
	r := state.Recipe
	if r == nil {
		return ""
	}
	var b strings.Builder

	if preview != "" {
		b.WriteString(preview)
		b.WriteString("\n\n")
	}

	heart := "♡"
	if state.IsFavorite {
		heart = "♥"
	}
	b.WriteString(selectedStyle.Render(r.Name) + " " + heartStyle.Render(heart))
	b.WriteString("\n")
	meta := fmt.Sprintf("Category: %s", r.CategoryLabel())
	if r.Area != "" {
		meta += fmt.Sprintf(" | Area: %s", r.Area)
	}
	b.WriteString(infoStyle.Render(meta))
	b.WriteString("\n")
	if len(r.Tags) > 0 {
		b.WriteString(dimStyle.Render("Tags: " + strings.Join(r.Tags, ", ")))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("Ingredients"))
	b.WriteString("\n")
	for _, ing := range r.Ingredients {
		b.WriteString("- " + ing.String())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("Instructions"))
	b.WriteString("\n")
	body := lipgloss.NewStyle()
	if width > 4 {
		body = body.Width(width - 2)
	}
	b.WriteString(body.Render(strings.TrimSpace(r.Instructions)))
	b.WriteString("\n")

	if r.YouTube != "" {
		b.WriteString("\n" + dimStyle.Render("Video: "+r.YouTube))
	}
	if r.Source != "" {
		b.WriteString("\n" + dimStyle.Render("Source: "+r.Source))
	}
	return b.String()
}

func renderNotice(n controller.Notification) string {
	var style lipgloss.Style
	prefix := "›"
	switch n.Level {
	case controller.LevelError:
		style = errorStyle
		prefix = "✗"
	case controller.LevelSuccess:
		style = successStyle
		prefix = "✓"
	default:
		style = infoStyle
	}
	return style.Render(fmt.Sprintf("%s %s: %s", prefix, n.Title, n.Message))
}
