package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int

	UserInput    string // rendered user text input
	FilterInput  string // rendered filter text input
	FocusedField string // "user" or "filter"

	Items       []string
	Filtered    []string
	FilterText  string
	HasFilter   bool
	Placeholder string

	Source        string
	Loading       bool
	LastErr       string
	StatusMessage string
	StatusIsError bool
	ShowCount     bool

	HelpView string
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.renderTitle(state))
	content.WriteString("\n\n")

	content.WriteString(r.renderField("User:   ", state.UserInput, state.FocusedField == "user"))
	content.WriteString("\n")
	content.WriteString(r.renderField("Filter: ", state.FilterInput, state.FocusedField == "filter"))
	content.WriteString("\n")

	perList := r.itemsPerList(state.Height)
	maxWidth := r.itemWidth(state.Width)

	content.WriteString(r.styles.Section.Render(r.sectionTitle("Repositories", len(state.Items), state.ShowCount)))
	content.WriteString("\n")
	content.WriteString(r.renderItems(state.Items, "", state.Placeholder, perList, maxWidth, r.emptyListText(state)))
	content.WriteString("\n")

	content.WriteString(r.styles.Section.Render(r.sectionTitle("Filtered", len(state.Filtered), state.ShowCount && state.HasFilter)))
	content.WriteString("\n")
	if !state.HasFilter {
		content.WriteString(r.styles.Dim.Render("Type in the filter field to narrow the list."))
	} else {
		empty := fmt.Sprintf("No repositories contain %q.", state.FilterText)
		content.WriteString(r.renderItems(state.Filtered, state.FilterText, state.Placeholder, perList, maxWidth, empty))
	}
	content.WriteString("\n")

	content.WriteString(r.renderStatus(state))

	if state.HelpView != "" {
		content.WriteString("\n")
		content.WriteString(r.styles.Help.Render(state.HelpView))
	}

	mainStyle := r.styles.Main
	if state.Height > 0 {
		mainStyle = mainStyle.MaxHeight(state.Height)
	}
	return mainStyle.Render(content.String())
}

// renderTitle renders the logo with right-aligned loading and filter indicators
func (r *Renderer) renderTitle(state ViewState) string {
	logo := r.styles.Title.Render("repogrip")

	var right []string
	if state.Loading {
		spinner := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
		frame := int(time.Now().UnixMilli()/80) % len(spinner)
		right = append(right, r.styles.StatusLoading.Render(fmt.Sprintf("%s Loading %s", spinner[frame], state.Source)))
	}
	if state.HasFilter {
		right = append(right, r.styles.Filter.Render(fmt.Sprintf("[Filter: %s]", state.FilterText)))
	}
	if len(right) == 0 {
		return logo
	}

	rightContent := strings.Join(right, "  ")
	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80
	}
	// Account for main container padding
	paddingWidth := termWidth - 4 - lipgloss.Width(logo) - lipgloss.Width(rightContent)
	if paddingWidth < 2 {
		paddingWidth = 2
	}
	return logo + strings.Repeat(" ", paddingWidth) + rightContent
}

func (r *Renderer) renderField(label, input string, focused bool) string {
	style := r.styles.Label
	if focused {
		style = r.styles.FocusedLabel
	}
	return style.Render(label) + input
}

func (r *Renderer) sectionTitle(title string, count int, showCount bool) string {
	if !showCount {
		return title
	}
	return fmt.Sprintf("%s (%d)", title, count)
}

func (r *Renderer) emptyListText(state ViewState) string {
	switch {
	case state.Loading:
		return "Loading repositories..."
	case state.Source == "":
		return "Enter a GitHub user to list their repositories."
	default:
		return "No repositories."
	}
}

// itemsPerList splits the remaining height between the two lists
func (r *Renderer) itemsPerList(height int) int {
	if height <= 0 {
		return 10
	}
	// title, inputs, section headers, status, help and padding
	reserved := 14
	n := (height - reserved) / 2
	if n < 3 {
		n = 3
	}
	return n
}

// itemWidth is the room left for an item after padding and indent
func (r *Renderer) itemWidth(width int) int {
	if width <= 0 {
		return 0
	}
	w := width - 6
	if w < 10 {
		w = 10
	}
	return w
}

// renderItems renders up to limit items, highlighting the first occurrence of match.
// Items wider than maxWidth are cut with an ellipsis; 0 disables the cut.
func (r *Renderer) renderItems(items []string, match, placeholder string, limit, maxWidth int, empty string) string {
	if len(items) == 0 {
		return r.styles.Dim.Render(empty)
	}

	var lines []string
	for i, item := range items {
		if i == limit {
			lines = append(lines, r.styles.Dim.Render(fmt.Sprintf("  … and %d more (ctrl+o to view all)", len(items)-limit)))
			break
		}
		text := item
		if maxWidth > 0 && runewidth.StringWidth(text) > maxWidth {
			text = runewidth.Truncate(text, maxWidth, "…")
		}
		lines = append(lines, "  "+r.renderItem(text, item == placeholder, match))
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) renderItem(item string, isPlaceholder bool, match string) string {
	if isPlaceholder {
		return r.styles.Placeholder.Render(item)
	}
	if match == "" {
		return r.styles.Item.Render(item)
	}
	idx := strings.Index(item, match)
	if idx < 0 {
		return r.styles.Item.Render(item)
	}
	return item[:idx] + r.styles.Match.Render(item[idx:idx+len(match)]) + item[idx+len(match):]
}

func (r *Renderer) renderStatus(state ViewState) string {
	switch {
	case state.StatusMessage != "" && state.StatusIsError:
		return r.styles.StatusError.Render(state.StatusMessage)
	case state.StatusMessage != "":
		return r.styles.Status.Render(state.StatusMessage)
	case state.LastErr != "":
		return r.styles.StatusError.Render("Error: " + state.LastErr)
	default:
		return r.styles.Status.Render("")
	}
}

// PagerContent renders the full list for the pager
func PagerContent(title string, items []string) string {
	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n\n")
	if len(items) == 0 {
		b.WriteString("(no repositories)\n")
		return b.String()
	}
	WriteTable(&b, items)
	return b.String()
}
