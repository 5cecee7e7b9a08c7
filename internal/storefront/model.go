package storefront

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/01moynul/storefront/internal/models"
)

// Mode is the phase the storefront view is in.
type Mode int

const (
	ModeLoading Mode = iota
	ModeLoaded
	ModeFailed
)

// NoticeDuration is how long an add-to-cart acknowledgement stays on screen.
const NoticeDuration = 2500 * time.Millisecond

const failureMessage = "Failed to load products. Please try again later."

// ProductLister is what the view needs from the catalog.
type ProductLister interface {
	ListProducts(ctx context.Context) (*models.ProductList, error)
}

// Model is the bubbletea model of the terminal storefront.
type Model struct {
	mode     Mode
	lister   ProductLister
	timeout  time.Duration
	spinner  spinner.Model
	products []models.Product
	stats    Stats
	err      error
	cursor   int
	notice   string
	noticeID int
	width    int
}

// NewModel returns a storefront view that loads from lister.
// Each fetch is bounded by timeout when it is positive.
func NewModel(lister ProductLister, timeout time.Duration) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = titleStyle

	return Model{
		mode:    ModeLoading,
		lister:  lister,
		timeout: timeout,
		spinner: s,
		width:   100,
	}
}

// Messages
type productsLoadedMsg struct {
	products []models.Product
}

type productsFailedMsg struct {
	err error
}

type clearNoticeMsg struct {
	id int
}

// Commands
func fetchProductsCmd(lister ProductLister, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		list, err := lister.ListProducts(ctx)
		if err != nil {
			return productsFailedMsg{err: err}
		}
		return productsLoadedMsg{products: list.Products}
	}
}

func clearNoticeCmd(id int) tea.Cmd {
	return tea.Tick(NoticeDuration, func(time.Time) tea.Msg {
		return clearNoticeMsg{id: id}
	})
}

// Init issues the one fetch made on first render.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, fetchProductsCmd(m.lister, m.timeout))
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case productsLoadedMsg:
		m.mode = ModeLoaded
		m.products = msg.products
		m.stats = Summarize(msg.products)
		m.err = nil
		m.cursor = 0
		return m, nil

	case productsFailedMsg:
		m.mode = ModeFailed
		m.err = msg.err
		return m, nil

	case clearNoticeMsg:
		// Only the latest acknowledgement clears; older timers are stale.
		if msg.id == m.noticeID {
			m.notice = ""
		}
		return m, nil

	case spinner.TickMsg:
		if m.mode != ModeLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit

	case "r":
		if m.mode != ModeFailed {
			return m, nil
		}
		m.mode = ModeLoading
		m.err = nil
		return m, tea.Batch(m.spinner.Tick, fetchProductsCmd(m.lister, m.timeout))

	case "left", "h", "up", "k":
		if m.mode == ModeLoaded && m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "right", "l", "down", "j":
		if m.mode == ModeLoaded && m.cursor < len(m.products)-1 {
			m.cursor++
		}
		return m, nil

	case "a", "enter":
		if m.mode != ModeLoaded || len(m.products) == 0 {
			return m, nil
		}
		m.noticeID++
		m.notice = fmt.Sprintf("Added %q to cart!", m.products[m.cursor].Name)
		return m, clearNoticeCmd(m.noticeID)
	}

	return m, nil
}

// Mode reports the current phase.
func (m Model) Mode() Mode { return m.mode }

// Stats reports the aggregates of the last successful load.
func (m Model) Stats() Stats { return m.stats }

// Notice is the transient add-to-cart acknowledgement, if any.
func (m Model) Notice() string { return m.notice }

// Err is the error of the last failed load.
func (m Model) Err() error { return m.err }

// View renders the current phase.
func (m Model) View() string {
	switch m.mode {
	case ModeLoading:
		return boxStyle.Render(m.spinner.View() + " Loading products...")
	case ModeFailed:
		return m.failedView()
	default:
		return m.catalogView()
	}
}

func (m Model) failedView() string {
	var b strings.Builder
	b.WriteString(dangerStyle.Render("Oops! Something went wrong"))
	b.WriteString("\n\n")
	b.WriteString(failureMessage)
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render(formatKey("r", "try again") + " • " + formatKey("q", "quit")))
	return boxStyle.Render(b.String())
}

func (m Model) catalogView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("🛒 E-commerce Store"))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("Self-Healing Infrastructure Demo"))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		statView(fmt.Sprint(m.stats.TotalProducts), "Products"),
		" ",
		statView(fmt.Sprint(m.stats.Categories), "Categories"),
		" ",
		statView("⚡", "Auto-Scaling"),
	))
	b.WriteString("\n\n")

	if len(m.products) == 0 {
		b.WriteString(boxStyle.Render(dangerStyle.Render("No products found") + "\n\nThe store appears to be empty."))
	} else {
		b.WriteString(m.gridView())
	}

	if m.notice != "" {
		b.WriteString("\n\n")
		b.WriteString(noticeStyle.Render(m.notice))
	}

	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render(formatKey("←/→", "select") + " • " + formatKey("a", "add to cart") + " • " + formatKey("q", "quit")))
	return b.String()
}

func (m Model) gridView() string {
	perRow := m.width / (cardWidth + 4)
	if perRow < 1 {
		perRow = 1
	}

	var rows []string
	for start := 0; start < len(m.products); start += perRow {
		end := min(start+perRow, len(m.products))
		cards := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			cards = append(cards, cardView(m.products[i], i == m.cursor))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func statView(number, label string) string {
	return statStyle.Render(statNumberStyle.Render(number) + "\n" + mutedStyle.Render(label))
}

func cardView(p models.Product, selected bool) string {
	var b strings.Builder
	if p.CategoryName != nil {
		b.WriteString(categoryStyle.Render(strings.ToUpper(*p.CategoryName)))
	}
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(p.Name))
	b.WriteString("\n")
	if p.Description != nil {
		b.WriteString(mutedStyle.Render(*p.Description))
	}
	b.WriteString("\n")
	b.WriteString(priceStyle.Render(FormatPrice(p)))

	style := cardStyle
	if selected {
		style = selectedCardStyle
	}
	return style.Render(b.String())
}

// FormatPrice renders a product price the way the storefront shows it.
func FormatPrice(p models.Product) string {
	return "$" + p.Price.StringFixed(2)
}

func formatKey(key, desc string) string {
	return lipgloss.NewStyle().Foreground(colorPrimary).Render(key) + " " + desc
}
