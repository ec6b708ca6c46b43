package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/ziwei/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/ziwei/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/ziwei/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/ziwei/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/ziwei/internal/adapters/driving/tui/views/chart"
	"github.com/custodia-labs/ziwei/internal/core/domain"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports *Ports
	ctx   context.Context

	styles *styles.Styles
	keymap *keymap.KeyMap
	help   help.Model

	chartView *chart.View
	statusBar *status.Bar

	// input or chartID selects what Init loads; chartID wins when both are set.
	input   *domain.BirthInput
	chartID string

	showHelp bool
	err      error

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:     ports,
		ctx:       context.Background(),
		styles:    s,
		keymap:    km,
		help:      help.New(),
		chartView: chart.NewView(s, km),
		statusBar: status.NewBar(s, km),
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// WithInput makes the app build and show the chart for in.
func (a *App) WithInput(in domain.BirthInput) *App {
	a.input = &in
	return a
}

// WithSavedChart makes the app show the saved chart with the given ID.
func (a *App) WithSavedChart(id string) *App {
	a.chartID = id
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	a.statusBar.SetState(status.StateLoading)
	return tea.Batch(
		tea.SetWindowTitle("ziwei"),
		a.loadChart(),
	)
}

func (a *App) loadChart() tea.Cmd {
	ctx, svc := a.ctx, a.ports.Chart
	id, input := a.chartID, a.input

	return func() tea.Msg {
		switch {
		case id != "":
			saved, err := svc.Get(ctx, id)
			if err != nil {
				return messages.ChartLoaded{Err: err}
			}
			return messages.ChartLoaded{Chart: saved.Chart, Label: saved.Label}
		case input != nil:
			c, err := svc.Build(ctx, *input)
			return messages.ChartLoaded{Chart: c, Err: err}
		default:
			return messages.ChartLoaded{Err: ErrNoChart}
		}
	}
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case messages.ChartLoaded:
		if msg.Err != nil {
			a.err = msg.Err
			a.statusBar.SetState(status.StateError)
			a.statusBar.SetMessage(msg.Err.Error())
			return a, nil
		}
		a.err = nil
		a.chartView.SetChart(msg.Chart, msg.Label)
		a.statusBar.SetState(status.StateReady)
		a.statusBar.SetMessage(a.describe(a.chartView.Selected()))
		return a, nil

	case messages.SelectionChanged:
		a.statusBar.SetMessage(a.describe(msg.Branch))
		return a, nil

	case tea.KeyMsg:
		switch k := msg.String(); {
		case keymap.Matches(k, a.keymap.Quit):
			return a, tea.Quit
		case keymap.Matches(k, a.keymap.Help):
			a.showHelp = !a.showHelp
			a.help.ShowAll = a.showHelp
			return a, nil
		}

		var cmd tea.Cmd
		a.chartView, cmd = a.chartView.Update(msg)
		return a, cmd
	}

	return a, nil
}

// describe labels a branch for the status bar, e.g. "寅 命宮".
func (a *App) describe(b domain.Branch) string {
	c := a.chartView.Chart()
	if c == nil {
		return ""
	}
	pos := c.At(b)
	return fmt.Sprintf("%s %s", pos.Branch, pos.Palace)
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	var body string
	switch {
	case a.err != nil:
		body = a.styles.Error.Render(fmt.Sprintf("Could not load chart: %v", a.err))
	case a.chartView.Chart() == nil:
		body = a.styles.Muted.Render("Loading chart...")
	default:
		body = a.chartView.View()
	}

	parts := []string{a.styles.Title.Render("紫微斗數"), "", body}
	if a.showHelp {
		parts = append(parts, "", a.help.View(a.keymap))
	}
	parts = append(parts, "", a.statusBar.View())

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// Chart returns the displayed chart, or nil before it loads.
func (a *App) Chart() *domain.Chart {
	return a.chartView.Chart()
}

// Selected returns the branch under the cursor.
func (a *App) Selected() domain.Branch {
	return a.chartView.Selected()
}

// ShowHelp reports whether the full help is visible.
func (a *App) ShowHelp() bool {
	return a.showHelp
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been sized.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.statusBar.SetWidth(width)
	a.help.Width = width
}
