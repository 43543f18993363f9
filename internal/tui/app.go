// Package tui provides the interactive Bubble Tea dashboard for findash.
package tui

import (
	"path/filepath"
	"strings"

	"findash/internal/budget"
	"findash/internal/chart"
	"findash/internal/config"
	"findash/internal/dataset"
	"findash/internal/pipeline"
	"findash/internal/store"
	"findash/internal/tui/components"
	"findash/internal/tui/theme"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// DataLoadedMsg is sent when a file finishes loading.
type DataLoadedMsg struct {
	Path    string
	Dataset *dataset.Dataset
}

// LoadFailedMsg is sent when a file fails to load. The session stays
// interactive; the error lands in the status bar.
type LoadFailedMsg struct {
	Err error
}

// App is the root Bubble Tea model.
type App struct {
	cfg      config.Config
	useCache bool

	// Data
	path    string
	ds      *dataset.Dataset
	loaded  bool
	loading bool
	loadErr string

	// Derived per load
	categories []string
	numeric    []string

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	// Per-tab state
	data     dataState
	charts   chartsState
	rec      recState
	settings settingsState

	// Open-file form (huh)
	openForm *huh.Form

	spinner spinner.Model
}

const minTerminalWidth = 60

// NewApp creates a new TUI app model. path may be empty; the open-file
// form is shown instead. Startup state is established here because Update
// and View operate on the model as constructed; Init only returns cmds.
func NewApp(path string, cfg config.Config, useCache bool) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent)

	a := App{
		cfg:      cfg,
		useCache: useCache,
		path:     path,
		spinner:  sp,
	}
	a.settings = newSettingsState(cfg)
	a.charts.chartType, _ = chart.ParseType(cfg.General.DefaultChartType)

	if path == "" {
		a.openForm = newOpenForm()
	} else {
		a.loading = true
	}
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	if a.openForm != nil {
		return tea.Batch(a.openForm.Init(), a.spinner.Tick)
	}
	return tea.Batch(loadCmd(a.path, a.useCache), a.spinner.Tick)
}

// recompute refreshes everything derived from the dataset.
func (a *App) recompute() {
	a.categories = budget.DetectCategories(a.ds)
	a.numeric = a.ds.NumericColumns()

	a.data = newDataState(a.ds, a.width, a.height)
	a.charts.reset(a.numeric)
	a.rec = recState{goal: a.cfg.Budget.SavingsGoal}
	a.rebuildChart()
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.loaded {
			a.data.resize(a.width, a.height)
		}
		return a, nil

	case DataLoadedMsg:
		a.loading = false
		a.loaded = true
		a.loadErr = ""
		a.path = msg.Path
		a.ds = msg.Dataset
		a.recompute()
		return a, nil

	case LoadFailedMsg:
		a.loading = false
		a.loadErr = msg.Err.Error()
		return a, nil

	case spinner.TickMsg:
		if a.loading || a.openForm != nil {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil

	case tea.KeyMsg:
		return a.updateKeys(msg)
	}

	// Everything else goes to the active form, if any.
	if a.openForm != nil {
		return a.updateOpenForm(msg)
	}
	return a, nil
}

func (a App) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return a, tea.Quit
	}

	// Open-file form intercepts all keys
	if a.openForm != nil {
		if key == "esc" && a.loaded {
			a.openForm = nil
			return a, nil
		}
		return a.updateOpenForm(msg)
	}

	if a.loading {
		return a, nil
	}

	if key == "?" {
		a.showHelp = !a.showHelp
		return a, nil
	}
	if a.showHelp {
		a.showHelp = false
		return a, nil
	}

	if key == "q" {
		return a, tea.Quit
	}

	// Open another file
	if key == "o" {
		a.openForm = newOpenForm()
		return a, a.openForm.Init()
	}

	if !a.loaded {
		return a, nil
	}

	// Tab shortcuts
	if len(key) == 1 {
		if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 {
			a.activeTab = idx
			return a, nil
		}
	}
	switch key {
	case "left":
		a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		return a, nil
	case "right", "tab":
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		return a, nil
	}

	switch a.activeTab {
	case 0:
		return a.updateDataTab(msg)
	case 1:
		return a.updateChartsTab(key)
	case 2:
		return a.updateRecTab(key)
	case 3:
		return a.updateSettingsTab(key)
	}
	return a, nil
}

func (a App) updateOpenForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.openForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.openForm = f
	}

	if a.openForm.State == huh.StateCompleted {
		path := strings.TrimSpace(a.openForm.GetString("path"))
		a.openForm = nil
		if path == "" {
			return a, nil
		}
		a.loading = true
		a.loadErr = ""
		return a, tea.Batch(loadCmd(path, a.useCache), a.spinner.Tick)
	}
	if a.openForm.State == huh.StateAborted {
		a.openForm = nil
		if !a.loaded {
			return a, tea.Quit
		}
		return a, nil
	}
	return a, cmd
}

// View implements tea.Model.
func (a App) View() string {
	if a.width > 0 && a.width < minTerminalWidth {
		return "\n  Terminal too narrow, resize to at least 60 columns.\n"
	}

	if a.openForm != nil {
		return a.viewOpenForm()
	}
	if a.loading {
		return a.viewLoading()
	}
	if a.showHelp {
		return a.viewHelp()
	}
	if !a.loaded {
		return a.viewEmpty()
	}

	var b strings.Builder
	b.WriteString(components.RenderTabBar(a.activeTab))
	b.WriteString("\n\n")

	switch a.activeTab {
	case 0:
		b.WriteString(a.viewDataTab())
	case 1:
		b.WriteString(a.viewChartsTab())
	case 2:
		b.WriteString(a.viewRecTab())
	case 3:
		b.WriteString(a.viewSettingsTab())
	}

	content := b.String()
	gap := a.height - lipgloss.Height(content) - 1
	for i := 0; i < gap; i++ {
		content += "\n"
	}
	content += components.RenderStatusBar(a.width, filepath.Base(a.path), a.loadErr)
	return content
}

func (a App) viewOpenForm() string {
	t := theme.Active
	title := lipgloss.NewStyle().Foreground(t.Accent).Bold(true).
		Render("  Smart Finance Dashboard")
	return "\n" + title + "\n\n" + a.openForm.View()
}

func (a App) viewLoading() string {
	t := theme.Active
	muted := lipgloss.NewStyle().Foreground(t.TextMuted)
	return "\n\n  " + a.spinner.View() + muted.Render(" Loading data...") + "\n"
}

func (a App) viewEmpty() string {
	t := theme.Active
	muted := lipgloss.NewStyle().Foreground(t.TextMuted)
	s := "\n\n" + muted.Render("  No dataset loaded. Press [o] to open a CSV or PDF file.") + "\n"
	if a.loadErr != "" {
		s += "\n" + lipgloss.NewStyle().Foreground(t.Red).Render("  ✗ "+a.loadErr) + "\n"
	}
	return s
}

func (a App) viewHelp() string {
	t := theme.Active
	key := lipgloss.NewStyle().Foreground(t.Accent)
	txt := lipgloss.NewStyle().Foreground(t.TextPrimary)

	lines := []struct{ k, desc string }{
		{"d / c / r / s", "switch tabs"},
		{"left / right", "cycle tabs"},
		{"o", "open a CSV or PDF file"},
		{"j / k", "move cursor"},
		{"space", "toggle priority category (Recommendations)"},
		{"t", "cycle chart type (Charts)"},
		{"x / y / z", "cycle axis columns (Charts)"},
		{"+ / -", "adjust savings goal"},
		{"q", "quit"},
	}

	var b strings.Builder
	b.WriteString("\n  ")
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(t.TextPrimary).Render("Keys"))
	b.WriteString("\n\n")
	for _, l := range lines {
		b.WriteString("  ")
		b.WriteString(key.Render(l.k))
		b.WriteString(strings.Repeat(" ", 16-len(l.k)))
		b.WriteString(txt.Render(l.desc))
		b.WriteString("\n")
	}
	b.WriteString("\n  Press any key to close.\n")
	return b.String()
}

func newOpenForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("path").
				Title("Upload CSV or PDF File").
				Description("Path to a .csv or .pdf file").
				Placeholder("statement.csv"),
		),
	).WithShowHelp(false)
}

// loadCmd runs the loading pipeline off the UI goroutine. The parse
// blocks (PDFs especially); the spinner covers it.
func loadCmd(path string, useCache bool) tea.Cmd {
	return func() tea.Msg {
		var cache *store.Cache
		if useCache {
			if c, err := store.Open(store.CachePath()); err == nil {
				defer c.Close()
				cache = c
			}
		}
		res, err := pipeline.Load(path, cache)
		if err != nil {
			return LoadFailedMsg{Err: err}
		}
		return DataLoadedMsg{Path: path, Dataset: res.Dataset}
	}
}
