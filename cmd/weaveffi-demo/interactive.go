package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/weaveffi/weaveffi/abi"
	"github.com/weaveffi/weaveffi/codegen"
	"github.com/weaveffi/weaveffi/ir"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	funcStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type modelState int

const (
	stateSelectModule modelState = iota
	stateSelectFunc
	stateShowSignature
	stateInputOutDir
	stateGenerated
)

type interactiveModel struct {
	err          error
	api          *ir.Api
	idlFile      string
	outDir       string
	state        modelState
	modSelected  int
	funcSelected int
	genMessage   string
	outDirInput  textinput.Model
}

func newInteractiveModel(idlFile, outDir string, api *ir.Api) *interactiveModel {
	ti := textinput.New()
	ti.Placeholder = "./generated"
	ti.Prompt = "out dir: "
	ti.Width = 40
	return &interactiveModel{
		idlFile: idlFile, outDir: outDir, api: api,
		state: stateSelectModule, outDirInput: ti,
	}
}

func (m *interactiveModel) Init() tea.Cmd { return nil }

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.state == stateInputOutDir {
		return m.updateOutDirInput(keyMsg)
	}

	switch keyMsg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "up", "k":
		switch m.state {
		case stateSelectModule:
			if m.modSelected > 0 {
				m.modSelected--
			}
		case stateSelectFunc:
			if m.funcSelected > 0 {
				m.funcSelected--
			}
		}

	case "down", "j":
		switch m.state {
		case stateSelectModule:
			if m.modSelected < len(m.api.Modules)-1 {
				m.modSelected++
			}
		case stateSelectFunc:
			if m.funcSelected < len(m.currentModule().Functions)-1 {
				m.funcSelected++
			}
		}

	case "enter":
		switch m.state {
		case stateSelectModule:
			m.funcSelected = 0
			m.state = stateSelectFunc
		case stateSelectFunc:
			m.state = stateShowSignature
		case stateShowSignature, stateGenerated:
			m.state = stateSelectFunc
		}

	case "g":
		if m.state == stateSelectFunc || m.state == stateShowSignature {
			if m.outDir == "" {
				m.outDirInput.Focus()
				m.state = stateInputOutDir
			} else {
				m.generateAll()
			}
		}

	case "esc":
		switch m.state {
		case stateSelectFunc:
			m.state = stateSelectModule
		case stateShowSignature, stateGenerated:
			m.state = stateSelectFunc
		}
	}

	return m, nil
}

func (m *interactiveModel) updateOutDirInput(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "enter":
		m.outDir = m.outDirInput.Value()
		m.generateAll()
		return m, nil
	case "esc":
		m.state = stateSelectFunc
		return m, nil
	}
	var cmd tea.Cmd
	m.outDirInput, cmd = m.outDirInput.Update(keyMsg)
	return m, cmd
}

func (m *interactiveModel) currentModule() ir.Module {
	return m.api.Modules[m.modSelected]
}

func (m *interactiveModel) currentFunction() ir.Function {
	return m.currentModule().Functions[m.funcSelected]
}

func (m *interactiveModel) generateAll() {
	o := codegen.Default()
	if err := o.Run(m.api, m.outDir); err != nil {
		m.err = err
		m.state = stateGenerated
		return
	}
	m.err = nil
	m.genMessage = fmt.Sprintf("wrote %d target(s) to %s", len(o.Generators()), m.outDir)
	m.state = stateGenerated
}

func (m *interactiveModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("WeaveFFI Demo"))
	b.WriteString(" ")
	b.WriteString(m.idlFile)
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectModule:
		b.WriteString("Select a module:\n\n")
		for i, mod := range m.api.Modules {
			line := fmt.Sprintf("%s (%d functions)", mod.Name, len(mod.Functions))
			b.WriteString(renderRow(i == m.modSelected, line))
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter open • q quit"))

	case stateSelectFunc:
		mod := m.currentModule()
		b.WriteString(fmt.Sprintf("Module %s:\n\n", funcStyle.Render(mod.Name)))
		for i, f := range mod.Functions {
			b.WriteString(renderRow(i == m.funcSelected, formatFunc(f)))
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter signature • g generate all • esc back • q quit"))

	case stateShowSignature:
		mod := m.currentModule()
		f := m.currentFunction()
		sym := abi.SymbolName(mod.Name, f.Name)
		sig := abi.FunctionSignature(f)
		ret := abi.Return(f.Returns).CType
		b.WriteString(fmt.Sprintf("Signature of %s:\n\n", funcStyle.Render(f.Name)))
		b.WriteString(resultStyle.Render(fmt.Sprintf("%s %s(%s)", ret, sym, strings.Join(sig, ", "))))
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("g generate all • enter back to list • esc back"))

	case stateInputOutDir:
		b.WriteString("Where should generated bindings go?\n\n")
		b.WriteString(m.outDirInput.View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter confirm • esc cancel"))

	case stateGenerated:
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else {
			b.WriteString(resultStyle.Render(m.genMessage))
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter continue • q quit"))
	}

	return b.String()
}

func renderRow(selected bool, text string) string {
	cursor := "  "
	if selected {
		cursor = "> "
		return selectedStyle.Render(cursor+text) + "\n"
	}
	return cursor + text + "\n"
}

func formatFunc(f ir.Function) string {
	var params []string
	for _, p := range f.Params {
		params = append(params, p.Name+": "+typeStyle.Render(string(p.Ty)))
	}
	ret := ""
	if f.Returns != nil {
		ret = " -> " + typeStyle.Render(string(*f.Returns))
	}
	return funcStyle.Render(f.Name) + "(" + strings.Join(params, ", ") + ")" + ret
}

func runInteractive(idlFile, format, outDir string) error {
	api, err := loadAndValidate(idlFile, format)
	if err != nil {
		return err
	}
	if len(api.Modules) == 0 {
		return fmt.Errorf("API has no modules")
	}
	p := tea.NewProgram(newInteractiveModel(idlFile, outDir, api), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
