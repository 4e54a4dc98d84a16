// Command vdpinspect is a terminal register/VRAM inspector for the
// tms9918 core, grounded in the teacher pack's only Bubble Tea
// debugger (github.com/newhook/6502, monitor/main.go): it drives a VDP
// through a scripted sequence of port writes, one step at a time, and
// shows the resulting register, status, and VRAM state with
// change highlighting between steps.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/user-none/go-chip-tms9918/tms9918"
)

// step is one scripted port event: a single byte written either to the
// address port (one half of a two-byte address/register write) or to
// the data port.
type step struct {
	kind string // "addr" or "data"
	b    byte
}

var (
	subtle    = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
	highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	changed   = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF6B6B"}

	titleStyle = lipgloss.NewStyle().Foreground(subtle).Padding(0, 1)

	infoStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(highlight).
			Padding(1).
			Width(34)

	memoryStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(highlight).
			Padding(1).
			Width(54)

	changedStyle = lipgloss.NewStyle().Foreground(changed).Bold(true)
)

type model struct {
	vdp   *tms9918.VDP
	steps []step
	pos   int

	lastRegisters [8]byte
	lastStatus    byte

	memAddress  uint16
	gotoInput   textinput.Model
	showingGoto bool
}

func newModel(steps []step) *model {
	ti := textinput.New()
	ti.Placeholder = "hex address (e.g. 0200)"
	ti.CharLimit = 4
	ti.Width = 10

	return &model{
		vdp:       tms9918.New(),
		steps:     steps,
		gotoInput: ti,
	}
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) snapshotBefore() {
	for i := 0; i < 8; i++ {
		m.lastRegisters[i] = m.vdp.Register(i)
	}
	m.lastStatus = m.vdp.StatusPeek()
}

func (m *model) applyStep(s step) {
	switch s.kind {
	case "addr":
		m.vdp.WriteAddress(s.b)
	case "data":
		m.vdp.WriteData(s.b)
	}
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showingGoto {
			switch msg.Type {
			case tea.KeyEnter:
				if addr, err := strconv.ParseUint(m.gotoInput.Value(), 16, 16); err == nil {
					m.memAddress = uint16(addr) & 0x3FFF
				}
				m.showingGoto = false
				return m, nil
			case tea.KeyEsc:
				m.showingGoto = false
				return m, nil
			}
			var cmd tea.Cmd
			m.gotoInput, cmd = m.gotoInput.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "s":
			if m.pos < len(m.steps) {
				m.snapshotBefore()
				m.applyStep(m.steps[m.pos])
				m.pos++
			}
		case "r":
			m.vdp.Reset()
			m.pos = 0
		case "g":
			m.showingGoto = true
			m.gotoInput.Focus()
			return m, textinput.Blink
		case "up":
			if m.memAddress >= 16 {
				m.memAddress -= 16
			}
		case "down":
			if m.memAddress <= tms9918.VRAMSize-16-1 {
				m.memAddress += 16
			}
		}
	}
	return m, nil
}

func (m *model) formatRegisters() string {
	var b strings.Builder
	for i := 0; i < 8; i++ {
		v := m.vdp.Register(i)
		line := fmt.Sprintf("R%d: $%02X", i, v)
		if v != m.lastRegisters[i] {
			line = changedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "\nMode: %s\n", m.vdp.Mode())
	fmt.Fprintf(&b, "Addr: $%04X (latched=%v)\n", m.vdp.Address(), m.vdp.AddressLatched())

	status := m.vdp.StatusPeek()
	statusLine := fmt.Sprintf("Status: $%02X (INT=%v 5S=%v COL=%v idx=%d)",
		status, status&0x80 != 0, status&0x40 != 0, status&0x20 != 0, status&0x1F)
	if status != m.lastStatus {
		statusLine = changedStyle.Render(statusLine)
	}
	b.WriteString(statusLine)

	return b.String()
}

func (m *model) formatVRAM() string {
	var b strings.Builder
	vram := m.vdp.VRAM()
	for row := 0; row < 12; row++ {
		addr := m.memAddress + uint16(row*16)
		if int(addr) >= len(vram) {
			break
		}
		fmt.Fprintf(&b, "$%04X: ", addr)
		for col := 0; col < 16; col++ {
			fmt.Fprintf(&b, "%02X ", vram[(int(addr)+col)&0x3FFF])
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m *model) View() string {
	registers := infoStyle.Render("Registers\n\n" + m.formatRegisters())
	memory := memoryStyle.Render(fmt.Sprintf("VRAM (g: goto, ↑↓: scroll)\n\n%s", m.formatVRAM()))

	help := titleStyle.Render(fmt.Sprintf(
		"step %d/%d — s: step • r: reset • g: goto • q: quit",
		m.pos, len(m.steps),
	))

	content := lipgloss.JoinHorizontal(lipgloss.Top, registers, memory)

	if m.showingGoto {
		dialog := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1).
			Width(30).
			Render("Go to VRAM address:\n\n" + m.gotoInput.View())
		return lipgloss.JoinVertical(lipgloss.Center, content, help, dialog)
	}

	return lipgloss.JoinVertical(lipgloss.Left, content, help)
}

// loadScript parses a script file of "addr:XX" / "data:XX" lines (hex
// bytes) into a step sequence. Blank lines and lines starting with '#'
// are ignored.
func loadScript(path string) ([]step, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("vdpinspect: opening script: %w", err)
	}
	defer f.Close()

	var steps []step
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, ":", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("vdpinspect: malformed script line %q", line)
		}
		n, err := strconv.ParseUint(strings.TrimSpace(parts[1]), 16, 8)
		if err != nil {
			return nil, fmt.Errorf("vdpinspect: bad byte in line %q: %w", line, err)
		}
		kind := strings.TrimSpace(parts[0])
		if kind != "addr" && kind != "data" {
			return nil, fmt.Errorf("vdpinspect: unknown step kind %q", kind)
		}
		steps = append(steps, step{kind: kind, b: byte(n)})
	}
	return steps, scanner.Err()
}

// defaultSteps produces a small procedural demonstration script when
// no -script file is given: it writes one Graphics I name table entry
// and then two R1 values so stepping through it is visually interesting.
func defaultSteps() []step {
	return []step{
		{"addr", 0x00}, {"addr", 0x00}, // address 0x0000
		{"data", 0x01}, // name table entry
		{"addr", 0x01}, {"addr", 0x81}, // R1 = 1 (sprite mag)
		{"addr", 0x40}, {"addr", 0x81}, // R1 = 0x40 (display enable)
	}
}

func main() {
	scriptPath := flag.String("script", "", "path to a step script (addr:XX / data:XX per line)")
	flag.Parse()

	steps := defaultSteps()
	if *scriptPath != "" {
		loaded, err := loadScript(*scriptPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		steps = loaded
	}

	p := tea.NewProgram(newModel(steps))
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "vdpinspect: %v\n", err)
		os.Exit(1)
	}
}
