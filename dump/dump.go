// Package dump provides read-only display helpers for Instructions,
// cores and process queues. Every function returns a string once, for
// a log line or a test failure message; none of them own a terminal
// or a refresh loop.
package dump

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"github.com/dlowen/corewar/engine"
	"github.com/dlowen/corewar/redcode"
)

var (
	opcodeStyle  = lipgloss.NewStyle().Bold(true)
	currentStyle = lipgloss.NewStyle().Background(lipgloss.Color("#7D56F4")).Foreground(lipgloss.Color("#ffffff"))
	addressStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"})
)

// Instruction renders one instruction in Redcode surface syntax, e.g.
// "MOV.I $0, $1".
func Instruction(inst redcode.Instruction) string {
	return fmt.Sprintf("%s.%s %s%d, %s%d",
		opcodeStyle.Render(inst.Opcode.String()), inst.Modifier,
		inst.AMode.Prefix(), inst.AValue, inst.BMode.Prefix(), inst.BValue)
}

// Struct renders the full structural shape of an instruction, every
// field rather than just the surface syntax, for failure messages in
// tests that assert on structural equality (notably SEQ.I).
func Struct(inst redcode.Instruction) string {
	return spew.Sdump(inst)
}

// Core renders every cell of a core, one per line, prefixed with its
// address. Any index listed in highlight (typically the current pc of
// one or more warriors) is styled distinctly.
func Core(c *engine.Core, highlight ...int) string {
	hi := make(map[int]bool, len(highlight))
	for _, h := range highlight {
		hi[h] = true
	}

	var b strings.Builder
	for i := 0; i < c.CoreSize; i++ {
		addr := addressStyle.Render(fmt.Sprintf("%4d", i))
		line := fmt.Sprintf("%s  %s", addr, Instruction(c.At(i)))
		if hi[i] {
			line = currentStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

// Queue renders a warrior's live process PCs as a single-line FIFO,
// front first.
func Queue(w *engine.Warrior) string {
	pcs := make([]string, 0, w.Queue.Len())
	for _, pc := range w.Queue.Snapshot() {
		pcs = append(pcs, fmt.Sprintf("%d", pc))
	}
	return fmt.Sprintf("%s: [%s]", w.Name, strings.Join(pcs, ", "))
}
