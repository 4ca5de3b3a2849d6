package midiin

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/gomidi/connect"
	"github.com/sirupsen/logrus"
)

var (
	ErrNoInputPorts = errors.New("no midi input port found")
	ErrPortIndex    = errors.New("midi input port index out of range")
)

// Open opens input port index of drv and registers listener on it. The
// listener stays registered until the port is closed.
func Open(drv connect.Driver, index int, listener func(data []byte, deltaMicroseconds int64)) (connect.In, error) {
	ins, err := drv.Ins()
	if err != nil {
		return nil, fmt.Errorf("list midi inputs: %w", err)
	}
	if len(ins) == 0 {
		return nil, ErrNoInputPorts
	}
	if index < 0 || index >= len(ins) {
		return nil, fmt.Errorf("%w: %d (have %d)", ErrPortIndex, index, len(ins))
	}

	in := ins[index]
	name := in.String()
	if name == "" {
		return nil, fmt.Errorf("midi input %d has no name", index)
	}

	logrus.Infof("opening connection to %q", name)
	if err := in.Open(); err != nil {
		return nil, fmt.Errorf("open %q: %w", name, err)
	}
	if err := in.SetListener(listener); err != nil {
		in.Close()
		return nil, fmt.Errorf("listen on %q: %w", name, err)
	}
	logrus.Infof("connection open, reading input from %q", name)

	return in, nil
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	numberStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Width(5)
	nameStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
)

func PrintPort(w io.Writer, port connect.Port) {
	fmt.Fprintln(w, numberStyle.Render(fmt.Sprintf("[%d]", port.Number()))+nameStyle.Render(port.String()))
}

func PrintInPorts(w io.Writer, ports []connect.In) {
	fmt.Fprintln(w, headerStyle.Render("MIDI IN Ports"))
	if len(ports) == 0 {
		fmt.Fprintln(w, nameStyle.Render("(none)"))
	}
	for _, port := range ports {
		PrintPort(w, port)
	}
	fmt.Fprintln(w)
}
