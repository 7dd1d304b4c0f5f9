package main

import (
	"flag"
	"fmt"
	"os"

	"adboard/cmd/adboard-tui/ui"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	baseURL := flag.String("url", "http://127.0.0.1:8000", "adboard server base URL")
	flag.Parse()

	p := tea.NewProgram(ui.NewRootModel(*baseURL), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
