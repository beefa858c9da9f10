package main

import (
	"flag"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"logfunnel/internal/app"
	"logfunnel/internal/domain"
	"logfunnel/internal/infrastructure/mock"
	"logfunnel/internal/infrastructure/tail"
)

func main() {
	var test bool
	flag.BoolVar(&test, "test", false, "simulate traffic instead of reading logs from stdin")
	flag.Parse()

	var src domain.EventSource
	if test {
		src = mock.New()
	} else {
		src = tail.New(os.Stdin)
	}

	m := app.New(src)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		log.Fatal(err)
	}
}
