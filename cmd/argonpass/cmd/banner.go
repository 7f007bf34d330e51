package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/jmcleod/argonpass/crypto"
)

func printSecurityProfile(w io.Writer, timeCost, memoryKiB int) {
	r := lipgloss.NewRenderer(w)
	title := r.NewStyle().Bold(true).Foreground(lipgloss.Color("4"))
	hint := r.NewStyle().Faint(true)

	info := crypto.Classify(timeCost, memoryKiB)
	fmt.Fprintln(w, title.Render(fmt.Sprintf("Security profile: %s (time_cost=%d, memory=%dMB)", info.Name, timeCost, memoryKiB/1024)))
	fmt.Fprintln(w, hint.Render("Estimated wait: ~"+info.Estimate))
	fmt.Fprintln(w)
}
