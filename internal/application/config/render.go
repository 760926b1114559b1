package appconfig

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	configdomain "snowctl.dev/cli/internal/core/domain/config"
)

var (
	chainKeyStyle    = lipgloss.NewStyle().Bold(true)
	chainWinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	chainLoserStyle  = lipgloss.NewStyle().Faint(true)
	chainEmptyStyle  = lipgloss.NewStyle().Faint(true).Italic(true)
)

// PrintResolutionChain renders one key's provenance chain, highest priority
// first, marking the selected entry and naming the source that overrode each
// losing entry. A key with no history renders "no value found" rather than
// failing.
func (r *Resolver) PrintResolutionChain(w io.Writer, key string) {
	fmt.Fprintln(w, chainKeyStyle.Render(key))
	h := r.History(key)
	if h == nil || len(h.Entries) == 0 {
		if h != nil && h.DefaultUsed {
			fmt.Fprintf(w, "  %s\n", chainEmptyStyle.Render(fmt.Sprintf("no value found, default used: %v", h.FinalValue)))
			return
		}
		fmt.Fprintf(w, "  %s\n", chainEmptyStyle.Render("no value found"))
		return
	}
	for _, e := range h.Entries {
		fmt.Fprintf(w, "  %s\n", renderEntry(key, e))
	}
}

// PrintAllChains renders every key's chain from the most recent pass, keys
// sorted for stable output.
func (r *Resolver) PrintAllChains(w io.Writer) {
	histories := r.Histories()
	keys := make([]string, 0, len(histories))
	for k := range histories {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for i, k := range keys {
		if i > 0 {
			fmt.Fprintln(w)
		}
		r.PrintResolutionChain(w, k)
	}
}

func renderEntry(key string, e configdomain.ResolutionEntry) string {
	display := DisplayValue(key, e.Value.Raw())
	line := fmt.Sprintf("%s (%s): %s", e.Value.SourceName, e.Value.Priority, display)
	if e.WasUsed {
		return chainWinnerStyle.Render("* " + line + "  <- selected")
	}
	if e.OverriddenBy != "" {
		return chainLoserStyle.Render(fmt.Sprintf("  %s  (overridden by %s)", line, e.OverriddenBy))
	}
	return chainLoserStyle.Render("  " + line)
}

// DisplayValue masks secret-bearing keys in human-readable output. The
// export path keeps the real value; this is display-only hygiene.
func DisplayValue(key string, v interface{}) string {
	if isSecretKey(key) {
		return "****"
	}
	return fmt.Sprintf("%v", v)
}

func isSecretKey(key string) bool {
	lower := strings.ToLower(key)
	return strings.Contains(lower, "password") ||
		strings.Contains(lower, "token") ||
		strings.Contains(lower, "passcode") ||
		strings.Contains(lower, "private_key")
}
