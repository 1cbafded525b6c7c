package display

import (
	"fmt"
	"io"
	"sort"

	"github.com/harrison/ccwrapped/internal/archetype"
)

// PrintArchetypes lists the catalog in evaluation order.
func PrintArchetypes(w io.Writer, colored bool) {
	p := newPalette(colored)
	for _, label := range archetype.Labels {
		info, _ := archetype.Lookup(label)
		fmt.Fprintf(w, "%s %s %s\n", info.Emoji, p.title.Sprint(info.Name), p.dim.Sprintf("(%s)", label))
		fmt.Fprintf(w, "   %s\n", info.ShortDescription)
	}
}

// PrintScores prints every scorer result, highest first, marking the winner.
// Equal scores keep evaluation order.
func PrintScores(w io.Writer, scores []archetype.Score, winner archetype.Label, colored bool) {
	p := newPalette(colored)
	ranked := make([]archetype.Score, len(scores))
	copy(ranked, scores)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	fmt.Fprintln(w, p.label.Sprint("ARCHETYPE SCORES"))
	for _, s := range ranked {
		line := fmt.Sprintf("  %-16s %6.1f", s.Label, s.Score)
		if s.Label == winner {
			fmt.Fprintln(w, p.accent.Sprint(line+"  <-"))
			continue
		}
		fmt.Fprintln(w, line)
	}
}
