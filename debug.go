package arbor

import (
	"fmt"
	"os"
	"time"
)

// debugStats holds per-frame phase timings.
// Only populated when the running Scene is in debug mode.
type debugStats struct {
	frame          int
	updateTime     time.Duration
	nextUpdateTime time.Duration
	presentTime    time.Duration
	componentCount int
}

// debugLogFrame prints phase timings to stderr.
func debugLogFrame(stats debugStats) {
	total := stats.updateTime + stats.nextUpdateTime + stats.presentTime
	_, _ = fmt.Fprintf(os.Stderr,
		"[arbor] frame %d | update: %v | next: %v | present: %v | total: %v | components: %d\n",
		stats.frame, stats.updateTime, stats.nextUpdateTime, stats.presentTime, total, stats.componentCount)
}

// debugCheckDisposed panics with a descriptive message when a disposed object
// is used in a tree operation. Only called in debug mode.
func debugCheckDisposed(g *GameObject, op string) {
	if g.disposed {
		panic(fmt.Sprintf("arbor debug: %s on disposed object %q (ID %d)", op, g.Name, g.ID))
	}
}

// debugCheckTreeDepth warns on stderr if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(g *GameObject) {
	depth := 0
	for p := Parent(g); p != nil; {
		depth++
		obj, ok := p.(*GameObject)
		if !ok {
			break
		}
		p = obj.parent
	}
	if depth > debugMaxTreeDepth {
		_, _ = fmt.Fprintf(os.Stderr, "[arbor] warning: tree depth %d exceeds %d (object %s)\n",
			depth, debugMaxTreeDepth, g)
	}
}

// debugCheckChildCount warns on stderr if an object has more than 1000 children.
const debugMaxChildCount = 1000

func debugCheckChildCount(g *GameObject) {
	if len(g.children) > debugMaxChildCount {
		_, _ = fmt.Fprintf(os.Stderr, "[arbor] warning: object %s has %d children (threshold %d)\n",
			g, len(g.children), debugMaxChildCount)
	}
}
