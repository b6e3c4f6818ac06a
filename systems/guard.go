package systems

import (
	"log"

	"github.com/yohamta/donburi"
)

type eachable interface {
	Each(w donburi.World, callback func(*donburi.Entry))
}

// safeEach runs fn for every entry of c. A panicking entry is logged and
// skipped for this tick; the other entries still run.
func safeEach(w donburi.World, c eachable, fn func(*donburi.Entry)) {
	c.Each(w, func(e *donburi.Entry) {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("Warning: Skipping entity %v this tick: %v", e.Entity(), r)
			}
		}()
		fn(e)
	})
}
