package viewcache

import (
	"fmt"
	"time"

	"github.com/ytget/yt-browser/internal/model"
)

// HomeID is the fixed identity of the singleton home instance
const HomeID = "home-0"

// ResolveID maps a descriptor at a stack position to a stable instance id.
// Resolution order:
//  1. the singleton kind always resolves to HomeID, regardless of position
//  2. a descriptor with a locator resolves to kind-locator, so the same
//     logical view revisited later reuses its instance
//  3. a locator-less, non-singleton descriptor gets a time-based id; such a
//     view is never reused and remounts fresh on every reconciliation
func ResolveID(desc model.ViewDescriptor, pos int) string {
	if desc.Kind.IsSingleton() {
		return HomeID
	}

	if desc.Locator != "" {
		return fmt.Sprintf("%s-%s", desc.Kind, desc.Locator)
	}

	return fmt.Sprintf("%s-%d-%d", desc.Kind, pos, time.Now().UnixNano())
}
