package application

import (
	"fmt"

	"github.com/dfryer1193/factsdaily/blog/domain"
)

// NextIndex advances the rotation cursor over n facts, wrapping to 0 after n-1.
// A lastIndex beyond the end of a shrunken list still wraps into range.
func NextIndex(lastIndex, n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("%w: no facts to rotate through", domain.ErrConfiguration)
	}
	if lastIndex < -1 {
		return 0, fmt.Errorf("%w: invalid last index %d", domain.ErrConfiguration, lastIndex)
	}

	return (lastIndex + 1) % n, nil
}

// PostTitle is the title shown on a post page.
func PostTitle(label string, index int) string {
	return fmt.Sprintf("%s #%d", label, index+1)
}
