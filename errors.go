package layout

import (
	"errors"
	"fmt"
)

// ErrProtocol is wrapped by every panic raised for Begin/End misuse:
// unbalanced scopes, rectangle queries outside a scope, ending a group of
// the wrong kind, or a list view constructed without a renderer factory.
var ErrProtocol = errors.New("layout: protocol misuse")

// protocolPanic aborts the frame. Recovering would leave the active-group
// chain out of sync for the rest of the pass.
func protocolPanic(format string, args ...any) {
	panic(fmt.Errorf("%w: %s", ErrProtocol, fmt.Sprintf(format, args...)))
}
