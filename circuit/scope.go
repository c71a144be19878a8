package circuit

import "strings"

// PushScope pushes a human-readable label attached to subsequently emitted
// constraints. Scopes are diagnostics only and carry no semantic weight.
func (c *Circuit) PushScope(name string) {
	c.scopes = append(c.scopes, name)
}

// PopScope removes the innermost scope. It panics if the stack is empty,
// which means an unbalanced push/pop in the caller.
func (c *Circuit) PopScope() {
	if len(c.scopes) == 0 {
		panic("circuit: PopScope on empty scope stack")
	}
	c.scopes = c.scopes[:len(c.scopes)-1]
}

// Scoped runs fn with name pushed on the scope stack. The scope is popped
// when fn returns, even if it returns an error or panics.
func (c *Circuit) Scoped(name string, fn func() error) error {
	c.PushScope(name)
	defer c.PopScope()
	return fn()
}

// ScopeDepth returns the current nesting depth of the scope stack.
func (c *Circuit) ScopeDepth() int {
	return len(c.scopes)
}

func (c *Circuit) scopePath() string {
	return strings.Join(c.scopes, "/")
}
