package compiler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/agentos-dev/agentos/internal/config"
	"github.com/agentos-dev/agentos/internal/profile"
)

// Mode selects how include references are treated at the call site.
type Mode int

const (
	// ModeReference leaves include markers in place for the consuming
	// runtime to resolve lazily.
	ModeReference Mode = iota

	// ModeEmbed inlines referenced fragment content directly into the
	// compiled output.
	ModeEmbed
)

// Compiler expands templates against one effective configuration. It is
// pure with respect to its inputs: the same template, config and mode
// always produce byte-identical output.
type Compiler struct {
	index *profile.Index
	cfg   *config.Effective
}

// New creates a Compiler over the given profile index and effective config.
func New(index *profile.Index, cfg *config.Effective) *Compiler {
	return &Compiler{index: index, cfg: cfg}
}

// Compile resolves and expands the template at the given profile-relative
// path.
func (c *Compiler) Compile(rel string, mode Mode) (string, error) {
	return c.compilePath(rel, mode, newIncludeStack())
}

// CompileText expands already-loaded template text. file names the source
// for error reporting. Includes are resolved through the profile index.
func (c *Compiler) CompileText(templateText, file string, mode Mode) (string, error) {
	nodes, err := parse(templateText, file)
	if err != nil {
		return "", err
	}
	return c.render(nodes, mode, newIncludeStack())
}

// includeStack tracks the chain of fragments currently being inlined so a
// fragment that transitively includes itself is reported as a cycle rather
// than looping. Membership is keyed by resolved source path; the ordered
// chain feeds the error message.
type includeStack struct {
	chain  []string
	active map[string]bool
}

func newIncludeStack() *includeStack {
	return &includeStack{active: make(map[string]bool)}
}

func (s *includeStack) push(resolved string) bool {
	if s.active[resolved] {
		return false
	}
	s.active[resolved] = true
	s.chain = append(s.chain, resolved)
	return true
}

func (s *includeStack) pop() {
	last := s.chain[len(s.chain)-1]
	delete(s.active, last)
	s.chain = s.chain[:len(s.chain)-1]
}

// compilePath resolves rel, guards against cycles, and renders the parsed
// template depth-first.
func (c *Compiler) compilePath(rel string, mode Mode, stack *includeStack) (string, error) {
	data, resolved, err := c.readInclude(rel)
	if err != nil {
		return "", err
	}

	if !stack.push(resolved) {
		return "", &CyclicIncludeError{
			Entry: stack.chain[0],
			Chain: append(append([]string{}, stack.chain...), resolved),
		}
	}
	defer stack.pop()

	nodes, err := parse(string(data), resolved)
	if err != nil {
		return "", err
	}
	return c.render(nodes, mode, stack)
}

// readInclude reads rel through the index, retrying with a .md suffix so
// markers may omit the extension.
func (c *Compiler) readInclude(rel string) ([]byte, string, error) {
	data, resolved, err := c.index.Read(rel)
	if errors.Is(err, profile.ErrTemplateNotFound) && !strings.Contains(rel, ".") {
		data, resolved, err = c.index.Read(rel + ".md")
	}
	return data, resolved, err
}

// render walks the parse tree and produces final text.
func (c *Compiler) render(nodes []node, mode Mode, stack *includeStack) (string, error) {
	var sb strings.Builder

	for _, n := range nodes {
		switch n := n.(type) {
		case literalNode:
			sb.WriteString(string(n))

		case *condNode:
			if c.cfg.Enabled(n.flag) == n.unless {
				continue
			}
			inner, err := c.render(n.children, mode, stack)
			if err != nil {
				return "", err
			}
			sb.WriteString(inner)

		case *includeNode:
			if mode != ModeEmbed {
				sb.WriteString(n.raw)
				continue
			}
			inlined, err := c.compilePath(n.path, mode, stack)
			if err != nil {
				return "", err
			}
			sb.WriteString(inlined)

		case *globNode:
			if mode != ModeEmbed {
				sb.WriteString(n.raw)
				continue
			}
			expanded, err := c.expandGlob(n.pattern, mode, stack)
			if err != nil {
				return "", err
			}
			sb.WriteString(expanded)

		default:
			return "", fmt.Errorf("compiler: unexpected node type %T", n)
		}
	}
	return sb.String(), nil
}

// expandGlob concatenates every matching standards file's compiled content
// in lexicographic order, each preceded by its path as a header line so the
// origin of injected content stays traceable.
func (c *Compiler) expandGlob(pattern string, mode Mode, stack *includeStack) (string, error) {
	matches, err := c.index.Glob(pattern)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for i, rel := range matches {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString("# " + rel + "\n\n")
		compiled, err := c.compilePath(rel, mode, stack)
		if err != nil {
			return "", err
		}
		sb.WriteString(strings.TrimRight(compiled, "\n"))
		sb.WriteString("\n")
	}
	return sb.String(), nil
}
