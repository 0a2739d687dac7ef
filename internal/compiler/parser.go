package compiler

import (
	"regexp"
	"strings"
)

// node is one element of a parsed template: literal text, a conditional
// block, or an include reference.
type node interface{}

// literalNode is a run of text emitted verbatim.
type literalNode string

// condNode is an IF or UNLESS block with its nested children.
type condNode struct {
	flag     string
	unless   bool
	children []node
}

// includeNode references a single fragment to inline. raw holds the
// original marker text so reference-mode compilation can leave it in place.
type includeNode struct {
	path string
	raw  string
}

// globNode references a glob-expanded bundle of standards files.
type globNode struct {
	pattern string
	raw     string
}

// markerPattern finds {{...}} markers. The inner text is matched lazily so
// adjacent markers on one line stay separate.
var markerPattern = regexp.MustCompile(`\{\{([^{}]*)\}\}`)

// flagToken matches a flag name in a block marker.
var flagToken = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// Include markers reference other profile subtrees. Workflow fragments and
// agent sub-templates are inlined one-to-one; standards support the glob
// form. Any other {{...}} marker is passed through verbatim for the
// consuming runtime.
const (
	workflowPrefix      = "workflows/"
	agentTemplatePrefix = "agents/templates/"
	standardsPrefix     = "standards/"
)

// parseFrame is one open conditional block during parsing.
type parseFrame struct {
	cond   *condNode
	marker string
	nodes  []node
}

// parse scans templateText left to right in a single pass, maintaining a
// stack for nested conditional blocks. file is used for error reporting only.
func parse(templateText, file string) ([]node, error) {
	var stack []parseFrame
	stack = append(stack, parseFrame{})

	appendNode := func(n node) {
		top := &stack[len(stack)-1]
		top.nodes = append(top.nodes, n)
	}

	pos := 0
	for _, loc := range markerPattern.FindAllStringSubmatchIndex(templateText, -1) {
		if loc[0] > pos {
			appendNode(literalNode(templateText[pos:loc[0]]))
		}
		pos = loc[1]

		raw := templateText[loc[0]:loc[1]]
		inner := strings.TrimSpace(templateText[loc[2]:loc[3]])

		switch {
		case strings.HasPrefix(inner, "IF ") || strings.HasPrefix(inner, "UNLESS "):
			unless := strings.HasPrefix(inner, "UNLESS ")
			flag := strings.TrimSpace(strings.TrimPrefix(strings.TrimPrefix(inner, "UNLESS"), "IF"))
			if !flagToken.MatchString(flag) {
				// Not a flag name we recognize; leave for the runtime.
				appendNode(literalNode(raw))
				continue
			}
			stack = append(stack, parseFrame{
				cond:   &condNode{flag: flag, unless: unless},
				marker: raw,
			})

		case strings.HasPrefix(inner, "ENDIF ") || strings.HasPrefix(inner, "ENDUNLESS "):
			unless := strings.HasPrefix(inner, "ENDUNLESS ")
			flag := strings.TrimSpace(strings.TrimPrefix(strings.TrimPrefix(inner, "ENDUNLESS"), "ENDIF"))
			if !flagToken.MatchString(flag) {
				appendNode(literalNode(raw))
				continue
			}
			if len(stack) == 1 {
				return nil, &MalformedTemplateError{File: file, Marker: raw, Reason: "closing marker without opener"}
			}
			top := stack[len(stack)-1]
			if top.cond.flag != flag || top.cond.unless != unless {
				return nil, &MalformedTemplateError{
					File:   file,
					Marker: raw,
					Reason: "closing marker does not match open block " + top.marker,
				}
			}
			stack = stack[:len(stack)-1]
			top.cond.children = top.nodes
			appendNode(top.cond)

		case strings.HasPrefix(inner, standardsPrefix) && strings.Contains(inner, "*"):
			appendNode(&globNode{pattern: inner, raw: raw})

		case strings.HasPrefix(inner, workflowPrefix), strings.HasPrefix(inner, agentTemplatePrefix):
			appendNode(&includeNode{path: inner, raw: raw})

		default:
			// Unrecognized marker: forward compatibility demands it pass
			// through untouched.
			appendNode(literalNode(raw))
		}
	}

	if pos < len(templateText) {
		appendNode(literalNode(templateText[pos:]))
	}

	if len(stack) > 1 {
		top := stack[len(stack)-1]
		return nil, &MalformedTemplateError{File: file, Marker: top.marker, Reason: "block never closed"}
	}
	return stack[0].nodes, nil
}
