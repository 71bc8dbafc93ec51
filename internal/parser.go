package internal

import (
	"strings"

	"go.uber.org/zap"
)

// Parse converts source into a component tree rooted at an Invalid-kind
// Component. initial is the DelimiterSet in force at the start of the
// scan: DefaultDelimiters() for a plain compile or a partial, the
// carried-over set when re-parsing section lambda output, or the custom
// set given to CompileWithDelimiters or an Engine built WithDelimiters.
func Parse(source string, initial Delimiters, logger *zap.Logger) (*Component, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Debug("mustache: parse start", zap.Int("length", len(source)))

	root := &Component{}
	sections := []*Component{root}
	sectionStarts := []int{}
	delim := initial
	pos := 0

	for pos < len(source) {
		idx := strings.Index(source[pos:], delim.Begin)
		if idx < 0 {
			appendChild(sections, NewTextComponent(source[pos:], pos))
			pos = len(source)
			break
		}
		ts := pos + idx
		if ts > pos {
			appendChild(sections, NewTextComponent(source[pos:ts], pos))
		}

		tcs := ts + len(delim.Begin)
		endMarker := delim.End
		isDefault := delim.Begin == "{{" && delim.End == "}}"
		tripleMustache := isDefault && tcs < len(source) && source[tcs] == '{' && tcs < len(source)-1
		if tripleMustache {
			endMarker = "}}}"
			tcs++
		}

		teIdx := strings.Index(source[tcs:], endMarker)
		if teIdx < 0 {
			return nil, newUnclosedTagError(ts)
		}
		te := tcs + teIdx

		raw := source[tcs:te]
		contents := Trim(raw)

		var tag Tag
		if contents != "" && contents[0] == '=' {
			begin, end, ok := parseSetDelimiterContents(contents)
			if !ok {
				return nil, newInvalidSetDelimiterError(ts)
			}
			delim = Delimiters{Begin: begin, End: end}
			snapshot := delim
			tag = Tag{Kind: KindSetDelimiter, Delims: &snapshot}
		} else if tripleMustache {
			tag = Tag{Kind: KindUnescapedVariable, Name: contents}
		} else {
			tag = classifyTag(contents)
		}

		comp := &Component{Tag: tag, Position: ts}
		appendChild(sections, comp)
		pos = te + len(endMarker)

		switch tag.Kind {
		case KindSectionBegin, KindSectionBeginInverted:
			sections = append(sections, comp)
			sectionStarts = append(sectionStarts, pos)
		case KindSectionEnd:
			if len(sections) == 1 {
				return nil, newUnopenedSectionError(tag.Name, ts)
			}
			top := sections[len(sections)-1]
			top.Tag.SectionText = source[sectionStarts[len(sectionStarts)-1]:ts]
			sections = sections[:len(sections)-1]
			sectionStarts = sectionStarts[:len(sectionStarts)-1]
		}
	}

	if err := closeSections(root); err != nil {
		return nil, err
	}

	logger.Debug("mustache: parse end", zap.Int("children", len(root.Children)))
	return root, nil
}

func appendChild(sections []*Component, child *Component) {
	top := sections[len(sections)-1]
	top.Children = append(top.Children, child)
}

// classifyTag determines a non-set-delimiter tag's kind and name from its
// trimmed contents.
func classifyTag(contents string) Tag {
	if contents == "" {
		return Tag{Kind: KindVariable, Name: ""}
	}
	sigil := contents[0]
	switch sigil {
	case '#':
		return Tag{Kind: KindSectionBegin, Name: Trim(contents[1:])}
	case '^':
		return Tag{Kind: KindSectionBeginInverted, Name: Trim(contents[1:])}
	case '/':
		return Tag{Kind: KindSectionEnd, Name: Trim(contents[1:])}
	case '>':
		return Tag{Kind: KindPartial, Name: Trim(contents[1:])}
	case '&':
		return Tag{Kind: KindUnescapedVariable, Name: Trim(contents[1:])}
	case '!':
		return Tag{Kind: KindComment, Name: Trim(contents[1:])}
	default:
		return Tag{Kind: KindVariable, Name: contents}
	}
}

// parseSetDelimiterContents parses "=<begin> <end>=" per §4.3.1.
func parseSetDelimiterContents(contents string) (begin, end string, ok bool) {
	if len(contents) < 5 {
		return "", "", false
	}
	if contents[len(contents)-1] != '=' {
		return "", "", false
	}
	inner := Trim(contents[1 : len(contents)-1])

	spaceIdx := strings.IndexAny(inner, " \t\r\n\v\f")
	if spaceIdx < 0 {
		return "", "", false
	}
	begin = inner[:spaceIdx]

	rest := inner[spaceIdx:]
	trimmed := strings.TrimLeft(rest, " \t\r\n\v\f")
	if trimmed == "" {
		return "", "", false
	}
	end = trimmed

	if begin == "" || end == "" {
		return "", "", false
	}
	if containsWhitespaceOrEquals(begin) || containsWhitespaceOrEquals(end) {
		return "", "", false
	}
	return begin, end, true
}

func containsWhitespaceOrEquals(s string) bool {
	return strings.ContainsAny(s, " \t\r\n\v\f=")
}

// closeSections walks the tree depth-first, verifying that every section
// tag's trailing child is a matching SectionEnd, then discards that
// trailing child (it has served its purpose as a closing marker).
func closeSections(comp *Component) error {
	for _, child := range comp.Children {
		if err := closeSections(child); err != nil {
			return err
		}
	}
	if comp.Tag.Kind != KindSectionBegin && comp.Tag.Kind != KindSectionBeginInverted {
		return nil
	}
	if len(comp.Children) == 0 {
		return newUnclosedSectionError(comp.Tag.Name, comp.Position)
	}
	last := comp.Children[len(comp.Children)-1]
	if last.Tag.Kind != KindSectionEnd || last.Tag.Name != comp.Tag.Name {
		return newUnclosedSectionError(comp.Tag.Name, comp.Position)
	}
	comp.Children = comp.Children[:len(comp.Children)-1]
	return nil
}
