package miner

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/impacta-labs/fieldpoint/constants"
	"github.com/impacta-labs/fieldpoint/internal/fields"
)

// Input types that are UI chrome, not data fields.
var chromeInputTypes = map[string]struct{}{
	"submit": {}, "button": {}, "reset": {}, "image": {},
}

// MineHTML extracts candidates from input/select/textarea/label elements.
// The markup only needs to be well-formed enough for tag-level parsing; a
// tag missing an expected attribute gets defaults and mining continues.
//
// Labels are applied in a second pass: a <label for="X"> with text renames
// and reclassifies the already-mined candidate whose control name or id
// matches X (case-insensitive); a bare <label> is evaluated as a standalone
// candidate.
func MineHTML(raw string) []Candidate {
	if !strings.Contains(raw, "<") {
		return nil
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return nil
	}

	var out []Candidate
	index := make(map[string]int) // control name/id -> candidate position

	register := func(sel *goquery.Selection, pos int) {
		for _, attr := range []string{"name", "id"} {
			if v := strings.ToLower(strings.TrimSpace(sel.AttrOr(attr, ""))); v != "" {
				if _, taken := index[v]; !taken {
					index[v] = pos
				}
			}
		}
	}

	doc.Find("input").Each(func(_ int, sel *goquery.Selection) {
		typeAttr := strings.ToLower(strings.TrimSpace(sel.AttrOr("type", "text")))
		if typeAttr == "" {
			typeAttr = "text"
		}
		if _, chrome := chromeInputTypes[typeAttr]; chrome {
			return
		}
		name := controlName(sel)
		placeholder := strings.TrimSpace(sel.AttrOr("placeholder", ""))
		if name == "" {
			name = placeholder
		}
		if name == "" {
			return
		}
		_, required := sel.Attr("required")
		out = append(out, Candidate{
			Name:        fields.Humanize(name),
			TypeHint:    typeAttr,
			Required:    required,
			Description: snippet(placeholder),
			Value:       placeholder,
			Source:      constants.SourceHTML,
		})
		register(sel, len(out)-1)
	})

	doc.Find("select").Each(func(_ int, sel *goquery.Selection) {
		name := controlName(sel)
		if name == "" {
			return
		}
		_, required := sel.Attr("required")
		out = append(out, Candidate{
			Name:               fields.Humanize(name),
			TypeHint:           "select",
			Required:           required,
			Source:             constants.SourceHTML,
			ComplexityOverride: selectComplexity(sel.Find("option").Length()),
		})
		register(sel, len(out)-1)
	})

	doc.Find("textarea").Each(func(_ int, sel *goquery.Selection) {
		name := controlName(sel)
		placeholder := strings.TrimSpace(sel.AttrOr("placeholder", ""))
		if name == "" {
			name = placeholder
		}
		if name == "" {
			return
		}
		_, required := sel.Attr("required")
		out = append(out, Candidate{
			Name:        fields.Humanize(name),
			TypeHint:    "textarea",
			Required:    required,
			Description: snippet(placeholder),
			Value:       placeholder,
			Source:      constants.SourceHTML,
		})
		register(sel, len(out)-1)
	})

	// Second pass: label overrides by lookup, then standalone labels.
	doc.Find("label").Each(func(_ int, sel *goquery.Selection) {
		text := strings.TrimSpace(sel.Text())
		if text == "" {
			return
		}
		required, display := fields.HasRequiredMarker(text)
		if display == "" {
			return
		}
		if forAttr := strings.ToLower(strings.TrimSpace(sel.AttrOr("for", ""))); forAttr != "" {
			if pos, ok := index[forAttr]; ok {
				out[pos].Name = display
				out[pos].Value = display
				if required {
					out[pos].Required = true
				}
			}
			return
		}
		if fields.IsLikelyFieldName(display) {
			out = append(out, Candidate{
				Name:     display,
				Required: required,
				Value:    text,
				Source:   constants.SourceHTMLLabel,
			})
		}
	})

	return out
}

func controlName(sel *goquery.Selection) string {
	if v := strings.TrimSpace(sel.AttrOr("name", "")); v != "" {
		return v
	}
	return strings.TrimSpace(sel.AttrOr("id", ""))
}

// selectComplexity rates a select by its option count instead of the generic
// type rule.
func selectComplexity(options int) constants.Complexity {
	switch {
	case options > 10:
		return constants.ComplexityHigh
	case options > 5:
		return constants.ComplexityAverage
	default:
		return constants.ComplexityLow
	}
}
