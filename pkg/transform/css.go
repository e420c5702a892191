package transform

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/tdewolff/minify/v2"
	mincss "github.com/tdewolff/minify/v2/css"
)

// Processor implements CSSProcessor. Purging is token-based: a rule
// survives when any of its selector tokens (classes, ids, element
// names) appears in the combined HTML, or when a safelist entry
// matches. At-rules and their bodies are always kept.
type Processor struct {
	minifier *minify.M
}

// NewCSSProcessor creates the default CSS processor.
func NewCSSProcessor() *Processor {
	m := minify.New()
	m.AddFunc("text/css", mincss.Minify)
	return &Processor{minifier: m}
}

var (
	classToken = regexp.MustCompile(`\.(-?[_a-zA-Z][\w-]*)`)
	idToken    = regexp.MustCompile(`#(-?[_a-zA-Z][\w-]*)`)
	elemToken  = regexp.MustCompile(`(^|[\s>+~,])([a-zA-Z][\w-]*)`)
)

// Purge removes rules matching nothing in the HTML documents.
func (p *Processor) Purge(css string, htmlDocs []string, safelist []string) (string, error) {
	used, err := usedTokens(htmlDocs)
	if err != nil {
		return "", err
	}

	safe := make([]string, 0, len(safelist))
	for _, s := range safelist {
		safe = append(safe, strings.TrimPrefix(strings.TrimPrefix(s, "."), "#"))
	}

	var out strings.Builder
	for _, rule := range splitRules(css) {
		if rule.atRule || ruleUsed(rule.selector, used, safe) {
			out.WriteString(rule.text)
		}
	}
	return out.String(), nil
}

// Minify compacts the stylesheet.
func (p *Processor) Minify(css string) (string, error) {
	minified, err := p.minifier.String("text/css", css)
	if err != nil {
		return "", fmt.Errorf("failed to minify css: %w", err)
	}
	return minified, nil
}

// usedTokens collects every class, id, and element name present in
// the documents.
func usedTokens(htmlDocs []string) (map[string]bool, error) {
	used := map[string]bool{}
	for _, doc := range htmlDocs {
		parsed, err := goquery.NewDocumentFromReader(strings.NewReader(doc))
		if err != nil {
			return nil, fmt.Errorf("failed to parse html for purge analysis: %w", err)
		}
		parsed.Find("*").Each(func(_ int, sel *goquery.Selection) {
			for _, node := range sel.Nodes {
				used[strings.ToLower(node.Data)] = true
			}
			if classes, ok := sel.Attr("class"); ok {
				for _, c := range strings.Fields(classes) {
					used[c] = true
				}
			}
			if id, ok := sel.Attr("id"); ok && id != "" {
				used[id] = true
			}
		})
	}
	return used, nil
}

type cssRule struct {
	selector string
	text     string
	atRule   bool
}

// splitRules performs a shallow split of a stylesheet into rules,
// keeping at-rule blocks (@media, @font-face, @keyframes, …) intact.
func splitRules(css string) []cssRule {
	var rules []cssRule
	depth := 0
	start := 0
	selectorEnd := -1

	for i := 0; i < len(css); i++ {
		switch css[i] {
		case '{':
			if depth == 0 {
				selectorEnd = i
			}
			depth++
		case '}':
			depth--
			if depth == 0 {
				selector := strings.TrimSpace(css[start:selectorEnd])
				rules = append(rules, cssRule{
					selector: selector,
					text:     css[start : i+1],
					atRule:   strings.HasPrefix(selector, "@"),
				})
				start = i + 1
			}
		}
	}
	// Trailing content without a block (comments, stray text) passes through.
	if tail := strings.TrimSpace(css[start:]); tail != "" {
		rules = append(rules, cssRule{selector: tail, text: css[start:], atRule: true})
	}
	return rules
}

// ruleUsed reports whether any selector in a comma-separated selector
// list matches the used-token set or the safelist.
func ruleUsed(selector string, used map[string]bool, safelist []string) bool {
	for _, single := range strings.Split(selector, ",") {
		single = strings.TrimSpace(single)
		if single == "" {
			continue
		}
		if selectorUsed(single, used, safelist) {
			return true
		}
	}
	return false
}

func selectorUsed(selector string, used map[string]bool, safelist []string) bool {
	// Universal and pseudo-root selectors always survive.
	if strings.HasPrefix(selector, "*") || strings.HasPrefix(selector, ":") {
		return true
	}
	for _, safe := range safelist {
		if strings.Contains(selector, safe) {
			return true
		}
	}

	// Every compound part of the selector must be present for the rule
	// to apply; checking the last part keeps this conservative (any
	// match keeps the rule).
	for _, m := range classToken.FindAllStringSubmatch(selector, -1) {
		if used[m[1]] {
			return true
		}
	}
	for _, m := range idToken.FindAllStringSubmatch(selector, -1) {
		if used[m[1]] {
			return true
		}
	}
	for _, m := range elemToken.FindAllStringSubmatch(selector, -1) {
		if used[strings.ToLower(m[2])] {
			return true
		}
	}
	return false
}
