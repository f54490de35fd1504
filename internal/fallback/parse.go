package fallback

import (
	"encoding/json"
	"regexp"
	"strings"
)

// The assistant is instructed to reply with a single JSON object, but the
// contract is not guaranteed. Parsing runs as an ordered chain of
// strategies: strict parse, balanced-object extraction, heuristic repair,
// then a minimal record salvaged from the raw text. The chain never fails.

const maxExcerptRunes = 300

var (
	bareValueRe   = regexp.MustCompile(`("[^"]*"\s*:\s*)([^"{\[\d\-\s][^,\n}]*)`)
	trailingComma = regexp.MustCompile(`,\s*([}\]])`)
	urlRe         = regexp.MustCompile(`https?://[^\s"'\\]+`)
)

// guess mirrors the six-field object the prompt demands. Nulls are allowed
// for unknown fields; key_people entries may be objects with a name field or
// plain strings.
type guess struct {
	Website     *string           `json:"website"`
	Description *string           `json:"description"`
	Sector      *string           `json:"sector"`
	HQLocation  *string           `json:"hq_location"`
	KeyPeople   []json.RawMessage `json:"key_people"`
	Competitors []json.RawMessage `json:"competitors"`
}

// ParseProfile turns a raw assistant reply into a best-effort Profile. It
// never returns an error; when no structured data survives the chain it
// degrades to the first URL-looking substring plus a truncated excerpt of
// the reply.
func ParseProfile(raw string) *Profile {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	if g, ok := parseStrict(raw); ok {
		return g.toProfile()
	}
	if blob, ok := extractObject(raw); ok {
		if g, ok := parseStrict(blob); ok {
			return g.toProfile()
		}
		if g, ok := parseStrict(repair(blob)); ok {
			return g.toProfile()
		}
	}
	return minimalProfile(raw)
}

func parseStrict(blob string) (*guess, bool) {
	var g guess
	if err := json.Unmarshal([]byte(blob), &g); err != nil {
		return nil, false
	}
	return &g, true
}

// extractObject returns the first balanced {...} substring of raw.
func extractObject(raw string) (string, bool) {
	start := strings.IndexByte(raw, '{')
	if start < 0 {
		return "", false
	}
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(raw); i++ {
		ch := raw[i]
		switch {
		case escaped:
			escaped = false
		case ch == '\\' && inString:
			escaped = true
		case ch == '"':
			inString = !inString
		case inString:
		case ch == '{':
			depth++
		case ch == '}':
			depth--
			if depth == 0 {
				return raw[start : i+1], true
			}
		}
	}
	return "", false
}

// repair quotes bare-word field values and strips trailing commas before
// closing brackets, the two malformations assistants produce most often.
func repair(blob string) string {
	blob = bareValueRe.ReplaceAllStringFunc(blob, func(m string) string {
		sub := bareValueRe.FindStringSubmatch(m)
		return sub[1] + `"` + strings.TrimSpace(sub[2]) + `"`
	})
	return trailingComma.ReplaceAllString(blob, "$1")
}

// minimalProfile salvages a record from unstructured text: the first URL (or
// nothing) and a truncated, ellipsis-marked excerpt as the description.
func minimalProfile(raw string) *Profile {
	p := &Profile{
		Website:     urlRe.FindString(raw),
		Description: excerpt(raw),
	}
	if p.Empty() {
		return nil
	}
	return p
}

func excerpt(raw string) string {
	runes := []rune(raw)
	if len(runes) <= maxExcerptRunes {
		return raw
	}
	return string(runes[:maxExcerptRunes]) + "…"
}

func (g *guess) toProfile() *Profile {
	p := &Profile{
		Website:     deref(g.Website),
		Description: deref(g.Description),
		Sector:      deref(g.Sector),
		HQLocation:  deref(g.HQLocation),
	}
	for _, rawPerson := range g.KeyPeople {
		if name := personName(rawPerson); name != "" {
			p.KeyPeople = append(p.KeyPeople, name)
		}
	}
	if p.Empty() {
		return nil
	}
	return p
}

// personName accepts either a plain string or an object with a name field.
func personName(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}
	var obj struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil {
		return strings.TrimSpace(obj.Name)
	}
	return ""
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}
