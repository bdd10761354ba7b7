package diag

import (
	"reflect"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"testing"

	"flint/internal/source"
)

var codePattern = regexp.MustCompile(`^E\d{3}$`)

// fillEvidence builds a copy of zero with every evidence field set to a
// distinct non-zero value, so templates that interpolate fields have
// something to chew on.
func fillEvidence(t *testing.T, zero Diag) Diag {
	t.Helper()
	v := reflect.New(reflect.TypeOf(zero)).Elem()
	for i := 0; i < v.NumField(); i++ {
		f := v.Field(i)
		start := uint32(10 * (i + 1))
		switch f.Interface().(type) {
		case source.Span:
			f.Set(reflect.ValueOf(source.Span{Start: start, End: start + 3}))
		case source.Ident:
			f.Set(reflect.ValueOf(source.Ident{Start: start, End: start + 3}))
		case StatementKind:
			f.Set(reflect.ValueOf(StmtForLoop))
		case byte:
			f.Set(reflect.ValueOf(byte('a' + i)))
		default:
			t.Fatalf("%T.%s: unsupported evidence type %s",
				zero, v.Type().Field(i).Name, f.Type())
		}
	}
	return v.Interface().(Diag)
}

// fieldIsBound reports whether a variant field reaches the message: either
// verbatim as a part argument, or as one end of a derived span argument
// (Span.To combines the begin of one field with the end of another).
// fillEvidence gives every field a distinct sentinel range, so matching an
// argument's Start or End identifies the contributing field exactly.
func fieldIsBound(field any, parts []MessagePart) bool {
	fs, spanLike := sentinelSpan(field)
	for _, p := range parts {
		for _, arg := range p.Args {
			if arg == field {
				return true
			}
			if !spanLike {
				continue
			}
			if as, ok := sentinelSpan(arg); ok && (as.Start == fs.Start || as.End == fs.End) {
				return true
			}
		}
	}
	return false
}

func sentinelSpan(v any) (source.Span, bool) {
	switch sv := v.(type) {
	case source.Span:
		return sv, true
	case source.Ident:
		return sv.Span(), true
	}
	return source.Span{}, false
}

type placeholderRef struct {
	index     int
	directive string
}

func placeholderRefs(t *testing.T, template string) []placeholderRef {
	t.Helper()
	var out []placeholderRef
	for i := 0; i < len(template); i++ {
		if template[i] != '{' {
			continue
		}
		if i+1 < len(template) && template[i+1] == '{' {
			i++
			continue
		}
		end := strings.IndexByte(template[i:], '}')
		if end < 0 {
			t.Errorf("template %q has an unterminated placeholder", template)
			return out
		}
		ref := template[i+1 : i+end]
		numText, directive, _ := strings.Cut(ref, ":")
		n, err := strconv.Atoi(numText)
		if err != nil {
			t.Errorf("template %q has a malformed placeholder {%s}", template, ref)
		} else {
			out = append(out, placeholderRef{index: n, directive: directive})
		}
		i += end
	}
	return out
}

func TestCatalogDefinitions(t *testing.T) {
	if TypeCount != 160 {
		t.Fatalf("TypeCount = %d, want 160", TypeCount)
	}
	seenCodes := make(map[Code]string, TypeCount)
	for _, zero := range All() {
		name := reflect.TypeOf(zero).Name()
		t.Run(name, func(t *testing.T) {
			code := zero.Code()
			if !codePattern.MatchString(string(code)) {
				t.Errorf("code %q does not match E###", code)
			}
			if prev, dup := seenCodes[code]; dup {
				t.Errorf("code %q reused by %s and %s", code, prev, name)
			}
			seenCodes[code] = name
			if _, err := code.Num(); err != nil {
				t.Errorf("Num() error: %v", err)
			}
			got, ok := ByCode(code)
			if !ok || reflect.TypeOf(got) != reflect.TypeOf(zero) {
				t.Errorf("ByCode(%q) = %T, %v; want %s", code, got, ok, name)
			}

			d := fillEvidence(t, zero)
			var b MessageBuilder
			d.Message(&b)
			parts := b.Parts()
			if len(parts) == 0 {
				t.Fatal("Message() produced no parts")
			}
			if sev := parts[0].Severity; sev != SevError && sev != SevWarning {
				t.Errorf("first part severity = %v, want error or warning", sev)
			}
			for pi, p := range parts {
				if pi > 0 && p.Severity != SevNote {
					t.Errorf("part %d severity = %v, want note", pi, p.Severity)
				}
				if p.Template == "" {
					t.Errorf("part %d has an empty template", pi)
				}
				if len(p.Args) == 0 {
					t.Errorf("part %d has no arguments", pi)
					continue
				}
				switch p.Args[0].(type) {
				case source.Span, source.Ident:
				default:
					t.Errorf("part %d: first argument is %T, want a span or identifier", pi, p.Args[0])
				}
				if _, spanOK := partSpan(p); !spanOK {
					t.Errorf("part %d has no locatable argument", pi)
				}
				for _, ref := range placeholderRefs(t, p.Template) {
					if ref.index >= len(p.Args) {
						t.Errorf("part %d references {%d} but has %d arguments", pi, ref.index, len(p.Args))
						continue
					}
					if ref.directive == "" {
						continue
					}
					if ref.directive != "headlinese" && ref.directive != "singular" {
						t.Errorf("part %d uses unknown directive %q", pi, ref.directive)
					}
					if _, isKind := p.Args[ref.index].(StatementKind); !isKind {
						t.Errorf("part %d applies %q to %T, want a statement kind", pi, ref.directive, p.Args[ref.index])
					}
				}
			}

			v := reflect.ValueOf(d)
			for fi := 0; fi < v.NumField(); fi++ {
				if !fieldIsBound(v.Field(fi).Interface(), parts) {
					t.Errorf("field %s is not bound to any message argument", v.Type().Field(fi).Name)
				}
			}
		})
	}
}

func TestAllTemplates(t *testing.T) {
	templates := AllTemplates()
	if len(templates) == 0 {
		t.Fatal("AllTemplates() is empty")
	}
	if !sort.StringsAreSorted(templates) {
		t.Error("AllTemplates() is not sorted")
	}
	found := false
	for _, tmpl := range templates {
		if tmpl == "unclosed string literal" {
			found = true
			break
		}
	}
	if !found {
		t.Error(`AllTemplates() is missing "unclosed string literal"`)
	}
}
