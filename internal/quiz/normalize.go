package quiz

import (
	"encoding/json"
	"fmt"
)

// Normalize converts an untrusted candidate output into a QuestionSet.
//
// Accepted shapes:
//   - *QuestionSet / QuestionSet (already typed)
//   - map with a "questions" key holding a list of question objects
//   - a bare list of question objects
//   - string / []byte / json.RawMessage containing JSON in either of the
//     two shapes above
//
// Generators emit both the wrapped and the bare-list shape, so the
// top-level dispatch happens before any field-level validation.
//
// On failure the error is either *MalformedJSONError (text that is not
// JSON) or *SchemaViolationError (structure that is not a QuestionSet).
// Normalize is pure: it never mutates its input.
func Normalize(candidate any) (*QuestionSet, error) {
	switch v := candidate.(type) {
	case nil:
		return nil, &SchemaViolationError{Violations: []string{"candidate is nil"}}
	case *QuestionSet:
		if v == nil {
			return nil, &SchemaViolationError{Violations: []string{"candidate is nil"}}
		}
		if err := checkTyped(v); err != nil {
			return nil, err
		}
		return v, nil
	case QuestionSet:
		if err := checkTyped(&v); err != nil {
			return nil, err
		}
		return &v, nil
	case json.RawMessage:
		return normalizeText([]byte(v))
	case []byte:
		return normalizeText(v)
	case string:
		return normalizeText([]byte(v))
	case []map[string]any:
		items := make([]any, len(v))
		for i, m := range v {
			items[i] = m
		}
		return fromItems(items)
	default:
		return normalizeParsed(candidate)
	}
}

func normalizeText(raw []byte) (*QuestionSet, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, &MalformedJSONError{Err: err}
	}
	return normalizeParsed(parsed)
}

// normalizeParsed dispatches on the top-level shape of a decoded value.
func normalizeParsed(data any) (*QuestionSet, error) {
	switch v := data.(type) {
	case map[string]any:
		raw, ok := v["questions"]
		if !ok {
			return nil, &SchemaViolationError{Violations: []string{`missing required "questions" key`}}
		}
		items, ok := raw.([]any)
		if !ok {
			return nil, &SchemaViolationError{Violations: []string{`"questions" must be a list`}}
		}
		return fromItems(items)
	case []any:
		return fromItems(v)
	default:
		return nil, &SchemaViolationError{Violations: []string{
			fmt.Sprintf("candidate must be an object or a list, got %T", data),
		}}
	}
}

// fromItems builds a QuestionSet from a list of question objects,
// collecting every field-level violation instead of stopping at the first.
func fromItems(items []any) (*QuestionSet, error) {
	set := &QuestionSet{Questions: make([]Question, 0, len(items))}
	var violations []string

	for i, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			violations = append(violations, fmt.Sprintf("question %d is not an object", i))
			continue
		}
		q, errs := questionFromMap(i, m)
		if len(errs) > 0 {
			violations = append(violations, errs...)
			continue
		}
		set.Questions = append(set.Questions, q)
	}

	if len(violations) > 0 {
		return nil, &SchemaViolationError{Violations: violations}
	}
	return set, nil
}

func questionFromMap(i int, m map[string]any) (Question, []string) {
	var q Question
	var errs []string

	category, err := stringField(i, m, "category")
	if err != "" {
		errs = append(errs, err)
	}
	text, err := stringField(i, m, "question")
	if err != "" {
		errs = append(errs, err)
	} else if text == "" {
		errs = append(errs, fmt.Sprintf(`question %d: "question" is empty`, i))
	}
	answer, err := stringField(i, m, "answer")
	if err != "" {
		errs = append(errs, err)
	}

	rawOpts, ok := m["options"]
	if !ok {
		errs = append(errs, fmt.Sprintf(`question %d: missing field "options"`, i))
	} else if list, ok := rawOpts.([]any); !ok {
		errs = append(errs, fmt.Sprintf(`question %d: "options" must be a list`, i))
	} else if len(list) == 0 {
		errs = append(errs, fmt.Sprintf(`question %d: "options" is empty`, i))
	} else {
		for j, o := range list {
			s, ok := o.(string)
			if !ok {
				errs = append(errs, fmt.Sprintf("question %d: option %d is not a string", i, j))
				continue
			}
			q.Options = append(q.Options, s)
		}
	}

	q.Category = category
	q.Text = text
	q.Answer = answer
	return q, errs
}

func stringField(i int, m map[string]any, key string) (string, string) {
	raw, ok := m[key]
	if !ok {
		return "", fmt.Sprintf("question %d: missing field %q", i, key)
	}
	s, ok := raw.(string)
	if !ok {
		return "", fmt.Sprintf("question %d: %q must be a string", i, key)
	}
	return s, ""
}

// checkTyped validates an already-typed QuestionSet against the same
// field requirements applied to parsed JSON.
func checkTyped(set *QuestionSet) error {
	var violations []string
	for i, q := range set.Questions {
		if q.Text == "" {
			violations = append(violations, fmt.Sprintf(`question %d: "question" is empty`, i))
		}
		if len(q.Options) == 0 {
			violations = append(violations, fmt.Sprintf(`question %d: "options" is empty`, i))
		}
	}
	if len(violations) > 0 {
		return &SchemaViolationError{Violations: violations}
	}
	return nil
}
