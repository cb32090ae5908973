package apiclient

import "context"

// Mock is a canned payload for the mock short-circuit. It is either a static
// value or a producer invoked at call time; construct one with MockValue or
// MockProducer.
type Mock struct {
	value    any
	producer func(context.Context) (any, error)
}

// MockValue returns a Mock that yields v as the decoded body.
func MockValue(v any) *Mock {
	return &Mock{value: v}
}

// MockProducer returns a Mock that invokes fn at call time and uses its
// result as the decoded body. A producer error replaces the dispatch error.
func MockProducer(fn func(context.Context) (any, error)) *Mock {
	return &Mock{producer: fn}
}

func (m *Mock) resolve(ctx context.Context) (any, error) {
	if m.producer != nil {
		return m.producer(ctx)
	}
	return m.value, nil
}
