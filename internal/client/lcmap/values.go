package lcmap

import (
	"fmt"
)

// Values is a nested key/value structure used for transport options, request fields
// and the final transport request.
type Values map[string]any

// DeepMerge merges maps left to right into a new Values; later maps win key-for-key.
// Nested maps are merged recursively, every other value is replaced wholesale.
// Inputs are never modified and nil inputs are skipped.
func DeepMerge(maps ...Values) Values {
	result := make(Values)

	for _, m := range maps {
		for key, value := range m {
			nested, isMap := asValues(value)
			if !isMap {
				result[key] = value

				continue
			}

			if existing, ok := asValues(result[key]); ok {
				result[key] = DeepMerge(existing, nested)
			} else {
				result[key] = DeepMerge(nested)
			}
		}
	}

	return result
}

// CombineHTTPOptions deep-merges transport options, headers, request fields
// and a trailing list of key/value pairs. Later arguments win on conflicting keys.
func CombineHTTPOptions(transportOpts, headers, request Values, keyValues ...any) (Values, error) {
	pairs, err := PairsToValues(keyValues...)
	if err != nil {
		return nil, err
	}

	return DeepMerge(transportOpts, headers, request, pairs), nil
}

// PairsToValues converts an alternating key/value list into Values.
func PairsToValues(keyValues ...any) (Values, error) {
	if len(keyValues)%2 != 0 {
		return nil, fmt.Errorf("%w: got %d", ErrOddKeyValues, len(keyValues))
	}

	values := make(Values, len(keyValues)/2)

	for i := 0; i < len(keyValues); i += 2 {
		key, ok := keyValues[i].(string)
		if !ok {
			return nil, fmt.Errorf("%w: %v (%T)", ErrNonStringKey, keyValues[i], keyValues[i])
		}

		values[key] = keyValues[i+1]
	}

	return values, nil
}

func asValues(v any) (Values, bool) {
	switch m := v.(type) {
	case Values:
		return m, true
	case map[string]any:
		return Values(m), true
	case Headers:
		return m.Values(), true
	case map[string]string:
		return Headers(m).Values(), true
	default:
		return nil, false
	}
}
