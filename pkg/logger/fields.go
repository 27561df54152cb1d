package logger

// Detail is a piece of structured information attached to a log entry.
type Detail interface{ addTo(logEntry) }

func Field(key string, value any) Detail {
	return field{Key: key, Value: value}
}

type field struct {
	Key   string
	Value any
}

func (f field) addTo(e logEntry) {
	switch v := f.Value.(type) {
	case Fields:
		nested := make(logEntry)
		v.addTo(nested)
		e[f.Key] = nested
	default:
		e[f.Key] = v
	}
}

type Fields map[string]any

func (fields Fields) addTo(e logEntry) {
	for k, v := range fields {
		Field(k, v).addTo(e)
	}
}

// ErrField adds the error's message under the "error" key.
// A nil error adds nothing.
func ErrField(err error) Detail {
	if err == nil {
		return nullDetail{}
	}
	return Field("error", Fields{"message": err.Error()})
}

type logEntry map[string]any

func (le logEntry) addTo(e logEntry) { e.Merge(le) }

func (le logEntry) Merge(oth logEntry) logEntry {
	for k, v := range oth {
		le[k] = v
	}
	return le
}

type nullDetail struct{}

func (nullDetail) addTo(logEntry) {}
