package easyterm

import "strconv"

// cast converts a raw command line token to the expected kind. The key is
// only used to name the offending option in error messages. Boolean values
// are handled by the caller, which also accepts the omitted-argument form.
func cast(expected kind, key, raw string) (any, error) {
	switch expected {
	case kindInt:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, errorf("wrong type for option -%s: %v", key, err)
		}
		return n, nil
	case kindFloat:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, errorf("wrong type for option -%s: %v", key, err)
		}
		return f, nil
	case kindString:
		return raw, nil
	}
	return nil, errorf("option -%s has unsupported type %s", key, expected)
}
