package host

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/arthur-debert/ensure/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ModuleName is reported in validation messages
const ModuleName = "ensure"

// Keys set by the runtime rather than the user
const (
	// WrapperKey wraps the arguments in new-style args files
	WrapperKey = "ANSIBLE_MODULE_ARGS"

	// CheckModeKey carries the implicit check mode flag
	CheckModeKey = "_ansible_check_mode"

	internalPrefix = "_ansible_"
)

// Argument types
const (
	TypeStr  = "str"
	TypeBool = "bool"
)

// ArgSpec describes one accepted argument
type ArgSpec struct {
	Type     string
	Required bool
}

// ArgumentSpec maps argument names to their spec
type ArgumentSpec map[string]ArgSpec

// ModuleArgs is the argument spec of the ensure module
var ModuleArgs = ArgumentSpec{
	"path":    {Type: TypeStr, Required: true},
	"content": {Type: TypeStr, Required: true},
}

// Params are validated module parameters
type Params struct {
	Path      string
	Content   string
	CheckMode bool
}

// LoadArgs decodes an args file. A document starting with "{" is JSON, as
// written by the runtime; anything else is YAML. YAML does not accept every
// JSON string escape ("\/", surrogate pairs), so JSON never goes through it.
func LoadArgs(r io.Reader) (map[string]interface{}, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrArgsInvalid, "failed to read args file")
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, errors.New(errors.ErrArgsInvalid, "args file is empty")
	}

	var raw map[string]interface{}
	if data[0] == '{' {
		decoder := json.NewDecoder(bytes.NewReader(data))
		// Keep number literals so 1 and 1.0 convert to different strings
		decoder.UseNumber()
		err = decoder.Decode(&raw)
	} else {
		err = yaml.Unmarshal(data, &raw)
	}
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrArgsInvalid, "failed to parse args file")
	}
	if raw == nil {
		return nil, errors.New(errors.ErrArgsInvalid, "args file is empty")
	}

	if wrapped, ok := raw[WrapperKey]; ok {
		inner, ok := wrapped.(map[string]interface{})
		if !ok {
			return nil, errors.Newf(errors.ErrArgsInvalid, "%s must be a mapping", WrapperKey)
		}
		return inner, nil
	}
	return raw, nil
}

// ValidateArgs checks raw arguments against ModuleArgs
func ValidateArgs(raw map[string]interface{}) (*Params, error) {
	values, err := ModuleArgs.Validate(raw)
	if err != nil {
		return nil, err
	}

	checkMode, err := toBool(raw[CheckModeKey])
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrArgsInvalid, "argument '%s' is not a boolean", CheckModeKey)
	}

	return &Params{
		Path:      values["path"].(string),
		Content:   values["content"].(string),
		CheckMode: checkMode,
	}, nil
}

// Validate converts raw values to their declared types. Runtime-internal
// keys are ignored; unknown keys, missing required keys and values that
// cannot be converted are reported together.
func (spec ArgumentSpec) Validate(raw map[string]interface{}) (map[string]interface{}, error) {
	var unsupported, missing, problems []string
	values := make(map[string]interface{}, len(spec))

	for key := range raw {
		if _, ok := spec[key]; !ok && !strings.HasPrefix(key, internalPrefix) {
			unsupported = append(unsupported, key)
		}
	}

	for name, arg := range spec {
		value, present := raw[name]
		if !present || value == nil {
			if arg.Required {
				missing = append(missing, name)
			}
			continue
		}
		converted, err := convert(arg.Type, value)
		if err != nil {
			problems = append(problems, fmt.Sprintf("argument '%s' %v", name, err))
			continue
		}
		values[name] = converted
	}

	sort.Strings(unsupported)
	sort.Strings(missing)
	sort.Strings(problems)

	var msgs []string
	if len(unsupported) > 0 {
		msgs = append(msgs, fmt.Sprintf("Unsupported parameters for (%s) module: %s. Supported parameters include: %s.",
			ModuleName, strings.Join(unsupported, ", "), strings.Join(spec.names(), ", ")))
	}
	if len(missing) > 0 {
		msgs = append(msgs, "missing required arguments: "+strings.Join(missing, ", "))
	}
	msgs = append(msgs, problems...)

	if len(msgs) > 0 {
		return nil, errors.New(errors.ErrInvalidInput, strings.Join(msgs, "; ")).
			WithDetail("missing", missing).
			WithDetail("unsupported", unsupported)
	}
	return values, nil
}

func (spec ArgumentSpec) names() []string {
	names := make([]string, 0, len(spec))
	for name := range spec {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func convert(typ string, value interface{}) (interface{}, error) {
	switch typ {
	case TypeStr:
		return toStr(value)
	case TypeBool:
		return toBool(value)
	default:
		return nil, fmt.Errorf("has unknown type %q", typ)
	}
}

// toStr accepts strings and converts other scalars, like the runtime does
func toStr(value interface{}) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case json.Number:
		return v.String(), nil
	case float64:
		return formatFloat(v), nil
	case int, int64, uint64:
		return fmt.Sprint(v), nil
	case bool:
		// The runtime stringifies booleans the Python way
		if v {
			return "True", nil
		}
		return "False", nil
	default:
		return "", fmt.Errorf("is of type %T and we were unable to convert to str", value)
	}
}

func toBool(value interface{}) (bool, error) {
	switch v := value.(type) {
	case nil:
		return false, nil
	case bool:
		return v, nil
	case string:
		switch strings.ToLower(v) {
		case "yes", "on", "y":
			return true, nil
		case "no", "off", "n":
			return false, nil
		}
		return strconv.ParseBool(v)
	case int:
		return v != 0, nil
	case json.Number:
		n, err := v.Float64()
		if err != nil {
			return false, err
		}
		return n != 0, nil
	default:
		return false, fmt.Errorf("cannot convert %T to bool", value)
	}
}

// formatFloat keeps a trailing ".0" on whole numbers, so 1.0 becomes "1.0"
func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if math.IsInf(v, 0) || math.IsNaN(v) || strings.ContainsAny(s, ".") {
		return s
	}
	return s + ".0"
}
