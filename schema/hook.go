package schema

import (
	"errors"
	"fmt"
	"reflect"
	"runtime"
	"strings"

	"github.com/TwistingTwists/estructura/utils"
)

var (
	ErrIsNotAHook         = errors.New("provided function is not a recognizable hook")
	ErrHookIsNotAFunction = errors.New("provided hook is not a function")
)

// Hook is the normalized form of a per-field pipeline stage: it either
// accepts the value (possibly rewritten) or rejects it with a reason.
type Hook func(value any) (any, error)

var errType = reflect.TypeOf((*error)(nil)).Elem()

func isError(t reflect.Type) bool {
	return t.Implements(errType)
}

// ParseHook inspects the provided function and returns a normalized Hook.
//
// Supports interfaces:
//   - func(src Type) (dst Type)
//   - func(src Type) (dst Type, bool)
//   - func(src Type) (dst Type, error)
//
// Type may be any type, including any. Typed hooks receive their input
// converted when the dynamic type is assignable or numerically convertible
// to the parameter type, and reject the value otherwise.
func ParseHook(fn any) (Hook, error) {
	fnVal := reflect.ValueOf(fn)
	if !fnVal.IsValid() || fnVal.Kind() != reflect.Func {
		return nil, ErrHookIsNotAFunction
	}

	fnType := fnVal.Type()
	if fnType.NumIn() != 1 || fnType.NumOut() == 0 || fnType.NumOut() > 2 {
		return nil, ErrIsNotAHook
	}

	in := fnType.In(0)
	name := hookName(fnVal)

	var hasBool, hasErr bool

	if fnType.NumOut() == 2 {
		last := fnType.Out(1)

		switch {
		default:
			return nil, ErrIsNotAHook
		case last.Kind() == reflect.Bool:
			hasBool = true
		case isError(last):
			hasErr = true
		}
	}

	return func(v any) (any, error) {
		arg, err := conform(v, in, name)
		if err != nil {
			return nil, err
		}

		out := fnVal.Call([]reflect.Value{arg})

		if hasBool && !out[1].Bool() {
			return nil, fmt.Errorf("rejected by %s", name)
		}

		if hasErr {
			if e, _ := out[1].Interface().(error); e != nil {
				return nil, e
			}
		}

		return out[0].Interface(), nil
	}, nil
}

// hookName extracts a short display name for error messages.
func hookName(fnVal reflect.Value) string {
	fnPC := runtime.FuncForPC(fnVal.Pointer())
	if fnPC == nil {
		return "hook"
	}

	full := fnPC.Name()
	if i := strings.LastIndexByte(full, '/'); i >= 0 {
		full = full[i+1:]
	}

	_, name := utils.Unpack2(strings.SplitN(full, ".", 2))
	if name == "" {
		return full
	}

	return name
}

// conform prepares v for a call whose single parameter has type in.
func conform(v any, in reflect.Type, name string) (reflect.Value, error) {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		// Untyped nil input: only an interface parameter can receive it.
		if in.Kind() == reflect.Interface {
			return reflect.Zero(in), nil
		}

		return reflect.Value{}, fmt.Errorf("%s expects %s, got nil", name, in)
	}

	if rv.Type().AssignableTo(in) {
		return rv, nil
	}

	if isNumericKind(rv.Kind()) && isNumericKind(in.Kind()) {
		return rv.Convert(in), nil
	}

	return reflect.Value{}, fmt.Errorf("%s expects %s, got %T", name, in, v)
}

func isNumericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}
