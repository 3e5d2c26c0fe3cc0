package repository

import (
	"fmt"
	"reflect"
	"slices"

	"github.com/bytedance/sonic"
	errorvalues "github.com/limbo/lifeboard/internal/error_values"
)

// NormalizePatch turns a decoded JSON object into a Patch with values typed
// the way the table's columns are, so both backends receive the same input.
func NormalizePatch[T any](tbl *Table[T], raw map[string]any) (Patch, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: nothing to update", errorvalues.ErrInvalidPatch)
	}
	for key := range raw {
		if !tbl.hasColumn(key) {
			return nil, fmt.Errorf("%w: %s.%s", errorvalues.ErrUnknownColumn, tbl.Name, key)
		}
	}
	data, err := sonic.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errorvalues.ErrInvalidPatch, err)
	}
	var typed T
	if err = sonic.Unmarshal(data, &typed); err != nil {
		return nil, fmt.Errorf("%w: %s", errorvalues.ErrInvalidPatch, err)
	}
	patch := make(Patch, len(raw))
	for key := range raw {
		v, _ := tbl.value(&typed, key)
		patch[key] = v
	}
	return patch, nil
}

// ApplyPatch writes patch onto row in place.
func ApplyPatch[T any](tbl *Table[T], row *T, patch Patch) error {
	fields := tbl.Fields(row)
	for key, v := range patch {
		i := slices.Index(tbl.Columns, key)
		if i < 0 {
			return fmt.Errorf("%w: %s.%s", errorvalues.ErrUnknownColumn, tbl.Name, key)
		}
		dst := reflect.ValueOf(fields[i]).Elem()
		src := reflect.ValueOf(v)
		if !src.IsValid() || !src.Type().AssignableTo(dst.Type()) {
			return fmt.Errorf("%w: %s.%s expects %s", errorvalues.ErrInvalidPatch, tbl.Name, key, dst.Type())
		}
		dst.Set(src)
	}
	return nil
}
