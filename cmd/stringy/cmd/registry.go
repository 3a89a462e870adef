package cmd

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/msto63/stringy/foundation/core/config"
	mdwerrors "github.com/msto63/stringy/foundation/core/errors"
	mdwlog "github.com/msto63/stringy/foundation/core/log"
	"github.com/msto63/stringy/pkg/stringy"
)

// Env carries the loaded settings into operations
type Env struct {
	Ctx      context.Context
	Settings config.Settings
	Logger   *mdwlog.Logger
}

func (e *Env) context() context.Context {
	if e.Ctx == nil {
		return context.Background()
	}
	return e.Ctx
}

// Operation is one value method exposed on the command line
type Operation struct {
	Name     string
	Category string
	Usage    string
	Summary  string
	MinArgs  int
	MaxArgs  int // -1 for no limit
	Run      func(env *Env, s stringy.Stringy, a *Args) (any, error)
}

var registry = map[string]*Operation{}

func register(op *Operation) {
	if _, exists := registry[op.Name]; exists {
		panic("duplicate operation: " + op.Name)
	}
	registry[op.Name] = op
}

// lookup finds an operation by name, accepting camelCase and snake_case
// spellings of the registered kebab-case names
func lookup(name string) (*Operation, error) {
	if op, ok := registry[name]; ok {
		return op, nil
	}
	if op, ok := registry[stringy.New(name).Dasherize().String()]; ok {
		return op, nil
	}
	return nil, mdwerrors.InvalidInput(mdwerrors.ModuleCLI, "lookup", name, "registered operation name, see 'stringy ops'")
}

// categories returns the operations grouped by category, both sorted
func categories() map[string][]*Operation {
	groups := map[string][]*Operation{}
	for _, op := range registry {
		groups[op.Category] = append(groups[op.Category], op)
	}
	for _, ops := range groups {
		slices.SortFunc(ops, func(a, b *Operation) int { return strings.Compare(a.Name, b.Name) })
	}
	return groups
}

func sortedCategories(groups map[string][]*Operation) []string {
	return slices.Sorted(maps.Keys(groups))
}

// invoke checks the argument count and runs op
func invoke(env *Env, op *Operation, s stringy.Stringy, values []string) (any, error) {
	if len(values) < op.MinArgs || (op.MaxArgs >= 0 && len(values) > op.MaxArgs) {
		return nil, mdwerrors.InvalidInput(mdwerrors.ModuleCLI, op.Name, values, "arguments: "+op.Usage)
	}
	a := &Args{op: op.Name, values: values}
	result, err := op.Run(env, s, a)
	if err != nil {
		return nil, err
	}
	if a.err != nil {
		return nil, a.err
	}
	return result, nil
}

// Args gives typed access to positional operation arguments. The first
// conversion error is kept and reported after the operation ran.
type Args struct {
	op     string
	values []string
	err    error
}

// Len returns the number of arguments
func (a *Args) Len() int {
	return len(a.values)
}

// Has reports whether argument i was given
func (a *Args) Has(i int) bool {
	return i < len(a.values)
}

// String returns argument i or def
func (a *Args) String(i int, def string) string {
	if !a.Has(i) {
		return def
	}
	return a.values[i]
}

// Rest returns the arguments from i on
func (a *Args) Rest(i int) []string {
	if !a.Has(i) {
		return nil
	}
	return a.values[i:]
}

// List splits argument i on "|"
func (a *Args) List(i int) []string {
	if !a.Has(i) {
		return nil
	}
	return strings.Split(a.values[i], "|")
}

// Int returns argument i as an integer or def
func (a *Args) Int(i int, def int) int {
	if !a.Has(i) {
		return def
	}
	n, err := strconv.Atoi(a.values[i])
	if err != nil {
		a.fail(i, "integer")
		return def
	}
	return n
}

// Float returns argument i as a float or def
func (a *Args) Float(i int, def float64) float64 {
	if !a.Has(i) {
		return def
	}
	f, err := strconv.ParseFloat(a.values[i], 64)
	if err != nil {
		a.fail(i, "number")
		return def
	}
	return f
}

// Bool returns argument i as a boolean or def
func (a *Args) Bool(i int, def bool) bool {
	if !a.Has(i) {
		return def
	}
	b, err := strconv.ParseBool(a.values[i])
	if err != nil {
		a.fail(i, "boolean")
		return def
	}
	return b
}

// Ints returns argument i as a one-element variadic slice when given
func (a *Args) Ints(i int) []int {
	if !a.Has(i) {
		return nil
	}
	return []int{a.Int(i, 0)}
}

// Strings returns argument i as a one-element variadic slice when given
func (a *Args) Strings(i int) []string {
	if !a.Has(i) {
		return nil
	}
	return []string{a.values[i]}
}

// Floats returns argument i as a one-element variadic slice when given
func (a *Args) Floats(i int) []float64 {
	if !a.Has(i) {
		return nil
	}
	return []float64{a.Float(i, 0)}
}

// Bools returns argument i as a one-element variadic slice when given
func (a *Args) Bools(i int) []bool {
	if !a.Has(i) {
		return nil
	}
	return []bool{a.Bool(i, false)}
}

func (a *Args) fail(i int, expected string) {
	if a.err == nil {
		a.err = mdwerrors.InvalidInput(mdwerrors.ModuleCLI, a.op, a.values[i],
			fmt.Sprintf("%s for argument %d", expected, i+1))
	}
}

// render formats an operation result for output
func render(result any) string {
	switch v := result.(type) {
	case stringy.Stringy:
		return v.String()
	case string:
		return v
	case []stringy.Stringy:
		return stringy.NewCollection(v...).Implode("\n")
	case *stringy.Collection:
		return v.Implode("\n")
	case []string:
		return strings.Join(v, "\n")
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}
