package app

import (
	"context"
	"reflect"
	"strings"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/symtab/internal/ctxlog"
	"github.com/vk/symtab/symbol"
)

// buildShowcaseUnit plays the front-end collaborator's role in-process:
// it assembles one compilation unit programmatically, then freezes both
// registries so the rendering side cannot mutate the model.
func buildShowcaseUnit() (*symbol.Module, error) {
	unit, err := symbol.NewModule("showcase.geometry",
		symbol.WithDoc("Plane geometry primitives used by the rendering examples."),
	)
	if err != nil {
		return nil, err
	}

	if _, err := unit.Imports().AddReference("math.pi", symbol.WithAlias("PI")); err != nil {
		return nil, err
	}
	if _, err := unit.Imports().AddModule("collections.abc"); err != nil {
		return nil, err
	}

	origin, err := symbol.NewVariable("origin",
		symbol.TypeAnnotation(cty.Tuple([]cty.Type{cty.Number, cty.Number})),
		"(0, 0)",
	)
	if err != nil {
		return nil, err
	}
	if _, err := unit.Declarations().Add(origin); err != nil {
		return nil, err
	}

	shape, err := symbol.NewClass("Shape", "...",
		symbol.WithBases("ABC"),
		symbol.WithDecorators("dataclass"),
	)
	if err != nil {
		return nil, err
	}
	if _, err := unit.Declarations().Add(shape); err != nil {
		return nil, err
	}

	area, err := symbol.NewFunction("area",
		symbol.WithReturn(symbol.TypeAnnotation(cty.Number)),
		symbol.WithBody("return self.width * self.height"),
	)
	if err != nil {
		return nil, err
	}
	if _, err := area.AddParameter("self", symbol.PositionalOnly); err != nil {
		return nil, err
	}
	if _, err := area.AddParameter("scale", symbol.PositionalOrKeyword,
		symbol.WithParamAnnotation(symbol.TypeAnnotation(cty.Number)),
		symbol.WithParamDefault(symbol.DefaultOf(cty.NumberIntVal(1))),
	); err != nil {
		return nil, err
	}
	if _, err := unit.Declarations().Add(area); err != nil {
		return nil, err
	}

	fetch, err := symbol.NewFunction("fetch_mesh",
		symbol.WithAsync(),
		symbol.WithReturn(symbol.TypeAnnotation(cty.String)),
	)
	if err != nil {
		return nil, err
	}
	if _, err := fetch.AddParameter("url", symbol.PositionalOrKeyword,
		symbol.WithParamAnnotation(symbol.TypeAnnotation(cty.String)),
	); err != nil {
		return nil, err
	}
	if _, err := fetch.AddParameter("options", symbol.VariadicKeyword); err != nil {
		return nil, err
	}
	if _, err := unit.Declarations().Add(fetch); err != nil {
		return nil, err
	}

	unit.Imports().Freeze()
	unit.Declarations().Freeze()
	return unit, nil
}

// showcasePoint is a live value observed by the locals report.
type showcasePoint struct {
	X float64
	Y float64
}

// Title uppercases a label. Registered as a live callable in the report.
func Title(label string) string {
	return strings.ToUpper(label)
}

// buildShowcaseLocals plays the introspection collaborator's role: it
// registers a few already-resident Go values as live-object symbols.
func buildShowcaseLocals(ctx context.Context) (*symbol.LocalTable, error) {
	logger := ctxlog.FromContext(ctx)
	table := symbol.NewLocalTable()

	greeting := "hello"
	if _, err := table.AddVar("greeting", symbol.Own(greeting)); err != nil {
		return nil, err
	}
	if _, err := table.AddVar("unit_point", symbol.Own(showcasePoint{X: 1, Y: 1})); err != nil {
		return nil, err
	}
	if _, err := table.AddFunc(Title); err != nil {
		return nil, err
	}
	if _, err := table.AddType(reflect.TypeFor[showcasePoint]()); err != nil {
		return nil, err
	}

	logger.Debug("Showcase locals populated.", "keys", table.Keys())
	return table, nil
}
