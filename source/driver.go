// Package source resolves JSON drivers by name.
package source

import (
	"sort"
	"strings"

	"github.com/reoring/jsonflat"
	"github.com/reoring/jsonflat/source/gojson"
)

var drivers = map[string]func() jsonflat.JSONDriver{
	jsonflat.DefaultDriverName: jsonflat.DefaultJSONDriver,
	"json":                     jsonflat.DefaultJSONDriver,
	gojson.Name:                gojson.Driver,
	"gojson":                   gojson.Driver,
}

// ByName returns the driver registered under name. The empty name selects
// the default driver.
func ByName(name string) (jsonflat.JSONDriver, error) {
	if name == "" {
		return jsonflat.DefaultJSONDriver(), nil
	}
	mk, ok := drivers[strings.ToLower(name)]
	if !ok {
		return nil, jsonflat.Issues{{
			Path:    "/",
			Code:    jsonflat.CodeInvalidArgument,
			Message: "unknown json driver " + `"` + name + `"; known: ` + strings.Join(Names(), ", "),
			Offset:  -1,
		}}
	}
	return mk(), nil
}

// Names lists the accepted driver names.
func Names() []string {
	names := make([]string, 0, len(drivers))
	for n := range drivers {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
