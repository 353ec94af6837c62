// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command gen writes the per-arity files of package callback: wire tuples,
// trampoline function types, proxy generators and the conversion family.
// Every arity shares one template; the bodies delegate to the generic
// implementations in proxy.go and into.go.
package main

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/lthibault/log"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

const header = `// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Code generated by internal/cmd/gen; DO NOT EDIT.

package callback
`

var flags = []cli.Flag{
	&cli.IntFlag{
		Name:    "max-arity",
		Usage:   "generate wire signatures of 0 through `N` parameters",
		Value:   11,
		EnvVars: []string{"CALLBACK_MAX_ARITY"},
	},
	&cli.PathFlag{
		Name:    "dir",
		Usage:   "write generated files into `path`",
		Value:   ".",
		EnvVars: []string{"CALLBACK_GEN_DIR"},
	},
	&cli.StringFlag{
		Name:    "loglvl",
		Usage:   "set logging `level` to debug, info, warn or error",
		Value:   "info",
		EnvVars: []string{"CALLBACK_LOGLVL"},
	},
}

func main() {
	app := &cli.App{
		Name:   "gen",
		Usage:  "generate per-arity trampolines for package callback",
		Flags:  flags,
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	logger := log.New(withLevel(c.String("loglvl")))

	maxArity := c.Int("max-arity")
	if maxArity < 0 {
		return errors.Errorf("max-arity must not be negative, got %d", maxArity)
	}

	arities := make([]Arity, 0, maxArity+1)
	for n := 0; n <= maxArity; n++ {
		arities = append(arities, newArity(n))
	}

	for _, f := range files {
		path := filepath.Join(c.Path("dir"), f.name)
		if err := render(path, f.tmpl, arities); err != nil {
			return errors.Wrap(err, f.name)
		}
		logger.WithField("file", path).Info("generated")
	}

	return nil
}

func withLevel(level string) log.Option {
	switch level {
	case "debug", "d":
		return log.WithLevel(log.DebugLevel)
	case "warn", "w":
		return log.WithLevel(log.WarnLevel)
	case "error", "e":
		return log.WithLevel(log.ErrorLevel)
	default:
		return log.WithLevel(log.InfoLevel)
	}
}

func render(path string, tmpl *template.Template, arities []Arity) error {
	var buf bytes.Buffer
	buf.WriteString(header)
	if err := tmpl.Execute(&buf, arities); err != nil {
		return errors.Wrap(err, "execute template")
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return errors.Wrap(err, "format")
	}

	return os.WriteFile(path, src, 0o644)
}

// Arity describes one wire signature length.
type Arity struct {
	N      int
	Fields []Field
}

// Field is one wire parameter.
type Field struct {
	Index int    // zero-based
	Name  string // tuple field, V1...
	Type  string // type parameter, P1...
	Arg   string // trampoline parameter, p1...
}

func newArity(n int) Arity {
	a := Arity{N: n}
	for i := 1; i <= n; i++ {
		a.Fields = append(a.Fields, Field{
			Index: i - 1,
			Name:  fmt.Sprintf("V%d", i),
			Type:  fmt.Sprintf("P%d", i),
			Arg:   fmt.Sprintf("p%d", i),
		})
	}
	return a
}

// Types returns "P1, P2".
func (a Arity) Types() string {
	return a.join(func(f Field) string { return f.Type })
}

// TypeParams returns "P1, P2, " or "" for arity 0, ready to prefix further
// type parameters.
func (a Arity) TypeParams() string {
	if a.N == 0 {
		return ""
	}
	return a.Types() + ", "
}

// Params returns "p1 P1, p2 P2".
func (a Arity) Params() string {
	return a.join(func(f Field) string { return f.Arg + " " + f.Type })
}

// Args returns "p1, p2".
func (a Arity) Args() string {
	return a.join(func(f Field) string { return f.Arg })
}

// Tuple returns the wire tuple type, e.g. "Tuple2[P1, P2]".
func (a Arity) Tuple() string {
	if a.N == 0 {
		return "Tuple0"
	}
	return fmt.Sprintf("Tuple%d[%s]", a.N, a.Types())
}

// Func returns the trampoline type with result CR, e.g. "Func2[P1, P2, CR]".
func (a Arity) Func(result string) string {
	return fmt.Sprintf("Func%d[%s%s]", a.N, a.TypeParams(), result)
}

func (a Arity) join(f func(Field) string) string {
	parts := make([]string, len(a.Fields))
	for i, field := range a.Fields {
		parts[i] = f(field)
	}
	return strings.Join(parts, ", ")
}

var files = []struct {
	name string
	tmpl *template.Template
}{
	{"tuple_gen.go", template.Must(template.New("tuple").Parse(tupleTemplate))},
	{"func_gen.go", template.Must(template.New("func").Parse(funcTemplate))},
	{"proxy_gen.go", template.Must(template.New("proxy").Parse(proxyTemplate))},
	{"into_gen.go", template.Must(template.New("into").Parse(intoTemplate))},
}
