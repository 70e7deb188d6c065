package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig"
	units "github.com/docker/go-units"
	"github.com/ghodss/yaml"
	"github.com/gosuri/uitable"
	"github.com/pkg/errors"
	"github.com/replicatedhq/treesize/pkg/constants"
	"github.com/replicatedhq/treesize/pkg/filetree"
	"github.com/spf13/viper"
)

// Format selects how results are written.
type Format string

const (
	FormatText     Format = "text"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatTemplate Format = "template"
)

// ParseFormat validates an --output value. Empty means text.
func ParseFormat(s string) (Format, error) {
	switch format := Format(strings.ToLower(strings.TrimSpace(s))); format {
	case "":
		return FormatText, nil
	case FormatText, FormatJSON, FormatYAML, FormatTemplate:
		return format, nil
	default:
		return "", errors.Errorf("unknown output format %q, expected one of text, json, yaml, template", s)
	}
}

// Renderer writes reports, trees and directory listings in one format.
type Renderer struct {
	Format   Format
	Template string
	Human    bool
}

// NewRenderer builds a Renderer from viper, used with dig
func NewRenderer(v *viper.Viper) (*Renderer, error) {
	format, err := ParseFormat(v.GetString(constants.OutputFlag))
	if err != nil {
		return nil, err
	}
	renderer := &Renderer{
		Format:   format,
		Template: v.GetString(constants.TemplateFlag),
		Human:    v.GetBool(constants.HumanFlag),
	}
	if format == FormatTemplate && renderer.Template == "" {
		return nil, errors.Errorf("--%s=%s requires --%s", constants.OutputFlag, FormatTemplate, constants.TemplateFlag)
	}
	return renderer, nil
}

// FormatSize renders a size, in decimal units when Human is set.
func (r *Renderer) FormatSize(size int64) string {
	if r.Human {
		return units.HumanSize(float64(size))
	}
	return strconv.FormatInt(size, 10)
}

// Report writes the bounded-sum and minimum-to-free results.
func (r *Renderer) Report(w io.Writer, doc Document) error {
	return r.write(w, doc, func() error {
		_, err := fmt.Fprintf(w,
			"Total size of directories of at most %s: %s\nSmallest directory to free: %s (%s)\n",
			r.FormatSize(doc.Threshold),
			r.FormatSize(doc.BoundedSum),
			doc.ToFree.Path,
			r.FormatSize(doc.ToFree.Size),
		)
		return err
	})
}

// Tree writes the whole tree below root.
func (r *Renderer) Tree(w io.Writer, root *filetree.Node) error {
	return r.write(w, filetree.Snapshot(root), func() error {
		return filetree.Render(w, root, r.FormatSize)
	})
}

// Dirs writes a directory listing as a PATH/SIZE table.
func (r *Renderer) Dirs(w io.Writer, dirs []DirEntry) error {
	return r.write(w, dirs, func() error {
		table := uitable.New()
		table.MaxColWidth = 80
		table.AddRow("PATH", "SIZE")
		for _, dir := range dirs {
			table.AddRow(dir.Path, r.FormatSize(dir.Size))
		}
		_, err := fmt.Fprintln(w, table)
		return err
	})
}

func (r *Renderer) write(w io.Writer, data interface{}, text func() error) error {
	switch r.Format {
	case FormatJSON:
		b, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			return errors.Wrap(err, "marshal json")
		}
		_, err = fmt.Fprintln(w, string(b))
		return errors.Wrap(err, "write json")
	case FormatYAML:
		b, err := yaml.Marshal(data)
		if err != nil {
			return errors.Wrap(err, "marshal yaml")
		}
		_, err = w.Write(b)
		return errors.Wrap(err, "write yaml")
	case FormatTemplate:
		tpl, err := template.New(constants.TemplateFlag).Funcs(sprig.TxtFuncMap()).Parse(r.Template)
		if err != nil {
			return errors.Wrap(err, "parse template")
		}
		return errors.Wrap(tpl.Execute(w, data), "execute template")
	default:
		return errors.Wrap(text(), "write text")
	}
}
