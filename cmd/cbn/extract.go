package main

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/maruel/natural"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
	yaml "gopkg.in/yaml.v3"

	"cbn/notes"
	"cbn/sbml"
	"cbn/state"
)

// fieldSection is one element's worth of output for the extract command.
type fieldSection struct {
	ID     string     `yaml:"element"`
	Kind   string     `yaml:"kind"`
	Fields *yaml.Node `yaml:"fields"`
}

func runExtract(ctx context.Context, cmd *cli.Command) error {

	env := state.EnvFromContext(ctx)
	if cmd.Args().Len() < 1 {
		return fmt.Errorf("no source file specified")
	}
	if cmd.Args().Len() > 2 {
		env.Log.Warn("Malformed command line, too many arguments", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}
	src := cmd.Args().Get(0)

	doc, err := sbml.LoadFile(src, env.Log)
	if err != nil {
		return err
	}

	classifier := notes.NewClassifier(env.Cfg.Notes.ExtraKeys...)

	var sections []fieldSection
	for _, el := range doc.Model.Elements() {
		fields := classifier.ExtractFields(el.SBase, env.Log)
		if fields.Len() == 0 {
			continue
		}
		sections = append(sections, fieldSection{
			ID:     el.ID,
			Kind:   string(el.Kind),
			Fields: fieldsNode(fields),
		})
	}
	// model section first, entities in natural id order
	sort.SliceStable(sections, func(i, j int) bool {
		if (sections[i].Kind == string(sbml.KindModel)) != (sections[j].Kind == string(sbml.KindModel)) {
			return sections[i].Kind == string(sbml.KindModel)
		}
		return natural.Less(sections[i].ID, sections[j].ID)
	})

	out, err := createDestination(cmd.Args().Get(1), cmd.Bool("overwrite"))
	if err != nil {
		return err
	}
	defer out.Close()

	env.Log.Info("Extracted notes fields", zap.String("source", src), zap.Int("elements", len(sections)))

	enc := yaml.NewEncoder(out.File)
	enc.SetIndent(2)
	if err := enc.Encode(sections); err != nil {
		return fmt.Errorf("unable to write extracted fields: %w", err)
	}
	return enc.Close()
}

// fieldsNode renders a FieldMap as a yaml mapping preserving field order
// (yaml marshals Go maps with sorted keys).
func fieldsNode(fields *notes.FieldMap) *yaml.Node {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	fields.Each(func(key, value string) {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value},
		)
	})
	return node
}

// destination wraps an output file so STDOUT is never closed.
type destination struct {
	*os.File
}

func (d destination) Close() error {
	if d.File == os.Stdout {
		return nil
	}
	return d.File.Close()
}

func createDestination(fname string, overwrite bool) (destination, error) {
	if len(fname) == 0 {
		return destination{os.Stdout}, nil
	}
	if !overwrite {
		if _, err := os.Stat(fname); err == nil {
			return destination{}, fmt.Errorf("destination '%s' already exists (use --overwrite)", fname)
		}
	}
	f, err := os.Create(fname)
	if err != nil {
		return destination{}, fmt.Errorf("unable to create destination file '%s': %w", fname, err)
	}
	return destination{f}, nil
}
