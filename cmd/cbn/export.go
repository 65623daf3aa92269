package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"cbn/catalog"
	"cbn/notes"
	"cbn/sbml"
	"cbn/state"
)

func runExport(ctx context.Context, cmd *cli.Command) (err error) {

	env := state.EnvFromContext(ctx)
	if cmd.Args().Len() < 1 {
		return fmt.Errorf("no source file specified")
	}
	src := cmd.Args().Get(0)

	dbPath := cmd.Args().Get(1)
	if len(dbPath) == 0 {
		dbPath = strings.TrimSuffix(src, filepath.Ext(src)) + ".db"
	}

	doc, err := sbml.LoadFile(src, env.Log)
	if err != nil {
		return err
	}

	classifier := notes.NewClassifier(env.Cfg.Notes.ExtraKeys...)

	var elements []catalog.ElementFields
	for _, el := range doc.Model.Elements() {
		fields := classifier.ExtractFields(el.SBase, env.Log)
		if fields.Len() == 0 {
			continue
		}
		elements = append(elements, catalog.ElementFields{
			ID:     el.ID,
			Kind:   string(el.Kind),
			Fields: fields,
		})
	}

	cat, err := catalog.Open(dbPath)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, cat.Close())
	}()

	id, err := cat.StoreSnapshot(src, elements)
	if err != nil {
		return err
	}

	env.Log.Info("Stored extraction snapshot", zap.String("id", id), zap.String("database", dbPath), zap.Int("elements", len(elements)))
	return nil
}
