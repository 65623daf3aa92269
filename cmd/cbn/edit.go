package main

import (
	"context"
	"fmt"
	"strings"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"cbn/notes"
	"cbn/sbml"
	"cbn/state"
)

func runSet(ctx context.Context, cmd *cli.Command) error {
	return runEdit(ctx, cmd, true)
}

func runAppend(ctx context.Context, cmd *cli.Command) error {
	return runEdit(ctx, cmd, false)
}

func runEdit(ctx context.Context, cmd *cli.Command, replace bool) error {

	env := state.EnvFromContext(ctx)
	if cmd.Args().Len() < 1 {
		return fmt.Errorf("no source file specified")
	}
	src := cmd.Args().Get(0)

	classifier := notes.NewClassifier(env.Cfg.Notes.ExtraKeys...)
	fields, err := parseFieldArgs(cmd.StringSlice("field"), classifier, env.Log)
	if err != nil {
		return err
	}

	doc, err := sbml.LoadFile(src, env.Log)
	if err != nil {
		return err
	}
	target := doc.Model.FindElement(cmd.String("id"))
	if target == nil {
		return fmt.Errorf("no element with id '%s' in model", cmd.String("id"))
	}

	var editErr error
	if replace {
		editErr = notes.WriteFields(target.SBase, fields, env.Log)
	} else {
		editErr = notes.AppendFields(target.SBase, fields, env.Log)
	}

	out, err := createDestination(cmd.Args().Get(1), cmd.Bool("overwrite"))
	if err != nil {
		return multierr.Append(editErr, err)
	}
	defer out.Close()

	env.Log.Info("Updated notes fields", zap.String("element", target.ID), zap.String("kind", string(target.Kind)), zap.Int("fields", fields.Len()))

	return multierr.Append(editErr, doc.WriteTo(out.File))
}

// parseFieldArgs turns repeated --field "KEY: VALUE" arguments into a
// FieldMap, splitting on the first colon the way extraction does. Keys the
// classifier would not accept back are written anyway but reported.
func parseFieldArgs(args []string, classifier *notes.Classifier, log *zap.Logger) (*notes.FieldMap, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("no fields specified, use --field \"KEY: VALUE\"")
	}
	fields := notes.NewFieldMap()
	for _, arg := range args {
		colon := strings.IndexByte(arg, ':')
		if colon < 0 {
			return nil, fmt.Errorf("malformed field '%s', expected \"KEY: VALUE\"", arg)
		}
		key := strings.TrimSpace(arg[:colon])
		value := strings.TrimSpace(arg[colon+1:])
		if len(key) == 0 {
			return nil, fmt.Errorf("malformed field '%s', empty key", arg)
		}
		if !classifier.IsFieldKey(key) {
			log.Warn("Field key will not survive extraction", zap.String("key", key))
		}
		fields.Set(key, value)
	}
	return fields, nil
}
