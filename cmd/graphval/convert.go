package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/hidal-go/graphval/base"
	"github.com/hidal-go/graphval/codec"
	"github.com/hidal-go/graphval/factory"
	"github.com/hidal-go/graphval/filter"
	"github.com/hidal-go/graphval/values"
)

type convertOptions struct {
	typ     string
	decoder string
	sort    bool
	min     string
	max     string
}

func newConvertCmd(a *app) *cobra.Command {
	var opts convertOptions
	cmd := &cobra.Command{
		Use:   "convert --type TYPE [values...]",
		Short: "Convert text values to a property type",
		Long: `Convert text values to a property type and print their canonical text form.
Values are read from arguments or, if there are none, from standard input, one per line.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			var src base.Source
			if len(args) != 0 {
				src = base.Slice(lo.ToAnySlice(args)...)
			} else {
				src = base.Lines(cmd.InOrStdin())
			}
			return a.convert(ctx, cmd.OutOrStdout(), src, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.typ, "type", "t", "", "target property type")
	cmd.Flags().StringVar(&opts.decoder, "decoder", "", "text decoder, overrides the configuration")
	cmd.Flags().BoolVar(&opts.sort, "sort", false, "sort converted values")
	cmd.Flags().StringVar(&opts.min, "min", "", "skip values less than this one")
	cmd.Flags().StringVar(&opts.max, "max", "", "skip values greater than this one")
	_ = cmd.MarkFlagRequired("type")
	return cmd
}

func (a *app) convert(ctx context.Context, w io.Writer, src base.Source, opts convertOptions) error {
	defer src.Close()
	typ, err := values.ParsePropertyType(opts.typ)
	if err != nil {
		return err
	}
	f := a.reg.ByType(typ)
	if f == nil {
		return fmt.Errorf("%w: %v", factory.ErrNotRegistered, typ)
	}
	var dec codec.Decoder
	if opts.decoder != "" {
		if dec, err = codec.ByName(opts.decoder); err != nil {
			return err
		}
	}
	keep, err := bounds(f, dec, opts)
	if err != nil {
		return err
	}
	var (
		out []values.Value
		i   int
	)
	for ; src.Next(ctx); i++ {
		var v values.Value
		switch s := src.Value().(type) {
		case string:
			v, err = f.CreateDecoded(s, dec)
		default:
			v, err = f.Create(s)
		}
		if err != nil {
			a.log.Error().Err(err).Int("index", i).Str("type", typ.String()).Msg("conversion failed")
			return fmt.Errorf("value %d: %w", i, err)
		}
		if !keep.FilterValue(v) {
			a.log.Debug().Int("index", i).Msg("value out of range")
			continue
		}
		if !opts.sort {
			if err = a.print(w, v); err != nil {
				return err
			}
			continue
		}
		out = append(out, v)
	}
	if err = src.Err(); err != nil {
		return fmt.Errorf("read values: %w", err)
	}
	a.log.Debug().Int("count", i).Str("type", typ.String()).Msg("converted")
	if opts.sort {
		sort.SliceStable(out, func(x, y int) bool {
			return values.Compare(out[x], out[y]) < 0
		})
		for _, v := range out {
			if err = a.print(w, v); err != nil {
				return err
			}
		}
	}
	return nil
}

// bounds converts the range limits to the target type.
func bounds(f factory.Factory, dec codec.Decoder, opts convertOptions) (filter.ValueFilter, error) {
	var from, to values.Value
	if opts.min != "" {
		v, err := f.CreateDecoded(opts.min, dec)
		if err != nil {
			return nil, fmt.Errorf("min: %w", err)
		}
		from = v
	}
	if opts.max != "" {
		v, err := f.CreateDecoded(opts.max, dec)
		if err != nil {
			return nil, fmt.Errorf("max: %w", err)
		}
		to = v
	}
	return filter.And{filter.Any{}, filter.Between(from, to)}, nil
}

// print writes the text form of a value. Names and paths use configured prefixes.
func (a *app) print(w io.Writer, v values.Value) error {
	s, err := a.reg.Strings().Create(v)
	if err != nil {
		return err
	} else if s == nil {
		_, err = fmt.Fprintln(w)
		return err
	}
	_, err = fmt.Fprintln(w, s.(values.String))
	return err
}
