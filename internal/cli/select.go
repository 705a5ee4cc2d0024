package cli

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/hupe1980/seedselect"
	"github.com/hupe1980/seedselect/pool"
)

// SelectCmd selects candidates from a pool.
type SelectCmd struct {
	Draw DrawFlags `embed:""`
	Log  LogFlags  `embed:""`

	N           int    `short:"n" required:"" env:"SEEDSELECT_N" help:"Number of candidates to select"`
	Pool        string `required:"" env:"SEEDSELECT_POOL" help:"Pool location: a local path, s3://bucket/key or minio://bucket/key"`
	Format      string `default:"lines" enum:"lines,hex" env:"SEEDSELECT_FORMAT" help:"Pool line format"`
	Parallelism int    `default:"1" env:"SEEDSELECT_PARALLELISM" help:"Number of digest workers"`
	JSON        bool   `name:"json" env:"SEEDSELECT_JSON" help:"Write JSON instead of one identifier per line"`

	S3    S3Flags    `embed:"" prefix:"s3-"`
	Minio MinioFlags `embed:"" prefix:"minio-"`
}

type selectionJSON struct {
	Name       string         `json:"name"`
	Seq        uint64         `json:"seq"`
	Algorithm  string         `json:"algorithm"`
	Layout     string         `json:"layout"`
	Candidates int            `json:"candidates"`
	Reference  string         `json:"reference"`
	Selected   []selectedJSON `json:"selected"`
}

type selectedJSON struct {
	ID       string `json:"id"`
	Index    int    `json:"index"`
	Distance string `json:"distance"`
}

func (cmd *SelectCmd) Validate() error {
	return cmd.Draw.validate()
}

func (cmd *SelectCmd) Run(ctx context.Context, out *Output) error {
	log, err := cmd.Log.logger(out.Stderr)
	if err != nil {
		return err
	}

	seed, err := cmd.Draw.seed()
	if err != nil {
		return err
	}
	fn, err := cmd.Draw.digest()
	if err != nil {
		return err
	}
	layout, err := cmd.Draw.layout()
	if err != nil {
		return err
	}
	format, err := pool.ParseFormat(cmd.Format)
	if err != nil {
		return err
	}

	store, name, err := openStore(ctx, cmd.Pool, &cmd.S3, &cmd.Minio)
	if err != nil {
		return err
	}
	candidates, err := pool.Load(ctx, store, name, format)
	if err != nil {
		return err
	}
	log.InfoContext(ctx, "pool loaded", "pool", cmd.Pool, "candidates", len(candidates))

	sel := seedselect.New(fn,
		seedselect.WithLogger(log),
		seedselect.WithParallelism(cmd.Parallelism),
		seedselect.WithLayout(layout),
	)

	res, err := sel.Select(ctx, seedselect.Request{
		Name:       cmd.Draw.Name,
		Seed:       seed,
		Seq:        cmd.Draw.Seq,
		N:          cmd.N,
		Candidates: candidates,
	})
	if err != nil {
		return err
	}

	if !cmd.JSON {
		for _, id := range res.IDs {
			if _, err := fmt.Fprintln(out.Stdout, formatID(id, format)); err != nil {
				return err
			}
		}
		return nil
	}

	doc := selectionJSON{
		Name:       cmd.Draw.Name,
		Seq:        cmd.Draw.Seq,
		Algorithm:  cmd.Draw.Algorithm,
		Layout:     layout.String(),
		Candidates: len(candidates),
		Reference:  hex.EncodeToString(res.Reference),
		Selected:   make([]selectedJSON, res.Len()),
	}
	for i := range res.IDs {
		doc.Selected[i] = selectedJSON{
			ID:       formatID(res.IDs[i], format),
			Index:    res.Indices[i],
			Distance: res.Distances[i].String(),
		}
	}

	enc := json.NewEncoder(out.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// formatID renders id the way it appears in a pool of the given format.
func formatID(id []byte, format pool.Format) string {
	if format == pool.FormatHex {
		return hex.EncodeToString(id)
	}
	return string(id)
}
