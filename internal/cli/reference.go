package cli

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/hupe1980/seedselect"
)

// ReferenceCmd prints the reference digest of a draw.
type ReferenceCmd struct {
	Draw DrawFlags `embed:""`
	JSON bool      `name:"json" env:"SEEDSELECT_JSON" help:"Write JSON instead of hex"`
}

type referenceJSON struct {
	Name      string `json:"name"`
	Seq       uint64 `json:"seq"`
	Algorithm string `json:"algorithm"`
	Layout    string `json:"layout"`
	Reference string `json:"reference"`
}

func (cmd *ReferenceCmd) Validate() error {
	return cmd.Draw.validate()
}

func (cmd *ReferenceCmd) Run(_ context.Context, out *Output) error {
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

	ref, err := seedselect.Reference(fn, seed, cmd.Draw.Seq, cmd.Draw.Name, layout)
	if err != nil {
		return err
	}

	if !cmd.JSON {
		_, err = fmt.Fprintln(out.Stdout, hex.EncodeToString(ref))
		return err
	}

	enc := json.NewEncoder(out.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(referenceJSON{
		Name:      cmd.Draw.Name,
		Seq:       cmd.Draw.Seq,
		Algorithm: cmd.Draw.Algorithm,
		Layout:    layout.String(),
		Reference: hex.EncodeToString(ref),
	})
}
