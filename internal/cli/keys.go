package cli

import (
	"github.com/keysinmypurse/purse/internal/listing"
	"github.com/keysinmypurse/purse/internal/output"
)

// KeysCmd renders the stored-keys list screen
type KeysCmd struct {
	Edit bool `help:"Show the list in edit mode" short:"e"`
}

// Run executes the keys command
func (cmd *KeysCmd) Run(fp *FormatterProvider) error {
	view := output.NewTableView()
	screen := listing.NewAllKeys()
	screen.Load(view)
	view.SetEditing(cmd.Edit)

	return view.Render(fp.Formatter)
}
