package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmcleod/argonpass/storage"
)

// siteOptions manage saved site settings. They are flags rather than a
// subcommand so that every positional argument is a site.
type siteOptions struct {
	list   bool
	show   string
	forget string
}

func (o *siteOptions) bind(cmd *cobra.Command) {
	f := cmd.Flags()
	f.BoolVar(&o.list, "list-sites", false, "list sites with saved settings")
	f.StringVar(&o.show, "show-site", "", "print the saved settings of a site as JSON")
	f.StringVar(&o.forget, "forget-site", "", "delete the saved settings of a site")
	cmd.MarkFlagsMutuallyExclusive("list-sites", "show-site", "forget-site")
}

// active reports whether a management flag was given, in which case no
// password is generated.
func (o *siteOptions) active(cmd *cobra.Command) bool {
	f := cmd.Flags()
	return f.Changed("list-sites") || f.Changed("show-site") || f.Changed("forget-site")
}

func runSites(cmd *cobra.Command, d deps, o *siteOptions) error {
	cfg, err := d.loadConfig()
	if err != nil {
		return err
	}
	store, err := d.openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	switch {
	case o.list:
		sites, err := store.List()
		if err != nil {
			return err
		}
		for _, s := range sites {
			fmt.Fprintln(out, s)
		}
		return nil
	case o.show != "":
		p, err := store.Get(o.show)
		if err != nil {
			return err
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(p)
	case o.forget != "":
		return store.Delete(o.forget)
	default:
		return fmt.Errorf("%w: site must not be empty", storage.ErrInvalidSite)
	}
}
