package cli

import (
	"github.com/spf13/cobra"

	"github.com/hsiuhsiu/lsss-go/pkg/lsss/field"
)

func (a *app) fieldsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "fields",
		Short: "List the built-in fields",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			var views []fieldView
			for _, name := range field.Names() {
				f, err := field.ByName(name)
				if err != nil {
					return err
				}
				views = append(views, fieldView{Name: f.Name(), Modulus: f.Modulus().String(), Size: f.Size()})
			}
			return a.printer().PrintFields(views)
		},
	}
}
