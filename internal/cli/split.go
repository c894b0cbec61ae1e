package cli

import (
	"github.com/spf13/cobra"

	"github.com/hsiuhsiu/lsss-go/pkg/lsss"
	"github.com/hsiuhsiu/lsss-go/pkg/lsss/field"
)

func (a *app) splitCommand() *cobra.Command {
	var policyPath, secret string
	cmd := &cobra.Command{
		Use:   "split",
		Short: "Split a secret into one share per policy row",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pol, err := a.loadPolicy(cmd, policyPath)
			if err != nil {
				return err
			}
			s, err := parseSecret(pol.field, secret)
			if err != nil {
				return err
			}
			shares, err := a.split(cmd, pol, s)
			if err != nil {
				return err
			}
			return a.printer().PrintShares(pol.field.Name(), pol.matrix, shares)
		},
	}
	cmd.Flags().StringVarP(&policyPath, "policy", "p", "", "policy file (YAML)")
	cmd.Flags().StringVarP(&secret, "secret", "s", "", "secret as a decimal integer")
	_ = cmd.MarkFlagRequired("policy")
	_ = cmd.MarkFlagRequired("secret")
	return cmd
}

func (a *app) split(cmd *cobra.Command, pol *policy, secret lsss.Element) (*lsss.Shares, error) {
	opts := []lsss.SplitterOption{lsss.WithSplitTracer(a.tracer)}
	if a.settings.Seed != "" {
		a.logger.Warn(a.ctx(cmd), "split randomness derived from --seed; shares are reproducible")
		opts = append(opts, lsss.WithRandom(field.NewSeededReader([]byte(a.settings.Seed))))
	}
	splitter, err := lsss.NewSplitter(pol.field, opts...)
	if err != nil {
		return nil, err
	}
	return splitter.Split(secret, pol.matrix)
}
