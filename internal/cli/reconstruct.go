package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hsiuhsiu/lsss-go/pkg/lsss"
)

func (a *app) reconstructCommand() *cobra.Command {
	var (
		policyPath string
		attrs      []string
	)
	cmd := &cobra.Command{
		Use:   "reconstruct",
		Short: "Compute reconstruction coefficients for a set of attributes",
		Long: `Compute the coefficients w such that the sum of w[a] * share[a] over the
presented attributes equals the secret. Attributes outside the minimal
authorized subset get a zero coefficient.

Exits with status 2 when the attributes do not satisfy the policy.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pol, err := a.loadPolicy(cmd, policyPath)
			if err != nil {
				return err
			}
			coeffs, err := a.reconstruct(cmd, pol, toAttributes(attrs))
			if err != nil {
				return err
			}
			return a.printer().PrintCoefficients(pol.field.Name(), coeffs)
		},
	}
	cmd.Flags().StringVarP(&policyPath, "policy", "p", "", "policy file (YAML)")
	cmd.Flags().StringSliceVarP(&attrs, "attrs", "a", nil, "comma-separated presented attributes")
	_ = cmd.MarkFlagRequired("policy")
	return cmd
}

func (a *app) roundtripCommand() *cobra.Command {
	var (
		policyPath string
		secret     string
		attrs      []string
	)
	cmd := &cobra.Command{
		Use:   "roundtrip",
		Short: "Split a secret, reconstruct it from the given attributes and compare",
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
			coeffs, err := a.reconstruct(cmd, pol, toAttributes(attrs))
			if err != nil {
				return err
			}
			recovered, err := lsss.Combine(pol.field, coeffs, shares.ByAttribute)
			if err != nil {
				return err
			}
			match := recovered.Equal(s)
			if err := a.printer().PrintRoundTrip(pol.field.Name(), coeffs, recovered, match); err != nil {
				return err
			}
			if !match {
				return fmt.Errorf("recovered value does not match the secret")
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&policyPath, "policy", "p", "", "policy file (YAML)")
	cmd.Flags().StringVarP(&secret, "secret", "s", "", "secret as a decimal integer")
	cmd.Flags().StringSliceVarP(&attrs, "attrs", "a", nil, "comma-separated presented attributes")
	_ = cmd.MarkFlagRequired("policy")
	_ = cmd.MarkFlagRequired("secret")
	return cmd
}

func (a *app) reconstruct(cmd *cobra.Command, pol *policy, presented []lsss.Attribute) (lsss.CoefficientMap, error) {
	s, err := lsss.NewSpanStructure(pol.field, pol.matrix)
	if err != nil {
		return nil, err
	}
	rec, err := lsss.NewReconstructor(pol.field, lsss.WithTracer(a.tracer))
	if err != nil {
		return nil, err
	}
	coeffs, err := rec.ReconstructStructure(presented, s)
	if err != nil {
		a.logger.Warn(a.ctx(cmd), "reconstruction failed", "reason", string(lsss.ReasonOf(err)))
		return nil, err
	}
	return coeffs, nil
}
