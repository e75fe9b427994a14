package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/morfo-lang/morfo"
	"github.com/morfo-lang/morfo/service"
)

var (
	bioGender      string
	bioNationality string
	bioLanguages   []string
)

var bioCmd = &cobra.Command{
	Use:   "bio <name> <profession>",
	Short: "Render the biography sentence in every requested language",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService(cmd)
		if err != nil {
			return err
		}

		results, err := svc.RenderBio(cmd.Context(), service.BioRequest{
			Name:        args[0],
			Gender:      morfo.Gender(bioGender),
			Profession:  args[1],
			Nationality: bioNationality,
			Languages:   bioLanguages,
		})
		if err != nil {
			return err
		}

		for _, res := range results {
			if res.Error != "" {
				fmt.Printf("%s\tERROR: %s\n", res.Language, res.Error)
				continue
			}
			fmt.Printf("%s\t%s\n", res.Language, res.Text)
		}

		return nil
	},
}

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List the loaded language cards",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService(cmd)
		if err != nil {
			return err
		}

		cards, err := svc.Languages(cmd.Context())
		if err != nil {
			return err
		}

		for _, card := range cards {
			fmt.Printf("%s\t%s\t%s\n", card.Language, card.Name, card.Family)
		}

		return nil
	},
}

func init() {
	bioCmd.Flags().StringVar(&bioGender, "gender", "", "Gender of the subject (female or male)")
	bioCmd.Flags().StringVar(&bioNationality, "nationality", "", "Nationality concept ID")
	bioCmd.Flags().StringSliceVar(&bioLanguages, "languages", nil, "Languages to render (default: all)")
}
