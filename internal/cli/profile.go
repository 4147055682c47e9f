package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/piwi3910/AngleCut/internal/model"
	"github.com/piwi3910/AngleCut/internal/project"
)

func newProfileCmd() *cobra.Command {
	var profilesPath string

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "List and import hardware profiles",
	}
	cmd.PersistentFlags().StringVar(&profilesPath, "profiles", project.DefaultProfilesPath(),
		"path of the custom profile store")

	list := &cobra.Command{
		Use:   "list",
		Short: "List built-in and custom hardware profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			custom, err := project.LoadCustomProfiles(profilesPath)
			if err != nil {
				return fmt.Errorf("load profiles: %w", err)
			}

			all := append(append([]model.HardwareProfile(nil), model.HardwareProfiles...), custom...)
			fmt.Fprintln(cmd.OutOrStdout(), renderProfileTable(all))
			return nil
		},
	}

	importCmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a hardware profile from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := loggerFromContext(cmd.Context())

			profile, err := project.ImportProfile(args[0])
			if err != nil {
				return fmt.Errorf("import profile: %w", err)
			}

			custom, err := project.LoadCustomProfiles(profilesPath)
			if err != nil {
				return fmt.Errorf("load profiles: %w", err)
			}

			replaced := false
			for i := range custom {
				if custom[i].Name == profile.Name {
					custom[i] = profile
					replaced = true
				}
			}
			if !replaced {
				custom = append(custom, profile)
			}

			if err := project.SaveCustomProfiles(profilesPath, custom); err != nil {
				return fmt.Errorf("save profiles: %w", err)
			}

			if replaced {
				log.Info("replaced profile", "name", profile.Name, "path", profilesPath)
			} else {
				log.Info("imported profile", "name", profile.Name, "path", profilesPath)
			}
			return nil
		},
	}

	cmd.AddCommand(list)
	cmd.AddCommand(importCmd)
	return cmd
}

func renderProfileTable(profiles []model.HardwareProfile) string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	rows := make([][]string, 0, len(profiles))
	for _, p := range profiles {
		kind := "custom"
		if p.IsBuiltIn {
			kind = "built-in"
		}
		catalog := "standard table"
		if len(p.StockLengths) > 0 {
			catalog = formatPositions(p.StockLengths)
		}
		rows = append(rows, []string{
			p.Name,
			kind,
			formatMM(p.MaxAngleLength),
			formatMM(p.SlotPitch),
			formatMM(p.LengthIncrement),
			catalog,
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Name", "Type", "Max stock", "Slot pitch", "Increment", "Catalog").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			return lipgloss.NewStyle()
		})

	var b strings.Builder
	b.WriteString(styleTitle.Render(fmt.Sprintf("%d hardware profile(s)", len(profiles))))
	b.WriteString("\n")
	b.WriteString(t.Render())
	return b.String()
}
